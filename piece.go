package cubesim

import (
	"fmt"
	"math"

	"github.com/westphae/quaternion"
)

// PieceCount is the number of movable sub-cubes in a 3x3x3 puzzle.
const PieceCount = 26

// Coord is an integer grid coordinate with each component in {-1, 0, 1}.
type Coord struct {
	X, Y, Z int
}

// Vec returns the coordinate as a float vector.
func (c Coord) Vec() quaternion.Vec3 {
	return quaternion.Vec3{X: float64(c.X), Y: float64(c.Y), Z: float64(c.Z)}
}

// Component returns the coordinate along axis a.
func (c Coord) Component(a Axis) int {
	switch a {
	case AxisX:
		return c.X
	case AxisY:
		return c.Y
	default:
		return c.Z
	}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Piece is one of the 26 sub-cubes ("cubies").
type Piece struct {
	// ID is derived from Initial and never changes.
	ID string
	// Initial is the solved-state grid coordinate.
	Initial Coord
	// Position is the current coordinate. It is integer-valued after every
	// completed move.
	Position quaternion.Vec3
	// Orientation is the cumulative world-frame rotation applied to the piece.
	Orientation quaternion.Quaternion
}

// Identity is the unit quaternion for "no rotation".
var Identity = quaternion.Quaternion{W: 1}

// PieceID returns the stable identifier of the piece created at c.
func PieceID(c Coord) string {
	return fmt.Sprintf("cubie_%d_%d_%d", c.X, c.Y, c.Z)
}

// NewPieces builds the solved piece set: every coordinate in {-1,0,1}^3
// except the hidden core, x varying slowest.
func NewPieces() []Piece {
	pieces := make([]Piece, 0, PieceCount)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				c := Coord{X: x, Y: y, Z: z}
				pieces = append(pieces, Piece{
					ID:          PieceID(c),
					Initial:     c,
					Position:    c.Vec(),
					Orientation: Identity,
				})
			}
		}
	}
	return pieces
}

// Grid returns the current position rounded to the nearest grid coordinate.
func (p Piece) Grid() Coord {
	return Coord{
		X: int(math.Round(p.Position.X)),
		Y: int(math.Round(p.Position.Y)),
		Z: int(math.Round(p.Position.Z)),
	}
}

// InPlace reports whether the piece sits at its initial coordinate.
func (p Piece) InPlace() bool {
	return p.Position == p.Initial.Vec()
}

// Solved reports whether the piece is at its initial coordinate with no net
// rotation.
func (p Piece) Solved() bool {
	return p.InPlace() && RotationAngle(p.Orientation) < AngleTolerance
}

// RotationAngle returns the rotation angle of a unit quaternion in radians,
// in [0, pi]. q and -q describe the same rotation and give the same angle.
func RotationAngle(q quaternion.Quaternion) float64 {
	w := math.Abs(q.W)
	if w > 1 {
		w = 1
	}
	return 2 * math.Acos(w)
}
