package cubesim

import (
	"fmt"
	"math"
	"strings"

	"github.com/westphae/quaternion"
)

// Axis identifies one of the three rotation axes of the puzzle.
type Axis int

const (
	AxisX Axis = iota // Left to right
	AxisY             // Down to up
	AxisZ             // Back to front
)

// String returns the lowercase axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// ParseAxis parses "x", "y" or "z" (case-insensitive).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("%w: unknown axis %q", ErrInvalidMove, s)
}

func (a Axis) valid() bool {
	return a >= AxisX && a <= AxisZ
}

// component returns the coordinate of v along the axis.
func (a Axis) component(v quaternion.Vec3) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// Direction is the sense of a quarter turn, viewed from the positive end of
// the axis looking back toward the origin.
type Direction int

const (
	CounterClockwise Direction = 1  // +90 degrees, right-hand rule
	Clockwise        Direction = -1 // -90 degrees
)

// Move is a quarter turn of the layer whose coordinate along Axis equals Slice.
type Move struct {
	Axis      Axis
	Slice     int // -1, 0 or 1
	Direction Direction
}

// Validate reports whether the move lies inside the puzzle's move domain.
func (m Move) Validate() error {
	if !m.Axis.valid() {
		return fmt.Errorf("%w: axis %d", ErrInvalidMove, int(m.Axis))
	}
	if m.Slice < -1 || m.Slice > 1 {
		return fmt.Errorf("%w: slice %d", ErrInvalidMove, m.Slice)
	}
	if m.Direction != CounterClockwise && m.Direction != Clockwise {
		return fmt.Errorf("%w: direction %d", ErrInvalidMove, int(m.Direction))
	}
	return nil
}

// Inverse returns the move that undoes m: same layer, opposite direction.
func (m Move) Inverse() Move {
	inv := m
	inv.Direction = -m.Direction
	return inv
}

// Rotation returns the unit quaternion for a 90 degree turn times Direction
// about the positive unit vector of Axis.
func (m Move) Rotation() quaternion.Quaternion {
	half := float64(m.Direction) * math.Pi / 4
	s := math.Sin(half)
	q := quaternion.Quaternion{W: math.Cos(half)}
	switch m.Axis {
	case AxisX:
		q.X = s
	case AxisY:
		q.Y = s
	case AxisZ:
		q.Z = s
	}
	return q
}

// faceTurn describes a notation letter: the layer it turns and which
// Direction counts as its clockwise (unprimed) turn.
type faceTurn struct {
	letter byte
	axis   Axis
	slice  int
	cw     Direction
}

// Outer faces turn clockwise as seen facing them; M follows L, E follows D
// and S follows F.
var faceTurns = []faceTurn{
	{'R', AxisX, 1, Clockwise},
	{'L', AxisX, -1, CounterClockwise},
	{'M', AxisX, 0, CounterClockwise},
	{'U', AxisY, 1, Clockwise},
	{'D', AxisY, -1, CounterClockwise},
	{'E', AxisY, 0, CounterClockwise},
	{'F', AxisZ, 1, Clockwise},
	{'B', AxisZ, -1, CounterClockwise},
	{'S', AxisZ, 0, Clockwise},
}

// Notation returns the standard notation for this move.
// Examples: R, R', M, E', S
func (m Move) Notation() string {
	for _, ft := range faceTurns {
		if ft.axis != m.Axis || ft.slice != m.Slice {
			continue
		}
		if m.Direction == ft.cw {
			return string(ft.letter)
		}
		return string(ft.letter) + "'"
	}
	return fmt.Sprintf("{%s,%d,%d}", m.Axis, m.Slice, int(m.Direction))
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a single quarter-turn token such as R, U' or M.
// Half turns (R2) are not a single move; use ParseMoves for those.
func ParseMove(s string) (Move, error) {
	moves, err := parseToken(s)
	if err != nil {
		return Move{}, err
	}
	if len(moves) != 1 {
		return Move{}, fmt.Errorf("%w: %q is not a quarter turn", ErrInvalidNotation, s)
	}
	return moves[0], nil
}

// parseToken parses one notation token into the quarter turns it denotes.
func parseToken(s string) ([]Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty move", ErrInvalidNotation)
	}

	var ft *faceTurn
	for i := range faceTurns {
		if faceTurns[i].letter == s[0] {
			ft = &faceTurns[i]
			break
		}
	}
	if ft == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	move := Move{Axis: ft.axis, Slice: ft.slice, Direction: ft.cw}
	switch s[1:] {
	case "":
		return []Move{move}, nil
	case "'", "`":
		return []Move{move.Inverse()}, nil
	case "2", "2'", "2`":
		return []Move{move, move}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
}

// ParseMoves parses a space-separated sequence of moves.
// Half turns expand to two quarter turns, so "R2 U" yields three moves.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		parsed, err := parseToken(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, parsed...)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseMoves returns the sequence that undoes moves: reversed, with every
// move inverted.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
