package cubesim

import "strings"

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face represents one of the six outer faces of the puzzle.
type Face int

const (
	FaceU Face = 0 // Up (+y)
	FaceD Face = 1 // Down (-y)
	FaceF Face = 2 // Front (+z)
	FaceB Face = 3 // Back (-z)
	FaceR Face = 4 // Right (+x)
	FaceL Face = 5 // Left (-x)
)

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceR:
		return "R"
	case FaceL:
		return "L"
	default:
		return "?"
	}
}

// SolvedColor returns the color of a face when solved.
func (f Face) SolvedColor() Color {
	return Color(f)
}

// Home returns the face a color belongs to when solved.
func (c Color) Home() Face {
	return Face(c)
}

// Facelets is the sticker view of the cube. Each face has 9 facelets
// indexed as seen from outside the cube:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// U has the back edge on top, D the front edge; the four side faces have U
// on top.
type Facelets [6][9]Color

// faceOf maps an outward unit normal to its face.
func faceOf(n Coord) Face {
	switch {
	case n.Y == 1:
		return FaceU
	case n.Y == -1:
		return FaceD
	case n.Z == 1:
		return FaceF
	case n.Z == -1:
		return FaceB
	case n.X == 1:
		return FaceR
	default:
		return FaceL
	}
}

// faceletIndex returns the index of the facelet at grid position p on face f.
func faceletIndex(f Face, p Coord) int {
	var row, col int
	switch f {
	case FaceU:
		row, col = p.Z+1, p.X+1
	case FaceD:
		row, col = 1-p.Z, p.X+1
	case FaceF:
		row, col = 1-p.Y, p.X+1
	case FaceB:
		row, col = 1-p.Y, 1-p.X
	case FaceR:
		row, col = 1-p.Y, 1-p.Z
	case FaceL:
		row, col = 1-p.Y, p.Z+1
	}
	return row*3 + col
}

// stickerNormals returns the outward normals of the stickers a piece
// carries, in its unrotated frame.
func stickerNormals(c Coord) []Coord {
	var normals []Coord
	if c.X != 0 {
		normals = append(normals, Coord{X: c.X})
	}
	if c.Y != 0 {
		normals = append(normals, Coord{Y: c.Y})
	}
	if c.Z != 0 {
		normals = append(normals, Coord{Z: c.Z})
	}
	return normals
}

// Facelets projects the piece state onto the 54 stickers.
func (e *Engine) Facelets() Facelets {
	return FaceletsOf(e.Pieces())
}

// FaceletsOf projects a piece set onto the 54 stickers. Each sticker keeps
// the color of the face it started on and now faces along its orientation.
func FaceletsOf(pieces []Piece) Facelets {
	var fl Facelets
	for _, p := range pieces {
		pos := p.Grid()
		for _, n0 := range stickerNormals(p.Initial) {
			color := faceOf(n0).SolvedColor()
			v := SnapToGrid(p.Orientation.RotateVec3(n0.Vec()))
			n := Coord{X: int(v.X), Y: int(v.Y), Z: int(v.Z)}
			face := faceOf(n)
			fl[face][faceletIndex(face, pos)] = color
		}
	}
	return fl
}

// Uniform reports whether every face shows a single color. Whole-cube
// reorientations through slice moves are uniform but not solved.
func (fl Facelets) Uniform() bool {
	for f := 0; f < 6; f++ {
		for i := 1; i < 9; i++ {
			if fl[f][i] != fl[f][0] {
				return false
			}
		}
	}
	return true
}

// faceletOrder is the conventional URFDLB face order of facelet strings.
var faceletOrder = []Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

// String returns the 54-character facelet string in URFDLB order, naming
// each sticker by its home face, e.g. "UUUUUUUUURRR...".
func (fl Facelets) String() string {
	var b strings.Builder
	b.Grow(54)
	for _, f := range faceletOrder {
		for i := 0; i < 9; i++ {
			b.WriteString(fl[f][i].Home().String())
		}
	}
	return b.String()
}

// Net returns a text representation of the cube as an unfolded net.
func (fl Facelets) Net() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(fl[FaceU][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(fl[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(fl[FaceD][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FaceletString returns the engine's 54-character facelet string.
func (e *Engine) FaceletString() string {
	return e.Facelets().String()
}

// String returns the cube as an unfolded net.
func (e *Engine) String() string {
	return e.Facelets().Net()
}
