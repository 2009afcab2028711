package cubesim

import (
	"errors"
	"math"
	"testing"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		input string
		want  Move
	}{
		{"R", R},
		{"R'", RPrime},
		{"L", L},
		{"U'", UPrime},
		{"M", M},
		{"E'", EPrime},
		{"S", S},
		{" B ", B},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.input)
		if err != nil {
			t.Errorf("ParseMove(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMove(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestParseMoveErrors(t *testing.T) {
	for _, input := range []string{"", "X", "R3", "r", "R2"} {
		if _, err := ParseMove(input); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) = %v, want ErrInvalidNotation", input, err)
		}
	}
}

func TestParseMovesExpandsHalfTurns(t *testing.T) {
	moves, err := ParseMoves("R2 U F'")
	if err != nil {
		t.Fatalf("ParseMoves error: %v", err)
	}
	if got := FormatMoves(moves); got != "R R U F'" {
		t.Errorf("Expected %q, got %q", "R R U F'", got)
	}

	if _, err := ParseMoves("R Q"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("Expected ErrInvalidNotation, got %v", err)
	}
}

func TestNotationRoundTrip(t *testing.T) {
	for _, m := range AllMoves {
		got, err := ParseMove(m.Notation())
		if err != nil {
			t.Errorf("ParseMove(%q) error: %v", m.Notation(), err)
			continue
		}
		if got != m {
			t.Errorf("Round trip of %q gave %+v", m.Notation(), got)
		}
	}
}

func TestFormatMovesEmpty(t *testing.T) {
	if got := FormatMoves(nil); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestInverseMoves(t *testing.T) {
	got := FormatMoves(InverseMoves(SexyMove))
	if got != "U R U' R'" {
		t.Errorf("Expected %q, got %q", "U R U' R'", got)
	}
	if FormatMoves(InverseMoves(SexyMove)) != FormatMoves(InverseSexyMove) {
		t.Error("Inverse of sexy move should equal inverse sexy move")
	}
}

func TestInverseTwiceIsIdentity(t *testing.T) {
	for _, m := range AllMoves {
		if m.Inverse().Inverse() != m {
			t.Errorf("Inverse twice of %v changed the move", m)
		}
	}
}

func TestRotationIsUnitQuarterTurn(t *testing.T) {
	for _, m := range AllMoves {
		q := m.Rotation()
		norm := q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
		if math.Abs(norm-1) > 1e-12 {
			t.Errorf("%v rotation not unit: %f", m, norm)
		}
		if math.Abs(RotationAngle(q)-math.Pi/2) > 1e-9 {
			t.Errorf("%v rotation angle %f, want pi/2", m, RotationAngle(q))
		}
	}
}

func TestParseAxis(t *testing.T) {
	for _, s := range []string{"x", "Y", " z "} {
		if _, err := ParseAxis(s); err != nil {
			t.Errorf("ParseAxis(%q) error: %v", s, err)
		}
	}
	if _, err := ParseAxis("w"); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("Expected ErrInvalidMove, got %v", err)
	}
}
