package cubesim

import (
	"strings"
	"testing"
)

const solvedFacelets = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

func TestSolvedFacelets(t *testing.T) {
	e := NewEngine()
	if got := e.FaceletString(); got != solvedFacelets {
		t.Errorf("Expected %s, got %s", solvedFacelets, got)
	}
	if !e.Facelets().Uniform() {
		t.Error("Solved cube should be uniform")
	}
}

func TestRMoveFacelets(t *testing.T) {
	e := NewEngine()
	e.ApplyMove(R)
	fl := e.Facelets()

	for _, i := range []int{2, 5, 8} {
		if fl[FaceU][i] != Green {
			t.Errorf("U[%d] should be Green after R, got %v", i, fl[FaceU][i])
		}
		if fl[FaceF][i] != Yellow {
			t.Errorf("F[%d] should be Yellow after R, got %v", i, fl[FaceF][i])
		}
		if fl[FaceD][i] != Blue {
			t.Errorf("D[%d] should be Blue after R, got %v", i, fl[FaceD][i])
		}
	}
	for _, i := range []int{0, 3, 6} {
		if fl[FaceB][i] != White {
			t.Errorf("B[%d] should be White after R, got %v", i, fl[FaceB][i])
		}
	}
	for i := 0; i < 9; i++ {
		if fl[FaceR][i] != Red {
			t.Errorf("R[%d] should stay Red, got %v", i, fl[FaceR][i])
		}
		if fl[FaceL][i] != Orange {
			t.Errorf("L[%d] should stay Orange, got %v", i, fl[FaceL][i])
		}
	}
	if fl.Uniform() {
		t.Error("R should break uniformity")
	}
}

func TestStickerCountsPreserved(t *testing.T) {
	e := NewEngine(WithSeed(12))
	e.Scramble()
	counts := make(map[byte]int)
	for _, c := range []byte(e.FaceletString()) {
		counts[c]++
	}
	for _, f := range "URFDLB" {
		if counts[byte(f)] != 9 {
			t.Errorf("Expected 9 %c stickers, got %d", f, counts[byte(f)])
		}
	}
}

func TestSliceMovesKeepCentersOnOtherAxis(t *testing.T) {
	// M moves the U/F/D/B centers but never the R/L ones
	e := NewEngine()
	e.ApplyMove(M)
	fl := e.Facelets()
	if fl[FaceR][4] != Red || fl[FaceL][4] != Orange {
		t.Error("M should not move the R and L centers")
	}
	if fl[FaceU][4] == White {
		t.Error("M should move the U center")
	}
}

func TestNet(t *testing.T) {
	net := NewEngine().String()
	lines := strings.Split(strings.TrimRight(net, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("Expected 9 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[3], "O O O G G G R R R B B B") {
		t.Errorf("Unexpected middle row: %q", lines[3])
	}
}

func TestProgressAndPhase(t *testing.T) {
	e := NewEngine()
	if e.Phase() != PhaseSolved {
		t.Errorf("Solved cube phase = %v", e.Phase())
	}
	if got := e.Progress().SolvedPieces; got != PieceCount {
		t.Errorf("Expected %d solved pieces, got %d", PieceCount, got)
	}

	e.ApplyMove(U)
	if e.Phase() != PhaseMiddleLayer {
		t.Errorf("After U phase = %v, want middle_layer", e.Phase())
	}

	e.ApplyMove(E)
	if e.Phase() != PhaseBottomLayer {
		t.Errorf("After U E phase = %v, want bottom_layer", e.Phase())
	}

	e.ApplyMove(R)
	if e.Phase() != PhaseScrambled {
		t.Errorf("After U E R phase = %v, want scrambled", e.Phase())
	}
}

func TestPhaseNames(t *testing.T) {
	if PhaseBottomLayer.String() != "bottom_layer" || PhaseBottomLayer.DisplayName() != "Bottom Layer" {
		t.Error("Unexpected bottom layer names")
	}
	if !PhaseSolved.IsComplete() || PhaseMiddleLayer.IsComplete() {
		t.Error("Only PhaseSolved should be complete")
	}
}
