package cubesim

// Phase represents coarse layer-by-layer progress toward the solved state.
// Phases progress from Scrambled (0) to Solved (3), allowing comparison
// with < and > operators.
type Phase int

const (
	// PhaseScrambled indicates the bottom layer is not complete.
	PhaseScrambled Phase = iota

	// PhaseBottomLayer indicates all 9 pieces that start at y = -1 are
	// home and unrotated.
	PhaseBottomLayer

	// PhaseMiddleLayer indicates the bottom and middle layers are complete.
	PhaseMiddleLayer

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseBottomLayer:
		return "bottom_layer"
	case PhaseMiddleLayer:
		return "middle_layer"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseBottomLayer:
		return "Bottom Layer"
	case PhaseMiddleLayer:
		return "Middle Layer"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// IsComplete returns true if the cube is solved.
func (p Phase) IsComplete() bool {
	return p == PhaseSolved
}

// Progress reports which pieces and horizontal layers are solved.
type Progress struct {
	SolvedPieces int
	// Layers is indexed by initial y + 1: bottom, middle, top.
	Layers [3]bool
}

// Phase returns the furthest phase the progress satisfies.
func (p Progress) Phase() Phase {
	switch {
	case p.Layers[0] && p.Layers[1] && p.Layers[2]:
		return PhaseSolved
	case p.Layers[0] && p.Layers[1]:
		return PhaseMiddleLayer
	case p.Layers[0]:
		return PhaseBottomLayer
	default:
		return PhaseScrambled
	}
}

// ProgressOf evaluates a piece set.
func ProgressOf(pieces []Piece) Progress {
	var prog Progress
	prog.Layers = [3]bool{true, true, true}
	for _, p := range pieces {
		if p.Solved() {
			prog.SolvedPieces++
			continue
		}
		prog.Layers[p.Initial.Y+1] = false
	}
	return prog
}

// Progress returns the current solving progress.
func (e *Engine) Progress() Progress {
	return ProgressOf(e.Pieces())
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.Progress().Phase()
}
