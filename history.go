package cubesim

// History returns a copy of the user moves recorded since the last reset,
// scramble or solution. Scramble moves never appear here.
func (e *Engine) History() []Move {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Move, len(e.history))
	copy(out, e.history)
	return out
}

// ScrambleMoves returns a copy of the moves applied by the last Scramble,
// or nil if the state has been reset or solved since.
func (e *Engine) ScrambleMoves() []Move {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.scramble == nil {
		return nil
	}
	out := make([]Move, len(e.scramble))
	copy(out, e.scramble)
	return out
}

// Solution returns the sequence that undoes every recorded user move, most
// recent first, followed by the inverse of the scramble those moves started
// from. Both records are cleared. With nothing recorded, or with move
// history disabled, the result is empty.
//
// Replaying the result with Turn reaches the solved state only if every
// state change since the last reset went through Scramble or ApplyMove.
func (e *Engine) Solution() []Move {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.cfg.moveHistory {
		// user moves were never recorded, so the scramble alone cannot be undone
		e.scramble = nil
		return []Move{}
	}
	solution := append(InverseMoves(e.history), InverseMoves(e.scramble)...)
	e.log.Info("solution computed", "user_moves", len(e.history), "scramble_moves", len(e.scramble))
	e.history = nil
	e.scramble = nil
	return solution
}
