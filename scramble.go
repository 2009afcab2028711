package cubesim

import "math/rand/v2"

// DefaultScrambleLength is the number of random quarter turns in a scramble.
const DefaultScrambleLength = 20

// RandomMove draws a move with uniformly random axis, slice and direction.
func RandomMove(r *rand.Rand) Move {
	dir := Clockwise
	if r.IntN(2) == 1 {
		dir = CounterClockwise
	}
	return Move{
		Axis:      Axis(r.IntN(3)),
		Slice:     r.IntN(3) - 1,
		Direction: dir,
	}
}

// Scramble resets the cube, applies the configured number of random quarter
// turns without recording them, and sets the ready flag. It returns the
// moves it applied.
//
// The sequence is not filtered: consecutive moves may cancel, and in rare
// cases the result is the solved state.
func (e *Engine) Scramble() ([]Move, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.rotating {
		return nil, ErrRotating
	}

	e.reset()
	moves := make([]Move, e.cfg.scrambleLength)
	for i := range moves {
		moves[i] = RandomMove(e.cfg.rng)
		e.turn(moves[i])
	}
	e.scramble = moves
	// flipped only after the last scramble move so none of them is recorded
	e.ready = true

	e.log.Info("cube scrambled", "moves", len(moves), "scramble", FormatMoves(moves))
	out := make([]Move, len(moves))
	copy(out, moves)
	return out, nil
}
