package cubesim

import "time"

// Result describes a finished session.
type Result struct {
	Scramble []Move
	Moves    int           // user moves made after the scramble
	Duration time.Duration // from the first user move to the solved state
	Undone   bool          // solved by replaying the solution
}

// Tracker wraps an Engine for one play session: it runs the timer from
// the first move after a scramble until the cube is solved, counts user
// moves, drives solution playback and reports phase changes.
//
// A Tracker is meant to be driven from a single event loop.
type Tracker struct {
	engine *Engine
	now    func() time.Time

	scramble     []Move
	moveCount    int
	startedAt    time.Time
	running      bool
	elapsed      time.Duration
	best         time.Duration
	highestPhase Phase
	pending      []Move
	playedBack   bool
	last         *Result

	moveCallback   func(m Move, elapsed time.Duration)
	phaseCallback  func(phase Phase)
	solvedCallback func(r Result)
}

// NewTracker creates a tracker around e, or around a fresh engine if e is nil.
func NewTracker(e *Engine) *Tracker {
	if e == nil {
		e = NewEngine()
	}
	return &Tracker{
		engine:       e,
		now:          time.Now,
		highestPhase: e.Phase(),
	}
}

// SetClock replaces the time source.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

// SetMoveCallback sets a callback that fires after every user move.
func (t *Tracker) SetMoveCallback(cb func(m Move, elapsed time.Duration)) {
	t.moveCallback = cb
}

// SetPhaseCallback sets a callback that fires when a new highest phase is
// reached.
func (t *Tracker) SetPhaseCallback(cb func(phase Phase)) {
	t.phaseCallback = cb
}

// SetSolvedCallback sets a callback that fires when a timed session ends
// in the solved state.
func (t *Tracker) SetSolvedCallback(cb func(r Result)) {
	t.solvedCallback = cb
}

// Engine returns the underlying engine.
func (t *Tracker) Engine() *Engine {
	return t.engine
}

// Reset resets the cube and the session.
func (t *Tracker) Reset() {
	t.engine.Reset()
	t.clearSession()
	t.highestPhase = PhaseSolved
}

func (t *Tracker) clearSession() {
	t.scramble = nil
	t.moveCount = 0
	t.running = false
	t.elapsed = 0
	t.pending = nil
	t.playedBack = false
	t.last = nil
}

// Scramble scrambles the cube and arms the timer for the first user move.
func (t *Tracker) Scramble() ([]Move, error) {
	moves, err := t.engine.Scramble()
	if err != nil {
		return nil, err
	}
	t.clearSession()
	t.scramble = moves
	t.highestPhase = t.engine.Phase()
	return moves, nil
}

// Apply makes a user move without holding the move mutex.
func (t *Tracker) Apply(m Move) error {
	return t.move(m, false)
}

// Submit makes a user move and holds the move mutex until Settle. It fails
// with ErrRotating while a previous move is still settling.
func (t *Tracker) Submit(m Move) error {
	return t.move(m, true)
}

func (t *Tracker) move(m Move, hold bool) error {
	if len(t.pending) > 0 {
		return ErrRotating
	}
	armed := t.engine.Ready()
	var err error
	if hold {
		err = t.engine.BeginMove(m)
	} else {
		err = t.engine.ApplyMove(m)
	}
	if err != nil {
		return err
	}

	if armed {
		t.startedAt = t.now()
		t.running = true
	}
	t.moveCount++
	if t.moveCallback != nil {
		t.moveCallback(m, t.Elapsed())
	}
	t.checkProgress()
	return nil
}

// Settle releases the move mutex once a move's playback has finished.
func (t *Tracker) Settle() {
	t.engine.SetRotating(false)
}

// Playback queues the solution for replay and returns it. Each call to
// Step applies the next move.
func (t *Tracker) Playback() []Move {
	t.pending = t.engine.Solution()
	t.playedBack = true
	out := make([]Move, len(t.pending))
	copy(out, t.pending)
	return out
}

// Pending returns the number of queued solution moves.
func (t *Tracker) Pending() int {
	return len(t.pending)
}

// Step applies the next queued solution move and holds the move mutex
// until Settle. It returns the move applied and whether more remain.
func (t *Tracker) Step() (Move, bool, error) {
	if len(t.pending) == 0 {
		return Move{}, false, ErrNoPlayback
	}
	m := t.pending[0]
	if err := t.engine.BeginTurn(m); err != nil {
		return Move{}, true, err
	}
	t.pending = t.pending[1:]
	if len(t.pending) == 0 {
		// nothing left to time: the next scramble rearms
		t.engine.SetReady(false)
		t.checkProgress()
	}
	return m, len(t.pending) > 0, nil
}

// checkProgress updates the highest phase and stops the timer when solved.
func (t *Tracker) checkProgress() {
	phase := t.engine.Phase()

	// only a new high fires the callback; phases never go backwards here
	if phase > t.highestPhase {
		t.highestPhase = phase
		if t.phaseCallback != nil {
			t.phaseCallback(phase)
		}
	}

	if phase != PhaseSolved || !t.running {
		return
	}
	t.elapsed = t.now().Sub(t.startedAt)
	t.running = false
	undone := t.playedBack
	if !undone && (t.best == 0 || t.elapsed < t.best) {
		t.best = t.elapsed
	}
	t.last = &Result{
		Scramble: t.scramble,
		Moves:    t.moveCount,
		Duration: t.elapsed,
		Undone:   undone,
	}
	if t.solvedCallback != nil {
		t.solvedCallback(*t.last)
	}
}

// LastResult returns the result of the session that ended since the last
// scramble or reset, if any.
func (t *Tracker) LastResult() (Result, bool) {
	if t.last == nil {
		return Result{}, false
	}
	return *t.last, true
}

// Elapsed returns the session time so far, or the final time once solved.
func (t *Tracker) Elapsed() time.Duration {
	if t.running {
		return t.now().Sub(t.startedAt)
	}
	return t.elapsed
}

// Running reports whether the timer is running.
func (t *Tracker) Running() bool {
	return t.running
}

// Moves returns the number of user moves since the last scramble.
func (t *Tracker) Moves() int {
	return t.moveCount
}

// Best returns the fastest hand-solved time of this tracker, or 0.
func (t *Tracker) Best() time.Duration {
	return t.best
}

// HighestPhase returns the highest phase reached since the last scramble.
func (t *Tracker) HighestPhase() Phase {
	return t.highestPhase
}

// CurrentPhase returns the current phase of the cube.
func (t *Tracker) CurrentPhase() Phase {
	return t.engine.Phase()
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.engine.IsSolved()
}
