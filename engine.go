package cubesim

import (
	"log/slog"
	"sync"

	"github.com/westphae/quaternion"
)

// Engine holds the logical state of one puzzle: the 26 pieces, the
// rotating and ready flags, and the history of user moves.
//
// Moves mutate the engine in place and return nothing but an error.
// Renderers read through Pieces, which returns a copy. Methods are safe
// for concurrent use, but moves are serialized: while the rotating flag is
// held every move is rejected with ErrRotating.
type Engine struct {
	cfg *config
	log *slog.Logger

	mu       sync.RWMutex
	pieces   []Piece
	rotating bool
	ready    bool
	history  []Move
	scramble []Move
}

// NewEngine creates an engine in the solved state.
func NewEngine(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Engine{
		cfg:    cfg,
		log:    cfg.logger,
		pieces: NewPieces(),
	}
}

// Reset rebuilds the solved piece set, clears the history and both flags.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
	e.rotating = false
	e.log.Info("cube reset")
}

func (e *Engine) reset() {
	e.pieces = NewPieces()
	e.history = nil
	e.scramble = nil
	e.ready = false
}

// Turn applies m without recording it in the history and without touching
// the ready flag. Scrambles and solution playback use it.
func (e *Engine) Turn(m Move) error {
	return e.apply(m, false, false)
}

// ApplyMove applies a user move: it clears the ready flag, mutates the
// state and appends m to the history.
func (e *Engine) ApplyMove(m Move) error {
	return e.apply(m, true, false)
}

// BeginMove applies a user move like ApplyMove and takes the move mutex in
// the same step. The caller releases it with SetRotating(false) once the
// move's playback has settled.
func (e *Engine) BeginMove(m Move) error {
	return e.apply(m, true, true)
}

// BeginTurn is the unrecorded counterpart of BeginMove.
func (e *Engine) BeginTurn(m Move) error {
	return e.apply(m, false, true)
}

func (e *Engine) apply(m Move, record, hold bool) error {
	if err := m.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.rotating {
		return ErrRotating
	}
	if record && e.ready {
		e.ready = false
		e.log.Debug("first move after scramble", "move", m.Notation())
	}
	n := e.turn(m)
	if record && e.cfg.moveHistory {
		e.history = append(e.history, m)
	}
	e.rotating = hold
	e.log.Debug("move", "move", m.Notation(), "recorded", record, "pieces", n)
	return nil
}

// ApplyMoves applies a sequence of user moves, stopping at the first error.
func (e *Engine) ApplyMoves(moves ...Move) error {
	for _, m := range moves {
		if err := e.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// turn rotates every piece in the selected slice and returns how many
// pieces moved. A slice that selects nothing is a no-op.
func (e *Engine) turn(m Move) int {
	rot := m.Rotation()
	moved := 0
	for i := range e.pieces {
		p := &e.pieces[i]
		if !inSlice(m.Axis.component(p.Position), m.Slice) {
			continue
		}
		p.Position = SnapToGrid(rot.RotateVec3(p.Position))
		// world frame: the new rotation is applied after the accumulated one
		p.Orientation = quaternion.Prod(rot, p.Orientation).Unit()
		moved++
	}
	return moved
}

// Pieces returns a copy of the current piece set in creation order.
func (e *Engine) Pieces() []Piece {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Piece, len(e.pieces))
	copy(out, e.pieces)
	return out
}

// Piece returns the piece with the given id.
func (e *Engine) Piece(id string) (Piece, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, p := range e.pieces {
		if p.ID == id {
			return p, true
		}
	}
	return Piece{}, false
}

// CubiesOnFace returns the ids of the pieces currently in the given slice,
// in creation order. Renderers use it to pick the meshes to animate.
func (e *Engine) CubiesOnFace(axis Axis, slice int) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var ids []string
	for _, p := range e.pieces {
		if inSlice(axis.component(p.Position), slice) {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// IsSolved reports whether every piece is back at its initial coordinate
// with no net rotation.
func (e *Engine) IsSolved() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, p := range e.pieces {
		if !p.Solved() {
			return false
		}
	}
	return true
}

// Rotating reports whether a move's playback currently holds the engine.
func (e *Engine) Rotating() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rotating
}

// SetRotating takes (true) or releases (false) the move mutex.
func (e *Engine) SetRotating(rotating bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rotating = rotating
}

// Ready reports whether the cube was just scrambled and awaits its first
// user move.
func (e *Engine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ready
}

// SetReady sets the ready flag.
func (e *Engine) SetReady(ready bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ready = ready
}
