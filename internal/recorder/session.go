// Package recorder persists play sessions driven by a cubesim.Tracker.
package recorder

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/logging"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var (
	ErrSessionActive   = errors.New("recorder: solve already in progress")
	ErrNoSessionActive = errors.New("recorder: no solve in progress")
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session records one solve at a time: the scramble, every user move with
// its offset from the first move, the phases reached and the outcome.
type Session struct {
	log *slog.Logger

	mu        sync.RWMutex
	state     SessionState
	solveID   string
	moveIndex int

	solveRepo *storage.SolveRepository
	moveRepo  *storage.MoveRepository
	phaseRepo *storage.PhaseRepository
}

// NewSession creates a new session manager.
func NewSession(db *storage.DB, logger *slog.Logger) *Session {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Session{
		log:       logger,
		state:     StateIdle,
		solveRepo: storage.NewSolveRepository(db),
		moveRepo:  storage.NewMoveRepository(db),
		phaseRepo: storage.NewPhaseRepository(db),
	}
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SolveID returns the current solve ID.
func (s *Session) SolveID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.solveID
}

// MoveCount returns the number of moves recorded in the current solve.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moveIndex
}

// Start starts a new solve recording session for a scramble.
func (s *Session) Start(scramble []cubesim.Move) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", ErrSessionActive
	}

	solveID, err := s.solveRepo.Create(cubesim.FormatMoves(scramble))
	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	s.solveID = solveID
	s.moveIndex = 0
	s.state = StateRecording
	s.log.Info("solve started", "solve_id", solveID, "scramble_moves", len(scramble))

	return solveID, nil
}

// RecordMove stores a user move made elapsed after the timer started.
func (s *Session) RecordMove(m cubesim.Move, elapsed time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNoSessionActive
	}

	if _, err := s.moveRepo.Create(s.solveID, s.moveIndex, elapsed.Milliseconds(), m); err != nil {
		return fmt.Errorf("failed to record move: %w", err)
	}
	s.moveIndex++
	return nil
}

// MarkPhase stores the first time a phase was reached.
func (s *Session) MarkPhase(p cubesim.Phase, elapsed time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNoSessionActive
	}

	// the mark belongs to the move that reached it
	idx := s.moveIndex - 1
	if idx < 0 {
		idx = 0
	}
	if _, err := s.phaseRepo.CreatePhaseMark(s.solveID, elapsed.Milliseconds(), p, idx); err != nil {
		return fmt.Errorf("failed to mark phase: %w", err)
	}
	s.log.Debug("phase reached", "solve_id", s.solveID, "phase", p.String())
	return nil
}

// End ends the current solve with the given result.
func (s *Session) End(result storage.SolveResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNoSessionActive
	}

	if err := s.solveRepo.End(s.solveID, result); err != nil {
		return fmt.Errorf("failed to end solve: %w", err)
	}

	s.state = StateEnded
	s.log.Info("solve ended",
		"solve_id", s.solveID,
		"outcome", result.Outcome,
		"duration", result.Duration,
		"moves", result.MoveCount,
	)
	return nil
}

// Abandon ends the current solve unsolved. It is a no-op when idle.
func (s *Session) Abandon(elapsed time.Duration) error {
	if s.State() != StateRecording {
		return nil
	}
	return s.End(storage.SolveResult{
		Duration:  elapsed,
		MoveCount: s.MoveCount(),
		Outcome:   storage.OutcomeAbandoned,
	})
}

// Attach wires the session to a tracker's move, phase and solved callbacks.
// Errors are logged; the tracker keeps running if the database fails.
func (s *Session) Attach(t *cubesim.Tracker) {
	t.SetMoveCallback(func(m cubesim.Move, elapsed time.Duration) {
		if err := s.RecordMove(m, elapsed); err != nil && !errors.Is(err, ErrNoSessionActive) {
			s.log.Error("record move failed", "error", err)
		}
	})
	t.SetPhaseCallback(func(p cubesim.Phase) {
		if err := s.MarkPhase(p, t.Elapsed()); err != nil && !errors.Is(err, ErrNoSessionActive) {
			s.log.Error("mark phase failed", "error", err)
		}
	})
	t.SetSolvedCallback(func(r cubesim.Result) {
		outcome := storage.OutcomeSolved
		if r.Undone {
			outcome = storage.OutcomeUndone
		}
		err := s.End(storage.SolveResult{
			Duration:  r.Duration,
			MoveCount: r.Moves,
			Outcome:   outcome,
		})
		if err != nil && !errors.Is(err, ErrNoSessionActive) {
			s.log.Error("end solve failed", "error", err)
		}
	})
}
