package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

func newTestSession(t *testing.T) (*Session, *storage.DB) {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "rec.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSession(db, nil), db
}

func TestSessionLifecycle(t *testing.T) {
	s, db := newTestSession(t)
	assert.Equal(t, StateIdle, s.State())

	id, err := s.Start([]cubesim.Move{cubesim.R, cubesim.U})
	require.NoError(t, err)
	assert.Equal(t, StateRecording, s.State())
	assert.Equal(t, id, s.SolveID())

	_, err = s.Start(nil)
	assert.ErrorIs(t, err, ErrSessionActive)

	require.NoError(t, s.RecordMove(cubesim.UPrime, 0))
	require.NoError(t, s.RecordMove(cubesim.RPrime, 800*time.Millisecond))
	require.NoError(t, s.MarkPhase(cubesim.PhaseSolved, 800*time.Millisecond))
	assert.Equal(t, 2, s.MoveCount())

	require.NoError(t, s.End(storage.SolveResult{Duration: 800 * time.Millisecond, MoveCount: 2, Outcome: storage.OutcomeSolved}))
	assert.Equal(t, StateEnded, s.State())
	assert.ErrorIs(t, s.RecordMove(cubesim.R, 0), ErrNoSessionActive)

	solve, err := storage.NewSolveRepository(db).Get(id)
	require.NoError(t, err)
	require.NotNil(t, solve.ScrambleText)
	assert.Equal(t, "R U", *solve.ScrambleText)
	assert.True(t, solve.Solved())

	marks, err := storage.NewPhaseRepository(db).GetPhaseMarks(id)
	require.NoError(t, err)
	require.Len(t, marks, 1)
	assert.Equal(t, 1, marks[0].MoveIndex)
}

func TestAbandon(t *testing.T) {
	s, db := newTestSession(t)
	require.NoError(t, s.Abandon(0), "abandon while idle is a no-op")

	id, err := s.Start(nil)
	require.NoError(t, err)
	require.NoError(t, s.RecordMove(cubesim.F, 10*time.Millisecond))
	require.NoError(t, s.Abandon(time.Second))

	solve, err := storage.NewSolveRepository(db).Get(id)
	require.NoError(t, err)
	require.NotNil(t, solve.Outcome)
	assert.Equal(t, storage.OutcomeAbandoned, *solve.Outcome)
	assert.Equal(t, 1, solve.MoveCount)
}

func TestAttachRecordsTrackedSolve(t *testing.T) {
	s, db := newTestSession(t)
	tr := cubesim.NewTracker(cubesim.NewEngine(cubesim.WithSeed(3), cubesim.WithScrambleLength(1)))
	s.Attach(tr)

	scramble, err := tr.Scramble()
	require.NoError(t, err)
	id, err := s.Start(scramble)
	require.NoError(t, err)

	inv := scramble[0].Inverse()
	require.NoError(t, tr.Apply(inv))
	assert.True(t, tr.IsSolved())
	assert.Equal(t, StateEnded, s.State())

	moves, err := storage.NewMoveRepository(db).GetBySolve(id)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, inv.Notation(), moves[0].Notation)

	solve, err := storage.NewSolveRepository(db).Get(id)
	require.NoError(t, err)
	assert.True(t, solve.Solved())
	assert.Equal(t, 1, solve.MoveCount)

	marks, err := storage.NewPhaseRepository(db).GetPhaseMarks(id)
	require.NoError(t, err)
	require.NotEmpty(t, marks)
	p, ok := marks[len(marks)-1].Phase()
	assert.True(t, ok)
	assert.Equal(t, cubesim.PhaseSolved, p)
}

func TestAttachRecordsPlayback(t *testing.T) {
	s, db := newTestSession(t)
	tr := cubesim.NewTracker(cubesim.NewEngine(cubesim.WithSeed(4), cubesim.WithScrambleLength(6)))
	s.Attach(tr)

	scramble, err := tr.Scramble()
	require.NoError(t, err)
	id, err := s.Start(scramble)
	require.NoError(t, err)

	require.NoError(t, tr.Apply(cubesim.D))
	tr.Playback()
	for tr.Pending() > 0 {
		_, _, err := tr.Step()
		require.NoError(t, err)
		tr.Settle()
	}

	solve, err := storage.NewSolveRepository(db).Get(id)
	require.NoError(t, err)
	require.NotNil(t, solve.Outcome)
	assert.Equal(t, storage.OutcomeUndone, *solve.Outcome)
}
