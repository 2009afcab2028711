package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/recorder"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

func TestKeyToMove(t *testing.T) {
	tests := []struct {
		key  string
		want cubesim.Move
		ok   bool
	}{
		{"r", cubesim.R, true},
		{"R", cubesim.RPrime, true},
		{"u", cubesim.U, true},
		{"M", cubesim.MPrime, true},
		{"s", cubesim.S, true},
		{"x", cubesim.Move{}, false},
		{"enter", cubesim.Move{}, false},
		{"1", cubesim.Move{}, false},
	}
	for _, tt := range tests {
		got, ok := keyToMove(tt.key)
		assert.Equal(t, tt.ok, ok, "key %q", tt.key)
		if tt.ok {
			assert.Equal(t, tt.want, got, "key %q", tt.key)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.50s", formatDuration(1500*time.Millisecond))
	assert.Equal(t, "2m5.0s", formatDuration(2*time.Minute+5*time.Second))
}

func TestTailMoves(t *testing.T) {
	moves := []cubesim.Move{cubesim.R, cubesim.U, cubesim.F}
	assert.Equal(t, "R U F", tailMoves(moves, 5))
	assert.Equal(t, "... U F", tailMoves(moves, 2))
}

func TestFormatMoveRecords(t *testing.T) {
	records := []storage.MoveRecord{
		{MoveIndex: 0, TsMs: 0, Axis: "x", Slice: 1, Direction: -1, Notation: "R"},
		{MoveIndex: 1, TsMs: 250, Axis: "y", Slice: 1, Direction: 1, Notation: "U'"},
	}

	txt, err := formatMoveRecords(records, "txt")
	require.NoError(t, err)
	assert.Equal(t, "R U'", txt)

	js, err := formatMoveRecords(records, "JSON")
	require.NoError(t, err)
	assert.Contains(t, js, `"notation": "U'"`)
	assert.Contains(t, js, `"ts_ms": 250`)

	_, err = formatMoveRecords(records, "xml")
	assert.ErrorContains(t, err, "unknown format")
}

// runCLI executes the root command with fresh flag values.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dbPath, verbose = "", false
	scrambleLength, scrambleSeed, scrambleNet = 0, 0, false
	applyScramble, applySolution = "", false
	historyLimit = 10
	showSolveID, showLast, showJSON = "", false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScrambleCommand(t *testing.T) {
	out, err := runCLI(t, "scramble", "--length", "7", "--seed", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	moves, err := cubesim.ParseMoves(lines[0])
	require.NoError(t, err)
	assert.Len(t, moves, 7)
	assert.Len(t, lines[1], 54)

	again, err := runCLI(t, "scramble", "--length", "7", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestApplyCommand(t *testing.T) {
	out, err := runCLI(t, "apply", "R U R' U'")
	require.NoError(t, err)
	assert.Contains(t, out, "Solved:   false")

	out, err = runCLI(t, "apply", "--scramble", "F B2", "R", "--solution")
	require.NoError(t, err)
	assert.Contains(t, out, "Solution: R' B' B' F'")

	out, err = runCLI(t, "apply", "R", "R'")
	require.NoError(t, err)
	assert.Contains(t, out, "Facelets: UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB")
	assert.Contains(t, out, "Phase:    Solved")

	_, err = runCLI(t, "apply", "R Q")
	assert.ErrorIs(t, err, cubesim.ErrInvalidNotation)
}

func TestHistoryCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.db")

	out, err := runCLI(t, "history", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions recorded yet")

	db, err := storage.Open(path)
	require.NoError(t, err)
	repo := storage.NewSolveRepository(db)
	id, err := repo.Create("R U")
	require.NoError(t, err)
	require.NoError(t, repo.End(id, storage.SolveResult{Duration: 12 * time.Second, MoveCount: 9, Outcome: storage.OutcomeSolved}))
	require.NoError(t, db.Close())

	out, err = runCLI(t, "history", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, id[:8])
	assert.Contains(t, out, "Best: 12.00s in 9 moves")
}

func TestShowCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "show.db")

	_, err := runCLI(t, "show", "--db", path)
	assert.ErrorContains(t, err, "specify --id or --last")

	db, err := storage.Open(path)
	require.NoError(t, err)
	id, err := storage.NewSolveRepository(db).Create("F")
	require.NoError(t, err)
	moves := storage.NewMoveRepository(db)
	for i, m := range []cubesim.Move{cubesim.R, cubesim.RPrime, cubesim.FPrime} {
		_, err := moves.Create(id, i, int64(i)*500, m)
		require.NoError(t, err)
	}
	_, err = storage.NewPhaseRepository(db).CreatePhaseMark(id, 1000, cubesim.PhaseSolved, 2)
	require.NoError(t, err)
	require.NoError(t, storage.NewSolveRepository(db).End(id, storage.SolveResult{Duration: 1500 * time.Millisecond, MoveCount: 3, Outcome: storage.OutcomeSolved}))
	require.NoError(t, db.Close())

	out, err := runCLI(t, "show", "--db", path, "--last")
	require.NoError(t, err)
	assert.Contains(t, out, "Session "+id+" (solved)")
	assert.Contains(t, out, "Moves:    3 (1 after cancelling, 33% efficient)")
	assert.Contains(t, out, "Cancellations: 1")
	assert.Contains(t, out, "Solved")

	out, err = runCLI(t, "show", "--db", path, "--id", id, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"optimized_moves": 1`)
	assert.Contains(t, out, `"outcome": "solved"`)

	_, err = runCLI(t, "show", "--db", path, "--id", "missing")
	assert.ErrorContains(t, err, "no session found")
}

// drive feeds msg to the model and runs the commands it returns until
// none is left.
func drive(m *playModel, msg tea.Msg) {
	for msg != nil {
		_, cmd := m.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
		if _, ok := msg.(tea.QuitMsg); ok {
			return
		}
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlayModelMoves(t *testing.T) {
	tracker := cubesim.NewTracker(cubesim.NewEngine())
	m := newPlayModel(tracker, nil, 0)

	drive(m, key("r"))
	assert.False(t, tracker.IsSolved())
	assert.False(t, tracker.Engine().Rotating(), "settled after the move")

	drive(m, key("R"))
	assert.True(t, tracker.IsSolved())
	assert.Equal(t, "R R'", cubesim.FormatMoves(m.moves))
	assert.Contains(t, m.View(), "SOLVED")
}

func TestPlayModelRejectsWhileRotating(t *testing.T) {
	tracker := cubesim.NewTracker(cubesim.NewEngine())
	m := newPlayModel(tracker, nil, time.Hour)

	// the settle tick never fires within the test
	m.Update(key("u"))
	m.Update(key("f"))
	assert.Len(t, m.moves, 1)
	assert.Nil(t, m.err)

	m.Update(settledMsg{})
	m.Update(key("f"))
	assert.Len(t, m.moves, 2)
}

func TestPlayModelScrambleAndPlayback(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "play.db"))
	require.NoError(t, err)
	defer db.Close()
	session := recorder.NewSession(db, nil)

	tracker := cubesim.NewTracker(cubesim.NewEngine(cubesim.WithSeed(21), cubesim.WithScrambleLength(8)))
	m := newPlayModel(tracker, session, 0)

	drive(m, key(" "))
	require.Equal(t, recorder.StateRecording, session.State())
	assert.Contains(t, m.View(), "READY")

	drive(m, key("d"))
	assert.True(t, tracker.Running())

	drive(m, key("enter"))
	assert.True(t, tracker.IsSolved())
	assert.Zero(t, tracker.Pending())
	assert.Equal(t, recorder.StateEnded, session.State())
	assert.Contains(t, m.View(), "Undone after")

	solve, err := storage.NewSolveRepository(db).GetLast()
	require.NoError(t, err)
	require.NotNil(t, solve.Outcome)
	assert.Equal(t, storage.OutcomeUndone, *solve.Outcome)
}

func TestPlayLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "play.log")
	log, closeLog, err := playLogger(path, slog.LevelDebug)
	require.NoError(t, err)

	engine := cubesim.NewEngine(cubesim.WithLogger(log))
	m := newPlayModel(cubesim.NewTracker(engine), nil, 0)
	m.log = log
	drive(m, key("r"))
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=DEBUG")
	assert.Contains(t, string(data), "move=R")
}

func TestPlayLoggerDiscardsWithoutFile(t *testing.T) {
	log, closeLog, err := playLogger("", slog.LevelDebug)
	require.NoError(t, err)
	assert.NotPanics(t, func() { log.Debug("move", "move", "R") })
	assert.NoError(t, closeLog())
}

func TestPlayModelQuitAbandons(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "quit.db"))
	require.NoError(t, err)
	defer db.Close()
	session := recorder.NewSession(db, nil)

	tracker := cubesim.NewTracker(cubesim.NewEngine(cubesim.WithSeed(2)))
	m := newPlayModel(tracker, session, 0)
	drive(m, key(" "))
	drive(m, key("l"))
	drive(m, key("q"))

	assert.True(t, m.quitting)
	solve, err := storage.NewSolveRepository(db).GetLast()
	require.NoError(t, err)
	require.NotNil(t, solve.Outcome)
	assert.Equal(t, storage.OutcomeAbandoned, *solve.Outcome)
}
