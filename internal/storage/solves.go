package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve outcomes.
const (
	OutcomeSolved    = "solved"    // solved by hand
	OutcomeUndone    = "undone"    // solved by replaying the solution
	OutcomeAbandoned = "abandoned" // session ended unsolved
)

// timeLayout has a fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Solve represents a play session in the database.
type Solve struct {
	SolveID      string
	StartedAt    time.Time
	EndedAt      *time.Time
	DurationMs   *int64
	ScrambleText *string
	MoveCount    int
	Outcome      *string
}

// Solved reports whether the session ended with a hand solve.
func (s Solve) Solved() bool {
	return s.Outcome != nil && *s.Outcome == OutcomeSolved
}

// Duration returns the recorded duration, or 0 if the session is open.
func (s Solve) Duration() time.Duration {
	if s.DurationMs == nil {
		return 0
	}
	return time.Duration(*s.DurationMs) * time.Millisecond
}

// SolveResult holds the values recorded when a session ends.
type SolveResult struct {
	Duration  time.Duration
	MoveCount int
	Outcome   string
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create creates a new solve and returns its ID.
func (r *SolveRepository) Create(scramble string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, started_at, scramble_text)
		VALUES (?, ?, ?)
	`, id, startedAt.Format(timeLayout), scramblePtr)

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// End marks a solve as finished.
func (r *SolveRepository) End(solveID string, result SolveResult) error {
	endedAt := time.Now().UTC()

	res, err := r.db.Exec(`
		UPDATE solves
		SET ended_at = ?, duration_ms = ?, move_count = ?, outcome = ?
		WHERE solve_id = ?
	`, endedAt.Format(timeLayout), result.Duration.Milliseconds(), result.MoveCount, result.Outcome, solveID)

	if err != nil {
		return fmt.Errorf("failed to end solve: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("failed to end solve: %s not found", solveID)
	}

	return nil
}

const solveColumns = `solve_id, started_at, ended_at, duration_ms, scramble_text, move_count, outcome`

type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(row scanner) (Solve, error) {
	var s Solve
	var startedAtStr string
	var endedAtStr sql.NullString

	err := row.Scan(
		&s.SolveID, &startedAtStr, &endedAtStr,
		&s.DurationMs, &s.ScrambleText, &s.MoveCount, &s.Outcome,
	)
	if err != nil {
		return s, err
	}

	s.StartedAt, _ = time.Parse(timeLayout, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(timeLayout, endedAtStr.String)
		s.EndedAt = &t
	}
	return s, nil
}

// Get retrieves a solve by ID. It returns nil if no such solve exists.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	s, err := scanSolve(r.db.QueryRow(`
		SELECT `+solveColumns+`
		FROM solves
		WHERE solve_id = ?
	`, solveID))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	return &s, nil
}

// GetLast retrieves the most recent solve.
func (r *SolveRepository) GetLast() (*Solve, error) {
	s, err := scanSolve(r.db.QueryRow(`
		SELECT ` + solveColumns + `
		FROM solves
		ORDER BY started_at DESC, rowid DESC
		LIMIT 1
	`))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}

	return &s, nil
}

// Best retrieves the fastest hand solve.
func (r *SolveRepository) Best() (*Solve, error) {
	s, err := scanSolve(r.db.QueryRow(`
		SELECT `+solveColumns+`
		FROM solves
		WHERE outcome = ? AND duration_ms IS NOT NULL
		ORDER BY duration_ms ASC
		LIMIT 1
	`, OutcomeSolved))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get best solve: %w", err)
	}

	return &s, nil
}

// List retrieves recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT `+solveColumns+`
		FROM solves
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, s)
	}

	return solves, rows.Err()
}

// Delete deletes a solve and all related data (cascading).
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}

// GetMoveCount returns the number of stored moves in a solve.
func (r *SolveRepository) GetMoveCount(solveID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE solve_id = ?", solveID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get move count: %w", err)
	}
	return count, nil
}
