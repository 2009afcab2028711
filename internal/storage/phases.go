package storage

import (
	"fmt"

	"github.com/SeamusWaldron/cubesim"
)

// PhaseMark records when a solve first reached a phase.
type PhaseMark struct {
	PhaseMarkID int64
	SolveID     string
	TsMs        int64
	PhaseKey    string
	MoveIndex   int
}

// Phase returns the phase named by the mark's key.
func (m PhaseMark) Phase() (cubesim.Phase, bool) {
	for p := cubesim.PhaseScrambled; p <= cubesim.PhaseSolved; p++ {
		if p.String() == m.PhaseKey {
			return p, true
		}
	}
	return 0, false
}

// PhaseRepository provides CRUD operations for phase marks.
type PhaseRepository struct {
	db *DB
}

// NewPhaseRepository creates a new phase repository.
func NewPhaseRepository(db *DB) *PhaseRepository {
	return &PhaseRepository{db: db}
}

// CreatePhaseMark creates a new phase mark.
func (r *PhaseRepository) CreatePhaseMark(solveID string, tsMs int64, phase cubesim.Phase, moveIndex int) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO phase_marks (solve_id, ts_ms, phase_key, move_index)
		VALUES (?, ?, ?, ?)
	`, solveID, tsMs, phase.String(), moveIndex)

	if err != nil {
		return 0, fmt.Errorf("failed to create phase mark: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get phase mark ID: %w", err)
	}

	return id, nil
}

// GetPhaseMarks retrieves all phase marks for a solve.
func (r *PhaseRepository) GetPhaseMarks(solveID string) ([]PhaseMark, error) {
	rows, err := r.db.Query(`
		SELECT phase_mark_id, solve_id, ts_ms, phase_key, move_index
		FROM phase_marks
		WHERE solve_id = ?
		ORDER BY ts_ms, phase_mark_id
	`, solveID)

	if err != nil {
		return nil, fmt.Errorf("failed to get phase marks: %w", err)
	}
	defer rows.Close()

	var marks []PhaseMark
	for rows.Next() {
		var m PhaseMark
		err := rows.Scan(&m.PhaseMarkID, &m.SolveID, &m.TsMs, &m.PhaseKey, &m.MoveIndex)
		if err != nil {
			return nil, fmt.Errorf("failed to scan phase mark: %w", err)
		}
		marks = append(marks, m)
	}

	return marks, rows.Err()
}
