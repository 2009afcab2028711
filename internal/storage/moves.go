package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/cubesim"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SolveID   string
	MoveIndex int
	TsMs      int64 // milliseconds since the session timer started
	Axis      string
	Slice     int
	Direction int
	Notation  string
}

// Move converts the record back to an engine move.
func (m MoveRecord) Move() (cubesim.Move, error) {
	axis, err := cubesim.ParseAxis(m.Axis)
	if err != nil {
		return cubesim.Move{}, err
	}
	mv := cubesim.Move{Axis: axis, Slice: m.Slice, Direction: cubesim.Direction(m.Direction)}
	return mv, mv.Validate()
}

// TimedMove is a move with its offset from the session start.
type TimedMove struct {
	Move cubesim.Move
	TsMs int64
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

const insertMove = `
	INSERT INTO moves (solve_id, move_index, ts_ms, axis, slice, direction, notation)
	VALUES (?, ?, ?, ?, ?, ?, ?)
`

// Create creates a new move and returns its ID.
func (r *MoveRepository) Create(solveID string, moveIndex int, tsMs int64, move cubesim.Move) (int64, error) {
	result, err := r.db.Exec(insertMove,
		solveID, moveIndex, tsMs, move.Axis.String(), move.Slice, int(move.Direction), move.Notation())

	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch creates multiple moves in a single transaction.
func (r *MoveRepository) CreateBatch(solveID string, moves []TimedMove, startIndex int) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, tm := range moves {
			m := tm.Move
			_, err := tx.Exec(insertMove,
				solveID, startIndex+i, tm.TsMs, m.Axis.String(), m.Slice, int(m.Direction), m.Notation())
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySolve retrieves all moves for a solve in order.
func (r *MoveRepository) GetBySolve(solveID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, solve_id, move_index, ts_ms, axis, slice, direction, notation
		FROM moves
		WHERE solve_id = ?
		ORDER BY move_index
	`, solveID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.SolveID, &m.MoveIndex, &m.TsMs, &m.Axis, &m.Slice, &m.Direction, &m.Notation)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// GetNextIndex returns the next move index for a solve.
func (r *MoveRepository) GetNextIndex(solveID string) (int, error) {
	var maxIndex int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(move_index), -1) FROM moves WHERE solve_id = ?
	`, solveID).Scan(&maxIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to get max move index: %w", err)
	}
	return maxIndex + 1, nil
}

// Count returns the number of moves for a solve.
func (r *MoveRepository) Count(solveID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE solve_id = ?", solveID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// ToMoves converts MoveRecords to engine moves.
func ToMoves(records []MoveRecord) ([]cubesim.Move, error) {
	moves := make([]cubesim.Move, len(records))
	for i, r := range records {
		m, err := r.Move()
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", r.MoveIndex, err)
		}
		moves[i] = m
	}
	return moves, nil
}
