// Package analysis computes statistics over recorded sessions.
package analysis

import (
	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

// Cancellation represents an immediate move cancellation (e.g., R followed by R').
type Cancellation struct {
	Index1 int    `json:"index1"`
	Index2 int    `json:"index2"`
	Move1  string `json:"move1"`
	Move2  string `json:"move2"`
	TsMs   int64  `json:"ts_ms"`
}

// BackAndForthPattern represents alternating moves (e.g., R U R U R U).
type BackAndForthPattern struct {
	StartIndex int      `json:"start_index"`
	EndIndex   int      `json:"end_index"`
	Pattern    []string `json:"pattern"`
	Count      int      `json:"count"`
	TsMs       int64    `json:"ts_ms"`
}

// RepetitionReport contains all repetition analysis results.
type RepetitionReport struct {
	ImmediateCancellations []Cancellation        `json:"immediate_cancellations"`
	BackAndForthPatterns   []BackAndForthPattern `json:"back_and_forth_patterns"`
	TotalWastedMoves       int                   `json:"total_wasted_moves"`
}

func sameLayer(a, b cubesim.Move) bool {
	return a.Axis == b.Axis && a.Slice == b.Slice
}

// AnalyzeRepetitions analyzes a move sequence for repetitions and wasted motion.
// Wasted moves are those OptimizeMoves removes.
func AnalyzeRepetitions(moves []storage.TimedMove) *RepetitionReport {
	report := &RepetitionReport{
		ImmediateCancellations: []Cancellation{},
		BackAndForthPatterns:   []BackAndForthPattern{},
	}

	if len(moves) < 2 {
		return report
	}

	for i := 0; i < len(moves)-1; i++ {
		m1, m2 := moves[i].Move, moves[i+1].Move
		if m2 == m1.Inverse() {
			report.ImmediateCancellations = append(report.ImmediateCancellations, Cancellation{
				Index1: i,
				Index2: i + 1,
				Move1:  m1.Notation(),
				Move2:  m2.Notation(),
				TsMs:   moves[i].TsMs,
			})
		}
	}

	report.BackAndForthPatterns = findBackAndForth(moves)

	plain := make([]cubesim.Move, len(moves))
	for i, tm := range moves {
		plain[i] = tm.Move
	}
	report.TotalWastedMoves = len(plain) - len(OptimizeMoves(plain))

	return report
}

// findBackAndForth finds alternating move patterns like R U R U R U.
func findBackAndForth(moves []storage.TimedMove) []BackAndForthPattern {
	var patterns []BackAndForthPattern

	if len(moves) < 4 {
		return patterns
	}

	i := 0
	for i < len(moves)-3 {
		a, b := moves[i].Move, moves[i+1].Move

		count := 1
		j := i + 2
		for j < len(moves)-1 && moves[j].Move == a && moves[j+1].Move == b {
			count++
			j += 2
		}

		// Require at least 3 repetitions to be noteworthy
		if count >= 3 && a != b {
			patterns = append(patterns, BackAndForthPattern{
				StartIndex: i,
				EndIndex:   i + count*2 - 1,
				Pattern:    []string{a.Notation(), b.Notation()},
				Count:      count,
				TsMs:       moves[i].TsMs,
			})
			i = j
		} else {
			i++
		}
	}

	return patterns
}

// OptimizeMoves collapses runs of quarter turns on the same layer: a run
// that nets to zero disappears, three quarter turns become one the other
// way, and a half turn stays as two quarter turns.
func OptimizeMoves(moves []cubesim.Move) []cubesim.Move {
	result := make([]cubesim.Move, 0, len(moves))

	for i := 0; i < len(moves); {
		first := moves[i]
		net := 0
		j := i
		for j < len(moves) && sameLayer(moves[j], first) {
			net += int(moves[j].Direction)
			j++
		}

		net = ((net % 4) + 4) % 4
		m := first
		switch net {
		case 1:
			m.Direction = cubesim.CounterClockwise
			result = appendMerged(result, m)
		case 2:
			result = appendMerged(result, m, m)
		case 3:
			m.Direction = cubesim.Clockwise
			result = appendMerged(result, m)
		}
		i = j
	}

	return result
}

// appendMerged appends moves, cancelling against the tail when a removed run
// leaves two turns of the same layer adjacent.
func appendMerged(result []cubesim.Move, moves ...cubesim.Move) []cubesim.Move {
	for _, m := range moves {
		n := len(result)
		if n > 0 && result[n-1] == m.Inverse() {
			result = result[:n-1]
			continue
		}
		if n >= 2 && result[n-1] == m && result[n-2] == m {
			// three in a row
			result = result[:n-2]
			result = append(result, m.Inverse())
			continue
		}
		result = append(result, m)
	}
	return result
}

// CalculateEfficiency calculates the efficiency ratio (optimized/original).
func CalculateEfficiency(original, optimized []cubesim.Move) float64 {
	if len(original) == 0 {
		return 1.0
	}
	return float64(len(optimized)) / float64(len(original))
}
