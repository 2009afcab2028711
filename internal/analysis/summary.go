package analysis

import (
	"sort"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

// SolveSummary contains statistics for a single recorded session.
type SolveSummary struct {
	SolveID            string       `json:"solve_id"`
	Outcome            string       `json:"outcome,omitempty"`
	DurationMs         int64        `json:"duration_ms"`
	TotalMoves         int          `json:"total_moves"`
	OptimizedMoves     int          `json:"optimized_moves"`
	Efficiency         float64      `json:"efficiency"`
	TPSOverall         float64      `json:"tps_overall"`
	PhaseStats         []PhaseStats `json:"phase_stats,omitempty"`
	LongestPauseMs     int64        `json:"longest_pause_ms"`
	PauseCountOver1500 int          `json:"pause_count_over_1500ms"`
	AvgMoveDurationMs  float64      `json:"avg_move_duration_ms"`
	Cancellations      int          `json:"cancellations"`
	LayerCounts        []LayerCount `json:"layer_counts"`
}

// PhaseStats contains the time and moves spent reaching one phase.
type PhaseStats struct {
	PhaseKey    string  `json:"phase_key"`
	DisplayName string  `json:"display_name"`
	StartTsMs   int64   `json:"start_ts_ms"`
	EndTsMs     int64   `json:"end_ts_ms"`
	DurationMs  int64   `json:"duration_ms"`
	MoveCount   int     `json:"move_count"`
	TPS         float64 `json:"tps"`
}

// LayerCount is how often one layer letter was turned.
type LayerCount struct {
	Layer string `json:"layer"`
	Count int    `json:"count"`
}

// PauseInfo represents a pause during solving.
type PauseInfo struct {
	AfterMoveIndex int   `json:"after_move_index"`
	DurationMs     int64 `json:"duration_ms"`
	TsMs           int64 `json:"ts_ms"`
}

// Summarize computes the summary of a stored session.
func Summarize(solve storage.Solve, records []storage.MoveRecord, marks []storage.PhaseMark) (*SolveSummary, error) {
	moves := make([]storage.TimedMove, len(records))
	for i, r := range records {
		m, err := r.Move()
		if err != nil {
			return nil, err
		}
		moves[i] = storage.TimedMove{Move: m, TsMs: r.TsMs}
	}

	plain := make([]cubesim.Move, len(moves))
	for i, tm := range moves {
		plain[i] = tm.Move
	}
	optimized := OptimizeMoves(plain)

	s := &SolveSummary{
		SolveID:            solve.SolveID,
		DurationMs:         solve.Duration().Milliseconds(),
		TotalMoves:         len(moves),
		OptimizedMoves:     len(optimized),
		Efficiency:         CalculateEfficiency(plain, optimized),
		LongestPauseMs:     FindLongestPause(moves),
		PauseCountOver1500: CountPausesOver(moves, 1500),
		AvgMoveDurationMs:  CalculateAvgMoveDuration(moves),
		Cancellations:      len(AnalyzeRepetitions(moves).ImmediateCancellations),
		LayerCounts:        CountLayers(plain),
	}
	if solve.Outcome != nil {
		s.Outcome = *solve.Outcome
	}
	s.TPSOverall = CalculateTPS(len(moves), s.DurationMs)
	s.PhaseStats = phaseStats(moves, marks)

	return s, nil
}

// phaseStats splits the session at its phase marks.
func phaseStats(moves []storage.TimedMove, marks []storage.PhaseMark) []PhaseStats {
	var stats []PhaseStats
	var startTs int64
	startIdx := 0

	for _, mark := range marks {
		name := mark.PhaseKey
		if p, ok := mark.Phase(); ok {
			name = p.DisplayName()
		}
		endIdx := mark.MoveIndex + 1
		if endIdx > len(moves) {
			endIdx = len(moves)
		}
		if endIdx < startIdx {
			endIdx = startIdx
		}
		ps := PhaseStats{
			PhaseKey:    mark.PhaseKey,
			DisplayName: name,
			StartTsMs:   startTs,
			EndTsMs:     mark.TsMs,
			DurationMs:  mark.TsMs - startTs,
			MoveCount:   endIdx - startIdx,
		}
		ps.TPS = CalculateTPS(ps.MoveCount, ps.DurationMs)
		stats = append(stats, ps)
		startTs, startIdx = mark.TsMs, endIdx
	}

	return stats
}

// AnalyzePauses finds all significant pauses in a move sequence.
func AnalyzePauses(moves []storage.TimedMove, thresholdMs int64) []PauseInfo {
	var pauses []PauseInfo

	for i := 1; i < len(moves); i++ {
		gap := moves[i].TsMs - moves[i-1].TsMs
		if gap >= thresholdMs {
			pauses = append(pauses, PauseInfo{
				AfterMoveIndex: i - 1,
				DurationMs:     gap,
				TsMs:           moves[i-1].TsMs,
			})
		}
	}

	return pauses
}

// CalculateTPS calculates turns per second.
func CalculateTPS(moveCount int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(moveCount) / (float64(durationMs) / 1000.0)
}

// CalculateAvgMoveDuration calculates the average time between moves.
func CalculateAvgMoveDuration(moves []storage.TimedMove) float64 {
	if len(moves) < 2 {
		return 0
	}

	totalGap := moves[len(moves)-1].TsMs - moves[0].TsMs
	return float64(totalGap) / float64(len(moves)-1)
}

// FindLongestPause finds the longest pause in a move sequence.
func FindLongestPause(moves []storage.TimedMove) int64 {
	var longest int64

	for i := 1; i < len(moves); i++ {
		gap := moves[i].TsMs - moves[i-1].TsMs
		if gap > longest {
			longest = gap
		}
	}

	return longest
}

// CountPausesOver counts pauses over a threshold.
func CountPausesOver(moves []storage.TimedMove, thresholdMs int64) int {
	count := 0
	for i := 1; i < len(moves); i++ {
		gap := moves[i].TsMs - moves[i-1].TsMs
		if gap > thresholdMs {
			count++
		}
	}
	return count
}

// CountLayers counts turns per layer letter, most used first.
func CountLayers(moves []cubesim.Move) []LayerCount {
	counts := make(map[string]int)
	for _, m := range moves {
		counts[m.Notation()[:1]]++
	}

	out := make([]LayerCount, 0, len(counts))
	for layer, n := range counts {
		out = append(out, LayerCount{Layer: layer, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Layer < out[j].Layer
	})
	return out
}
