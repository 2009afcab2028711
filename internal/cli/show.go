package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/analysis"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var (
	showSolveID string
	showLast    bool
	showJSON    bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show statistics for a session",
	Long: `Show the time, move efficiency, pauses and phase splits of a recorded session.

Examples:
  cubesim show --last
  cubesim show --id <solve_id> --json`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showSolveID, "id", "", "Solve ID to show")
	showCmd.Flags().BoolVar(&showLast, "last", false, "Show the last session")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the summary as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	if showSolveID == "" && !showLast {
		return fmt.Errorf("specify --id or --last")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solveRepo := storage.NewSolveRepository(db)
	var solve *storage.Solve
	if showLast {
		solve, err = solveRepo.GetLast()
	} else {
		solve, err = solveRepo.Get(showSolveID)
	}
	if err != nil {
		return fmt.Errorf("failed to get solve: %w", err)
	}
	if solve == nil {
		return fmt.Errorf("no session found")
	}

	records, err := storage.NewMoveRepository(db).GetBySolve(solve.SolveID)
	if err != nil {
		return fmt.Errorf("failed to get moves: %w", err)
	}
	marks, err := storage.NewPhaseRepository(db).GetPhaseMarks(solve.SolveID)
	if err != nil {
		return fmt.Errorf("failed to get phase marks: %w", err)
	}

	summary, err := analysis.Summarize(*solve, records, marks)
	if err != nil {
		return fmt.Errorf("failed to summarize session %s: %w", solve.SolveID, err)
	}

	out := cmd.OutOrStdout()
	if showJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	printSummary(out, solve, summary)
	return nil
}

func printSummary(w io.Writer, solve *storage.Solve, s *analysis.SolveSummary) {
	outcome := "open"
	if s.Outcome != "" {
		outcome = s.Outcome
	}

	fmt.Fprintf(w, "Session %s (%s)\n", s.SolveID, outcome)
	if solve.ScrambleText != nil {
		fmt.Fprintf(w, "Scramble: %s\n", *solve.ScrambleText)
	}
	fmt.Fprintf(w, "Time:     %s\n", formatDuration(solve.Duration()))
	fmt.Fprintf(w, "Moves:    %d (%d after cancelling, %.0f%% efficient)\n",
		s.TotalMoves, s.OptimizedMoves, s.Efficiency*100)
	fmt.Fprintf(w, "TPS:      %.2f\n", s.TPSOverall)

	if s.TotalMoves > 1 {
		fmt.Fprintf(w, "Pauses:   longest %dms, %d over 1.5s, average gap %.0fms\n",
			s.LongestPauseMs, s.PauseCountOver1500, s.AvgMoveDurationMs)
	}
	if s.Cancellations > 0 {
		fmt.Fprintf(w, "Cancellations: %d\n", s.Cancellations)
	}

	if len(s.PhaseStats) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Phases:")
		for _, p := range s.PhaseStats {
			fmt.Fprintf(w, "  %-13s %7dms %4d moves %5.2f TPS\n", p.DisplayName, p.DurationMs, p.MoveCount, p.TPS)
		}
	}

	if len(s.LayerCounts) > 0 {
		fmt.Fprintln(w)
		fmt.Fprint(w, "Layers:")
		for _, lc := range s.LayerCounts {
			fmt.Fprintf(w, " %s=%d", lc.Layer, lc.Count)
		}
		fmt.Fprintln(w)
	}
}
