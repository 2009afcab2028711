package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded sessions",
	Long:  `List the most recent play sessions with their outcome, time and move count, followed by the best hand solve.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of sessions to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solveRepo := storage.NewSolveRepository(db)
	solves, err := solveRepo.List(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(solves) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tOUTCOME\tTIME\tMOVES")
	for _, s := range solves {
		outcome := "open"
		if s.Outcome != nil {
			outcome = *s.Outcome
		}
		timeStr := "-"
		if s.DurationMs != nil {
			timeStr = formatDuration(s.Duration())
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			s.SolveID[:8], s.StartedAt.Local().Format("2006-01-02 15:04"), outcome, timeStr, s.MoveCount)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	best, err := solveRepo.Best()
	if err != nil {
		return err
	}
	if best != nil {
		fmt.Fprintf(out, "\nBest: %s in %d moves (%s)\n", formatDuration(best.Duration()), best.MoveCount, best.SolveID[:8])
	}
	return nil
}
