package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var (
	exportSolveID string
	exportFormat  string
	exportOutput  string
	exportLast    bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export session data",
	Long:  `Export session data in various formats.`,
}

var exportMovesCmd = &cobra.Command{
	Use:   "moves",
	Short: "Export moves from a session",
	Long: `Export the move sequence from a session in text or JSON format.

Examples:
  cubesim export moves --last
  cubesim export moves --id <solve_id> --format json
  cubesim export moves --id <solve_id> --format txt -o moves.txt`,
	RunE: runExportMoves,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.AddCommand(exportMovesCmd)
	exportMovesCmd.Flags().StringVar(&exportSolveID, "id", "", "Solve ID to export")
	exportMovesCmd.Flags().BoolVar(&exportLast, "last", false, "Export the last session")
	exportMovesCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	exportMovesCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

// moveJSON is the exported form of a stored move.
type moveJSON struct {
	MoveIndex int    `json:"move_index"`
	TsMs      int64  `json:"ts_ms"`
	Axis      string `json:"axis"`
	Slice     int    `json:"slice"`
	Direction int    `json:"direction"`
	Notation  string `json:"notation"`
}

func runExportMoves(cmd *cobra.Command, args []string) error {
	if exportSolveID == "" && !exportLast {
		return fmt.Errorf("specify --id or --last")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solveID := exportSolveID
	if exportLast {
		solve, err := storage.NewSolveRepository(db).GetLast()
		if err != nil {
			return fmt.Errorf("failed to get last solve: %w", err)
		}
		if solve == nil {
			return fmt.Errorf("no sessions found")
		}
		solveID = solve.SolveID
	}

	moves, err := storage.NewMoveRepository(db).GetBySolve(solveID)
	if err != nil {
		return fmt.Errorf("failed to get moves: %w", err)
	}

	if len(moves) == 0 {
		return fmt.Errorf("no moves found for session %s", solveID)
	}

	output, err := formatMoveRecords(moves, exportFormat)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d moves to %s\n", len(moves), exportOutput)
	return nil
}

func formatMoveRecords(moves []storage.MoveRecord, format string) (string, error) {
	switch strings.ToLower(format) {
	case "txt":
		notations := make([]string, len(moves))
		for i, m := range moves {
			notations[i] = m.Notation
		}
		return strings.Join(notations, " "), nil

	case "json":
		out := make([]moveJSON, len(moves))
		for i, m := range moves {
			out[i] = moveJSON{
				MoveIndex: m.MoveIndex,
				TsMs:      m.TsMs,
				Axis:      m.Axis,
				Slice:     m.Slice,
				Direction: m.Direction,
				Notation:  m.Notation,
			}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("unknown format: %s (use txt or json)", format)
	}
}
