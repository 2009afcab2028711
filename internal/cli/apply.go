package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
)

var (
	applyScramble string
	applySolution bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply moves to a solved cube and show the result",
	Long: `Apply a move sequence to a solved cube and print the unfolded cube, its
facelet string and solving phase.

Moves use standard notation: R L M U D E F B S, with ' for counter-clockwise
and 2 for a half turn.

Examples:
  cubesim apply "R U R' U'"
  cubesim apply --scramble "F B2 L" "L' B2" --solution`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVar(&applyScramble, "scramble", "", "Unrecorded moves to apply first")
	applyCmd.Flags().BoolVar(&applySolution, "solution", false, "Print the sequence that undoes everything")
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := cubesim.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	engine := cubesim.NewEngine(cfg.EngineOptions(logger)...)

	var scramble []cubesim.Move
	if applyScramble != "" {
		scramble, err = cubesim.ParseMoves(applyScramble)
		if err != nil {
			return fmt.Errorf("scramble: %w", err)
		}
		for _, m := range scramble {
			if err := engine.Turn(m); err != nil {
				return err
			}
		}
	}

	if err := engine.ApplyMoves(moves...); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, engine.String())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Facelets: %s\n", engine.FaceletString())
	fmt.Fprintf(out, "Solved:   %v\n", engine.IsSolved())
	fmt.Fprintf(out, "Phase:    %s\n", engine.Phase().DisplayName())

	if applySolution {
		// user moves first, then the scramble
		solution := append(cubesim.InverseMoves(engine.History()), cubesim.InverseMoves(scramble)...)
		fmt.Fprintf(out, "Solution: %s\n", cubesim.FormatMoves(solution))
	}
	return nil
}
