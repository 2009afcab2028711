package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
)

var (
	scrambleLength int
	scrambleSeed   uint64
	scrambleNet    bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a random scramble",
	Long: `Generate a random scramble and print it in move notation, followed by
the scrambled cube's 54-character facelet string.

Examples:
  cubesim scramble
  cubesim scramble --length 25 --net
  cubesim scramble --seed 42`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 0, "Number of quarter turns (default: CUBESIM_SCRAMBLE_LENGTH)")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed (default: CUBESIM_SEED or random)")
	scrambleCmd.Flags().BoolVar(&scrambleNet, "net", false, "Also print the unfolded cube")
}

func runScramble(cmd *cobra.Command, args []string) error {
	opts := cfg.EngineOptions(logger)
	if scrambleLength > 0 {
		opts = append(opts, cubesim.WithScrambleLength(scrambleLength))
	}
	if scrambleSeed != 0 {
		opts = append(opts, cubesim.WithSeed(scrambleSeed))
	}

	engine := cubesim.NewEngine(opts...)
	moves, err := engine.Scramble()
	if err != nil {
		return fmt.Errorf("failed to scramble: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cubesim.FormatMoves(moves))
	fmt.Fprintln(out, engine.FaceletString())
	if scrambleNet {
		fmt.Fprintln(out)
		fmt.Fprint(out, engine.String())
	}
	return nil
}
