// Package cli implements the command-line interface for cubesim.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/config"
	"github.com/SeamusWaldron/cubesim/internal/logging"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool

	// Loaded before every command runs.
	cfg      config.Config
	logLevel = slog.LevelWarn
	logger   = logging.NewNop()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesim",
	Short: "3x3x3 puzzle simulator",
	Long: `cubesim - A terminal simulator for the 3x3x3 twisty puzzle.

Scramble the cube, turn its faces and slices from the keyboard, play the
inverse solution back move by move, and keep a history of timed solves.

Environment:
  CUBESIM_DB_PATH          Session database path
  CUBESIM_SCRAMBLE_LENGTH  Random quarter turns per scramble (default 20)
  CUBESIM_MOVE_DURATION    Animation time per move in play mode (default 150ms)
  CUBESIM_LOG_LEVEL        debug, info, warn or error (default warn)
  CUBESIM_SEED             Fixed scramble seed (default random)`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesim/cubesim.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// setup loads the environment config and builds the logger.
func setup() error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	logLevel = level
	logger = logging.New(level)
	return nil
}

// getDBPath returns the database path from flag, environment or default.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.DBPath // empty: storage default
}
