// Package config loads cubesim settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/SeamusWaldron/cubesim"
)

// Config holds settings shared by every command. Flags override it.
type Config struct {
	// DBPath is the session database; empty means storage.DefaultDBPath.
	DBPath         string        `env:"CUBESIM_DB_PATH"`
	ScrambleLength int           `env:"CUBESIM_SCRAMBLE_LENGTH" envDefault:"20"`
	MoveDuration   time.Duration `env:"CUBESIM_MOVE_DURATION" envDefault:"150ms"`
	LogLevel       string        `env:"CUBESIM_LOG_LEVEL" envDefault:"warn"`
	// Seed makes scrambles reproducible; 0 means random.
	Seed uint64 `env:"CUBESIM_SEED"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.ScrambleLength < 1 {
		errs = append(errs, fmt.Errorf("scramble length must be positive, got %d", c.ScrambleLength))
	}
	if c.MoveDuration < 0 {
		errs = append(errs, fmt.Errorf("move duration must not be negative, got %s", c.MoveDuration))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// EngineOptions returns the engine options the config implies.
func (c Config) EngineOptions(logger *slog.Logger) []cubesim.Option {
	opts := []cubesim.Option{
		cubesim.WithScrambleLength(c.ScrambleLength),
		cubesim.WithLogger(logger),
	}
	if c.Seed != 0 {
		opts = append(opts, cubesim.WithSeed(c.Seed))
	}
	return opts
}
