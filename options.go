package cubesim

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"time"
)

// Option configures Engine behavior.
type Option func(*config)

type config struct {
	moveHistory    bool
	scrambleLength int
	rng            *rand.Rand
	logger         *slog.Logger
}

func defaultConfig() *config {
	seed := uint64(time.Now().UnixNano())
	return &config{
		moveHistory:    true,
		scrambleLength: DefaultScrambleLength,
		rng:            rand.New(rand.NewPCG(seed, seed>>1)),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMoveHistory enables or disables move history recording.
// When disabled, Solution always returns an empty sequence, even after a
// Scramble.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithScrambleLength sets how many random quarter turns Scramble applies.
// Values below 1 keep the default of 20.
func WithScrambleLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.scrambleLength = n
		}
	}
}

// WithRand sets the random source used by Scramble.
// Pass a seeded source to get reproducible scrambles.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed is shorthand for WithRand with a PCG source seeded from seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
