package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/logging"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, 20, cfg.ScrambleLength)
	assert.Equal(t, 150*time.Millisecond, cfg.MoveDuration)
	assert.Equal(t, uint64(0), cfg.Seed)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CUBESIM_DB_PATH", "/tmp/cube.db")
	t.Setenv("CUBESIM_SCRAMBLE_LENGTH", "5")
	t.Setenv("CUBESIM_MOVE_DURATION", "0s")
	t.Setenv("CUBESIM_LOG_LEVEL", "debug")
	t.Setenv("CUBESIM_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/cube.db", cfg.DBPath)
	assert.Equal(t, 5, cfg.ScrambleLength)
	assert.Equal(t, time.Duration(0), cfg.MoveDuration)
	assert.Equal(t, uint64(42), cfg.Seed)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadErrors(t *testing.T) {
	t.Run("unparseable", func(t *testing.T) {
		t.Setenv("CUBESIM_SCRAMBLE_LENGTH", "many")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env:")
	})

	t.Run("out of range", func(t *testing.T) {
		t.Setenv("CUBESIM_SCRAMBLE_LENGTH", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "scramble length")
	})

	t.Run("bad level", func(t *testing.T) {
		t.Setenv("CUBESIM_LOG_LEVEL", "loud")
		_, err := Load()
		assert.ErrorContains(t, err, "invalid log level")
	})
}

func TestEngineOptionsSeed(t *testing.T) {
	cfg := Config{ScrambleLength: 4, LogLevel: "info", Seed: 7}

	a := cubesim.NewEngine(cfg.EngineOptions(logging.NewNop())...)
	b := cubesim.NewEngine(cfg.EngineOptions(logging.NewNop())...)
	ma, err := a.Scramble()
	require.NoError(t, err)
	mb, err := b.Scramble()
	require.NoError(t, err)

	assert.Len(t, ma, 4)
	assert.Equal(t, ma, mb)
}
