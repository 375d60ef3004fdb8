package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/tetris/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate clears the variables Load reads and points it at a missing dotenv file.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range []string{config.EnvSeed, config.EnvGravity, config.EnvDebug, config.EnvLog} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return filepath.Join(t.TempDir(), "missing.env")
}

func writeEnv(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.env")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	missing := isolate(t)

	cfg, err := config.Load("tetris", []string{"-env", missing})
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Gravity: config.DefaultGravity,
		Log:     config.DefaultLogFile,
		Env:     missing,
	}, cfg)
}

func TestLoadFlags(t *testing.T) {
	missing := isolate(t)

	cfg, err := config.Load("tetris", []string{
		"-env", missing, "-seed", "42", "-gravity", "250ms", "-debug", "-log", "/tmp/t.log",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.Gravity)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/t.log", cfg.Log)
}

func TestLoadPrecedence(t *testing.T) {
	isolate(t)
	env := writeEnv(t, "TETRIS_SEED=7\nTETRIS_GRAVITY=1s\nTETRIS_DEBUG=true\nTETRIS_LOG=dotenv.log\n")

	t.Run("dotenv fills in", func(t *testing.T) {
		cfg, err := config.Load("tetris", []string{"-env", env})
		require.NoError(t, err)
		assert.Equal(t, uint64(7), cfg.Seed)
		assert.Equal(t, time.Second, cfg.Gravity)
		assert.True(t, cfg.Debug)
		assert.Equal(t, "dotenv.log", cfg.Log)
	})

	t.Run("environment beats dotenv", func(t *testing.T) {
		t.Setenv(config.EnvSeed, "9")
		t.Setenv(config.EnvGravity, "100ms")
		cfg, err := config.Load("tetris", []string{"-env", env})
		require.NoError(t, err)
		assert.Equal(t, uint64(9), cfg.Seed)
		assert.Equal(t, 100*time.Millisecond, cfg.Gravity)
	})

	t.Run("flags beat everything", func(t *testing.T) {
		t.Setenv(config.EnvSeed, "9")
		cfg, err := config.Load("tetris", []string{"-env", env, "-seed", "3", "-debug=false"})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), cfg.Seed)
		assert.False(t, cfg.Debug)
		assert.Equal(t, time.Second, cfg.Gravity)
	})
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		args []string
	}{
		{name: "bad seed", key: config.EnvSeed, val: "-1"},
		{name: "bad gravity", key: config.EnvGravity, val: "fast"},
		{name: "bad debug", key: config.EnvDebug, val: "maybe"},
		{name: "zero gravity", args: []string{"-gravity", "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing := isolate(t)
			if tt.key != "" {
				t.Setenv(tt.key, tt.val)
			}
			_, err := config.Load("tetris", append([]string{"-env", missing}, tt.args...))
			assert.ErrorIs(t, err, config.ErrInvalid)
			if tt.key != "" {
				assert.ErrorContains(t, err, tt.key)
			}
		})
	}

	t.Run("unknown flag", func(t *testing.T) {
		missing := isolate(t)
		_, err := config.Load("tetris", []string{"-env", missing, "-nope"})
		assert.Error(t, err)
	})
}

func TestLoadExtraFlags(t *testing.T) {
	missing := isolate(t)

	var games int
	cfg, err := config.Load("tetris-stress", []string{"-env", missing, "-games", "5", "-seed", "1"},
		func(fs *flag.FlagSet) { fs.IntVar(&games, "games", 0, "games to play") })
	require.NoError(t, err)
	assert.Equal(t, 5, games)
	assert.Equal(t, uint64(1), cfg.Seed)
}

func TestNewGame(t *testing.T) {
	seeded := config.Config{Seed: 12}
	assert.Equal(t, seeded.NewGame(), seeded.NewGame())
	assert.False(t, config.Config{}.NewGame().IsGameOver())
}
