// Package config loads the settings shared by the tetris executables from
// command line flags, the environment and an optional dotenv file, in that
// order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/plus3/tetris/tetris"
)

const (
	DefaultGravity = 500 * time.Millisecond
	DefaultEnvFile = ".env"
	DefaultLogFile = "tetris.log"
)

// Environment variables consulted for flags that were not given.
const (
	EnvSeed    = "TETRIS_SEED"
	EnvGravity = "TETRIS_GRAVITY"
	EnvDebug   = "TETRIS_DEBUG"
	EnvLog     = "TETRIS_LOG"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	// Seed fixes the piece sequence. Zero picks a random one.
	Seed uint64
	// Gravity is the time between ticks.
	Gravity time.Duration
	Debug   bool
	// Log is the file debug logging goes to.
	Log string
	// Env is the dotenv file read for missing values.
	Env string
}

// NewGame starts a game according to the configured seed.
func (c Config) NewGame() tetris.Game {
	if c.Seed == 0 {
		return tetris.NewRandomGame()
	}
	return tetris.NewSeededGame(c.Seed)
}

// Load parses args (without the program name) for the command called name.
// Extra flags can be registered on the flag set before it is parsed.
func Load(name string, args []string, extra ...func(*flag.FlagSet)) (Config, error) {
	cfg := Config{
		Gravity: DefaultGravity,
		Log:     DefaultLogFile,
		Env:     DefaultEnvFile,
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.Uint64Var(&cfg.Seed, "seed", 0, "Piece sequence seed; 0 picks one at random.")
	flags.DurationVar(&cfg.Gravity, "gravity", cfg.Gravity, "Time between gravity ticks.")
	flags.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging.")
	flags.StringVar(&cfg.Log, "log", cfg.Log, "File that debug logging is written to.")
	flags.StringVar(&cfg.Env, "env", cfg.Env, "Dotenv file read for settings not given as flags.")
	for _, fn := range extra {
		fn(flags)
	}

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	given := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { given[f.Name] = true })

	dotenv, err := readEnvFile(cfg.Env)
	if err != nil {
		return Config{}, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := lookup(EnvSeed); ok && !given["seed"] {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup(EnvGravity); ok && !given["gravity"] {
		gravity, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvGravity, v, err)
		}
		cfg.Gravity = gravity
	}
	if v, ok := lookup(EnvDebug); ok && !given["debug"] {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvDebug, v, err)
		}
		cfg.Debug = debug
	}
	if v, ok := lookup(EnvLog); ok && !given["log"] {
		cfg.Log = v
	}

	if cfg.Gravity <= 0 {
		return Config{}, fmt.Errorf("%w: gravity must be positive, got %s", ErrInvalid, cfg.Gravity)
	}
	return cfg, nil
}

// readEnvFile reads a dotenv file. A missing file reads as empty.
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalid, path, err)
	}
	return values, nil
}
