// Package config loads runtime options from flags and the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

const envPrefix = "BLOCKDROP_"

var ErrInvalid = errors.New("invalid config")

const (
	UIBubbletea = "bubbletea"
	UITcell     = "tcell"

	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

type Config struct {
	UI         string
	Randomizer string
	Seed       int64
	// Serve is the spectator listen address. Empty disables spectating.
	Serve   string
	Sound   bool
	LogFile string
}

func Default() Config {
	return Config{
		UI:         UIBubbletea,
		Randomizer: RandomizerUniform,
		Seed:       time.Now().UnixNano(),
		Sound:      true,
		LogFile:    "blockdrop.log",
	}
}

// Load parses args on top of the defaults. Environment variables are applied
// first so explicit flags win.
func Load(args []string) (Config, error) {
	return load(args, os.LookupEnv, io.Discard)
}

func load(args []string, lookup func(string) (string, bool), output io.Writer) (Config, error) {
	cfg := Default()
	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("blockdrop", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "frontend: bubbletea or tcell")
	fs.StringVar(&cfg.Randomizer, "randomizer", cfg.Randomizer, "piece randomizer: uniform or bag")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	fs.StringVar(&cfg.Serve, "serve", cfg.Serve, "spectator listen address, e.g. :8080 (empty disables)")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "start with music playing")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file path")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "UI"); ok {
		cfg.UI = v
	}
	if v, ok := lookup(envPrefix + "RANDOMIZER"); ok {
		cfg.Randomizer = v
	}
	if v, ok := lookup(envPrefix + "SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED: %w", ErrInvalid, envPrefix, err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup(envPrefix + "SERVE"); ok {
		cfg.Serve = v
	}
	// PORT is honoured the way hosted deployments set it.
	if v, ok := lookup("PORT"); ok && cfg.Serve == "" {
		cfg.Serve = ":" + v
	}
	if v, ok := lookup(envPrefix + "SOUND"); ok {
		sound, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sSOUND: %w", ErrInvalid, envPrefix, err)
		}
		cfg.Sound = sound
	}
	if v, ok := lookup(envPrefix + "LOG"); ok {
		cfg.LogFile = v
	}
	return nil
}

func (c Config) Validate() error {
	switch c.UI {
	case UIBubbletea, UITcell:
	default:
		return fmt.Errorf("%w: unknown ui %q", ErrInvalid, c.UI)
	}
	switch c.Randomizer {
	case RandomizerUniform, RandomizerBag:
	default:
		return fmt.Errorf("%w: unknown randomizer %q", ErrInvalid, c.Randomizer)
	}
	return nil
}
