// Package config loads the toolbelt CLI configuration.
//
// Settings are resolved in order of precedence:
//   - TOOLBELT_* environment variables
//   - ~/.toolbelt/config.toml
//   - built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/toolbelt/pkg/timespan"
)

// Config is the complete CLI configuration.
type Config struct {
	// LogLevel is one of trace, debug, info, warn, error, off.
	LogLevel string `toml:"log_level"`

	Sort  SortConfig  `toml:"sort"`
	Run   RunConfig   `toml:"run"`
	Bench BenchConfig `toml:"bench"`
}

// SortConfig configures the sort subcommand.
type SortConfig struct {
	// Reverse sorts lines in descending order.
	Reverse bool `toml:"reverse"`
}

// RunConfig configures the run subcommand.
type RunConfig struct {
	// Timeout is a timespan string ("30s", "5m"). Empty disables it.
	Timeout string `toml:"timeout"`
}

// BenchConfig configures the bench subcommand.
type BenchConfig struct {
	// Runs is the default number of measured executions.
	Runs int `toml:"runs"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Bench:    BenchConfig{Runs: 10},
	}
}

// Path returns the config file location, ~/.toolbelt/config.toml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate home directory: %w", err)
	}
	return filepath.Join(home, ".toolbelt", "config.toml"), nil
}

// Load reads the config file from its standard location and applies
// environment overrides. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads path and applies environment overrides. A missing file
// yields the defaults; a malformed one is an error.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("cannot read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if level := os.Getenv("TOOLBELT_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
}

// Validate checks field values without touching the filesystem.
func (c *Config) Validate() error {
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel && c.LogLevel != "off" {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.Bench.Runs < 1 {
		return fmt.Errorf("bench.runs must be at least 1, got %d", c.Bench.Runs)
	}
	if _, err := c.RunTimeout(); err != nil {
		return err
	}
	return nil
}

// RunTimeout parses run.timeout. An empty setting means no timeout.
func (c *Config) RunTimeout() (time.Duration, error) {
	if c.Run.Timeout == "" {
		return 0, nil
	}
	span, err := timespan.Parse(c.Run.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid run.timeout: %w", err)
	}
	if span.Value < 0 {
		return 0, fmt.Errorf("invalid run.timeout: %q is negative", c.Run.Timeout)
	}
	return span.Duration(), nil
}
