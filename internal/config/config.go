// Package config loads the server configuration from a TOML file.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the full configuration for the serve command.
type Config struct {
	Addr     string        `toml:"addr"`
	Solver   string        `toml:"solver"` // dlx, backtrack, or sat
	LogLevel string        `toml:"log_level"`
	Timeout  duration      `toml:"solve_timeout"` // per-request solve budget
	Storage  StorageConfig `toml:"storage"`
}

// StorageConfig selects and parameterizes the puzzle store.
type StorageConfig struct {
	Backend string `toml:"backend"` // fs or sqlite
	Dir     string `toml:"dir"`     // fs: root directory
	DSN     string `toml:"dsn"`     // sqlite: database path
}

// duration lets TOML carry values like "5s".
type duration struct{ time.Duration }

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:     ":8080",
		Solver:   "dlx",
		LogLevel: "info",
		Timeout:  duration{5 * time.Second},
		Storage:  StorageConfig{Backend: "fs", Dir: "./data"},
	}
}

// Load reads path on top of the defaults, so a partial file is fine.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Solver {
	case "dlx", "backtrack", "sat":
	default:
		return fmt.Errorf("unknown solver %q", c.Solver)
	}
	switch c.Storage.Backend {
	case "fs", "sqlite":
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

// SolveTimeout returns the per-request solve budget.
func (c Config) SolveTimeout() time.Duration { return c.Timeout.Duration }
