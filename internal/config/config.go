// Package config provides configuration loading for pland.
package config

import (
	"fmt"

	"github.com/fyrsmithlabs/pland/internal/logging"
)

// Config is the full pland runtime configuration.
type Config struct {
	Logging logging.Config `koanf:"logging"`
	Solver  SolverConfig   `koanf:"solver"`
}

// SolverConfig holds solver tuning.
type SolverConfig struct {
	// MaxDepth bounds the goal stack; zero means unbounded. Cycle
	// detection already guarantees termination, the bound only cuts off
	// pathologically deep precondition chains.
	MaxDepth int `koanf:"max_depth"`

	// Trace enables debug-level search tracing.
	Trace bool `koanf:"trace"`
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	def := logging.NewDefaultConfig()
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = def.Format
	}
	if cfg.Logging.Stacktrace.Level == 0 {
		cfg.Logging.Stacktrace = def.Stacktrace
	}
	if cfg.Logging.Fields == nil {
		cfg.Logging.Fields = map[string]string{}
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if c.Solver.MaxDepth < 0 {
		return fmt.Errorf("solver: max_depth must be >= 0, got %d", c.Solver.MaxDepth)
	}
	return nil
}
