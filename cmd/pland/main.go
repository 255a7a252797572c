// Package main implements the pland CLI, a planner based on means-ends
// analysis.
//
// Problems are JSON or YAML files naming initial facts, goal facts, and
// operators. Solving prints the plan, one action per line, to stdout:
//
//	pland solve problem.json
//
// Diagnostics go to stderr. See the solve and validate commands for
// details.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/fyrsmithlabs/pland/internal/config"
	"github.com/fyrsmithlabs/pland/internal/logging"
)

// Version information (set via ldflags during build)
var version = "dev"

var (
	cfgFile   string
	logLevel  string
	logFormat string
	traceFlag bool
	maxDepth  int
)

var (
	cfg    *config.Config
	logger *logging.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pland",
	Short: "General problem solver using means-ends analysis",
	Long: `pland searches for a sequence of actions that transforms a set of
initial facts into a state where all goal facts hold. Problems are defined
in JSON or YAML files listing the starting facts, the goal facts, and the
operators that induce state transitions.

The search is depth-first and order-sensitive: operators are tried in the
order they are listed and the first applicable one wins. pland finds a
plan, not necessarily the shortest one.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/pland/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console or json")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "log every search step at debug level")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0, "bound on goal stack depth, 0 for unbounded")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(validateCmd)
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded

	if cmd.Flags().Changed("log-level") {
		level, err := zapcore.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}
		cfg.Logging.Level = level
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = logFormat
	}
	if cmd.Flags().Changed("trace") {
		cfg.Solver.Trace = traceFlag
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.Solver.MaxDepth = maxDepth
	}

	// Tracing is pointless if debug entries are filtered out.
	if cfg.Solver.Trace && cfg.Logging.Level > zapcore.DebugLevel {
		cfg.Logging.Level = zapcore.DebugLevel
	}

	logger, err = logging.NewLogger(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	return nil
}
