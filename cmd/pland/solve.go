package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/pland/internal/logging"
	"github.com/fyrsmithlabs/pland/internal/problem"
	"github.com/fyrsmithlabs/pland/internal/solver"
)

var watchFlag bool

var solveCmd = &cobra.Command{
	Use:   "solve <problem-file>",
	Short: "Solve a problem and print the plan",
	Long: `Solve loads a problem definition, searches for a plan, and prints each
action on its own line in execution order. An already-satisfied goal set
produces no output and exits zero. If no plan exists the command exits
non-zero.

Examples:
  # Solve a JSON problem
  pland solve school.json

  # Solve a YAML problem with search tracing
  pland solve --trace school.yaml

  # Re-solve whenever the file changes
  pland solve --watch school.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&watchFlag, "watch", false, "watch the problem file and re-solve on change")
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer logger.Sync()

	if watchFlag {
		return watchAndSolve(ctx, cmd, args[0])
	}
	return solveOnce(ctx, cmd, args[0])
}

// solveOnce runs a single load-solve-print cycle.
func solveOnce(ctx context.Context, cmd *cobra.Command, path string) error {
	p, err := problem.Load(path)
	if err != nil {
		return err
	}

	runLog := logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("problem", path),
	)

	s := newSolver(p, runLog)

	started := time.Now()
	plan, err := s.Solve(ctx, p.InitialFacts(), p.GoalFacts())
	if err != nil {
		return fmt.Errorf("no plan for %s: %w", path, err)
	}

	runLog.Info("plan found",
		zap.Int("steps", len(plan)),
		zap.Duration("elapsed", time.Since(started)),
	)
	for _, action := range plan {
		fmt.Fprintln(cmd.OutOrStdout(), action)
	}
	return nil
}

// newSolver builds a solver from the loaded problem and current config.
func newSolver(p *problem.Problem, runLog *logging.Logger) *solver.Solver {
	opts := []solver.Option{}
	if cfg.Solver.MaxDepth > 0 {
		opts = append(opts, solver.WithMaxDepth(cfg.Solver.MaxDepth))
	}
	if cfg.Solver.Trace {
		opts = append(opts, solver.WithTracer(solver.NewLogTracer(runLog.Named("trace").Underlying())))
	}
	return solver.New(p.Operators(), opts...)
}
