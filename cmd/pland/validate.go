package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/pland/internal/problem"
)

var validateCmd = &cobra.Command{
	Use:   "validate <problem-file>",
	Short: "Check a problem file without solving it",
	Long: `Validate loads a problem definition and reports its shape. It fails with
the same errors solve would report for a malformed file, without running
the search.

Examples:
  pland validate school.json
  pland validate school.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	p, err := problem.Load(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d operators, %d start facts, %d goal facts\n",
		path, len(p.Ops), len(p.Start), len(p.Finish))
	return nil
}
