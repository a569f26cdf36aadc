package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panelpick/panelpick/internal/catalog"
	"github.com/panelpick/panelpick/internal/pipeline"
	"github.com/panelpick/panelpick/internal/solve"
)

const defaultPlanFile = "plan.yaml"

func newSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [plan-file]",
		Short: "Solve a plan and report the selected item",
		Long: `Solve a plan: compute the satisfaction indicators, build the selection
model, run the MILP solver and print the selected item together with each
evaluator's satisfaction score.

If no plan file is specified, plan.yaml in the current directory is used.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runSolve,
		SilenceErrors: true,
	}
	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	path := defaultPlanFile
	if len(args) > 0 {
		path = args[0]
	}

	plan, err := catalog.Load(path)
	if err != nil {
		return err
	}

	runner := pipeline.New(solve.NewBranchAndBound())
	report, err := runner.Run(cmd.Context(), plan)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatReport(report))
	return nil
}
