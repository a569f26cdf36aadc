package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/panelpick/panelpick/internal/catalog"
	"github.com/panelpick/panelpick/internal/validation"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [plan-file]",
		Short: "Validate a plan file without solving",
		Long: `Validate a plan file against the plan schema and the semantic rules
(positive durations, non-negative costs, well-ordered ranges, unique ids)
without building or solving the model.

If no plan file is specified, plan.yaml in the current directory is used.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runCheck,
		SilenceErrors: true,
	}
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := defaultPlanFile
	if len(args) > 0 {
		path = args[0]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading plan file: %w", err)
	}

	if errs := validation.ValidatePlanBytes(data); len(errs) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d schema problem(s):\n", path, len(errs))
		for _, e := range errs {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", e)
		}
		return fmt.Errorf("plan file %s failed schema validation", path)
	}

	plan, err := catalog.Parse(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d items, %d evaluators, floor %.2f)\n",
		path, len(plan.Items), len(plan.Evaluators), plan.Floor)
	return nil
}
