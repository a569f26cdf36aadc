package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "panelpick",
		Short: "Panelpick - pick one catalog item that best satisfies a panel",
		Long: `Panelpick selects a single item from a small catalog to maximize aggregate
preference satisfaction across a panel of evaluators, while guaranteeing each
evaluator at least 2 of their 4 preference dimensions.

It builds a small binary integer program from the plan file and solves it with
a branch-and-bound MILP solver.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging, including solver trace output")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newSolveCommand())
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newInitCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
