package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// starterPlan is the reference movie-night dataset: four movies, five
// evaluators. Useful both as a working example and as a template to edit.
const starterPlan = `# panelpick plan: pick one movie for the group.
catalog:
  - id: 1
    name: Amazing Spiderman
    duration: 136
    category: Action
    cost: 6.29
    score: 6.9
  - id: 2
    name: Night of the Museum
    duration: 108
    category: Adventure
    cost: 3.99
    score: 6.4
  - id: 3
    name: Cheaper by the Dozen
    duration: 98
    category: Comedy
    cost: 3.00
    score: 5.9
  - id: 4
    name: Hidden Figures
    duration: 127
    category: Drama
    cost: 4.99
    score: 7.8

evaluators:
  - id: 1
    duration_range: [90, 130]
    cost_range: [0, 7]
    score_range: [6, 10]
    accepted_categories: [Action, Comedy]
  - id: 2
    duration_range: [100, 160]
    cost_range: [0, 12]
    score_range: [7, 10]
    accepted_categories: [Drama, Thriller, Romance]
  - id: 3
    duration_range: [80, 110]
    cost_range: [0, 10]
    score_range: [5, 8]
    accepted_categories: [Horror, Sci-Fi]
  - id: 4
    duration_range: [95, 150]
    cost_range: [0, 8]
    score_range: [6, 9]
    accepted_categories: [Comedy, Animation, Adventure]
  - id: 5
    duration_range: [70, 120]
    cost_range: [0, 5]
    score_range: [4, 7]
    accepted_categories: [Action, Documentary]

# policy:
#   satisfaction_floor: 0.5   # minimum fraction of dimensions met per evaluator
`

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter plan file",
		Long: `Write a starter plan.yaml containing the reference movie-night dataset.

If no directory is specified, the current directory is used. An existing
plan.yaml is never overwritten.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runInit,
		SilenceErrors: true,
	}
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, defaultPlanFile)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, not overwriting", path)
	}

	if err := os.WriteFile(path, []byte(starterPlan), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
