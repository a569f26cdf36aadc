// Package pipeline wires the selection stages into a single-shot run:
// preprocess indicators, build the model, solve, and assemble the report.
// Stages run strictly in sequence over immutable inputs; any error aborts
// the run with no partial result.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/panelpick/panelpick/internal/catalog"
	"github.com/panelpick/panelpick/internal/indicator"
	"github.com/panelpick/panelpick/internal/reporting"
	"github.com/panelpick/panelpick/internal/selection"
	"github.com/panelpick/panelpick/internal/solve"
)

// Runner executes the pipeline with an injected solver backend.
type Runner struct {
	Solver solve.Solver
	Logger *slog.Logger
}

// New returns a Runner using the given solver and the default logger.
func New(solver solve.Solver) *Runner {
	return &Runner{Solver: solver, Logger: slog.Default()}
}

// Run executes one selection over the plan.
func (r *Runner) Run(ctx context.Context, plan *catalog.Plan) (*reporting.Report, error) {
	if plan.Floor != catalog.DefaultFloor {
		// Changing the 2-of-4 floor is an explicit policy decision;
		// make sure it is visible in the run output.
		r.Logger.Warn("satisfaction floor overridden", "floor", plan.Floor, "default", catalog.DefaultFloor)
	}

	table, err := indicator.Build(plan)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("indicator table built", "items", len(plan.Items), "evaluators", len(plan.Evaluators))

	model, err := selection.Build(plan, table)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("model built",
		"variables", model.MILP.NumVars(),
		"constraints", len(model.MILP.Constraints))

	sol, err := r.Solver.Solve(ctx, model.MILP)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("solved", "status", sol.Status, "objective", sol.Objective)

	return reporting.Build(model, sol)
}
