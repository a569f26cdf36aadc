// Package reporting reads a solved assignment back into a report: the
// selected item, the objective value and each evaluator's realized
// satisfaction. Purely read and format; nothing here mutates the model.
package reporting

import (
	"fmt"

	"github.com/panelpick/panelpick/internal/catalog"
	"github.com/panelpick/panelpick/internal/selection"
	"github.com/panelpick/panelpick/internal/solve"
)

// EvaluatorScore is one evaluator's realized satisfaction for the selected
// item.
type EvaluatorScore struct {
	Evaluator catalog.Evaluator
	Satisfied int     // dimensions met, 0..4
	Score     float64 // Satisfied/4, the realized H_e
}

// Report is the complete result of a selection run.
type Report struct {
	Item      catalog.Item
	Objective float64
	Scores    []EvaluatorScore
}

// Build extracts the report from a solved model. Selection variables are
// read with a tolerance for solver floating-point slack; a solution that
// does not select exactly one item is a solver fault, not a report.
func Build(model *selection.Model, sol *solve.Solution) (*Report, error) {
	if sol.Status != solve.StatusOptimal {
		return nil, &solve.SolverError{Op: "report", Err: fmt.Errorf("no optimal solution to report, status %q", sol.Status)}
	}

	selected := -1
	for i, v := range model.Vars {
		if sol.Values[v] > 0.5 {
			if selected >= 0 {
				return nil, &solve.SolverError{Op: "report", Err: fmt.Errorf("multiple items selected (%d and %d)", selected, i)}
			}
			selected = i
		}
	}
	if selected < 0 {
		return nil, &solve.SolverError{Op: "report", Err: fmt.Errorf("no item selected in optimal solution")}
	}

	r := &Report{
		Item:      model.Plan.Items[selected],
		Objective: sol.Objective,
	}
	for e, ev := range model.Plan.Evaluators {
		r.Scores = append(r.Scores, EvaluatorScore{
			Evaluator: ev,
			Satisfied: model.Table.SatisfiedCount(e, selected),
			Score:     model.Satisfaction[e].Eval(sol.Values),
		})
	}
	return r, nil
}
