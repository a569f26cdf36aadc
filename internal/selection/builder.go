// Package selection assembles the item-selection ILP: one boolean per
// catalog item, a normalized satisfaction expression per evaluator, the
// exactly-one-item cardinality constraint and the per-evaluator satisfaction
// floor.
package selection

import (
	"fmt"

	"github.com/panelpick/panelpick/internal/catalog"
	"github.com/panelpick/panelpick/internal/indicator"
	"github.com/panelpick/panelpick/internal/milp"
)

// Model is the assembled selection program together with the handles needed
// to read a solution back.
type Model struct {
	Plan  *catalog.Plan
	Table *indicator.Table
	MILP  *milp.Model

	// Vars holds the selection variable for each item, in plan order.
	Vars []milp.Var

	// Satisfaction holds H_e for each evaluator, in plan order: the mean
	// over the four dimensions of the selected item's indicators,
	// expressed linearly over the selection variables so it stays valid
	// for any assignment the solver explores.
	Satisfaction []milp.Expr
}

// Build constructs the selection model from a plan and its indicator table.
//
// Objective: maximize the sum of H_e across evaluators, unweighted.
// Constraints: sum of selection variables equals 1, and H_e >= plan.Floor
// for every evaluator. Infeasibility is never resolved here; it propagates
// from the solver as a distinct failure.
func Build(plan *catalog.Plan, table *indicator.Table) (*Model, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	m := milp.NewModel()

	names := make([]string, len(plan.Items))
	for i, it := range plan.Items {
		names[i] = fmt.Sprintf("x_%d", it.ID)
	}
	vars := m.AddBinaries(names...)

	// Cardinality: exactly one item selected. Hard business rule.
	var card milp.Expr
	for _, v := range vars {
		card = card.Add(v, 1)
	}
	m.AddConstraint("select-one", card, milp.Eq, 1)

	satisfaction := make([]milp.Expr, len(plan.Evaluators))
	var objective milp.Expr
	for e, ev := range plan.Evaluators {
		var sum milp.Expr
		for i := range plan.Items {
			sum = sum.Add(vars[i], float64(table.SatisfiedCount(e, i)))
		}
		h := sum.Scale(1.0 / indicator.NumDimensions)
		satisfaction[e] = h

		for _, t := range h.Terms {
			objective = objective.Add(t.Var, t.Coef)
		}

		m.AddConstraint(fmt.Sprintf("floor-%d", ev.ID), h, milp.Ge, plan.Floor)
	}

	m.SetObjective(objective, milp.Maximize)

	return &Model{
		Plan:         plan,
		Table:        table,
		MILP:         m,
		Vars:         vars,
		Satisfaction: satisfaction,
	}, nil
}
