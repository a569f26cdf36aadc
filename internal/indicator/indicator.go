// Package indicator converts raw attribute comparisons into binary
// satisfaction indicators: one 0/1 value per (evaluator, item, dimension).
// The table is computed once from a validated plan and never mutated.
package indicator

import (
	"github.com/panelpick/panelpick/internal/catalog"
)

// Dimension is one of the four preference dimensions an item is scored on.
type Dimension int

const (
	Duration Dimension = iota
	Category
	Cost
	Score

	// NumDimensions is the number of preference dimensions per evaluator.
	NumDimensions = 4
)

func (d Dimension) String() string {
	switch d {
	case Duration:
		return "duration"
	case Category:
		return "category"
	case Cost:
		return "cost"
	case Score:
		return "score"
	default:
		return "unknown"
	}
}

// Dimensions lists all dimensions in table order.
var Dimensions = [NumDimensions]Dimension{Duration, Category, Cost, Score}

// satisfied is the predicate evaluation routine shared by all dimensions:
// numeric dimensions use a closed-interval check, the category dimension uses
// set membership.
func satisfied(it catalog.Item, ev catalog.Evaluator, d Dimension) bool {
	switch d {
	case Duration:
		return ev.DurationRange.Contains(float64(it.Duration))
	case Category:
		return ev.Accepts(it.Category)
	case Cost:
		return ev.CostRange.Contains(it.Cost)
	case Score:
		return ev.ScoreRange.Contains(it.Score)
	default:
		return false
	}
}

// Table holds the full indicator table, indexed by evaluator position, item
// position (both in plan order) and dimension.
type Table struct {
	numEvaluators int
	numItems      int
	values        []uint8
}

// Build validates the plan and computes every indicator. It returns a
// *catalog.InvalidInputError when the plan is malformed.
func Build(plan *catalog.Plan) (*Table, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	t := &Table{
		numEvaluators: len(plan.Evaluators),
		numItems:      len(plan.Items),
		values:        make([]uint8, len(plan.Evaluators)*len(plan.Items)*NumDimensions),
	}
	for e, ev := range plan.Evaluators {
		for i, it := range plan.Items {
			for _, d := range Dimensions {
				if satisfied(it, ev, d) {
					t.values[t.index(e, i, d)] = 1
				}
			}
		}
	}
	return t, nil
}

func (t *Table) index(eval, item int, d Dimension) int {
	return (eval*t.numItems+item)*NumDimensions + int(d)
}

// Indicator returns the 0/1 indicator for the given evaluator position, item
// position and dimension.
func (t *Table) Indicator(eval, item int, d Dimension) int {
	return int(t.values[t.index(eval, item, d)])
}

// SatisfiedCount returns how many of the four dimensions the item satisfies
// for the evaluator, in 0..4.
func (t *Table) SatisfiedCount(eval, item int) int {
	n := 0
	for _, d := range Dimensions {
		n += t.Indicator(eval, item, d)
	}
	return n
}

// Mean returns the arithmetic mean of the four indicators for the pair; the
// only possible values are 0, 0.25, 0.5, 0.75 and 1.
func (t *Table) Mean(eval, item int) float64 {
	return float64(t.SatisfiedCount(eval, item)) / NumDimensions
}
