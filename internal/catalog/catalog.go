// Package catalog holds the immutable item and evaluator tables a selection
// run operates on, together with their loading and validation. A Plan is
// built once at startup and passed explicitly into every later stage; nothing
// reads catalog data from ambient state.
package catalog

import "fmt"

// Range is a closed numeric interval. Both bounds are inclusive.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the range, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) valid() bool {
	return r.Min <= r.Max
}

// Item is a selectable catalog entry. Immutable once loaded.
type Item struct {
	ID       int
	Name     string
	Duration int // minutes
	Category string
	Cost     float64
	Score    float64
}

// DisplayName returns the item's name, falling back to its id for plans that
// omit the optional name field.
func (it Item) DisplayName() string {
	if it.Name != "" {
		return it.Name
	}
	return fmt.Sprintf("item %d", it.ID)
}

// Evaluator is one member of the panel, with the acceptable ranges and
// category set its satisfaction indicators are computed against.
type Evaluator struct {
	ID                 int
	Name               string
	DurationRange      Range
	CostRange          Range
	ScoreRange         Range
	AcceptedCategories []string
}

// DisplayName returns the evaluator's name, falling back to its id.
func (e Evaluator) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("evaluator %d", e.ID)
}

// Accepts reports whether the category label is in the evaluator's accepted
// set.
func (e Evaluator) Accepts(category string) bool {
	for _, c := range e.AcceptedCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Plan is the full input to a selection run: the catalog, the evaluator
// panel, and the satisfaction floor policy.
type Plan struct {
	Items      []Item
	Evaluators []Evaluator

	// Floor is the minimum per-evaluator satisfaction score, in [0,1].
	// The default of 0.5 requires 2 of the 4 preference dimensions met.
	Floor float64
}

// InvalidInputError reports malformed catalog or evaluator data, identifying
// the offending record.
type InvalidInputError struct {
	Kind   string // "plan", "item" or "evaluator"
	ID     int
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Kind == "plan" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input: %s %d: %s: %s", e.Kind, e.ID, e.Field, e.Reason)
}

// Validate checks the plan's structural invariants: non-empty tables, unique
// ids, well-formed attributes and ranges, and a floor within [0,1]. It
// returns an *InvalidInputError describing the first problem found.
func (p *Plan) Validate() error {
	if len(p.Items) == 0 {
		return &InvalidInputError{Kind: "plan", Reason: "catalog is empty"}
	}
	if len(p.Evaluators) == 0 {
		return &InvalidInputError{Kind: "plan", Reason: "evaluator set is empty"}
	}
	if p.Floor < 0 || p.Floor > 1 {
		return &InvalidInputError{Kind: "plan", Reason: fmt.Sprintf("satisfaction floor %v outside [0,1]", p.Floor)}
	}

	seenItems := make(map[int]bool, len(p.Items))
	for _, it := range p.Items {
		if seenItems[it.ID] {
			return &InvalidInputError{Kind: "item", ID: it.ID, Field: "id", Reason: "duplicate id"}
		}
		seenItems[it.ID] = true

		if it.Duration <= 0 {
			return &InvalidInputError{Kind: "item", ID: it.ID, Field: "duration", Reason: fmt.Sprintf("must be positive, got %d", it.Duration)}
		}
		if it.Category == "" {
			return &InvalidInputError{Kind: "item", ID: it.ID, Field: "category", Reason: "missing"}
		}
		if it.Cost < 0 {
			return &InvalidInputError{Kind: "item", ID: it.ID, Field: "cost", Reason: fmt.Sprintf("must be non-negative, got %v", it.Cost)}
		}
	}

	seenEvals := make(map[int]bool, len(p.Evaluators))
	for _, ev := range p.Evaluators {
		if seenEvals[ev.ID] {
			return &InvalidInputError{Kind: "evaluator", ID: ev.ID, Field: "id", Reason: "duplicate id"}
		}
		seenEvals[ev.ID] = true

		for _, rg := range []struct {
			field string
			r     Range
		}{
			{"duration_range", ev.DurationRange},
			{"cost_range", ev.CostRange},
			{"score_range", ev.ScoreRange},
		} {
			if !rg.r.valid() {
				return &InvalidInputError{
					Kind:   "evaluator",
					ID:     ev.ID,
					Field:  rg.field,
					Reason: fmt.Sprintf("min %v greater than max %v", rg.r.Min, rg.r.Max),
				}
			}
		}
		for _, c := range ev.AcceptedCategories {
			if c == "" {
				return &InvalidInputError{Kind: "evaluator", ID: ev.ID, Field: "accepted_categories", Reason: "empty category label"}
			}
		}
	}

	return nil
}
