// Package solve runs an assembled model through a mixed-integer linear
// solver backend. The Solver interface is the dependency boundary: model
// construction never sees a backend, and tests of the earlier stages use the
// Stub instead of a real solve.
package solve

import (
	"context"
	"fmt"

	"github.com/panelpick/panelpick/internal/milp"
)

// Status classifies the outcome of a solve.
type Status string

const (
	StatusOptimal    Status = "optimal"
	StatusInfeasible Status = "infeasible"
	StatusUnbounded  Status = "unbounded"
	StatusError      Status = "error"
)

// Solution is the result of a successful solve: the optimal variable
// assignment (indexed by milp.Var) and the objective value it achieves.
type Solution struct {
	Status    Status
	Objective float64
	Values    []float64
}

// Solver finds an optimal assignment for a model.
type Solver interface {
	Solve(ctx context.Context, m *milp.Model) (*Solution, error)
}

// InfeasibleError reports that the model's constraints admit no feasible
// assignment. It is distinct from SolverError so callers can tell "no item
// satisfies the panel" apart from a solver fault.
type InfeasibleError struct{}

func (e *InfeasibleError) Error() string {
	return "model is infeasible: no assignment satisfies every constraint"
}

// SolverError reports an infrastructural failure in the underlying solver.
type SolverError struct {
	Op  string
	Err error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("solver: %s: %v", e.Op, e.Err)
}

func (e *SolverError) Unwrap() error {
	return e.Err
}
