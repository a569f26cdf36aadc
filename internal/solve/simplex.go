package solve

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/panelpick/panelpick/internal/milp"
)

const (
	// simplexTol is the pivot tolerance handed to the simplex routine.
	simplexTol = 1e-10

	// intTol is how far a relaxation value may sit from 0 or 1 and still
	// count as integral.
	intTol = 1e-6

	// objTol guards incumbent comparisons against floating-point noise;
	// an equal-objective solution never replaces the incumbent, which
	// keeps tie-breaking deterministic within a run.
	objTol = 1e-9
)

// BranchAndBound solves boolean models by branch-and-bound over the simplex
// LP relaxation. With one boolean per catalog item the tree stays tiny; the
// generality is in the backend, not here.
type BranchAndBound struct {
	// Logger, when non-nil, receives per-node trace output at debug
	// level. Cosmetic only.
	Logger *slog.Logger
}

var _ Solver = (*BranchAndBound)(nil)

// NewBranchAndBound returns a solver tracing to the default logger.
func NewBranchAndBound() *BranchAndBound {
	return &BranchAndBound{Logger: slog.Default()}
}

type bbNode struct {
	fixed map[milp.Var]float64
}

// Solve explores LP relaxations depth-first, fixing one fractional variable
// per branch, and returns the best integral assignment found.
func (s *BranchAndBound) Solve(ctx context.Context, m *milp.Model) (*Solution, error) {
	n := m.NumVars()
	if n == 0 {
		return nil, &InfeasibleError{}
	}

	var best *Solution
	nodes := 0
	stack := []bbNode{{fixed: map[milp.Var]float64{}}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, &SolverError{Op: "solve", Err: err}
		}

		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes++

		x, err := s.relax(m, nd.fixed)
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			continue
		case errors.Is(err, lp.ErrUnbounded):
			return &Solution{Status: StatusUnbounded}, &SolverError{Op: "simplex", Err: err}
		case err != nil:
			return nil, &SolverError{Op: "simplex", Err: err}
		}

		obj := m.Objective.Eval(x)
		if s.Logger != nil {
			s.Logger.Debug("relaxation solved", "node", nodes, "fixed", len(nd.fixed), "objective", obj)
		}
		if best != nil && !improves(m.Dir, obj, best.Objective) {
			continue
		}

		branch := fractionalVar(x, n)
		if branch < 0 {
			best = &Solution{
				Status:    StatusOptimal,
				Objective: obj,
				Values:    roundBinary(x[:n]),
			}
			continue
		}

		// Depth-first, x=1 popped first so the incumbent appears early.
		zero := cloneFixed(nd.fixed)
		zero[branch] = 0
		one := cloneFixed(nd.fixed)
		one[branch] = 1
		stack = append(stack, bbNode{fixed: zero}, bbNode{fixed: one})
	}

	if best == nil {
		return &Solution{Status: StatusInfeasible}, &InfeasibleError{}
	}
	if s.Logger != nil {
		s.Logger.Debug("solve finished", "nodes", nodes, "objective", best.Objective)
	}
	return best, nil
}

// relax solves the LP relaxation of m with the given variables fixed,
// returning the assignment for the model's own variables.
func (s *BranchAndBound) relax(m *milp.Model, fixed map[milp.Var]float64) ([]float64, error) {
	c, a, b := standardForm(m, fixed)
	_, xs, err := lp.Simplex(c, a, b, simplexTol, nil)
	if err != nil {
		return nil, err
	}
	return xs[:m.NumVars()], nil
}

// standardForm converts the model plus branch fixings into simplex standard
// form: minimize c'x subject to Ax = b, x >= 0. Decision variables come
// first, then one auxiliary column per inequality (surplus for >=, slack for
// <=) and per binary upper bound.
func standardForm(m *milp.Model, fixed map[milp.Var]float64) (c []float64, a *mat.Dense, b []float64) {
	n := m.NumVars()

	aux := len(fixed)
	for _, con := range m.Constraints {
		if con.Rel != milp.Eq {
			aux++
		}
	}
	cols := n + aux + n // aux columns, then binary upper-bound slacks
	rows := len(m.Constraints) + n + len(fixed)

	a = mat.NewDense(rows, cols, nil)
	b = make([]float64, rows)

	row := 0
	auxCol := n
	for _, con := range m.Constraints {
		for _, t := range con.Expr.Terms {
			a.Set(row, int(t.Var), a.At(row, int(t.Var))+t.Coef)
		}
		switch con.Rel {
		case milp.Ge:
			a.Set(row, auxCol, -1)
			auxCol++
		case milp.Le:
			a.Set(row, auxCol, 1)
			auxCol++
		}
		b[row] = con.Bound - con.Expr.Offset
		if b[row] < 0 {
			negateRow(a, row, cols)
			b[row] = -b[row]
		}
		row++
	}

	// Binary domain: x_i + u_i = 1.
	for i := 0; i < n; i++ {
		a.Set(row, i, 1)
		a.Set(row, n+aux+i, 1)
		b[row] = 1
		row++
	}

	// Branch fixings, in variable order for deterministic matrices. Each
	// fixing row carries its own slack or surplus column so A keeps full
	// row rank: x_i <= 0 pins a binary to 0, x_i >= 1 pins it to 1.
	for i := 0; i < n; i++ {
		v, ok := fixed[milp.Var(i)]
		if !ok {
			continue
		}
		a.Set(row, i, 1)
		if v == 0 {
			a.Set(row, auxCol, 1)
			b[row] = 0
		} else {
			a.Set(row, auxCol, -1)
			b[row] = 1
		}
		auxCol++
		row++
	}

	c = make([]float64, cols)
	sign := 1.0
	if m.Dir == milp.Maximize {
		sign = -1 // simplex minimizes
	}
	for _, t := range m.Objective.Terms {
		c[t.Var] += sign * t.Coef
	}
	return c, a, b
}

func negateRow(a *mat.Dense, row, cols int) {
	for j := 0; j < cols; j++ {
		a.Set(row, j, -a.At(row, j))
	}
}

// improves reports whether obj is strictly better than incumbent for the
// given direction, beyond floating-point noise.
func improves(dir milp.Direction, obj, incumbent float64) bool {
	if dir == milp.Minimize {
		return obj < incumbent-objTol
	}
	return obj > incumbent+objTol
}

// fractionalVar returns the lowest-indexed decision variable that is not
// within intTol of 0 or 1, or -1 if the assignment is integral.
func fractionalVar(x []float64, n int) milp.Var {
	for i := 0; i < n; i++ {
		if math.Abs(x[i]-math.Round(x[i])) > intTol {
			return milp.Var(i)
		}
	}
	return -1
}

func roundBinary(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Round(v)
	}
	return out
}

func cloneFixed(fixed map[milp.Var]float64) map[milp.Var]float64 {
	out := make(map[milp.Var]float64, len(fixed)+1)
	for k, v := range fixed {
		out[k] = v
	}
	return out
}
