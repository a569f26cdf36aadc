// Package milp declares the minimal mixed-integer linear model a solver
// backend consumes: boolean variables, linear expressions, constraints and an
// objective. The types here are solver-agnostic on purpose; backends live
// behind the solve package so model construction stays testable without one.
package milp

import "fmt"

// Var is a handle to a decision variable within a Model.
type Var int

// Term is one coefficient*variable product in a linear expression.
type Term struct {
	Var  Var
	Coef float64
}

// Expr is a linear expression: a sum of terms plus a constant offset.
type Expr struct {
	Terms  []Term
	Offset float64
}

// Add appends coef*v to the expression and returns it for chaining.
func (e Expr) Add(v Var, coef float64) Expr {
	e.Terms = append(e.Terms, Term{Var: v, Coef: coef})
	return e
}

// Scale returns the expression with every coefficient and the offset
// multiplied by f.
func (e Expr) Scale(f float64) Expr {
	scaled := Expr{Terms: make([]Term, len(e.Terms)), Offset: e.Offset * f}
	for i, t := range e.Terms {
		scaled.Terms[i] = Term{Var: t.Var, Coef: t.Coef * f}
	}
	return scaled
}

// Eval computes the expression's value under the given variable assignment.
func (e Expr) Eval(x []float64) float64 {
	v := e.Offset
	for _, t := range e.Terms {
		v += t.Coef * x[t.Var]
	}
	return v
}

// Relation is the comparison between a constraint expression and its bound.
type Relation int

const (
	Eq Relation = iota
	Ge
	Le
)

func (r Relation) String() string {
	switch r {
	case Eq:
		return "="
	case Ge:
		return ">="
	case Le:
		return "<="
	default:
		return "?"
	}
}

// Constraint requires expr <relation> bound.
type Constraint struct {
	Name  string
	Expr  Expr
	Rel   Relation
	Bound float64
}

// Direction is the optimization sense of the objective.
type Direction int

const (
	Maximize Direction = iota
	Minimize
)

func (d Direction) String() string {
	if d == Minimize {
		return "minimize"
	}
	return "maximize"
}

// Model is an assembled mixed-integer linear program over boolean variables.
type Model struct {
	varNames    []string
	Objective   Expr
	Dir         Direction
	Constraints []Constraint
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// AddBinary declares one boolean decision variable with domain {0,1} and
// returns its handle.
func (m *Model) AddBinary(name string) Var {
	m.varNames = append(m.varNames, name)
	return Var(len(m.varNames) - 1)
}

// AddBinaries declares n boolean decision variables and returns their
// handles in declaration order.
func (m *Model) AddBinaries(names ...string) []Var {
	vars := make([]Var, len(names))
	for i, name := range names {
		vars[i] = m.AddBinary(name)
	}
	return vars
}

// AddConstraint appends a named linear constraint.
func (m *Model) AddConstraint(name string, e Expr, rel Relation, bound float64) {
	m.Constraints = append(m.Constraints, Constraint{Name: name, Expr: e, Rel: rel, Bound: bound})
}

// SetObjective sets the linear objective and its direction.
func (m *Model) SetObjective(e Expr, dir Direction) {
	m.Objective = e
	m.Dir = dir
}

// NumVars returns the number of declared variables.
func (m *Model) NumVars() int {
	return len(m.varNames)
}

// VarName returns the declared name of v.
func (m *Model) VarName(v Var) string {
	if int(v) < 0 || int(v) >= len(m.varNames) {
		return fmt.Sprintf("var(%d)", int(v))
	}
	return m.varNames[v]
}
