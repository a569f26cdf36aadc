package solve

import (
	"context"

	"github.com/panelpick/panelpick/internal/milp"
)

// Stub is a canned Solver for testing the stages around the adapter without
// a real solve. It records what it was asked to solve and returns a fixed
// result.
type Stub struct {
	Solution *Solution
	Err      error

	Calls     int
	LastModel *milp.Model
}

var _ Solver = (*Stub)(nil)

func (s *Stub) Solve(_ context.Context, m *milp.Model) (*Solution, error) {
	s.Calls++
	s.LastModel = m
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Solution, nil
}
