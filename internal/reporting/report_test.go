package reporting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/panelpick/panelpick/internal/catalog"
	"github.com/panelpick/panelpick/internal/indicator"
	"github.com/panelpick/panelpick/internal/selection"
	"github.com/panelpick/panelpick/internal/solve"
)

func smallModel(t *testing.T) *selection.Model {
	t.Helper()
	plan := &catalog.Plan{
		Items: []catalog.Item{
			{ID: 1, Name: "first", Duration: 100, Category: "Action", Cost: 5, Score: 7},
			{ID: 2, Name: "second", Duration: 95, Category: "Comedy", Cost: 3, Score: 6},
		},
		Evaluators: []catalog.Evaluator{
			{ID: 1, Name: "ana", DurationRange: catalog.Range{Min: 90, Max: 120}, CostRange: catalog.Range{Min: 0, Max: 4}, ScoreRange: catalog.Range{Min: 5, Max: 10}, AcceptedCategories: []string{"Comedy"}},
			{ID: 2, Name: "бруно", DurationRange: catalog.Range{Min: 90, Max: 99}, CostRange: catalog.Range{Min: 0, Max: 10}, ScoreRange: catalog.Range{Min: 6, Max: 8}, AcceptedCategories: []string{"Action"}},
		},
		Floor: catalog.DefaultFloor,
	}
	table, err := indicator.Build(plan)
	require.NoError(t, err)
	model, err := selection.Build(plan, table)
	require.NoError(t, err)
	return model
}

func TestBuild_Report(t *testing.T) {
	model := smallModel(t)

	// Select the second item. ana: duration+cost+score+category = 4/4;
	// бруно: duration+cost+score = 3/4.
	sol := &solve.Solution{Status: solve.StatusOptimal, Objective: 1.75, Values: []float64{0, 1}}

	r, err := Build(model, sol)
	require.NoError(t, err)
	require.Equal(t, 2, r.Item.ID)
	require.Equal(t, "second", r.Item.Name)
	require.InDelta(t, 1.75, r.Objective, 1e-12)

	require.Len(t, r.Scores, 2)
	require.Equal(t, "ana", r.Scores[0].Evaluator.Name)
	require.Equal(t, 4, r.Scores[0].Satisfied)
	require.InDelta(t, 1.0, r.Scores[0].Score, 1e-12)
	require.Equal(t, 3, r.Scores[1].Satisfied)
	require.InDelta(t, 0.75, r.Scores[1].Score, 1e-12)
}

func TestBuild_ToleratesSolverSlack(t *testing.T) {
	model := smallModel(t)
	sol := &solve.Solution{Status: solve.StatusOptimal, Objective: 1.75, Values: []float64{1e-9, 0.9999999}}

	r, err := Build(model, sol)
	require.NoError(t, err)
	require.Equal(t, 2, r.Item.ID)
}

func TestBuild_RejectsNonOptimal(t *testing.T) {
	model := smallModel(t)

	for _, status := range []solve.Status{solve.StatusInfeasible, solve.StatusUnbounded, solve.StatusError} {
		_, err := Build(model, &solve.Solution{Status: status})
		require.Error(t, err, "status %s", status)

		var solverErr *solve.SolverError
		require.ErrorAs(t, err, &solverErr)
	}
}

func TestBuild_RejectsBadAssignments(t *testing.T) {
	model := smallModel(t)

	_, err := Build(model, &solve.Solution{Status: solve.StatusOptimal, Values: []float64{1, 1}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "multiple items selected")

	_, err = Build(model, &solve.Solution{Status: solve.StatusOptimal, Values: []float64{0, 0}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no item selected")
}
