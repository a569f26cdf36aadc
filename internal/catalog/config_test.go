package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const minimalPlanYAML = `
catalog:
  - id: 1
    name: Night of the Museum
    duration: 108
    category: Adventure
    cost: 3.99
    score: 6.4
evaluators:
  - id: 1
    name: dana
    duration_range: [100, 160]
    cost_range: [0, 12]
    score_range: [6, 10]
    accepted_categories: [Adventure]
`

func TestLoad_ReferencePlan(t *testing.T) {
	plan, err := Load(filepath.Join("testdata", "plan.yaml"))
	require.NoError(t, err)

	require.Len(t, plan.Items, 4)
	require.Len(t, plan.Evaluators, 5)
	require.Equal(t, DefaultFloor, plan.Floor)

	spiderman := plan.Items[0]
	require.Equal(t, 1, spiderman.ID)
	require.Equal(t, "Amazing Spiderman", spiderman.Name)
	require.Equal(t, 136, spiderman.Duration)
	require.Equal(t, "Action", spiderman.Category)
	require.InDelta(t, 6.29, spiderman.Cost, 1e-12)
	require.InDelta(t, 6.9, spiderman.Score, 1e-12)

	second := plan.Evaluators[1]
	require.Equal(t, 2, second.ID)
	require.Equal(t, Range{Min: 100, Max: 160}, second.DurationRange)
	require.Equal(t, Range{Min: 0, Max: 12}, second.CostRange)
	require.Equal(t, Range{Min: 7, Max: 10}, second.ScoreRange)
	require.Equal(t, []string{"Drama", "Thriller", "Romance"}, second.AcceptedCategories)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "does-not-exist.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading plan file")
}

func TestParse_Minimal(t *testing.T) {
	plan, err := Parse([]byte(minimalPlanYAML))
	require.NoError(t, err)
	require.Len(t, plan.Items, 1)
	require.Len(t, plan.Evaluators, 1)
	require.Equal(t, "dana", plan.Evaluators[0].Name)
}

func TestParse_FloorOverride(t *testing.T) {
	data := minimalPlanYAML + `
policy:
  satisfaction_floor: 0.75
`
	plan, err := Parse([]byte(data))
	require.NoError(t, err)
	require.InDelta(t, 0.75, plan.Floor, 1e-12)
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing evaluators",
			yaml: `
catalog:
  - id: 1
    duration: 108
    category: Adventure
    cost: 3.99
    score: 6.4
`,
		},
		{
			name: "missing item cost",
			yaml: `
catalog:
  - id: 1
    duration: 108
    category: Adventure
    score: 6.4
evaluators:
  - id: 1
    duration_range: [100, 160]
    cost_range: [0, 12]
    score_range: [6, 10]
    accepted_categories: [Adventure]
`,
		},
		{
			name: "range with three elements",
			yaml: `
catalog:
  - id: 1
    duration: 108
    category: Adventure
    cost: 3.99
    score: 6.4
evaluators:
  - id: 1
    duration_range: [100, 130, 160]
    cost_range: [0, 12]
    score_range: [6, 10]
    accepted_categories: [Adventure]
`,
		},
		{
			name: "unknown item field",
			yaml: `
catalog:
  - id: 1
    duration: 108
    category: Adventure
    cost: 3.99
    score: 6.4
    colour: blue
evaluators:
  - id: 1
    duration_range: [100, 160]
    cost_range: [0, 12]
    score_range: [6, 10]
    accepted_categories: [Adventure]
`,
		},
		{
			name: "non-numeric duration",
			yaml: `
catalog:
  - id: 1
    duration: long
    category: Adventure
    cost: 3.99
    score: 6.4
evaluators:
  - id: 1
    duration_range: [100, 160]
    cost_range: [0, 12]
    score_range: [6, 10]
    accepted_categories: [Adventure]
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)

			var iie *InvalidInputError
			require.ErrorAs(t, err, &iie)
			require.Contains(t, err.Error(), "schema validation failed")
		})
	}
}

func TestParse_SemanticViolation(t *testing.T) {
	data := `
catalog:
  - id: 1
    duration: 108
    category: Adventure
    cost: 3.99
    score: 6.4
evaluators:
  - id: 7
    duration_range: [160, 100]
    cost_range: [0, 12]
    score_range: [6, 10]
    accepted_categories: [Adventure]
`
	_, err := Parse([]byte(data))
	require.Error(t, err)

	var iie *InvalidInputError
	require.ErrorAs(t, err, &iie)
	require.Equal(t, "evaluator", iie.Kind)
	require.Equal(t, 7, iie.ID)
	require.Equal(t, "duration_range", iie.Field)
}

func TestParse_NotYAML(t *testing.T) {
	_, err := Parse([]byte("{{{"))
	require.Error(t, err)
}
