package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/panelpick/panelpick/internal/validation"
)

// DefaultFloor is the minimum fraction of preference dimensions each
// evaluator must have satisfied by the selected item: 2 of 4. This is a
// policy constant; the config may override it explicitly but nothing in the
// pipeline ever loosens it.
const DefaultFloor = 0.5

// rawPlan is the YAML shape of a plan file. Catalog and evaluator entries
// stay generic key-value records here and are decoded individually so a bad
// record can be reported with its position.
type rawPlan struct {
	Catalog    []map[string]any `yaml:"catalog"`
	Evaluators []map[string]any `yaml:"evaluators"`
	Policy     struct {
		SatisfactionFloor *float64 `yaml:"satisfaction_floor"`
	} `yaml:"policy"`
}

type itemRecord struct {
	ID       int     `mapstructure:"id"`
	Name     string  `mapstructure:"name"`
	Duration int     `mapstructure:"duration"`
	Category string  `mapstructure:"category"`
	Cost     float64 `mapstructure:"cost"`
	Score    float64 `mapstructure:"score"`
}

type evaluatorRecord struct {
	ID                 int        `mapstructure:"id"`
	Name               string     `mapstructure:"name"`
	DurationRange      [2]float64 `mapstructure:"duration_range"`
	CostRange          [2]float64 `mapstructure:"cost_range"`
	ScoreRange         [2]float64 `mapstructure:"score_range"`
	AcceptedCategories []string   `mapstructure:"accepted_categories"`
}

// Load reads a plan YAML file, validates it against the embedded schema,
// decodes it and validates the result. The returned plan is ready for
// preprocessing.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates raw plan YAML.
func Parse(data []byte) (*Plan, error) {
	if errs := validation.ValidatePlanBytes(data); len(errs) > 0 {
		return nil, &InvalidInputError{
			Kind:   "plan",
			Reason: fmt.Sprintf("schema validation failed:\n  %s", strings.Join(errs, "\n  ")),
		}
	}

	var raw rawPlan
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing plan YAML: %w", err)
	}

	plan := &Plan{Floor: DefaultFloor}
	if raw.Policy.SatisfactionFloor != nil {
		plan.Floor = *raw.Policy.SatisfactionFloor
	}

	for idx, rec := range raw.Catalog {
		var ir itemRecord
		if err := decodeRecord(rec, &ir); err != nil {
			return nil, &InvalidInputError{Kind: "item", ID: idx + 1, Field: "record", Reason: err.Error()}
		}
		plan.Items = append(plan.Items, Item{
			ID:       ir.ID,
			Name:     ir.Name,
			Duration: ir.Duration,
			Category: ir.Category,
			Cost:     ir.Cost,
			Score:    ir.Score,
		})
	}

	for idx, rec := range raw.Evaluators {
		var er evaluatorRecord
		if err := decodeRecord(rec, &er); err != nil {
			return nil, &InvalidInputError{Kind: "evaluator", ID: idx + 1, Field: "record", Reason: err.Error()}
		}
		plan.Evaluators = append(plan.Evaluators, Evaluator{
			ID:                 er.ID,
			Name:               er.Name,
			DurationRange:      Range{Min: er.DurationRange[0], Max: er.DurationRange[1]},
			CostRange:          Range{Min: er.CostRange[0], Max: er.CostRange[1]},
			ScoreRange:         Range{Min: er.ScoreRange[0], Max: er.ScoreRange[1]},
			AcceptedCategories: er.AcceptedCategories,
		})
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// decodeRecord decodes one key-value record into its typed form. Unknown
// fields are an error so typos in plan files fail loudly instead of silently
// dropping a preference.
func decodeRecord(rec map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(rec)
}
