// Package schemas embeds the JSON Schema documents used to validate plan files.
package schemas

import _ "embed"

// PlanSchemaJSON is the JSON Schema for plan.yaml files.
//
//go:embed plan.schema.json
var PlanSchemaJSON string
