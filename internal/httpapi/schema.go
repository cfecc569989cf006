package httpapi

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// generationRequestSchema constrains the POST /v1/questions body before
// it reaches the engine, so malformed payloads fail fast with a 400.
const generationRequestSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["model_id"],
	"additionalProperties": false,
	"properties": {
		"model_id":          {"type": "string", "minLength": 1},
		"difficulty_level":  {"type": "string", "pattern": "^[1-6]\\.[1-4]$"},
		"year_level":        {"type": "integer", "minimum": 1, "maximum": 6},
		"format_preference": {"type": "string"},
		"scenario_theme":    {"type": "string"},
		"quantity":          {"type": "integer", "minimum": 1, "maximum": 20}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// validateGenerationBody checks raw against the request schema.
func validateGenerationBody(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schemaOnce.Do(func() {
		var doc any
		if schemaErr = json.Unmarshal([]byte(generationRequestSchema), &doc); schemaErr != nil {
			return
		}
		c := jsonschema.NewCompiler()
		if schemaErr = c.AddResource("schema://generation_request.json", doc); schemaErr != nil {
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://generation_request.json")
	})
	if schemaErr != nil {
		return fmt.Errorf("compile request schema: %w", schemaErr)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
