package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://catalog.json"

// catalogSchema describes the on-disk catalog document.
var catalogSchema = map[string]any{
	"type":     "object",
	"required": []any{"version", "works"},
	"properties": map[string]any{
		"version": map[string]any{"type": "string"},
		"works": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"key", "title", "parts"},
				"properties": map[string]any{
					"key":    map[string]any{"type": "string", "minLength": 1},
					"title":  map[string]any{"type": "string", "minLength": 1},
					"author": map[string]any{"type": "string"},
					"parts": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"key", "title", "questions"},
							"properties": map[string]any{
								"key":   map[string]any{"type": "string", "minLength": 1},
								"title": map[string]any{"type": "string", "minLength": 1},
								"questions": map[string]any{
									"type": "array",
									"items": map[string]any{
										"type":     "object",
										"required": []any{"id", "question", "options", "answer"},
										"properties": map[string]any{
											"id":          map[string]any{"type": "integer"},
											"question":    map[string]any{"type": "string", "minLength": 1},
											"options":     map[string]any{"type": "array", "minItems": 2, "items": map[string]any{"type": "string"}},
											"answer":      map[string]any{"type": "integer", "minimum": 0},
											"explanation": map[string]any{"type": "string"},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants plain decoded JSON, not Go literals.
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateSchema checks raw catalog JSON against catalogSchema.
func validateSchema(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
