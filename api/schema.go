package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// assessmentSchema is the wire contract for the public assessment
// endpoint. Every question must carry at least one option; the widget
// cannot drive its answer loop otherwise.
var assessmentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":          map[string]any{"type": []any{"string", "integer"}},
		"title":       map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": []any{"string", "integer"}},
					"text": map[string]any{"type": "string"},
					"type": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":    map[string]any{"type": []any{"string", "integer"}},
								"text":  map[string]any{"type": "string"},
								"score": map[string]any{"type": "integer"},
							},
							"required": []any{"id", "text", "score"},
						},
					},
				},
				"required": []any{"id", "text", "options"},
			},
		},
	},
	"required": []any{"id", "title", "questions"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateAssessment checks a raw response body against the wire
// contract before the widget trusts it.
func validateAssessment(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &InvalidAssessmentError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := getCompiledSchema()
	if err != nil {
		return &InvalidAssessmentError{Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &InvalidAssessmentError{Err: err}
	}
	return nil
}

// getCompiledSchema compiles the assessment schema once per process.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any),
		// not raw bytes. Marshal then unmarshal for a clean value.
		defBytes, err := json.Marshal(assessmentSchema)
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
		const schemaURL = "schema://assessment.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
