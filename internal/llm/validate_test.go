package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionTestSchema() *Schema {
	return &Schema{
		Name:        "test-question",
		Description: "A test question shape",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"prompt": map[string]any{"type": "string"},
				"answer": map[string]any{"type": "string"},
				"format": map[string]any{
					"type": "string",
					"enum": []any{"short_answer", "multiple_choice"},
				},
			},
			"required":             []any{"prompt", "answer", "format"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"2+2?","answer":"4","format":"short_answer"}`)
	if err := validateResponse(questionTestSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `this is prose, not JSON`},
		{"missing required field", `{"prompt":"2+2?"}`},
		{"enum violation", `{"prompt":"2+2?","answer":"4","format":"essay"}`},
		{"extra property", `{"prompt":"2+2?","answer":"4","format":"short_answer","hint":"even"}`},
		{"wrong type", `{"prompt":"2+2?","answer":4,"format":"short_answer"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(questionTestSchema(), json.RawMessage(tt.raw))
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("err = %v (%T), want ErrInvalidResponse", err, err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything goes`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponseCachesCompiledSchema(t *testing.T) {
	schema := questionTestSchema()
	raw := json.RawMessage(`{"prompt":"p","answer":"a","format":"short_answer"}`)

	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := schemaCache.Load(schema.Name); !ok {
		t.Fatal("compiled schema not cached")
	}
	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("second validation: %v", err)
	}
}
