package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// explanationSchema mirrors the tutor's reply shape.
func explanationSchema() *Schema {
	return &Schema{
		Name:        "topic-explanation",
		Description: "A short teaching explanation",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary":    map[string]any{"type": "string"},
				"key_points": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"pitfalls":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required":             []any{"summary", "key_points", "pitfalls"},
			"additionalProperties": false,
		},
	}
}

func TestSchema_Validate(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"complete", `{"summary":"APL","key_points":["t(15;17)"],"pitfalls":[]}`, true},
		{"missing field", `{"summary":"APL","key_points":[]}`, false},
		{"wrong type", `{"summary":"APL","key_points":"t(15;17)","pitfalls":[]}`, false},
		{"extra field", `{"summary":"APL","key_points":[],"pitfalls":[],"grade":"A"}`, false},
		{"not JSON", `Here is your explanation`, false},
	}
	s := explanationSchema()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Validate(json.RawMessage(tt.raw))
			if tt.valid {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("err = %T (%v), want ErrInvalidResponse", err, err)
			}
			if string(inv.Content) != tt.raw {
				t.Errorf("content = %s", inv.Content)
			}
		})
	}
}

func TestSchema_NilAcceptsAnything(t *testing.T) {
	var s *Schema
	if err := s.Validate(json.RawMessage(`not json`)); err != nil {
		t.Errorf("nil schema: %v", err)
	}
}

func TestSchema_BadDefinition(t *testing.T) {
	s := &Schema{Name: "broken", Definition: map[string]any{"type": 12}}
	err := s.Validate(json.RawMessage(`{}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if err2 := s.Validate(json.RawMessage(`{}`)); err2 == nil {
		t.Error("compile failure should stick")
	}
}
