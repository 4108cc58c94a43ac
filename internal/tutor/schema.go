package tutor

import "github.com/abhisek/hemepath/internal/llm"

// ExplanationSchema defines the JSON schema for topic explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "topic-explanation",
	Description: "A short teaching explanation of a hematopathology diagnosis",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-4 sentence explanation tying the findings to the diagnosis",
			},
			"key_points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-5 facts a trainee should remember",
			},
			"pitfalls": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "0-3 common differential or interpretation mistakes",
			},
		},
		"required":             []any{"summary", "key_points", "pitfalls"},
		"additionalProperties": false,
	},
}
