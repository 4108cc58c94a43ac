package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) *Gemini {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := newGemini(context.Background(), GeminiConfig{APIKey: "k", Model: "gemini-flash"},
		genai.HTTPOptions{BaseURL: server.URL + "/"})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestGemini_StructuredReply(t *testing.T) {
	var path string
	p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": `{"summary":"MM","key_points":["CD138+"],"pitfalls":[]}`}},
				},
				"finishReason": "STOP",
			}},
			"usageMetadata": map[string]any{"promptTokenCount": 10, "candidatesTokenCount": 5, "totalTokenCount": 15},
			"modelVersion":  "gemini-2.5-flash",
		})
	})

	resp, err := p.Generate(context.Background(), Prompt("sys", "Explain myeloma.", explanationSchema()))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasSuffix(path, "models/gemini-2.5-flash:generateContent") {
		t.Errorf("path = %q", path)
	}
	if resp.Usage.Total() != 15 || resp.Model != "gemini-2.5-flash" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestGemini_RateLimit(t *testing.T) {
	p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 429, "message": "quota", "status": "RESOURCE_EXHAUSTED"},
		})
	})

	_, err := p.Generate(context.Background(), Prompt("", "x", nil))
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %T (%v), want ErrRateLimit", err, err)
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(explanationSchema().Definition)

	if s.Type != genai.TypeObject {
		t.Fatalf("type = %s", s.Type)
	}
	if len(s.Properties) != 3 || len(s.PropertyOrdering) != 3 {
		t.Fatalf("properties = %d", len(s.Properties))
	}
	if s.Properties["summary"].Type != genai.TypeString {
		t.Errorf("summary type = %s", s.Properties["summary"].Type)
	}
	if kp := s.Properties["key_points"]; kp.Type != genai.TypeArray || kp.Items.Type != genai.TypeString {
		t.Errorf("key_points = %+v", kp)
	}
	if len(s.Required) != 3 {
		t.Errorf("required = %v", s.Required)
	}
}

func TestGeminiSchema_Enum(t *testing.T) {
	s := geminiSchema(map[string]any{"type": "string", "enum": []string{"High", "Medium", "Low"}})
	if len(s.Enum) != 3 {
		t.Errorf("enum = %v", s.Enum)
	}
}
