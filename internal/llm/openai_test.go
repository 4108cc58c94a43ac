package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func chatServer(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server.URL + "/v1"
}

func chatReply(content, finish string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4.1-mini-2025-04-14",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finish,
			}},
			"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 20, "total_tokens": 60},
		})
	}
}

func chatError(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": http.StatusText(status), "type": "error"},
		})
	}
}

func TestOpenAI_StructuredReply(t *testing.T) {
	var body string
	url := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		chatReply(`{"summary":"CLL","key_points":["CD5+ CD23+"],"pitfalls":["mantle cell"]}`, "stop")(w, r)
	})
	p, err := NewOpenAI(OpenAIConfig{APIKey: "k", Model: "gpt-mini", BaseURL: url})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := p.Generate(context.Background(), Prompt("sys", "Explain CLL.", explanationSchema()))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Usage.Total() != 60 || resp.StopReason != StopEnd {
		t.Errorf("resp = %+v", resp)
	}
	for _, want := range []string{`"model":"gpt-4.1-mini"`, `"json_schema"`, `"strict":true`, `"role":"system"`} {
		if !strings.Contains(body, want) {
			t.Errorf("request body missing %s:\n%s", want, body)
		}
	}
	if p.Name() != ProviderOpenAI {
		t.Errorf("Name() = %q", p.Name())
	}
}

func TestOpenAI_PlainTextIsJSONString(t *testing.T) {
	p, _ := NewOpenAI(OpenAIConfig{APIKey: "k", Model: "gpt-4o", BaseURL: chatServer(t, chatReply("ok", "stop"))})

	resp, err := p.Generate(context.Background(), Prompt("", "ping", nil))
	if err != nil {
		t.Fatal(err)
	}
	var s string
	if err := json.Unmarshal(resp.Content, &s); err != nil || s != "ok" {
		t.Errorf("content = %s, want \"ok\"", resp.Content)
	}
}

func TestOpenAI_SchemaMismatchIsInvalid(t *testing.T) {
	p, _ := NewOpenAI(OpenAIConfig{APIKey: "k", Model: "gpt-4o", BaseURL: chatServer(t, chatReply(`{"summary":1}`, "stop"))})

	_, err := p.Generate(context.Background(), Prompt("", "x", explanationSchema()))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %T (%v), want ErrInvalidResponse", err, err)
	}
}

func TestOpenAI_LengthFinishIsTruncation(t *testing.T) {
	p, _ := NewOpenAI(OpenAIConfig{APIKey: "k", Model: "gpt-4o", BaseURL: chatServer(t, chatReply(`{"summary":"`, "length"))})

	_, err := p.Generate(context.Background(), Prompt("", "x", explanationSchema()))
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("err = %T (%v), want ErrMaxTokensExceeded", err, err)
	}
}

func TestOpenAI_ErrorClasses(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }},
		{http.StatusBadGateway, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
		{http.StatusNotFound, func(err error) bool { var e *ErrRejected; return errors.As(err, &e) }},
	}
	for _, tt := range tests {
		p, _ := NewOpenAI(OpenAIConfig{APIKey: "k", Model: "gpt-4o", BaseURL: chatServer(t, chatError(tt.status))})
		_, err := p.Generate(context.Background(), Prompt("", "x", nil))
		if err == nil || !tt.check(err) {
			t.Errorf("status %d: err = %T (%v)", tt.status, err, err)
		}
	}
}

func TestOpenRouter_DefaultsAndName(t *testing.T) {
	p, err := NewOpenRouter(OpenRouterConfig{APIKey: "k", Model: "anthropic/claude-haiku-4.5"})
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != ProviderOpenRouter {
		t.Errorf("Name() = %q", p.Name())
	}
	if p.ModelID() != "anthropic/claude-haiku-4.5" {
		t.Errorf("ModelID() = %q", p.ModelID())
	}
	if _, err := NewOpenRouter(OpenRouterConfig{}); err == nil {
		t.Error("expected error without API key")
	}
}

func TestOpenRouter_UsesBaseURL(t *testing.T) {
	var path string
	url := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		chatReply(`"hi"`, "stop")(w, r)
	})
	p, _ := NewOpenRouter(OpenRouterConfig{APIKey: "k", Model: "google/gemini-2.5-flash", BaseURL: url})

	if _, err := p.Generate(context.Background(), Prompt("", "x", nil)); err != nil {
		t.Fatal(err)
	}
	if path != "/v1/chat/completions" {
		t.Errorf("path = %q", path)
	}
}
