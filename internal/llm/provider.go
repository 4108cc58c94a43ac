// Package llm sends tutor prompts to a hosted model and returns JSON that
// has been validated against the caller's schema.
package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Provider generates one structured completion per call.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Name is the vendor, e.g. "anthropic".
	Name() string

	// ModelID is the model requests are sent to.
	ModelID() string
}

// Request is a single prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks the vendor for JSON and validates the reply.
	// Without it Content is the reply text encoded as a JSON string.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Prompt is a request with one user message.
func Prompt(system, user string, schema *Schema) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: user}},
		Schema:   schema,
	}
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// StopReason is the vendor's finish reason, normalized.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason StopReason
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// finish turns a vendor reply into a Response. Structured replies cut off at
// the token limit are rejected since they cannot be valid JSON.
func finish(req Request, text string, usage Usage, model string, stop StopReason) (*Response, error) {
	var content json.RawMessage
	if req.Schema == nil {
		content, _ = json.Marshal(text)
	} else {
		content = json.RawMessage(stripFence(text))
		if stop == StopMaxTokens {
			return nil, &ErrMaxTokensExceeded{Content: content}
		}
		if err := req.Schema.Validate(content); err != nil {
			return nil, err
		}
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}

// stripFence removes a markdown code fence some models wrap JSON in.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

// resolveModel maps a short alias to a vendor model ID. Unknown names are
// passed through.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
