package llm

import "errors"

const (
	ProviderOpenRouter = "openrouter"

	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
)

// NewOpenRouter returns an OpenAI-compatible client for OpenRouter. Models
// are vendor-prefixed, e.g. "anthropic/claude-haiku-4.5".
func NewOpenRouter(cfg OpenRouterConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter API key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	return newOpenAICompatible(ProviderOpenRouter, cfg.APIKey, baseURL, cfg.Model), nil
}
