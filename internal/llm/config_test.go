package llm

import (
	"errors"
	"strings"
	"testing"
)

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, v := range vendors {
		t.Setenv(v.envKey, "")
	}
}

func TestResolved_Overrides(t *testing.T) {
	clearKeyEnv(t)
	cfg := DefaultConfig()
	cfg.Provider = ProviderAnthropic
	cfg.Model = "claude-sonnet"
	cfg.APIKey = "top-level"

	got := cfg.Resolved()
	if got.Anthropic.Model != "claude-sonnet" || got.Anthropic.APIKey != "top-level" {
		t.Errorf("anthropic = %+v", got.Anthropic)
	}
	if got.OpenAI.APIKey != "" {
		t.Error("other vendors should be untouched")
	}
}

func TestResolved_EnvKeyFallback(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("OPENAI_API_KEY", "from-env")
	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenAI

	got := cfg.Resolved()
	if got.OpenAI.APIKey != "from-env" || got.OpenAI.Model != "gpt-mini" {
		t.Errorf("openai = %+v", got.OpenAI)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestResolved_Auto(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "a")
	t.Setenv("OPENROUTER_API_KEY", "o")
	cfg := DefaultConfig()
	cfg.Provider = ProviderAuto

	if got := cfg.Resolved(); got.Provider != ProviderAnthropic || got.Anthropic.APIKey != "a" {
		t.Errorf("auto picked %q", got.Provider)
	}

	clearKeyEnv(t)
	if got := cfg.Resolved(); !errors.Is(got.Validate(), ErrNotConfigured) {
		t.Errorf("auto without keys: provider %q", got.Provider)
	}
}

func TestValidate(t *testing.T) {
	clearKeyEnv(t)
	tests := []struct {
		provider string
		wantErr  string
	}{
		{"", "no LLM provider"},
		{ProviderMock, ""},
		{ProviderGemini, "llm.gemini.api_key"},
		{"llama", "unknown LLM provider"},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Provider = tt.provider
		err := cfg.Resolved().Validate()
		switch {
		case tt.wantErr == "" && err != nil:
			t.Errorf("%q: unexpected error %v", tt.provider, err)
		case tt.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tt.wantErr)):
			t.Errorf("%q: err = %v, want %q", tt.provider, err, tt.wantErr)
		}
	}
}
