package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ProviderAuto selects the first vendor whose standard API key env var is set.
const ProviderAuto = "auto"

// Config is the "llm" section of the config file.
type Config struct {
	// Provider is anthropic, openai, gemini, openrouter, mock or auto.
	// Empty leaves the tutor off.
	Provider string `mapstructure:"provider"`

	// Model and APIKey override the selected vendor's values when set.
	Model  string `mapstructure:"model"`
	APIKey string `mapstructure:"api_key"`

	Anthropic  AnthropicConfig  `mapstructure:"anthropic"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	Retry      RetryConfig      `mapstructure:"retry"`

	// Timeout bounds one explanation, retries included.
	Timeout time.Duration `mapstructure:"timeout"`
}

type AnthropicConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type OpenRouterConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	InitialWait time.Duration `mapstructure:"initial_wait"`
	MaxWait     time.Duration `mapstructure:"max_wait"`
	Multiplier  float64       `mapstructure:"multiplier"`
}

func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// vendor binds a provider name to its config fields and key env var.
type vendor struct {
	name   string
	envKey string
	fields func(c *Config) (key, model *string)
}

// vendors is in auto-detection order.
var vendors = []vendor{
	{ProviderGemini, "GEMINI_API_KEY", func(c *Config) (*string, *string) { return &c.Gemini.APIKey, &c.Gemini.Model }},
	{ProviderOpenAI, "OPENAI_API_KEY", func(c *Config) (*string, *string) { return &c.OpenAI.APIKey, &c.OpenAI.Model }},
	{ProviderAnthropic, "ANTHROPIC_API_KEY", func(c *Config) (*string, *string) { return &c.Anthropic.APIKey, &c.Anthropic.Model }},
	{ProviderOpenRouter, "OPENROUTER_API_KEY", func(c *Config) (*string, *string) { return &c.OpenRouter.APIKey, &c.OpenRouter.Model }},
}

func lookupVendor(name string) (vendor, bool) {
	for _, v := range vendors {
		if v.name == name {
			return v, true
		}
	}
	return vendor{}, false
}

// Enabled reports whether a provider has been selected.
func (c Config) Enabled() bool {
	return c.Provider != ""
}

// Resolved settles "auto" and applies the Model and APIKey overrides to the
// selected vendor. A key still missing comes from the vendor's env var.
func (c Config) Resolved() Config {
	if c.Provider == ProviderAuto {
		c.Provider = ""
		for _, v := range vendors {
			key, _ := v.fields(&c)
			if *key != "" || os.Getenv(v.envKey) != "" {
				c.Provider = v.name
				break
			}
		}
	}
	v, ok := lookupVendor(c.Provider)
	if !ok {
		return c
	}
	key, model := v.fields(&c)
	*model = pick(c.Model, *model)
	*key = pick(c.APIKey, *key, os.Getenv(v.envKey))
	return c
}

func pick(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Validate checks that the selected vendor has an API key. Call it on a
// resolved config.
func (c Config) Validate() error {
	switch c.Provider {
	case "":
		return ErrNotConfigured
	case ProviderMock:
		return nil
	}
	v, ok := lookupVendor(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	if key, _ := v.fields(&c); *key == "" {
		return fmt.Errorf("llm.%s.api_key (or HEMEPATH_LLM_%s_API_KEY or %s) is required for the %s provider",
			v.name, strings.ToUpper(v.name), v.envKey, v.name)
	}
	return nil
}
