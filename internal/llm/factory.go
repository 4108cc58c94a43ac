package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/hemepath/internal/store"
)

// NewProvider builds the configured vendor wrapped as
// retry → logging → vendor. A nil eventRepo skips persistence.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *slog.Logger) (Provider, error) {
	cfg = cfg.Resolved()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropic(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAI(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGemini(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouter(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initialize %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, eventRepo, logger), cfg.Retry, logger), nil
}
