// Package tutor asks an LLM to explain diagnoses and case answers. It is
// optional: nothing else in the app depends on it succeeding.
package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/abhisek/hemepath/internal/llm"
)

// ErrUnavailable wraps every failure to produce an explanation.
var ErrUnavailable = errors.New("explanation unavailable")

// Explanation is the tutor's answer for one topic.
type Explanation struct {
	Topic     Topic
	Summary   string
	KeyPoints []string
	Pitfalls  []string
	Cached    bool
}

// Config holds explanation settings.
type Config struct {
	MaxTokens     int
	Temperature   float64
	CacheTTL      time.Duration
	RatePerMinute int
	Timeout       time.Duration
}

// DefaultConfig returns sensible defaults for explanations.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     600,
		Temperature:   0.3,
		CacheTTL:      24 * time.Hour,
		RatePerMinute: 6,
		Timeout:       45 * time.Second,
	}
}

// Service generates explanations, caching them by topic and limiting how
// often the provider is called.
type Service struct {
	provider llm.Provider
	cfg      Config
	cache    *cache.Cache
	limiter  *rate.Limiter
	logger   *slog.Logger

	mu      sync.Mutex
	pending *Explanation
	err     error
	ready   bool
	gen     int
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	limit := rate.Inf
	if cfg.RatePerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RatePerMinute))
	}
	return &Service{
		provider: provider,
		cfg:      cfg,
		cache:    cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		limiter:  rate.NewLimiter(limit, 1),
		logger:   logger.With("component", "tutor"),
	}
}

// Explain returns an explanation for t, from cache when possible.
func (s *Service) Explain(ctx context.Context, t Topic) (*Explanation, error) {
	key := t.Key()
	if v, ok := s.cache.Get(key); ok {
		e := *v.(*Explanation)
		e.Cached = true
		return &e, nil
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	e, err := s.generate(ctx, t)
	if err != nil {
		s.logger.Warn("explain failed", "kind", t.Kind, "title", t.Title, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	s.cache.SetDefault(key, e)
	return e, nil
}

// Request starts an explanation in the background. A newer request
// supersedes any still in flight; only the latest result is kept.
func (s *Service) Request(ctx context.Context, t Topic) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.pending, s.err, s.ready = nil, nil, false
	s.mu.Unlock()

	go func() {
		e, err := s.Explain(ctx, t)
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			return
		}
		s.pending = e
		s.err = err
		s.ready = true
	}()
}

// Consume returns the result of the latest Request once it is ready.
// ok is false while the request is still running. After a ready result is
// consumed the slot is cleared.
func (s *Service) Consume() (e *Explanation, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false, nil
	}
	e, err = s.pending, s.err
	s.pending, s.err, s.ready = nil, nil, false
	return e, true, err
}

type explanationOutput struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
	Pitfalls  []string `json:"pitfalls"`
}

func (s *Service) generate(ctx context.Context, t Topic) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExplain)

	userMsg, err := buildUserMessage(t)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	req := llm.Prompt(systemPrompt, userMsg, ExplanationSchema)
	req.MaxTokens = s.cfg.MaxTokens
	req.Temperature = s.cfg.Temperature
	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}
	if out.Summary == "" {
		return nil, fmt.Errorf("parse explanation response: empty summary")
	}

	return &Explanation{
		Topic:     t,
		Summary:   out.Summary,
		KeyPoints: out.KeyPoints,
		Pitfalls:  out.Pitfalls,
	}, nil
}
