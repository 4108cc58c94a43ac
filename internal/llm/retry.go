package llm

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"
)

type retryProvider struct {
	Provider
	cfg    RetryConfig
	logger *slog.Logger
}

// WithRetry retries transient failures with exponential backoff and ±20%
// jitter. An invalid reply is retried once.
func WithRetry(p Provider, cfg RetryConfig, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.MaxAttempts = max(cfg.MaxAttempts, 1)
	if cfg.Multiplier < 1 {
		cfg.Multiplier = 1
	}
	return &retryProvider{Provider: p, cfg: cfg, logger: logger}
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var invalidSeen bool
	for attempt := 1; ; attempt++ {
		resp, err := r.Provider.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		retry, invalid := transient(err)
		if invalid {
			retry = !invalidSeen
			invalidSeen = true
		}
		if !retry || attempt >= r.cfg.MaxAttempts {
			return nil, err
		}

		wait := r.backoff(attempt, err)
		if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < wait {
			return nil, err
		}
		r.logger.Debug("retrying llm request",
			"purpose", PurposeFrom(ctx),
			"attempt", attempt,
			"wait", wait,
			"error", err)

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
}

// backoff is the wait after the given 1-based attempt. A rate limit with a
// RetryAfter hint wins over the schedule.
func (r *retryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}
	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt-1))
	if r.cfg.MaxWait > 0 {
		wait = math.Min(wait, float64(r.cfg.MaxWait))
	}
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(wait, 0))
}
