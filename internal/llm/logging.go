package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/hemepath/internal/store"
)

type loggingProvider struct {
	Provider
	repo   store.EventRepo
	logger *slog.Logger
}

// WithLogging logs every request and, when repo is non-nil, stores it as an
// LLM event for `hemepath llm`.
func WithLogging(p Provider, repo store.EventRepo, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &loggingProvider{Provider: p, repo: repo, logger: logger.With("provider", p.Name())}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.Provider.Generate(ctx, req)

	ev := store.LLMRequestEventData{
		Provider:    l.Name(),
		Model:       l.ModelID(),
		Purpose:     string(PurposeFrom(ctx)),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}

	attrs := []any{
		"purpose", ev.Purpose,
		"model", ev.Model,
		"latency_ms", ev.LatencyMs,
		"input_tokens", ev.InputTokens,
		"output_tokens", ev.OutputTokens,
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		l.logger.Warn("llm request failed", append(attrs, "error", err)...)
	} else {
		l.logger.Info("llm request", attrs...)
	}

	if l.repo != nil {
		// The request context may already be done; the record should still land.
		if rerr := l.repo.AppendLLMRequest(context.WithoutCancel(ctx), ev); rerr != nil {
			l.logger.Warn("record llm event", "error", rerr)
		}
	}
	return resp, err
}

// transcript renders a request as shown by `hemepath llm view`.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.MarshalIndent(req.Schema.Definition, "", "  "); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
