// Package settings holds user preferences that survive restarts. The
// preferences object is built once at startup and handed to whatever needs
// it; nothing here is package-level state.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/abhisek/hemepath/internal/store"
	"github.com/abhisek/hemepath/internal/ui/theme"
)

// ThemeKey is the preference key the theme is stored under.
const ThemeKey = "theme"

// ErrInvalidTheme is returned for a theme name other than light or dark.
var ErrInvalidTheme = errors.New("invalid theme")

// ParseTheme validates a theme name.
func ParseTheme(s string) (theme.Mode, error) {
	m := theme.Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w %q (want light or dark)", ErrInvalidTheme, s)
	}
	return m, nil
}

// Preferences is the in-memory view of persisted settings. A nil repo keeps
// changes in memory only.
type Preferences struct {
	repo   store.PreferenceRepo
	logger *slog.Logger

	mu    sync.RWMutex
	theme theme.Mode
}

// Load reads persisted preferences, falling back to defaults for missing or
// unreadable values.
func Load(ctx context.Context, repo store.PreferenceRepo, logger *slog.Logger) *Preferences {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Preferences{repo: repo, logger: logger, theme: theme.DefaultMode}
	if repo == nil {
		return p
	}

	v, err := repo.Get(ctx, ThemeKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		logger.Warn("read theme preference", "error", err)
	default:
		if m, err := ParseTheme(v); err == nil {
			p.theme = m
		} else {
			logger.Warn("ignoring stored theme", "value", v)
		}
	}
	return p
}

// Theme returns the current theme mode.
func (p *Preferences) Theme() theme.Mode {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

// Styles returns the style set for the current theme.
func (p *Preferences) Styles() *theme.Styles {
	return theme.For(p.Theme())
}

// SetTheme changes the theme and persists it. The in-memory value changes
// even if persisting fails.
func (p *Preferences) SetTheme(ctx context.Context, m theme.Mode) error {
	if !m.Valid() {
		return fmt.Errorf("%w %q", ErrInvalidTheme, m)
	}
	p.mu.Lock()
	p.theme = m
	p.mu.Unlock()

	if p.repo == nil {
		return nil
	}
	if err := p.repo.Set(ctx, ThemeKey, string(m)); err != nil {
		return fmt.Errorf("persist theme: %w", err)
	}
	p.logger.Info("theme changed", "theme", m)
	return nil
}

// ToggleTheme flips between light and dark and returns the new mode.
func (p *Preferences) ToggleTheme(ctx context.Context) (theme.Mode, error) {
	next := p.Theme().Other()
	return next, p.SetTheme(ctx, next)
}
