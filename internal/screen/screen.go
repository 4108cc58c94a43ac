package screen

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/content"
	"github.com/abhisek/hemepath/internal/settings"
	"github.com/abhisek/hemepath/internal/tutor"
	"github.com/abhisek/hemepath/internal/ui/layout"
	"github.com/abhisek/hemepath/internal/ui/theme"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens with a focused text field.
// While it reports true the app leaves printable keys to the screen.
type InputCapturer interface {
	CapturingInput() bool
}

// Deps carries the shared services every screen may use. Tutor is nil
// when no LLM provider is configured.
type Deps struct {
	Prefs   *settings.Preferences
	Library *content.Library
	Tutor   *tutor.Service
	Logger  *slog.Logger
}

// Styles returns the style set for the current theme.
func (d *Deps) Styles() *theme.Styles {
	if d == nil || d.Prefs == nil {
		return theme.For(theme.DefaultMode)
	}
	return d.Prefs.Styles()
}

// Log returns the logger, never nil.
func (d *Deps) Log() *slog.Logger {
	if d == nil || d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}
