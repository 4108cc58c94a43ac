// Package settings is the preferences screen.
package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/ui/components"
	"github.com/abhisek/hemepath/internal/ui/layout"
	"github.com/abhisek/hemepath/internal/ui/theme"
)

// Screen shows preferences and toggles the theme.
type Screen struct {
	deps *screen.Deps
	err  error
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

func New(deps *screen.Deps) *Screen {
	return &Screen{deps: deps}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Settings" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "t", Description: "Toggle theme"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.deps.Prefs == nil {
		return s, nil
	}
	switch kmsg.String() {
	case "t", "space":
		return s, s.toggle()
	}
	_, cmd := s.button().Update(kmsg)
	return s, cmd
}

func (s *Screen) toggle() tea.Cmd {
	_, s.err = s.deps.Prefs.ToggleTheme(context.Background())
	if s.err != nil {
		s.deps.Log().Warn("toggle theme", "error", s.err)
	}
	return nil
}

func (s *Screen) mode() theme.Mode {
	if s.deps.Prefs == nil {
		return theme.DefaultMode
	}
	return s.deps.Prefs.Theme()
}

func (s *Screen) button() components.Button {
	label := "Switch to " + string(s.mode().Other()) + " theme"
	return components.NewButton(label, s.deps.Prefs != nil, s.toggle)
}

func (s *Screen) View(width, height int) string {
	st := s.deps.Styles()
	cw := components.ContentWidth(width)

	var b strings.Builder
	mode := string(s.mode())
	if s.deps.Prefs == nil {
		mode += " (default)"
	}
	b.WriteString(st.Label.Render("Theme     ") + st.Selected.Render(mode) + "\n")

	tutor := st.Hint.Render("not configured (set llm.provider)")
	if s.deps.Tutor != nil {
		tutor = st.Correct.Render("available")
	}
	b.WriteString(st.Label.Render("AI tutor  ") + tutor + "\n")

	b.WriteString("\n" + s.button().View(st) + "\n")

	if s.err != nil {
		b.WriteString("\n" + st.Warning.Render(layout.Wrap(fmt.Sprintf("Theme applied but not saved: %v", s.err), cw)))
	}
	return components.Center(components.Card(st, strings.TrimRight(b.String(), "\n"), cw), width, height)
}
