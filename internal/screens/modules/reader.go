package modules

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/content"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/ui/components"
	"github.com/abhisek/hemepath/internal/ui/layout"
	"github.com/abhisek/hemepath/internal/ui/theme"
)

// ReaderScreen renders one module into a scrollable viewport.
type ReaderScreen struct {
	deps   *screen.Deps
	module content.Module
	vp     viewport.Model

	// width and styles the viewport content was last rendered for
	renderedWidth int
	renderedFor   *theme.Styles
}

var _ screen.Screen = (*ReaderScreen)(nil)
var _ screen.KeyHintProvider = (*ReaderScreen)(nil)

// NewReader opens m at the top.
func NewReader(deps *screen.Deps, m content.Module) *ReaderScreen {
	return &ReaderScreen{
		deps:   deps,
		module: m,
		vp:     viewport.New(viewport.WithWidth(80), viewport.WithHeight(20)),
	}
}

func (s *ReaderScreen) Init() tea.Cmd { return nil }

func (s *ReaderScreen) Title() string { return s.module.Title }

func (s *ReaderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "PgUp/PgDn", Description: "Page"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReaderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

// ScrollPercent reports how far the reader has scrolled.
func (s *ReaderScreen) ScrollPercent() float64 { return s.vp.ScrollPercent() }

func (s *ReaderScreen) View(width, height int) string {
	st := s.deps.Styles()
	cw := components.ContentWidth(width)

	s.vp.SetWidth(cw)
	s.vp.SetHeight(max(3, height-1))
	if cw != s.renderedWidth || st != s.renderedFor {
		s.vp.SetContent(Render(st, s.module, cw))
		s.renderedWidth, s.renderedFor = cw, st
	}
	return components.Center(s.vp.View(), width, height)
}

// Render lays out a module as styled text wrapped to width.
func Render(st *theme.Styles, m content.Module, width int) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(m.Title) + "\n")
	b.WriteString(st.Hint.Render(layout.Wrap(m.Description, width)) + "\n")

	for _, sec := range m.Sections {
		b.WriteString("\n" + st.Subtitle.Render(sec.Title) + "\n")
		b.WriteString(st.Body.Render(layout.Wrap(sec.Content, width)) + "\n")

		for _, sub := range sec.Subsections {
			b.WriteString("\n" + st.Label.Render(sub.Title) + "\n")
			if sub.Content != "" {
				b.WriteString(st.Body.Render(layout.Wrap(sub.Content, width)) + "\n")
			}
			for _, p := range sub.KeyPoints {
				b.WriteString(st.Body.Render(layout.Wrap("• "+p, width)) + "\n")
			}
			for _, p := range sub.ClinicalPearls {
				b.WriteString(st.Correct.Render(layout.Wrap("★ "+p, width)) + "\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
