// Package pathway is the guided leukemia work-up screen.
package pathway

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/diagnosis"
	"github.com/abhisek/hemepath/internal/pathway"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/screens/explain"
	"github.com/abhisek/hemepath/internal/tutor"
	"github.com/abhisek/hemepath/internal/ui/components"
	"github.com/abhisek/hemepath/internal/ui/layout"
)

// Screen walks a decision graph one answer at a time.
type Screen struct {
	deps    *screen.Deps
	nav     *pathway.Navigator
	menu    components.Menu
	answers []string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New starts a walk of the built-in leukemia pathway.
func New(deps *screen.Deps) *Screen {
	return NewWithGraph(deps, pathway.Leukemia())
}

// NewWithGraph starts a walk of g.
func NewWithGraph(deps *screen.Deps, g *pathway.Graph) *Screen {
	s := &Screen{deps: deps, nav: pathway.NewNavigator(g)}
	s.refreshMenu()
	return s
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Leukemia Pathway" }

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Choose"},
		{Key: "r", Description: "Restart"},
	}
	if _, ok := s.nav.Diagnosis(); ok && s.deps.Tutor != nil {
		hints = append(hints, layout.KeyHint{Key: "e", Description: "Explain"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Navigator exposes the underlying walk.
func (s *Screen) Navigator() *pathway.Navigator { return s.nav }

func (s *Screen) refreshMenu() {
	var items []components.MenuItem
	if !s.nav.Done() {
		for _, opt := range s.nav.Current().Options {
			items = append(items, components.MenuItem{Label: opt.Text})
		}
	}
	s.menu = components.NewMenu(items)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "r":
		s.nav.Reset()
		s.answers = nil
		s.refreshMenu()
		return s, nil
	case "e":
		d, ok := s.nav.Diagnosis()
		if !ok {
			return s, nil
		}
		return s, explain.Push(s.deps, tutor.FromPathway(d, s.answers))
	case "enter":
		if s.nav.Done() || len(s.menu.Items) == 0 {
			return s, nil
		}
		i := s.menu.Selected
		node := s.nav.Current()
		opt := node.Options[i]
		if err := s.nav.ChooseIndex(i); err != nil {
			return s, nil
		}
		s.answers = append(s.answers, node.Question+" "+opt.Text)
		s.deps.Log().Debug("pathway step", "answer", opt.Text, "path", strings.Join(s.nav.Path(), ">"))
		s.refreshMenu()
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	st := s.deps.Styles()
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(st.Hint.Render(layout.Wrap("Path: "+strings.Join(s.nav.Path(), " → "), cw)))
	b.WriteString("\n\n")

	if !s.nav.Done() {
		b.WriteString(st.Subtitle.Render(layout.Wrap(s.nav.Current().Question, cw)))
		b.WriteString("\n\n")
		b.WriteString(s.menu.View(st))
	}

	if d, ok := s.nav.Diagnosis(); ok {
		body := d
		if info := s.nav.Info(); info != "" {
			body += "\n" + layout.Wrap(info, cw-4)
		}
		body += "\n" + st.Hint.Render(diagnosis.Disclaimer)
		title := "Working diagnosis"
		if s.nav.Done() {
			title = "Diagnosis"
		}
		b.WriteString("\n")
		b.WriteString(components.Callout(st, title, body, cw))
	}
	return components.Center(b.String(), width, height)
}
