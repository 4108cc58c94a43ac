// Package lymphnode is the lymph node architecture explorer.
package lymphnode

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hemepath/internal/content"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/ui/components"
	"github.com/abhisek/hemepath/internal/ui/layout"
)

// Screen lists the compartments of a lymph node and describes the
// highlighted one.
type Screen struct {
	deps *screen.Deps
	menu components.Menu
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the explorer with the first zone highlighted.
func New(deps *screen.Deps) *Screen {
	items := make([]components.MenuItem, len(deps.Library.Zones))
	for i, z := range deps.Library.Zones {
		items[i] = components.MenuItem{Label: z.Name}
	}
	return &Screen{deps: deps, menu: components.NewMenu(items)}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Lymph Node Architecture" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Zone"},
		{Key: "Esc", Description: "Back"},
	}
}

// Zone returns the highlighted zone.
func (s *Screen) Zone() content.Zone {
	return s.deps.Library.Zones[s.menu.Selected]
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	st := s.deps.Styles()
	cw := components.ContentWidth(width)
	if len(s.menu.Items) == 0 {
		return components.Center(st.Hint.Render("No zones loaded."), width, height)
	}

	z := s.Zone()
	var d strings.Builder
	d.WriteString(st.Label.Render(z.Name) + "\n")
	d.WriteString(st.Body.Render(layout.Wrap(z.Description, cw-4)) + "\n\n")
	d.WriteString(st.Subtitle.Render("Cell types") + "\n")
	for _, c := range z.CellTypes {
		d.WriteString(st.Body.Render("• "+c) + "\n")
	}
	d.WriteString("\n" + st.Subtitle.Render("Function") + "\n")
	d.WriteString(st.Body.Render(layout.Wrap(z.Function, cw-4)) + "\n\n")
	d.WriteString(st.Subtitle.Render("Associated pathology") + "\n")
	for _, p := range z.Pathology {
		d.WriteString(st.Warning.Render(layout.Wrap("• "+p, cw-4)) + "\n")
	}

	out := lipgloss.JoinVertical(lipgloss.Left,
		s.menu.View(st),
		components.Card(st, strings.TrimRight(d.String(), "\n"), cw),
	)
	return components.Center(out, width, height)
}
