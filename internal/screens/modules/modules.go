// Package modules lists the learning modules and opens them in a
// scrollable reader.
package modules

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/router"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/ui/components"
	"github.com/abhisek/hemepath/internal/ui/layout"
)

// ListScreen shows every module with its description.
type ListScreen struct {
	deps *screen.Deps
	menu components.Menu
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// New creates the module list.
func New(deps *screen.Deps) *ListScreen {
	items := make([]components.MenuItem, len(deps.Library.Modules))
	for i, m := range deps.Library.Modules {
		items[i] = components.MenuItem{
			Label: m.Title,
			Hint:  fmt.Sprintf("%d sections", len(m.Sections)),
			Action: func() tea.Cmd {
				return router.Push(NewReader(deps, m))
			},
		}
	}
	return &ListScreen{deps: deps, menu: components.NewMenu(items)}
}

func (s *ListScreen) Init() tea.Cmd { return nil }

func (s *ListScreen) Title() string { return "Learning Modules" }

func (s *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Read"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ListScreen) View(width, height int) string {
	st := s.deps.Styles()
	cw := components.ContentWidth(width)

	out := s.menu.View(st)
	if n := len(s.menu.Items); n > 0 {
		m := s.deps.Library.Modules[s.menu.Selected]
		out += "\n" + components.Card(st, st.Hint.Render(layout.Wrap(m.Description, cw-4)), cw)
	}
	return components.Center(out, width, height)
}
