// Package integrated is the integrated diagnosis screen: the learner ticks
// findings in four categories and sees the rule matcher's conclusion live.
package integrated

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hemepath/internal/diagnosis"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/screens/explain"
	"github.com/abhisek/hemepath/internal/tutor"
	"github.com/abhisek/hemepath/internal/ui/components"
	"github.com/abhisek/hemepath/internal/ui/layout"
)

// Screen is the integrated diagnosis builder.
type Screen struct {
	deps     *screen.Deps
	findings *diagnosis.FindingSet
	list     components.Checklist
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the screen with no findings selected.
func New(deps *screen.Deps) *Screen {
	fs := &diagnosis.FindingSet{}

	cats := diagnosis.AllCategories()
	groups := make([]components.ChecklistGroup, len(cats))
	for g, cat := range cats {
		groups[g] = components.ChecklistGroup{Title: cat.Title(), Items: diagnosis.Options(cat)}
	}
	tag := func(g, i int) (diagnosis.Category, string) {
		return cats[g], groups[g].Items[i]
	}

	s := &Screen{deps: deps, findings: fs}
	s.list = components.NewChecklist(groups,
		func(g, i int) bool {
			cat, t := tag(g, i)
			return fs.Has(cat, t)
		},
		func(g, i int) {
			cat, t := tag(g, i)
			fs.Toggle(cat, t)
			s.logConclusion()
		},
	)
	return s
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Integrated Diagnosis" }

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Tab", Description: "Next group"},
		{Key: "c", Description: "Clear"},
	}
	if s.deps.Tutor != nil {
		hints = append(hints, layout.KeyHint{Key: "e", Description: "Explain"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Findings returns a copy of the current selection.
func (s *Screen) Findings() diagnosis.FindingSet { return s.findings.Clone() }

// Conclusion returns the matcher's verdict for the current selection.
func (s *Screen) Conclusion() diagnosis.Conclusion { return diagnosis.Evaluate(*s.findings) }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "c":
			s.findings.Clear()
			return s, nil
		case "e":
			c := s.Conclusion()
			if c.IsDefault() {
				return s, nil
			}
			return s, explain.Push(s.deps, tutor.FromConclusion(c, s.findings.Clone()))
		}
	}
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *Screen) logConclusion() {
	c := s.Conclusion()
	s.deps.Log().Debug("findings changed", "count", s.findings.Len(), "rule", c.Rule, "confidence", c.Confidence)
}

func (s *Screen) View(width, height int) string {
	st := s.deps.Styles()
	cw := components.ContentWidth(width)

	result := s.renderConclusion(cw)
	listHeight := max(6, height-lipgloss.Height(result)-2)
	list := s.list.View(st, listHeight)

	return lipgloss.JoinVertical(lipgloss.Left, result, "", list)
}

func (s *Screen) renderConclusion(cw int) string {
	st := s.deps.Styles()
	c := s.Conclusion()

	conf := st.Hint
	switch c.Confidence {
	case diagnosis.ConfidenceHigh:
		conf = st.Correct
	case diagnosis.ConfidenceModerate:
		conf = st.Warning
	}

	body := st.Body.Render(layout.Wrap(c.Diagnosis, cw-4)) + "\n" +
		conf.Render("Confidence: "+string(c.Confidence))
	if c.Comment != "" {
		body += "\n" + st.Hint.Render(layout.Wrap(c.Comment, cw-4))
	}

	if all := diagnosis.Matches(*s.findings); len(all) > 1 {
		var names []string
		for _, m := range all[1:] {
			names = append(names, m.Diagnosis)
		}
		body += "\n" + st.Hint.Render(layout.Wrap(
			fmt.Sprintf("Also satisfied (lower precedence): %s", strings.Join(names, "; ")), cw-4))
	}
	body += "\n" + st.Hint.Render(diagnosis.Disclaimer)

	title := fmt.Sprintf("Conclusion (%d findings)", s.findings.Len())
	return components.Callout(st, title, body, cw)
}
