// Package cytogenetics is the searchable reference of recurrent cytogenetic
// abnormalities.
package cytogenetics

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/hemepath/internal/content"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/screens/explain"
	"github.com/abhisek/hemepath/internal/tutor"
	"github.com/abhisek/hemepath/internal/ui/components"
	"github.com/abhisek/hemepath/internal/ui/layout"
)

// Screen filters signatures as the user types and shows the selected one.
type Screen struct {
	deps     *screen.Deps
	search   components.TextInput
	results  []content.Signature
	selected int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.InputCapturer = (*Screen)(nil)

// New creates the screen listing every signature.
func New(deps *screen.Deps) *Screen {
	s := &Screen{deps: deps, search: components.NewTextInput("t(9;22), BCR, lymphoma...", components.TextKind, 40)}
	s.refresh()
	return s
}

func (s *Screen) Init() tea.Cmd { return s.search.Focus() }

func (s *Screen) Title() string { return "Cytogenetics" }

func (s *Screen) CapturingInput() bool { return true }

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Type", Description: "Search"},
		{Key: "↑↓", Description: "Select"},
	}
	if s.deps.Tutor != nil {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Explain"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Results returns the signatures matching the current query.
func (s *Screen) Results() []content.Signature { return s.results }

// Selected returns the highlighted signature.
func (s *Screen) Selected() (content.Signature, bool) {
	if s.selected < 0 || s.selected >= len(s.results) {
		return content.Signature{}, false
	}
	return s.results[s.selected], true
}

func (s *Screen) refresh() {
	s.results = s.deps.Library.SearchSignatures(s.search.Value())
	s.selected = min(s.selected, max(0, len(s.results)-1))
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			sig, ok := s.Selected()
			if !ok {
				return s, nil
			}
			return s, explain.Push(s.deps, tutor.FromSignature(sig))
		}
	}
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.refresh()
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	st := s.deps.Styles()
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(st.Label.Render("Search ") + s.search.View(st))
	b.WriteString("\n\n")

	if len(s.results) == 0 {
		b.WriteString(st.Hint.Render("No matching abnormalities."))
		return components.Center(b.String(), width, height)
	}

	for i, sig := range s.results {
		line := fmt.Sprintf("%-22s %s", sig.Translocation, sig.Diagnosis)
		line = ansi.Truncate(line, cw-2, "…")
		if i == s.selected {
			b.WriteString(st.Selected.Render("▸ " + line))
		} else {
			b.WriteString(st.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}

	sig, _ := s.Selected()
	detail := []string{
		st.Label.Render(sig.Translocation) + "  " + st.Hint.Render(sig.Category),
		st.Body.Render("Fusion: " + sig.Fusion),
		st.Body.Render(layout.Wrap("Diagnosis: "+sig.Diagnosis, cw-4)),
		st.Body.Render(layout.Wrap("Prognosis: "+sig.Prognosis, cw-4)),
	}
	if sig.Notes != "" {
		detail = append(detail, st.Hint.Render(layout.Wrap(sig.Notes, cw-4)))
	}
	b.WriteString("\n")
	b.WriteString(components.Card(st, strings.Join(detail, "\n"), cw))
	return components.Center(b.String(), width, height)
}
