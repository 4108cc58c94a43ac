// Package cases presents integrated clinical cases one at a time.
package cases

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/content"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/screens/explain"
	"github.com/abhisek/hemepath/internal/session"
	"github.com/abhisek/hemepath/internal/tutor"
	"github.com/abhisek/hemepath/internal/ui/components"
	"github.com/abhisek/hemepath/internal/ui/layout"
)

// Screen shows a case workup and its diagnosis question.
type Screen struct {
	deps   *screen.Deps
	deck   *session.CaseDeck
	choice components.MultiChoice
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New opens the deck at the first case.
func New(deps *screen.Deps) *Screen {
	s := &Screen{deps: deps, deck: session.NewCaseDeck(deps.Library.Cases)}
	s.resetChoice()
	return s
}

// resetChoice builds the question for the current case, restoring the
// recorded answer when the case was already answered.
func (s *Screen) resetChoice() {
	c := s.deck.Current()
	s.choice = components.NewMultiChoice(c.Prompt, c.Options, c.CorrectIndex())
	if i := s.deck.Selected(); i >= 0 {
		s.choice.Selected, s.choice.ChosenIndex, s.choice.Submitted = i, i, true
	}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Clinical Cases" }

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Case"},
	}
	if s.deck.Revealed() {
		if s.deps.Tutor != nil {
			hints = append(hints, layout.KeyHint{Key: "e", Description: "Explain"})
		}
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Answer"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Deck exposes the case deck.
func (s *Screen) Deck() *session.CaseDeck { return s.deck }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.deck.Len() == 0 {
		return s, nil
	}
	switch kmsg.String() {
	case "right", "l", "n":
		s.deck.Next()
		s.resetChoice()
		return s, nil
	case "left", "h", "p":
		s.deck.Previous()
		s.resetChoice()
		return s, nil
	case "e":
		if s.deck.Revealed() {
			return s, explain.Push(s.deps, tutor.FromCase(s.deck.Current()))
		}
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Submitted && !s.deck.Revealed() {
		correct, err := s.deck.Answer(s.choice.ChosenIndex)
		if err == nil {
			s.deps.Log().Debug("case answered", "case", s.deck.Current().ID, "correct", correct)
		}
	}
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	st := s.deps.Styles()
	cw := components.ContentWidth(width)
	if s.deck.Len() == 0 {
		return components.Center(st.Hint.Render("No cases loaded."), width, height)
	}

	c := s.deck.Current()
	t := s.deck.Tally()

	var b strings.Builder
	b.WriteString(st.Hint.Render(fmt.Sprintf("Case %d of %d  •  Score %d/%d", s.deck.Index()+1, s.deck.Len(), t.Score, t.Answered)))
	b.WriteString("\n\n")
	b.WriteString(components.Card(st, renderWorkup(s, c, cw-4), cw))
	b.WriteString("\n\n")
	b.WriteString(s.choice.View(st))

	if s.deck.Revealed() {
		verdict := st.Correct.Render("✓ Correct")
		if s.deck.Selected() != c.CorrectIndex() {
			verdict = st.Incorrect.Render("✗ Incorrect. Answer: " + c.Correct)
		}
		b.WriteString("\n" + verdict + "\n")
		b.WriteString(st.Hint.Render(layout.Wrap(c.Rationale, cw)))
	}
	return components.Center(b.String(), width, height)
}

func renderWorkup(s *Screen, c content.Case, w int) string {
	st := s.deps.Styles()
	var lines []string
	if c.CBC != nil {
		lines = append(lines, st.Label.Render("CBC")+"  "+st.Body.Render(formatCBC(c.CBC)))
	}
	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		lines = append(lines, st.Label.Render(title))
		for _, it := range items {
			lines = append(lines, st.Body.Render(layout.Wrap("• "+it, w)))
		}
	}
	section("Morphology", c.Morphology)
	var flow []string
	for _, m := range c.Flow {
		flow = append(flow, m.Marker+" "+m.Result)
	}
	section("Flow cytometry", flow)
	section("Cytogenetics", c.Cytogenetics)
	section("Molecular", c.Molecular)
	return strings.Join(lines, "\n")
}

func formatCBC(cbc *content.CBC) string {
	val := func(v *float64) string {
		if v == nil {
			return "n/a"
		}
		return fmt.Sprintf("%g", *v)
	}
	return fmt.Sprintf("WBC %s  Hgb %s  Plt %s", val(cbc.WBC), val(cbc.Hgb), val(cbc.Plt))
}
