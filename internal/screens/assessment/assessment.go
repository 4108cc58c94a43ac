// Package assessment runs the multiple-choice knowledge check.
package assessment

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/router"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/screens/summary"
	"github.com/abhisek/hemepath/internal/session"
	"github.com/abhisek/hemepath/internal/ui/components"
	"github.com/abhisek/hemepath/internal/ui/layout"
)

// Screen presents one question at a time. Answers can be changed until
// the assessment is finished.
type Screen struct {
	deps       *screen.Deps
	a          *session.Assessment
	choice     components.MultiChoice
	confirming bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New starts an assessment over the library's question bank.
func New(deps *screen.Deps) *Screen {
	s := &Screen{deps: deps, a: session.NewAssessment(deps.Library.Questions)}
	s.resetChoice()
	return s
}

func (s *Screen) resetChoice() {
	q := s.a.Current()
	s.choice = components.NewMultiChoice("", q.Options, -1)
	if sel := s.a.Selected(); sel >= 0 {
		s.choice.Selected = sel
	}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Assessment" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Select"},
		{Key: "←→", Description: "Question"},
		{Key: "f", Description: "Finish"},
		{Key: "Esc", Description: "Quit"},
	}
}

// Assessment exposes the underlying session.
func (s *Screen) Assessment() *session.Assessment { return s.a }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.a.Len() == 0 {
		return s, nil
	}

	key := kmsg.String()
	if key != "f" {
		s.confirming = false
	}
	switch key {
	case "right", "n":
		s.a.Next()
		s.resetChoice()
		return s, nil
	case "left", "p":
		s.a.Previous()
		s.resetChoice()
		return s, nil
	case "f":
		if unanswered := s.a.Len() - s.a.Answered(); unanswered > 0 && !s.confirming {
			s.confirming = true
			return s, nil
		}
		sum := session.AssessmentSummary(s.a)
		s.deps.Log().Info("assessment finished", "session", s.a.ID(), "score", sum.Score, "total", sum.Total)
		return s, router.Replace(summary.New(s.deps, sum))
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Submitted {
		_ = s.a.Select(s.choice.ChosenIndex)
		if !s.a.IsLast() {
			s.a.Next()
		}
		s.resetChoice()
	}
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	st := s.deps.Styles()
	cw := components.ContentWidth(width)
	if s.a.Len() == 0 {
		return components.Center(st.Hint.Render("No questions loaded."), width, height)
	}

	var b strings.Builder
	progress := components.NewProgressBar(s.a.Answered(), s.a.Len(), cw-20)
	b.WriteString(st.Hint.Render(fmt.Sprintf("Question %d of %d  ", s.a.Index()+1, s.a.Len())))
	b.WriteString(progress.View(st))
	b.WriteString("\n")
	b.WriteString(st.Hint.Render(s.a.Current().Category))
	b.WriteString("\n\n")

	b.WriteString(st.Body.Bold(true).Render(layout.Wrap(s.a.Current().Prompt, cw)))
	b.WriteString("\n\n")
	b.WriteString(s.choice.View(st))

	if sel := s.a.Selected(); sel >= 0 {
		b.WriteString("\n" + st.Correct.Render(fmt.Sprintf("Answer recorded: %c", 'A'+sel)))
	}
	if s.confirming {
		b.WriteString("\n" + st.Warning.Render(fmt.Sprintf(
			"%d unanswered. Press f again to finish anyway.", s.a.Len()-s.a.Answered())))
	}
	return components.Center(b.String(), width, height)
}
