// Package flow is the flow cytometry classifier drill.
package flow

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/screens/summary"
	"github.com/abhisek/hemepath/internal/session"
	"github.com/abhisek/hemepath/internal/ui/components"
	"github.com/abhisek/hemepath/internal/ui/layout"
)

// Screen shows an immunophenotype and asks for its diagnosis.
type Screen struct {
	deps   *screen.Deps
	quiz   *session.FlowQuiz
	choice components.MultiChoice
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New starts a drill over the library's flow cases.
func New(deps *screen.Deps) *Screen {
	s := &Screen{deps: deps, quiz: session.NewFlowQuiz(deps.Library.FlowCases)}
	s.resetChoice()
	return s
}

func (s *Screen) resetChoice() {
	s.choice = components.NewMultiChoice("", s.quiz.Choices(), -1)
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Flow Cytometry Classifier" }

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.quiz.Done() {
		return []layout.KeyHint{
			{Key: "r", Description: "Restart"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Back"},
	}
}

// Quiz exposes the drill state.
func (s *Screen) Quiz() *session.FlowQuiz { return s.quiz }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	if s.quiz.Done() {
		if kmsg.String() == "r" {
			s.quiz.Restart()
			s.resetChoice()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if chosen, ok := s.choice.Chosen(); ok {
		correct := s.quiz.Answer(chosen)
		s.deps.Log().Debug("flow answer", "correct", correct, "index", s.quiz.Index())
		s.resetChoice()
	}
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	st := s.deps.Styles()
	cw := components.ContentWidth(width)

	var b strings.Builder
	if fb := s.quiz.Last(); fb != nil {
		b.WriteString(renderFeedback(s, fb, cw))
		b.WriteString("\n\n")
	}

	if s.quiz.Done() {
		sum := session.TallySummary("Flow drill", s.quiz.Tally(), s.quiz.Elapsed())
		b.WriteString(summary.Render(st, sum, cw))
		return components.Center(b.String(), width, height)
	}

	c := s.quiz.Current()
	b.WriteString(st.Hint.Render(fmt.Sprintf("Case %d of %d  •  Score %d/%d",
		s.quiz.Index()+1, s.quiz.Len(), s.quiz.Tally().Score, s.quiz.Tally().Answered)))
	b.WriteString("\n\n")

	var markers []string
	for _, m := range c.Markers {
		markers = append(markers, fmt.Sprintf("%-8s %s", m.Marker, m.Result))
	}
	b.WriteString(components.Card(st, st.Label.Render("Immunophenotype")+"\n"+st.Body.Render(strings.Join(markers, "\n")), cw))
	b.WriteString("\n\n")
	b.WriteString(s.choice.View(st))
	return components.Center(b.String(), width, height)
}

func renderFeedback(s *Screen, fb *session.Feedback, cw int) string {
	st := s.deps.Styles()
	if fb.Correct {
		return st.Correct.Render("✓ Correct: "+fb.Expected) + "\n" + st.Hint.Render(layout.Wrap(fb.Explanation, cw))
	}
	return st.Incorrect.Render("✗ The answer was "+fb.Expected) + "\n" + st.Hint.Render(layout.Wrap(fb.Explanation, cw))
}
