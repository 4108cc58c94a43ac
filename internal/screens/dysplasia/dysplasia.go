// Package dysplasia is the dysplasia detector drill.
package dysplasia

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

// Screen asks whether each described cell is dysplastic.
type Screen struct {
	deps *screen.Deps
	quiz *session.DysplasiaQuiz
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New starts a drill over the library's dysplasia cases.
func New(deps *screen.Deps) *Screen {
	return &Screen{deps: deps, quiz: session.NewDysplasiaQuiz(deps.Library.DysplasiaCases)}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Dysplasia Detector" }

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.quiz.Done() {
		return []layout.KeyHint{
			{Key: "r", Description: "Restart"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "d", Description: "Dysplastic"},
		{Key: "n", Description: "Normal"},
		{Key: "Esc", Description: "Back"},
	}
}

// Quiz exposes the drill state.
func (s *Screen) Quiz() *session.DysplasiaQuiz { return s.quiz }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "d", "y":
		s.quiz.Answer(true)
	case "n":
		s.quiz.Answer(false)
	case "r":
		if s.quiz.Done() {
			s.quiz.Restart()
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	st := s.deps.Styles()
	cw := components.ContentWidth(width)

	var b strings.Builder
	if fb := s.quiz.Last(); fb != nil {
		mark, style := "✓ Correct", st.Correct
		if !fb.Correct {
			mark, style = "✗ Incorrect", st.Incorrect
		}
		b.WriteString(style.Render(fmt.Sprintf("%s: %s", mark, fb.Expected)))
		b.WriteString("\n" + st.Hint.Render(layout.Wrap(fb.Explanation, cw)) + "\n\n")
	}

	if s.quiz.Done() {
		sum := session.TallySummary("Dysplasia drill", s.quiz.Tally(), s.quiz.Elapsed())
		b.WriteString(summary.Render(st, sum, cw))
		return components.Center(b.String(), width, height)
	}

	c := s.quiz.Current()
	b.WriteString(st.Hint.Render(fmt.Sprintf("Cell %d of %d  •  Score %d/%d",
		s.quiz.Index()+1, s.quiz.Len(), s.quiz.Tally().Score, s.quiz.Tally().Answered)))
	b.WriteString("\n\n")
	body := st.Label.Render(c.Lineage) + "\n" + st.Body.Render(layout.Wrap(c.Description, cw-4))
	b.WriteString(components.Card(st, body, cw))
	b.WriteString("\n\n")
	b.WriteString(st.Subtitle.Render("Is this dysplastic?  [d] Dysplastic  [n] Normal"))
	return components.Center(b.String(), width, height)
}
