// Package cellularity is the marrow cellularity estimation exercise.
package cellularity

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/labcalc"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/ui/components"
	"github.com/abhisek/hemepath/internal/ui/layout"
)

const (
	fieldAge = iota
	fieldEstimate
)

// Screen grades a cellularity estimate against the age-expected range.
type Screen struct {
	deps   *screen.Deps
	inputs [2]components.TextInput
	focus  int

	result *labcalc.CellularityResult
	err    error
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.InputCapturer = (*Screen)(nil)

// New creates the exercise with the age field focused.
func New(deps *screen.Deps) *Screen {
	s := &Screen{deps: deps}
	s.inputs[fieldAge] = components.NewTextInput("years", components.IntegerKind, 3)
	s.inputs[fieldEstimate] = components.NewTextInput("%", components.IntegerKind, 3)
	s.inputs[fieldEstimate].Blur()
	return s
}

func (s *Screen) Init() tea.Cmd { return s.inputs[s.focus].Focus() }

func (s *Screen) Title() string { return "Marrow Cellularity" }

func (s *Screen) CapturingInput() bool { return true }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch field"},
		{Key: "Enter", Description: "Check"},
		{Key: "Ctrl+R", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}

// Result returns the last graded estimate, if any.
func (s *Screen) Result() (*labcalc.CellularityResult, error) { return s.result, s.err }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab", "up", "down":
			return s, s.switchField()
		case "enter":
			if s.focus == fieldAge && s.inputs[fieldEstimate].Value() == "" {
				return s, s.switchField()
			}
			s.grade()
			return s, nil
		case "ctrl+r":
			for i := range s.inputs {
				s.inputs[i].Reset()
			}
			s.result, s.err = nil, nil
			s.inputs[s.focus].Blur()
			s.focus = fieldAge
			return s, s.inputs[fieldAge].Focus()
		}
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *Screen) switchField() tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = 1 - s.focus
	return s.inputs[s.focus].Focus()
}

func (s *Screen) grade() {
	s.result, s.err = nil, nil
	age, err := s.inputs[fieldAge].NumericValue()
	if err != nil {
		s.err = errors.New("enter the patient's age")
		return
	}
	est, err := s.inputs[fieldEstimate].NumericValue()
	if err != nil {
		s.err = errors.New("enter your cellularity estimate")
		return
	}
	r, err := labcalc.Cellularity(age, est)
	if err != nil {
		s.err = err
		return
	}
	s.result = &r
	s.inputs[fieldEstimate].Submit(r.Verdict == labcalc.VerdictCorrect)
	s.deps.Log().Debug("cellularity graded", "age", age, "estimate", est, "verdict", r.Verdict)
}

func (s *Screen) View(width, height int) string {
	st := s.deps.Styles()
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(st.Hint.Render(layout.Wrap("Expected cellularity is roughly 100 minus the patient's age, ±10%.", cw)))
	b.WriteString("\n\n")
	for i, label := range []string{"Age", "Estimate"} {
		style := st.Label
		if i == s.focus {
			style = st.Selected
		}
		b.WriteString(style.Render(fmt.Sprintf("%-9s", label)) + " " + s.inputs[i].View(st) + "\n")
	}
	b.WriteString("\n")

	switch {
	case s.err != nil:
		b.WriteString(st.Warning.Render(s.err.Error()))
	case s.result != nil:
		r := s.result
		verdict := st.Correct
		if r.Verdict != labcalc.VerdictCorrect {
			verdict = st.Incorrect
		}
		body := st.Body.Render(fmt.Sprintf("Expected %d%% (range %d-%d%%)", r.Expected, r.Min, r.Max)) + "\n" +
			verdict.Render(layout.Wrap(r.Feedback, cw-4))
		b.WriteString(components.Callout(st, "Result", body, cw))
	}
	return components.Center(b.String(), width, height)
}
