// Package clonality is the plasma cell κ:λ ratio calculator screen.
package clonality

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/labcalc"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/ui/components"
	"github.com/abhisek/hemepath/internal/ui/layout"
)

const (
	fieldKappa = iota
	fieldLambda
)

// Screen takes κ and λ values and interprets their ratio as the user types.
type Screen struct {
	deps   *screen.Deps
	inputs [2]components.TextInput
	focus  int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.InputCapturer = (*Screen)(nil)

// New creates the calculator with the κ field focused.
func New(deps *screen.Deps) *Screen {
	s := &Screen{deps: deps}
	for i, ph := range []string{"κ count or %", "λ count or %"} {
		in := components.NewTextInput(ph, components.DecimalKind, 10)
		if i != fieldKappa {
			in.Blur()
		}
		s.inputs[i] = in
	}
	return s
}

func (s *Screen) Init() tea.Cmd { return s.inputs[s.focus].Focus() }

func (s *Screen) Title() string { return "Plasma Cell Clonality" }

func (s *Screen) CapturingInput() bool { return true }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch field"},
		{Key: "Ctrl+R", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}

// SetValues fills both fields.
func (s *Screen) SetValues(kappa, lambda string) {
	s.inputs[fieldKappa].SetValue(kappa)
	s.inputs[fieldLambda].SetValue(lambda)
}

// Result interprets the current inputs. ok is false until both fields hold
// a usable pair.
func (s *Screen) Result() (labcalc.Clonality, bool) {
	k, err := s.inputs[fieldKappa].FloatValue()
	if err != nil {
		return labcalc.Clonality{}, false
	}
	l, err := s.inputs[fieldLambda].FloatValue()
	if err != nil {
		return labcalc.Clonality{}, false
	}
	return labcalc.KappaLambda(k, l)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab", "up", "down":
			s.inputs[s.focus].Blur()
			s.focus = 1 - s.focus
			return s, s.inputs[s.focus].Focus()
		case "ctrl+r":
			for i := range s.inputs {
				s.inputs[i].Reset()
			}
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	st := s.deps.Styles()
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(st.Hint.Render(layout.Wrap(
		fmt.Sprintf("A κ:λ ratio between %.1f and %.1f is polyclonal.", labcalc.KappaLambdaLow, labcalc.KappaLambdaHigh), cw)))
	b.WriteString("\n\n")
	for i, label := range []string{"Kappa (κ)", "Lambda (λ)"} {
		style := st.Label
		if i == s.focus {
			style = st.Selected
		}
		b.WriteString(style.Render(fmt.Sprintf("%-11s", label)) + " " + s.inputs[i].View(st) + "\n")
	}
	b.WriteString("\n")

	if r, ok := s.Result(); ok {
		kind := st.Correct
		if r.Monoclonal() {
			kind = st.Warning
		}
		body := st.Body.Render(fmt.Sprintf("κ:λ ratio %.2f", r.Ratio)) + "\n" +
			kind.Render(string(r.Kind)) + "\n" +
			st.Body.Render(layout.Wrap(r.Interpretation, cw-4))
		b.WriteString(components.Callout(st, "Interpretation", body, cw))
	} else if s.inputs[fieldKappa].Value() != "" && s.inputs[fieldLambda].Value() != "" {
		b.WriteString(st.Warning.Render("Enter a non-zero λ value."))
	}
	return components.Center(b.String(), width, height)
}
