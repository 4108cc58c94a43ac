package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hemepath/internal/ui/theme"
)

// MultiChoice asks one lettered single-answer question. Enter locks in the
// highlighted option. With CorrectIndex < 0 the owner grades the answer and
// only the chosen option is highlighted afterwards.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int

	Selected    int
	Submitted   bool
	ChosenIndex int
}

func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{Question: question, Options: options, CorrectIndex: correctIndex, ChosenIndex: -1}
}

func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || m.Submitted || len(m.Options) == 0 {
		return m, nil
	}
	switch s := k.String(); {
	case s == "up" || s == "k":
		m.Selected = max(0, m.Selected-1)
	case s == "down" || s == "j":
		m.Selected = min(len(m.Options)-1, m.Selected+1)
	case s == "enter":
		m.Submitted, m.ChosenIndex = true, m.Selected
	case len(s) == 1 && s[0] >= 'a' && int(s[0]-'a') < len(m.Options):
		m.Selected = int(s[0] - 'a')
	}
	return m, nil
}

func (m MultiChoice) style(st *theme.Styles, i int) lipgloss.Style {
	if !m.Submitted {
		if i == m.Selected {
			return st.Selected
		}
		return st.Unselected
	}
	switch {
	case i == m.CorrectIndex:
		return st.Correct
	case i == m.ChosenIndex && m.CorrectIndex < 0:
		return st.Selected
	case i == m.ChosenIndex:
		return st.Incorrect
	}
	return st.Hint
}

func (m MultiChoice) View(st *theme.Styles) string {
	var b strings.Builder
	if m.Question != "" {
		b.WriteString(st.Body.Bold(true).Render(m.Question) + "\n\n")
	}
	for i, opt := range m.Options {
		cursor := "  "
		if i == m.Selected && !m.Submitted {
			cursor = "▸ "
		}
		b.WriteString(m.style(st, i).Render(fmt.Sprintf("%s%c)  %s", cursor, 'A'+i, opt)) + "\n")
	}
	return b.String()
}

// IsCorrect reports whether the submitted answer is CorrectIndex.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}

// Chosen returns the submitted option's text.
func (m MultiChoice) Chosen() (string, bool) {
	if !m.Submitted || m.ChosenIndex < 0 || m.ChosenIndex >= len(m.Options) {
		return "", false
	}
	return m.Options[m.ChosenIndex], true
}
