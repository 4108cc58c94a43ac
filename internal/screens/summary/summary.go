package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hemepath/internal/router"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/session"
	"github.com/abhisek/hemepath/internal/ui/components"
	"github.com/abhisek/hemepath/internal/ui/layout"
	"github.com/abhisek/hemepath/internal/ui/theme"
)

// SummaryScreen displays the result of a finished quiz.
type SummaryScreen struct {
	deps    *screen.Deps
	summary session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(deps *screen.Deps, summary session.Summary) *SummaryScreen {
	return &SummaryScreen{deps: deps, summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.summary.Title + " Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, router.PopToRoot
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	st := s.deps.Styles()
	return components.Center(Render(st, s.summary, components.ContentWidth(width)), width, height)
}

// Render draws a summary card. Drill screens embed it once they finish.
func Render(st *theme.Styles, sum session.Summary, cw int) string {
	var b strings.Builder

	b.WriteString(st.Title.Width(cw).Align(lipgloss.Center).Render(sum.Title + " complete"))
	b.WriteString("\n\n")

	grade := st.Correct
	if sum.Percentage < 70 {
		grade = st.Warning
	}
	stats := fmt.Sprintf("Score: %d/%d        %d%%", sum.Score, sum.Total, sum.Percentage)
	b.WriteString(st.Body.Width(cw).Align(lipgloss.Center).Render(stats))
	b.WriteString("\n")
	b.WriteString(grade.Width(cw).Align(lipgloss.Center).Render(sum.Grade()))
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(st.Hint.Width(cw).Align(lipgloss.Center).Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))

	if len(sum.Missed) > 0 {
		divider := lipgloss.NewStyle().Foreground(st.Palette.Border).Render(strings.Repeat("─", cw))
		b.WriteString("\n\n" + st.Label.Render("Review") + "\n" + divider + "\n")
		for _, m := range sum.Missed {
			b.WriteString(st.Incorrect.Render(layout.Wrap("✗ "+m, cw)) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
