package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hemepath/internal/diagnosis"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/ui/components"
	"github.com/abhisek/hemepath/internal/ui/theme"
)

const titleFull = `╦ ╦╔═╗╔╦╗╔═╗╔═╗╔═╗╔╦╗╦ ╦
╠═╣║╣ ║║║║╣ ╠═╝╠═╣ ║ ╠═╣
╩ ╩╚═╝╩ ╩╚═╝╩  ╩ ╩ ╩ ╩ ╩`

const titleCompact = "H · E · M · E · P · A · T · H"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	return min(60, max(20, frameWidth-6))
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(st *theme.Styles, cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(st.Palette.Primary).
		Bold(true)

	title := titleFull
	if compact {
		title = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title) + "\n" + st.Hint.Render(diagnosis.Disclaimer))
}

// renderStatusBar summarizes the loaded library and the tutor state.
func renderStatusBar(st *theme.Styles, deps *screen.Deps, cw int) string {
	lib := deps.Library
	stats := fmt.Sprintf("%s  %s  %s",
		st.Label.Render(fmt.Sprintf("%d modules", len(lib.Modules))),
		st.Label.Render(fmt.Sprintf("%d cases", len(lib.Cases))),
		st.Label.Render(fmt.Sprintf("%d questions", len(lib.Questions))),
	)
	if deps.Tutor != nil {
		stats += "  " + st.Correct.Render("tutor on")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(st.Palette.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMenu renders menu items as text lines with the hint of the
// selected item beside it.
func renderMenu(st *theme.Styles, m components.Menu, cw int) string {
	var lines []string
	for i, item := range m.Items {
		if i == m.Selected {
			line := st.Selected.Render(" ▸ " + item.Label)
			if item.Hint != "" {
				line += "  " + st.Hint.Render(item.Hint)
			}
			lines = append(lines, line)
			continue
		}
		lines = append(lines, st.Unselected.Render("   "+item.Label))
	}
	return lipgloss.NewStyle().Width(cw).Render(strings.Join(lines, "\n"))
}

// renderTutorBanner notes that explanations need an LLM provider.
func renderTutorBanner(st *theme.Styles, cw int) string {
	return st.Warning.
		Width(cw).
		Align(lipgloss.Center).
		Render("AI tutor off. Set llm.provider to enable explanations (see hemepath --help)")
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(st *theme.Styles, latestVersion string, cw int) string {
	return st.Hint.
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("New version %s available. Run hemepath update", latestVersion))
}

// renderFrame wraps content in a double-border frame, centering it
// vertically and horizontally within the given dimensions.
func renderFrame(st *theme.Styles, content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(st.Palette.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
