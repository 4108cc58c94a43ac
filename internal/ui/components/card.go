package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hemepath/internal/ui/theme"
)

// ContentWidth returns the uniform inner width for screen cards.
func ContentWidth(frameWidth int) int {
	return min(76, max(20, frameWidth-6))
}

// Card wraps content in a rounded-border card at the given width.
func Card(st *theme.Styles, content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.Palette.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}

// Callout renders a highlighted card, e.g. for a conclusion.
func Callout(st *theme.Styles, title, body string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(st.Palette.Primary).
		Width(cw - 2).
		Padding(0, 1).
		Render(st.Label.Render(title) + "\n" + st.Body.Render(body))
}

// Center places content in the middle of a width x height box.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
