// Package layout draws the frame shared by every screen: a header with the
// navigation trail, the screen body and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/hemepath/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Disclaimer is shown on every frame.
const Disclaimer = "Educational use only"

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

func RenderMinSizeMessage(st *theme.Styles, width, height int) string {
	msg := st.Body.Render(fmt.Sprintf("Terminal too small: %d x %d", width, height)) + "\n\n" +
		st.Hint.Render(fmt.Sprintf("Resize to at least %d x %d", MinWidth, MinHeight))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

func bar(st *theme.Styles, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(st.Palette.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.Palette.Border).
		Padding(0, 1)
}

// spread places left and right at the edges of width, with center in the
// middle. center is truncated first when space runs out.
func spread(left, center, right string, width int) string {
	lw, rw := lipgloss.Width(left), lipgloss.Width(right)
	room := width - lw - rw - 2
	if room < 1 {
		return ansi.Truncate(left+" "+right, width, "…")
	}
	center = ansi.Truncate(center, room, "…")
	pad := room - lipgloss.Width(center)
	return left + " " + strings.Repeat(" ", pad/2) + center + strings.Repeat(" ", pad-pad/2) + " " + right
}

// RenderHeader shows the app name, the trail of open screens and the
// active theme.
func RenderHeader(st *theme.Styles, trail []string, width int) string {
	p := st.Palette
	name := lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Render("hemepath")

	var crumbs []string
	for i, t := range trail {
		style := lipgloss.NewStyle().Foreground(p.TextDim)
		if i == len(trail)-1 {
			style = lipgloss.NewStyle().Foreground(p.Text).Bold(true)
		}
		crumbs = append(crumbs, style.Render(t))
	}
	sep := lipgloss.NewStyle().Foreground(p.Border).Render(" › ")

	icon := "☾"
	if st.Mode == theme.Light {
		icon = "☀"
	}
	mode := lipgloss.NewStyle().Foreground(p.TextDim).Render(icon + " " + string(st.Mode))

	return bar(st, width).Render(spread(name, strings.Join(crumbs, sep), mode, width-4))
}

// RenderFooter lists key hints on the left and the disclaimer on the right.
func RenderFooter(st *theme.Styles, hints []KeyHint, width int) string {
	p := st.Palette
	key := lipgloss.NewStyle().Foreground(p.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(p.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	note := lipgloss.NewStyle().Foreground(p.Warning).Italic(true).Render(Disclaimer)

	return bar(st, width).Render(spread(strings.Join(parts, "  "), "", note, width-4))
}

// RenderFrame stacks header, body and footer, sizing the body to fill the
// height left between them.
func RenderFrame(header, body, footer string, width, height int) string {
	bodyHeight := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	body = lipgloss.NewStyle().Width(width).Height(bodyHeight).MaxHeight(bodyHeight).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Wrap soft-wraps text at word boundaries to width.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wordwrap(text, width, "")
}
