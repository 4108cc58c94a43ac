package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hemepath/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗███████╗███╗   ███╗███████╗██████╗  █████╗ ████████╗██╗  ██╗
 ██║  ██║██╔════╝████╗ ████║██╔════╝██╔══██╗██╔══██╗╚══██╔══╝██║  ██║
 ███████║█████╗  ██╔████╔██║█████╗  ██████╔╝███████║   ██║   ███████║
 ██╔══██║██╔══╝  ██║╚██╔╝██║██╔══╝  ██╔═══╝ ██╔══██║   ██║   ██╔══██║
 ██║  ██║███████╗██║ ╚═╝ ██║███████╗██║     ██║  ██║   ██║   ██║  ██║
 ╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝╚══════╝╚═╝     ╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝`

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 69

const bannerCompact = "H E M E P A T H"

// RenderBanner returns the HEMEPATH banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(st *theme.Styles, width int) string {
	style := lipgloss.NewStyle().
		Foreground(st.Palette.Primary).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
