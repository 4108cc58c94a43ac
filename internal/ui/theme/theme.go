package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Mode selects the light or dark palette.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// DefaultMode is used when no preference has been stored.
const DefaultMode = Dark

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == Light || m == Dark
}

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// Palette is the set of colors a mode renders with.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// Clinical palettes: deep crimson and slate, after a stained smear.
var (
	darkPalette = Palette{
		Primary:   lipgloss.Color("#E11D48"), // Crimson
		Secondary: lipgloss.Color("#8B5CF6"), // Hematoxylin violet
		Accent:    lipgloss.Color("#F472B6"), // Eosin pink
		Success:   lipgloss.Color("#22C55E"),
		Warning:   lipgloss.Color("#F59E0B"),
		Error:     lipgloss.Color("#F43F5E"),
		Text:      lipgloss.Color("#F8FAFC"),
		TextDim:   lipgloss.Color("#94A3B8"),
		Bg:        lipgloss.Color("#0F172A"),
		BgCard:    lipgloss.Color("#1E293B"),
		Border:    lipgloss.Color("#334155"),
	}
	lightPalette = Palette{
		Primary:   lipgloss.Color("#BE123C"),
		Secondary: lipgloss.Color("#6D28D9"),
		Accent:    lipgloss.Color("#DB2777"),
		Success:   lipgloss.Color("#15803D"),
		Warning:   lipgloss.Color("#B45309"),
		Error:     lipgloss.Color("#BE123C"),
		Text:      lipgloss.Color("#0F172A"),
		TextDim:   lipgloss.Color("#475569"),
		Bg:        lipgloss.Color("#F8FAFC"),
		BgCard:    lipgloss.Color("#E2E8F0"),
		Border:    lipgloss.Color("#CBD5E1"),
	}
)

// Styles is the complete, immutable style set for one mode.
type Styles struct {
	Mode    Mode
	Palette Palette

	// Typography
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
	Label    lipgloss.Style

	// Layout
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style

	// States
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Checked    lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
	Warning    lipgloss.Style

	// Components
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
}

func newStyles(m Mode, p Palette) *Styles {
	return &Styles{
		Mode:    m,
		Palette: p,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Primary).Align(lipgloss.Center),
		Subtitle: lipgloss.NewStyle().Foreground(p.TextDim).Align(lipgloss.Center),
		Body:     lipgloss.NewStyle().Foreground(p.Text),
		Hint:     lipgloss.NewStyle().Foreground(p.TextDim).Italic(true),
		Label:    lipgloss.NewStyle().Foreground(p.Secondary).Bold(true),

		Header: lipgloss.NewStyle().Background(p.BgCard).Padding(0, 2),
		Footer: lipgloss.NewStyle().Background(p.BgCard).Padding(0, 2),
		Card: lipgloss.NewStyle().
			Background(p.BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),

		Selected:   lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Unselected: lipgloss.NewStyle().Foreground(p.Text),
		Checked:    lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Correct:    lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		Incorrect:  lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Warning:    lipgloss.NewStyle().Foreground(p.Warning).Bold(true),

		ProgressFilled: lipgloss.NewStyle().Background(p.Secondary),
		ProgressEmpty:  lipgloss.NewStyle().Background(p.Border),
		ButtonActive: lipgloss.NewStyle().
			Background(p.Primary).
			Foreground(p.Bg).
			Bold(true).
			Padding(0, 2),
		ButtonInactive: lipgloss.NewStyle().
			Background(p.BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 2),
	}
}

var (
	darkStyles  = newStyles(Dark, darkPalette)
	lightStyles = newStyles(Light, lightPalette)
)

// For returns the style set for m. Unknown modes get the default.
func For(m Mode) *Styles {
	if m == Light {
		return lightStyles
	}
	return darkStyles
}
