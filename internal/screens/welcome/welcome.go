// Package welcome is the splash screen: the myeloid series matures across
// the screen, then the banner appears. Any key moves on to home.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hemepath/internal/diagnosis"
	"github.com/abhisek/hemepath/internal/router"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/ui/theme"
)

const tickInterval = 150 * time.Millisecond

type stage struct{ glyph, name string }

// series is granulocyte maturation, earliest first.
var series = []stage{
	{"◉", "myeloblast"},
	{"◎", "promyelocyte"},
	{"◍", "myelocyte"},
	{"◌", "metamyelocyte"},
	{"◠", "band"},
	{"●", "neutrophil"},
}

// bannerFrame is the first frame showing the banner. Ticking stops there.
var bannerFrame = len(series) + 2

type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

type WelcomeScreen struct {
	deps  *screen.Deps
	next  func() screen.Screen
	frame int
	done  bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New returns a splash screen that replaces itself with next() on a key press.
func New(deps *screen.Deps, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{deps: deps, next: next}
}

func (w *WelcomeScreen) Title() string { return "Welcome" }

func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.frame >= bannerFrame {
			return w, nil
		}
		w.frame++
		return w, tick()
	case tea.KeyPressMsg:
		if w.done {
			return w, nil
		}
		w.done = true
		return w, router.Replace(w.next())
	}
	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	st := w.deps.Styles()
	parts := []string{w.smear(st)}
	if w.frame >= bannerFrame {
		parts = append(parts,
			"",
			RenderBanner(st, width),
			"",
			st.Body.Bold(true).Render("Hematopathology, one finding at a time."),
			st.Hint.Render(diagnosis.Disclaimer),
			"",
			st.Hint.Italic(true).Render("press any key to continue"),
		)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(parts, "\n"))
}

// smear draws the stages revealed so far, glyphs above their names.
func (w *WelcomeScreen) smear(st *theme.Styles) string {
	shown := min(w.frame, len(series))
	cols := make([]string, 0, len(series))
	for i, s := range series {
		glyph, name := " ", ""
		if i < shown {
			glyph, name = s.glyph, s.name
		}
		color := st.Palette.Accent
		if i == shown-1 && shown < len(series) {
			color = st.Palette.Primary
		}
		col := lipgloss.NewStyle().Foreground(color).Bold(true).Render(glyph) + "\n" + st.Hint.Render(name)
		cols = append(cols, lipgloss.NewStyle().Width(15).Align(lipgloss.Center).Render(col))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
