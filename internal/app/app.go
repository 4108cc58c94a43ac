// Package app hosts the root Bubble Tea model: screen routing, the frame
// around the active screen, and keys that work everywhere.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hemepath/internal/router"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/screens/home"
	"github.com/abhisek/hemepath/internal/screens/welcome"
	"github.com/abhisek/hemepath/internal/selfupdate"
	"github.com/abhisek/hemepath/internal/ui/layout"
)

const updateCheckTimeout = 5 * time.Second

// Options configures the TUI.
type Options struct {
	Deps *screen.Deps

	// Version is the running build. With a Checker it enables the
	// background update notice on the home screen.
	Version string
	Checker *selfupdate.Checker

	SkipWelcome bool
}

type updateAvailableMsg struct{ version string }

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	home   *home.HomeScreen
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome or home screen.
func newAppModel(opts Options) AppModel {
	h := home.New(opts.Deps)
	var first screen.Screen = h
	if !opts.SkipWelcome {
		first = welcome.New(opts.Deps, func() screen.Screen { return h })
	}
	return AppModel{
		opts:   opts,
		router: router.New(first),
		home:   h,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.checkForUpdate())
}

func (m AppModel) checkForUpdate() tea.Cmd {
	if m.opts.Checker == nil || m.opts.Version == "" || m.opts.Version == selfupdate.DevVersion {
		return nil
	}
	checker, version, log := m.opts.Checker, m.opts.Version, m.opts.Deps.Log()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), updateCheckTimeout)
		defer cancel()
		res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil {
			log.Debug("update check failed", "error", err)
			return nil
		}
		if !res.UpdateAvailable {
			return nil
		}
		return updateAvailableMsg{version: res.LatestVersion}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case updateAvailableMsg:
		m.home.SetUpdateNote(msg.version)
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			if prefs := m.opts.Deps.Prefs; prefs != nil {
				if _, err := prefs.ToggleTheme(context.Background()); err != nil {
					m.opts.Deps.Log().Warn("toggle theme", "error", err)
				}
			}
			return m, nil
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Pop
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	st := m.opts.Deps.Styles()
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(st, m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(st, m.router.Trail(), m.width)
	footer := layout.RenderFooter(st, m.footerHints(active), m.width)

	contentHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Deps == nil {
		return fmt.Errorf("app: missing dependencies")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
