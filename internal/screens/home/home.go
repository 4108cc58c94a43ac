package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/router"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/screens/assessment"
	"github.com/abhisek/hemepath/internal/screens/cases"
	"github.com/abhisek/hemepath/internal/screens/cellularity"
	"github.com/abhisek/hemepath/internal/screens/clonality"
	"github.com/abhisek/hemepath/internal/screens/cytogenetics"
	"github.com/abhisek/hemepath/internal/screens/dysplasia"
	"github.com/abhisek/hemepath/internal/screens/flow"
	"github.com/abhisek/hemepath/internal/screens/integrated"
	"github.com/abhisek/hemepath/internal/screens/lymphnode"
	"github.com/abhisek/hemepath/internal/screens/modules"
	"github.com/abhisek/hemepath/internal/screens/pathway"
	settingsscreen "github.com/abhisek/hemepath/internal/screens/settings"
	"github.com/abhisek/hemepath/internal/ui/components"
	"github.com/abhisek/hemepath/internal/ui/layout"
)

// entry is one home menu destination.
type entry struct {
	label string
	hint  string
	open  func(*screen.Deps) screen.Screen
}

var entries = []entry{
	{"Integrated Diagnosis", "combine findings into a diagnosis", func(d *screen.Deps) screen.Screen { return integrated.New(d) }},
	{"Leukemia Pathway", "step through the work-up", func(d *screen.Deps) screen.Screen { return pathway.New(d) }},
	{"Plasma Clonality", "κ:λ ratio", func(d *screen.Deps) screen.Screen { return clonality.New(d) }},
	{"Marrow Cellularity", "estimate for age", func(d *screen.Deps) screen.Screen { return cellularity.New(d) }},
	{"Cytogenetics", "recurrent abnormalities", func(d *screen.Deps) screen.Screen { return cytogenetics.New(d) }},
	{"Flow Classifier", "name the immunophenotype", func(d *screen.Deps) screen.Screen { return flow.New(d) }},
	{"Dysplasia Detector", "dysplastic or normal?", func(d *screen.Deps) screen.Screen { return dysplasia.New(d) }},
	{"Lymph Node", "architecture by zone", func(d *screen.Deps) screen.Screen { return lymphnode.New(d) }},
	{"Clinical Cases", "integrated vignettes", func(d *screen.Deps) screen.Screen { return cases.New(d) }},
	{"Assessment", "multiple-choice check", func(d *screen.Deps) screen.Screen { return assessment.New(d) }},
	{"Learning Modules", "reading material", func(d *screen.Deps) screen.Screen { return modules.New(d) }},
	{"Settings", "theme and tutor", func(d *screen.Deps) screen.Screen { return settingsscreen.New(d) }},
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps       *screen.Deps
	menu       components.Menu
	updateNote string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps *screen.Deps) *HomeScreen {
	items := make([]components.MenuItem, 0, len(entries)+1)
	for _, e := range entries {
		items = append(items, components.MenuItem{
			Label: e.label,
			Hint:  e.hint,
			Action: func() tea.Cmd {
				return router.Push(e.open(deps))
			},
		})
	}
	items = append(items, components.MenuItem{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }})

	return &HomeScreen{deps: deps, menu: components.NewMenu(items)}
}

// SetUpdateNote shows a one-line notice that version is available.
func (h *HomeScreen) SetUpdateNote(version string) {
	h.updateNote = version
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Ctrl+T", Description: "Theme"},
		{Key: "q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "q" {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	st := h.deps.Styles()
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 80

	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(st, cw, compact))
	sections = append(sections, renderStatusBar(st, h.deps, cw))
	if h.deps.Tutor == nil {
		sections = append(sections, renderTutorBanner(st, cw))
	}
	sections = append(sections, renderMenu(st, h.menu, cw))
	if h.updateNote != "" {
		sections = append(sections, renderUpdateNote(st, h.updateNote, cw))
	}

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return renderFrame(st, strings.Join(sections, sep), width, height)
}
