package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/router"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/screen/screentest"
)

type homeStub struct{}

func (h *homeStub) Init() tea.Cmd                           { return nil }
func (h *homeStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return h, nil }
func (h *homeStub) View(int, int) string                    { return "home" }
func (h *homeStub) Title() string                           { return "Home" }

func newWelcome() (*WelcomeScreen, *int) {
	built := 0
	return New(screentest.Deps(), func() screen.Screen {
		built++
		return &homeStub{}
	}), &built
}

func advance(w *WelcomeScreen, n int) (last tea.Cmd) {
	for range n {
		_, last = w.Update(tickMsg{})
	}
	return last
}

func TestSeriesRevealsInOrder(t *testing.T) {
	w, _ := newWelcome()
	if strings.Contains(w.View(120, 30), "myeloblast") {
		t.Error("nothing should be shown before the first tick")
	}

	advance(w, 2)
	view := w.View(120, 30)
	if !strings.Contains(view, "myeloblast") || !strings.Contains(view, "promyelocyte") {
		t.Error("first two stages should be visible")
	}
	if strings.Contains(view, "neutrophil") {
		t.Error("neutrophil shown too early")
	}
	if strings.Contains(view, "one finding at a time") {
		t.Error("banner shown too early")
	}
}

func TestBannerAndStop(t *testing.T) {
	w, built := newWelcome()
	if cmd := advance(w, bannerFrame); cmd == nil {
		t.Error("ticking stopped before the banner frame")
	}
	if cmd := advance(w, 1); cmd != nil {
		t.Error("ticking should stop once the banner is up")
	}

	view := w.View(120, 30)
	for _, want := range []string{"neutrophil", "one finding at a time", "Educational use only", "press any key"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if *built != 0 {
		t.Error("home built without a key press")
	}
}

func TestKeyReplacesWithHomeOnce(t *testing.T) {
	w, built := newWelcome()
	advance(w, 1)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("key press should move on")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok || msg.Screen.Title() != "Home" {
		t.Fatalf("msg = %#v", msg)
	}

	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'q', Text: "q"}); cmd != nil {
		t.Error("second key press should be ignored")
	}
	if *built != 1 {
		t.Errorf("home built %d times", *built)
	}
}

func TestCompactBannerOnNarrowTerminals(t *testing.T) {
	st := screentest.Deps().Styles()
	if !strings.Contains(RenderBanner(st, 40), "H E M E P A T H") {
		t.Error("narrow terminals should get the compact banner")
	}
	if strings.Contains(RenderBanner(st, 120), "H E M E P A T H") {
		t.Error("wide terminals should get the block banner")
	}
}
