package settings

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/hemepath/internal/screen/screentest"
	prefs "github.com/abhisek/hemepath/internal/settings"
	"github.com/abhisek/hemepath/internal/ui/theme"
)

func TestToggleTheme(t *testing.T) {
	deps := screentest.Deps()
	deps.Prefs = prefs.Load(context.Background(), nil, deps.Logger)
	s := New(deps)

	before := deps.Prefs.Theme()
	screentest.Press(s, "t")
	if got := deps.Prefs.Theme(); got != before.Other() {
		t.Errorf("theme = %s, want %s", got, before.Other())
	}
	if !strings.Contains(s.View(100, 30), string(before.Other())) {
		t.Error("view should show the new theme")
	}
	if deps.Styles() != theme.For(before.Other()) {
		t.Error("styles should follow the preference")
	}
}

func TestWithoutPreferences(t *testing.T) {
	s := New(screentest.Deps())
	screentest.Press(s, "t")
	view := s.View(100, 30)
	if !strings.Contains(view, "dark (default)") {
		t.Error("view should fall back to the default theme")
	}
	if !strings.Contains(view, "not configured") {
		t.Error("view should report the tutor as unconfigured")
	}
}

func TestEnterPressesSwitchButton(t *testing.T) {
	deps := screentest.Deps()
	deps.Prefs = prefs.Load(context.Background(), nil, deps.Logger)
	s := New(deps)

	if !strings.Contains(s.View(100, 30), "Switch to light theme") {
		t.Fatal("button should offer the other theme")
	}
	screentest.Press(s, "enter")
	if got := deps.Prefs.Theme(); got != theme.Light {
		t.Errorf("theme = %s, want light", got)
	}
	if !strings.Contains(s.View(100, 30), "Switch to dark theme") {
		t.Error("button label should follow the theme")
	}
}
