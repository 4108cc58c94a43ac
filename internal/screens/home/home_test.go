package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/router"
	"github.com/abhisek/hemepath/internal/screen/screentest"
	"github.com/abhisek/hemepath/internal/screens/integrated"
	"github.com/abhisek/hemepath/internal/screens/modules"
)

func TestMenuListsEveryTool(t *testing.T) {
	h := New(screentest.Deps())
	if got, want := len(h.menu.Items), len(entries)+1; got != want {
		t.Fatalf("items = %d, want %d", got, want)
	}
	view := h.View(100, 40)
	for _, label := range []string{"Integrated Diagnosis", "Leukemia Pathway", "Assessment", "Quit"} {
		if !strings.Contains(view, label) {
			t.Errorf("view missing %q", label)
		}
	}
}

func TestEnterPushesFirstTool(t *testing.T) {
	h := New(screentest.Deps())
	_, cmd := h.Update(screentest.Key("enter"))
	msg, ok := screentest.Exec(cmd).(router.PushScreenMsg)
	if !ok {
		t.Fatal("enter should push a screen")
	}
	if _, ok := msg.Screen.(*integrated.Screen); !ok {
		t.Errorf("pushed %T, want integrated diagnosis", msg.Screen)
	}
}

func TestEachEntryOpensDistinctScreen(t *testing.T) {
	deps := screentest.Deps()
	seen := map[string]bool{}
	for _, e := range entries {
		s := e.open(deps)
		if s == nil {
			t.Fatalf("%s opened nil", e.label)
		}
		if seen[s.Title()] {
			t.Errorf("duplicate screen title %q", s.Title())
		}
		seen[s.Title()] = true
	}
}

func TestNavigateToModules(t *testing.T) {
	h := New(screentest.Deps())
	for range 10 {
		screentest.Press(h, "down")
	}
	_, cmd := h.Update(screentest.Key("enter"))
	msg, ok := screentest.Exec(cmd).(router.PushScreenMsg)
	if !ok {
		t.Fatal("enter should push a screen")
	}
	if _, ok := msg.Screen.(*modules.ListScreen); !ok {
		t.Errorf("pushed %T, want module list", msg.Screen)
	}
}

func TestQuit(t *testing.T) {
	h := New(screentest.Deps())
	_, cmd := h.Update(screentest.Key("q"))
	if _, ok := screentest.Exec(cmd).(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestTutorBannerAndUpdateNote(t *testing.T) {
	h := New(screentest.Deps())
	view := h.View(100, 40)
	if !strings.Contains(view, "AI tutor off") {
		t.Error("tutor banner should be shown without a provider")
	}

	h.SetUpdateNote("v1.2.0")
	if !strings.Contains(h.View(100, 40), "v1.2.0") {
		t.Error("update note should be shown")
	}
}
