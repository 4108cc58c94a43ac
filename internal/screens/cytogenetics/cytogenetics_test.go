package cytogenetics

import (
	"strings"
	"testing"

	"github.com/abhisek/hemepath/internal/screen/screentest"
)

func TestListsEverythingInitially(t *testing.T) {
	deps := screentest.Deps()
	s := New(deps)
	if got, want := len(s.Results()), len(deps.Library.Signatures); got != want {
		t.Errorf("results = %d, want %d", got, want)
	}
}

func TestTypingFilters(t *testing.T) {
	s := New(screentest.Deps())
	screentest.Type(s, "t(14;18")

	res := s.Results()
	if len(res) != 1 || res[0].Diagnosis != "Follicular Lymphoma" {
		t.Fatalf("results = %+v", res)
	}
	if !strings.Contains(s.View(100, 40), "Follicular Lymphoma") {
		t.Error("detail should show the selected signature")
	}
}

func TestSelectionClampsWhenResultsShrink(t *testing.T) {
	s := New(screentest.Deps())
	screentest.Press(s, "down", "down", "down")
	screentest.Type(s, "pml")

	sig, ok := s.Selected()
	if !ok || !strings.Contains(sig.Fusion, "PML") {
		t.Errorf("selected = %+v, %v", sig, ok)
	}
}

func TestNoMatches(t *testing.T) {
	s := New(screentest.Deps())
	screentest.Type(s, "zzzz")
	if _, ok := s.Selected(); ok {
		t.Error("nothing should be selected")
	}
	if !strings.Contains(s.View(100, 40), "No matching") {
		t.Error("view should report no matches")
	}
	_, cmd := s.Update(screentest.Key("enter"))
	if cmd != nil {
		t.Error("enter with no selection should do nothing")
	}
}
