package pathway

import (
	"slices"
	"strings"
	"testing"

	"github.com/abhisek/hemepath/internal/screen/screentest"
)

func TestWalkToAPL(t *testing.T) {
	s := New(screentest.Deps())

	// ≥20% blasts, Auer rods, t(15;17)
	screentest.Press(s, "enter", "enter", "enter")

	nav := s.Navigator()
	d, ok := nav.Diagnosis()
	if !ok || d != "APL - Acute Promyelocytic Leukemia" {
		t.Fatalf("diagnosis = %q, %v", d, ok)
	}
	if !nav.Done() {
		t.Error("walk should be done at a terminal node")
	}
	want := []string{"start", "acute", "aml_confirmed"}
	if got := nav.Path(); !slices.Equal(got, want) {
		t.Errorf("path = %v, want %v", got, want)
	}
	if len(s.answers) != 3 {
		t.Errorf("expected 3 recorded answers, got %d", len(s.answers))
	}
}

func TestIntermediateDiagnosisShownBeforeDone(t *testing.T) {
	s := New(screentest.Deps())
	screentest.Press(s, "enter", "enter")

	if s.Navigator().Done() {
		t.Fatal("walk should continue after Auer rods")
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "Likely AML") {
		t.Error("working diagnosis should be visible")
	}
	if !strings.Contains(view, "Check cytogenetics/molecular") {
		t.Error("next question should be visible")
	}
}

func TestRestart(t *testing.T) {
	s := New(screentest.Deps())
	screentest.Press(s, "down", "enter", "r")

	nav := s.Navigator()
	if got := nav.Path(); !slices.Equal(got, []string{"start"}) {
		t.Errorf("path after restart = %v", got)
	}
	if _, ok := nav.Diagnosis(); ok {
		t.Error("restart should clear the diagnosis")
	}
	if s.answers != nil {
		t.Error("restart should clear answers")
	}
}

func TestEnterAfterDoneIsNoop(t *testing.T) {
	s := New(screentest.Deps())
	screentest.Press(s, "enter", "enter", "enter", "enter")
	if got := len(s.Navigator().Path()); got != 3 {
		t.Errorf("path length = %d, want 3", got)
	}
}
