package cellularity

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/hemepath/internal/labcalc"
	"github.com/abhisek/hemepath/internal/screen/screentest"
)

func TestEnterMovesToEstimateThenGrades(t *testing.T) {
	s := New(screentest.Deps())
	screentest.Type(s, "60")
	screentest.Press(s, "enter")
	if s.focus != fieldEstimate {
		t.Fatal("enter on age should move to the estimate field")
	}
	screentest.Type(s, "40")
	screentest.Press(s, "enter")

	r, err := s.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r == nil || r.Verdict != labcalc.VerdictCorrect {
		t.Fatalf("expected a correct verdict, got %+v", r)
	}
	if !strings.Contains(s.View(100, 30), "range 30-50%") {
		t.Error("view should show the expected range")
	}
}

func TestHighEstimate(t *testing.T) {
	s := New(screentest.Deps())
	screentest.Type(s, "70")
	screentest.Press(s, "tab")
	screentest.Type(s, "80")
	screentest.Press(s, "enter")

	r, _ := s.Result()
	if r == nil || r.Verdict != labcalc.VerdictHigh {
		t.Fatalf("expected high verdict, got %+v", r)
	}
}

func TestAgeOutOfRange(t *testing.T) {
	s := New(screentest.Deps())
	screentest.Type(s, "130")
	screentest.Press(s, "tab")
	screentest.Type(s, "10")
	screentest.Press(s, "enter")

	_, err := s.Result()
	if !errors.Is(err, labcalc.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestMissingEstimate(t *testing.T) {
	s := New(screentest.Deps())
	screentest.Press(s, "tab", "enter")
	if _, err := s.Result(); err == nil {
		t.Error("expected an error without values")
	}
}

func TestClear(t *testing.T) {
	s := New(screentest.Deps())
	screentest.Type(s, "50")
	screentest.Press(s, "enter")
	screentest.Type(s, "50")
	screentest.Press(s, "enter", "ctrl+r")

	if r, err := s.Result(); r != nil || err != nil {
		t.Error("clear should drop the result")
	}
	if s.focus != fieldAge || s.inputs[fieldAge].Value() != "" {
		t.Error("clear should reset to an empty age field")
	}
}
