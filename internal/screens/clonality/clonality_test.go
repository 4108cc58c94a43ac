package clonality

import (
	"strings"
	"testing"

	"github.com/abhisek/hemepath/internal/labcalc"
	"github.com/abhisek/hemepath/internal/screen/screentest"
)

func TestNoResultUntilBothFields(t *testing.T) {
	s := New(screentest.Deps())
	screentest.Type(s, "12")
	if _, ok := s.Result(); ok {
		t.Error("result should need both fields")
	}
}

func TestTypedValuesAreInterpreted(t *testing.T) {
	s := New(screentest.Deps())
	screentest.Type(s, "80")
	screentest.Press(s, "tab")
	screentest.Type(s, "10")

	r, ok := s.Result()
	if !ok {
		t.Fatal("expected a result")
	}
	if r.Kind != labcalc.KappaRestricted {
		t.Errorf("kind = %s, want κ-restricted", r.Kind)
	}
	if !strings.Contains(s.View(100, 30), "8.00") {
		t.Error("view should show the ratio")
	}
}

func TestLettersAreRejected(t *testing.T) {
	s := New(screentest.Deps())
	screentest.Type(s, "1a.5.")
	if got := s.inputs[fieldKappa].Value(); got != "1.5" {
		t.Errorf("value = %q, want 1.5", got)
	}
}

func TestZeroLambdaWarns(t *testing.T) {
	s := New(screentest.Deps())
	s.SetValues("5", "0")
	if _, ok := s.Result(); ok {
		t.Error("zero lambda should not produce a result")
	}
	if !strings.Contains(s.View(100, 30), "non-zero") {
		t.Error("view should warn about zero lambda")
	}
}

func TestPolyclonalBoundary(t *testing.T) {
	s := New(screentest.Deps())
	s.SetValues("3", "1")
	r, ok := s.Result()
	if !ok || r.Monoclonal() {
		t.Errorf("ratio 3.0 should be polyclonal, got %+v", r)
	}
}
