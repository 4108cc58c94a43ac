package labcalc

import (
	"errors"
	"math"
	"testing"
)

func TestClassifyRatio(t *testing.T) {
	tests := []struct {
		ratio float64
		want  ClonalityKind
	}{
		{1.5, Polyclonal},
		{0.3, Polyclonal},
		{3.0, Polyclonal},
		{5.0, KappaRestricted},
		{3.01, KappaRestricted},
		{0.05, LambdaRestricted},
		{0.29, LambdaRestricted},
	}
	for _, tt := range tests {
		got := ClassifyRatio(tt.ratio)
		if got.Kind != tt.want {
			t.Errorf("ClassifyRatio(%v) = %q, want %q", tt.ratio, got.Kind, tt.want)
		}
		if got.Interpretation == "" {
			t.Errorf("ClassifyRatio(%v) has no interpretation", tt.ratio)
		}
	}
}

func TestKappaLambda(t *testing.T) {
	c, ok := KappaLambda(60, 40)
	if !ok {
		t.Fatal("expected a result")
	}
	if c.Ratio != 1.5 || c.Kind != Polyclonal || c.Monoclonal() {
		t.Errorf("got %+v", c)
	}

	if c, _ := KappaLambda(95, 5); c.Kind != KappaRestricted {
		t.Errorf("95:5 = %q", c.Kind)
	}

	for _, in := range [][2]float64{{10, 0}, {-1, 5}, {5, -1}, {math.NaN(), 1}} {
		if _, ok := KappaLambda(in[0], in[1]); ok {
			t.Errorf("KappaLambda(%v, %v) should yield no result", in[0], in[1])
		}
	}
}

func TestCellularity(t *testing.T) {
	tests := []struct {
		age, estimate int
		want          Verdict
		lo, hi        int
	}{
		{50, 50, VerdictCorrect, 40, 60},
		{50, 60, VerdictCorrect, 40, 60},
		{50, 61, VerdictHigh, 40, 60},
		{50, 39, VerdictLow, 40, 60},
		{5, 100, VerdictCorrect, 85, 100},
		{95, 0, VerdictCorrect, 0, 15},
		{110, 0, VerdictCorrect, 0, 0},
		{115, 0, VerdictCorrect, 0, 0},
		{MaxAge, 0, VerdictCorrect, 0, 0},
		{MaxAge, 1, VerdictHigh, 0, 0},
	}
	for _, tt := range tests {
		r, err := Cellularity(tt.age, tt.estimate)
		if err != nil {
			t.Fatalf("Cellularity(%d, %d): %v", tt.age, tt.estimate, err)
		}
		if r.Verdict != tt.want {
			t.Errorf("Cellularity(%d, %d) = %q, want %q", tt.age, tt.estimate, r.Verdict, tt.want)
		}
		if r.Min != tt.lo || r.Max != tt.hi {
			t.Errorf("Cellularity(%d, ...) range = [%d, %d], want [%d, %d]", tt.age, r.Min, r.Max, tt.lo, tt.hi)
		}
	}
}

func TestExpectedCellularity_Bounds(t *testing.T) {
	for age := 0; age <= MaxAge; age++ {
		expected, lo, hi := ExpectedCellularity(age)
		if expected < 0 || expected > 100 || lo < 0 || hi > 100 || lo > hi {
			t.Errorf("ExpectedCellularity(%d) = %d [%d, %d]", age, expected, lo, hi)
		}
		if expected < lo || expected > hi {
			t.Errorf("ExpectedCellularity(%d): expected %d outside [%d, %d]", age, expected, lo, hi)
		}
	}
}

func TestCellularity_OutOfRange(t *testing.T) {
	for _, in := range [][2]int{{-1, 50}, {121, 50}, {40, 101}, {40, -5}} {
		if _, err := Cellularity(in[0], in[1]); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Cellularity(%d, %d) err = %v, want ErrOutOfRange", in[0], in[1], err)
		}
	}
}
