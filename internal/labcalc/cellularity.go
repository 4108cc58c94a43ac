package labcalc

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned for an age or estimate outside accepted bounds.
var ErrOutOfRange = errors.New("value out of range")

// MaxAge bounds the accepted patient age in years.
const MaxAge = 120

// cellularityTolerance is the ± window around the age-expected value.
const cellularityTolerance = 10

// Verdict compares an estimate against the expected range.
type Verdict string

const (
	VerdictCorrect Verdict = "correct"
	VerdictHigh    Verdict = "high"
	VerdictLow     Verdict = "low"
)

// CellularityResult describes an estimate against the age-adjusted range.
type CellularityResult struct {
	Expected int
	Min      int
	Max      int
	Verdict  Verdict
	Feedback string
}

// ExpectedCellularity returns the rule-of-thumb marrow cellularity (100 - age)
// and its tolerance window. All three are clamped to [0, 100] and lo <= hi.
func ExpectedCellularity(age int) (expected, lo, hi int) {
	expected = min(100, max(0, 100-age))
	lo = max(0, 100-age-cellularityTolerance)
	hi = max(lo, min(100, 100-age+cellularityTolerance))
	return expected, lo, hi
}

// Cellularity grades a percentage estimate for a patient of the given age.
func Cellularity(age, estimate int) (CellularityResult, error) {
	if age < 0 || age > MaxAge {
		return CellularityResult{}, fmt.Errorf("age %d: %w", age, ErrOutOfRange)
	}
	if estimate < 0 || estimate > 100 {
		return CellularityResult{}, fmt.Errorf("estimate %d%%: %w", estimate, ErrOutOfRange)
	}

	expected, lo, hi := ExpectedCellularity(age)
	r := CellularityResult{Expected: expected, Min: lo, Max: hi}
	switch {
	case estimate > hi:
		r.Verdict = VerdictHigh
		r.Feedback = fmt.Sprintf("Your estimate of %d%% is higher than expected (%d-%d%%) for a %d-year-old. This would suggest hypercellular marrow.", estimate, lo, hi, age)
	case estimate < lo:
		r.Verdict = VerdictLow
		r.Feedback = fmt.Sprintf("Your estimate of %d%% is lower than expected (%d-%d%%) for a %d-year-old. This would suggest hypocellular marrow.", estimate, lo, hi, age)
	default:
		r.Verdict = VerdictCorrect
		r.Feedback = "Excellent! Your estimate is within the normal range."
	}
	return r, nil
}
