package session

import "time"

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Title      string
	Score      int
	Total      int
	Percentage int
	Duration   time.Duration
	Missed     []string
}

// Grade returns a short verdict for a percentage.
func (s Summary) Grade() string {
	switch {
	case s.Percentage >= 90:
		return "Excellent"
	case s.Percentage >= 70:
		return "Good"
	case s.Percentage >= 50:
		return "Keep studying"
	default:
		return "Review the modules"
	}
}

// AssessmentSummary builds a Summary from a finished assessment.
func AssessmentSummary(a *Assessment) Summary {
	r := a.Finish()
	missed := make([]string, 0, len(r.Missed))
	for _, q := range r.Missed {
		missed = append(missed, q.Prompt)
	}
	return Summary{
		Title:      "Assessment",
		Score:      r.Score,
		Total:      r.Total,
		Percentage: r.Percentage,
		Duration:   a.Elapsed(),
		Missed:     missed,
	}
}

// TallySummary builds a Summary for a drill from its running tally.
func TallySummary(title string, t Tally, elapsed time.Duration) Summary {
	return Summary{
		Title:      title,
		Score:      t.Score,
		Total:      t.Answered,
		Percentage: t.Percentage(),
		Duration:   elapsed,
	}
}
