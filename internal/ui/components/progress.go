package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/hemepath/internal/ui/theme"
)

// ProgressBar draws done out of total as a bar followed by "done/total".
type ProgressBar struct {
	Done, Total int
	Width       int
}

func NewProgressBar(done, total, width int) ProgressBar {
	return ProgressBar{Done: done, Total: total, Width: width}
}

// Fraction is Done/Total clamped to [0, 1]. An empty bar is 0.
func (p ProgressBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(1, max(0, float64(p.Done)/float64(p.Total)))
}

func (p ProgressBar) View(st *theme.Styles) string {
	count := fmt.Sprintf(" %d/%d", p.Done, p.Total)
	cells := max(4, p.Width-len(count))
	filled := int(float64(cells)*p.Fraction() + 0.5)
	return st.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		st.ProgressEmpty.Render(strings.Repeat(" ", cells-filled)) +
		st.Hint.Render(count)
}
