// Package session holds the in-memory state of the quiz tools: the
// assessment, the clinical case deck, and the flow and dysplasia drills.
package session

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Tally counts correct answers out of those given.
type Tally struct {
	Score    int
	Answered int
}

// Record adds one answer.
func (t *Tally) Record(correct bool) {
	t.Answered++
	if correct {
		t.Score++
	}
}

// Percentage returns the score as a rounded whole percentage of the
// answered count, or 0 when nothing has been answered.
func (t Tally) Percentage() int {
	if t.Answered == 0 {
		return 0
	}
	return int(math.Round(float64(t.Score) / float64(t.Answered) * 100))
}

// meta is embedded by every quiz for log correlation and timing.
type meta struct {
	id      string
	started time.Time
}

func newMeta() meta {
	return meta{id: uuid.NewString(), started: time.Now()}
}

// ID returns the quiz's unique identifier.
func (m meta) ID() string { return m.id }

// Elapsed returns the time since the quiz started.
func (m meta) Elapsed() time.Duration { return time.Since(m.started) }
