package session

import "github.com/abhisek/hemepath/internal/content"

// CaseDeck steps through clinical cases. Navigation wraps around. A case is
// scored once; revisiting it shows the recorded answer.
type CaseDeck struct {
	meta
	cases   []content.Case
	current int
	answers []int
	tally   Tally
}

// NewCaseDeck starts a deck over cases.
func NewCaseDeck(cases []content.Case) *CaseDeck {
	answers := make([]int, len(cases))
	for i := range answers {
		answers[i] = unanswered
	}
	return &CaseDeck{meta: newMeta(), cases: cases, answers: answers}
}

func (d *CaseDeck) Len() int   { return len(d.cases) }
func (d *CaseDeck) Index() int { return d.current }

// Current returns the case on display.
func (d *CaseDeck) Current() content.Case {
	if len(d.cases) == 0 {
		return content.Case{}
	}
	return d.cases[d.current]
}

// Revealed reports whether the current case has been answered.
func (d *CaseDeck) Revealed() bool { return d.Selected() != unanswered }

// Selected returns the option chosen for the current case, or -1.
func (d *CaseDeck) Selected() int {
	if len(d.cases) == 0 {
		return unanswered
	}
	return d.answers[d.current]
}

// Answer reveals the current case with option i chosen. Only the first
// answer to each case counts toward the tally.
func (d *CaseDeck) Answer(i int) (bool, error) {
	c := d.Current()
	if i < 0 || i >= len(c.Options) {
		return false, ErrNoSuchOption
	}
	if d.answers[d.current] == unanswered {
		d.answers[d.current] = i
		d.tally.Record(i == c.CorrectIndex())
	}
	return d.answers[d.current] == c.CorrectIndex(), nil
}

// Next moves to the following case, wrapping to the first.
func (d *CaseDeck) Next() {
	if len(d.cases) == 0 {
		return
	}
	d.current = (d.current + 1) % len(d.cases)
}

// Previous moves to the preceding case, wrapping to the last.
func (d *CaseDeck) Previous() {
	if len(d.cases) == 0 {
		return
	}
	d.current = (d.current - 1 + len(d.cases)) % len(d.cases)
}

// Tally returns the running score. Answered never exceeds Len.
func (d *CaseDeck) Tally() Tally { return d.tally }
