package session

import (
	"errors"

	"github.com/abhisek/hemepath/internal/content"
)

// ErrNoSuchOption is returned when an answer index is out of range.
var ErrNoSuchOption = errors.New("session: no such option")

const unanswered = -1

// Assessment walks the multiple-choice bank in order. Answers may be
// changed freely until Finish.
type Assessment struct {
	meta
	questions []content.Question
	answers   []int
	current   int
}

// NewAssessment starts an assessment over questions.
func NewAssessment(questions []content.Question) *Assessment {
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = unanswered
	}
	return &Assessment{meta: newMeta(), questions: questions, answers: answers}
}

// Len returns the number of questions.
func (a *Assessment) Len() int { return len(a.questions) }

// Index returns the position of the current question.
func (a *Assessment) Index() int { return a.current }

// Current returns the current question.
func (a *Assessment) Current() content.Question {
	if len(a.questions) == 0 {
		return content.Question{}
	}
	return a.questions[a.current]
}

// Selected returns the option chosen for the current question, or -1.
func (a *Assessment) Selected() int {
	if len(a.answers) == 0 {
		return unanswered
	}
	return a.answers[a.current]
}

// Select records option i for the current question.
func (a *Assessment) Select(i int) error {
	if len(a.questions) == 0 || i < 0 || i >= len(a.questions[a.current].Options) {
		return ErrNoSuchOption
	}
	a.answers[a.current] = i
	return nil
}

// Next moves forward one question, stopping at the last.
func (a *Assessment) Next() {
	if a.current < len(a.questions)-1 {
		a.current++
	}
}

// Previous moves back one question, stopping at the first.
func (a *Assessment) Previous() {
	if a.current > 0 {
		a.current--
	}
}

// IsLast reports whether the current question is the final one.
func (a *Assessment) IsLast() bool { return a.current == len(a.questions)-1 }

// Answered returns how many questions have a selected option.
func (a *Assessment) Answered() int {
	n := 0
	for _, ans := range a.answers {
		if ans != unanswered {
			n++
		}
	}
	return n
}

// Result is the graded outcome of an assessment.
type Result struct {
	Score      int
	Total      int
	Percentage int
	Missed     []content.Question
}

// Finish grades every question. Unanswered questions count as missed, and
// the percentage is over the full bank.
func (a *Assessment) Finish() Result {
	t := Tally{Answered: len(a.questions)}
	var missed []content.Question
	for i, q := range a.questions {
		if a.answers[i] != unanswered && a.answers[i] == q.CorrectIndex() {
			t.Score++
		} else {
			missed = append(missed, q)
		}
	}
	return Result{
		Score:      t.Score,
		Total:      t.Answered,
		Percentage: t.Percentage(),
		Missed:     missed,
	}
}
