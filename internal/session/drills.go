package session

import (
	"slices"

	"github.com/abhisek/hemepath/internal/content"
)

// Feedback describes the most recently graded drill answer.
type Feedback struct {
	Correct     bool
	Expected    string
	Explanation string
}

// FlowQuiz asks for the diagnosis behind each immunophenotype in turn.
type FlowQuiz struct {
	meta
	cases   []content.FlowCase
	choices []string
	current int
	tally   Tally
	last    *Feedback
}

// NewFlowQuiz starts a quiz over cases.
func NewFlowQuiz(cases []content.FlowCase) *FlowQuiz {
	var choices []string
	for _, c := range cases {
		choices = append(choices, c.Diagnosis)
	}
	slices.Sort(choices)
	choices = slices.Compact(choices)
	return &FlowQuiz{meta: newMeta(), cases: cases, choices: choices}
}

// Choices returns the sorted, unique diagnoses offered for every case.
func (q *FlowQuiz) Choices() []string { return slices.Clone(q.choices) }

func (q *FlowQuiz) Len() int   { return len(q.cases) }
func (q *FlowQuiz) Index() int { return q.current }

// Done reports whether every case has been answered.
func (q *FlowQuiz) Done() bool { return q.current >= len(q.cases) }

// Current returns the case awaiting an answer. It is the zero value once
// the quiz is done.
func (q *FlowQuiz) Current() content.FlowCase {
	if q.Done() {
		return content.FlowCase{}
	}
	return q.cases[q.current]
}

// Answer grades choice against the current case and advances.
func (q *FlowQuiz) Answer(choice string) bool {
	if q.Done() {
		return false
	}
	c := q.cases[q.current]
	correct := choice == c.Diagnosis
	q.tally.Record(correct)
	q.last = &Feedback{Correct: correct, Expected: c.Diagnosis, Explanation: c.Explanation}
	q.current++
	return correct
}

// Last returns feedback for the previous answer, or nil.
func (q *FlowQuiz) Last() *Feedback { return q.last }

func (q *FlowQuiz) Tally() Tally { return q.tally }

// Restart clears progress and begins again from the first case.
func (q *FlowQuiz) Restart() {
	q.meta = newMeta()
	q.current, q.tally, q.last = 0, Tally{}, nil
}

// DysplasiaQuiz asks whether each described cell is dysplastic.
type DysplasiaQuiz struct {
	meta
	cases   []content.DysplasiaCase
	current int
	tally   Tally
	last    *Feedback
}

// NewDysplasiaQuiz starts a quiz over cases.
func NewDysplasiaQuiz(cases []content.DysplasiaCase) *DysplasiaQuiz {
	return &DysplasiaQuiz{meta: newMeta(), cases: cases}
}

func (q *DysplasiaQuiz) Len() int   { return len(q.cases) }
func (q *DysplasiaQuiz) Index() int { return q.current }
func (q *DysplasiaQuiz) Done() bool { return q.current >= len(q.cases) }

func (q *DysplasiaQuiz) Current() content.DysplasiaCase {
	if q.Done() {
		return content.DysplasiaCase{}
	}
	return q.cases[q.current]
}

// Answer grades the call against the current case and advances.
func (q *DysplasiaQuiz) Answer(isDysplastic bool) bool {
	if q.Done() {
		return false
	}
	c := q.cases[q.current]
	correct := isDysplastic == c.Dysplastic
	q.tally.Record(correct)
	expected := "Normal"
	if c.Dysplastic {
		expected = "Dysplastic"
	}
	q.last = &Feedback{Correct: correct, Expected: expected, Explanation: c.Explanation}
	q.current++
	return correct
}

func (q *DysplasiaQuiz) Last() *Feedback { return q.last }
func (q *DysplasiaQuiz) Tally() Tally    { return q.tally }

func (q *DysplasiaQuiz) Restart() {
	q.meta = newMeta()
	q.current, q.tally, q.last = 0, Tally{}, nil
}
