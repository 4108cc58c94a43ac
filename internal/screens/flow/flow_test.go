package flow

import (
	"slices"
	"strings"
	"testing"

	"github.com/abhisek/hemepath/internal/screen/screentest"
)

func answer(t *testing.T, s *Screen, diagnosis string) {
	t.Helper()
	i := slices.Index(s.quiz.Choices(), diagnosis)
	if i < 0 {
		t.Fatalf("%q is not a choice", diagnosis)
	}
	for range i {
		screentest.Press(s, "down")
	}
	screentest.Press(s, "enter")
}

func TestCorrectAnswerAdvances(t *testing.T) {
	s := New(screentest.Deps())
	first := s.quiz.Current()

	answer(t, s, first.Diagnosis)

	if s.quiz.Index() != 1 {
		t.Fatalf("index = %d, want 1", s.quiz.Index())
	}
	if tally := s.quiz.Tally(); tally.Score != 1 || tally.Answered != 1 {
		t.Errorf("tally = %+v", tally)
	}
	if !strings.Contains(s.View(100, 50), "✓ Correct") {
		t.Error("view should show positive feedback")
	}
}

func TestWrongAnswerShowsExpected(t *testing.T) {
	s := New(screentest.Deps())
	first := s.quiz.Current()

	var wrong string
	for _, c := range s.quiz.Choices() {
		if c != first.Diagnosis {
			wrong = c
			break
		}
	}
	answer(t, s, wrong)

	if s.quiz.Tally().Score != 0 {
		t.Error("wrong answer should not score")
	}
	if !strings.Contains(s.View(100, 50), "The answer was "+first.Diagnosis) {
		t.Error("view should show the expected diagnosis")
	}
}

func TestFinishAndRestart(t *testing.T) {
	s := New(screentest.Deps())
	for !s.quiz.Done() {
		screentest.Press(s, "enter")
	}
	if !strings.Contains(s.View(100, 50), "Flow drill complete") {
		t.Error("summary should be shown when done")
	}

	screentest.Press(s, "r")
	if s.quiz.Done() || s.quiz.Index() != 0 || s.quiz.Tally().Answered != 0 {
		t.Error("restart should reset the drill")
	}
}
