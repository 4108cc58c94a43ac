package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/hemepath/internal/diagnosis"
	"github.com/abhisek/hemepath/internal/llm"
)

func validExplanationJSON() json.RawMessage {
	return json.RawMessage(`{
		"summary": "Hypergranular promyelocytes with t(15;17) and PML::RARA define APL.",
		"key_points": ["Medical emergency because of DIC", "Treat with ATRA"],
		"pitfalls": ["Microgranular variant can mimic monocytic AML"]
	}`)
}

func testService(mock *llm.MockProvider) *Service {
	cfg := DefaultConfig()
	cfg.RatePerMinute = 0
	return NewService(mock, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func aplTopic() Topic {
	fs := diagnosis.NewFindingSet(map[diagnosis.Category][]string{
		diagnosis.CategoryMorphology:   {"Hypergranular promyelocytes"},
		diagnosis.CategoryCytogenetics: {"t(15;17)"},
		diagnosis.CategoryMolecular:    {"PML::RARA fusion"},
	})
	return FromConclusion(diagnosis.Evaluate(fs), fs)
}

func TestExplain_ParsesAndCaches(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExplanationJSON()})
	svc := testService(mock)

	e, err := svc.Explain(t.Context(), aplTopic())
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if !strings.Contains(e.Summary, "APL") || len(e.KeyPoints) != 2 || e.Cached {
		t.Errorf("explanation = %+v", e)
	}

	again, err := svc.Explain(t.Context(), aplTopic())
	if err != nil {
		t.Fatalf("second Explain: %v", err)
	}
	if !again.Cached {
		t.Error("second call should be served from cache")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}
}

func TestExplain_PromptCarriesFindings(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExplanationJSON()})
	svc := testService(mock)

	if _, err := svc.Explain(t.Context(), aplTopic()); err != nil {
		t.Fatal(err)
	}
	req := mock.Calls()[0]
	if req.Schema != ExplanationSchema {
		t.Error("request should carry the explanation schema")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Acute Promyelocytic Leukemia (APL)", "Cytogenetics: t(15;17)", "Confidence: High"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestExplain_ErrorsAreUnavailable(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: errors.New("boom")},
		llm.MockResponse{Content: json.RawMessage(`{"summary":""}`)},
	)
	svc := testService(mock)

	for i := 0; i < 2; i++ {
		_, err := svc.Explain(t.Context(), aplTopic())
		if !errors.Is(err, ErrUnavailable) {
			t.Errorf("call %d: err = %v, want ErrUnavailable", i, err)
		}
	}
}

func TestRequestConsume(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExplanationJSON()})
	svc := testService(mock)

	if _, ok, _ := svc.Consume(); ok {
		t.Fatal("nothing should be ready before a request")
	}

	svc.Request(t.Context(), aplTopic())

	var e *Explanation
	var ok bool
	var err error
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		e, ok, err = svc.Consume()
		if ok {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if !ok || err != nil || e == nil {
		t.Fatalf("Consume() = %v, %v, %v", e, ok, err)
	}
	if _, ok, _ := svc.Consume(); ok {
		t.Error("slot should be cleared after consume")
	}
}

func TestExplain_RateLimitHonorsContext(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validExplanationJSON()},
		llm.MockResponse{Content: validExplanationJSON()},
	)
	cfg := DefaultConfig()
	cfg.RatePerMinute = 1
	svc := NewService(mock, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	if _, err := svc.Explain(t.Context(), aplTopic()); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()
	_, err := svc.Explain(ctx, Topic{Kind: KindFreeform, Title: "CLL"})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable from limiter", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}
}

func TestTopicKey(t *testing.T) {
	a := Topic{Kind: KindCase, Title: "CLL", Facts: []string{"x"}}
	b := Topic{Kind: KindCase, Title: " cll ", Facts: []string{"x"}}
	c := Topic{Kind: KindCase, Title: "CLL", Facts: []string{"y"}}
	if a.Key() != b.Key() {
		t.Error("title case and spacing should not change the key")
	}
	if a.Key() == c.Key() {
		t.Error("different facts should change the key")
	}
}
