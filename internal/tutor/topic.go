package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/hemepath/internal/content"
	"github.com/abhisek/hemepath/internal/diagnosis"
)

// Kind says where a topic came from.
type Kind string

const (
	KindConclusion Kind = "conclusion"
	KindPathway    Kind = "pathway"
	KindCase       Kind = "case"
	KindSignature  Kind = "signature"
	KindFreeform   Kind = "freeform"
)

// Topic is the subject of an explanation request.
type Topic struct {
	Kind  Kind
	Title string
	// Facts are the supporting findings or steps, in display order.
	Facts []string
}

// Key identifies a topic for caching. Topics with the same kind, title and
// facts share a key.
func (t Topic) Key() string {
	parts := append([]string{string(t.Kind), strings.ToLower(strings.TrimSpace(t.Title))}, t.Facts...)
	return strings.Join(parts, "\x1f")
}

// FromConclusion builds a topic from a rule matcher result and the findings
// that produced it.
func FromConclusion(c diagnosis.Conclusion, fs diagnosis.FindingSet) Topic {
	var facts []string
	for _, cat := range diagnosis.AllCategories() {
		for _, tag := range fs.Tags(cat) {
			facts = append(facts, fmt.Sprintf("%s: %s", cat.Title(), tag))
		}
	}
	facts = append(facts, "Confidence: "+string(c.Confidence))
	return Topic{Kind: KindConclusion, Title: c.Diagnosis, Facts: facts}
}

// FromPathway builds a topic from a finished decision pathway walk.
func FromPathway(diagnosisText string, steps []string) Topic {
	return Topic{Kind: KindPathway, Title: diagnosisText, Facts: steps}
}

// FromCase builds a topic from an integrated clinical case.
func FromCase(c content.Case) Topic {
	var facts []string
	facts = append(facts, prefixed("Morphology", c.Morphology)...)
	for _, m := range c.Flow {
		facts = append(facts, fmt.Sprintf("Flow: %s %s", m.Marker, m.Result))
	}
	facts = append(facts, prefixed("Cytogenetics", c.Cytogenetics)...)
	facts = append(facts, prefixed("Molecular", c.Molecular)...)
	return Topic{Kind: KindCase, Title: c.Correct, Facts: facts}
}

// FromSignature builds a topic from a cytogenetic signature.
func FromSignature(s content.Signature) Topic {
	return Topic{
		Kind:  KindSignature,
		Title: s.Diagnosis,
		Facts: []string{
			"Abnormality: " + s.Translocation,
			"Fusion: " + s.Fusion,
		},
	}
}

func prefixed(label string, xs []string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		out = append(out, label+": "+x)
	}
	return out
}
