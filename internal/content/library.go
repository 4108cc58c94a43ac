// Package content holds the embedded teaching material: reading modules,
// the assessment bank, clinical cases, and the reference tables used by the
// interactive tools. Everything is validated against a JSON schema at load.
package content

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrNotFound is returned by the lookup helpers when no entry matches.
var ErrNotFound = errors.New("content: not found")

// Library is the full, read-only set of teaching material.
type Library struct {
	Modules        []Module
	Questions      []Question
	Cases          []Case
	FlowCases      []FlowCase
	DysplasiaCases []DysplasiaCase
	Signatures     []Signature
	Zones          []Zone
}

// Load decodes and validates the embedded material.
func Load() (*Library, error) {
	var (
		modules    struct{ Modules []Module }
		assessment struct{ Questions []Question }
		cases      struct{ Cases []Case }
		flow       struct{ Cases []FlowCase }
		dysplasia  struct{ Cases []DysplasiaCase }
		cyto       struct{ Signatures []Signature }
		lymph      struct{ Zones []Zone }
	)
	docs := []document{
		{"modules", &modules},
		{"assessment", &assessment},
		{"cases", &cases},
		{"flow", &flow},
		{"dysplasia", &dysplasia},
		{"cytogenetics", &cyto},
		{"lymphnode", &lymph},
	}
	for _, d := range docs {
		if err := decode(files, d.name, d.into); err != nil {
			return nil, err
		}
	}

	lib := &Library{
		Modules:        modules.Modules,
		Questions:      assessment.Questions,
		Cases:          cases.Cases,
		FlowCases:      flow.Cases,
		DysplasiaCases: dysplasia.Cases,
		Signatures:     cyto.Signatures,
		Zones:          lymph.Zones,
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
	defaultErr  error
)

// Default returns the embedded library, loading it on first use.
func Default() (*Library, error) {
	defaultOnce.Do(func() {
		defaultLib, defaultErr = Load()
	})
	return defaultLib, defaultErr
}

// MustDefault is Default for callers that cannot proceed without content.
func MustDefault() *Library {
	lib, err := Default()
	if err != nil {
		panic(err)
	}
	return lib
}

// ModuleByID looks up a reading module.
func (l *Library) ModuleByID(id string) (Module, error) {
	for _, m := range l.Modules {
		if m.ID == id {
			return m, nil
		}
	}
	return Module{}, fmt.Errorf("module %q: %w", id, ErrNotFound)
}

// SignatureByID looks up a cytogenetic signature.
func (l *Library) SignatureByID(id string) (Signature, error) {
	for _, s := range l.Signatures {
		if s.ID == id {
			return s, nil
		}
	}
	return Signature{}, fmt.Errorf("signature %q: %w", id, ErrNotFound)
}

// SearchSignatures returns signatures whose translocation, fusion or
// diagnosis contains query, case-insensitively. An empty query matches all.
func (l *Library) SearchSignatures(query string) []Signature {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]Signature, len(l.Signatures))
		copy(out, l.Signatures)
		return out
	}
	var out []Signature
	for _, s := range l.Signatures {
		if strings.Contains(strings.ToLower(s.Translocation), q) ||
			strings.Contains(strings.ToLower(s.Fusion), q) ||
			strings.Contains(strings.ToLower(s.Diagnosis), q) {
			out = append(out, s)
		}
	}
	return out
}

// ZoneByID looks up a lymph node zone.
func (l *Library) ZoneByID(id string) (Zone, error) {
	for _, z := range l.Zones {
		if z.ID == id {
			return z, nil
		}
	}
	return Zone{}, fmt.Errorf("zone %q: %w", id, ErrNotFound)
}

// FlowDiagnoses returns the distinct diagnoses across all flow cases in
// first-seen order.
func (l *Library) FlowDiagnoses() []string {
	seen := make(map[string]bool, len(l.FlowCases))
	var out []string
	for _, c := range l.FlowCases {
		if !seen[c.Diagnosis] {
			seen[c.Diagnosis] = true
			out = append(out, c.Diagnosis)
		}
	}
	return out
}
