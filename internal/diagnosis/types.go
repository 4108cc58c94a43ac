package diagnosis

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category names one of the four finding collections.
type Category string

const (
	CategoryMorphology   Category = "morphology"
	CategoryFlow         Category = "flow"
	CategoryCytogenetics Category = "cytogenetics"
	CategoryMolecular    Category = "molecular"
)

// AllCategories returns the categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryMorphology,
		CategoryFlow,
		CategoryCytogenetics,
		CategoryMolecular,
	}
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryMorphology, CategoryFlow, CategoryCytogenetics, CategoryMolecular:
		return true
	}
	return false
}

var titleCaser = cases.Title(language.English)

// Title returns the display name, e.g. "Cytogenetics".
func (c Category) Title() string {
	if c == CategoryFlow {
		return "Flow Cytometry"
	}
	return titleCaser.String(string(c))
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown finding category %q", s)
	}
	return c, nil
}

// Confidence grades how strongly findings support a conclusion.
type Confidence string

const (
	ConfidenceHigh     Confidence = "High"
	ConfidenceModerate Confidence = "Moderate"
	ConfidenceLow      Confidence = "Low"
)

// Valid reports whether c is a known confidence level.
func (c Confidence) Valid() bool {
	return c == ConfidenceHigh || c == ConfidenceModerate || c == ConfidenceLow
}

// Requirement is a tag that must be present in a specific category.
type Requirement struct {
	Category Category
	Tag      string
}

// Rule maps a set of required findings to a conclusion.
type Rule struct {
	Name     string
	Requires []Requirement
	Result   Conclusion
}

// Conclusion is the outcome of evaluating a FindingSet.
type Conclusion struct {
	Diagnosis  string
	Confidence Confidence
	Comment    string
	Rule       string // Name of the matching rule; empty for the default
}

// IsDefault reports whether no rule matched.
func (c Conclusion) IsDefault() bool {
	return c.Rule == ""
}

// DefaultConclusion is returned when no rule is fully satisfied.
var DefaultConclusion = Conclusion{
	Diagnosis:  "Incomplete Data or Non-specific Findings",
	Confidence: ConfidenceLow,
	Comment:    "Additional testing or clinical correlation needed for definitive diagnosis.",
}

// Disclaimer accompanies every surfaced conclusion.
const Disclaimer = "Educational use only. Not for clinical decision making."
