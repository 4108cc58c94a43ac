package labcalc

import "math"

// Polyclonal ratio bounds, inclusive.
const (
	KappaLambdaLow  = 0.3
	KappaLambdaHigh = 3.0
)

// ClonalityKind classifies a κ:λ ratio.
type ClonalityKind string

const (
	Polyclonal       ClonalityKind = "Polyclonal"
	KappaRestricted  ClonalityKind = "Monoclonal (κ-restricted)"
	LambdaRestricted ClonalityKind = "Monoclonal (λ-restricted)"
)

// Clonality is the interpretation of a κ:λ light chain ratio.
type Clonality struct {
	Ratio          float64
	Kind           ClonalityKind
	Interpretation string
}

// KappaLambda interprets kappa and lambda counts or percentages. It returns
// false when lambda is zero or either input is negative or not a number.
func KappaLambda(kappa, lambda float64) (Clonality, bool) {
	if lambda == 0 || kappa < 0 || lambda < 0 || math.IsNaN(kappa) || math.IsNaN(lambda) {
		return Clonality{}, false
	}
	return ClassifyRatio(kappa / lambda), true
}

// ClassifyRatio interprets an already computed κ:λ ratio.
func ClassifyRatio(ratio float64) Clonality {
	switch {
	case ratio >= KappaLambdaLow && ratio <= KappaLambdaHigh:
		return Clonality{ratio, Polyclonal, "Normal κ:λ ratio suggests polyclonal plasma cells (reactive/normal)"}
	case ratio > KappaLambdaHigh:
		return Clonality{ratio, KappaRestricted, "Elevated κ:λ ratio indicates monoclonal κ light chain expression"}
	default:
		return Clonality{ratio, LambdaRestricted, "Decreased κ:λ ratio indicates monoclonal λ light chain expression"}
	}
}

// Monoclonal reports whether the ratio indicates light chain restriction.
func (c Clonality) Monoclonal() bool {
	return c.Kind != Polyclonal
}
