package diagnosis

import "slices"

var options = map[Category][]string{
	CategoryMorphology: {
		"Blasts with Auer rods",
		"Hypergranular promyelocytes",
		"Dysplastic neutrophils",
		"Dysplastic megakaryocytes",
		"Mature lymphocytes + smudge cells",
		"Monomorphic medium cells with starry sky",
		"Reed-Sternberg cells",
		"Teardrop cells",
		"Ring sideroblasts",
		"Plasma cells >10%",
	},
	CategoryFlow: {
		"CD34+, MPO+, CD13+",
		"CD5+, CD23+, dim CD20",
		"TdT+, CD19+, CD10+",
		"CD10+, BCL2+, BCL6+",
		"CD19+, CD5+, cyclin D1+",
		"CD38 bright, CD138+, κ or λ restricted",
		"CD30+, CD15+, weak PAX5",
		"TdT+, cytoplasmic CD3+",
		"CD13+, CD14+, CD64+",
		"Normal flow pattern",
	},
	CategoryCytogenetics: {
		"t(15;17)",
		"t(8;21)",
		"inv(16)",
		"t(9;22) BCR::ABL1",
		"t(14;18) BCL2",
		"t(11;14) Cyclin D1",
		"t(8;14) MYC",
		"del(5q)",
		"Complex karyotype",
		"Normal karyotype",
		"JAK2 V617F",
		"CALR mutation",
	},
	CategoryMolecular: {
		"PML::RARA fusion",
		"RUNX1::RUNX1T1 fusion",
		"CBFB::MYH11 fusion",
		"BCR::ABL1 p210",
		"BCR::ABL1 p190",
		"FLT3-ITD",
		"NPM1 mutation",
		"SF3B1 mutation",
		"TP53 mutation",
		"No mutations detected",
	},
}

// Options returns the selectable tags for a category in display order.
func Options(cat Category) []string {
	return slices.Clone(options[cat])
}

// IsOption reports whether tag is one of the selectable tags for cat.
func IsOption(cat Category, tag string) bool {
	return slices.Contains(options[cat], normalizeTag(tag))
}

func morph(tag string) Requirement { return Requirement{CategoryMorphology, tag} }
func flow(tag string) Requirement  { return Requirement{CategoryFlow, tag} }
func cyto(tag string) Requirement  { return Requirement{CategoryCytogenetics, tag} }
func mol(tag string) Requirement   { return Requirement{CategoryMolecular, tag} }

// rules is the built-in table in priority order. Ph+ B-ALL precedes the
// generic B-ALL rule; myelofibrosis accepts either driver so it appears twice.
var rules = []Rule{
	{
		Name:     "apl",
		Requires: []Requirement{morph("Hypergranular promyelocytes"), cyto("t(15;17)"), mol("PML::RARA fusion")},
		Result: Conclusion{
			Diagnosis:  "Acute Promyelocytic Leukemia (APL)",
			Confidence: ConfidenceHigh,
			Comment:    "Medical emergency. Start tretinoin immediately. High DIC risk.",
		},
	},
	{
		Name:     "aml-t8-21",
		Requires: []Requirement{morph("Blasts with Auer rods"), flow("CD34+, MPO+, CD13+"), cyto("t(8;21)")},
		Result: Conclusion{
			Diagnosis:  "AML with t(8;21); RUNX1::RUNX1T1",
			Confidence: ConfidenceHigh,
			Comment:    "Core-binding factor AML with favorable prognosis.",
		},
	},
	{
		Name:     "cll",
		Requires: []Requirement{morph("Mature lymphocytes + smudge cells"), flow("CD5+, CD23+, dim CD20")},
		Result: Conclusion{
			Diagnosis:  "Chronic Lymphocytic Leukemia (CLL)",
			Confidence: ConfidenceHigh,
			Comment:    "Classic immunophenotype and morphology for CLL.",
		},
	},
	{
		Name:     "b-all-ph-positive",
		Requires: []Requirement{flow("TdT+, CD19+, CD10+"), cyto("t(9;22) BCR::ABL1")},
		Result: Conclusion{
			Diagnosis:  "B-Acute Lymphoblastic Leukemia with BCR::ABL1 (Philadelphia chromosome-positive)",
			Confidence: ConfidenceHigh,
			Comment:    "Poor prognosis. Requires TKI therapy.",
		},
	},
	{
		Name:     "b-all",
		Requires: []Requirement{flow("TdT+, CD19+, CD10+")},
		Result: Conclusion{
			Diagnosis:  "B-Acute Lymphoblastic Leukemia",
			Confidence: ConfidenceModerate,
			Comment:    "Further classify by cytogenetics and risk stratify.",
		},
	},
	{
		Name:     "follicular",
		Requires: []Requirement{flow("CD10+, BCL2+, BCL6+"), cyto("t(14;18) BCL2")},
		Result: Conclusion{
			Diagnosis:  "Follicular Lymphoma",
			Confidence: ConfidenceHigh,
			Comment:    "BCL2 translocation with germinal center phenotype.",
		},
	},
	{
		Name:     "mantle-cell",
		Requires: []Requirement{flow("CD19+, CD5+, cyclin D1+"), cyto("t(11;14) Cyclin D1")},
		Result: Conclusion{
			Diagnosis:  "Mantle Cell Lymphoma",
			Confidence: ConfidenceHigh,
			Comment:    "Aggressive B-cell lymphoma with t(11;14).",
		},
	},
	{
		Name:     "burkitt",
		Requires: []Requirement{morph("Monomorphic medium cells with starry sky"), cyto("t(8;14) MYC")},
		Result: Conclusion{
			Diagnosis:  "Burkitt Lymphoma",
			Confidence: ConfidenceHigh,
			Comment:    "Highly aggressive. MYC rearrangement is diagnostic.",
		},
	},
	{
		Name:     "plasma-cell",
		Requires: []Requirement{morph("Plasma cells >10%"), flow("CD38 bright, CD138+, κ or λ restricted")},
		Result: Conclusion{
			Diagnosis:  "Plasma Cell Neoplasm (Multiple Myeloma vs MGUS)",
			Confidence: ConfidenceModerate,
			Comment:    "Check for CRAB features to distinguish myeloma from MGUS.",
		},
	},
	{
		Name:     "mds-del5q",
		Requires: []Requirement{morph("Dysplastic megakaryocytes"), cyto("del(5q)")},
		Result: Conclusion{
			Diagnosis:  "MDS with isolated del(5q)",
			Confidence: ConfidenceHigh,
			Comment:    "Often responds to lenalidomide.",
		},
	},
	{
		Name:     "pmf-jak2",
		Requires: []Requirement{morph("Teardrop cells"), cyto("JAK2 V617F")},
		Result:   pmfConclusion,
	},
	{
		Name:     "pmf-calr",
		Requires: []Requirement{morph("Teardrop cells"), cyto("CALR mutation")},
		Result:   pmfConclusion,
	},
}

var pmfConclusion = Conclusion{
	Diagnosis:  "Primary Myelofibrosis",
	Confidence: ConfidenceModerate,
	Comment:    "Correlate with marrow fibrosis on core biopsy.",
}

// Rules returns a copy of the built-in rule table in priority order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = r
		out[i].Requires = slices.Clone(r.Requires)
	}
	return out
}
