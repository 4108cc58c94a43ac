package pathway

// StartKey is the entry node of the leukemia work-up tree.
const StartKey = "start"

var leukemia = MustBuild(StartKey, []NodeSpec{
	{
		Key:      "start",
		Question: "What is the blast percentage?",
		Options: []Option{
			{Text: "≥20% blasts", Next: "acute"},
			{Text: "<20% blasts", Next: "chronic"},
		},
	},
	{
		Key:      "acute",
		Question: "Are Auer rods present?",
		Options: []Option{
			{Text: "Yes - Auer rods present", Next: "aml_confirmed", Diagnosis: "Likely AML", Info: "Auer rods are pathognomonic for myeloid lineage"},
			{Text: "No Auer rods", Next: "lineage_markers"},
		},
	},
	{
		Key:      "aml_confirmed",
		Question: "Check cytogenetics/molecular",
		Options: []Option{
			{Text: "t(15;17)", Diagnosis: "APL - Acute Promyelocytic Leukemia", Info: "Medical emergency. Start tretinoin immediately. Risk of DIC."},
			{Text: "t(8;21)", Diagnosis: "AML with t(8;21)", Info: "Favorable prognosis. Core-binding factor AML."},
			{Text: "inv(16)", Diagnosis: "AML with inv(16)", Info: "Favorable prognosis. Core-binding factor AML."},
			{Text: "Other/normal", Diagnosis: "AML - further classify by morphology", Info: "Proceed with myeloid panel testing for additional mutations (FLT3, NPM1, etc.)"},
		},
	},
	{
		Key:      "lineage_markers",
		Question: "What does flow cytometry show?",
		Options: []Option{
			{Text: "MPO+ or CD13+/CD33+", Next: "aml_confirmed", Diagnosis: "AML confirmed by flow", Info: "Myeloid lineage confirmed"},
			{Text: "TdT+ and CD19+/CD10+", Next: "b_all"},
			{Text: "TdT+ and cytoplasmic CD3+", Next: "t_all"},
		},
	},
	{
		Key:      "b_all",
		Question: "Check for high-risk features",
		Options: []Option{
			{Text: "t(9;22) present", Diagnosis: "Philadelphia chromosome-positive B-ALL", Info: "Poor prognosis. Requires TKI therapy (e.g., imatinib, dasatinib)"},
			{Text: "t(12;21) in child", Diagnosis: "B-ALL with ETV6::RUNX1", Info: "Favorable prognosis in pediatric patients"},
			{Text: "Hyperdiploidy (>50 chr)", Diagnosis: "Hyperdiploid B-ALL", Info: "Favorable prognosis"},
			{Text: "Other", Diagnosis: "B-Acute Lymphoblastic Leukemia", Info: "Classify further by cytogenetics and risk stratify"},
		},
	},
	{
		Key:      "t_all",
		Question: "T-ALL confirmed",
		Options: []Option{
			{Text: "Continue", Diagnosis: "T-Acute Lymphoblastic Leukemia", Info: "Often presents with mediastinal mass. Higher risk of CNS involvement."},
		},
	},
	{
		Key:      "chronic",
		Question: "Describe the peripheral smear",
		Options: []Option{
			{Text: "Left shift with basophilia", Next: "cml_suspect"},
			{Text: "Mature lymphocytosis + smudge cells", Next: "cll_suspect"},
			{Text: "Dysplasia in multiple lineages", Next: "mds"},
			{Text: "Tear drops + leukoerythroblastosis", Next: "myelofibrosis"},
		},
	},
	{
		Key:      "cml_suspect",
		Question: "Check BCR::ABL1",
		Options: []Option{
			{Text: "BCR::ABL1 positive", Diagnosis: "Chronic Myeloid Leukemia (CML)", Info: "t(9;22) Philadelphia chromosome. Treat with TKI (imatinib, dasatinib, nilotinib)"},
			{Text: "BCR::ABL1 negative", Diagnosis: "Leukocytosis - other cause", Info: "Consider reactive leukocytosis, other MPN, or atypical CML"},
		},
	},
	{
		Key:      "cll_suspect",
		Question: "Flow cytometry shows:",
		Options: []Option{
			{Text: "CD5+/CD23+ B cells", Diagnosis: "Chronic Lymphocytic Leukemia (CLL)", Info: "Most common leukemia in adults. Often indolent."},
			{Text: "CD5+/CD23- + cyclin D1+", Diagnosis: "Mantle Cell Lymphoma (leukemic phase)", Info: "Aggressive. t(11;14) with cyclin D1 overexpression"},
			{Text: "Other pattern", Diagnosis: "Lymphocytosis - further workup", Info: "Consider other small B-cell lymphomas or reactive causes"},
		},
	},
	{
		Key:      "mds",
		Question: "Blast percentage and dysplasia:",
		Options: []Option{
			{Text: "<5% blasts, unilineage dysplasia", Diagnosis: "MDS with low blasts", Info: "Check for del(5q), ring sideroblasts (SF3B1)"},
			{Text: "5-9% blasts", Diagnosis: "MDS with excess blasts-1 (MDS-EB1)", Info: "Intermediate risk"},
			{Text: "10-19% blasts", Diagnosis: "MDS with excess blasts-2 (MDS-EB2)", Info: "Higher risk, approaching transformation to AML"},
		},
	},
	{
		Key:      "myelofibrosis",
		Question: "Check JAK2/CALR/MPL:",
		Options: []Option{
			{Text: "JAK2 V617F positive", Diagnosis: "Primary Myelofibrosis", Info: "JAK2 mutation in ~50% of PMF cases"},
			{Text: "CALR mutation", Diagnosis: "Primary Myelofibrosis (CALR-mutated)", Info: "CALR mutations in ~25-35% of PMF, often better prognosis"},
			{Text: "Triple negative", Diagnosis: "Primary Myelofibrosis (triple negative)", Info: "No JAK2/CALR/MPL. ~10% of cases."},
		},
	},
})

// Leukemia returns the built-in leukemia work-up tree.
func Leukemia() *Graph {
	return leukemia
}
