package content

// Question is one multiple-choice assessment item.
type Question struct {
	ID        string   `yaml:"id"`
	Category  string   `yaml:"category"`
	Prompt    string   `yaml:"question"`
	Options   []string `yaml:"options"`
	Correct   string   `yaml:"correct"`
	Rationale string   `yaml:"rationale"`
}

// CorrectIndex returns the position of the correct option, or -1.
func (q Question) CorrectIndex() int {
	return indexOf(q.Options, q.Correct)
}

// CBC holds complete blood count values. Nil fields were not reported.
type CBC struct {
	WBC *float64 `yaml:"wbc"` // ×10⁹/L
	Hgb *float64 `yaml:"hgb"` // g/dL
	Plt *float64 `yaml:"plt"` // ×10⁹/L
}

// MarkerResult is a single flow cytometry marker and its expression.
type MarkerResult struct {
	Marker string `yaml:"marker"`
	Result string `yaml:"result"`
}

// Case is an integrated clinical case with a diagnosis question.
type Case struct {
	ID           string         `yaml:"id"`
	CBC          *CBC           `yaml:"cbc"`
	Morphology   []string       `yaml:"morphology"`
	Flow         []MarkerResult `yaml:"flow"`
	Cytogenetics []string       `yaml:"cytogenetics"`
	Molecular    []string       `yaml:"molecular"`
	Prompt       string         `yaml:"question"`
	Options      []string       `yaml:"options"`
	Correct      string         `yaml:"correct"`
	Rationale    string         `yaml:"rationale"`
}

// CorrectIndex returns the position of the correct option, or -1.
func (c Case) CorrectIndex() int {
	return indexOf(c.Options, c.Correct)
}

// FlowCase is an immunophenotype to be classified.
type FlowCase struct {
	ID          string         `yaml:"id"`
	Category    string         `yaml:"category"`
	Markers     []MarkerResult `yaml:"markers"`
	Diagnosis   string         `yaml:"diagnosis"`
	Explanation string         `yaml:"explanation"`
}

// DysplasiaCase is a single morphologic description to call dysplastic or not.
type DysplasiaCase struct {
	ID          string `yaml:"id"`
	Lineage     string `yaml:"lineage"`
	Description string `yaml:"description"`
	Dysplastic  bool   `yaml:"dysplastic"`
	Explanation string `yaml:"explanation"`
}

// Signature is a recurrent cytogenetic abnormality.
type Signature struct {
	ID            string `yaml:"id"`
	Translocation string `yaml:"translocation"`
	Fusion        string `yaml:"fusion"`
	Diagnosis     string `yaml:"diagnosis"`
	Prognosis     string `yaml:"prognosis"`
	Notes         string `yaml:"notes"`
	Category      string `yaml:"category"`
}

// Zone is a lymph node compartment.
type Zone struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	CellTypes   []string `yaml:"cell_types"`
	Function    string   `yaml:"function"`
	Pathology   []string `yaml:"pathology"`
}

// Module is a unit of reading material.
type Module struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Sections    []Section `yaml:"sections"`
}

// Section is a titled part of a module.
type Section struct {
	ID          string       `yaml:"id"`
	Title       string       `yaml:"title"`
	Content     string       `yaml:"content"`
	Subsections []Subsection `yaml:"subsections"`
}

type Subsection struct {
	ID             string   `yaml:"id"`
	Title          string   `yaml:"title"`
	Content        string   `yaml:"content"`
	KeyPoints      []string `yaml:"key_points"`
	ClinicalPearls []string `yaml:"clinical_pearls"`
}

func indexOf(xs []string, s string) int {
	for i, x := range xs {
		if x == s {
			return i
		}
	}
	return -1
}
