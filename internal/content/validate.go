package content

import (
	"fmt"
	"strings"
)

// Validate checks cross-field rules the schemas cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func (l *Library) Validate() error {
	var errs []string

	uniq := func(kind string, ids []string) {
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if seen[id] {
				errs = append(errs, fmt.Sprintf("duplicate %s id %q", kind, id))
			}
			seen[id] = true
		}
	}

	ids := make([]string, 0, len(l.Questions))
	for _, q := range l.Questions {
		ids = append(ids, q.ID)
		if q.CorrectIndex() < 0 {
			errs = append(errs, fmt.Sprintf("question %s: correct answer %q is not an option", q.ID, q.Correct))
		}
	}
	uniq("question", ids)

	ids = ids[:0]
	for _, c := range l.Cases {
		ids = append(ids, c.ID)
		if c.CorrectIndex() < 0 {
			errs = append(errs, fmt.Sprintf("case %s: correct answer %q is not an option", c.ID, c.Correct))
		}
	}
	uniq("case", ids)

	ids = ids[:0]
	for _, c := range l.FlowCases {
		ids = append(ids, c.ID)
	}
	uniq("flow case", ids)
	if n := len(l.FlowDiagnoses()); len(l.FlowCases) > 0 && n < 2 {
		errs = append(errs, fmt.Sprintf("flow cases need at least 2 distinct diagnoses, have %d", n))
	}

	ids = ids[:0]
	for _, c := range l.DysplasiaCases {
		ids = append(ids, c.ID)
	}
	uniq("dysplasia case", ids)

	ids = ids[:0]
	for _, s := range l.Signatures {
		ids = append(ids, s.ID)
	}
	uniq("signature", ids)

	ids = ids[:0]
	for _, z := range l.Zones {
		ids = append(ids, z.ID)
	}
	uniq("zone", ids)

	ids = ids[:0]
	for _, m := range l.Modules {
		ids = append(ids, m.ID)
		var sec []string
		for _, s := range m.Sections {
			sec = append(sec, s.ID)
		}
		uniq("section in module "+m.ID, sec)
	}
	uniq("module", ids)

	if len(errs) > 0 {
		return fmt.Errorf("content validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
