package diagnosis

import (
	"fmt"
	"slices"
	"strings"
)

// validateRules performs structural checks on a rule table. When vocab is
// non-nil every required tag must appear in its category's option list.
// Returns a combined error describing all problems found, or nil if valid.
func validateRules(rules []Rule, vocab map[Category][]string) error {
	var errs []string

	names := make(map[string]bool, len(rules))
	for i, r := range rules {
		prefix := fmt.Sprintf("rule %d (%q)", i, r.Name)
		if r.Name == "" {
			errs = append(errs, fmt.Sprintf("rule %d: empty name", i))
		} else if names[r.Name] {
			errs = append(errs, fmt.Sprintf("duplicate rule name: %q", r.Name))
		}
		names[r.Name] = true

		if len(r.Requires) == 0 {
			errs = append(errs, prefix+": no requirements")
		}
		if r.Result.Diagnosis == "" {
			errs = append(errs, prefix+": empty diagnosis")
		}
		if !r.Result.Confidence.Valid() {
			errs = append(errs, fmt.Sprintf("%s: unknown confidence %q", prefix, r.Result.Confidence))
		}
		for _, req := range r.Requires {
			if !req.Category.Valid() {
				errs = append(errs, fmt.Sprintf("%s: unknown category %q", prefix, req.Category))
				continue
			}
			if vocab != nil && !slices.Contains(vocab[req.Category], req.Tag) {
				errs = append(errs, fmt.Sprintf("%s: tag %q is not a %s option", prefix, req.Tag, req.Category))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("rule table validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
