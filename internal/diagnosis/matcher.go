package diagnosis

// Matcher evaluates findings against an ordered rule table.
// The first fully satisfied rule wins.
type Matcher struct {
	rules []Rule
}

// NewMatcher validates rules and returns a matcher over them.
func NewMatcher(rules []Rule) (*Matcher, error) {
	if err := validateRules(rules, nil); err != nil {
		return nil, err
	}
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return &Matcher{rules: cp}, nil
}

var builtin *Matcher

func init() {
	if err := validateRules(rules, options); err != nil {
		panic(err)
	}
	builtin = &Matcher{rules: rules}
}

// Evaluate returns the conclusion of the first rule whose requirements are
// all present in fs, or DefaultConclusion when none is.
func (m *Matcher) Evaluate(fs FindingSet) Conclusion {
	for _, r := range m.rules {
		if fs.satisfies(r.Requires) {
			c := r.Result
			c.Rule = r.Name
			return c
		}
	}
	return DefaultConclusion
}

// Matches returns every satisfied rule's conclusion in table order.
// Only the first is surfaced by Evaluate; the rest were shadowed by it.
func (m *Matcher) Matches(fs FindingSet) []Conclusion {
	var out []Conclusion
	for _, r := range m.rules {
		if fs.satisfies(r.Requires) {
			c := r.Result
			c.Rule = r.Name
			out = append(out, c)
		}
	}
	return out
}

// Evaluate runs fs against the built-in rule table.
func Evaluate(fs FindingSet) Conclusion {
	return builtin.Evaluate(fs)
}

// Matches runs fs against the built-in rule table and returns all hits.
func Matches(fs FindingSet) []Conclusion {
	return builtin.Matches(fs)
}

// Validate checks the built-in rule table.
func Validate() error {
	return validateRules(rules, options)
}
