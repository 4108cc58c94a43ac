package diagnosis

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FindingSet holds the selected tags for each category. The zero value is
// ready to use.
type FindingSet struct {
	tags map[Category]map[string]struct{}
}

// NewFindingSet builds a FindingSet from per-category tag lists.
func NewFindingSet(byCategory map[Category][]string) FindingSet {
	var fs FindingSet
	for cat, tags := range byCategory {
		for _, tag := range tags {
			fs.Add(cat, tag)
		}
	}
	return fs
}

// normalizeTag trims and NFC-normalizes a tag so that visually identical
// input (e.g. "κ" typed as a composed or decomposed sequence) compares equal.
func normalizeTag(tag string) string {
	return norm.NFC.String(strings.TrimSpace(tag))
}

// Add marks tag as present in cat. Empty tags are ignored.
func (fs *FindingSet) Add(cat Category, tag string) {
	tag = normalizeTag(tag)
	if tag == "" {
		return
	}
	if fs.tags == nil {
		fs.tags = make(map[Category]map[string]struct{}, 4)
	}
	set, ok := fs.tags[cat]
	if !ok {
		set = make(map[string]struct{})
		fs.tags[cat] = set
	}
	set[tag] = struct{}{}
}

// Remove clears tag from cat.
func (fs *FindingSet) Remove(cat Category, tag string) {
	if set, ok := fs.tags[cat]; ok {
		delete(set, normalizeTag(tag))
	}
}

// Toggle flips the presence of tag in cat and returns the new state.
func (fs *FindingSet) Toggle(cat Category, tag string) bool {
	if fs.Has(cat, tag) {
		fs.Remove(cat, tag)
		return false
	}
	fs.Add(cat, tag)
	return fs.Has(cat, tag)
}

// Has reports whether tag is present in cat.
func (fs FindingSet) Has(cat Category, tag string) bool {
	_, ok := fs.tags[cat][normalizeTag(tag)]
	return ok
}

// Tags returns the tags selected in cat, sorted.
func (fs FindingSet) Tags(cat Category) []string {
	set := fs.tags[cat]
	out := make([]string, 0, len(set))
	for tag := range set {
		out = append(out, tag)
	}
	slices.Sort(out)
	return out
}

// Len returns the total number of selected tags across all categories.
func (fs FindingSet) Len() int {
	n := 0
	for _, set := range fs.tags {
		n += len(set)
	}
	return n
}

// Clear removes every tag.
func (fs *FindingSet) Clear() {
	fs.tags = nil
}

// Clone returns an independent copy.
func (fs FindingSet) Clone() FindingSet {
	var out FindingSet
	for cat, set := range fs.tags {
		for tag := range set {
			out.Add(cat, tag)
		}
	}
	return out
}

func (fs FindingSet) satisfies(reqs []Requirement) bool {
	for _, r := range reqs {
		if !fs.Has(r.Category, r.Tag) {
			return false
		}
	}
	return true
}
