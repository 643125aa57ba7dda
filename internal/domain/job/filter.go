package job

import (
	"regexp"
	"strings"
)

// FilterSpec is the normalized, backend-agnostic description of a
// search. It is built once per request and handed unmodified to
// whichever backend ends up serving it, including on fallback.
type FilterSpec struct {
	Title      string   `json:"title,omitempty"`
	Location   string   `json:"location,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
	Query      string   `json:"q,omitempty"`
	ActiveOnly bool     `json:"-"`
}

// NormalizeFilter parses raw request parameters into a FilterSpec.
// Malformed input degrades to "no filter on this field", never an
// error: search is best-effort.
func NormalizeFilter(title, location, keywords, query string) FilterSpec {
	f := FilterSpec{
		Title:      strings.TrimSpace(title),
		Location:   strings.TrimSpace(location),
		Query:      strings.TrimSpace(query),
		ActiveOnly: true,
	}
	for _, kw := range strings.Split(keywords, ",") {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			f.Keywords = append(f.Keywords, kw)
		}
	}
	return f
}

// IsEmpty reports whether the spec filters on anything beyond the
// active flag.
func (f FilterSpec) IsEmpty() bool {
	return f.Title == "" && f.Location == "" && len(f.Keywords) == 0 && f.Query == ""
}

// EscapePattern makes a user-supplied substring safe to compile as a
// case-insensitive pattern. Postgres `~*` and Go's regexp share the
// escaped metacharacter set, so a posting titled "C++ Developer" is
// findable by the literal "C++" on either backend and pattern syntax in
// the input can never match more than its literal characters.
func EscapePattern(s string) string {
	return regexp.QuoteMeta(s)
}

// Matches is the in-memory rendering of the predicate: the same
// conjunction the structured store evaluates natively, expressed as
// case-insensitive containment. Keep the two renderings in lockstep;
// the shared fixtures in the parity tests exist for exactly that.
func (f FilterSpec) Matches(j *Job) bool {
	if f.ActiveOnly && !j.Active {
		return false
	}
	if f.Title != "" && !containsFold(j.Title, f.Title) {
		return false
	}
	if f.Location != "" && !containsFold(j.Location, f.Location) {
		return false
	}
	if len(f.Keywords) > 0 && !f.matchesAnyKeyword(j) {
		return false
	}
	if f.Query != "" && !f.matchesQuery(j) {
		return false
	}
	return true
}

// matchesAnyKeyword is a union, not an intersection: one matching skill
// entry admits the record.
func (f FilterSpec) matchesAnyKeyword(j *Job) bool {
	for _, kw := range f.Keywords {
		for _, skill := range j.Skills {
			if containsFold(skill, kw) {
				return true
			}
		}
	}
	return false
}

func (f FilterSpec) matchesQuery(j *Job) bool {
	if containsFold(j.Title, f.Query) ||
		containsFold(j.Company, f.Query) ||
		containsFold(j.Location, f.Query) ||
		containsFold(j.Description, f.Query) {
		return true
	}
	for _, skill := range j.Skills {
		if containsFold(skill, f.Query) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
