package job

// SortKey selects the listing order
type SortKey string

const (
	SortRecent     SortKey = "recent"
	SortRelevant   SortKey = "relevant"
	SortSalaryHigh SortKey = "salary_high"
	SortSalaryLow  SortKey = "salary_low"
)

// ParseSortKey maps a raw sortBy parameter to a SortKey. Unknown values
// degrade to the default rather than failing the request.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortRelevant, SortSalaryHigh, SortSalaryLow:
		return SortKey(raw)
	default:
		return SortRecent
	}
}

// RelevanceScore is the heuristic behind the relevant sort: a query hit
// in the title outweighs one in the description. Deliberately simple
// and deterministic; this is not an IR model.
func RelevanceScore(j *Job, query string) int {
	if query == "" {
		return 0
	}
	score := 0
	if containsFold(j.Title, query) {
		score += 2
	}
	if containsFold(j.Description, query) {
		score++
	}
	return score
}

// Less is the ordering contract shared by both backends. The memory
// backend sorts with it directly; the SQL ORDER BY in the store backend
// mirrors it clause for clause. All orders tie-break on recency then
// ascending id so results are deterministic.
func (k SortKey) Less(a, b *Job, query string) bool {
	switch k {
	case SortSalaryHigh:
		if ac, bc := a.SalaryCeiling(), b.SalaryCeiling(); ac != bc {
			return ac > bc
		}
	case SortSalaryLow:
		if af, bf := a.SalaryFloor(), b.SalaryFloor(); af != bf {
			return af < bf
		}
	case SortRelevant:
		if as, bs := RelevanceScore(a, query), RelevanceScore(b, query); as != bs {
			return as > bs
		}
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID < b.ID
}
