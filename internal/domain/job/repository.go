package job

import "context"

// StatEntry is one bucket of a frequency aggregation.
type StatEntry struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// Stats summarizes the active posting set.
type Stats struct {
	TotalJobs    int64       `json:"totalJobs"`
	TopLocations []StatEntry `json:"topLocations"`
	TopCompanies []StatEntry `json:"topCompanies"`
}

// Repository defines read access to job postings. The structured store
// and the in-memory snapshot both implement it with identical
// semantics; callers cannot tell which one answered.
type Repository interface {
	// Search returns one page of matches plus the total match count
	// across all pages.
	Search(ctx context.Context, filter FilterSpec, sort SortKey, page PageRequest) ([]Job, int64, error)
	GetByID(ctx context.Context, id string) (*Job, error)
	// Stats aggregates the total count and the topN most frequent
	// locations and companies among active postings.
	Stats(ctx context.Context, topN int) (*Stats, error)
}
