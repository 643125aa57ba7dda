package repository

import (
	"context"
	"sort"

	"github.com/hirestack/jobboard-go/internal/domain/job"
)

// MemoryJobRepo serves the fallback dataset: an immutable snapshot
// loaded once at startup. It never mutates its records, which makes
// unsynchronized concurrent reads safe. It is not a shortcut — it must
// accept and reject records exactly as DBJobRepo would for the same
// FilterSpec.
type MemoryJobRepo struct {
	jobs []job.Job
}

func NewMemoryJobRepo(jobs []job.Job) *MemoryJobRepo {
	return &MemoryJobRepo{jobs: jobs}
}

// Size reports how many records the snapshot holds.
func (r *MemoryJobRepo) Size() int {
	return len(r.jobs)
}

func (r *MemoryJobRepo) Search(ctx context.Context, filter job.FilterSpec, sortKey job.SortKey, page job.PageRequest) ([]job.Job, int64, error) {
	matched := make([]job.Job, 0, len(r.jobs))
	for i := range r.jobs {
		if filter.Matches(&r.jobs[i]) {
			matched = append(matched, r.jobs[i])
		}
	}

	sort.SliceStable(matched, func(a, b int) bool {
		return sortKey.Less(&matched[a], &matched[b], filter.Query)
	})

	total := int64(len(matched))
	start := page.Offset()
	if start >= len(matched) {
		return []job.Job{}, total, nil
	}
	end := start + page.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *MemoryJobRepo) GetByID(ctx context.Context, id string) (*job.Job, error) {
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			j := r.jobs[i]
			return &j, nil
		}
	}
	return nil, job.ErrJobNotFound
}

func (r *MemoryJobRepo) Stats(ctx context.Context, topN int) (*job.Stats, error) {
	stats := &job.Stats{}
	locations := map[string]int64{}
	companies := map[string]int64{}

	for i := range r.jobs {
		j := &r.jobs[i]
		if !j.Active {
			continue
		}
		stats.TotalJobs++
		if j.Location != "" {
			locations[j.Location]++
		}
		if j.Company != "" {
			companies[j.Company]++
		}
	}

	stats.TopLocations = topEntries(locations, topN)
	stats.TopCompanies = topEntries(companies, topN)
	return stats, nil
}

// topEntries orders by count descending, value ascending on ties — the
// same ordering the store's GROUP BY query uses.
func topEntries(freq map[string]int64, topN int) []job.StatEntry {
	entries := make([]job.StatEntry, 0, len(freq))
	for value, count := range freq {
		entries = append(entries, job.StatEntry{Value: value, Count: count})
	}
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].Count != entries[b].Count {
			return entries[a].Count > entries[b].Count
		}
		return entries[a].Value < entries[b].Value
	})
	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}
