package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hirestack/jobboard-go/internal/domain/job"
)

// JobRepo matches the domain job repository contract.
type JobRepo interface {
	job.Repository
}

// DBJobRepo renders the filter specification as native Postgres
// predicates. Its semantics must stay identical to MemoryJobRepo; the
// parity suite under test/integration holds both to the same fixtures.
type DBJobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) *DBJobRepo {
	return &DBJobRepo{
		db: db,
	}
}

// Search runs the page fetch and the total count as concurrent
// independent reads; the envelope needs both before it can be built.
func (r *DBJobRepo) Search(ctx context.Context, filter job.FilterSpec, sort job.SortKey, page job.PageRequest) ([]job.Job, int64, error) {
	var (
		items []job.Job
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := applyFilter(r.db.WithContext(gctx).Model(&job.Job{}), filter)
		return q.Count(&total).Error
	})
	g.Go(func() error {
		q := applyFilter(r.db.WithContext(gctx).Model(&job.Job{}), filter)
		q = applyOrder(q, sort, filter.Query)
		return q.Offset(page.Offset()).Limit(page.Limit).Find(&items).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("search jobs: %w", err)
	}

	return items, total, nil
}

func (r *DBJobRepo) GetByID(ctx context.Context, id string) (*job.Job, error) {
	var j job.Job
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, job.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *DBJobRepo) Stats(ctx context.Context, topN int) (*job.Stats, error) {
	stats := &job.Stats{}

	base := r.db.WithContext(ctx).Model(&job.Job{}).Where("active = ?", true)
	if err := base.Session(&gorm.Session{}).Count(&stats.TotalJobs).Error; err != nil {
		return nil, err
	}

	var err error
	stats.TopLocations, err = r.topValues(ctx, "location", topN)
	if err != nil {
		return nil, err
	}
	stats.TopCompanies, err = r.topValues(ctx, "company", topN)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// topValues groups active postings by a column. Ties order by value
// ascending so both backends produce the same list.
func (r *DBJobRepo) topValues(ctx context.Context, column string, topN int) ([]job.StatEntry, error) {
	var entries []job.StatEntry
	err := r.db.WithContext(ctx).Model(&job.Job{}).
		Select(column+" AS value, COUNT(*) AS count").
		Where("active = ?", true).
		Where(column + " <> ''").
		Group(column).
		Order("count DESC, value ASC").
		Limit(topN).
		Scan(&entries).Error
	return entries, err
}

// applyFilter builds the conjunctive predicate from the spec. Every
// substring goes through EscapePattern before reaching `~*`, so input
// like "C++" matches literally on this backend exactly as it does on
// the in-memory one.
func applyFilter(q *gorm.DB, f job.FilterSpec) *gorm.DB {
	if f.ActiveOnly {
		q = q.Where("active = ?", true)
	}
	if f.Title != "" {
		q = q.Where("title ~* ?", job.EscapePattern(f.Title))
	}
	if f.Location != "" {
		q = q.Where("location ~* ?", job.EscapePattern(f.Location))
	}
	if len(f.Keywords) > 0 {
		conds := make([]string, 0, len(f.Keywords))
		args := make([]any, 0, len(f.Keywords))
		for _, kw := range f.Keywords {
			conds = append(conds, "skill ~* ?")
			args = append(args, job.EscapePattern(kw))
		}
		q = q.Where(
			"EXISTS (SELECT 1 FROM unnest(skills) AS skill WHERE "+strings.Join(conds, " OR ")+")",
			args...,
		)
	}
	if f.Query != "" {
		p := job.EscapePattern(f.Query)
		q = q.Where(
			"(title ~* ? OR company ~* ? OR location ~* ? OR description ~* ?"+
				" OR EXISTS (SELECT 1 FROM unnest(skills) AS skill WHERE skill ~* ?))",
			p, p, p, p, p,
		)
	}
	return q
}

// applyOrder mirrors SortKey.Less clause for clause, including the
// recency/id tie-break.
func applyOrder(q *gorm.DB, sort job.SortKey, query string) *gorm.DB {
	const recent = "created_at DESC, id ASC"

	switch sort {
	case job.SortSalaryHigh:
		return q.Order("GREATEST(COALESCE(salary_max, 0), COALESCE(salary_min, 0)) DESC, " + recent)
	case job.SortSalaryLow:
		return q.Order(fmt.Sprintf("COALESCE(salary_min, salary_max, %d) ASC, %s", job.SalarySentinel, recent))
	case job.SortRelevant:
		if query == "" {
			return q.Order(recent)
		}
		p := job.EscapePattern(query)
		return q.Clauses(clause.OrderBy{
			Expression: clause.Expr{
				SQL:                "(CASE WHEN title ~* ? THEN 2 ELSE 0 END) + (CASE WHEN description ~* ? THEN 1 ELSE 0 END) DESC, " + recent,
				Vars:               []any{p, p},
				WithoutParentheses: true,
			},
		})
	default:
		return q.Order(recent)
	}
}
