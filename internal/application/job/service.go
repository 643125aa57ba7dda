package job

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/hirestack/jobboard-go/internal/domain/job"
	"github.com/hirestack/jobboard-go/internal/repository"
	"github.com/hirestack/jobboard-go/internal/tracker"
	"github.com/hirestack/jobboard-go/pkg/logging"
)

// statsTopN is how many locations/companies the summary reports.
const statsTopN = 10

// trackTimeout bounds the fire-and-forget search recording.
const trackTimeout = 2 * time.Second

// Service is the query facade over both job backends. It owns the
// fallback decision: try the structured store, and on any failure
// re-run the same normalized filter against the snapshot. The decision
// is made once per request; there is no mid-request retry of the
// primary.
type Service struct {
	repos   *repository.Repos
	tracker tracker.SearchTracker
	log     *logging.Logger
}

func NewService(repos *repository.Repos, trk tracker.SearchTracker, log *logging.Logger) *Service {
	if trk == nil {
		trk = tracker.Noop{}
	}
	return &Service{
		repos:   repos,
		tracker: trk,
		log:     log,
	}
}

// ListParams carries the raw request parameters. Normalization happens
// exactly once, in List; whichever backend serves sees the same spec.
type ListParams struct {
	Title    string
	Location string
	Keywords string
	Query    string
	SortBy   string
	Page     string
	Limit    string
}

// ListResult is the response envelope for the listing operation.
type ListResult struct {
	Jobs []job.Job `json:"jobs"`
	job.PageMeta
	Filters  job.FilterSpec `json:"filters"`
	Sort     job.SortKey    `json:"sortBy"`
	Fallback bool           `json:"fallback"`
}

// StatsResult is the summary envelope.
type StatsResult struct {
	job.Stats
	Fallback bool `json:"fallback"`
}

// Health reports which backends this process can currently reach.
type Health struct {
	Database bool `json:"database"`
	Snapshot bool `json:"snapshot"`
	Tracker  bool `json:"tracker"`
}

// List answers the listing operation. User-input problems degrade
// (clamped pagination, ignored filters); only a total backend outage —
// primary failed and no snapshot loaded — returns an error.
func (s *Service) List(ctx context.Context, userID *uint, params ListParams) (*ListResult, error) {
	filter := job.NormalizeFilter(params.Title, params.Location, params.Keywords, params.Query)
	sortKey := job.ParseSortKey(params.SortBy)
	page := job.NewPageRequest(atoiDefault(params.Page, 1), atoiDefault(params.Limit, job.DefaultPageLimit))

	if filter.Query != "" && userID != nil {
		go s.trackSearch(*userID, filter.Query)
	}

	items, total, fallback, err := s.search(ctx, filter, sortKey, page)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []job.Job{}
	}

	return &ListResult{
		Jobs:     items,
		PageMeta: page.Meta(total),
		Filters:  filter,
		Sort:     sortKey,
		Fallback: fallback,
	}, nil
}

// Get returns one record by id. The identifier shape is validated
// before either backend is touched. A not-found answer from the primary
// is authoritative; only a backend failure degrades to the snapshot.
func (s *Service) Get(ctx context.Context, id string) (*job.Job, bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false, job.ErrInvalidJobID
	}

	if s.repos.Primary != nil {
		j, err := s.repos.Primary.GetByID(ctx, id)
		if err == nil {
			return j, false, nil
		}
		if err == job.ErrJobNotFound {
			return nil, false, err
		}
		s.log.Warn("primary job store failed on get, serving fallback", "id", id, "error", err)
	}

	if s.repos.Fallback == nil {
		return nil, true, job.ErrNoFallbackData
	}
	j, err := s.repos.Fallback.GetByID(ctx, id)
	return j, true, err
}

// Stats aggregates the summary on whichever backend is reachable.
func (s *Service) Stats(ctx context.Context) (*StatsResult, error) {
	if s.repos.Primary != nil {
		stats, err := s.repos.Primary.Stats(ctx, statsTopN)
		if err == nil {
			return &StatsResult{Stats: *stats}, nil
		}
		s.log.Warn("primary job store failed on stats, serving fallback", "error", err)
	}

	if s.repos.Fallback == nil {
		return nil, job.ErrNoFallbackData
	}
	stats, err := s.repos.Fallback.Stats(ctx, statsTopN)
	if err != nil {
		return nil, err
	}
	return &StatsResult{Stats: *stats, Fallback: true}, nil
}

// Health reflects the wiring decided at startup.
func (s *Service) Health() Health {
	_, noop := s.tracker.(tracker.Noop)
	return Health{
		Database: s.repos.Primary != nil,
		Snapshot: s.repos.Fallback != nil,
		Tracker:  !noop,
	}
}

// search implements the two-state fallback: PrimaryAttempt, then
// FallbackServed on any primary failure, carrying the identical spec.
func (s *Service) search(ctx context.Context, filter job.FilterSpec, sortKey job.SortKey, page job.PageRequest) ([]job.Job, int64, bool, error) {
	if s.repos.Primary != nil {
		items, total, err := s.repos.Primary.Search(ctx, filter, sortKey, page)
		if err == nil {
			return items, total, false, nil
		}
		s.log.Warn("primary job store failed on search, serving fallback", "error", err)
	}

	if s.repos.Fallback == nil {
		return nil, 0, true, job.ErrNoFallbackData
	}
	items, total, err := s.repos.Fallback.Search(ctx, filter, sortKey, page)
	return items, total, true, err
}

// trackSearch runs detached from the request; tracker failures are
// logged and dropped, never surfaced.
func (s *Service) trackSearch(userID uint, term string) {
	ctx, cancel := context.WithTimeout(context.Background(), trackTimeout)
	defer cancel()

	if err := s.tracker.Record(ctx, userID, term); err != nil {
		s.log.Debug("search tracking failed", "user_id", userID, "error", err)
	}
}

func atoiDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
