package tracker

import "context"

// SearchTracker records search terms for the recommendation service.
// Recording is best-effort: implementations may fail, callers must not
// care.
type SearchTracker interface {
	Record(ctx context.Context, userID uint, term string) error
}

// Noop discards every term. Used when Redis is not configured.
type Noop struct{}

func (Noop) Record(ctx context.Context, userID uint, term string) error {
	return nil
}
