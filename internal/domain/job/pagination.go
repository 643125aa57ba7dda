package job

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

// PageRequest is a clamped page/limit pair. Construct with
// NewPageRequest so the invariants hold.
type PageRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// NewPageRequest clamps page to >= 1 and limit to [1, MaxPageLimit].
func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset is the number of matching records preceding this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta is the pagination block of the response envelope.
type PageMeta struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// Meta derives the envelope metadata once the total is known. A page
// past the end is valid and simply empty; totalPages and hasPrevPage
// are computed from the total, not from whether this page has items.
func (p PageRequest) Meta(total int64) PageMeta {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return PageMeta{
		Total:       total,
		Page:        p.Page,
		Limit:       p.Limit,
		TotalPages:  totalPages,
		HasNextPage: p.Page < totalPages,
		HasPrevPage: p.Page > 1,
	}
}
