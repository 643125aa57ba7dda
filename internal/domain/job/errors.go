package job

import "errors"

var (
	ErrJobNotFound    = errors.New("job not found")
	ErrInvalidJobID   = errors.New("invalid job id format")
	ErrNoFallbackData = errors.New("no fallback job data loaded")
)
