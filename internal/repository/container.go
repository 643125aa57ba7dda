package repository

// Repos bundles the repository set handed to the application layer.
// Either field may be nil when its backing store is unavailable; the
// fallback coordinator decides which one serves each request.
type Repos struct {
	Primary  JobRepo
	Fallback JobRepo
}
