package repository

// Page represents a simple limit/offset window for listing operations.
// I keep it intentionally small; the page arithmetic lives in pkg/pagination.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries a slice of items and the total count of the whole listing.
// I return the total so callers can resync their pager without an extra round trip.
type PageResult[T any] struct {
	Items []T
	Total int
}
