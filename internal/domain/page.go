package domain

const (
	// DefaultPageLimit is the trip list page size when the client sends none.
	DefaultPageLimit = 20
	// MaxPageLimit bounds the page size a client may ask for.
	MaxPageLimit = 100
)

// PaginationParams selects one page of the trip list, latest start date first.
type PaginationParams struct {
	Page  int // 1-based
	Limit int
}

// NewPaginationParams reads the optional page and limit query values of
// GET /trips. Missing or non-positive values fall back to page 1 and
// DefaultPageLimit; a limit above MaxPageLimit is clamped to it.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: DefaultPageLimit}
	if page != nil && *page > 0 {
		p.Page = *page
	}
	if limit != nil && *limit > 0 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Offset is the number of trips that precede this page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
