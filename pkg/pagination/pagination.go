package pagination

// Default and maximum page sizes. Vitals endpoints allow a larger window
// because charting consumes long series.
const (
	DefaultLimit      = 20
	MaxLimit          = 100
	MaxVitalsLimit    = 1000
	DefaultVitalLimit = 100
)

// Page is a normalized page request: Page >= 1 and 0 < Limit <= max.
type Page struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Normalize clamps raw page/limit values into a valid Page against the given
// maximum. Non-positive values fall back to defaults.
func Normalize(page, limit, maxLimit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return Page{Page: page, Limit: limit}
}

// TotalPages returns ceil(total/limit) for a non-negative total.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
