package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 10
	// MaxLimit caps how many rows any page query can request.
	MaxLimit = 100
)

// Params holds page pagination inputs from controllers or services.
type Params struct {
	Page  int
	Limit int
}

// Page carries the metadata returned alongside a page of results.
type Page struct {
	Count      int64 `json:"count"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// Normalize enforces the configured default and maximum limits and a
// one-based page number.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the row offset for the normalized page.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// NewPage computes page metadata for a total row count.
func NewPage(params Params, count int64) Page {
	n := params.Normalize()
	total := int(count) / n.Limit
	if int(count)%n.Limit != 0 {
		total++
	}
	if total == 0 {
		total = 1
	}
	return Page{
		Count:      count,
		Page:       n.Page,
		Limit:      n.Limit,
		TotalPages: total,
	}
}
