package dto

// ─── Pagination ──────────────────────────────────────────────────────────────

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageRequest is bound from the ?page=&limit= query string of list endpoints.
type PageRequest struct {
	Page  int `form:"page,default=1"   validate:"min=1"`
	Limit int `form:"limit,default=20" validate:"min=1,max=100"`
}

// Normalize clamps out-of-range values to the defaults.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Offset is the number of rows to skip for this page.
func (p PageRequest) Offset() int { return (p.Page - 1) * p.Limit }

// Page is the envelope returned by every list endpoint.
type Page[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewPage assembles a page envelope from one page of items and the total row count.
func NewPage[T any](data []T, total int64, req PageRequest) *Page[T] {
	pages := 0
	if req.Limit > 0 {
		pages = int((total + int64(req.Limit) - 1) / int64(req.Limit))
	}
	if data == nil {
		data = []T{}
	}
	return &Page[T]{Data: data, Total: total, Page: req.Page, Limit: req.Limit, TotalPages: pages}
}

// ─── Status ──────────────────────────────────────────────────────────────────

// StatusMessage is returned by create and update endpoints. Location points at
// the resource that was written.
type StatusMessage struct {
	Status   int    `json:"status"`
	Message  string `json:"message"`
	Location string `json:"location"`
}
