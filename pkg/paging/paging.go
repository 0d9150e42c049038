package paging

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Query struct {
	Page   int
	Limit  int
	Filter string
}

// Normalize defaults the page to 1 and clamps the limit to 1..MaxLimit.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

// Page is one page of an admin listing. TotalPages is what the API reports
// as "total", never less than 1. HasPrev and HasNext drive the pager.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"totalPages"`
	HasPrev    bool `json:"hasPrev"`
	HasNext    bool `json:"hasNext"`
}

func New[T any](items []T, q Query, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	if total < 1 {
		total = 1
	}
	return Page[T]{
		Items:      items,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: total,
		HasPrev:    q.Page > 1,
		HasNext:    q.Page < total,
	}
}

// Map converts the items of p, keeping its position.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		out = append(out, fn(it))
	}
	return Page[U]{
		Items:      out,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
		HasPrev:    p.HasPrev,
		HasNext:    p.HasNext,
	}
}
