package models

// Pagination defaults and limits
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is one slice of a larger ordered result
type Page[T any] struct {
	Data         []T `json:"data"`
	PageNumber   int `json:"page_number"`
	PageSize     int `json:"page_size"`
	TotalPages   int `json:"total_pages"`
	TotalRecords int `json:"total_records"`
}

// HasPrevious reports whether a page exists before this one.
func (p Page[T]) HasPrevious() bool {
	return p.PageNumber > 1
}

// HasNext reports whether a page exists after this one.
func (p Page[T]) HasNext() bool {
	return p.PageNumber < p.TotalPages
}

// NormalizePage applies the pagination defaults: page numbers start at 1 and
// sizes are clamped to [1, MaxPageSize], with non-positive sizes taking
// DefaultPageSize.
func NormalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

// Paginate cuts page number page of the given size out of items. Pages past
// the end come back with an empty, non-nil Data slice.
func Paginate[T any](items []T, page, size int) Page[T] {
	page, size = NormalizePage(page, size)
	total := len(items)

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	data := make([]T, end-start)
	copy(data, items[start:end])

	return Page[T]{
		Data:         data,
		PageNumber:   page,
		PageSize:     size,
		TotalPages:   (total + size - 1) / size,
		TotalRecords: total,
	}
}

// Link is a HATEOAS hyperlink attached to a response
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

// PagedResponse wraps a Page with navigation links
type PagedResponse[T any] struct {
	Data            []T    `json:"data"`
	PageNumber      int    `json:"page_number"`
	PageSize        int    `json:"page_size"`
	TotalPages      int    `json:"total_pages"`
	TotalRecords    int    `json:"total_records"`
	HasPreviousPage bool   `json:"has_previous_page"`
	HasNextPage     bool   `json:"has_next_page"`
	Links           []Link `json:"links"`
}

// NewPagedResponse builds the envelope for p.
func NewPagedResponse[T any](p Page[T], links []Link) PagedResponse[T] {
	return PagedResponse[T]{
		Data:            p.Data,
		PageNumber:      p.PageNumber,
		PageSize:        p.PageSize,
		TotalPages:      p.TotalPages,
		TotalRecords:    p.TotalRecords,
		HasPreviousPage: p.HasPrevious(),
		HasNextPage:     p.HasNext(),
		Links:           links,
	}
}

// ResourceResponse wraps a single resource with its links
type ResourceResponse[T any] struct {
	Data    T      `json:"data"`
	Links   []Link `json:"links"`
	Message string `json:"message,omitempty"`
}
