package domain

// Page is one page of an ordered result set together with its metadata.
// Invariants, for any valid options:
//
//	len(Items) == min(PageSize, max(0, TotalItems-(PageNumber-1)*PageSize))
//	TotalPages == ceil(TotalItems / PageSize)
type Page[T any] struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
	Items      []T `json:"items"`
}

// PageOptions carries per-request pagination and sorting parameters.
// SortBy and SortDirection are untrusted caller input; repositories pass
// them through the sort allow-list before they reach an ORDER BY clause.
type PageOptions struct {
	PageNumber    int
	PageSize      int
	SortBy        string
	SortDirection string
}

// Normalize clamps PageNumber and PageSize to at least 1. The clamp policy
// is applied uniformly across every repository.
func (o PageOptions) Normalize() PageOptions {
	if o.PageNumber < 1 {
		o.PageNumber = 1
	}
	if o.PageSize < 1 {
		o.PageSize = 1
	}
	return o
}

// PageOf slices an ordered matching set into the page described by opts.
// A page number beyond the last page yields empty Items with TotalItems and
// TotalPages unchanged. An empty matching set yields TotalPages 0.
func PageOf[T any](matching []T, opts PageOptions) Page[T] {
	opts = opts.Normalize()

	total := len(matching)

	// Wire-supplied page numbers and sizes can be large enough for the
	// offset and end arithmetic to overflow, so the page number is compared
	// against the page count before multiplying and a wrapped end clamps.
	offset := total
	if opts.PageNumber-1 <= total/opts.PageSize {
		offset = (opts.PageNumber - 1) * opts.PageSize
	}
	end := offset + opts.PageSize
	if end > total || end < 0 {
		end = total
	}

	items := make([]T, end-offset)
	copy(items, matching[offset:end])

	totalPages := total / opts.PageSize
	if total%opts.PageSize != 0 {
		totalPages++
	}

	return Page[T]{
		PageNumber: opts.PageNumber,
		PageSize:   opts.PageSize,
		TotalPages: totalPages,
		TotalItems: total,
		Items:      items,
	}
}

// EmptyPage is the degraded result returned when storage fails underneath a
// paged read.
func EmptyPage[T any](opts PageOptions) Page[T] {
	return PageOf[T](nil, opts)
}
