package query

// Page is one window of a filtered list.
type Page[T any] struct {
	Items      []T
	Number     int // 1-based, already clamped
	TotalPages int // at least 1
	Total      int // length of the unpaginated list
}

// Paginate returns the requested page of items. Out-of-range requests are
// clamped into [1, TotalPages]; a non-positive size is treated as 1.
func Paginate[T any](items []T, size, requested int) Page[T] {
	if size < 1 {
		size = 1
	}
	total := len(items)
	pages := max(1, (total+size-1)/size)
	number := min(max(requested, 1), pages)

	start := min((number-1)*size, total)
	end := min(start+size, total)
	return Page[T]{
		Items:      items[start:end:end],
		Number:     number,
		TotalPages: pages,
		Total:      total,
	}
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }
