package paging

const (
	// DefaultPageSize is the number of records shown per page.
	DefaultPageSize = 50

	// DefaultMaxVisible is the page count up to which every page is listed.
	DefaultMaxVisible = 7

	// FirstPage is the lowest valid page number.
	FirstPage = 1
)

// PageCount returns ceil(total/size). Non-positive sizes use DefaultPageSize.
func PageCount(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Window is the page-sized view of a larger sequence.
// Start is inclusive and End exclusive, both relative to the full sequence.
type Window[T any] struct {
	Items []T
	Start int
	End   int
}

// Len returns the number of visible items.
func (w Window[T]) Len() int {
	return len(w.Items)
}

// Slice returns the items on page (1-based) for the given page size.
// Requests past either end clip to an empty window rather than failing, and
// 0 <= Start <= End always holds.
func Slice[T any](items []T, page, size int) Window[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page-1 > len(items)/size {
		return Window[T]{Items: items[len(items):len(items):len(items)], Start: len(items), End: len(items)}
	}
	start := (page - 1) * size
	if start < 0 {
		start = 0
	}
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	if page < FirstPage {
		end = start
	}
	return Window[T]{Items: items[start:end:end], Start: start, End: end}
}
