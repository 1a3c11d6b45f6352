package survey

const (
	// PageSize is the number of records shown per page.
	PageSize = 20
	// MaxVisiblePages is the number of slots in the condensed page list,
	// ellipses included.
	MaxVisiblePages = 7
	// Ellipsis marks a gap in the list returned by PageNumbers.
	Ellipsis = 0
)

// TotalPages returns ceil(n/size), or 0 for an empty set.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// PageBounds returns the half-open range [start, end) of page (1-based).
// Keeping page within [1, TotalPages] is the caller's job; out-of-range
// pages collapse to an empty range.
func PageBounds(page, n, size int) (start, end int) {
	start = (page - 1) * size
	end = page * size
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return start, end
}

// Paginate returns the items on the given page.
func Paginate[T any](items []T, page, size int) []T {
	start, end := PageBounds(page, len(items), size)
	return items[start:end]
}

// PageNumbers returns the condensed page list for current out of total,
// always fitting MaxVisiblePages slots. Ellipsis entries mark gaps.
func PageNumbers(current, total int) []int {
	var pages []int

	if total <= MaxVisiblePages {
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	switch {
	case current <= 4:
		for i := 1; i <= 5; i++ {
			pages = append(pages, i)
		}
		pages = append(pages, Ellipsis, total)
	case current >= total-3:
		pages = append(pages, 1, Ellipsis)
		for i := total - 4; i <= total; i++ {
			pages = append(pages, i)
		}
	default:
		pages = append(pages, 1, Ellipsis)
		for i := current - 1; i <= current+1; i++ {
			pages = append(pages, i)
		}
		pages = append(pages, Ellipsis, total)
	}
	return pages
}
