// Package pagination holds the page arithmetic shared by list queries.
package pagination

// Offset converts a 1-based page and a limit into a row offset.
func Offset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	return (page - 1) * limit
}

// TotalPages returns the number of pages needed for count items.
func TotalPages(count, limit int) int {
	if limit < 1 || count < 1 {
		return 0
	}
	pages := count / limit
	if count%limit != 0 {
		pages++
	}
	return pages
}

// Bounds returns the half-open [start, end) slice range of a page over n
// items. An out-of-range page yields an empty range.
func Bounds(page, limit, n int) (int, int) {
	start := Offset(page, limit)
	if start >= n {
		return n, n
	}
	end := start + limit
	if end > n {
		end = n
	}
	return start, end
}
