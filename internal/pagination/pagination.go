// Package pagination derives page windows from a collection size,
// a page size, and a page cursor. It performs no I/O and holds no state.
package pagination

// Page describes the slice window and navigation flags for one page.
type Page struct {
	// TotalPages is the number of pages; never less than 1, even for
	// an empty collection.
	TotalPages int
	// StartIndex is the inclusive offset of the first item on the page.
	StartIndex int
	// EndIndex is the exclusive offset one past the last item. It may
	// exceed the collection length; callers clamp when slicing.
	EndIndex int
	// HasNext reports whether a later page exists.
	HasNext bool
	// HasPrev reports whether an earlier page exists.
	HasPrev bool
}

// Paginate computes the window for currentPage. currentPage must already
// be within [1, TotalPages]; Paginate does not clamp it, so callers that
// change the collection size (create, delete, query change) must reset or
// re-clamp the cursor first. itemsPerPage must be positive.
func Paginate(totalItems, itemsPerPage, currentPage int) Page {
	totalPages := (totalItems + itemsPerPage - 1) / itemsPerPage
	if totalPages < 1 {
		totalPages = 1
	}
	start := (currentPage - 1) * itemsPerPage
	return Page{
		TotalPages: totalPages,
		StartIndex: start,
		EndIndex:   start + itemsPerPage,
		HasNext:    currentPage < totalPages,
		HasPrev:    currentPage > 1,
	}
}

// Clamp returns page forced into [1, totalPages].
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Slice returns the sub-slice of items covered by p, clamping the end
// of the window to the collection length.
func Slice[T any](items []T, p Page) []T {
	if p.StartIndex >= len(items) {
		return nil
	}
	end := p.EndIndex
	if end > len(items) {
		end = len(items)
	}
	return items[p.StartIndex:end]
}
