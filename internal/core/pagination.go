package core

import "strconv"

// PageSize is the fixed number of invoice rows per listing page.
const PageSize = 6

// TotalPages returns how many listing pages are needed for count rows.
func TotalPages(count int64) int {
	if count <= 0 {
		return 0
	}
	return int((count + PageSize - 1) / PageSize)
}

// Ellipsis marks a gap in a pagination sequence.
const Ellipsis = "..."

// PageNumbers builds the pagination footer sequence for the listing.
// Short ranges show every page; longer ranges collapse the middle or an
// edge behind an ellipsis, always keeping the first and last two pages
// or the current page's neighbours visible.
func PageNumbers(current, total int) []string {
	num := func(n int) string { return strconv.Itoa(n) }

	if total <= 7 {
		pages := make([]string, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, num(i))
		}
		return pages
	}

	if current <= 3 {
		return []string{"1", "2", "3", Ellipsis, num(total - 1), num(total)}
	}

	if current >= total-2 {
		return []string{"1", "2", Ellipsis, num(total - 2), num(total - 1), num(total)}
	}

	return []string{
		"1", Ellipsis,
		num(current - 1), num(current), num(current + 1),
		Ellipsis, num(total),
	}
}
