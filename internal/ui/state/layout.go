package state

import "github.com/he3als/windows-no-usb/internal/menu"

const (
	// minColumnWidth keeps very short menus from collapsing into an
	// unreadable sliver.
	minColumnWidth = 16
	// checkboxCell is the width of the "[✓] " prefix in multi-select
	// sessions.
	checkboxCell = 4
	// barCell is the width of the highlight bar and its trailing space.
	barCell = 2
	// chromeRows counts the header line and the blank line under it.
	chromeRows = 2
	// footerRows counts the blank line and the hint line of the footer.
	footerRows = 2
)

// Layout fixes the geometry for displaying one context. It is recomputed
// only when the active context or the frame size changes, never while a
// page is being navigated.
type Layout struct {
	// PageSize is how many entries fit on one page, never below 1.
	PageSize int
	// PageCount is the highest valid page index; 0 means everything
	// fits on a single page.
	PageCount int
	// ColumnWidth is the padded width of the label column in cells,
	// including the checkbox cell in multi-select sessions.
	ColumnWidth int
	// RowWidth is the full width of one rendered row in cells.
	RowWidth int
}

// ComputeLayout derives the geometry for an entry set within a frame of
// the given height. Frames too short for a single row clamp PageSize to
// 1 instead of failing.
func ComputeLayout(entries []menu.Entry, height int, multiSelect, footer bool) Layout {
	chrome := chromeRows
	if footer {
		chrome += footerRows
	}
	pageSize := height - chrome
	if pageSize < 1 {
		pageSize = 1
	}
	longest := 0
	for _, entry := range entries {
		if n := len([]rune(entry.Label)); n > longest {
			longest = n
		}
	}
	column := longest
	if multiSelect {
		column += checkboxCell
	}
	if column < minColumnWidth {
		column = minColumnWidth
	}
	return Layout{
		PageSize:    pageSize,
		PageCount:   pageCount(len(entries), pageSize),
		ColumnWidth: column,
		RowWidth:    barCell + column + 1,
	}
}

// pageCount returns the highest page index for n entries at p per page:
// max(0, ceil((n-p)/p)).
func pageCount(n, p int) int {
	if n <= p {
		return 0
	}
	return (n - 1) / p
}

// PageBounds returns the half-open entry range [start, end) shown on a
// page. Pages are contiguous and non-overlapping; the last page may run
// short but is never empty unless there are no entries at all.
func (l Layout) PageBounds(page, total int) (int, int) {
	start := page * l.PageSize
	if start > total {
		start = total
	}
	if start < 0 {
		start = 0
	}
	end := start + l.PageSize
	if end > total {
		end = total
	}
	return start, end
}
