package state

import "github.com/he3als/windows-no-usb/internal/menu"

// Context is one menu level: its title, its entries, and the page/row
// position of the highlight. The active context is owned by the session
// model; suspended ancestors live in the History.
type Context struct {
	Title   string
	Entries []menu.Entry
	Page    int
	Row     int
}

// NewContext builds a level positioned at the first row of page 0.
func NewContext(title string, entries []menu.Entry) *Context {
	return &Context{Title: title, Entries: entries}
}

// Reset returns the highlight to the first row of the first page. Popped
// parents are redisplayed through this, so a round trip into a sub-menu
// does not preserve the parent's position.
func (c *Context) Reset() {
	c.Page = 0
	c.Row = 0
}

// PageEntries returns the entries visible on the current page.
func (c *Context) PageEntries(l Layout) []menu.Entry {
	start, end := l.PageBounds(c.Page, len(c.Entries))
	return c.Entries[start:end]
}

// PageLen returns the number of rows on the current page.
func (c *Context) PageLen(l Layout) int {
	start, end := l.PageBounds(c.Page, len(c.Entries))
	return end - start
}

// Index returns the absolute index of the highlighted entry.
func (c *Context) Index(l Layout) int {
	return c.Page*l.PageSize + c.Row
}

// Current returns the highlighted entry, if any.
func (c *Context) Current(l Layout) (menu.Entry, bool) {
	idx := c.Index(l)
	if idx < 0 || idx >= len(c.Entries) {
		return menu.Entry{}, false
	}
	return c.Entries[idx], true
}
