package state

// MoveDown advances the highlight one row, crossing onto the next page's
// first row at a page boundary. The last row of the last page saturates.
// It reports whether anything changed.
func (c *Context) MoveDown(l Layout) bool {
	if c.Row < c.PageLen(l)-1 {
		c.Row++
		return true
	}
	if c.Page < l.PageCount {
		c.Page++
		c.Row = 0
		return true
	}
	return false
}

// MoveUp is the inverse of MoveDown; crossing onto the previous page
// lands on its last row.
func (c *Context) MoveUp(l Layout) bool {
	if c.Row > 0 {
		c.Row--
		return true
	}
	if c.Page > 0 {
		c.Page--
		c.Row = c.PageLen(l) - 1
		return true
	}
	return false
}

// MoveHome jumps to the first row of the page; pressed there, it climbs
// onto the previous page's last row.
func (c *Context) MoveHome(l Layout) bool {
	if c.Row > 0 {
		c.Row = 0
		return true
	}
	if c.Page > 0 {
		c.Page--
		c.Row = c.PageLen(l) - 1
		return true
	}
	return false
}

// MoveEnd jumps to the last row of the page; pressed there, it drops
// onto the next page.
func (c *Context) MoveEnd(l Layout) bool {
	if last := c.PageLen(l) - 1; c.Row < last {
		c.Row = last
		return true
	}
	if c.Page < l.PageCount {
		c.Page++
		c.Row = 0
		return true
	}
	return false
}

// NextPage advances one page, leaving the highlight on the new page's
// first row.
func (c *Context) NextPage(l Layout) bool {
	if c.Page >= l.PageCount {
		return false
	}
	c.Page++
	c.Row = 0
	return true
}

// PrevPage retreats one page, leaving the highlight on the new page's
// first row.
func (c *Context) PrevPage(l Layout) bool {
	if c.Page <= 0 {
		return false
	}
	c.Page--
	c.Row = 0
	return true
}

// ClampRow pulls the highlight back inside the page after the entry set
// or the geometry changed underneath it.
func (c *Context) ClampRow(l Layout) {
	if c.Page > l.PageCount {
		c.Page = l.PageCount
	}
	if c.Page < 0 {
		c.Page = 0
	}
	if n := c.PageLen(l); c.Row >= n {
		c.Row = n - 1
	}
	if c.Row < 0 {
		c.Row = 0
	}
}
