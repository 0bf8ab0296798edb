package state

// ToggleCurrent flips the checkbox on the highlighted entry and reports
// whether there was one to flip.
func (c *Context) ToggleCurrent(l Layout) bool {
	idx := c.Index(l)
	if idx < 0 || idx >= len(c.Entries) {
		return false
	}
	c.Entries[idx].Selected = !c.Entries[idx].Selected
	return true
}

// SelectAll checks every entry across all pages.
func (c *Context) SelectAll() {
	for i := range c.Entries {
		c.Entries[i].Selected = true
	}
}

// ClearSelection unchecks every entry across all pages.
func (c *Context) ClearSelection() {
	for i := range c.Entries {
		c.Entries[i].Selected = false
	}
}

// SelectedCount returns how many entries are checked.
func (c *Context) SelectedCount() int {
	n := 0
	for _, e := range c.Entries {
		if e.Selected {
			n++
		}
	}
	return n
}
