package state

import (
	"reflect"
	"testing"
)

func TestMoveDownSaturatesWithoutWraparound(t *testing.T) {
	c := NewContext("Menu", testEntries(4))
	l := ComputeLayout(c.Entries, 24, false, false)

	visited := []int{c.Index(l)}
	for i := 0; i < 6; i++ {
		c.MoveDown(l)
		visited = append(visited, c.Index(l))
	}
	want := []int{0, 1, 2, 3, 3, 3, 3}
	if !reflect.DeepEqual(visited, want) {
		t.Fatalf("expected %v, got %v", want, visited)
	}
}

func TestMoveDownCrossesOntoNextPage(t *testing.T) {
	c := NewContext("Menu", testEntries(7))
	l := Layout{PageSize: 3, PageCount: pageCount(7, 3)}

	c.Page, c.Row = 0, 2
	if !c.MoveDown(l) {
		t.Fatalf("expected move at page boundary")
	}
	if c.Page != 1 || c.Row != 0 {
		t.Fatalf("expected page 1 row 0, got page %d row %d", c.Page, c.Row)
	}
}

func TestMoveUpCrossesOntoPreviousPageLastRow(t *testing.T) {
	c := NewContext("Menu", testEntries(7))
	l := Layout{PageSize: 3, PageCount: pageCount(7, 3)}

	c.Page, c.Row = 1, 0
	if !c.MoveUp(l) {
		t.Fatalf("expected move at page boundary")
	}
	if c.Page != 0 || c.Row != 2 {
		t.Fatalf("expected page 0 row 2, got page %d row %d", c.Page, c.Row)
	}

	c.Page, c.Row = 0, 0
	if c.MoveUp(l) {
		t.Fatalf("expected no move at the very top")
	}
}

func TestMoveHomeJumpsThenClimbs(t *testing.T) {
	c := NewContext("Menu", testEntries(7))
	l := Layout{PageSize: 3, PageCount: pageCount(7, 3)}

	c.Page, c.Row = 1, 2
	if !c.MoveHome(l) {
		t.Fatalf("expected jump to first row")
	}
	if c.Page != 1 || c.Row != 0 {
		t.Fatalf("expected page 1 row 0, got page %d row %d", c.Page, c.Row)
	}

	if !c.MoveHome(l) {
		t.Fatalf("expected climb onto previous page")
	}
	if c.Page != 0 || c.Row != 2 {
		t.Fatalf("expected page 0 row 2, got page %d row %d", c.Page, c.Row)
	}

	c.Page, c.Row = 0, 0
	if c.MoveHome(l) {
		t.Fatalf("expected no move on first row of first page")
	}
}

func TestMoveEndJumpsThenDrops(t *testing.T) {
	c := NewContext("Menu", testEntries(7))
	l := Layout{PageSize: 3, PageCount: pageCount(7, 3)}

	if !c.MoveEnd(l) {
		t.Fatalf("expected jump to last row")
	}
	if c.Page != 0 || c.Row != 2 {
		t.Fatalf("expected page 0 row 2, got page %d row %d", c.Page, c.Row)
	}

	if !c.MoveEnd(l) {
		t.Fatalf("expected drop onto next page")
	}
	if c.Page != 1 || c.Row != 0 {
		t.Fatalf("expected page 1 row 0, got page %d row %d", c.Page, c.Row)
	}

	c.Page, c.Row = 2, 0
	if c.MoveEnd(l) {
		t.Fatalf("expected no move on last row of last page")
	}
}

func TestPageFlipsResetRow(t *testing.T) {
	c := NewContext("Menu", testEntries(7))
	l := Layout{PageSize: 3, PageCount: pageCount(7, 3)}

	c.Row = 2
	if !c.NextPage(l) {
		t.Fatalf("expected page advance")
	}
	if c.Page != 1 || c.Row != 0 {
		t.Fatalf("expected page 1 row 0, got page %d row %d", c.Page, c.Row)
	}

	c.Row = 1
	if !c.PrevPage(l) {
		t.Fatalf("expected page retreat")
	}
	if c.Page != 0 || c.Row != 0 {
		t.Fatalf("expected page 0 row 0, got page %d row %d", c.Page, c.Row)
	}

	if c.PrevPage(l) {
		t.Fatalf("expected no retreat from first page")
	}
	c.Page = 2
	if c.NextPage(l) {
		t.Fatalf("expected no advance from last page")
	}
}

func TestMovementOnEmptyContext(t *testing.T) {
	c := NewContext("Menu", nil)
	l := ComputeLayout(c.Entries, 24, false, false)

	if c.MoveDown(l) || c.MoveUp(l) || c.MoveHome(l) || c.MoveEnd(l) {
		t.Fatalf("expected no movement on an empty context")
	}
	if _, ok := c.Current(l); ok {
		t.Fatalf("expected no current entry on an empty context")
	}
}

func TestClampRowAfterEntrySetShrinks(t *testing.T) {
	c := NewContext("Menu", testEntries(7))
	c.Page, c.Row = 2, 0

	c.Entries = c.Entries[:4]
	shrunk := Layout{PageSize: 3, PageCount: pageCount(4, 3)}
	c.ClampRow(shrunk)
	if c.Page != 1 || c.Row != 0 {
		t.Fatalf("expected clamp to page 1 row 0, got page %d row %d", c.Page, c.Row)
	}
}

func TestCurrentFollowsHighlight(t *testing.T) {
	c := NewContext("Menu", testEntries(7))
	l := Layout{PageSize: 3, PageCount: pageCount(7, 3)}

	c.Page, c.Row = 1, 1
	entry, ok := c.Current(l)
	if !ok {
		t.Fatalf("expected a current entry")
	}
	if entry.Label != "entry-04" {
		t.Fatalf("expected entry-04, got %q", entry.Label)
	}

	page := c.PageEntries(l)
	if len(page) != 3 || page[0].Label != "entry-03" {
		t.Fatalf("unexpected page slice: %#v", page)
	}

	c.Reset()
	if c.Page != 0 || c.Row != 0 {
		t.Fatalf("expected reset to origin, got page %d row %d", c.Page, c.Row)
	}
}
