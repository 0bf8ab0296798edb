package state

import (
	"errors"
	"testing"

	"github.com/he3als/windows-no-usb/internal/menu"
)

func TestHistoryIsLIFO(t *testing.T) {
	h := NewHistory()
	if !h.Empty() {
		t.Fatalf("expected a fresh history to be empty")
	}

	h.Push(NewContext("root", nil))
	h.Push(NewContext("child", nil))
	if h.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", h.Depth())
	}

	c, err := h.Pop()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Title != "child" {
		t.Fatalf("expected 'child' first, got %q", c.Title)
	}
	c, err = h.Pop()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Title != "root" {
		t.Fatalf("expected 'root' second, got %q", c.Title)
	}
	if !h.Empty() {
		t.Fatalf("expected history drained")
	}
}

func TestHistoryPopEmptyFails(t *testing.T) {
	h := NewHistory()
	if _, err := h.Pop(); !errors.Is(err, menu.ErrStackEmpty) {
		t.Fatalf("expected ErrStackEmpty, got %v", err)
	}
}

func TestHistoryAllowsDuplicateTitles(t *testing.T) {
	h := NewHistory()
	first := NewContext("Options", testEntries(2))
	second := NewContext("Options", testEntries(3))
	h.Push(first)
	h.Push(second)

	c, err := h.Pop()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != second {
		t.Fatalf("expected the most recent 'Options' context")
	}
	c, err = h.Pop()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != first {
		t.Fatalf("expected the older 'Options' context")
	}
}
