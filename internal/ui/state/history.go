package state

import (
	"github.com/emirpasic/gods/v2/stacks/arraystack"

	"github.com/he3als/windows-no-usb/internal/menu"
)

// History is the strict LIFO of suspended parent contexts. Descending
// into a sub-menu pushes the active context; returning pops the most
// recent one. There is no random access and no keying by title, so two
// ancestors sharing a title cannot collide.
type History struct {
	stack *arraystack.Stack[*Context]
}

// NewHistory returns an empty navigation history.
func NewHistory() *History {
	return &History{stack: arraystack.New[*Context]()}
}

// Push suspends a context.
func (h *History) Push(c *Context) {
	h.stack.Push(c)
}

// Pop resumes the most recently suspended context. Popping an empty
// history fails with menu.ErrStackEmpty; callers check Empty first, so
// the error marks a misuse rather than a user condition.
func (h *History) Pop() (*Context, error) {
	c, ok := h.stack.Pop()
	if !ok {
		return nil, menu.ErrStackEmpty
	}
	return c, nil
}

// Empty reports whether any context is suspended.
func (h *History) Empty() bool {
	return h.stack.Empty()
}

// Depth returns the number of suspended contexts.
func (h *History) Depth() int {
	return h.stack.Size()
}
