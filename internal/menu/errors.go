package menu

import "errors"

// Sentinel failures for menu construction and navigation. The first two
// fire before anything is drawn, so they leave the terminal untouched.
var (
	// ErrUnsupportedEntries rejects input that is not a label, a list
	// of labels, or a label→action mapping.
	ErrUnsupportedEntries = errors.New("menu: unsupported entries input")

	// ErrNotInteractive rejects hosts without an interactive terminal
	// capable of direct cursor addressing.
	ErrNotInteractive = errors.New("menu: not an interactive terminal")

	// ErrStackEmpty reports a pop from an empty navigation history. The
	// session controller checks emptiness before popping, so seeing it
	// indicates a caller bug rather than a user condition.
	ErrStackEmpty = errors.New("menu: navigation stack is empty")
)
