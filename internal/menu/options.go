package menu

import "strings"

// DefaultTitle names sessions whose options carry no title.
const DefaultTitle = "Menu"

// Invoker runs a command string on behalf of a menu session. The return
// value is ignored for KindCommand confirmations; after a KindInvoke
// confirmation it feeds Normalize to build the nested entry set.
type Invoker func(command string) (any, error)

// Options configure one menu session.
type Options struct {
	// Title is the header text. Empty means DefaultTitle.
	Title string
	// Sort orders every displayed entry set by label.
	Sort bool
	// MultiSelect keeps the session in checkbox mode for its whole
	// lifetime; confirmation then acts on everything checked.
	MultiSelect bool
	// Invoker executes KindCommand and KindInvoke commands. Sessions
	// whose entries carry no commands may leave it nil.
	Invoker Invoker
	// Width and Height pin the frame size; zero values track the
	// terminal.
	Width  int
	Height int
	// ShowFooter appends a key-hint row under the entries.
	ShowFooter bool
}

// ResolvedTitle returns the header text the session will display.
func (o Options) ResolvedTitle() string {
	if strings.TrimSpace(o.Title) == "" {
		return DefaultTitle
	}
	return o.Title
}

// Result is what a finished menu session hands back.
type Result struct {
	// Labels holds the confirmed labels: one for a single-select
	// confirmation, any number (in entry order) for multi-select, none
	// after a command confirmation.
	Labels []string
	// Canceled is set when the session ended without confirming.
	Canceled bool
}

// Label returns the single confirmed label, or "" when there is none.
func (r Result) Label() string {
	if len(r.Labels) == 0 {
		return ""
	}
	return r.Labels[0]
}

// Empty reports whether the session produced nothing to act on.
func (r Result) Empty() bool {
	return r.Canceled || len(r.Labels) == 0
}
