package menu

// Kind identifies what confirming an entry does.
type Kind int

const (
	// KindNone marks a terminal entry; confirming it returns the label.
	KindNone Kind = iota
	// KindCommand runs the attached command and ends the session.
	KindCommand
	// KindNested opens a sub-menu built from the attached entries.
	KindNested
	// KindInvoke runs the attached command and opens a sub-menu built
	// from whatever the command returns.
	KindInvoke
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindCommand:
		return "command"
	case KindNested:
		return "nested"
	case KindInvoke:
		return "invoke"
	default:
		return "unknown"
	}
}

// Action describes what happens when an entry is confirmed. Kind and its
// payload are fixed when the entry is built and never change afterwards.
type Action struct {
	Kind    Kind
	Command string
	Entries []Entry
}

// Entry is one selectable menu row. Selected is the only field that
// mutates after construction, and only during multi-select sessions.
type Entry struct {
	Label    string
	Action   Action
	Selected bool
}

// HasSubMenu reports whether confirming the entry descends into a nested
// menu rather than ending the session.
func (e Entry) HasSubMenu() bool {
	return e.Action.Kind == KindNested || e.Action.Kind == KindInvoke
}
