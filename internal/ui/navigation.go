package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/he3als/windows-no-usb/internal/logging/events"
	"github.com/he3als/windows-no-usb/internal/menu"
	"github.com/he3als/windows-no-usb/internal/ui/command"
)

// handleKeyMsg is the session's key table. Keys with no binding here are
// swallowed without touching any state.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m.cancel()
	case "esc", "backspace":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "down":
		m.moveDown()
	case "up":
		m.moveUp()
	case "home":
		m.moveHome()
	case "end":
		m.moveEnd()
	case "right", "pgdown":
		m.nextPage()
	case "left", "pgup":
		m.prevPage()
	case " ":
		m.toggleCurrent()
	case "insert":
		m.selectAll()
	case "delete":
		m.clearSelection()
	}
	return nil
}

func (m *Model) moveDown() {
	if m.active.MoveDown(m.layout) {
		events.Menu.Cursor(m.active.Title, m.active.Page, m.active.Row)
	}
}

func (m *Model) moveUp() {
	if m.active.MoveUp(m.layout) {
		events.Menu.Cursor(m.active.Title, m.active.Page, m.active.Row)
	}
}

func (m *Model) moveHome() {
	if m.active.MoveHome(m.layout) {
		events.Menu.Cursor(m.active.Title, m.active.Page, m.active.Row)
	}
}

func (m *Model) moveEnd() {
	if m.active.MoveEnd(m.layout) {
		events.Menu.Cursor(m.active.Title, m.active.Page, m.active.Row)
	}
}

func (m *Model) nextPage() {
	if m.active.NextPage(m.layout) {
		events.Menu.Page(m.active.Title, m.active.Page)
	}
}

func (m *Model) prevPage() {
	if m.active.PrevPage(m.layout) {
		events.Menu.Page(m.active.Title, m.active.Page)
	}
}

func (m *Model) toggleCurrent() {
	if !m.multiSelect {
		return
	}
	if m.active.ToggleCurrent(m.layout) {
		if entry, ok := m.active.Current(m.layout); ok {
			events.Menu.Toggle(m.active.Title, entry.Label, entry.Selected)
		}
	}
}

func (m *Model) selectAll() {
	if !m.multiSelect {
		return
	}
	m.active.SelectAll()
	events.Menu.SelectAll(m.active.Title, len(m.active.Entries))
}

func (m *Model) clearSelection() {
	if !m.multiSelect {
		return
	}
	m.active.ClearSelection()
	events.Menu.ClearSelection(m.active.Title)
}

// handleEscapeKey returns to the suspended parent menu, repositioned at
// its top. At the root there is nothing to return to, so the session
// ends as canceled.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.history.Empty() {
		return m.cancel()
	}
	parent, err := m.history.Pop()
	if err != nil {
		m.runErr = err
		return tea.Quit
	}
	parent.Reset()
	m.active = parent
	m.reflow()
	events.Menu.Return(parent.Title, m.history.Depth())
	return nil
}

func (m *Model) cancel() tea.Cmd {
	m.result = menu.Result{Canceled: true}
	events.Menu.Cancel(m.active.Title)
	return tea.Quit
}

// handleEnterKey confirms the highlighted entry. Multi-select sessions
// confirm the checked set instead.
func (m *Model) handleEnterKey() tea.Cmd {
	if m.multiSelect {
		return m.confirmSelection()
	}
	entry, ok := m.active.Current(m.layout)
	if !ok {
		return nil
	}
	switch entry.Action.Kind {
	case menu.KindNone:
		m.result = menu.Result{Labels: []string{entry.Label}}
		events.Menu.Confirm(m.active.Title, m.result.Labels)
		return tea.Quit
	case menu.KindCommand:
		if _, err := m.bus.Execute(command.Request{Label: entry.Label, Command: entry.Action.Command}); err != nil {
			m.runErr = err
			return tea.Quit
		}
		events.Menu.Confirm(m.active.Title, nil)
		return tea.Quit
	case menu.KindNested:
		m.descend(entry.Label, entry.Action.Entries)
		return nil
	case menu.KindInvoke:
		return m.invokeAndDescend(entry)
	}
	return nil
}

// descend suspends the active context and activates a nested one titled
// after the confirmed entry.
func (m *Model) descend(title string, entries []menu.Entry) {
	parent := m.active.Title
	m.history.Push(m.active)
	m.active = m.newContext(title, entries)
	m.reflow()
	events.Menu.Descend(parent, title, m.history.Depth())
}

// invokeAndDescend runs the entry's command and descends into a menu
// built from its output. The active context is suspended before the
// command runs, so a failed command still leaves the stack describing
// where the session was headed.
func (m *Model) invokeAndDescend(entry menu.Entry) tea.Cmd {
	parent := m.active.Title
	m.history.Push(m.active)
	out, err := m.bus.Execute(command.Request{Label: entry.Label, Command: entry.Action.Command})
	if err != nil {
		m.runErr = err
		return tea.Quit
	}
	entries, err := menu.Normalize(out)
	if err != nil {
		m.runErr = err
		return tea.Quit
	}
	m.active = m.newContext(entry.Label, entries)
	m.reflow()
	events.Menu.Descend(parent, entry.Label, m.history.Depth())
	return nil
}

// confirmSelection ends a multi-select session. Checked command entries
// run in entry order; every other checked entry contributes its label to
// the result.
func (m *Model) confirmSelection() tea.Cmd {
	labels := make([]string, 0, m.active.SelectedCount())
	for _, entry := range m.active.Entries {
		if !entry.Selected {
			continue
		}
		if entry.Action.Kind == menu.KindCommand {
			if _, err := m.bus.Execute(command.Request{Label: entry.Label, Command: entry.Action.Command}); err != nil {
				m.runErr = err
				return tea.Quit
			}
			continue
		}
		labels = append(labels, entry.Label)
	}
	m.result = menu.Result{Labels: labels}
	events.Menu.Confirm(m.active.Title, labels)
	return tea.Quit
}
