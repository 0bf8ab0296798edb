package ui

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/he3als/windows-no-usb/internal/logging/events"
	"github.com/he3als/windows-no-usb/internal/menu"
	"github.com/he3als/windows-no-usb/internal/theme"
	"github.com/he3als/windows-no-usb/internal/ui/command"
	uistate "github.com/he3als/windows-no-usb/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model drives one menu session: a stack of suspended menus below the
// active one, a layout derived from the active entry set, and the
// outcome that Show hands back once the program finishes.
type Model struct {
	active  *uistate.Context
	history *uistate.History
	layout  uistate.Layout

	multiSelect bool
	sort        bool
	showFooter  bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	bus    *command.Bus
	result menu.Result
	runErr error

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the session model over already-normalized entries.
func NewModel(entries []menu.Entry, opts menu.Options) *Model {
	m := &Model{
		history:     uistate.NewHistory(),
		multiSelect: opts.MultiSelect,
		sort:        opts.Sort,
		showFooter:  opts.ShowFooter,
		bus:         command.New(opts.Invoker),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.active = m.newContext(opts.ResolvedTitle(), entries)
	m.reflow()
	m.registerHandlers()
	events.Menu.SessionStart(m.active.Title, len(entries), m.multiSelect)
	return m
}

// newContext prepares a menu context. Sorting works on a copy so the
// caller's slice, which may sit inside a parent entry, keeps its order.
func (m *Model) newContext(title string, entries []menu.Entry) *uistate.Context {
	if m.sort {
		sorted := make([]menu.Entry, len(entries))
		copy(sorted, entries)
		menu.SortEntries(sorted)
		entries = sorted
	}
	return uistate.NewContext(title, entries)
}

// reflow recomputes the layout for the active context and keeps the
// highlight on a valid row.
func (m *Model) reflow() {
	m.layout = uistate.ComputeLayout(m.active.Entries, m.height, m.multiSelect, m.showFooter)
	m.active.ClampRow(m.layout)
}

// Result returns the session outcome once the program has finished.
func (m *Model) Result() menu.Result { return m.result }

// Err returns the command failure that ended the session, if any.
func (m *Model) Err() error { return m.runErr }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model by dispatching on the message type.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.reflow()
	return nil
}

// seedSize primes the frame with the real terminal dimensions so the
// first render does not happen at zero height. Fixed dimensions from
// Options win.
func (m *Model) seedSize(width, height int) {
	if !m.fixedWidth {
		m.width = width
	}
	if !m.fixedHeight {
		m.height = height
	}
	m.reflow()
}
