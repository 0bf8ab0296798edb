// Package ui contains the Bubble Tea program that powers the selection
// menus of the installer. The Model type focuses on message
// orchestration, while dedicated helpers own navigation, rendering, and
// command execution.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so
//     every tea.Msg kind is handled by one focused function: key presses
//     go to the navigation helpers, resize messages reflow the layout.
//   - Key handling is strictly one transition per key press. Commands
//     attached to entries run synchronously inside the handler, so by
//     the time Update returns, the session state already reflects the
//     command's outcome. There are no loading states and no messages in
//     flight between transitions.
//
// State ownership:
//   - Menu state lives in internal/ui/state: a Context per menu level
//     (entries plus page/row position), a Layout derived from the active
//     entry set and the terminal geometry, and a History stack of
//     suspended ancestor contexts. Exactly one context is active at any
//     time.
//   - Entry construction and input normalization live in internal/menu,
//     which the session only reads.
//   - Command execution goes through internal/ui/command.Bus, which
//     wraps the host-provided invoker with trace logging.
//
// Show is the package's entry point: it normalizes input, refuses hosts
// without an interactive terminal, and runs the program inline so the
// menu shares the screen with ordinary command output instead of taking
// over the whole terminal.
package ui
