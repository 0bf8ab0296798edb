package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes the reusable Lip Gloss styles shared across the UI.
// The highlighted row swaps foreground and background rather than using
// a palette of its own, so menus stay readable on any terminal scheme.
type Styles struct {
	Header                *lipgloss.Style
	PageInfo              *lipgloss.Style
	Item                  *lipgloss.Style
	SelectedItem          *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	Footer                *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	FormPrompt            *lipgloss.Style
	FormHelp              *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	PageInfo: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Reverse(true),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Reverse(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FormPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FormHelp: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
