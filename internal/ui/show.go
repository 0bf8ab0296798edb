package ui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/he3als/windows-no-usb/internal/menu"
)

// Show runs one interactive menu session and blocks until it ends.
// Input is normalized first, so unsupported shapes fail before anything
// is drawn, and hosts without an interactive terminal are rejected with
// menu.ErrNotInteractive. Command failures from the session's invoker
// come back unmodified.
func Show(entries any, opts menu.Options) (menu.Result, error) {
	normalized, err := menu.Normalize(entries)
	if err != nil {
		return menu.Result{}, err
	}
	if !interactiveTerminal() {
		return menu.Result{}, menu.ErrNotInteractive
	}
	model := NewModel(normalized, opts)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		model.seedSize(w, h)
	}
	final, err := tea.NewProgram(model).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return menu.Result{Canceled: true}, nil
	}
	if err != nil {
		return menu.Result{}, err
	}
	finished, ok := final.(*Model)
	if !ok {
		return menu.Result{}, fmt.Errorf("unexpected final model %T", final)
	}
	if finished.runErr != nil {
		return menu.Result{}, finished.runErr
	}
	return finished.result, nil
}

// interactiveTerminal reports whether both ends of the session can talk
// to a real terminal.
func interactiveTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
