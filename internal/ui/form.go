package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/he3als/windows-no-usb/internal/menu"
)

// FormSpec configures a one-line text prompt.
type FormSpec struct {
	Title       string
	Placeholder string
	Initial     string
	CharLimit   int
	Help        string
	// Validate returns a user-facing message for a rejected value, or ""
	// to accept it. Validation runs while typing and again on Enter.
	Validate func(string) string
}

// Form is an inline text prompt. The setup flow uses it for paths and
// drive letters that were not supplied as flags.
type Form struct {
	input    textinput.Model
	title    string
	help     string
	validate func(string) string
	err      string
}

// NewForm builds the prompt with the input focused.
func NewForm(spec FormSpec) *Form {
	ti := textinput.New()
	ti.Placeholder = spec.Placeholder
	ti.CharLimit = 128
	if spec.CharLimit > 0 {
		ti.CharLimit = spec.CharLimit
	}
	if spec.Initial != "" {
		ti.SetValue(spec.Initial)
	}
	if styles.FormPrompt != nil {
		ti.PromptStyle = *styles.FormPrompt
	}
	ti.Focus()
	help := spec.Help
	if help == "" {
		help = "Press Enter to accept. Esc to cancel."
	}
	form := &Form{
		input:    ti,
		title:    spec.Title,
		help:     help,
		validate: spec.Validate,
	}
	form.err = form.check(form.Value())
	return form
}

// Value returns the trimmed input text.
func (f *Form) Value() string { return strings.TrimSpace(f.input.Value()) }

// Error returns the current validation message, if any.
func (f *Form) Error() string { return f.err }

// Title returns the prompt title.
func (f *Form) Title() string { return f.title }

// InputView renders the text input row.
func (f *Form) InputView() string { return f.input.View() }

// Update advances the form and reports whether it finished: done means
// the value was accepted, cancel means the user backed out.
func (f *Form) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
				f.err = f.check("")
			}
			return nil, false, false
		}
		switch m.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return nil, false, true
		case tea.KeyEnter:
			value := f.Value()
			if problem := f.check(value); problem != "" {
				f.err = problem
				return nil, false, false
			}
			f.err = ""
			return nil, true, false
		}
	}

	updated, cmd := f.input.Update(msg)
	f.input = updated
	f.err = f.check(f.Value())
	return cmd, false, false
}

func (f *Form) check(value string) string {
	if f.validate == nil {
		return ""
	}
	return f.validate(value)
}

// promptModel hosts a Form in its own program so prompts can run outside
// a menu session.
type promptModel struct {
	form     *Form
	accepted bool
	canceled bool
}

func (p *promptModel) Init() tea.Cmd { return textinput.Blink }

func (p *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, done, cancel := p.form.Update(msg)
	if cancel {
		p.canceled = true
		return p, tea.Quit
	}
	if done {
		p.accepted = true
		return p, tea.Quit
	}
	return p, cmd
}

func (p *promptModel) View() string {
	lines := []string{}
	if title := p.form.Title(); title != "" {
		text := title
		if styles.Header != nil {
			text = styles.Header.Render(text)
		}
		lines = append(lines, text)
	}
	lines = append(lines, "", p.form.InputView())
	if err := p.form.Error(); err != "" {
		line := err
		if styles.Error != nil {
			line = styles.Error.Render(line)
		}
		lines = append(lines, "", line)
	}
	help := p.form.help
	if styles.FormHelp != nil {
		help = styles.FormHelp.Render(help)
	}
	lines = append(lines, "", help)
	return strings.Join(lines, "\n")
}

// Prompt runs the form inline and returns the accepted value; ok is
// false when the user canceled.
func Prompt(spec FormSpec) (string, bool, error) {
	if !interactiveTerminal() {
		return "", false, menu.ErrNotInteractive
	}
	model := &promptModel{form: NewForm(spec)}
	final, err := tea.NewProgram(model).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	finished, ok := final.(*promptModel)
	if !ok || finished.canceled {
		return "", false, nil
	}
	return finished.form.Value(), true, nil
}
