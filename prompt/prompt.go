// Package prompt asks for a file path on one line.
package prompt

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"jobsheet/message"
	"jobsheet/style"
)

// SubmitMsg carries the path entered, possibly empty
type SubmitMsg struct {
	Purpose message.Purpose
	Path    string
}

// CancelMsg is sent when the prompt is dismissed without a path
type CancelMsg struct{}

// FilePrompt is a titled path input.
type FilePrompt struct {
	purpose message.Purpose
	title   string
	input   textinput.Model
}

func New(purpose message.Purpose, title, value string) FilePrompt {

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "path/to/file"
	input.SetValue(value)
	input.CursorEnd()
	input.Focus()

	return FilePrompt{
		purpose: purpose,
		title:   title,
		input:   input,
	}
}

func (fp FilePrompt) Update(msg tea.Msg) (FilePrompt, tea.Cmd) {

	if press, ok := msg.(tea.KeyPressMsg); ok {
		switch press.String() {
		case "enter":
			submit := SubmitMsg{Purpose: fp.purpose, Path: fp.input.Value()}
			return fp, func() tea.Msg { return submit }
		case "esc":
			return fp, func() tea.Msg { return CancelMsg{} }
		}
	}

	var cmd tea.Cmd
	fp.input, cmd = fp.input.Update(msg)
	return fp, cmd
}

// Purpose returns what the prompt was opened for.
func (fp FilePrompt) Purpose() message.Purpose {
	return fp.purpose
}

func (fp FilePrompt) View() string {
	hint := style.MutedStyle.Render("enter confirm • esc cancel")
	return style.HeaderStyle.Render(fp.title) + "\n" + fp.input.View() + "\n" + hint
}
