package piece

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	nt "jobsheet/entity"
)

const maxLength = 256

// Text renders raw text and edits it free form.
type Text struct {
	align nt.Align
}

func (txt Text) Render(value string, width int, state State) string {
	return emphasize(fit(value, width, txt.align), state)
}

func (txt Text) Editor(value string) Editor {
	return NewTextEditor(value)
}

func (txt Text) BlurCommits() bool {
	return true
}

// TextEditor is a single line text input.
type TextEditor struct {
	input textinput.Model
}

func NewTextEditor(value string) TextEditor {

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = maxLength
	input.SetValue(value)
	input.CursorEnd()
	input.Focus()

	return TextEditor{input: input}
}

func (te TextEditor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	var cmd tea.Cmd
	te.input, cmd = te.input.Update(msg)
	return te, cmd
}

func (te TextEditor) Value() string {
	return te.input.Value()
}

func (te TextEditor) View() string {
	return te.input.View()
}
