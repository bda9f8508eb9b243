// Package picker is a checkbox list for showing and hiding columns.
package picker

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	nt "jobsheet/entity"
	"jobsheet/style"
)

// ToggleMsg asks for a column to be hidden or shown
type ToggleMsg struct {
	Key nt.Key
}

// DoneMsg is sent when the picker is dismissed
type DoneMsg struct{}

// ColumnPicker lists every column with a checkbox for its visibility.
type ColumnPicker struct {
	cursor int
}

func New() ColumnPicker {
	return ColumnPicker{}
}

func (pkr ColumnPicker) Update(msg tea.Msg) (ColumnPicker, tea.Cmd) {

	press, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return pkr, nil
	}

	switch press.String() {
	case "up", "k":
		if pkr.cursor > 0 {
			pkr.cursor--
		}

	case "down", "j":
		if pkr.cursor < len(nt.Columns)-1 {
			pkr.cursor++
		}

	case "space", " ", "enter", "t":
		key := nt.Columns[pkr.cursor].Key
		return pkr, func() tea.Msg {
			return ToggleMsg{Key: key}
		}

	case "esc", "c":
		return pkr, func() tea.Msg {
			return DoneMsg{}
		}
	}

	return pkr, nil
}

// Cursor returns the index of the highlighted column.
func (pkr ColumnPicker) Cursor() int {
	return pkr.cursor
}

// View renders the list; hidden reports each column's state.
func (pkr ColumnPicker) View(hidden func(nt.Key) bool) string {

	lines := []string{style.HeaderStyle.Render("Columns")}
	for i, col := range nt.Columns {
		line := checkbox(!hidden(col.Key)) + " " + col.Label
		if i == pkr.cursor {
			line = style.SelectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, style.MutedStyle.Render("space toggle • esc done"))

	return strings.Join(lines, "\n")
}

// unexported

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
