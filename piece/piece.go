// Package piece renders sheet cells and supplies their editors, one strategy per column kind.
package piece

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	nt "jobsheet/entity"
	"jobsheet/style"
)

// State is how a cell relates to the grid's selection.
type State struct {
	Selected bool
	Editing  bool
}

// Piece is the render and edit strategy for one kind of column.
type Piece interface {
	// Render returns value laid out in width cells, emphasized per state.
	Render(value string, width int, state State) string
	// Editor returns a fresh editor seeded with value.
	Editor(value string) Editor
	// BlurCommits reports whether leaving the editor keeps its value.
	BlurCommits() bool
}

// Editor accepts input for the cell in edit mode.
type Editor interface {
	Update(msg tea.Msg) (Editor, tea.Cmd)
	Value() string
	View() string
}

// For returns the piece for kind.
func For(kind nt.Kind) Piece {
	switch kind {
	case nt.KindStatus:
		return Choice{options: nt.StatusOptions, styles: style.StatusStyles, align: kind.Align()}
	case nt.KindPriority:
		return Choice{options: nt.PriorityOptions, styles: style.PriorityStyles, align: kind.Align()}
	case nt.KindURL:
		return Link{}
	}
	return Text{align: kind.Align()}
}

// RenderEditor lays out an editor's view in the editing cell.
func RenderEditor(view string, width int) string {
	return emphasize(fit(view, width, nt.AlignLeft), State{Selected: true, Editing: true})
}

// unexported

// fit truncates in to width and pads it per align.
func fit(in string, width int, align nt.Align) string {
	if width <= 0 {
		return ""
	}

	out := ansi.Truncate(in, width, "…")
	pad := width - lipgloss.Width(out)
	if pad <= 0 {
		return out
	}

	switch align {
	case nt.AlignRight:
		return spaces(pad) + out
	case nt.AlignCenter:
		return spaces(pad/2) + out + spaces(pad-pad/2)
	}
	return out + spaces(pad)
}

func emphasize(cell string, state State) string {
	switch {
	case state.Editing:
		return style.EditingStyle.Render(cell)
	case state.Selected:
		return style.SelectedStyle.Render(cell)
	}
	return cell
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
