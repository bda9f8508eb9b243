package jobsheet

import (
	"github.com/atotto/clipboard"
	"github.com/pkg/errors"

	tea "charm.land/bubbletea/v2"

	"jobsheet/message"
)

// importCmd reads rows from path
func (m Model) importCmd(path string) tea.Cmd {

	ctx, lgr := m.ctx, m.logger
	return func() tea.Msg {

		result, err := ReadRows(ctx, lgr, path)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		return message.ImportedMsg{
			Path:     path,
			Rows:     result.Rows,
			Problems: result.Problems,
		}
	}
}

// exportCmd writes the current rows to path
func (m Model) exportCmd(path string) tea.Cmd {

	ctx, lgr := m.ctx, m.logger
	rows := m.grid.Rows()
	return func() tea.Msg {

		err := WriteRows(ctx, lgr, path, rows)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		return message.ExportedMsg{Path: path, Count: len(rows)}
	}
}

// copyCmd puts value on the system clipboard
func copyCmd(value string) tea.Cmd {

	return func() tea.Msg {

		err := clipboard.WriteAll(value)
		if err != nil {
			return message.ErrorMsg{Err: errors.Wrapf(err, "failed to copy to clipboard")}
		}

		return message.CopiedMsg{Value: value}
	}
}
