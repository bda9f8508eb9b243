package detail

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	nt "jobsheet/entity"
)

func TestViewEmpty(t *testing.T) {
	assert.Equal(t, "No row selected", ansi.Strip(NewDetailPanel().View()))
}

func TestViewRow(t *testing.T) {
	pnl, _ := NewDetailPanel().Update(RowMsg{Index: 2, Row: nt.Row{JobRequest: "Ship <it>", Status: "Complete"}})

	view := ansi.Strip(pnl.View())

	assert.Contains(t, view, "Row 3")
	assert.Contains(t, view, `"jobRequest": "Ship <it>"`)
	assert.Contains(t, view, `"status": "Complete"`)
}

func TestScroll(t *testing.T) {
	pnl, _ := NewDetailPanel().Update(SizeMsg{Width: 80, Height: 4})
	pnl, _ = pnl.Update(RowMsg{Row: nt.Row{JobRequest: "first"}})

	assert.Contains(t, pnl.View(), "jobRequest")

	down := tea.KeyPressMsg{Code: tea.KeyDown}
	for i := 0; i < 20; i++ {
		pnl, _ = pnl.Update(down)
	}

	view := ansi.Strip(pnl.View())
	assert.NotContains(t, view, "jobRequest")
	assert.Contains(t, view, "}")

	pnl, _ = pnl.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.NotContains(t, ansi.Strip(pnl.View()), "}")
}
