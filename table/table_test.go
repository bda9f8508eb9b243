package table

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "jobsheet/entity"
	"jobsheet/grid"
)

func sheet() grid.Grid {
	return grid.New([]nt.Row{
		{JobRequest: "Launch campaign", Submitted: "15-11-2024", Status: "In-process", Priority: "Medium"},
		{JobRequest: "Press kit", Submitted: "28-10-2024", Status: "Need to start", Priority: "High"},
	})
}

func TestRenderShowsMinimumRows(t *testing.T) {
	pnl := NewSheetPanel(nil)

	plain := ansi.Strip(pnl.Render(sheet(), ""))

	assert.Contains(t, plain, "Job Request")
	assert.Contains(t, plain, "Est. Value")
	assert.Contains(t, plain, "Launch campaign")
	assert.Contains(t, plain, "13")
	assert.NotContains(t, plain, "14 ")
}

func TestRenderSortMarker(t *testing.T) {
	pnl := NewSheetPanel(nil)

	plain := ansi.Strip(pnl.Render(sheet().SortBy(nt.JobRequest), ""))
	assert.Contains(t, plain, "Job Request ↑")

	plain = ansi.Strip(pnl.Render(sheet().SortBy(nt.JobRequest).SortBy(nt.JobRequest), ""))
	assert.Contains(t, plain, "Job Request ↓")
}

func TestRenderHidesColumns(t *testing.T) {
	pnl := NewSheetPanel(nil)

	plain := ansi.Strip(pnl.Render(sheet().ToggleColumn(nt.URL), ""))

	assert.NotContains(t, plain, "URL")
	assert.Contains(t, plain, "Assigned")
}

func TestRenderEditor(t *testing.T) {
	pnl := NewSheetPanel(nil)
	g := sheet().SelectCell(nt.Coord{Row: 1, Col: 0})

	plain := ansi.Strip(pnl.Render(g, "Press kit v2"))

	assert.Contains(t, plain, "Press kit v2")
}

func TestRenderPage(t *testing.T) {
	pnl, _ := NewSheetPanel(nil).Update(SizeMsg{Width: 200, Height: headerHeight + 5})
	g := sheet().SelectCell(nt.Coord{Row: 9, Col: 0}).CancelEdit()

	pnl = pnl.Follow(g)
	assert.Equal(t, 5, pnl.Offset())

	lines := strings.Split(strings.TrimRight(ansi.Strip(pnl.Render(g, "")), "\n"), "\n")
	require.Len(t, lines, headerHeight+5)
	assert.True(t, strings.HasPrefix(lines[2], "6 "), lines[2])
	assert.True(t, strings.HasPrefix(lines[6], "10"), lines[6])
}

func TestWidthOverride(t *testing.T) {
	pnl := NewSheetPanel(map[nt.Key]int{nt.JobRequest: 5})

	plain := ansi.Strip(pnl.Render(sheet(), ""))

	assert.Contains(t, plain, "Laun…")
}

func TestCellAt(t *testing.T) {
	pnl := NewSheetPanel(nil)
	g := sheet()
	gutter := 3
	first := nt.Columns[0].Width + gap

	coord, ok := pnl.CellAt(g, gutter, headerHeight)
	require.True(t, ok)
	assert.Equal(t, nt.Coord{Row: 0, Col: 0}, coord)

	coord, ok = pnl.CellAt(g, gutter+first, headerHeight+4)
	require.True(t, ok)
	assert.Equal(t, nt.Coord{Row: 4, Col: 1}, coord)

	_, ok = pnl.CellAt(g, 0, headerHeight)
	assert.False(t, ok, "gutter")
	_, ok = pnl.CellAt(g, gutter, 1)
	assert.False(t, ok, "separator")
	_, ok = pnl.CellAt(g, gutter, headerHeight+13)
	assert.False(t, ok, "past last row")
	_, ok = pnl.CellAt(g, 10000, headerHeight)
	assert.False(t, ok, "past last column")
}

func TestCellAtBelowPage(t *testing.T) {
	pnl, _ := NewSheetPanel(nil).Update(SizeMsg{Width: 160, Height: headerHeight + 5})
	g := sheet()

	coord, ok := pnl.CellAt(g, 3, headerHeight+4)
	require.True(t, ok)
	assert.Equal(t, nt.Coord{Row: 4, Col: 0}, coord)

	_, ok = pnl.CellAt(g, 3, headerHeight+5)
	assert.False(t, ok, "first line under the page")
	_, ok = pnl.CellAt(g, 3, headerHeight+8)
	assert.False(t, ok, "footer")
	assert.Equal(t, 0, pnl.Offset())
}

func TestCellAtSkipsHidden(t *testing.T) {
	pnl := NewSheetPanel(nil)
	g := sheet().ToggleColumn(nt.Submitted)
	x := 3 + nt.Columns[0].Width + gap

	coord, ok := pnl.CellAt(g, x, headerHeight)
	require.True(t, ok)
	assert.Equal(t, nt.ColumnIndex(nt.Status), coord.Col)
}

func TestHeaderAt(t *testing.T) {
	pnl := NewSheetPanel(nil)

	key, ok := pnl.HeaderAt(sheet(), 3, 0)
	require.True(t, ok)
	assert.Equal(t, nt.JobRequest, key)

	_, ok = pnl.HeaderAt(sheet(), 3, 2)
	assert.False(t, ok)
}
