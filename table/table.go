package table

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/x/ansi"

	nt "jobsheet/entity"
	"jobsheet/grid"
	"jobsheet/piece"
	"jobsheet/style"
)

const (
	headerHeight = 2  // Header row + separator line
	minRows      = 13 // Rows shown however few hold data
	gap          = 1  // Space after each cell
)

// SheetPanel draws the grid as a table and maps screen positions back to cells.
type SheetPanel struct {
	offset int // First row shown

	width  int
	height int

	widths []int // Per column, indexed like nt.Columns
	table  *table.Table
}

// NewSheetPanel creates a panel; widths override column widths where positive.
func NewSheetPanel(widths map[nt.Key]int) SheetPanel {

	lgt := table.New()
	style.StyleTable(lgt)

	colWidths := make([]int, len(nt.Columns))
	for i, col := range nt.Columns {
		colWidths[i] = col.Width
		if w := widths[col.Key]; w > 0 {
			colWidths[i] = w
		}
	}

	return SheetPanel{
		widths: colWidths,
		table:  lgt,
	}
}

func (pnl SheetPanel) Update(msg tea.Msg) (SheetPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
	}
	return pnl, nil
}

// Follow scrolls so the selected row is on the page.
func (pnl SheetPanel) Follow(g grid.Grid) SheetPanel {

	coord, ok := g.Selected()
	if !ok {
		return pnl
	}

	pageSize := pnl.PageSize()
	if pageSize <= 0 {
		return pnl
	}

	if coord.Row < pnl.offset {
		pnl.offset = coord.Row
	} else if coord.Row >= pnl.offset+pageSize {
		pnl.offset = coord.Row - pageSize + 1
	}
	return pnl
}

// PageSize returns the number of rows that fit on panel
func (pnl SheetPanel) PageSize() int {
	return pnl.height - headerHeight
}

// Offset returns the first row shown.
func (pnl SheetPanel) Offset() int {
	return pnl.offset
}

// Render draws the page of g at the panel's offset.
// editorView is drawn in place of the cell being edited.
func (pnl SheetPanel) Render(g grid.Grid, editorView string) string {

	visible := g.VisibleColumns()
	total := displayRows(g)
	gutter := gutterWidth(total)

	headers := []string{style.GutterStyle.Render(pad("#", gutter))}
	srt, sorted := g.Sort()
	for _, idx := range visible {
		col := nt.Columns[idx]
		label := col.Label
		if sorted && srt.Key == col.Key {
			label += " " + style.SortStyle.Render(arrow(srt.Desc))
		}
		headers = append(headers, style.HeaderStyle.Render(pad(label, pnl.widths[idx]+gap)))
	}
	pnl.table.Headers(headers...)

	last := total
	if pageSize := pnl.PageSize(); pageSize > 0 && pnl.offset+pageSize < last {
		last = pnl.offset + pageSize
	}

	pnl.table.ClearRows()
	for r := pnl.offset; r < last; r++ {
		cells := []string{style.GutterStyle.Render(pad(strconv.Itoa(r+1), gutter))}
		for _, idx := range visible {
			cells = append(cells, pnl.cell(g, nt.Coord{Row: r, Col: idx}, editorView))
		}
		pnl.table.Row(cells...)
	}

	return pnl.table.Render()
}

// CellAt returns the cell drawn at x, y relative to the panel.
func (pnl SheetPanel) CellAt(g grid.Grid, x, y int) (coord nt.Coord, ok bool) {

	if y < headerHeight {
		return
	}

	if pageSize := pnl.PageSize(); pageSize > 0 && y-headerHeight >= pageSize {
		return
	}

	row := pnl.offset + y - headerHeight
	if row >= displayRows(g) {
		return
	}

	col, ok := pnl.columnAt(g, x)
	if !ok {
		return
	}
	return nt.Coord{Row: row, Col: col}, true
}

// HeaderAt returns the column whose header is drawn at x, y.
func (pnl SheetPanel) HeaderAt(g grid.Grid, x, y int) (key nt.Key, ok bool) {

	if y != 0 {
		return
	}

	col, ok := pnl.columnAt(g, x)
	if !ok {
		return
	}
	return nt.Columns[col].Key, true
}

// unexported

func (pnl SheetPanel) cell(g grid.Grid, coord nt.Coord, editorView string) string {

	width := pnl.widths[coord.Col]
	if g.IsEditing(coord) {
		return piece.RenderEditor(editorView, width) + pad("", gap)
	}

	state := piece.State{Selected: g.IsSelected(coord)}
	pc := piece.For(nt.Columns[coord.Col].Kind)
	return pc.Render(g.Value(coord), width, state) + pad("", gap)
}

func (pnl SheetPanel) columnAt(g grid.Grid, x int) (col int, ok bool) {

	left := gutterWidth(displayRows(g))
	if x < left {
		return
	}

	for _, idx := range g.VisibleColumns() {
		right := left + pnl.widths[idx] + gap
		if x < right {
			return idx, true
		}
		left = right
	}
	return
}

// displayRows is how many rows the sheet shows, selection included.
func displayRows(g grid.Grid) int {

	rows := max(g.Len(), minRows)
	if coord, ok := g.Selected(); ok {
		rows = max(rows, coord.Row+1)
	}
	return rows
}

func gutterWidth(rows int) int {
	return len(strconv.Itoa(rows)) + gap
}

// pad truncates in to width display cells and pads it on the right.
func pad(in string, width int) string {
	out := ansi.Truncate(in, width, "…")
	if fill := width - lipgloss.Width(out); fill > 0 {
		out += strings.Repeat(" ", fill)
	}
	return out
}

func arrow(desc bool) string {
	if desc {
		return "↓"
	}
	return "↑"
}
