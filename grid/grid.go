// Package grid holds the rows of a sheet along with its selection and edit state.
package grid

import (
	"slices"
	"time"

	nt "jobsheet/entity"
)

const (
	// navRows is the lowest row the selection may always reach, data or no.
	navRows    = 20
	dateFormat = "02-01-2006"
)

// Grid is the sheet's state holder.
// Grid is designed for immutable use in bubbletea/Elm architecture:
// - every operation returns a new Grid
// - the rows slice is cloned before any write, so older Grids stay valid
type Grid struct {
	rows []nt.Row

	selected  nt.Coord
	selection bool // Whether selected is meaningful
	editing   bool // Edit mode is always at selected
	buffer    string

	sort   nt.Sort
	sorted bool

	hidden map[nt.Key]bool

	now func() time.Time
}

// New creates a grid over rows with nothing selected.
func New(rows []nt.Row) Grid {
	return Grid{
		rows:   slices.Clone(rows),
		hidden: map[nt.Key]bool{},
		now:    time.Now,
	}
}

// WithClock returns a grid that dates new rows with now.
func (g Grid) WithClock(now func() time.Time) Grid {
	g.now = now
	return g
}

// Rows returns a copy of the rows.
func (g Grid) Rows() []nt.Row {
	return slices.Clone(g.rows)
}

// Len returns the number of rows.
func (g Grid) Len() int {
	return len(g.rows)
}

// Row returns the row at idx, ok is false past the end.
func (g Grid) Row(idx int) (row nt.Row, ok bool) {
	if idx < 0 || idx >= len(g.rows) {
		return
	}
	return g.rows[idx], true
}

// Value returns the value at coord, "" when the row does not exist.
func (g Grid) Value(coord nt.Coord) string {
	row, ok := g.Row(coord.Row)
	if !ok || coord.Col < 0 || coord.Col >= len(nt.Columns) {
		return ""
	}
	return row.Get(nt.Columns[coord.Col].Key)
}

// Selected returns the selected coordinate, ok is false when nothing is selected.
func (g Grid) Selected() (coord nt.Coord, ok bool) {
	return g.selected, g.selection
}

// Editing returns the coordinate in edit mode, if any.
func (g Grid) Editing() (coord nt.Coord, ok bool) {
	if !g.editing {
		return
	}
	return g.selected, true
}

// IsSelected reports whether coord is the selection.
func (g Grid) IsSelected(coord nt.Coord) bool {
	return g.selection && g.selected == coord
}

// IsEditing reports whether coord is in edit mode.
func (g Grid) IsEditing(coord nt.Coord) bool {
	return g.editing && g.selected == coord
}

// Buffer returns the text being edited.
func (g Grid) Buffer() string {
	return g.buffer
}

// SetBuffer replaces the text being edited, no-op outside edit mode.
func (g Grid) SetBuffer(value string) Grid {
	if g.editing {
		g.buffer = value
	}
	return g
}

// Sort returns the last sort applied.
func (g Grid) Sort() (sort nt.Sort, ok bool) {
	return g.sort, g.sorted
}

// Hidden reports whether the column with key is hidden.
func (g Grid) Hidden(key nt.Key) bool {
	return g.hidden[key]
}

// VisibleColumns returns the indexes of columns not hidden, in order.
func (g Grid) VisibleColumns() []int {
	visible := make([]int, 0, len(nt.Columns))
	for i, col := range nt.Columns {
		if !g.hidden[col.Key] {
			visible = append(visible, i)
		}
	}
	return visible
}

// unexported

// write returns a grid whose rows may be modified without touching g's.
func (g Grid) write() Grid {
	g.rows = slices.Clone(g.rows)
	return g
}
