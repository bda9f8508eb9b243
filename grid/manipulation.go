package grid

import (
	"maps"
	"slices"
	"strings"
	"time"

	nt "jobsheet/entity"
)

// SelectCell selects coord.
// A newly selected cell enters edit mode with the buffer seeded from its value;
// reselecting the current cell changes nothing.
func (g Grid) SelectCell(coord nt.Coord) Grid {
	if g.IsSelected(coord) || !valid(coord) {
		return g
	}

	g.selected = coord
	g.selection = true
	return g.BeginEdit()
}

// BeginEdit enters edit mode at the selection.
func (g Grid) BeginEdit() Grid {
	if !g.selection {
		return g
	}
	g.editing = true
	g.buffer = g.Value(g.selected)
	return g
}

// CommitEdit writes value into the cell being edited and leaves edit mode.
// Default rows are appended as needed so that the target row exists.
func (g Grid) CommitEdit(value string) Grid {
	if !g.editing {
		return g
	}

	coord := g.selected
	g = g.write()
	for len(g.rows) <= coord.Row {
		g.rows = append(g.rows, nt.DefaultRow())
	}

	key := nt.Columns[coord.Col].Key
	g.rows[coord.Row] = g.rows[coord.Row].Set(key, value)

	g.editing = false
	g.buffer = ""
	return g
}

// Commit commits the edit buffer.
func (g Grid) Commit() Grid {
	return g.CommitEdit(g.buffer)
}

// CancelEdit leaves edit mode, discarding the buffer.
func (g Grid) CancelEdit() Grid {
	g.editing = false
	g.buffer = ""
	return g
}

// DeleteCellValue empties the field at coord.
// It is a no-op while editing or when the row does not exist.
func (g Grid) DeleteCellValue(coord nt.Coord) Grid {
	if g.editing {
		return g
	}
	if !valid(coord) || coord.Row >= len(g.rows) {
		return g
	}

	g = g.write()
	key := nt.Columns[coord.Col].Key
	g.rows[coord.Row] = g.rows[coord.Row].Set(key, "")
	return g
}

// SortBy reorders all rows by the field at key.
// Ascending unless the grid is already ascending on key; ties keep their order.
func (g Grid) SortBy(key nt.Key) Grid {
	desc := g.sorted && g.sort.Key == key && !g.sort.Desc

	g = g.write().CancelEdit()
	slices.SortStableFunc(g.rows, func(a, b nt.Row) int {
		cmp := strings.Compare(a.Get(key), b.Get(key))
		if desc {
			return -cmp
		}
		return cmp
	})

	g.sort = nt.Sort{Key: key, Desc: desc}
	g.sorted = true
	return g
}

// AddRow appends a default row dated today and selects its first visible cell.
func (g Grid) AddRow() Grid {
	now := g.now
	if now == nil {
		now = time.Now
	}

	row := nt.DefaultRow()
	row.Submitted = now().Format(dateFormat)

	g = g.write()
	g.rows = append(g.rows, row)

	g.selected = nt.Coord{Row: len(g.rows) - 1, Col: g.nearestVisible(0)}
	g.selection = true
	return g.CancelEdit()
}

// Append adds rows to the end in one step.
func (g Grid) Append(rows ...nt.Row) Grid {
	if len(rows) == 0 {
		return g
	}
	g = g.write()
	g.rows = append(g.rows, rows...)
	return g
}

// ToggleColumn hides a visible column or shows a hidden one.
// The last visible column stays visible.
func (g Grid) ToggleColumn(key nt.Key) Grid {
	idx := nt.ColumnIndex(key)
	if idx < 0 {
		return g
	}

	hiding := !g.hidden[key]
	if hiding && len(g.VisibleColumns()) == 1 {
		return g
	}

	g.hidden = maps.Clone(g.hidden)
	if g.hidden == nil {
		g.hidden = map[nt.Key]bool{}
	}
	if hiding {
		g.hidden[key] = true
	} else {
		delete(g.hidden, key)
	}

	if hiding && g.selection && g.selected.Col == idx {
		g = g.CancelEdit()
		g.selected.Col = g.nearestVisible(idx)
	}
	return g
}

// unexported

func valid(coord nt.Coord) bool {
	return coord.Row >= 0 && coord.Col >= 0 && coord.Col < len(nt.Columns)
}
