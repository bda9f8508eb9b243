package grid

import (
	nt "jobsheet/entity"
)

// MoveSelection moves the selection one step, leaving edit mode without committing.
// Rows are clamped to [0, max(Len-1, 20)], columns to the visible ones.
func (g Grid) MoveSelection(dir nt.Direction) Grid {
	if !g.selection {
		return g
	}

	coord := g.selected
	switch dir {
	case nt.Up:
		if coord.Row > 0 {
			coord.Row--
		}
	case nt.Down:
		if coord.Row < g.maxRow() {
			coord.Row++
		}
	case nt.Left:
		coord.Col = g.stepCol(coord.Col, -1)
	case nt.Right:
		coord.Col = g.stepCol(coord.Col, 1)
	}

	g.selected = coord
	g.editing = false
	g.buffer = ""
	return g
}

// unexported

func (g Grid) maxRow() int {
	return max(len(g.rows)-1, navRows)
}

// stepCol returns the next visible column from col in step's direction,
// or col itself at the edge.
func (g Grid) stepCol(col, step int) int {
	for next := col + step; next >= 0 && next < len(nt.Columns); next += step {
		if !g.hidden[nt.Columns[next].Key] {
			return next
		}
	}
	return col
}

// nearestVisible returns col if visible, else the closest visible column.
func (g Grid) nearestVisible(col int) int {
	if !g.hidden[nt.Columns[col].Key] {
		return col
	}
	if right := g.stepCol(col, 1); right != col {
		return right
	}
	return g.stepCol(col, -1)
}
