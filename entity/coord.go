package entity

// Coord addresses one field of one row.
// Col indexes Columns; Row may lie past the end of the grid.
type Coord struct {
	Row int
	Col int
}

// Direction is a one-step move of the selection.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Sort represents a sort directive over one column.
type Sort struct {
	Key  Key  // Field to sort by
	Desc bool // Sort descending if true, ascending if false
}
