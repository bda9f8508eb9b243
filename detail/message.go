package detail

import nt "jobsheet/entity"

type SizeMsg struct {
	Width  int
	Height int
}

// RowMsg sets the row on display; Index is zero based.
type RowMsg struct {
	Index int
	Row   nt.Row
}
