package message

import (
	nt "jobsheet/entity"
	"jobsheet/transfer"
)

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// StatusMsg carries a line of feedback for the footer
type StatusMsg struct {
	Text string
}

// ImportedMsg carries the rows read from a file, appended in one step
type ImportedMsg struct {
	Path     string
	Rows     []nt.Row
	Problems []transfer.ParseError
}

// ExportedMsg signals a file was written
type ExportedMsg struct {
	Path  string
	Count int
}

// CopiedMsg signals a cell value went to the clipboard
type CopiedMsg struct {
	Value string
}

// Purpose is what a file prompt is for.
type Purpose int

const (
	Import Purpose = iota
	Export
)
