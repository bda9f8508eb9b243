package entity

import "strings"

// Key names a Row field, matching its json key.
type Key string

const (
	JobRequest Key = "jobRequest"
	Submitted  Key = "submitted"
	Status     Key = "status"
	Submitter  Key = "submitter"
	URL        Key = "url"
	Assigned   Key = "assigned"
	Priority   Key = "priority"
	DueDate    Key = "dueDate"
	Extract    Key = "extract"
)

// Kind is a rendering hint for a column.
type Kind int

const (
	KindText Kind = iota
	KindDate
	KindNumber
	KindStatus
	KindPriority
	KindURL
)

// Align is the horizontal placement of a cell's text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Align returns where values of this kind sit in a cell.
func (kind Kind) Align() Align {
	switch kind {
	case KindDate, KindNumber:
		return AlignRight
	case KindStatus, KindPriority:
		return AlignCenter
	}
	return AlignLeft
}

// Column describes one field of a Row as shown in the sheet.
type Column struct {
	Key   Key
	Label string
	Kind  Kind
	Width int
}

// Columns is fixed; its order defines column index.
var Columns = []Column{
	{Key: JobRequest, Label: "Job Request", Kind: KindText, Width: 28},
	{Key: Submitted, Label: "Submitted", Kind: KindDate, Width: 11},
	{Key: Status, Label: "Status", Kind: KindStatus, Width: 14},
	{Key: Submitter, Label: "Submitter", Kind: KindText, Width: 14},
	{Key: URL, Label: "URL", Kind: KindURL, Width: 22},
	{Key: Assigned, Label: "Assigned", Kind: KindText, Width: 16},
	{Key: Priority, Label: "Priority", Kind: KindPriority, Width: 8},
	{Key: DueDate, Label: "Due Date", Kind: KindDate, Width: 11},
	{Key: Extract, Label: "Est. Value", Kind: KindNumber, Width: 11},
}

// ColumnIndex returns the index of the column with key, or -1.
func ColumnIndex(key Key) int {
	for i, col := range Columns {
		if col.Key == key {
			return i
		}
	}
	return -1
}

// LabelIndex looks up a column by label, ignoring case and surrounding space.
func LabelIndex(label string) int {
	label = strings.TrimSpace(label)
	for i, col := range Columns {
		if strings.EqualFold(col.Label, label) {
			return i
		}
	}
	return -1
}

// Labels returns the column labels in order.
func Labels() []string {
	labels := make([]string, len(Columns))
	for i, col := range Columns {
		labels[i] = col.Label
	}
	return labels
}
