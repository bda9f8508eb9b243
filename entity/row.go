package entity

// Row is one job request, nine free-text fields in column order.
type Row struct {
	JobRequest string `json:"jobRequest"`
	Submitted  string `json:"submitted"`
	Status     string `json:"status"`
	Submitter  string `json:"submitter"`
	URL        string `json:"url"`
	Assigned   string `json:"assigned"`
	Priority   string `json:"priority"`
	DueDate    string `json:"dueDate"`
	Extract    string `json:"extract"`
}

var (
	StatusOptions   = []string{"In-process", "Need to start", "Complete", "Blocked"}
	PriorityOptions = []string{"High", "Medium", "Low"}
)

// DefaultRow returns the row used to fill gaps when an edit lands past the end.
func DefaultRow() Row {
	return Row{
		Status:   "Need to start",
		Priority: "Medium",
	}
}

// Get returns the field named by key, or "" for an unknown key.
func (row Row) Get(key Key) string {
	if ptr := row.field(key); ptr != nil {
		return *ptr
	}
	return ""
}

// Set returns a copy of row with the field named by key set to value.
func (row Row) Set(key Key, value string) Row {
	if ptr := row.field(key); ptr != nil {
		*ptr = value
	}
	return row
}

// Values returns the fields in column order.
func (row Row) Values() []string {
	values := make([]string, len(Columns))
	for i, col := range Columns {
		values[i] = row.Get(col.Key)
	}
	return values
}

// unexported

func (row *Row) field(key Key) *string {
	switch key {
	case JobRequest:
		return &row.JobRequest
	case Submitted:
		return &row.Submitted
	case Status:
		return &row.Status
	case Submitter:
		return &row.Submitter
	case URL:
		return &row.URL
	case Assigned:
		return &row.Assigned
	case Priority:
		return &row.Priority
	case DueDate:
		return &row.DueDate
	case Extract:
		return &row.Extract
	}
	return nil
}
