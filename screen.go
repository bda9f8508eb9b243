package jobsheet

// Screen indicates which screen is currently displayed
type Screen int

const (
	SheetScreen Screen = iota
	DetailScreen
	ColumnsScreen
	PromptScreen
)
