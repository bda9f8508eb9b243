package table

// SizeMsg gives the panel its share of the screen.
type SizeMsg struct {
	Width  int
	Height int
}
