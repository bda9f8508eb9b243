// Package keys maps keypresses onto sheet actions.
package keys

import "charm.land/bubbles/v2/key"

// KeyMap holds the sheet's bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Escape key.Binding
	Delete key.Binding

	First   key.Binding
	AddRow  key.Binding
	Sort    key.Binding
	Columns key.Binding
	Import  key.Binding
	Export  key.Binding
	Detail  key.Binding
	Copy    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit/commit")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Delete: key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "clear")),

		First:   key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first cell")),
		AddRow:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new row")),
		Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Columns: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "columns")),
		Import:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
		Export:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export")),
		Detail:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "row detail")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is shown in the footer.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Enter, km.Escape, km.AddRow, km.Sort, km.Columns, km.Import, km.Export, km.Quit}
}

// FullHelp lists every binding.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right},
		{km.Enter, km.Escape, km.Delete, km.First},
		{km.AddRow, km.Sort, km.Columns, km.Detail},
		{km.Import, km.Export, km.Copy, km.Quit},
	}
}
