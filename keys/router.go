package keys

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	nt "jobsheet/entity"
)

// Verb is what a keypress asks of the grid.
type Verb int

const (
	Ignore Verb = iota
	Move
	Commit
	BeginEdit
	Cancel
	Clear
)

// Action is a routed keypress.
type Action struct {
	Verb Verb
	Dir  nt.Direction // Only for Move
}

// Route translates a keypress into an action against the selected cell.
// It applies only while a cell is selected; anything unrouted is Ignore and
// left for the focused editor.
func (km KeyMap) Route(msg tea.KeyPressMsg, editing bool) Action {

	switch {
	case key.Matches(msg, km.Up):
		return Action{Verb: Move, Dir: nt.Up}
	case key.Matches(msg, km.Down):
		return Action{Verb: Move, Dir: nt.Down}
	case key.Matches(msg, km.Left):
		return Action{Verb: Move, Dir: nt.Left}
	case key.Matches(msg, km.Right):
		return Action{Verb: Move, Dir: nt.Right}

	case key.Matches(msg, km.Enter):
		if editing {
			return Action{Verb: Commit}
		}
		return Action{Verb: BeginEdit}

	case key.Matches(msg, km.Escape):
		return Action{Verb: Cancel}

	case key.Matches(msg, km.Delete):
		if !editing {
			return Action{Verb: Clear}
		}
	}

	return Action{Verb: Ignore}
}
