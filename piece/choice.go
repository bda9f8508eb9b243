package piece

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "jobsheet/entity"
	"jobsheet/style"
)

// Choice renders a value from a closed set with a per value style.
// Values outside the set render unstyled.
type Choice struct {
	options []string
	styles  map[string]lipgloss.Style
	align   nt.Align
}

func (ch Choice) Render(value string, width int, state State) string {

	label := value
	if st, ok := ch.styles[value]; ok {
		label = st.Render(value)
	}
	return emphasize(fit(label, width, ch.align), state)
}

func (ch Choice) Editor(value string) Editor {
	return NewChooser(ch.options, value)
}

func (ch Choice) BlurCommits() bool {
	return false
}

// Options returns the closed set of values.
func (ch Choice) Options() []string {
	return ch.options
}

// Chooser cycles through a list of options.
// Space moves to the next; a digit picks that option, to be committed
// in the same update.
type Chooser struct {
	options  []string
	selected int
	picked   bool
}

func NewChooser(options []string, current string) Chooser {

	selected := 0
	for i, opt := range options {
		if opt == current {
			selected = i
		}
	}

	return Chooser{
		options:  options,
		selected: selected,
	}
}

func (ch Chooser) Update(msg tea.Msg) (Editor, tea.Cmd) {

	press, ok := msg.(tea.KeyPressMsg)
	if !ok || len(ch.options) == 0 {
		return ch, nil
	}

	switch press.String() {
	case "space", " ", "tab":
		ch.selected = (ch.selected + 1) % len(ch.options)
		return ch, nil
	case "shift+tab":
		ch.selected = (ch.selected + len(ch.options) - 1) % len(ch.options)
		return ch, nil
	}

	idx, err := strconv.Atoi(press.String())
	if err != nil || idx < 1 || idx > len(ch.options) {
		return ch, nil
	}

	ch.selected = idx - 1
	ch.picked = true
	return ch, nil
}

// Picked reports whether a digit chose the value outright.
func (ch Chooser) Picked() bool {
	return ch.picked
}

func (ch Chooser) Value() string {
	if ch.selected < 0 || ch.selected >= len(ch.options) {
		return ""
	}
	return ch.options[ch.selected]
}

func (ch Chooser) SelectedIndex() int {
	return ch.selected
}

func (ch Chooser) View() string {
	if len(ch.options) == 0 {
		return "?"
	}
	return fmt.Sprintf("%d/%d %s ▾", ch.selected+1, len(ch.options), ch.Value())
}

// Menu lists the options with their pick keys, for display under the sheet.
func (ch Chooser) Menu() string {
	items := make([]string, len(ch.options))
	for i, opt := range ch.options {
		item := fmt.Sprintf("%d %s", i+1, opt)
		if i == ch.selected {
			item = style.SelectedStyle.Render(item)
		}
		items[i] = item
	}
	return strings.Join(items, "  ")
}
