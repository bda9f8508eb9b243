package message

import tea "charm.land/bubbletea/v2"

// StatusCmd returns a command that shows text in the footer
func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text}
	}
}
