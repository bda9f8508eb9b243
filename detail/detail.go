package detail

import (
	"encoding/json"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	nt "jobsheet/entity"
	"jobsheet/style"
)

// DetailPanel shows one row as indented JSON
type DetailPanel struct {
	index        int
	contentLines []string // Rendered content split into lines (cached)

	width        int
	height       int
	scrollOffset int // Line offset for scrolling content
}

func NewDetailPanel() DetailPanel {
	return DetailPanel{}
}

func (pnl DetailPanel) Update(msg tea.Msg) (DetailPanel, tea.Cmd) {

	switch msg := msg.(type) {

	case RowMsg:
		pnl.index = msg.Index
		pnl.contentLines = contentLines(msg.Row)
		pnl.scrollOffset = 0

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl.scrollOffset = 0

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if pnl.scrollOffset > 0 {
				pnl.scrollOffset--
			}

		case "down", "j":
			// Only allow scrolling if content exceeds viewport
			if pnl.pageSize() > 0 && len(pnl.contentLines) > pnl.pageSize() {
				maxScroll := len(pnl.contentLines) - pnl.pageSize()
				if pnl.scrollOffset < maxScroll {
					pnl.scrollOffset++
				}
			}
		}
	}

	return pnl, nil
}

// View renders the row
func (pnl DetailPanel) View() string {
	if pnl.contentLines == nil {
		return style.MutedStyle.Render("No row selected")
	}

	title := style.HeaderStyle.Render(fmt.Sprintf("Row %d", pnl.index+1))

	// Show visible portion based on scroll offset and height
	visibleLines := pnl.contentLines[pnl.scrollOffset:]
	if size := pnl.pageSize(); size > 0 && len(visibleLines) > size {
		visibleLines = visibleLines[:size]
	}

	return title + "\n" + strings.Join(visibleLines, "\n")
}

// unexported

func (pnl DetailPanel) pageSize() int {
	return pnl.height - 1 // title
}

// contentLines renders the row as JSON and splits into lines
func contentLines(row nt.Row) []string {

	var buf strings.Builder
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	err := encoder.Encode(row)
	if err != nil {
		return []string{"Error pretty-printing JSON: " + err.Error()}
	}

	content := strings.TrimSuffix(buf.String(), "\n")
	return strings.Split(content, "\n")
}
