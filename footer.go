package jobsheet

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	nt "jobsheet/entity"
	"jobsheet/style"
)

// footer renders the position, row count and sort on the left, feedback on
// the right, and short help underneath.
func (m Model) footer() string {

	parts := []string{"-"}
	if coord, ok := m.grid.Selected(); ok {
		parts[0] = fmt.Sprintf("R%d %s", coord.Row+1, nt.Columns[coord.Col].Label)
	}
	parts = append(parts, fmt.Sprintf("%d rows", m.grid.Len()))
	if srt, ok := m.grid.Sort(); ok {
		parts = append(parts, "sorted by "+string(srt.Key)+" "+direction(srt.Desc))
	}
	left := style.FooterStyle.Render(strings.Join(parts, " • "))

	right := style.FooterStyle.Render(m.status)
	if m.errorString != "" {
		right = style.ErrorStyle.Render(m.errorString)
	}

	// Calculate padding
	padding := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return left + strings.Repeat(" ", padding) + right + "\n" + m.help.View(m.keys)
}

func direction(desc bool) string {
	if desc {
		return "desc"
	}
	return "asc"
}
