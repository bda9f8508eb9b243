package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle warm grey border
	HeaderStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Bold(true)
	GutterStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	SelectedStyle    = lipgloss.NewStyle().Background(lipgloss.Color("24")) // Muted blue, selected cell
	EditingStyle     = lipgloss.NewStyle().Background(lipgloss.Color("236")).Underline(true)
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	SortStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	LinkStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true)
	ErrorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	FooterStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// StatusStyles color a status badge by value.
var StatusStyles = map[string]lipgloss.Style{
	"In-process":    badge("178"),
	"Need to start": badge("33"),
	"Complete":      badge("35"),
	"Blocked":       badge("160"),
}

// PriorityStyles color a priority label by value.
var PriorityStyles = map[string]lipgloss.Style{
	"High":   lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
	"Medium": lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Bold(true),
	"Low":    lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
}

// StyleTable applies consistent table styling for borders and separators
func StyleTable(tbl *table.Table) {
	tbl.Border(lipgloss.Border{
		Top:         "─", // Horizontal parts of separator
		Middle:      "─", // Between columns in separator
		MiddleLeft:  "─", // Left edge of separator
		MiddleRight: "─", // Right edge of separator
	}).
		BorderTop(false).    // Disable top border
		BorderBottom(false). // Disable bottom border
		BorderLeft(false).   // Disable left border
		BorderRight(false).  // Disable right border
		BorderColumn(false). // Disable column separators
		BorderStyle(TableBorderStyle)
}

// unexported

func badge(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}
