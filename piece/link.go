package piece

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	nt "jobsheet/entity"
	"jobsheet/style"
)

// Link renders its value as a terminal hyperlink and edits as text.
type Link struct{}

func (lnk Link) Render(value string, width int, state State) string {
	if value == "" {
		return emphasize(fit("", width, nt.AlignLeft), state)
	}

	text := style.LinkStyle.Render(ansi.Truncate(value, width, "…"))
	linked := ansi.SetHyperlink(Href(value)) + text + ansi.ResetHyperlink()
	return emphasize(fit(linked, width, nt.AlignLeft), state)
}

func (lnk Link) Editor(value string) Editor {
	return NewTextEditor(value)
}

func (lnk Link) BlurCommits() bool {
	return true
}

// Href returns value as an absolute URL, assuming https when no scheme is given.
func Href(value string) string {
	if strings.Contains(value, "://") {
		return value
	}
	return "https://" + value
}
