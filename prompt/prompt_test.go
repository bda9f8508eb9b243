package prompt

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsheet/message"
)

func TestSubmit(t *testing.T) {
	fp := New(message.Export, "Export to", "spreadsheet_data.csv")

	fp, _ = fp.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	fp, _ = fp.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	fp, _ = fp.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	fp, _ = fp.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	fp, _ = fp.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	fp, _ = fp.Update(tea.KeyPressMsg{Code: 'o', Text: "o"})
	fp, _ = fp.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	_, cmd := fp.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, SubmitMsg{Purpose: message.Export, Path: "spreadsheet_data.json"}, cmd())
}

func TestCancel(t *testing.T) {
	fp := New(message.Import, "Import from", "")

	_, cmd := fp.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	require.NotNil(t, cmd)
	assert.Equal(t, CancelMsg{}, cmd())
	assert.Equal(t, message.Import, fp.Purpose())
}
