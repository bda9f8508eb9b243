package jobsheet

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/pkg/errors"

	"jobsheet/detail"
	nt "jobsheet/entity"
	"jobsheet/grid"
	"jobsheet/keys"
	"jobsheet/message"
	"jobsheet/picker"
	"jobsheet/piece"
	"jobsheet/prompt"
	"jobsheet/table"
	"jobsheet/transfer"
)

const (
	footerHeight = 2
	menuHeight   = 1 // Chooser options under the sheet
)

// Model is the bubbletea model for the sheet TUI.
type Model struct {
	grid   grid.Grid
	editor piece.Editor // Non-nil while the grid is editing
	editAt nt.Coord

	keys keys.KeyMap
	help help.Model

	Sheet  table.SheetPanel
	Detail detail.DetailPanel
	Picker picker.ColumnPicker
	Prompt prompt.FilePrompt

	CurrentScreen Screen

	exportName string
	startPath  string

	logger      nt.Logger
	ctx         context.Context
	status      string
	errorString string

	Width  int
	Height int
}

func newModel(ctx context.Context, lgr nt.Logger, g grid.Grid, widths map[nt.Key]int, exportName string) Model {

	return Model{
		grid:          g,
		keys:          keys.DefaultKeyMap(),
		help:          help.New(),
		Sheet:         table.NewSheetPanel(widths),
		Detail:        detail.NewDetailPanel(),
		Picker:        picker.New(),
		CurrentScreen: SheetScreen,
		exportName:    exportName,
		logger:        lgr,
		ctx:           ctx,
	}
}

// WithImport has the model import path when it starts.
func (m Model) WithImport(path string) Model {
	m.startPath = path
	return m
}

// Grid returns the sheet's current state.
func (m Model) Grid() grid.Grid {
	return m.grid
}

func (m Model) Init() tea.Cmd {
	if m.startPath == "" {
		return nil
	}
	return m.importCmd(m.startPath)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.SetWidth(msg.Width)

		height := msg.Height - footerHeight
		m.Sheet, _ = m.Sheet.Update(table.SizeMsg{Width: msg.Width, Height: height - menuHeight})
		m.Detail, _ = m.Detail.Update(detail.SizeMsg{Width: msg.Width, Height: height})
		m.Sheet = m.Sheet.Follow(m.grid)
		return m, nil

	case message.ErrorMsg:
		if errors.Is(msg.Err, transfer.ErrNoFileSelected) {
			m.logger.Info(m.ctx, "no file selected")
			return m, nil
		}
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case message.StatusMsg:
		m.status = msg.Text
		return m, nil

	case message.ImportedMsg:
		return m.imported(msg)

	case message.ExportedMsg:
		m.logger.Info(m.ctx, "exported", "path", msg.Path, "count", msg.Count)
		return m, message.StatusCmd(fmt.Sprintf("exported %d rows to %s", msg.Count, msg.Path))

	case message.CopiedMsg:
		m.logger.Info(m.ctx, "copied", "value", msg.Value)
		return m, message.StatusCmd("copied to clipboard")

	case picker.ToggleMsg:
		m.grid = m.grid.ToggleColumn(msg.Key)
		m.logger.Info(m.ctx, "column toggled", "column", msg.Key, "hidden", m.grid.Hidden(msg.Key))
		return m.settle(), nil

	case picker.DoneMsg:
		m.CurrentScreen = SheetScreen
		return m, nil

	case prompt.SubmitMsg:
		m.CurrentScreen = SheetScreen
		return m.submit(msg)

	case prompt.CancelMsg:
		m.CurrentScreen = SheetScreen
		return m, nil

	case tea.MouseClickMsg:
		return m.click(msg)

	case tea.KeyPressMsg:
		m.errorString = ""
		return m.keyPress(msg)
	}

	return m.forward(msg)
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	var screenContent string
	switch m.CurrentScreen {
	case DetailScreen:
		screenContent = m.Detail.View()
	case ColumnsScreen:
		screenContent = m.Picker.View(m.grid.Hidden)
	case PromptScreen:
		screenContent = m.Prompt.View()
	default:
		screenContent = m.sheet()
	}

	screenLayer := lipgloss.NewLayer("screen", screenContent)
	footerLayer := lipgloss.NewLayer("footer", m.footer()).Y(m.Height - footerHeight)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(screenLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	return view
}

// unexported

func (m Model) sheet() string {

	var editorView string
	if m.editor != nil {
		editorView = m.editor.View()
	}
	content := m.Sheet.Render(m.grid, editorView)

	if chooser, ok := m.editor.(piece.Chooser); ok {
		content += "\n" + chooser.Menu()
	}
	return content
}

func (m Model) keyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	if msg.String() == "ctrl+c" {
		m.logger.Info(m.ctx, "quitting")
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.CurrentScreen {
	case DetailScreen:
		switch {
		case key.Matches(msg, m.keys.Detail, m.keys.Escape):
			m.CurrentScreen = SheetScreen
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		default:
			m.Detail, cmd = m.Detail.Update(msg)
		}
		return m, cmd

	case ColumnsScreen:
		m.Picker, cmd = m.Picker.Update(msg)
		return m, cmd

	case PromptScreen:
		m.Prompt, cmd = m.Prompt.Update(msg)
		return m, cmd
	}

	_, editing := m.grid.Editing()
	if !editing {
		model, cmd, handled := m.appKey(msg)
		if handled {
			return model, cmd
		}
	}

	sel, ok := m.grid.Selected()
	if !ok {
		return m, nil
	}

	action := m.keys.Route(msg, editing)
	switch action.Verb {
	case keys.Move:
		m.grid = m.grid.MoveSelection(action.Dir)

	case keys.Commit:
		m.grid = m.grid.SetBuffer(m.editValue()).Commit()
		m.logUpdate(sel)

	case keys.BeginEdit:
		m.grid = m.grid.BeginEdit()

	case keys.Cancel:
		m.grid = m.grid.CancelEdit()

	case keys.Clear:
		before := m.grid.Value(sel)
		m.grid = m.grid.DeleteCellValue(sel)
		if m.grid.Value(sel) != before {
			m.logger.Info(m.ctx, "cell cleared", "row", sel.Row, "column", nt.Columns[sel.Col].Key)
		}

	case keys.Ignore:
		if m.editor == nil {
			break
		}
		m.editor, cmd = m.editor.Update(msg)
		m.grid = m.grid.SetBuffer(m.editor.Value())

		if chooser, ok := m.editor.(piece.Chooser); ok && chooser.Picked() {
			m.grid = m.grid.Commit()
			m.logUpdate(sel)
		}
	}

	return m.settle(), cmd
}

// appKey handles keys that act on the whole sheet; only outside edit mode.
func (m Model) appKey(msg tea.KeyPressMsg) (model Model, cmd tea.Cmd, handled bool) {

	sel, selected := m.grid.Selected()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Info(m.ctx, "quitting")
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.First):
		visible := m.grid.VisibleColumns()
		m.grid = m.grid.SelectCell(nt.Coord{Row: 0, Col: visible[0]})
		return m.settle(), nil, true

	case key.Matches(msg, m.keys.AddRow):
		m.grid = m.grid.AddRow()
		m.logger.Info(m.ctx, "row added", "count", m.grid.Len())
		return m.settle(), nil, true

	case key.Matches(msg, m.keys.Sort):
		if !selected {
			return m, nil, true
		}
		m.grid = m.grid.SortBy(nt.Columns[sel.Col].Key)
		m.logSort()
		return m.settle(), nil, true

	case key.Matches(msg, m.keys.Columns):
		m.CurrentScreen = ColumnsScreen
		return m, nil, true

	case key.Matches(msg, m.keys.Import):
		m.Prompt = prompt.New(message.Import, "Import from", "")
		m.CurrentScreen = PromptScreen
		return m, nil, true

	case key.Matches(msg, m.keys.Export):
		m.Prompt = prompt.New(message.Export, "Export to", m.exportName)
		m.CurrentScreen = PromptScreen
		return m, nil, true

	case key.Matches(msg, m.keys.Detail):
		if !selected {
			return m, nil, true
		}
		row, _ := m.grid.Row(sel.Row)
		m.Detail, _ = m.Detail.Update(detail.RowMsg{Index: sel.Row, Row: row})
		m.CurrentScreen = DetailScreen
		return m, nil, true

	case key.Matches(msg, m.keys.Copy):
		if !selected {
			return m, nil, true
		}
		return m, copyCmd(m.grid.Value(sel)), true
	}

	return m, nil, false
}

// click selects the cell under the pointer or sorts by the header clicked.
func (m Model) click(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {

	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft || m.CurrentScreen != SheetScreen {
		return m, nil
	}

	if col, ok := m.Sheet.HeaderAt(m.grid, mouse.X, mouse.Y); ok {
		if at, editing := m.grid.Editing(); editing {
			m = m.blur(at)
		}
		m.grid = m.grid.SortBy(col)
		m.logSort()
		return m.settle(), nil
	}

	coord, ok := m.Sheet.CellAt(m.grid, mouse.X, mouse.Y)
	if !ok {
		return m, nil
	}

	if at, editing := m.grid.Editing(); editing && at != coord {
		m = m.blur(at)
	}
	m.grid = m.grid.SelectCell(coord)
	return m.settle(), nil
}

// blur leaves the cell at, keeping or dropping the edit per its editor.
func (m Model) blur(at nt.Coord) Model {

	if piece.For(nt.Columns[at.Col].Kind).BlurCommits() {
		m.grid = m.grid.SetBuffer(m.editValue()).Commit()
		m.logUpdate(at)
		return m
	}

	m.grid = m.grid.CancelEdit()
	return m
}

func (m Model) submit(msg prompt.SubmitMsg) (tea.Model, tea.Cmd) {

	if strings.TrimSpace(msg.Path) == "" {
		m.logger.Info(m.ctx, "no file selected")
		return m, nil
	}

	switch msg.Purpose {
	case message.Import:
		m.logger.Info(m.ctx, "importing", "path", msg.Path)
		return m, m.importCmd(msg.Path)
	case message.Export:
		m.logger.Info(m.ctx, "exporting", "path", msg.Path, "count", m.grid.Len())
		m.exportName = msg.Path
		return m, m.exportCmd(msg.Path)
	}
	return m, nil
}

func (m Model) imported(msg message.ImportedMsg) (tea.Model, tea.Cmd) {

	for _, problem := range msg.Problems {
		m.logger.Error(m.ctx, "skipped line", problem, "path", msg.Path, "line", problem.Line)
	}

	m.grid = m.grid.Append(msg.Rows...)
	m.logger.Info(m.ctx, "imported", "path", msg.Path, "count", len(msg.Rows), "skipped", len(msg.Problems))

	text := fmt.Sprintf("imported %d rows from %s", len(msg.Rows), msg.Path)
	if len(msg.Problems) > 0 {
		text += fmt.Sprintf(", skipped %d", len(msg.Problems))
	}
	return m.settle(), message.StatusCmd(text)
}

// forward passes anything else, cursor blinks and the like, to whatever has focus.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {

	var cmd tea.Cmd
	switch {
	case m.CurrentScreen == PromptScreen:
		m.Prompt, cmd = m.Prompt.Update(msg)
	case m.editor != nil:
		m.editor, cmd = m.editor.Update(msg)
		m.grid = m.grid.SetBuffer(m.editor.Value())
	}
	return m, cmd
}

// settle brings the editor and scroll position in line with the grid.
func (m Model) settle() Model {

	at, editing := m.grid.Editing()
	switch {
	case !editing:
		m.editor = nil
	case m.editor == nil || at != m.editAt:
		m.editor = piece.For(nt.Columns[at.Col].Kind).Editor(m.grid.Buffer())
	}
	m.editAt = at

	m.Sheet = m.Sheet.Follow(m.grid)
	return m
}

func (m Model) editValue() string {
	if m.editor == nil {
		return m.grid.Buffer()
	}
	return m.editor.Value()
}

func (m Model) logUpdate(at nt.Coord) {
	m.logger.Info(m.ctx, "cell updated", "row", at.Row, "column", nt.Columns[at.Col].Key, "value", m.grid.Value(at))
}

func (m Model) logSort() {
	srt, _ := m.grid.Sort()
	m.logger.Info(m.ctx, "sorted", "column", srt.Key, "desc", srt.Desc)
}
