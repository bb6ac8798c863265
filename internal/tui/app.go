// Package tui implements the interactive history browser on Bubble Tea.
// It consumes the browser's model for display and routes reorder, delete
// and copy commands back through it.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.design/x/clipboard"

	"github.com/yiblet/clipstack/internal/browser"
	"github.com/yiblet/clipstack/internal/model"
)

// UIMode represents the current modal state of the application
type UIMode int

const (
	NormalMode UIMode = iota
	SearchMode
	HelpMode
)

type flashExpiredMsg struct{}

// emphasisStyle renders matched spans inside list rows.
var emphasisStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205")).
	Bold(true)

// AppModel orchestrates the list and search sub-models over a browser.
type AppModel struct {
	Browser     *browser.Browser
	Width       int
	Height      int
	CurrentMode UIMode

	List   ListModel
	Search SearchModel

	// Flash message for temporary notifications
	FlashMessage string
	FlashExpiry  time.Time
}

// NewAppModel creates a new app model over the given browser
func NewAppModel(b *browser.Browser) AppModel {
	defaultWidth := 100
	defaultHeight := 24

	return AppModel{
		Browser:     b,
		Width:       defaultWidth,
		Height:      defaultHeight,
		CurrentMode: NormalMode,
		List:        NewListModel(defaultWidth-2, defaultHeight),
		Search:      NewSearchModel(),
	}
}

// Run launches the interactive browser and blocks until it exits.
func Run(b *browser.Browser) error {
	app := NewAppModel(b)
	p := tea.NewProgram(&app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}

// Init implements tea.Model
func (a *AppModel) Init() tea.Cmd {
	return nil
}

// Update handles app-level messages and routes to the sub-models
func (a *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.Width = m.Width
		a.Height = m.Height
		a.List.Update(ResizeListMsg{Width: m.Width - 2, Height: m.Height})
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	case flashExpiredMsg:
		if time.Now().After(a.FlashExpiry) {
			a.FlashMessage = ""
		}
		return a, nil
	}
	return a, nil
}

// visibleRows returns the model rows that survive the active filter, in
// display order.
func (a *AppModel) visibleRows() []int {
	m := a.Browser.Model()
	rows := make([]int, 0, m.RowCount())
	for row := 0; row < m.RowCount(); row++ {
		if !m.IsFiltered(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

func (a *AppModel) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}
	if a.Search.IsActive() {
		return a.handleSearchKey(key)
	}
	if a.CurrentMode == HelpMode {
		switch key.String() {
		case "z", "q", "esc":
			a.CurrentMode = NormalMode
		}
		return a, nil
	}
	return a.handleNormalKey(key)
}

func (a *AppModel) handleSearchKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter:
		a.Search.Update(ExecuteSearchMsg{})
		if a.Search.Error == "" {
			a.applySearch()
		}
	case tea.KeyEscape:
		a.Search.Update(CancelSearchMsg{})
	case tea.KeyBackspace:
		if len(a.Search.Input) > 0 {
			a.Search.Update(UpdateSearchInputMsg{Input: a.Search.Input[:len(a.Search.Input)-1]})
		}
	case tea.KeyRunes, tea.KeySpace:
		a.Search.Update(UpdateSearchInputMsg{Input: a.Search.Input + key.String()})
	}
	return a, nil
}

func (a *AppModel) handleNormalKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	maxIndex := len(a.visibleRows()) - 1

	switch key.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		if a.Search.HasPattern() {
			a.Search.Update(ClearSearchMsg{})
			a.applySearch()
			return a, nil
		}
		return a, tea.Quit
	case "z":
		a.CurrentMode = HelpMode
	case "j", "down":
		a.List.Update(CursorDownMsg{MaxIndex: maxIndex})
	case "k", "up":
		a.List.Update(CursorUpMsg{})
	case "g":
		a.List.Update(CursorTopMsg{})
	case "G":
		a.List.Update(CursorBottomMsg{MaxIndex: maxIndex})
	case " ":
		a.List.Update(ToggleSelectMsg{Index: a.List.Cursor})
	case "/":
		a.Search.Update(StartSearchMsg{})
	case "J":
		return a, a.moveSelected(model.MoveDown)
	case "K":
		return a, a.moveSelected(model.MoveUp)
	case "E":
		return a, a.moveSelected(model.MoveToEnd)
	case "H":
		return a, a.moveSelected(model.MoveToHome)
	case "d":
		return a, a.deleteSelected()
	case "c":
		return a, a.copyToClipboard()
	case "enter":
		cmd := a.copyToClipboard()
		return a, tea.Sequence(cmd, tea.Quit)
	}
	return a, nil
}

// applySearch pushes the executed pattern into the model and resets
// cursor and selection, since filtering re-maps visible rows.
func (a *AppModel) applySearch() {
	a.Browser.Model().SetSearch(a.Search.Regexp())
	a.List.Update(ClearSelectionMsg{})
	a.List.Update(ClampCursorMsg{MaxIndex: len(a.visibleRows()) - 1})
}

// modelRowsForSelection maps the marked visible rows onto model rows.
func (a *AppModel) modelRowsForSelection() []int {
	visible := a.visibleRows()
	rows := make([]int, 0)
	for _, i := range a.List.SelectedOrCursor() {
		if i >= 0 && i < len(visible) {
			rows = append(rows, visible[i])
		}
	}
	return rows
}

func (a *AppModel) moveSelected(dir model.Direction) tea.Cmd {
	rows := a.modelRowsForSelection()
	if len(rows) == 0 {
		return a.setFlashMessage("No entry selected", 2*time.Second)
	}

	single := len(a.List.Selected) == 0
	promoted, err := a.Browser.MoveSelected(rows, dir)
	if err != nil {
		return a.setFlashMessage(fmt.Sprintf("Move failed: %v", err), 2*time.Second)
	}

	maxIndex := len(a.visibleRows()) - 1
	a.List.Update(ClearSelectionMsg{})
	if single {
		// Follow the row the cursor just moved.
		switch dir {
		case model.MoveDown:
			a.List.Update(CursorDownMsg{MaxIndex: maxIndex})
		case model.MoveUp:
			a.List.Update(CursorUpMsg{})
		case model.MoveToEnd:
			a.List.Update(CursorBottomMsg{MaxIndex: maxIndex})
		case model.MoveToHome:
			a.List.Update(CursorTopMsg{})
		}
	}
	a.List.Update(ClampCursorMsg{MaxIndex: maxIndex})

	if promoted {
		return a.setFlashMessage("Promoted to front (recopied)", 2*time.Second)
	}
	return nil
}

func (a *AppModel) deleteSelected() tea.Cmd {
	rows := a.modelRowsForSelection()
	if len(rows) == 0 {
		return a.setFlashMessage("No entry selected", 2*time.Second)
	}
	if err := a.Browser.Remove(rows); err != nil {
		return a.setFlashMessage(fmt.Sprintf("Delete failed: %v", err), 2*time.Second)
	}
	a.List.Update(ClearSelectionMsg{})
	a.List.Update(ClampCursorMsg{MaxIndex: len(a.visibleRows()) - 1})
	return a.setFlashMessage(fmt.Sprintf("Deleted %d entries", len(rows)), 2*time.Second)
}

// copyToClipboard copies the row under the cursor to the clipboard
func (a *AppModel) copyToClipboard() tea.Cmd {
	visible := a.visibleRows()
	if a.List.Cursor >= len(visible) {
		return a.setFlashMessage("No entry selected", 2*time.Second)
	}
	row := visible[a.List.Cursor]
	text, image, ok := a.Browser.Model().Raw(row)
	if !ok {
		return a.setFlashMessage("No entry selected", 2*time.Second)
	}

	if err := clipboard.Init(); err != nil {
		return a.setFlashMessage(fmt.Sprintf("Error initializing clipboard: %v", err), 2*time.Second)
	}
	if image != nil {
		clipboard.Write(clipboard.FmtImage, image)
		return a.setFlashMessage(fmt.Sprintf("Copied %d image bytes to clipboard", len(image)), 2*time.Second)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return a.setFlashMessage(fmt.Sprintf("Copied %d bytes to clipboard", len(text)), 2*time.Second)
}

// setFlashMessage sets a flash message that disappears after the duration
func (a *AppModel) setFlashMessage(message string, duration time.Duration) tea.Cmd {
	a.FlashMessage = message
	a.FlashExpiry = time.Now().Add(duration)
	return tea.Tick(duration, func(t time.Time) tea.Msg {
		return flashExpiredMsg{}
	})
}

// buildRows prepares the rendered labels for every visible row.
func (a *AppModel) buildRows() []ListRow {
	m := a.Browser.Model()
	visible := a.visibleRows()
	rows := make([]ListRow, 0, len(visible))
	for _, row := range visible {
		value := m.Data(row, model.RoleDisplay)
		var label string
		switch {
		case value.IsImage():
			label = "[image]"
		case a.Search.HasPattern():
			label = RenderMarkup(value.Text, emphasisStyle)
		default:
			label = a.Browser.Preview(row)
		}
		rows = append(rows, ListRow{Row: row, Label: label})
	}
	return rows
}

// View implements tea.Model
func (a *AppModel) View() string {
	view, _ := AppView(a)
	return view
}

// AppView renders the whole application as a pure function
func AppView(a *AppModel) (string, error) {
	if a.CurrentMode == HelpMode {
		return renderHelpView(a), nil
	}

	list, err := ListView(a.List, a.buildRows())
	if err != nil {
		return "", err
	}
	return list + "\n" + renderStatusLine(a), nil
}

// renderStatusLine renders the bottom status line (pure function)
func renderStatusLine(a *AppModel) string {
	var statusLine string

	// Prioritize flash message if active and not expired
	if a.FlashMessage != "" && time.Now().Before(a.FlashExpiry) {
		return lipgloss.NewStyle().
			Width(a.Width).
			Foreground(lipgloss.Color("10")).
			Render(a.FlashMessage)
	}

	switch {
	case a.Search.IsActive():
		statusLine = fmt.Sprintf("/%s", a.Search.Input)
		if a.Search.Error != "" {
			statusLine += fmt.Sprintf(" (Error: %s)", a.Search.Error)
		} else {
			statusLine += " (Enter to search, Esc to cancel)"
		}
	case a.Search.HasPattern():
		statusLine = fmt.Sprintf("Pattern: %s - %d of %d entries (Esc to clear)",
			a.Search.Pattern, len(a.visibleRows()), a.Browser.Model().RowCount())
	default:
		statusLine = "Press z for help, q to quit"
	}

	return lipgloss.NewStyle().Width(a.Width).Render(statusLine)
}

// renderHelpView renders the help content as a single pane (pure function)
func renderHelpView(a *AppModel) string {
	helpContent := `clipstack - Clipboard History Browser

NAVIGATION:
  j, ↓        Next entry
  k, ↑        Previous entry
  g / G       First / last entry
  space       Mark entry for batch commands

REORDERING:
  J           Move marked entries down
  K           Move marked entries up
  E           Move marked entries to the end
  H           Move marked entries to the front
              (a move to the front recopies the clipboard)

SEARCH:
  /pattern    Filter entries, highlighting matches
  Esc         Clear the active filter

CLIPBOARD:
  c           Copy current entry to clipboard
  Enter       Copy current entry and quit

HISTORY:
  d           Delete marked entries

GLOBAL:
  q, Esc      Quit
  Ctrl+c      Force quit

Press z again to return to normal view.`

	helpStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1).
		Width(a.Width - 4).
		Height(a.Height - 4)

	return helpStyle.Render(helpContent)
}
