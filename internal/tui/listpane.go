package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ListMsg represents messages that the list pane component handles
type ListMsg interface {
	isListMsg()
}

// List pane message implementations
type CursorUpMsg struct{}

func (CursorUpMsg) isListMsg() {}

type CursorDownMsg struct {
	MaxIndex int // Maximum valid index for bounds checking
}

func (CursorDownMsg) isListMsg() {}

type CursorTopMsg struct{}

func (CursorTopMsg) isListMsg() {}

type CursorBottomMsg struct {
	MaxIndex int
}

func (CursorBottomMsg) isListMsg() {}

type ToggleSelectMsg struct {
	Index int
}

func (ToggleSelectMsg) isListMsg() {}

type ClearSelectionMsg struct{}

func (ClearSelectionMsg) isListMsg() {}

type ClampCursorMsg struct {
	MaxIndex int
}

func (ClampCursorMsg) isListMsg() {}

type ResizeListMsg struct {
	Width  int
	Height int
}

func (ResizeListMsg) isListMsg() {}

// ListModel holds the state for the history list pane
type ListModel struct {
	Cursor   int          // Current cursor position among visible rows
	Selected map[int]bool // Visible-row indexes marked for batch operations
	Width    int          // Pane width
	Height   int          // Pane height
}

// NewListModel creates a new list model with default values
func NewListModel(width, height int) ListModel {
	return ListModel{
		Cursor:   0,
		Selected: make(map[int]bool),
		Width:    width,
		Height:   height,
	}
}

// ListModel implements the Model interface for the list pane
func (l *ListModel) Update(msg ListMsg) error {
	switch m := msg.(type) {
	case CursorUpMsg:
		if l.Cursor > 0 {
			l.Cursor--
		}
	case CursorDownMsg:
		if l.Cursor < m.MaxIndex {
			l.Cursor++
		}
	case CursorTopMsg:
		l.Cursor = 0
	case CursorBottomMsg:
		if m.MaxIndex >= 0 {
			l.Cursor = m.MaxIndex
		}
	case ToggleSelectMsg:
		if m.Index >= 0 {
			if l.Selected[m.Index] {
				delete(l.Selected, m.Index)
			} else {
				l.Selected[m.Index] = true
			}
		}
	case ClearSelectionMsg:
		l.Selected = make(map[int]bool)
	case ClampCursorMsg:
		if m.MaxIndex < 0 {
			l.Cursor = 0
		} else if l.Cursor > m.MaxIndex {
			l.Cursor = m.MaxIndex
		}
	case ResizeListMsg:
		l.Width = m.Width
		l.Height = m.Height
	}
	return nil
}

// SelectedOrCursor returns the marked rows, or the cursor row when
// nothing is marked.
func (l *ListModel) SelectedOrCursor() []int {
	if len(l.Selected) == 0 {
		return []int{l.Cursor}
	}
	rows := make([]int, 0, len(l.Selected))
	for row := range l.Selected {
		rows = append(rows, row)
	}
	return rows
}

// ListRow is one rendered row handed to ListView: the model row it maps
// to and its already-rendered label.
type ListRow struct {
	Row   int
	Label string
}

// ListView renders the history list as a pure function
func ListView(model ListModel, rows []ListRow) (string, error) {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Width(model.Width).
		Height(model.Height - 4)

	var content strings.Builder
	content.WriteString(lipgloss.NewStyle().Bold(true).Render("History") + "\n\n")

	for i, row := range rows {
		marker := "  "
		if model.Selected[i] {
			marker = "* "
		}
		line := fmt.Sprintf("%s%d. %s", marker, row.Row, row.Label)

		// Keep the line inside the pane, accounting for borders and padding.
		if avail := model.Width - 4; avail > 3 && len(line) > avail {
			line = line[:avail-3] + "..."
		}

		if i == model.Cursor {
			line = lipgloss.NewStyle().
				Background(lipgloss.Color("62")).
				Foreground(lipgloss.Color("230")).
				Width(model.Width - 4).
				Render(line)
		}

		content.WriteString(line + "\n")
	}

	if len(rows) == 0 {
		content.WriteString("(no entries)\n")
	}

	return style.Render(content.String()), nil
}
