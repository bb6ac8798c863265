package tui

import (
	"sort"
	"strings"
	"testing"
)

func TestListModel_CursorMovement(t *testing.T) {
	l := NewListModel(80, 24)

	l.Update(CursorDownMsg{MaxIndex: 2})
	l.Update(CursorDownMsg{MaxIndex: 2})
	if l.Cursor != 2 {
		t.Errorf("expected cursor 2, got %d", l.Cursor)
	}

	// Down at the bottom stays put.
	l.Update(CursorDownMsg{MaxIndex: 2})
	if l.Cursor != 2 {
		t.Errorf("expected cursor 2 after bounded down, got %d", l.Cursor)
	}

	l.Update(CursorUpMsg{})
	if l.Cursor != 1 {
		t.Errorf("expected cursor 1, got %d", l.Cursor)
	}

	l.Update(CursorTopMsg{})
	if l.Cursor != 0 {
		t.Errorf("expected cursor 0, got %d", l.Cursor)
	}

	// Up at the top stays put.
	l.Update(CursorUpMsg{})
	if l.Cursor != 0 {
		t.Errorf("expected cursor 0 after bounded up, got %d", l.Cursor)
	}

	l.Update(CursorBottomMsg{MaxIndex: 5})
	if l.Cursor != 5 {
		t.Errorf("expected cursor 5, got %d", l.Cursor)
	}
}

func TestListModel_ClampCursor(t *testing.T) {
	l := NewListModel(80, 24)
	l.Cursor = 7

	l.Update(ClampCursorMsg{MaxIndex: 3})
	if l.Cursor != 3 {
		t.Errorf("expected cursor 3 after clamp, got %d", l.Cursor)
	}

	// Empty list clamps to zero.
	l.Update(ClampCursorMsg{MaxIndex: -1})
	if l.Cursor != 0 {
		t.Errorf("expected cursor 0 after empty clamp, got %d", l.Cursor)
	}
}

func TestListModel_Selection(t *testing.T) {
	l := NewListModel(80, 24)

	l.Update(ToggleSelectMsg{Index: 1})
	l.Update(ToggleSelectMsg{Index: 3})
	got := l.SelectedOrCursor()
	sort.Ints(got)
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("expected selection [1 3], got %v", got)
	}

	// Toggling again deselects.
	l.Update(ToggleSelectMsg{Index: 3})
	got = l.SelectedOrCursor()
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("expected selection [1], got %v", got)
	}

	l.Update(ClearSelectionMsg{})
	l.Cursor = 2
	got = l.SelectedOrCursor()
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("expected cursor fallback [2], got %v", got)
	}
}

func TestListView(t *testing.T) {
	l := NewListModel(80, 24)
	l.Update(ToggleSelectMsg{Index: 1})

	view, err := ListView(l, []ListRow{
		{Row: 0, Label: "first"},
		{Row: 1, Label: "second"},
	})
	if err != nil {
		t.Fatalf("ListView failed: %v", err)
	}

	if !strings.Contains(view, "first") || !strings.Contains(view, "second") {
		t.Error("expected view to contain row labels")
	}
	if !strings.Contains(view, "* ") {
		t.Error("expected view to mark the selected row")
	}
}

func TestListView_Empty(t *testing.T) {
	l := NewListModel(80, 24)

	view, err := ListView(l, nil)
	if err != nil {
		t.Fatalf("ListView failed: %v", err)
	}
	if !strings.Contains(view, "(no entries)") {
		t.Error("expected empty placeholder")
	}
}
