package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yiblet/clipstack/internal/browser"
	"github.com/yiblet/clipstack/internal/clipboard/mockboard"
	"github.com/yiblet/clipstack/internal/model"
	"github.com/yiblet/clipstack/internal/store/memstore"
)

// newTestApp builds an app over an in-memory browser holding the given
// texts in order, front first.
func newTestApp(t *testing.T, texts ...string) (*AppModel, *mockboard.MockClipboard) {
	t.Helper()

	clip := mockboard.New()
	b, err := browser.New(memstore.NewMemoryStore(), clip)
	if err != nil {
		t.Fatalf("failed to create browser: %v", err)
	}
	for i := len(texts) - 1; i >= 0; i-- {
		if err := b.Add(texts[i]); err != nil {
			t.Fatalf("failed to add %q: %v", texts[i], err)
		}
	}

	app := NewAppModel(b)
	return &app, clip
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func visibleTexts(a *AppModel) []string {
	m := a.Browser.Model()
	var texts []string
	for _, row := range a.visibleRows() {
		texts = append(texts, m.Data(row, model.RoleEdit).Text)
	}
	return texts
}

func TestApp_Navigation(t *testing.T) {
	a, _ := newTestApp(t, "a", "b", "c")

	a.Update(key("j"))
	a.Update(key("j"))
	if a.List.Cursor != 2 {
		t.Errorf("expected cursor 2, got %d", a.List.Cursor)
	}

	// Bounded at the last row.
	a.Update(key("j"))
	if a.List.Cursor != 2 {
		t.Errorf("expected cursor 2 at bottom, got %d", a.List.Cursor)
	}

	a.Update(key("k"))
	if a.List.Cursor != 1 {
		t.Errorf("expected cursor 1, got %d", a.List.Cursor)
	}

	a.Update(key("g"))
	if a.List.Cursor != 0 {
		t.Errorf("expected cursor 0 after g, got %d", a.List.Cursor)
	}

	a.Update(key("G"))
	if a.List.Cursor != 2 {
		t.Errorf("expected cursor 2 after G, got %d", a.List.Cursor)
	}
}

func TestApp_MoveDownFollowsCursor(t *testing.T) {
	a, _ := newTestApp(t, "a", "b", "c")

	a.Update(key("J"))

	got := visibleTexts(a)
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
	if a.List.Cursor != 1 {
		t.Errorf("expected cursor to follow row to 1, got %d", a.List.Cursor)
	}
}

func TestApp_MoveUpPromotesAndRecopies(t *testing.T) {
	a, clip := newTestApp(t, "a", "b", "c")

	a.Update(key("j"))
	a.Update(key("K"))

	got := visibleTexts(a)
	if got[0] != "b" {
		t.Fatalf("expected b promoted to front, got %v", got)
	}
	if clip.Writes() != 1 {
		t.Fatalf("expected one clipboard write, got %d", clip.Writes())
	}
	if string(clip.Data()) != "b" {
		t.Errorf("expected clipboard to hold %q, got %q", "b", clip.Data())
	}
	if a.FlashMessage == "" {
		t.Error("expected a promotion flash message")
	}
}

func TestApp_MoveSelectionToEnd(t *testing.T) {
	a, _ := newTestApp(t, "a", "b", "c")

	a.Update(key(" ")) // mark row 0
	a.Update(key("j"))
	a.Update(key(" ")) // mark row 1
	a.Update(key("E"))

	got := visibleTexts(a)
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
	if len(a.List.Selected) != 0 {
		t.Error("expected selection cleared after move")
	}
}

func TestApp_Delete(t *testing.T) {
	a, _ := newTestApp(t, "a", "b", "c")

	a.Update(key("d"))

	got := visibleTexts(a)
	want := []string{"b", "c"}
	if len(got) != len(want) || got[0] != "b" || got[1] != "c" {
		t.Fatalf("expected %v after delete, got %v", want, got)
	}
}

func TestApp_SearchFiltersAndClears(t *testing.T) {
	a, _ := newTestApp(t, "apple", "banana", "cherry")

	a.Update(key("/"))
	if !a.Search.IsActive() {
		t.Fatal("expected search mode after /")
	}
	a.Update(key("an"))
	a.Update(key("enter"))

	got := visibleTexts(a)
	if len(got) != 1 || got[0] != "banana" {
		t.Fatalf("expected only banana visible, got %v", got)
	}

	// Esc in normal mode clears the filter before quitting.
	a.Update(key("esc"))
	if a.Search.HasPattern() {
		t.Error("expected esc to clear the pattern")
	}
	if got := visibleTexts(a); len(got) != 3 {
		t.Errorf("expected all rows visible after clear, got %v", got)
	}
}

func TestApp_SearchClampsCursor(t *testing.T) {
	a, _ := newTestApp(t, "apple", "banana", "cherry")

	a.Update(key("G"))
	a.Update(key("/"))
	a.Update(key("apple"))
	a.Update(key("enter"))

	if a.List.Cursor != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", a.List.Cursor)
	}
}

func TestApp_SearchErrorKeepsInputMode(t *testing.T) {
	a, _ := newTestApp(t, "a")

	a.Update(key("/"))
	a.Update(key("[bad"))
	a.Update(key("enter"))

	if !a.Search.IsActive() {
		t.Error("expected search mode to stay open on bad pattern")
	}
	if a.Search.Error == "" {
		t.Error("expected a search error")
	}
}

func TestApp_View(t *testing.T) {
	a, _ := newTestApp(t, "hello world", "second entry")

	view := a.View()
	if !strings.Contains(view, "hello world") {
		t.Error("expected view to contain the first entry")
	}
	if !strings.Contains(view, "Press z for help") {
		t.Error("expected the default status line")
	}
}

func TestApp_HelpMode(t *testing.T) {
	a, _ := newTestApp(t, "a")

	a.Update(key("z"))
	if a.CurrentMode != HelpMode {
		t.Fatal("expected help mode after z")
	}
	if !strings.Contains(a.View(), "REORDERING") {
		t.Error("expected help content")
	}

	a.Update(key("z"))
	if a.CurrentMode != NormalMode {
		t.Error("expected normal mode after z again")
	}
}

func TestApp_HighlightedRowsUseMarkup(t *testing.T) {
	a, _ := newTestApp(t, "banana")

	a.Update(key("/"))
	a.Update(key("an"))
	a.Update(key("enter"))

	rows := a.buildRows()
	if len(rows) != 1 {
		t.Fatalf("expected one visible row, got %d", len(rows))
	}
	// The emphasis style carries ANSI codes, but the decoded text is intact.
	if !strings.Contains(rows[0].Label, "b") || !strings.Contains(rows[0].Label, "an") {
		t.Errorf("expected rendered label to contain the entry text, got %q", rows[0].Label)
	}
}
