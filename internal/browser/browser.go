// Package browser ties the history model to its collaborators: snapshot
// persistence, the platform clipboard, and the history limit. It owns the
// side effects the model itself stays free of, like recopying a promoted
// row back to the clipboard.
package browser

import (
	"fmt"
	"sort"

	"github.com/yiblet/clipstack/internal/clipboard"
	"github.com/yiblet/clipstack/internal/model"
	"github.com/yiblet/clipstack/internal/store"
)

const DefaultHistoryLimit = 255

// Browser manages the clipboard history: an in-memory model loaded from a
// store at construction and snapshotted back after every mutation.
type Browser struct {
	model         *model.Model
	store         store.Store
	clip          clipboard.Clipboard
	limit         int
	promoteCopies bool
}

// Options configures optional Browser behavior.
type Options struct {
	// Notifier receives the model's change brackets. Nil means no-op.
	Notifier model.Notifier

	// Limit caps the number of history rows. Zero or negative selects
	// DefaultHistoryLimit.
	Limit int

	// PromoteCopies rewrites the clipboard with row 0's content whenever
	// a batch move promotes a row to the front.
	PromoteCopies bool
}

// New creates a browser over the given store and clipboard with default
// options.
func New(s store.Store, clip clipboard.Clipboard) (*Browser, error) {
	return NewWithOptions(s, clip, Options{PromoteCopies: true})
}

// NewWithOptions creates a browser and loads the persisted history
// snapshot into a fresh model.
func NewWithOptions(s store.Store, clip clipboard.Clipboard, opts Options) (*Browser, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	items, err := s.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	if len(items) > limit {
		items = items[:limit]
	}

	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Text
	}
	m := model.New(opts.Notifier, texts)
	for i, item := range items {
		if item.Image != nil {
			m.SetImage(i, item.Image)
		}
	}

	return &Browser{
		model:         m,
		store:         s,
		clip:          clip,
		limit:         limit,
		promoteCopies: opts.PromoteCopies,
	}, nil
}

// Model returns the underlying history model for read access.
func (b *Browser) Model() *model.Model {
	return b.model
}

// Limit returns the configured history limit.
func (b *Browser) Limit() int {
	return b.limit
}

// Add prepends a new text entry, trims overflow and persists.
func (b *Browser) Add(text string) error {
	if !b.model.InsertRows(0, 1) {
		return fmt.Errorf("failed to insert row")
	}
	b.model.SetText(0, text)
	b.trim()
	return b.Save()
}

// AddImage prepends a new image entry, trims overflow and persists.
func (b *Browser) AddImage(image []byte) error {
	if !b.model.InsertRows(0, 1) {
		return fmt.Errorf("failed to insert row")
	}
	b.model.SetImage(0, image)
	b.trim()
	return b.Save()
}

// Remove deletes the given rows and persists. Rows are removed from the
// highest down so earlier removals never shift later ones.
func (b *Browser) Remove(rows []int) error {
	sorted := append([]int(nil), rows...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, row := range sorted {
		if row < 0 || row >= b.model.RowCount() {
			continue
		}
		b.model.RemoveRows(row, 1)
	}
	return b.Save()
}

// MoveSelected runs a batch move on the model. When a row is promoted to
// the front and promote-copies is on, the clipboard is rewritten with row
// 0's content. The snapshot is persisted even when the batch aborts
// part-way, because earlier steps remain applied.
func (b *Browser) MoveSelected(rows []int, dir model.Direction) (promoted bool, err error) {
	promoted, ok := b.model.MoveItems(rows, dir)

	// Persist before any recopy so the applied reorder survives a
	// clipboard failure.
	if saveErr := b.Save(); saveErr != nil {
		return promoted, saveErr
	}
	if promoted && b.promoteCopies {
		if copyErr := b.CopyRow(0); copyErr != nil {
			return promoted, fmt.Errorf("failed to recopy promoted row: %w", copyErr)
		}
	}
	if !ok {
		return promoted, fmt.Errorf("batch move aborted part-way; earlier steps remain applied")
	}
	return promoted, nil
}

// CopyRow writes the row's content to the clipboard, preferring the image
// payload over text.
func (b *Browser) CopyRow(row int) error {
	text, image, ok := b.model.Raw(row)
	if !ok {
		return fmt.Errorf("row %d out of range", row)
	}
	if b.clip == nil || !b.clip.IsSupported() {
		return fmt.Errorf("clipboard not supported on this system")
	}
	data := []byte(text)
	if image != nil {
		data = image
	}
	if err := b.clip.Write(data); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// Clear removes every entry and persists the empty snapshot.
func (b *Browser) Clear() error {
	if n := b.model.RowCount(); n > 0 {
		b.model.RemoveRows(0, n)
	}
	if err := b.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	return nil
}

// Save snapshots the model into the store.
func (b *Browser) Save() error {
	items := make([]*store.Item, 0, b.model.RowCount())
	for row := 0; row < b.model.RowCount(); row++ {
		text, image, _ := b.model.Raw(row)
		items = append(items, &store.Item{Text: text, Image: image})
	}
	if err := b.store.SaveAll(items); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// Close releases store resources.
func (b *Browser) Close() error {
	return b.store.Close()
}

// trim drops rows past the history limit.
func (b *Browser) trim() {
	if n := b.model.RowCount(); n > b.limit {
		b.model.RemoveRows(b.limit, n-b.limit)
	}
}
