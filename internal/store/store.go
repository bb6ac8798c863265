// Package store defines snapshot persistence for the clipboard history.
// The in-memory model owns ordering and mutation; a Store only round-trips
// the ordered sequence of items between runs.
package store

import "time"

// Item is one persisted history row. Position is the row's place in the
// ordered sequence at save time; stores return items sorted by it.
type Item struct {
	// Position is the zero-based row the item held when saved.
	Position int

	// Text is the raw entry text.
	Text string

	// Image is the optional binary payload. Nil for plain text entries.
	Image []byte

	// CreatedAt and UpdatedAt are managed by the storage layer.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store persists the ordered history snapshot.
type Store interface {
	// LoadAll returns every item ordered by position.
	LoadAll() ([]*Item, error)

	// SaveAll replaces the persisted snapshot with the given sequence.
	// Item positions are taken from slice order, not the Position field.
	SaveAll(items []*Item) error

	// Count returns the number of persisted items.
	Count() (int, error)

	// Clear removes every persisted item.
	Clear() error

	// Close releases any resources (DB connections, file handles, etc.).
	Close() error
}
