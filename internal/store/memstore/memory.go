// Package memstore provides an in-memory implementation of store.Store.
// This implementation is designed for fast unit testing and does not
// persist data.
package memstore

import (
	"sync"
	"time"

	"github.com/yiblet/clipstack/internal/store"
)

// MemoryStore is an in-memory implementation of store.Store. It is
// thread-safe via a mutex and exists only for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	items []*store.Item
}

// NewMemoryStore creates a new in-memory store for testing.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadAll returns a copy of every item in position order.
func (m *MemoryStore) LoadAll() ([]*store.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]*store.Item, 0, len(m.items))
	for _, item := range m.items {
		clone := *item
		items = append(items, &clone)
	}
	return items, nil
}

// SaveAll replaces the snapshot. Positions are assigned from slice order.
func (m *MemoryStore) SaveAll(items []*store.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	saved := make([]*store.Item, 0, len(items))
	for i, item := range items {
		saved = append(saved, &store.Item{
			Position:  i,
			Text:      item.Text,
			Image:     append([]byte(nil), item.Image...),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	m.items = saved
	return nil
}

// Count returns the number of stored items.
func (m *MemoryStore) Count() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items), nil
}

// Clear removes all items.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	return nil
}

// Close releases resources (no-op for memory store).
func (m *MemoryStore) Close() error {
	return nil
}
