// Package dbstore provides a SQLite-backed implementation of store.Store.
// The whole history snapshot is rewritten on save inside one transaction,
// keeping position order the single source of truth.
package dbstore

import (
	"fmt"

	"github.com/yiblet/clipstack/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteStore is a SQLite-backed implementation of store.Store
type SQLiteStore struct {
	db     *gorm.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLite-backed store at the specified path
// and initializes the database schema.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&ItemModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadAll returns every item ordered by position.
func (s *SQLiteStore) LoadAll() ([]*store.Item, error) {
	var models []ItemModel
	if err := s.db.Order("position ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	items := make([]*store.Item, 0, len(models))
	for i := range models {
		items = append(items, models[i].ToItem())
	}
	return items, nil
}

// SaveAll replaces the persisted snapshot with the given sequence in one
// transaction. Positions are assigned from slice order.
func (s *SQLiteStore) SaveAll(items []*store.Item) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ItemModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear previous snapshot: %w", err)
		}
		for i, item := range items {
			model := &ItemModel{
				Position: i,
				Text:     item.Text,
				Image:    item.Image,
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to save item at position %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Count returns the number of persisted items.
func (s *SQLiteStore) Count() (int, error) {
	var count int64
	if err := s.db.Model(&ItemModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return int(count), nil
}

// Clear removes every persisted item.
func (s *SQLiteStore) Clear() error {
	if err := s.db.Where("1 = 1").Delete(&ItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
