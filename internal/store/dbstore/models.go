package dbstore

import (
	"time"

	"github.com/yiblet/clipstack/internal/store"
)

// ItemModel represents one history row in the database.
type ItemModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Position  int       `gorm:"not null;index"` // Row order at save time
	Text      string    `gorm:"type:text;not null"`
	Image     []byte    `gorm:"type:blob"`      // Optional binary payload
	CreatedAt time.Time `gorm:"autoCreateTime"` // GORM managed timestamp
	UpdatedAt time.Time `gorm:"autoUpdateTime"` // GORM managed timestamp
}

// TableName returns the table name for ItemModel
func (ItemModel) TableName() string {
	return "history_items"
}

// ToItem converts the GORM model to a store.Item
func (m *ItemModel) ToItem() *store.Item {
	return &store.Item{
		Position:  m.Position,
		Text:      m.Text,
		Image:     m.Image,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
