package game

import (
	"time"

	"github.com/google/uuid"
)

// ItemType is a kind of item that bots carry and structures yield.
// Durability is nil for items that never wear out.
type ItemType struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Durability *int      `gorm:"column:durability" json:"durability"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ItemType) TableName() string { return "item_type" }
