package game

import (
	"time"

	"github.com/google/uuid"
)

// StructureType is a harvestable world object (tree, rock) that yields ItemTypeID.
// ItemToEngageID names the tool a bot must hold to harvest it, if any.
type StructureType struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string     `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Health         int        `gorm:"column:health;not null" json:"health"`
	ItemTypeID     uuid.UUID  `gorm:"type:uuid;column:item_type_id;not null;index" json:"item_type_id"`
	MaxItems       int        `gorm:"column:max_items;not null" json:"max_items"`
	ItemToEngageID *uuid.UUID `gorm:"type:uuid;column:item_to_engage_id;index" json:"item_to_engage_id"`

	ItemType     *ItemType `gorm:"foreignKey:ItemTypeID" json:"item_type,omitempty"`
	ItemToEngage *ItemType `gorm:"foreignKey:ItemToEngageID" json:"item_to_engage,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (StructureType) TableName() string { return "structure_type" }

type Structure struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TypeID uuid.UUID `gorm:"type:uuid;column:type_id;not null;index" json:"type_id"`
	Items  int       `gorm:"column:items;not null;default:0" json:"items"`
	X      int       `gorm:"column:x;not null" json:"x"`
	Y      int       `gorm:"column:y;not null" json:"y"`

	Type *StructureType `gorm:"foreignKey:TypeID" json:"type,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Structure) TableName() string { return "structure" }
