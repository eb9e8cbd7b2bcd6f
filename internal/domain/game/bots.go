package game

import (
	"time"

	"github.com/google/uuid"
)

type BotType struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Health   int       `gorm:"column:health;not null" json:"health"`
	Strength int       `gorm:"column:strength;not null" json:"strength"`
	Speed    int       `gorm:"column:speed;not null" json:"speed"`
	Vision   int       `gorm:"column:vision;not null" json:"vision"`

	// BotRecipes is the item cost of building one bot of this type.
	BotRecipes []BotRecipe `gorm:"foreignKey:BotTypeID" json:"bot_recipes,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (BotType) TableName() string { return "bot_type" }

type BotRecipe struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BotTypeID  uuid.UUID `gorm:"type:uuid;column:bot_type_id;not null;index" json:"bot_type_id"`
	ItemTypeID uuid.UUID `gorm:"type:uuid;column:item_type_id;not null;index" json:"item_type_id"`
	Amount     int       `gorm:"column:amount;not null" json:"amount"`

	ItemType *ItemType `gorm:"foreignKey:ItemTypeID" json:"item_type,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (BotRecipe) TableName() string { return "bot_recipe" }

type Bot struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"column:name;not null;default:'Unnamed Bot'" json:"name"`
	TypeID   uuid.UUID `gorm:"type:uuid;column:type_id;not null;index" json:"type_id"`
	ClientID uuid.UUID `gorm:"type:uuid;column:client_id;not null;index" json:"client_id"`
	X        int       `gorm:"column:x;not null" json:"x"`
	Y        int       `gorm:"column:y;not null" json:"y"`
	Level    int       `gorm:"column:level;not null;default:1" json:"level"`

	Inventory []BotInventorySlot `gorm:"foreignKey:BotID" json:"inventory,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Bot) TableName() string { return "bot" }

type BotInventorySlot struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	BotID          uuid.UUID  `gorm:"type:uuid;column:bot_id;not null;uniqueIndex:uq_bot_slot" json:"bot_id"`
	SlotIndex      int        `gorm:"column:slot_index;not null;uniqueIndex:uq_bot_slot" json:"slot_index"`
	ItemTypeID     *uuid.UUID `gorm:"type:uuid;column:item_type_id" json:"item_type_id"`
	ItemDurability *int       `gorm:"column:item_durability" json:"item_durability"`
}

func (BotInventorySlot) TableName() string { return "bot_inventory_slot" }
