package game

import (
	"time"

	"github.com/google/uuid"
)

type BuildingType struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name   string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Health int       `gorm:"column:health;not null" json:"health"`

	// BuildingRecipes is the construction cost; production recipes live in Recipe.
	BuildingRecipes []BuildingRecipe `gorm:"foreignKey:BuildingTypeID" json:"building_recipes,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (BuildingType) TableName() string { return "building_type" }

type BuildingRecipe struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BuildingTypeID uuid.UUID `gorm:"type:uuid;column:building_type_id;not null;index" json:"building_type_id"`
	ItemTypeID     uuid.UUID `gorm:"type:uuid;column:item_type_id;not null;index" json:"item_type_id"`
	Amount         int       `gorm:"column:amount;not null" json:"amount"`

	ItemType *ItemType `gorm:"foreignKey:ItemTypeID" json:"item_type,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (BuildingRecipe) TableName() string { return "building_recipe" }

type Building struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"column:name;not null;default:'Unnamed Building'" json:"name"`
	TypeID        uuid.UUID `gorm:"type:uuid;column:type_id;not null;index" json:"type_id"`
	ClientID      uuid.UUID `gorm:"type:uuid;column:client_id;not null;index" json:"client_id"`
	X             int       `gorm:"column:x;not null" json:"x"`
	Y             int       `gorm:"column:y;not null" json:"y"`
	Level         int       `gorm:"column:level;not null;default:1" json:"level"`
	CurrentHealth int       `gorm:"column:current_health;not null" json:"current_health"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Building) TableName() string { return "building" }
