package game

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a production recipe run inside a building type.
type Recipe struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	BuildingTypeID   uuid.UUID `gorm:"type:uuid;column:building_type_id;not null;index" json:"building_type_id"`
	OutputItemTypeID uuid.UUID `gorm:"type:uuid;column:output_item_type_id;not null;index" json:"output_item_type_id"`
	OutputAmount     int       `gorm:"column:output_amount;not null" json:"output_amount"`

	Ingredients    []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
	OutputItemType *ItemType          `gorm:"foreignKey:OutputItemTypeID" json:"output_item_type,omitempty"`
	BuildingType   *BuildingType      `gorm:"foreignKey:BuildingTypeID" json:"building_type,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Recipe) TableName() string { return "recipe" }

type RecipeIngredient struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID   uuid.UUID `gorm:"type:uuid;column:recipe_id;not null;index" json:"recipe_id"`
	ItemTypeID uuid.UUID `gorm:"type:uuid;column:item_type_id;not null;index" json:"item_type_id"`
	Amount     int       `gorm:"column:amount;not null" json:"amount"`

	ItemType *ItemType `gorm:"foreignKey:ItemTypeID" json:"item_type,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredient" }
