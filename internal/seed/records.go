package seed

import (
	"github.com/google/uuid"
)

// Kind names one seedable entity type.
type Kind string

const (
	KindItem      Kind = "item"
	KindStructure Kind = "structure"
	KindBot       Kind = "bot"
	KindBuilding  Kind = "building"
	KindRecipe    Kind = "recipe"
)

var kindCollections = map[Kind]string{
	KindItem:      "items",
	KindStructure: "structures",
	KindBot:       "bots",
	KindBuilding:  "buildings",
	KindRecipe:    "recipes",
}

// kindReferences lists the kinds a record of each kind can name.
var kindReferences = map[Kind][]Kind{
	KindStructure: {KindItem},
	KindBot:       {KindItem},
	KindBuilding:  {KindItem},
	KindRecipe:    {KindItem, KindBuilding},
}

func (k Kind) Valid() bool {
	_, ok := kindCollections[k]
	return ok
}

// Collection is the top-level YAML key holding records of this kind.
func (k Kind) Collection() string { return kindCollections[k] }

func (k Kind) References() []Kind { return kindReferences[k] }

// Record is one parsed source entry. Key is its natural key.
type Record interface {
	Kind() Kind
	Key() string
}

type ItemRecord struct {
	Name       string `yaml:"name" validate:"required"`
	Durability *int   `yaml:"durability" validate:"omitempty,gte=0"`
}

func (ItemRecord) Kind() Kind { return KindItem }
func (r ItemRecord) Key() string { return r.Name }

type StructureRecord struct {
	Name         string `yaml:"name" validate:"required"`
	Health       *int   `yaml:"health" validate:"required,gte=0"`
	ItemType     string `yaml:"item_type" validate:"required"`
	MaxItems     *int   `yaml:"max_items" validate:"required,gte=0"`
	ItemToEngage string `yaml:"item_to_engage"`
}

func (StructureRecord) Kind() Kind { return KindStructure }
func (r StructureRecord) Key() string { return r.Name }

// AmountLine is a child row naming an item type and a quantity.
type AmountLine struct {
	ItemType string `yaml:"item_type" validate:"required"`
	Amount   int    `yaml:"amount" validate:"gte=1"`
}

type BotRecord struct {
	Name     string       `yaml:"name" validate:"required"`
	Health   *int         `yaml:"health" validate:"required,gte=0"`
	Strength *int         `yaml:"strength" validate:"required,gte=0"`
	Speed    *int         `yaml:"speed" validate:"required,gte=0"`
	Vision   *int         `yaml:"vision" validate:"required,gte=0"`
	Recipes  []AmountLine `yaml:"recipes" validate:"dive"`
}

func (BotRecord) Kind() Kind { return KindBot }
func (r BotRecord) Key() string { return r.Name }

type BuildingRecord struct {
	Name    string       `yaml:"name" validate:"required"`
	Health  *int         `yaml:"health" validate:"required,gte=0"`
	Recipes []AmountLine `yaml:"recipes" validate:"dive"`
}

func (BuildingRecord) Kind() Kind { return KindBuilding }
func (r BuildingRecord) Key() string { return r.Name }

type RecipeRecord struct {
	Name           string       `yaml:"name" validate:"required"`
	BuildingType   string       `yaml:"building_type" validate:"required"`
	OutputItemType string       `yaml:"output_item_type" validate:"required"`
	OutputAmount   int          `yaml:"output_amount" validate:"gte=1"`
	Ingredients    []AmountLine `yaml:"ingredients" validate:"dive"`
}

func (RecipeRecord) Kind() Kind { return KindRecipe }
func (r RecipeRecord) Key() string { return r.Name }

// Resolved is a record whose references have been replaced by stored ids.
// It is the only input the Upserter accepts.
type Resolved interface {
	Kind() Kind
	Key() string
}

type ResolvedLine struct {
	ItemTypeID uuid.UUID
	Amount     int
}

type ResolvedItem struct {
	Name       string
	Durability *int
}

func (ResolvedItem) Kind() Kind { return KindItem }
func (r ResolvedItem) Key() string { return r.Name }

type ResolvedStructure struct {
	Name           string
	Health         int
	ItemTypeID     uuid.UUID
	MaxItems       int
	ItemToEngageID *uuid.UUID
}

func (ResolvedStructure) Kind() Kind { return KindStructure }
func (r ResolvedStructure) Key() string { return r.Name }

type ResolvedBot struct {
	Name     string
	Health   int
	Strength int
	Speed    int
	Vision   int
	Recipes  []ResolvedLine
}

func (ResolvedBot) Kind() Kind { return KindBot }
func (r ResolvedBot) Key() string { return r.Name }

type ResolvedBuilding struct {
	Name    string
	Health  int
	Recipes []ResolvedLine
}

func (ResolvedBuilding) Kind() Kind { return KindBuilding }
func (r ResolvedBuilding) Key() string { return r.Name }

type ResolvedRecipe struct {
	Name             string
	BuildingTypeID   uuid.UUID
	OutputItemTypeID uuid.UUID
	OutputAmount     int
	Ingredients      []ResolvedLine
}

func (ResolvedRecipe) Kind() Kind { return KindRecipe }
func (r ResolvedRecipe) Key() string { return r.Name }
