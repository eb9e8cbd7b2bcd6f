package domain

import (
	"github.com/andrKonan/ProjectAutomate-server/internal/domain/game"
	"github.com/andrKonan/ProjectAutomate-server/internal/domain/seedmeta"
)

type ItemType = game.ItemType
type StructureType = game.StructureType
type Structure = game.Structure
type BotType = game.BotType
type BotRecipe = game.BotRecipe
type Bot = game.Bot
type BotInventorySlot = game.BotInventorySlot
type BuildingType = game.BuildingType
type BuildingRecipe = game.BuildingRecipe
type Building = game.Building
type Recipe = game.Recipe
type RecipeIngredient = game.RecipeIngredient
type Client = game.Client

type SeedApplication = seedmeta.Application

// AllModels lists every persisted model in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&Client{},

		&ItemType{},
		&StructureType{},
		&Structure{},
		&BotType{},
		&BotRecipe{},
		&Bot{},
		&BotInventorySlot{},
		&BuildingType{},
		&BuildingRecipe{},
		&Building{},
		&Recipe{},
		&RecipeIngredient{},

		&SeedApplication{},
	}
}
