package repos

import (
	"gorm.io/gorm"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos/game"
	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos/seedrepo"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

type ItemTypeRepo = game.ItemTypeRepo
type StructureTypeRepo = game.StructureTypeRepo
type BotTypeRepo = game.BotTypeRepo
type BotRecipeRepo = game.BotRecipeRepo
type BuildingTypeRepo = game.BuildingTypeRepo
type BuildingRecipeRepo = game.BuildingRecipeRepo
type RecipeRepo = game.RecipeRepo
type RecipeIngredientRepo = game.RecipeIngredientRepo
type ClientRepo = game.ClientRepo

type SeedApplicationRepo = seedrepo.ApplicationRepo

func NewItemTypeRepo(db *gorm.DB, baseLog *logger.Logger) ItemTypeRepo {
	return game.NewItemTypeRepo(db, baseLog)
}
func NewStructureTypeRepo(db *gorm.DB, baseLog *logger.Logger) StructureTypeRepo {
	return game.NewStructureTypeRepo(db, baseLog)
}
func NewBotTypeRepo(db *gorm.DB, baseLog *logger.Logger) BotTypeRepo {
	return game.NewBotTypeRepo(db, baseLog)
}
func NewBotRecipeRepo(db *gorm.DB, baseLog *logger.Logger) BotRecipeRepo {
	return game.NewBotRecipeRepo(db, baseLog)
}
func NewBuildingTypeRepo(db *gorm.DB, baseLog *logger.Logger) BuildingTypeRepo {
	return game.NewBuildingTypeRepo(db, baseLog)
}
func NewBuildingRecipeRepo(db *gorm.DB, baseLog *logger.Logger) BuildingRecipeRepo {
	return game.NewBuildingRecipeRepo(db, baseLog)
}
func NewRecipeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeRepo {
	return game.NewRecipeRepo(db, baseLog)
}
func NewRecipeIngredientRepo(db *gorm.DB, baseLog *logger.Logger) RecipeIngredientRepo {
	return game.NewRecipeIngredientRepo(db, baseLog)
}
func NewClientRepo(db *gorm.DB, baseLog *logger.Logger) ClientRepo {
	return game.NewClientRepo(db, baseLog)
}

func NewSeedApplicationRepo(db *gorm.DB, baseLog *logger.Logger) SeedApplicationRepo {
	return seedrepo.NewApplicationRepo(db, baseLog)
}
