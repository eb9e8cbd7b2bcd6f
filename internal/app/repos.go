package app

import (
	"gorm.io/gorm"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

type Repos struct {
	Client           repos.ClientRepo
	ItemType         repos.ItemTypeRepo
	StructureType    repos.StructureTypeRepo
	BotType          repos.BotTypeRepo
	BotRecipe        repos.BotRecipeRepo
	BuildingType     repos.BuildingTypeRepo
	BuildingRecipe   repos.BuildingRecipeRepo
	Recipe           repos.RecipeRepo
	RecipeIngredient repos.RecipeIngredientRepo
	SeedApplication  repos.SeedApplicationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Client:           repos.NewClientRepo(db, log),
		ItemType:         repos.NewItemTypeRepo(db, log),
		StructureType:    repos.NewStructureTypeRepo(db, log),
		BotType:          repos.NewBotTypeRepo(db, log),
		BotRecipe:        repos.NewBotRecipeRepo(db, log),
		BuildingType:     repos.NewBuildingTypeRepo(db, log),
		BuildingRecipe:   repos.NewBuildingRecipeRepo(db, log),
		Recipe:           repos.NewRecipeRepo(db, log),
		RecipeIngredient: repos.NewRecipeIngredientRepo(db, log),
		SeedApplication:  repos.NewSeedApplicationRepo(db, log),
	}
}
