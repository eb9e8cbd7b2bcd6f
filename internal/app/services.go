package app

import (
	"github.com/andrKonan/ProjectAutomate-server/internal/data/aggregates"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
	"github.com/andrKonan/ProjectAutomate-server/internal/seed"
	"github.com/andrKonan/ProjectAutomate-server/internal/services"
)

type Services struct {
	Client        services.ClientService
	ItemType      services.ItemTypeService
	StructureType services.StructureTypeService
	BotType       services.BotTypeService
	BuildingType  services.BuildingTypeService
	Recipe        services.RecipeService
	SeedLedger    services.SeedLedgerService
}

func wireServices(log *logger.Logger, tx aggregates.TxRunner, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Client:        services.NewClientService(log, tx, r.Client),
		ItemType:      services.NewItemTypeService(log, tx, r.ItemType),
		StructureType: services.NewStructureTypeService(log, tx, r.StructureType, r.ItemType),
		BotType:       services.NewBotTypeService(log, tx, r.BotType, r.BotRecipe, r.ItemType),
		BuildingType:  services.NewBuildingTypeService(log, tx, r.BuildingType, r.BuildingRecipe, r.ItemType),
		Recipe:        services.NewRecipeService(log, tx, r.Recipe, r.RecipeIngredient, r.BuildingType, r.ItemType),
		SeedLedger:    services.NewSeedLedgerService(log, seed.NewLedger(r.SeedApplication, log)),
	}
}
