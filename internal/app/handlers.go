package app

import (
	httpH "github.com/andrKonan/ProjectAutomate-server/internal/http/handlers"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

type Handlers struct {
	Health        *httpH.HealthHandler
	Client        *httpH.ClientHandler
	ItemType      *httpH.ItemTypeHandler
	StructureType *httpH.StructureTypeHandler
	BotType       *httpH.BotTypeHandler
	BuildingType  *httpH.BuildingTypeHandler
	Recipe        *httpH.RecipeHandler
	Seed          *httpH.SeedHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:        httpH.NewHealthHandler(),
		Client:        httpH.NewClientHandler(s.Client),
		ItemType:      httpH.NewItemTypeHandler(s.ItemType),
		StructureType: httpH.NewStructureTypeHandler(s.StructureType),
		BotType:       httpH.NewBotTypeHandler(s.BotType),
		BuildingType:  httpH.NewBuildingTypeHandler(s.BuildingType),
		Recipe:        httpH.NewRecipeHandler(s.Recipe),
		Seed:          httpH.NewSeedHandler(s.SeedLedger),
	}
}
