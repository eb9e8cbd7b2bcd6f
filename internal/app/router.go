package app

import (
	httpserver "github.com/andrKonan/ProjectAutomate-server/internal/http"
	"github.com/andrKonan/ProjectAutomate-server/internal/observability"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

func wireServer(log *logger.Logger, cfg Config, metrics *observability.Metrics, h Handlers, mw Middleware) *httpserver.Server {
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.Otel.ServiceName
	}
	return httpserver.NewServer(httpserver.RouterConfig{
		ServiceName:          serviceName,
		AllowedOrigins:       cfg.AllowedOrigins,
		Log:                  log,
		Metrics:              metrics,
		AuthMiddleware:       mw.Auth,
		HealthHandler:        h.Health,
		ClientHandler:        h.Client,
		ItemTypeHandler:      h.ItemType,
		StructureTypeHandler: h.StructureType,
		BotTypeHandler:       h.BotType,
		BuildingTypeHandler:  h.BuildingType,
		RecipeHandler:        h.Recipe,
		SeedHandler:          h.Seed,
	})
}
