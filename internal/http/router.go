package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/andrKonan/ProjectAutomate-server/internal/http/handlers"
	httpMW "github.com/andrKonan/ProjectAutomate-server/internal/http/middleware"
	"github.com/andrKonan/ProjectAutomate-server/internal/observability"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

type RouterConfig struct {
	ServiceName    string
	AllowedOrigins []string
	Log            *logger.Logger
	Metrics        *observability.Metrics

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler        *httpH.HealthHandler
	ClientHandler        *httpH.ClientHandler
	ItemTypeHandler      *httpH.ItemTypeHandler
	StructureTypeHandler *httpH.StructureTypeHandler
	BotTypeHandler       *httpH.BotTypeHandler
	BuildingTypeHandler  *httpH.BuildingTypeHandler
	RecipeHandler        *httpH.RecipeHandler
	SeedHandler          *httpH.SeedHandler
}

// crud is the handler set shared by every game type resource.
type crud interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func mountCRUD(g *gin.RouterGroup, path string, h crud) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.GET(path+"/:id", h.Get)
	g.PATCH(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Prometheus exposition
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	api := r.Group("/api")
	{
		// Client registration (public)
		if cfg.ClientHandler != nil {
			api.POST("/clients", cfg.ClientHandler.Register)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Clients
		if cfg.ClientHandler != nil {
			protected.GET("/clients", cfg.ClientHandler.List)
			protected.GET("/clients/:id", cfg.ClientHandler.Get)
			protected.PATCH("/clients/:id", cfg.ClientHandler.Rename)
			protected.DELETE("/clients/:id", cfg.ClientHandler.Delete)
		}

		// Game types
		if cfg.ItemTypeHandler != nil {
			mountCRUD(protected, "/item-types", cfg.ItemTypeHandler)
		}
		if cfg.StructureTypeHandler != nil {
			mountCRUD(protected, "/structure-types", cfg.StructureTypeHandler)
		}
		if cfg.BotTypeHandler != nil {
			mountCRUD(protected, "/bot-types", cfg.BotTypeHandler)
		}
		if cfg.BuildingTypeHandler != nil {
			mountCRUD(protected, "/building-types", cfg.BuildingTypeHandler)
		}
		if cfg.RecipeHandler != nil {
			mountCRUD(protected, "/recipes", cfg.RecipeHandler)
		}

		// Seed ledger (read-only)
		if cfg.SeedHandler != nil {
			protected.GET("/seed/applications", cfg.SeedHandler.ListApplications)
		}
	}

	return r
}
