package app

import (
	"context"
	"fmt"
	"net"
	"os"

	"gorm.io/gorm"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/aggregates"
	"github.com/andrKonan/ProjectAutomate-server/internal/data/db"
	httpserver "github.com/andrKonan/ProjectAutomate-server/internal/http"
	"github.com/andrKonan/ProjectAutomate-server/internal/observability"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
	"github.com/andrKonan/ProjectAutomate-server/internal/seed"
)

type App struct {
	Log        *logger.Logger
	DB         *gorm.DB
	Cfg        Config
	Repos      Repos
	Services   Services
	Server     *httpserver.Server
	SeedReport seed.Report
	Metrics    *observability.Metrics

	dbService      *db.Service
	otelShutdown   func(context.Context) error
	stopCollectors context.CancelFunc
}

// New builds the application. The seed pipeline runs to completion before the
// router is wired; a fatal seed error aborts startup.
func New(ctx context.Context) (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)
	return NewWithConfig(ctx, log, cfg)
}

// initTracing is replaced in tests.
var initTracing = observability.InitOTel

func NewWithConfig(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	otelShutdown := initTracing(ctx, log, cfg.Otel)
	flushTracing := func() {
		if err := otelShutdown(ctx); err != nil {
			log.Warn("otel shutdown failed", "error", err)
		}
	}

	dbService, err := db.NewService(cfg.DB, log)
	if err != nil {
		flushTracing()
		log.Sync()
		return nil, fmt.Errorf("init db: %w", err)
	}
	fail := func(err error) (*App, error) {
		_ = dbService.Close()
		flushTracing()
		log.Sync()
		return nil, err
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		return fail(fmt.Errorf("db automigrate: %w", err))
	}
	theDB := dbService.DB()
	tx := aggregates.NewGormTxRunner(theDB)

	reposet := wireRepos(theDB, log)
	metrics := observability.NewMetrics(log, cfg.Metrics)

	report, err := runSeed(ctx, log, cfg.Seed, wireSeedStore(theDB, tx, reposet), metrics)
	if err != nil {
		log.Error("Seed pipeline failed", "error", err)
		return fail(err)
	}

	serviceset := wireServices(log, tx, reposet)
	handlerset := wireHandlers(log, serviceset)
	middleware := wireMiddleware(log, serviceset)
	server := wireServer(log, cfg, metrics, handlerset, middleware)

	collectorCtx, stopCollectors := context.WithCancel(context.Background())
	metrics.StartDBCollector(collectorCtx, log, theDB, cfg.Metrics.ScrapeInterval)

	return &App{
		Log:            log,
		DB:             theDB,
		Cfg:            cfg,
		Repos:          reposet,
		Services:       serviceset,
		Server:         server,
		SeedReport:     report,
		Metrics:        metrics,
		dbService:      dbService,
		otelShutdown:   otelShutdown,
		stopCollectors: stopCollectors,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	addr := net.JoinHostPort("", a.Cfg.Port)
	a.Log.Info("HTTP server listening", "addr", addr)
	return a.Server.Run(addr)
}

func (a *App) Close(ctx context.Context) {
	if a == nil {
		return
	}
	if a.stopCollectors != nil {
		a.stopCollectors()
	}
	if a.Server != nil {
		if err := a.Server.Shutdown(ctx); err != nil {
			a.Log.Warn("HTTP shutdown failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if a.dbService != nil {
		if err := a.dbService.Close(); err != nil {
			a.Log.Warn("db close failed", "error", err)
		}
	}
	a.Log.Sync()
}
