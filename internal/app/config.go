package app

import (
	"time"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/db"
	"github.com/andrKonan/ProjectAutomate-server/internal/observability"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/envutil"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

type SeedConfig struct {
	Enabled         bool
	Dir             string
	ManifestPath    string
	ConflictRetries int
}

type Config struct {
	Port           string
	AllowedOrigins []string

	DB      db.Config
	Seed    SeedConfig
	Otel    observability.OtelConfig
	Metrics observability.MetricsConfig
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:           envutil.String("PORT", "8000", log),
		AllowedOrigins: envutil.List("CORS_ALLOWED_ORIGINS", nil, log),
		DB: db.Config{
			Driver:           envutil.String("DB_DRIVER", db.DriverSQLite, log),
			SQLitePath:       envutil.String("SQLITE_PATH", "./game.db", log),
			PostgresHost:     envutil.String("POSTGRES_HOST", "localhost", log),
			PostgresPort:     envutil.String("POSTGRES_PORT", "5432", log),
			PostgresUser:     envutil.String("POSTGRES_USER", "postgres", log),
			PostgresPassword: envutil.String("POSTGRES_PASSWORD", "", log),
			PostgresName:     envutil.String("POSTGRES_NAME", "automate", log),
			PostgresSSLMode:  envutil.String("POSTGRES_SSLMODE", "disable", log),
		},
		Seed: SeedConfig{
			Enabled:         envutil.Bool("SEED_ENABLED", true, log),
			Dir:             envutil.String("SEED_DIR", "./seed", log),
			ManifestPath:    envutil.String("SEED_MANIFEST", "", log),
			ConflictRetries: envutil.Int("SEED_CONFLICT_RETRIES", 3, log),
		},
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false, log),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "project-automate", log),
			Environment: envutil.String("APP_ENV", "development", log),
			Version:     envutil.String("APP_VERSION", "", log),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", "", log),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "", log)),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false, log),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 0.1, log),
		},
		Metrics: observability.MetricsConfig{
			Enabled:        envutil.Bool("METRICS_ENABLED", false, log),
			ScrapeInterval: time.Duration(envutil.Int("METRICS_SCRAPE_INTERVAL_SECONDS", 10, log)) * time.Second,
		},
	}
}
