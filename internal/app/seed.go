package app

import (
	"context"
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/aggregates"
	"github.com/andrKonan/ProjectAutomate-server/internal/observability"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
	"github.com/andrKonan/ProjectAutomate-server/internal/seed"
)

func wireSeedStore(db *gorm.DB, tx aggregates.TxRunner, r Repos) *seed.Store {
	return &seed.Store{
		DB:                db,
		Tx:                tx,
		ItemTypes:         r.ItemType,
		StructureTypes:    r.StructureType,
		BotTypes:          r.BotType,
		BotRecipes:        r.BotRecipe,
		BuildingTypes:     r.BuildingType,
		BuildingRecipes:   r.BuildingRecipe,
		Recipes:           r.Recipe,
		RecipeIngredients: r.RecipeIngredient,
		Applications:      r.SeedApplication,
	}
}

// runSeed applies the seed sources before the server accepts requests.
// Any fatal seed error is returned so startup aborts.
func runSeed(ctx context.Context, log *logger.Logger, cfg SeedConfig, store *seed.Store, metrics *observability.Metrics) (seed.Report, error) {
	if !cfg.Enabled {
		log.Info("Seed pipeline disabled")
		return seed.Report{}, nil
	}
	manifest, err := seed.LoadManifest(cfg.ManifestPath)
	if err != nil {
		return seed.Report{}, fmt.Errorf("load seed manifest: %w", err)
	}
	runner, err := seed.NewRunner(store, seed.RunnerConfig{
		FS:              os.DirFS(cfg.Dir),
		Manifest:        manifest,
		ConflictRetries: cfg.ConflictRetries,
		Metrics:         metrics,
	}, log)
	if err != nil {
		return seed.Report{}, err
	}
	log.Info("Running seed pipeline", "dir", cfg.Dir, "sources", len(manifest.Sources))
	report, err := runner.Run(ctx)
	if err != nil {
		return report, fmt.Errorf("seed: %w", err)
	}
	return report, nil
}
