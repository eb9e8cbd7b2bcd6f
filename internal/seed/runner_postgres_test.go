package seed

import (
	"context"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos/testutil"
	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
)

func TestRunner_ConcurrentRunsPostgres(t *testing.T) {
	db := testutil.PostgresDB(t)
	testutil.ResetPostgres(t, db)
	ctx := context.Background()

	fsys := files(
		"items.yaml", "items:\n  - name: Wood\n  - name: Stone\n  - {name: Axe, durability: 40}\n",
		"structures.yaml", sawmillStructs+"  - {name: Tree, health: 20, item_type: Wood, max_items: 4, item_to_engage: Axe}\n",
		"buildings.yaml", "buildings:\n  - {name: Workshop, health: 80, recipes: [{item_type: Stone, amount: 4}]}\n",
	)
	srcs := []Source{itemsSrc, structuresSrc, buildingsSrc}

	const runs = 4
	reports := make([]Report, runs)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < runs; i++ {
		i := i
		r := newRunner(t, db, fsys, func(cfg *RunnerConfig) { cfg.ConflictRetries = 3 })
		g.Go(func() error {
			rep, err := r.RunSources(gctx, srcs)
			reports[i] = rep
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent runs must not error: %v", err)
	}

	for fi := range srcs {
		applied := 0
		for _, rep := range reports {
			if rep.Files[fi].Outcome == OutcomeApplied {
				applied++
			}
		}
		if applied != 1 {
			t.Fatalf("%s: expected exactly one applying run, got %d", srcs[fi].Path, applied)
		}
	}

	if n := count(t, db, &types.ItemType{}); n != 3 {
		t.Fatalf("item types: expected 3, got %d", n)
	}
	if n := count(t, db, &types.StructureType{}); n != 2 {
		t.Fatalf("structure types: expected 2, got %d", n)
	}
	if n := count(t, db, &types.BuildingRecipe{}); n != 1 {
		t.Fatalf("building recipes: expected 1, got %d", n)
	}
	if n := count(t, db, &types.SeedApplication{}); n != 3 {
		t.Fatalf("ledger rows: expected 3, got %d", n)
	}
}
