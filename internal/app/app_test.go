package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/db"
	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos/testutil"
	"github.com/andrKonan/ProjectAutomate-server/internal/observability"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
	"github.com/andrKonan/ProjectAutomate-server/internal/seed"
)

// countTracingShutdowns swaps in a tracer init whose shutdown counts calls.
func countTracingShutdowns(t *testing.T) *int {
	t.Helper()
	calls := 0
	prev := initTracing
	initTracing = func(context.Context, *logger.Logger, observability.OtelConfig) func(context.Context) error {
		return func(context.Context) error {
			calls++
			return nil
		}
	}
	t.Cleanup(func() { initTracing = prev })
	return &calls
}

func writeUnresolvedSeed(t *testing.T) string {
	t.Helper()
	seedDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(seedDir, "items.yaml"), []byte("items:\n  - name: Wood\n"), 0o644); err != nil {
		t.Fatalf("write items: %v", err)
	}
	if err := os.WriteFile(filepath.Join(seedDir, "structures.yaml"), []byte("structures:\n  - name: Tree\n    health: 1\n    item_type: Ghost\n    max_items: 1\n"), 0o644); err != nil {
		t.Fatalf("write structures: %v", err)
	}
	return seedDir
}

func testConfig(t *testing.T, dbPath, seedDir string) Config {
	t.Helper()
	return Config{
		Port: "0",
		DB:   db.Config{Driver: db.DriverSQLite, SQLitePath: dbPath},
		Seed: SeedConfig{Enabled: true, Dir: seedDir, ConflictRetries: 1},
	}
}

func TestNewWithConfig_SeedsOnceAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "game.db")
	cfg := testConfig(t, dbPath, filepath.Join("..", "..", "seed"))

	first, err := NewWithConfig(ctx, testutil.Logger(t), cfg)
	if err != nil {
		t.Fatalf("first start: %v", err)
	}
	if got := first.SeedReport.Count(seed.OutcomeApplied); got != 5 {
		t.Fatalf("first start: expected 5 applied files, got %d (%+v)", got, first.SeedReport)
	}
	items, err := first.Services.ItemType.List(ctx)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) == 0 {
		t.Fatalf("expected seeded item types")
	}
	first.Close(ctx)

	second, err := NewWithConfig(ctx, testutil.Logger(t), cfg)
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	defer second.Close(ctx)
	if got := second.SeedReport.Count(seed.OutcomeSkipped); got != 5 {
		t.Fatalf("second start: expected 5 skipped files, got %d", got)
	}
	again, err := second.Services.ItemType.List(ctx)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(again) != len(items) {
		t.Fatalf("restart changed item count: %d -> %d", len(items), len(again))
	}
}

func TestNewWithConfig_FailsFastOnBadSeed(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, filepath.Join(t.TempDir(), "game.db"), writeUnresolvedSeed(t))
	if _, err := NewWithConfig(ctx, testutil.Logger(t), cfg); err == nil {
		t.Fatalf("expected startup to fail on unresolved reference")
	} else if !seed.IsCode(err, seed.CodeReferenceNotFound) {
		t.Fatalf("expected reference_not_found, got %v", err)
	}
}

func TestNewWithConfig_SeedDisabled(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, filepath.Join(t.TempDir(), "game.db"), "does-not-exist")
	cfg.Seed.Enabled = false

	a, err := NewWithConfig(ctx, testutil.Logger(t), cfg)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer a.Close(ctx)
	if len(a.SeedReport.Files) != 0 {
		t.Fatalf("expected empty report, got %+v", a.SeedReport)
	}
}

func TestNewWithConfig_FlushesTracingWhenSeedFails(t *testing.T) {
	ctx := context.Background()
	shutdowns := countTracingShutdowns(t)

	cfg := testConfig(t, filepath.Join(t.TempDir(), "game.db"), writeUnresolvedSeed(t))
	if _, err := NewWithConfig(ctx, testutil.Logger(t), cfg); err == nil {
		t.Fatalf("expected startup to fail")
	}
	if *shutdowns != 1 {
		t.Fatalf("expected tracing shutdown once on failed startup, got %d", *shutdowns)
	}
}

func TestNewWithConfig_TracingShutdownDeferredToClose(t *testing.T) {
	ctx := context.Background()
	shutdowns := countTracingShutdowns(t)

	cfg := testConfig(t, filepath.Join(t.TempDir(), "game.db"), "unused")
	cfg.Seed.Enabled = false
	a, err := NewWithConfig(ctx, testutil.Logger(t), cfg)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if *shutdowns != 0 {
		t.Fatalf("tracing shut down during a successful start")
	}
	a.Close(ctx)
	if *shutdowns != 1 {
		t.Fatalf("expected tracing shutdown on Close, got %d", *shutdowns)
	}
}

func TestNewWithConfig_SeedMetrics(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, filepath.Join(t.TempDir(), "game.db"), filepath.Join("..", "..", "seed"))
	cfg.Metrics = observability.MetricsConfig{Enabled: true, ScrapeInterval: time.Hour}

	a, err := NewWithConfig(ctx, testutil.Logger(t), cfg)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer a.Close(ctx)
	if a.Metrics == nil {
		t.Fatalf("expected metrics to be wired")
	}
	applied := 0.0
	for _, kind := range []seed.Kind{seed.KindItem, seed.KindStructure, seed.KindBot, seed.KindBuilding, seed.KindRecipe} {
		applied += a.Metrics.SeedFiles(string(kind), string(seed.OutcomeApplied))
	}
	if applied != 5 {
		t.Fatalf("expected 5 applied files in metrics, got %v", applied)
	}
}
