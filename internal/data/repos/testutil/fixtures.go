package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
)

func SeedItemType(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, durability *int) *types.ItemType {
	tb.Helper()
	it := &types.ItemType{
		ID:         uuid.New(),
		Name:       name,
		Durability: durability,
	}
	if err := tx.WithContext(ctx).Create(it).Error; err != nil {
		tb.Fatalf("seed item type: %v", err)
	}
	return it
}

func SeedBuildingType(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, health int) *types.BuildingType {
	tb.Helper()
	bt := &types.BuildingType{
		ID:     uuid.New(),
		Name:   name,
		Health: health,
	}
	if err := tx.WithContext(ctx).Omit("BuildingRecipes").Create(bt).Error; err != nil {
		tb.Fatalf("seed building type: %v", err)
	}
	return bt
}

func SeedClient(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Client {
	tb.Helper()
	c := &types.Client{
		ID:    uuid.New(),
		Name:  name,
		Token: "tok-" + uuid.NewString(),
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed client: %v", err)
	}
	return c
}

func IntPtr(v int) *int { return &v }
