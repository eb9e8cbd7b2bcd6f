package game

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos/testutil"
	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
)

func TestCountReferences(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	log := testutil.Logger(t)

	wood := testutil.SeedItemType(t, ctx, tx, "Wood", nil)
	plank := testutil.SeedItemType(t, ctx, tx, "Plank", nil)
	unused := testutil.SeedItemType(t, ctx, tx, "Stone", nil)
	sawmill := testutil.SeedBuildingType(t, ctx, tx, "Sawmill", 100)

	recipes := NewRecipeRepo(db, log)
	rows, err := recipes.Create(dbc, []*types.Recipe{{
		Name:             "Saw Planks",
		BuildingTypeID:   sawmill.ID,
		OutputItemTypeID: plank.ID,
		OutputAmount:     4,
	}})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if _, err := NewRecipeIngredientRepo(db, log).Create(dbc, []*types.RecipeIngredient{
		{RecipeID: rows[0].ID, ItemTypeID: wood.ID, Amount: 1},
	}); err != nil {
		t.Fatalf("create ingredient: %v", err)
	}

	items := NewItemTypeRepo(db, log)
	cases := []struct {
		name string
		id   uuid.UUID
		want int64
	}{
		{"ingredient", wood.ID, 1},
		{"output", plank.ID, 1},
		{"unused", unused.ID, 0},
		{"nil id", uuid.Nil, 0},
	}
	for _, tc := range cases {
		got, err := items.CountReferences(dbc, tc.id)
		if err != nil {
			t.Fatalf("%s: CountReferences: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %d want %d", tc.name, got, tc.want)
		}
	}

	n, err := NewBuildingTypeRepo(db, log).CountReferences(dbc, sawmill.ID)
	if err != nil {
		t.Fatalf("building CountReferences: %v", err)
	}
	if n != 1 {
		t.Fatalf("building refs: got %d want 1", n)
	}
}
