package game

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos/testutil"
	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
)

func TestRecipeRepo_ReadPlan(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	log := testutil.Logger(t)

	wood := testutil.SeedItemType(t, ctx, tx, "Wood", nil)
	plank := testutil.SeedItemType(t, ctx, tx, "Plank", nil)
	sawmill := testutil.SeedBuildingType(t, ctx, tx, "Sawmill", 100)

	recipes := NewRecipeRepo(db, log)
	ingredients := NewRecipeIngredientRepo(db, log)

	created, err := recipes.Create(dbc, []*types.Recipe{{
		Name:             "Planks",
		BuildingTypeID:   sawmill.ID,
		OutputItemTypeID: plank.ID,
		OutputAmount:     4,
	}})
	if err != nil {
		t.Fatalf("Create recipe: %v", err)
	}
	recipeID := created[0].ID
	if _, err := ingredients.Create(dbc, []*types.RecipeIngredient{
		{RecipeID: recipeID, ItemTypeID: wood.ID, Amount: 1},
	}); err != nil {
		t.Fatalf("Create ingredients: %v", err)
	}

	got, err := recipes.GetByID(dbc, recipeID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: err=%v got=%v", err, got)
	}
	if len(got.Ingredients) != 1 || got.Ingredients[0].ItemType == nil || got.Ingredients[0].ItemType.Name != "Wood" {
		t.Fatalf("GetByID: ingredients not loaded: %+v", got.Ingredients)
	}
	if got.OutputItemType == nil || got.OutputItemType.ID != plank.ID {
		t.Fatalf("GetByID: output item not loaded: %+v", got.OutputItemType)
	}
	if got.BuildingType == nil || got.BuildingType.Name != "Sawmill" {
		t.Fatalf("GetByID: building type not loaded: %+v", got.BuildingType)
	}

	byBuilding, err := recipes.ListByBuildingType(dbc, sawmill.ID)
	if err != nil || len(byBuilding) != 1 {
		t.Fatalf("ListByBuildingType: err=%v len=%d", err, len(byBuilding))
	}

	if err := ingredients.DeleteByRecipeIDs(dbc, []uuid.UUID{recipeID}); err != nil {
		t.Fatalf("DeleteByRecipeIDs: %v", err)
	}
	left, err := ingredients.GetByRecipeIDs(dbc, []uuid.UUID{recipeID})
	if err != nil || len(left) != 0 {
		t.Fatalf("GetByRecipeIDs after delete: err=%v len=%d", err, len(left))
	}
}

func TestBotTypeRepo_ReadPlan(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	log := testutil.Logger(t)

	iron := testutil.SeedItemType(t, ctx, tx, "Iron", nil)

	bots := NewBotTypeRepo(db, log)
	lines := NewBotRecipeRepo(db, log)

	created, err := bots.Create(dbc, []*types.BotType{{Name: "Worker", Health: 10, Strength: 2, Speed: 3, Vision: 4}})
	if err != nil {
		t.Fatalf("Create bot type: %v", err)
	}
	if _, err := lines.Create(dbc, []*types.BotRecipe{{BotTypeID: created[0].ID, ItemTypeID: iron.ID, Amount: 3}}); err != nil {
		t.Fatalf("Create bot recipe: %v", err)
	}

	list, err := bots.List(dbc)
	if err != nil || len(list) != 1 {
		t.Fatalf("List: err=%v len=%d", err, len(list))
	}
	if len(list[0].BotRecipes) != 1 || list[0].BotRecipes[0].ItemType == nil || list[0].BotRecipes[0].Amount != 3 {
		t.Fatalf("List: recipes not loaded: %+v", list[0].BotRecipes)
	}

	byName, err := bots.GetByName(dbc, "Worker")
	if err != nil || byName == nil {
		t.Fatalf("GetByName: err=%v got=%v", err, byName)
	}
	if len(byName.BotRecipes) != 0 {
		t.Fatalf("GetByName: expected no preload, got %d lines", len(byName.BotRecipes))
	}
}
