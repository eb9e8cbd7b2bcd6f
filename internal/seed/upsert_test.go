package seed

import (
	"context"
	"testing"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos/testutil"
	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
)

func TestUpserter_CreatesThenReturnsExisting(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	iron := testutil.SeedItemType(t, ctx, tx, "Iron", nil)

	u := NewUpserter(NewStore(db, testutil.Logger(t)))

	first := ResolvedBuilding{Name: "Smelter", Health: 200, Recipes: []ResolvedLine{{ItemTypeID: iron.ID, Amount: 3}}}
	id, created, err := u.Upsert(dbc, first)
	if err != nil || !created {
		t.Fatalf("Upsert (new): err=%v created=%v", err, created)
	}

	second := ResolvedBuilding{Name: "Smelter", Health: 1, Recipes: []ResolvedLine{{ItemTypeID: iron.ID, Amount: 9}}}
	again, created, err := u.Upsert(dbc, second)
	if err != nil || created || again != id {
		t.Fatalf("Upsert (existing): err=%v created=%v id=%s want=%s", err, created, again, id)
	}

	var bt types.BuildingType
	if err := tx.Preload("BuildingRecipes").Where("id = ?", id).First(&bt).Error; err != nil {
		t.Fatalf("load Smelter: %v", err)
	}
	if bt.Health != 200 || len(bt.BuildingRecipes) != 1 || bt.BuildingRecipes[0].Amount != 3 {
		t.Fatalf("existing building changed: %+v", bt)
	}
}
