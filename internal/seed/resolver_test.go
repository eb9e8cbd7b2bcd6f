package seed

import (
	"context"
	"testing"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos/testutil"
	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
)

func TestResolver(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx}
	wood := testutil.SeedItemType(t, ctx, db, "Wood", nil)

	r := NewResolver(NewStore(db, testutil.Logger(t)))

	id, err := r.Resolve(dbc, KindItem, "Wood")
	if err != nil || id != wood.ID {
		t.Fatalf("Resolve: err=%v id=%s want=%s", err, id, wood.ID)
	}

	if _, err := r.Resolve(dbc, KindItem, "Stone"); !IsCode(err, CodeReferenceNotFound) {
		t.Fatalf("Resolve (absent): expected reference error, got %v", err)
	}
	if _, err := r.Resolve(dbc, KindBuilding, "Wood"); !IsCode(err, CodeReferenceNotFound) {
		t.Fatalf("Resolve (wrong kind): expected reference error, got %v", err)
	}

	opt, err := r.ResolveOptional(dbc, KindItem, "")
	if err != nil || opt != nil {
		t.Fatalf("ResolveOptional (empty): err=%v id=%v", err, opt)
	}
	if _, err := r.ResolveOptional(dbc, KindItem, "Stone"); !IsCode(err, CodeReferenceNotFound) {
		t.Fatalf("ResolveOptional (absent): expected reference error, got %v", err)
	}

	var n int64
	if err := db.Model(&types.ItemType{}).Count(&n).Error; err != nil || n != 1 {
		t.Fatalf("resolver must not create: err=%v items=%d", err, n)
	}
}

func TestResolver_ResolveRecordLines(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx}
	wood := testutil.SeedItemType(t, ctx, db, "Wood", nil)
	plank := testutil.SeedItemType(t, ctx, db, "Plank", nil)
	mill := testutil.SeedBuildingType(t, ctx, db, "Sawmill", 100)

	r := NewResolver(NewStore(db, testutil.Logger(t)))
	res, err := r.ResolveRecord(dbc, RecipeRecord{
		Name:           "Saw Planks",
		BuildingType:   "Sawmill",
		OutputItemType: "Plank",
		OutputAmount:   4,
		Ingredients:    []AmountLine{{ItemType: "Wood", Amount: 1}},
	})
	if err != nil {
		t.Fatalf("ResolveRecord: %v", err)
	}
	rr, ok := res.(ResolvedRecipe)
	if !ok {
		t.Fatalf("ResolveRecord: unexpected type %T", res)
	}
	if rr.BuildingTypeID != mill.ID || rr.OutputItemTypeID != plank.ID || len(rr.Ingredients) != 1 || rr.Ingredients[0].ItemTypeID != wood.ID {
		t.Fatalf("ResolveRecord: unexpected ids %+v", rr)
	}
}
