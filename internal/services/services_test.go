package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/aggregates"
	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos"
	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos/testutil"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/apierr"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/ctxutil"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

type fixture struct {
	db  *gorm.DB
	log *logger.Logger
	tx  aggregates.TxRunner

	items      ItemTypeService
	structures StructureTypeService
	bots       BotTypeService
	buildings  BuildingTypeService
	recipes    RecipeService
	clients    ClientService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	tx := aggregates.NewGormTxRunner(db)

	itemRepo := repos.NewItemTypeRepo(db, log)
	buildingRepo := repos.NewBuildingTypeRepo(db, log)
	return &fixture{
		db:         db,
		log:        log,
		tx:         tx,
		items:      NewItemTypeService(log, tx, itemRepo),
		structures: NewStructureTypeService(log, tx, repos.NewStructureTypeRepo(db, log), itemRepo),
		bots:       NewBotTypeService(log, tx, repos.NewBotTypeRepo(db, log), repos.NewBotRecipeRepo(db, log), itemRepo),
		buildings:  NewBuildingTypeService(log, tx, buildingRepo, repos.NewBuildingRecipeRepo(db, log), itemRepo),
		recipes: NewRecipeService(
			log, tx,
			repos.NewRecipeRepo(db, log),
			repos.NewRecipeIngredientRepo(db, log),
			buildingRepo,
			itemRepo,
		),
		clients: NewClientService(log, tx, repos.NewClientRepo(db, log)),
	}
}

func (f *fixture) item(t *testing.T, name string) uuid.UUID {
	t.Helper()
	it, err := f.items.Create(context.Background(), ItemTypeInput{Name: name})
	if err != nil {
		t.Fatalf("create item %q: %v", name, err)
	}
	return it.ID
}

func wantStatus(t *testing.T, err error, status int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected status %d, got nil error", status)
	}
	got, _ := apierr.StatusOf(err)
	if got != status {
		t.Fatalf("expected status %d, got %d (%v)", status, got, err)
	}
}

func TestItemTypeService_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	axe, err := f.items.Create(ctx, ItemTypeInput{Name: "  Axe ", Durability: testutil.IntPtr(100)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if axe.Name != "Axe" {
		t.Fatalf("expected trimmed name, got %q", axe.Name)
	}

	_, err = f.items.Create(ctx, ItemTypeInput{Name: "Axe"})
	wantStatus(t, err, http.StatusConflict)

	_, err = f.items.Create(ctx, ItemTypeInput{Name: " "})
	wantStatus(t, err, http.StatusBadRequest)

	_, err = f.items.Create(ctx, ItemTypeInput{Name: "Bad", Durability: testutil.IntPtr(-1)})
	wantStatus(t, err, http.StatusBadRequest)

	f.item(t, "Wood")
	rename := "Wood"
	_, err = f.items.Update(ctx, axe.ID, ItemTypePatch{Name: &rename})
	wantStatus(t, err, http.StatusConflict)

	updated, err := f.items.Update(ctx, axe.ID, ItemTypePatch{ClearDurability: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Durability != nil {
		t.Fatalf("expected durability cleared, got %v", *updated.Durability)
	}

	list, err := f.items.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Axe" || list[1].Name != "Wood" {
		t.Fatalf("unexpected list order: %+v", list)
	}

	if err := f.items.Delete(ctx, axe.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, err = f.items.Get(ctx, axe.ID)
	wantStatus(t, err, http.StatusNotFound)
	wantStatus(t, f.items.Delete(ctx, axe.ID), http.StatusNotFound)
}

func TestItemTypeService_DeleteReferenced(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	wood := f.item(t, "Wood")
	if _, err := f.structures.Create(ctx, StructureTypeInput{Name: "Tree", Health: 10, ItemTypeID: wood, MaxItems: 5}); err != nil {
		t.Fatalf("create structure: %v", err)
	}
	wantStatus(t, f.items.Delete(ctx, wood), http.StatusConflict)
}

func TestStructureTypeService_References(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	wood := f.item(t, "Wood")
	axe := f.item(t, "Axe")

	_, err := f.structures.Create(ctx, StructureTypeInput{Name: "Tree", ItemTypeID: uuid.New()})
	wantStatus(t, err, http.StatusBadRequest)

	tree, err := f.structures.Create(ctx, StructureTypeInput{
		Name:           "Tree",
		Health:         50,
		ItemTypeID:     wood,
		MaxItems:       8,
		ItemToEngageID: &axe,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tree.ItemType == nil || tree.ItemType.Name != "Wood" {
		t.Fatalf("expected ItemType preloaded, got %+v", tree.ItemType)
	}
	if tree.ItemToEngage == nil || tree.ItemToEngage.Name != "Axe" {
		t.Fatalf("expected ItemToEngage preloaded, got %+v", tree.ItemToEngage)
	}

	cleared, err := f.structures.Update(ctx, tree.ID, StructureTypePatch{ClearItemToEngage: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if cleared.ItemToEngageID != nil || cleared.ItemToEngage != nil {
		t.Fatalf("expected tool cleared, got %+v", cleared)
	}
}

func TestBotTypeService_RecipeLinesReplaced(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	wood := f.item(t, "Wood")
	gear := f.item(t, "Gear")

	bt, err := f.bots.Create(ctx, BotTypeInput{
		Name:    "Worker",
		Health:  100,
		Speed:   2,
		Recipes: []AmountInput{{ItemTypeID: wood, Amount: 5}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(bt.BotRecipes) != 1 || bt.BotRecipes[0].Amount != 5 {
		t.Fatalf("unexpected recipes: %+v", bt.BotRecipes)
	}

	_, err = f.bots.Create(ctx, BotTypeInput{Name: "Scout", Recipes: []AmountInput{{ItemTypeID: wood, Amount: 0}}})
	wantStatus(t, err, http.StatusBadRequest)

	lines := []AmountInput{{ItemTypeID: gear, Amount: 2}}
	updated, err := f.bots.Update(ctx, bt.ID, BotTypePatch{Recipes: &lines})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(updated.BotRecipes) != 1 || updated.BotRecipes[0].ItemTypeID != gear {
		t.Fatalf("expected recipes replaced, got %+v", updated.BotRecipes)
	}
	if updated.Health != 100 {
		t.Fatalf("expected health untouched, got %d", updated.Health)
	}

	if err := f.bots.Delete(ctx, bt.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	var left int64
	if err := f.db.Table("bot_recipe").Count(&left).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if left != 0 {
		t.Fatalf("expected recipe lines deleted with bot type, got %d", left)
	}
}

func TestRecipeService_CreateAndFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	wood := f.item(t, "Wood")
	plank := f.item(t, "Plank")
	sawmill, err := f.buildings.Create(ctx, BuildingTypeInput{
		Name:    "Sawmill",
		Health:  200,
		Recipes: []AmountInput{{ItemTypeID: wood, Amount: 10}},
	})
	if err != nil {
		t.Fatalf("create building: %v", err)
	}
	smelter, err := f.buildings.Create(ctx, BuildingTypeInput{Name: "Smelter", Health: 300})
	if err != nil {
		t.Fatalf("create smelter: %v", err)
	}

	_, err = f.recipes.Create(ctx, RecipeInput{Name: "Saw Planks", BuildingTypeID: uuid.New(), OutputItemTypeID: plank, OutputAmount: 4})
	wantStatus(t, err, http.StatusBadRequest)

	r, err := f.recipes.Create(ctx, RecipeInput{
		Name:             "Saw Planks",
		BuildingTypeID:   sawmill.ID,
		OutputItemTypeID: plank,
		OutputAmount:     4,
		Ingredients:      []AmountInput{{ItemTypeID: wood, Amount: 1}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.OutputItemType == nil || r.OutputItemType.Name != "Plank" {
		t.Fatalf("expected output item preloaded, got %+v", r.OutputItemType)
	}
	if len(r.Ingredients) != 1 || r.Ingredients[0].ItemType == nil || r.Ingredients[0].ItemType.Name != "Wood" {
		t.Fatalf("unexpected ingredients: %+v", r.Ingredients)
	}

	got, err := f.recipes.List(ctx, smelter.ID)
	if err != nil {
		t.Fatalf("List(smelter): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no smelter recipes, got %d", len(got))
	}
	all, err := f.recipes.List(ctx, uuid.Nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one recipe, got %d", len(all))
	}

	wantStatus(t, f.buildings.Delete(ctx, sawmill.ID), http.StatusConflict)
	if err := f.recipes.Delete(ctx, r.ID); err != nil {
		t.Fatalf("Delete recipe: %v", err)
	}
	if err := f.buildings.Delete(ctx, sawmill.ID); err != nil {
		t.Fatalf("Delete building: %v", err)
	}
}

func TestClientService_TokenAndOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice, token, err := f.clients.Register(ctx, "alice")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if len(token) != 2*clientTokenBytes {
		t.Fatalf("unexpected token length %d", len(token))
	}
	bob, _, err := f.clients.Register(ctx, "bob")
	if err != nil {
		t.Fatalf("Register bob: %v", err)
	}
	_, _, err = f.clients.Register(ctx, "alice")
	wantStatus(t, err, http.StatusConflict)

	authed, err := f.clients.SetContextFromToken(ctx, token)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	cd := ctxutil.GetClientData(authed)
	if cd == nil || cd.ClientID != alice.ID || cd.Name != "alice" {
		t.Fatalf("unexpected client data: %+v", cd)
	}

	_, err = f.clients.SetContextFromToken(ctx, "nope")
	wantStatus(t, err, http.StatusUnauthorized)

	_, err = f.clients.Rename(authed, bob.ID, "mallory")
	wantStatus(t, err, http.StatusForbidden)
	_, err = f.clients.Rename(ctx, alice.ID, "anon")
	wantStatus(t, err, http.StatusUnauthorized)

	renamed, err := f.clients.Rename(authed, alice.ID, "alice2")
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if renamed.Name != "alice2" {
		t.Fatalf("expected renamed client, got %q", renamed.Name)
	}

	if err := f.clients.Delete(authed, alice.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, err = f.clients.SetContextFromToken(ctx, token)
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Status != http.StatusUnauthorized {
		t.Fatalf("expected deleted client token rejected, got %v", err)
	}
}
