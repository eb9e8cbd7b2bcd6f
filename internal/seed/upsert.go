package seed

import (
	"fmt"

	"github.com/google/uuid"

	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
)

// Upserter persists resolved records by natural key.
type Upserter interface {
	// Upsert returns the id of the entity named res.Key(). An existing entity
	// is returned untouched with created=false; otherwise the entity and its
	// child rows are inserted through dbc.
	Upsert(dbc dbctx.Context, res Resolved) (id uuid.UUID, created bool, err error)
}

type upserter struct {
	store *Store
}

func NewUpserter(store *Store) Upserter {
	return &upserter{store: store}
}

func (u *upserter) Upsert(dbc dbctx.Context, res Resolved) (uuid.UUID, bool, error) {
	if res == nil {
		return uuid.Nil, false, parseError("seed.upsert", "nil record", nil)
	}
	existing, found, err := u.store.LookupID(dbc, res.Kind(), res.Key())
	if err != nil {
		return uuid.Nil, false, storageError("lookup", res, err)
	}
	if found {
		return existing, false, nil
	}

	id, err := u.create(dbc, res)
	if err != nil {
		return uuid.Nil, false, storageError("create", res, err)
	}
	return id, true, nil
}

func (u *upserter) create(dbc dbctx.Context, res Resolved) (uuid.UUID, error) {
	switch v := res.(type) {
	case ResolvedItem:
		rows, err := u.store.ItemTypes.Create(dbc, []*types.ItemType{{
			Name:       v.Name,
			Durability: v.Durability,
		}})
		if err != nil {
			return uuid.Nil, err
		}
		return rows[0].ID, nil

	case ResolvedStructure:
		rows, err := u.store.StructureTypes.Create(dbc, []*types.StructureType{{
			Name:           v.Name,
			Health:         v.Health,
			ItemTypeID:     v.ItemTypeID,
			MaxItems:       v.MaxItems,
			ItemToEngageID: v.ItemToEngageID,
		}})
		if err != nil {
			return uuid.Nil, err
		}
		return rows[0].ID, nil

	case ResolvedBot:
		rows, err := u.store.BotTypes.Create(dbc, []*types.BotType{{
			Name:     v.Name,
			Health:   v.Health,
			Strength: v.Strength,
			Speed:    v.Speed,
			Vision:   v.Vision,
		}})
		if err != nil {
			return uuid.Nil, err
		}
		parentID := rows[0].ID
		lines := make([]*types.BotRecipe, 0, len(v.Recipes))
		for _, l := range v.Recipes {
			lines = append(lines, &types.BotRecipe{BotTypeID: parentID, ItemTypeID: l.ItemTypeID, Amount: l.Amount})
		}
		if _, err := u.store.BotRecipes.Create(dbc, lines); err != nil {
			return uuid.Nil, fmt.Errorf("bot recipes: %w", err)
		}
		return parentID, nil

	case ResolvedBuilding:
		rows, err := u.store.BuildingTypes.Create(dbc, []*types.BuildingType{{
			Name:   v.Name,
			Health: v.Health,
		}})
		if err != nil {
			return uuid.Nil, err
		}
		parentID := rows[0].ID
		lines := make([]*types.BuildingRecipe, 0, len(v.Recipes))
		for _, l := range v.Recipes {
			lines = append(lines, &types.BuildingRecipe{BuildingTypeID: parentID, ItemTypeID: l.ItemTypeID, Amount: l.Amount})
		}
		if _, err := u.store.BuildingRecipes.Create(dbc, lines); err != nil {
			return uuid.Nil, fmt.Errorf("building recipes: %w", err)
		}
		return parentID, nil

	case ResolvedRecipe:
		rows, err := u.store.Recipes.Create(dbc, []*types.Recipe{{
			Name:             v.Name,
			BuildingTypeID:   v.BuildingTypeID,
			OutputItemTypeID: v.OutputItemTypeID,
			OutputAmount:     v.OutputAmount,
		}})
		if err != nil {
			return uuid.Nil, err
		}
		parentID := rows[0].ID
		lines := make([]*types.RecipeIngredient, 0, len(v.Ingredients))
		for _, l := range v.Ingredients {
			lines = append(lines, &types.RecipeIngredient{RecipeID: parentID, ItemTypeID: l.ItemTypeID, Amount: l.Amount})
		}
		if _, err := u.store.RecipeIngredients.Create(dbc, lines); err != nil {
			return uuid.Nil, fmt.Errorf("recipe ingredients: %w", err)
		}
		return parentID, nil

	default:
		return uuid.Nil, fmt.Errorf("unsupported resolved record %T", res)
	}
}

func storageError(step string, res Resolved, err error) error {
	return NewError(CodeStorage, "seed.upsert", fmt.Sprintf("%s %s %q: %v", step, res.Kind(), res.Key(), err), err)
}
