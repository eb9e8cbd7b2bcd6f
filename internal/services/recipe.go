package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/aggregates"
	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos"
	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/apierr"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

type RecipeInput struct {
	Name             string        `json:"name" binding:"required"`
	BuildingTypeID   uuid.UUID     `json:"building_type_id" binding:"required"`
	OutputItemTypeID uuid.UUID     `json:"output_item_type_id" binding:"required"`
	OutputAmount     int           `json:"output_amount" binding:"gte=1"`
	Ingredients      []AmountInput `json:"ingredients" binding:"omitempty,dive"`
}

// RecipePatch updates the given fields. A non-nil Ingredients replaces every ingredient line.
type RecipePatch struct {
	Name             *string        `json:"name"`
	BuildingTypeID   *uuid.UUID     `json:"building_type_id"`
	OutputItemTypeID *uuid.UUID     `json:"output_item_type_id"`
	OutputAmount     *int           `json:"output_amount" binding:"omitempty,gte=1"`
	Ingredients      *[]AmountInput `json:"ingredients"`
}

type RecipeService interface {
	List(ctx context.Context, buildingTypeID uuid.UUID) ([]*types.Recipe, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Recipe, error)
	Create(ctx context.Context, in RecipeInput) (*types.Recipe, error)
	Update(ctx context.Context, id uuid.UUID, in RecipePatch) (*types.Recipe, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type recipeService struct {
	log         *logger.Logger
	tx          aggregates.TxRunner
	recipes     repos.RecipeRepo
	ingredients repos.RecipeIngredientRepo
	buildings   repos.BuildingTypeRepo
	items       repos.ItemTypeRepo
}

func NewRecipeService(
	log *logger.Logger,
	tx aggregates.TxRunner,
	recipes repos.RecipeRepo,
	ingredients repos.RecipeIngredientRepo,
	buildings repos.BuildingTypeRepo,
	items repos.ItemTypeRepo,
) RecipeService {
	return &recipeService{
		log:         log.With("service", "RecipeService"),
		tx:          tx,
		recipes:     recipes,
		ingredients: ingredients,
		buildings:   buildings,
		items:       items,
	}
}

// List returns every recipe, or only those of buildingTypeID when it is set.
func (s *recipeService) List(ctx context.Context, buildingTypeID uuid.UUID) ([]*types.Recipe, error) {
	dbc := dbctx.Context{Ctx: ctx}
	if buildingTypeID != uuid.Nil {
		return s.recipes.ListByBuildingType(dbc, buildingTypeID)
	}
	return s.recipes.List(dbc)
}

func (s *recipeService) Get(ctx context.Context, id uuid.UUID) (*types.Recipe, error) {
	r, err := s.recipes.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apierr.NotFound("recipe")
	}
	return r, nil
}

func (s *recipeService) requireBuildingType(dbc dbctx.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apierr.BadRequest("building_type_id is required")
	}
	bt, err := s.buildings.GetByID(dbc, id)
	if err != nil {
		return err
	}
	if bt == nil {
		return apierr.BadRequest("building_type_id " + id.String() + " does not exist")
	}
	return nil
}

func (s *recipeService) Create(ctx context.Context, in RecipeInput) (*types.Recipe, error) {
	name, err := cleanName(in.Name)
	if err != nil {
		return nil, err
	}
	if in.OutputAmount < 1 {
		return nil, apierr.BadRequest("output_amount must be at least 1")
	}
	var id uuid.UUID
	err = s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		existing, err := s.recipes.GetByName(dbc, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return apierr.Conflict("recipe name already exists")
		}
		if err := s.requireBuildingType(dbc, in.BuildingTypeID); err != nil {
			return err
		}
		if err := requireItemType(dbc, s.items, in.OutputItemTypeID, "output_item_type_id"); err != nil {
			return err
		}
		if err := checkLines(dbc, s.items, in.Ingredients); err != nil {
			return err
		}
		rows, err := s.recipes.Create(dbc, []*types.Recipe{{
			Name:             name,
			BuildingTypeID:   in.BuildingTypeID,
			OutputItemTypeID: in.OutputItemTypeID,
			OutputAmount:     in.OutputAmount,
		}})
		if err != nil {
			return err
		}
		id = rows[0].ID
		return s.writeIngredients(dbc, id, in.Ingredients)
	})
	if err != nil {
		return nil, mapWriteErr(err, "recipe")
	}
	s.log.Info("recipe created", "id", id, "name", name, "ingredients", len(in.Ingredients))
	return s.Get(ctx, id)
}

func (s *recipeService) Update(ctx context.Context, id uuid.UUID, in RecipePatch) (*types.Recipe, error) {
	updates := map[string]interface{}{}
	var newName string
	if in.Name != nil {
		name, err := cleanName(*in.Name)
		if err != nil {
			return nil, err
		}
		newName = name
		updates["name"] = name
	}
	if in.OutputAmount != nil {
		if *in.OutputAmount < 1 {
			return nil, apierr.BadRequest("output_amount must be at least 1")
		}
		updates["output_amount"] = *in.OutputAmount
	}

	err := s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		cur, err := s.recipes.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return apierr.NotFound("recipe")
		}
		if newName != "" {
			holder, err := s.recipes.GetByName(dbc, newName)
			if err != nil {
				return err
			}
			if holder != nil {
				if err := checkRename("recipe", holder.ID, id); err != nil {
					return err
				}
			}
		}
		if in.BuildingTypeID != nil {
			if err := s.requireBuildingType(dbc, *in.BuildingTypeID); err != nil {
				return err
			}
			updates["building_type_id"] = *in.BuildingTypeID
		}
		if in.OutputItemTypeID != nil {
			if err := requireItemType(dbc, s.items, *in.OutputItemTypeID, "output_item_type_id"); err != nil {
				return err
			}
			updates["output_item_type_id"] = *in.OutputItemTypeID
		}
		if in.Ingredients != nil {
			if err := checkLines(dbc, s.items, *in.Ingredients); err != nil {
				return err
			}
			if err := s.ingredients.DeleteByRecipeIDs(dbc, []uuid.UUID{id}); err != nil {
				return err
			}
			if err := s.writeIngredients(dbc, id, *in.Ingredients); err != nil {
				return err
			}
			updates["updated_at"] = time.Now()
		}
		return s.recipes.UpdateFields(dbc, id, updates)
	})
	if err != nil {
		return nil, mapWriteErr(err, "recipe")
	}
	return s.Get(ctx, id)
}

func (s *recipeService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		cur, err := s.recipes.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return apierr.NotFound("recipe")
		}
		if err := s.ingredients.DeleteByRecipeIDs(dbc, []uuid.UUID{id}); err != nil {
			return err
		}
		return s.recipes.DeleteByIDs(dbc, []uuid.UUID{id})
	})
	if err != nil {
		return mapWriteErr(err, "recipe")
	}
	s.log.Info("recipe deleted", "id", id)
	return nil
}

func (s *recipeService) writeIngredients(dbc dbctx.Context, recipeID uuid.UUID, lines []AmountInput) error {
	if len(lines) == 0 {
		return nil
	}
	rows := make([]*types.RecipeIngredient, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, &types.RecipeIngredient{RecipeID: recipeID, ItemTypeID: l.ItemTypeID, Amount: l.Amount})
	}
	_, err := s.ingredients.Create(dbc, rows)
	return err
}
