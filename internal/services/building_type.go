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

type BuildingTypeInput struct {
	Name    string        `json:"name" binding:"required"`
	Health  int           `json:"health" binding:"gte=0"`
	Recipes []AmountInput `json:"recipes" binding:"omitempty,dive"`
}

// BuildingTypePatch updates the given fields. A non-nil Recipes replaces the construction cost.
type BuildingTypePatch struct {
	Name    *string        `json:"name"`
	Health  *int           `json:"health" binding:"omitempty,gte=0"`
	Recipes *[]AmountInput `json:"recipes"`
}

type BuildingTypeService interface {
	List(ctx context.Context) ([]*types.BuildingType, error)
	Get(ctx context.Context, id uuid.UUID) (*types.BuildingType, error)
	Create(ctx context.Context, in BuildingTypeInput) (*types.BuildingType, error)
	Update(ctx context.Context, id uuid.UUID, in BuildingTypePatch) (*types.BuildingType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type buildingTypeService struct {
	log       *logger.Logger
	tx        aggregates.TxRunner
	buildings repos.BuildingTypeRepo
	recipes   repos.BuildingRecipeRepo
	items     repos.ItemTypeRepo
}

func NewBuildingTypeService(
	log *logger.Logger,
	tx aggregates.TxRunner,
	buildings repos.BuildingTypeRepo,
	recipes repos.BuildingRecipeRepo,
	items repos.ItemTypeRepo,
) BuildingTypeService {
	return &buildingTypeService{
		log:       log.With("service", "BuildingTypeService"),
		tx:        tx,
		buildings: buildings,
		recipes:   recipes,
		items:     items,
	}
}

func (s *buildingTypeService) List(ctx context.Context) ([]*types.BuildingType, error) {
	return s.buildings.List(dbctx.Context{Ctx: ctx})
}

func (s *buildingTypeService) Get(ctx context.Context, id uuid.UUID) (*types.BuildingType, error) {
	bt, err := s.buildings.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, err
	}
	if bt == nil {
		return nil, apierr.NotFound("building type")
	}
	return bt, nil
}

func (s *buildingTypeService) Create(ctx context.Context, in BuildingTypeInput) (*types.BuildingType, error) {
	name, err := cleanName(in.Name)
	if err != nil {
		return nil, err
	}
	if err := nonNegative("health", in.Health); err != nil {
		return nil, err
	}
	var id uuid.UUID
	err = s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		existing, err := s.buildings.GetByName(dbc, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return apierr.Conflict("building type name already exists")
		}
		if err := checkLines(dbc, s.items, in.Recipes); err != nil {
			return err
		}
		rows, err := s.buildings.Create(dbc, []*types.BuildingType{{Name: name, Health: in.Health}})
		if err != nil {
			return err
		}
		id = rows[0].ID
		return s.writeRecipes(dbc, id, in.Recipes)
	})
	if err != nil {
		return nil, mapWriteErr(err, "building type")
	}
	s.log.Info("building type created", "id", id, "name", name, "recipes", len(in.Recipes))
	return s.Get(ctx, id)
}

func (s *buildingTypeService) Update(ctx context.Context, id uuid.UUID, in BuildingTypePatch) (*types.BuildingType, error) {
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
	if in.Health != nil {
		if err := nonNegative("health", *in.Health); err != nil {
			return nil, err
		}
		updates["health"] = *in.Health
	}

	err := s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		cur, err := s.buildings.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return apierr.NotFound("building type")
		}
		if newName != "" {
			holder, err := s.buildings.GetByName(dbc, newName)
			if err != nil {
				return err
			}
			if holder != nil {
				if err := checkRename("building type", holder.ID, id); err != nil {
					return err
				}
			}
		}
		if in.Recipes != nil {
			if err := checkLines(dbc, s.items, *in.Recipes); err != nil {
				return err
			}
			if err := s.recipes.DeleteByBuildingTypeIDs(dbc, []uuid.UUID{id}); err != nil {
				return err
			}
			if err := s.writeRecipes(dbc, id, *in.Recipes); err != nil {
				return err
			}
			updates["updated_at"] = time.Now()
		}
		return s.buildings.UpdateFields(dbc, id, updates)
	})
	if err != nil {
		return nil, mapWriteErr(err, "building type")
	}
	return s.Get(ctx, id)
}

func (s *buildingTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		cur, err := s.buildings.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return apierr.NotFound("building type")
		}
		n, err := s.buildings.CountReferences(dbc, id)
		if err != nil {
			return err
		}
		if err := ensureUnused("building type", n); err != nil {
			return err
		}
		if err := s.recipes.DeleteByBuildingTypeIDs(dbc, []uuid.UUID{id}); err != nil {
			return err
		}
		return s.buildings.DeleteByIDs(dbc, []uuid.UUID{id})
	})
	if err != nil {
		return mapWriteErr(err, "building type")
	}
	s.log.Info("building type deleted", "id", id)
	return nil
}

func (s *buildingTypeService) writeRecipes(dbc dbctx.Context, buildingTypeID uuid.UUID, lines []AmountInput) error {
	if len(lines) == 0 {
		return nil
	}
	rows := make([]*types.BuildingRecipe, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, &types.BuildingRecipe{BuildingTypeID: buildingTypeID, ItemTypeID: l.ItemTypeID, Amount: l.Amount})
	}
	_, err := s.recipes.Create(dbc, rows)
	return err
}
