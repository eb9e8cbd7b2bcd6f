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

type BotTypeInput struct {
	Name     string        `json:"name" binding:"required"`
	Health   int           `json:"health" binding:"gte=0"`
	Strength int           `json:"strength" binding:"gte=0"`
	Speed    int           `json:"speed" binding:"gte=0"`
	Vision   int           `json:"vision" binding:"gte=0"`
	Recipes  []AmountInput `json:"recipes" binding:"omitempty,dive"`
}

// BotTypePatch updates the given fields. A non-nil Recipes replaces every cost line.
type BotTypePatch struct {
	Name     *string        `json:"name"`
	Health   *int           `json:"health" binding:"omitempty,gte=0"`
	Strength *int           `json:"strength" binding:"omitempty,gte=0"`
	Speed    *int           `json:"speed" binding:"omitempty,gte=0"`
	Vision   *int           `json:"vision" binding:"omitempty,gte=0"`
	Recipes  *[]AmountInput `json:"recipes"`
}

type BotTypeService interface {
	List(ctx context.Context) ([]*types.BotType, error)
	Get(ctx context.Context, id uuid.UUID) (*types.BotType, error)
	Create(ctx context.Context, in BotTypeInput) (*types.BotType, error)
	Update(ctx context.Context, id uuid.UUID, in BotTypePatch) (*types.BotType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type botTypeService struct {
	log     *logger.Logger
	tx      aggregates.TxRunner
	bots    repos.BotTypeRepo
	recipes repos.BotRecipeRepo
	items   repos.ItemTypeRepo
}

func NewBotTypeService(
	log *logger.Logger,
	tx aggregates.TxRunner,
	bots repos.BotTypeRepo,
	recipes repos.BotRecipeRepo,
	items repos.ItemTypeRepo,
) BotTypeService {
	return &botTypeService{
		log:     log.With("service", "BotTypeService"),
		tx:      tx,
		bots:    bots,
		recipes: recipes,
		items:   items,
	}
}

func (s *botTypeService) List(ctx context.Context) ([]*types.BotType, error) {
	return s.bots.List(dbctx.Context{Ctx: ctx})
}

func (s *botTypeService) Get(ctx context.Context, id uuid.UUID) (*types.BotType, error) {
	bt, err := s.bots.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, err
	}
	if bt == nil {
		return nil, apierr.NotFound("bot type")
	}
	return bt, nil
}

func (s *botTypeService) Create(ctx context.Context, in BotTypeInput) (*types.BotType, error) {
	name, err := cleanName(in.Name)
	if err != nil {
		return nil, err
	}
	for field, v := range map[string]int{"health": in.Health, "strength": in.Strength, "speed": in.Speed, "vision": in.Vision} {
		if err := nonNegative(field, v); err != nil {
			return nil, err
		}
	}
	var id uuid.UUID
	err = s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		existing, err := s.bots.GetByName(dbc, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return apierr.Conflict("bot type name already exists")
		}
		if err := checkLines(dbc, s.items, in.Recipes); err != nil {
			return err
		}
		rows, err := s.bots.Create(dbc, []*types.BotType{{
			Name:     name,
			Health:   in.Health,
			Strength: in.Strength,
			Speed:    in.Speed,
			Vision:   in.Vision,
		}})
		if err != nil {
			return err
		}
		id = rows[0].ID
		return s.writeRecipes(dbc, id, in.Recipes)
	})
	if err != nil {
		return nil, mapWriteErr(err, "bot type")
	}
	s.log.Info("bot type created", "id", id, "name", name, "recipes", len(in.Recipes))
	return s.Get(ctx, id)
}

func (s *botTypeService) Update(ctx context.Context, id uuid.UUID, in BotTypePatch) (*types.BotType, error) {
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
	for col, v := range map[string]*int{"health": in.Health, "strength": in.Strength, "speed": in.Speed, "vision": in.Vision} {
		if v == nil {
			continue
		}
		if err := nonNegative(col, *v); err != nil {
			return nil, err
		}
		updates[col] = *v
	}

	err := s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		cur, err := s.bots.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return apierr.NotFound("bot type")
		}
		if newName != "" {
			holder, err := s.bots.GetByName(dbc, newName)
			if err != nil {
				return err
			}
			if holder != nil {
				if err := checkRename("bot type", holder.ID, id); err != nil {
					return err
				}
			}
		}
		if in.Recipes != nil {
			if err := checkLines(dbc, s.items, *in.Recipes); err != nil {
				return err
			}
			if err := s.recipes.DeleteByBotTypeIDs(dbc, []uuid.UUID{id}); err != nil {
				return err
			}
			if err := s.writeRecipes(dbc, id, *in.Recipes); err != nil {
				return err
			}
			updates["updated_at"] = time.Now()
		}
		return s.bots.UpdateFields(dbc, id, updates)
	})
	if err != nil {
		return nil, mapWriteErr(err, "bot type")
	}
	return s.Get(ctx, id)
}

func (s *botTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		cur, err := s.bots.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return apierr.NotFound("bot type")
		}
		n, err := s.bots.CountReferences(dbc, id)
		if err != nil {
			return err
		}
		if err := ensureUnused("bot type", n); err != nil {
			return err
		}
		if err := s.recipes.DeleteByBotTypeIDs(dbc, []uuid.UUID{id}); err != nil {
			return err
		}
		return s.bots.DeleteByIDs(dbc, []uuid.UUID{id})
	})
	if err != nil {
		return mapWriteErr(err, "bot type")
	}
	s.log.Info("bot type deleted", "id", id)
	return nil
}

func (s *botTypeService) writeRecipes(dbc dbctx.Context, botTypeID uuid.UUID, lines []AmountInput) error {
	if len(lines) == 0 {
		return nil
	}
	rows := make([]*types.BotRecipe, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, &types.BotRecipe{BotTypeID: botTypeID, ItemTypeID: l.ItemTypeID, Amount: l.Amount})
	}
	_, err := s.recipes.Create(dbc, rows)
	return err
}
