package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/aggregates"
	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos"
	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/apierr"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

type ItemTypeInput struct {
	Name       string `json:"name" binding:"required"`
	Durability *int   `json:"durability" binding:"omitempty,gte=0"`
}

type ItemTypePatch struct {
	Name            *string `json:"name"`
	Durability      *int    `json:"durability" binding:"omitempty,gte=0"`
	ClearDurability bool    `json:"clear_durability"`
}

type ItemTypeService interface {
	List(ctx context.Context) ([]*types.ItemType, error)
	Get(ctx context.Context, id uuid.UUID) (*types.ItemType, error)
	Create(ctx context.Context, in ItemTypeInput) (*types.ItemType, error)
	Update(ctx context.Context, id uuid.UUID, in ItemTypePatch) (*types.ItemType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type itemTypeService struct {
	log   *logger.Logger
	tx    aggregates.TxRunner
	items repos.ItemTypeRepo
}

func NewItemTypeService(log *logger.Logger, tx aggregates.TxRunner, items repos.ItemTypeRepo) ItemTypeService {
	return &itemTypeService{
		log:   log.With("service", "ItemTypeService"),
		tx:    tx,
		items: items,
	}
}

func (s *itemTypeService) List(ctx context.Context) ([]*types.ItemType, error) {
	return s.items.List(dbctx.Context{Ctx: ctx})
}

func (s *itemTypeService) Get(ctx context.Context, id uuid.UUID) (*types.ItemType, error) {
	it, err := s.items.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, apierr.NotFound("item type")
	}
	return it, nil
}

func (s *itemTypeService) Create(ctx context.Context, in ItemTypeInput) (*types.ItemType, error) {
	name, err := cleanName(in.Name)
	if err != nil {
		return nil, err
	}
	if in.Durability != nil {
		if err := nonNegative("durability", *in.Durability); err != nil {
			return nil, err
		}
	}
	var out *types.ItemType
	err = s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		existing, err := s.items.GetByName(dbc, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return apierr.Conflict("item type name already exists")
		}
		rows, err := s.items.Create(dbc, []*types.ItemType{{Name: name, Durability: in.Durability}})
		if err != nil {
			return err
		}
		out = rows[0]
		return nil
	})
	if err != nil {
		return nil, mapWriteErr(err, "item type")
	}
	s.log.Info("item type created", "id", out.ID, "name", out.Name)
	return out, nil
}

func (s *itemTypeService) Update(ctx context.Context, id uuid.UUID, in ItemTypePatch) (*types.ItemType, error) {
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
	switch {
	case in.ClearDurability:
		updates["durability"] = nil
	case in.Durability != nil:
		if err := nonNegative("durability", *in.Durability); err != nil {
			return nil, err
		}
		updates["durability"] = *in.Durability
	}

	err := s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		cur, err := s.items.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return apierr.NotFound("item type")
		}
		if newName != "" {
			holder, err := s.items.GetByName(dbc, newName)
			if err != nil {
				return err
			}
			if holder != nil {
				if err := checkRename("item type", holder.ID, id); err != nil {
					return err
				}
			}
		}
		return s.items.UpdateFields(dbc, id, updates)
	})
	if err != nil {
		return nil, mapWriteErr(err, "item type")
	}
	return s.Get(ctx, id)
}

func (s *itemTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		cur, err := s.items.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return apierr.NotFound("item type")
		}
		n, err := s.items.CountReferences(dbc, id)
		if err != nil {
			return err
		}
		if err := ensureUnused("item type", n); err != nil {
			return err
		}
		return s.items.DeleteByIDs(dbc, []uuid.UUID{id})
	})
	if err != nil {
		return mapWriteErr(err, "item type")
	}
	s.log.Info("item type deleted", "id", id)
	return nil
}
