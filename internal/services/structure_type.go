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

type StructureTypeInput struct {
	Name           string     `json:"name" binding:"required"`
	Health         int        `json:"health" binding:"gte=0"`
	ItemTypeID     uuid.UUID  `json:"item_type_id" binding:"required"`
	MaxItems       int        `json:"max_items" binding:"gte=0"`
	ItemToEngageID *uuid.UUID `json:"item_to_engage_id"`
}

type StructureTypePatch struct {
	Name              *string    `json:"name"`
	Health            *int       `json:"health" binding:"omitempty,gte=0"`
	ItemTypeID        *uuid.UUID `json:"item_type_id"`
	MaxItems          *int       `json:"max_items" binding:"omitempty,gte=0"`
	ItemToEngageID    *uuid.UUID `json:"item_to_engage_id"`
	ClearItemToEngage bool       `json:"clear_item_to_engage"`
}

type StructureTypeService interface {
	List(ctx context.Context) ([]*types.StructureType, error)
	Get(ctx context.Context, id uuid.UUID) (*types.StructureType, error)
	Create(ctx context.Context, in StructureTypeInput) (*types.StructureType, error)
	Update(ctx context.Context, id uuid.UUID, in StructureTypePatch) (*types.StructureType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type structureTypeService struct {
	log        *logger.Logger
	tx         aggregates.TxRunner
	structures repos.StructureTypeRepo
	items      repos.ItemTypeRepo
}

func NewStructureTypeService(
	log *logger.Logger,
	tx aggregates.TxRunner,
	structures repos.StructureTypeRepo,
	items repos.ItemTypeRepo,
) StructureTypeService {
	return &structureTypeService{
		log:        log.With("service", "StructureTypeService"),
		tx:         tx,
		structures: structures,
		items:      items,
	}
}

func (s *structureTypeService) List(ctx context.Context) ([]*types.StructureType, error) {
	return s.structures.List(dbctx.Context{Ctx: ctx})
}

func (s *structureTypeService) Get(ctx context.Context, id uuid.UUID) (*types.StructureType, error) {
	st, err := s.structures.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, apierr.NotFound("structure type")
	}
	return st, nil
}

func (s *structureTypeService) Create(ctx context.Context, in StructureTypeInput) (*types.StructureType, error) {
	name, err := cleanName(in.Name)
	if err != nil {
		return nil, err
	}
	if err := nonNegative("health", in.Health); err != nil {
		return nil, err
	}
	if err := nonNegative("max_items", in.MaxItems); err != nil {
		return nil, err
	}
	var id uuid.UUID
	err = s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		existing, err := s.structures.GetByName(dbc, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return apierr.Conflict("structure type name already exists")
		}
		if err := requireItemType(dbc, s.items, in.ItemTypeID, "item_type_id"); err != nil {
			return err
		}
		if in.ItemToEngageID != nil {
			if err := requireItemType(dbc, s.items, *in.ItemToEngageID, "item_to_engage_id"); err != nil {
				return err
			}
		}
		rows, err := s.structures.Create(dbc, []*types.StructureType{{
			Name:           name,
			Health:         in.Health,
			ItemTypeID:     in.ItemTypeID,
			MaxItems:       in.MaxItems,
			ItemToEngageID: in.ItemToEngageID,
		}})
		if err != nil {
			return err
		}
		id = rows[0].ID
		return nil
	})
	if err != nil {
		return nil, mapWriteErr(err, "structure type")
	}
	s.log.Info("structure type created", "id", id, "name", name)
	return s.Get(ctx, id)
}

func (s *structureTypeService) Update(ctx context.Context, id uuid.UUID, in StructureTypePatch) (*types.StructureType, error) {
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
	if in.MaxItems != nil {
		if err := nonNegative("max_items", *in.MaxItems); err != nil {
			return nil, err
		}
		updates["max_items"] = *in.MaxItems
	}

	err := s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		cur, err := s.structures.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return apierr.NotFound("structure type")
		}
		if newName != "" {
			holder, err := s.structures.GetByName(dbc, newName)
			if err != nil {
				return err
			}
			if holder != nil {
				if err := checkRename("structure type", holder.ID, id); err != nil {
					return err
				}
			}
		}
		if in.ItemTypeID != nil {
			if err := requireItemType(dbc, s.items, *in.ItemTypeID, "item_type_id"); err != nil {
				return err
			}
			updates["item_type_id"] = *in.ItemTypeID
		}
		switch {
		case in.ClearItemToEngage:
			updates["item_to_engage_id"] = nil
		case in.ItemToEngageID != nil:
			if err := requireItemType(dbc, s.items, *in.ItemToEngageID, "item_to_engage_id"); err != nil {
				return err
			}
			updates["item_to_engage_id"] = *in.ItemToEngageID
		}
		return s.structures.UpdateFields(dbc, id, updates)
	})
	if err != nil {
		return nil, mapWriteErr(err, "structure type")
	}
	return s.Get(ctx, id)
}

func (s *structureTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		cur, err := s.structures.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return apierr.NotFound("structure type")
		}
		n, err := s.structures.CountReferences(dbc, id)
		if err != nil {
			return err
		}
		if err := ensureUnused("structure type", n); err != nil {
			return err
		}
		return s.structures.DeleteByIDs(dbc, []uuid.UUID{id})
	})
	if err != nil {
		return mapWriteErr(err, "structure type")
	}
	s.log.Info("structure type deleted", "id", id)
	return nil
}
