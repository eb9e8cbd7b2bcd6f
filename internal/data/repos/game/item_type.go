package game

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

type ItemTypeRepo interface {
	Create(dbc dbctx.Context, rows []*types.ItemType) ([]*types.ItemType, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.ItemType, error)
	GetByName(dbc dbctx.Context, name string) (*types.ItemType, error)
	List(dbc dbctx.Context) ([]*types.ItemType, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error
	CountReferences(dbc dbctx.Context, id uuid.UUID) (int64, error)
}

type itemTypeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewItemTypeRepo(db *gorm.DB, baseLog *logger.Logger) ItemTypeRepo {
	return &itemTypeRepo{db: db, log: baseLog.With("repo", "ItemTypeRepo")}
}

func (r *itemTypeRepo) Create(dbc dbctx.Context, rows []*types.ItemType) ([]*types.ItemType, error) {
	if len(rows) == 0 {
		return []*types.ItemType{}, nil
	}
	for _, row := range rows {
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
	}
	if err := dbc.Conn(r.db).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *itemTypeRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.ItemType, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.ItemType
	if err := dbc.Conn(r.db).Where("id = ?", id).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

// GetByName returns nil, nil when no item type has that name.
func (r *itemTypeRepo) GetByName(dbc dbctx.Context, name string) (*types.ItemType, error) {
	if name == "" {
		return nil, nil
	}
	var row types.ItemType
	if err := dbc.Conn(r.db).Where("name = ?", name).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *itemTypeRepo) List(dbc dbctx.Context) ([]*types.ItemType, error) {
	var out []*types.ItemType
	if err := dbc.Conn(r.db).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *itemTypeRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	if id == uuid.Nil || len(updates) == 0 {
		return nil
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now()
	}
	return dbc.Conn(r.db).
		Model(&types.ItemType{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *itemTypeRepo) DeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return dbc.Conn(r.db).Where("id IN ?", ids).Delete(&types.ItemType{}).Error
}

func (r *itemTypeRepo) CountReferences(dbc dbctx.Context, id uuid.UUID) (int64, error) {
	return countRefs(dbc.Conn(r.db), itemTypeRefs, id)
}
