package game

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

type StructureTypeRepo interface {
	Create(dbc dbctx.Context, rows []*types.StructureType) ([]*types.StructureType, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.StructureType, error)
	GetByName(dbc dbctx.Context, name string) (*types.StructureType, error)
	List(dbc dbctx.Context) ([]*types.StructureType, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error
	CountReferences(dbc dbctx.Context, id uuid.UUID) (int64, error)
}

type structureTypeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStructureTypeRepo(db *gorm.DB, baseLog *logger.Logger) StructureTypeRepo {
	return &structureTypeRepo{db: db, log: baseLog.With("repo", "StructureTypeRepo")}
}

// structureTypeReads preloads the yielded item and the engage tool.
func structureTypeReads(q *gorm.DB) *gorm.DB {
	return q.Preload("ItemType").Preload("ItemToEngage")
}

func (r *structureTypeRepo) Create(dbc dbctx.Context, rows []*types.StructureType) ([]*types.StructureType, error) {
	if len(rows) == 0 {
		return []*types.StructureType{}, nil
	}
	for _, row := range rows {
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
	}
	if err := dbc.Conn(r.db).Omit(clause.Associations).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *structureTypeRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.StructureType, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.StructureType
	if err := structureTypeReads(dbc.Conn(r.db)).Where("id = ?", id).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *structureTypeRepo) GetByName(dbc dbctx.Context, name string) (*types.StructureType, error) {
	if name == "" {
		return nil, nil
	}
	var row types.StructureType
	if err := dbc.Conn(r.db).Where("name = ?", name).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *structureTypeRepo) List(dbc dbctx.Context) ([]*types.StructureType, error) {
	var out []*types.StructureType
	if err := structureTypeReads(dbc.Conn(r.db)).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *structureTypeRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	if id == uuid.Nil || len(updates) == 0 {
		return nil
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now()
	}
	return dbc.Conn(r.db).
		Model(&types.StructureType{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *structureTypeRepo) DeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return dbc.Conn(r.db).Where("id IN ?", ids).Delete(&types.StructureType{}).Error
}

func (r *structureTypeRepo) CountReferences(dbc dbctx.Context, id uuid.UUID) (int64, error) {
	return countRefs(dbc.Conn(r.db), structureTypeRefs, id)
}
