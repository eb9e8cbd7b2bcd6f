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

type BuildingTypeRepo interface {
	Create(dbc dbctx.Context, rows []*types.BuildingType) ([]*types.BuildingType, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.BuildingType, error)
	GetByName(dbc dbctx.Context, name string) (*types.BuildingType, error)
	List(dbc dbctx.Context) ([]*types.BuildingType, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error
	CountReferences(dbc dbctx.Context, id uuid.UUID) (int64, error)
}

type buildingTypeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBuildingTypeRepo(db *gorm.DB, baseLog *logger.Logger) BuildingTypeRepo {
	return &buildingTypeRepo{db: db, log: baseLog.With("repo", "BuildingTypeRepo")}
}

func buildingTypeReads(q *gorm.DB) *gorm.DB {
	return q.Preload("BuildingRecipes", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Preload("BuildingRecipes.ItemType")
}

// Create inserts building types only; construction cost lines go through BuildingRecipeRepo.
func (r *buildingTypeRepo) Create(dbc dbctx.Context, rows []*types.BuildingType) ([]*types.BuildingType, error) {
	if len(rows) == 0 {
		return []*types.BuildingType{}, nil
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

func (r *buildingTypeRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.BuildingType, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.BuildingType
	if err := buildingTypeReads(dbc.Conn(r.db)).Where("id = ?", id).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *buildingTypeRepo) GetByName(dbc dbctx.Context, name string) (*types.BuildingType, error) {
	if name == "" {
		return nil, nil
	}
	var row types.BuildingType
	if err := dbc.Conn(r.db).Where("name = ?", name).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *buildingTypeRepo) List(dbc dbctx.Context) ([]*types.BuildingType, error) {
	var out []*types.BuildingType
	if err := buildingTypeReads(dbc.Conn(r.db)).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *buildingTypeRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	if id == uuid.Nil || len(updates) == 0 {
		return nil
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now()
	}
	return dbc.Conn(r.db).
		Model(&types.BuildingType{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *buildingTypeRepo) DeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return dbc.Conn(r.db).Where("id IN ?", ids).Delete(&types.BuildingType{}).Error
}

func (r *buildingTypeRepo) CountReferences(dbc dbctx.Context, id uuid.UUID) (int64, error) {
	return countRefs(dbc.Conn(r.db), buildingTypeRefs, id)
}

type BuildingRecipeRepo interface {
	Create(dbc dbctx.Context, rows []*types.BuildingRecipe) ([]*types.BuildingRecipe, error)
	GetByBuildingTypeIDs(dbc dbctx.Context, buildingTypeIDs []uuid.UUID) ([]*types.BuildingRecipe, error)
	DeleteByBuildingTypeIDs(dbc dbctx.Context, buildingTypeIDs []uuid.UUID) error
}

type buildingRecipeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBuildingRecipeRepo(db *gorm.DB, baseLog *logger.Logger) BuildingRecipeRepo {
	return &buildingRecipeRepo{db: db, log: baseLog.With("repo", "BuildingRecipeRepo")}
}

func (r *buildingRecipeRepo) Create(dbc dbctx.Context, rows []*types.BuildingRecipe) ([]*types.BuildingRecipe, error) {
	if len(rows) == 0 {
		return []*types.BuildingRecipe{}, nil
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

func (r *buildingRecipeRepo) GetByBuildingTypeIDs(dbc dbctx.Context, buildingTypeIDs []uuid.UUID) ([]*types.BuildingRecipe, error) {
	var out []*types.BuildingRecipe
	if len(buildingTypeIDs) == 0 {
		return out, nil
	}
	if err := dbc.Conn(r.db).
		Where("building_type_id IN ?", buildingTypeIDs).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *buildingRecipeRepo) DeleteByBuildingTypeIDs(dbc dbctx.Context, buildingTypeIDs []uuid.UUID) error {
	if len(buildingTypeIDs) == 0 {
		return nil
	}
	return dbc.Conn(r.db).Where("building_type_id IN ?", buildingTypeIDs).Delete(&types.BuildingRecipe{}).Error
}
