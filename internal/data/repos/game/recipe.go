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

type RecipeRepo interface {
	Create(dbc dbctx.Context, rows []*types.Recipe) ([]*types.Recipe, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Recipe, error)
	GetByName(dbc dbctx.Context, name string) (*types.Recipe, error)
	List(dbc dbctx.Context) ([]*types.Recipe, error)
	ListByBuildingType(dbc dbctx.Context, buildingTypeID uuid.UUID) ([]*types.Recipe, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error
}

type recipeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeRepo {
	return &recipeRepo{db: db, log: baseLog.With("repo", "RecipeRepo")}
}

// recipeReads loads ingredients with their items, the output item and the building type.
// The building type's own cost lines are not loaded.
func recipeReads(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Ingredients.ItemType").
		Preload("OutputItemType").
		Preload("BuildingType")
}

func (r *recipeRepo) Create(dbc dbctx.Context, rows []*types.Recipe) ([]*types.Recipe, error) {
	if len(rows) == 0 {
		return []*types.Recipe{}, nil
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

func (r *recipeRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Recipe, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.Recipe
	if err := recipeReads(dbc.Conn(r.db)).Where("id = ?", id).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *recipeRepo) GetByName(dbc dbctx.Context, name string) (*types.Recipe, error) {
	if name == "" {
		return nil, nil
	}
	var row types.Recipe
	if err := dbc.Conn(r.db).Where("name = ?", name).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *recipeRepo) List(dbc dbctx.Context) ([]*types.Recipe, error) {
	var out []*types.Recipe
	if err := recipeReads(dbc.Conn(r.db)).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *recipeRepo) ListByBuildingType(dbc dbctx.Context, buildingTypeID uuid.UUID) ([]*types.Recipe, error) {
	var out []*types.Recipe
	if buildingTypeID == uuid.Nil {
		return out, nil
	}
	if err := recipeReads(dbc.Conn(r.db)).
		Where("building_type_id = ?", buildingTypeID).
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *recipeRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	if id == uuid.Nil || len(updates) == 0 {
		return nil
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now()
	}
	return dbc.Conn(r.db).
		Model(&types.Recipe{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *recipeRepo) DeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return dbc.Conn(r.db).Where("id IN ?", ids).Delete(&types.Recipe{}).Error
}

type RecipeIngredientRepo interface {
	Create(dbc dbctx.Context, rows []*types.RecipeIngredient) ([]*types.RecipeIngredient, error)
	GetByRecipeIDs(dbc dbctx.Context, recipeIDs []uuid.UUID) ([]*types.RecipeIngredient, error)
	DeleteByRecipeIDs(dbc dbctx.Context, recipeIDs []uuid.UUID) error
}

type recipeIngredientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeIngredientRepo(db *gorm.DB, baseLog *logger.Logger) RecipeIngredientRepo {
	return &recipeIngredientRepo{db: db, log: baseLog.With("repo", "RecipeIngredientRepo")}
}

func (r *recipeIngredientRepo) Create(dbc dbctx.Context, rows []*types.RecipeIngredient) ([]*types.RecipeIngredient, error) {
	if len(rows) == 0 {
		return []*types.RecipeIngredient{}, nil
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

func (r *recipeIngredientRepo) GetByRecipeIDs(dbc dbctx.Context, recipeIDs []uuid.UUID) ([]*types.RecipeIngredient, error) {
	var out []*types.RecipeIngredient
	if len(recipeIDs) == 0 {
		return out, nil
	}
	if err := dbc.Conn(r.db).
		Where("recipe_id IN ?", recipeIDs).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *recipeIngredientRepo) DeleteByRecipeIDs(dbc dbctx.Context, recipeIDs []uuid.UUID) error {
	if len(recipeIDs) == 0 {
		return nil
	}
	return dbc.Conn(r.db).Where("recipe_id IN ?", recipeIDs).Delete(&types.RecipeIngredient{}).Error
}
