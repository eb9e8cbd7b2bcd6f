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

type BotTypeRepo interface {
	Create(dbc dbctx.Context, rows []*types.BotType) ([]*types.BotType, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.BotType, error)
	GetByName(dbc dbctx.Context, name string) (*types.BotType, error)
	List(dbc dbctx.Context) ([]*types.BotType, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error
	CountReferences(dbc dbctx.Context, id uuid.UUID) (int64, error)
}

type botTypeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBotTypeRepo(db *gorm.DB, baseLog *logger.Logger) BotTypeRepo {
	return &botTypeRepo{db: db, log: baseLog.With("repo", "BotTypeRepo")}
}

func botTypeReads(q *gorm.DB) *gorm.DB {
	return q.Preload("BotRecipes", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Preload("BotRecipes.ItemType")
}

// Create inserts bot types only; recipe lines go through BotRecipeRepo.
func (r *botTypeRepo) Create(dbc dbctx.Context, rows []*types.BotType) ([]*types.BotType, error) {
	if len(rows) == 0 {
		return []*types.BotType{}, nil
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

func (r *botTypeRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.BotType, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.BotType
	if err := botTypeReads(dbc.Conn(r.db)).Where("id = ?", id).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *botTypeRepo) GetByName(dbc dbctx.Context, name string) (*types.BotType, error) {
	if name == "" {
		return nil, nil
	}
	var row types.BotType
	if err := dbc.Conn(r.db).Where("name = ?", name).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *botTypeRepo) List(dbc dbctx.Context) ([]*types.BotType, error) {
	var out []*types.BotType
	if err := botTypeReads(dbc.Conn(r.db)).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *botTypeRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	if id == uuid.Nil || len(updates) == 0 {
		return nil
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now()
	}
	return dbc.Conn(r.db).
		Model(&types.BotType{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *botTypeRepo) DeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return dbc.Conn(r.db).Where("id IN ?", ids).Delete(&types.BotType{}).Error
}

func (r *botTypeRepo) CountReferences(dbc dbctx.Context, id uuid.UUID) (int64, error) {
	return countRefs(dbc.Conn(r.db), botTypeRefs, id)
}

type BotRecipeRepo interface {
	Create(dbc dbctx.Context, rows []*types.BotRecipe) ([]*types.BotRecipe, error)
	GetByBotTypeIDs(dbc dbctx.Context, botTypeIDs []uuid.UUID) ([]*types.BotRecipe, error)
	DeleteByBotTypeIDs(dbc dbctx.Context, botTypeIDs []uuid.UUID) error
}

type botRecipeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBotRecipeRepo(db *gorm.DB, baseLog *logger.Logger) BotRecipeRepo {
	return &botRecipeRepo{db: db, log: baseLog.With("repo", "BotRecipeRepo")}
}

func (r *botRecipeRepo) Create(dbc dbctx.Context, rows []*types.BotRecipe) ([]*types.BotRecipe, error) {
	if len(rows) == 0 {
		return []*types.BotRecipe{}, nil
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

func (r *botRecipeRepo) GetByBotTypeIDs(dbc dbctx.Context, botTypeIDs []uuid.UUID) ([]*types.BotRecipe, error) {
	var out []*types.BotRecipe
	if len(botTypeIDs) == 0 {
		return out, nil
	}
	if err := dbc.Conn(r.db).
		Where("bot_type_id IN ?", botTypeIDs).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *botRecipeRepo) DeleteByBotTypeIDs(dbc dbctx.Context, botTypeIDs []uuid.UUID) error {
	if len(botTypeIDs) == 0 {
		return nil
	}
	return dbc.Conn(r.db).Where("bot_type_id IN ?", botTypeIDs).Delete(&types.BotRecipe{}).Error
}
