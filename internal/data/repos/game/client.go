package game

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

type ClientRepo interface {
	Create(dbc dbctx.Context, rows []*types.Client) ([]*types.Client, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Client, error)
	GetByName(dbc dbctx.Context, name string) (*types.Client, error)
	GetByToken(dbc dbctx.Context, token string) (*types.Client, error)
	List(dbc dbctx.Context) ([]*types.Client, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error
}

type clientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewClientRepo(db *gorm.DB, baseLog *logger.Logger) ClientRepo {
	return &clientRepo{db: db, log: baseLog.With("repo", "ClientRepo")}
}

func (r *clientRepo) Create(dbc dbctx.Context, rows []*types.Client) ([]*types.Client, error) {
	if len(rows) == 0 {
		return []*types.Client{}, nil
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

func (r *clientRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Client, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	return r.first(dbc, "id = ?", id)
}

func (r *clientRepo) GetByName(dbc dbctx.Context, name string) (*types.Client, error) {
	if name == "" {
		return nil, nil
	}
	return r.first(dbc, "name = ?", name)
}

func (r *clientRepo) GetByToken(dbc dbctx.Context, token string) (*types.Client, error) {
	if token == "" {
		return nil, nil
	}
	return r.first(dbc, "token = ?", token)
}

func (r *clientRepo) first(dbc dbctx.Context, query string, arg interface{}) (*types.Client, error) {
	var row types.Client
	if err := dbc.Conn(r.db).Where(query, arg).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *clientRepo) List(dbc dbctx.Context) ([]*types.Client, error) {
	var out []*types.Client
	if err := dbc.Conn(r.db).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *clientRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	if id == uuid.Nil || len(updates) == 0 {
		return nil
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now()
	}
	return dbc.Conn(r.db).
		Model(&types.Client{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *clientRepo) DeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return dbc.Conn(r.db).Where("id IN ?", ids).Delete(&types.Client{}).Error
}
