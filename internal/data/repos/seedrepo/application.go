package seedrepo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

type ApplicationRepo interface {
	Create(dbc dbctx.Context, row *types.SeedApplication) (*types.SeedApplication, error)
	GetByFingerprint(dbc dbctx.Context, fingerprint string) (*types.SeedApplication, error)
	ExistsByFingerprint(dbc dbctx.Context, fingerprint string) (bool, error)
	List(dbc dbctx.Context) ([]*types.SeedApplication, error)
	CountByFingerprint(dbc dbctx.Context, fingerprint string) (int64, error)
}

type applicationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewApplicationRepo(db *gorm.DB, baseLog *logger.Logger) ApplicationRepo {
	return &applicationRepo{db: db, log: baseLog.With("repo", "SeedApplicationRepo")}
}

// Create inserts a single ledger row. A duplicate fingerprint surfaces as the
// driver's unique violation; callers decide whether that is a lost race.
func (r *applicationRepo) Create(dbc dbctx.Context, row *types.SeedApplication) (*types.SeedApplication, error) {
	if row == nil {
		return nil, nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.AppliedAt.IsZero() {
		row.AppliedAt = time.Now().UTC()
	}
	if err := dbc.Conn(r.db).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *applicationRepo) GetByFingerprint(dbc dbctx.Context, fingerprint string) (*types.SeedApplication, error) {
	if fingerprint == "" {
		return nil, nil
	}
	var row types.SeedApplication
	if err := dbc.Conn(r.db).
		Where("fingerprint = ?", fingerprint).
		Limit(1).
		Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *applicationRepo) ExistsByFingerprint(dbc dbctx.Context, fingerprint string) (bool, error) {
	n, err := r.CountByFingerprint(dbc, fingerprint)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *applicationRepo) CountByFingerprint(dbc dbctx.Context, fingerprint string) (int64, error) {
	if fingerprint == "" {
		return 0, nil
	}
	var n int64
	if err := dbc.Conn(r.db).
		Model(&types.SeedApplication{}).
		Where("fingerprint = ?", fingerprint).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *applicationRepo) List(dbc dbctx.Context) ([]*types.SeedApplication, error) {
	var out []*types.SeedApplication
	if err := dbc.Conn(r.db).Order("applied_at ASC, source_path ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
