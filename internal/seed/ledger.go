package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/dberr"
	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos"
	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

// Summary is stored with each ledger row.
type Summary struct {
	Records  int `json:"records"`
	Created  int `json:"created"`
	Existing int `json:"existing"`
}

// Mark describes one ledger entry to write.
type Mark struct {
	Fingerprint string
	SourcePath  string
	Kind        Kind
	Summary     Summary
}

// Ledger is the durable set of applied fingerprints.
type Ledger interface {
	HasApplied(dbc dbctx.Context, fingerprint string) (bool, error)
	// MarkApplied inserts the ledger row. inserted is false, with a nil error,
	// when another run already recorded the same fingerprint.
	MarkApplied(dbc dbctx.Context, m Mark) (inserted bool, err error)
	List(dbc dbctx.Context) ([]*types.SeedApplication, error)
}

type ledger struct {
	repo repos.SeedApplicationRepo
	log  *logger.Logger
}

func NewLedger(repo repos.SeedApplicationRepo, baseLog *logger.Logger) Ledger {
	return &ledger{repo: repo, log: baseLog.With("component", "SeedLedger")}
}

func (l *ledger) HasApplied(dbc dbctx.Context, fingerprint string) (bool, error) {
	ok, err := l.repo.ExistsByFingerprint(dbc, fingerprint)
	if err != nil {
		return false, NewError(CodeStorage, "seed.ledger", "check fingerprint", err)
	}
	return ok, nil
}

func (l *ledger) MarkApplied(dbc dbctx.Context, m Mark) (bool, error) {
	summary, err := json.Marshal(m.Summary)
	if err != nil {
		return false, NewError(CodeStorage, "seed.ledger", "encode summary", err)
	}
	row := &types.SeedApplication{
		Fingerprint: m.Fingerprint,
		SourcePath:  m.SourcePath,
		Kind:        string(m.Kind),
		Summary:     datatypes.JSON(summary),
	}

	insert := func(c dbctx.Context) error {
		_, err := l.repo.Create(c, row)
		return err
	}
	if dbc.Tx != nil {
		// A savepoint keeps the caller's transaction usable after a unique
		// violation on Postgres.
		err = dbc.Tx.WithContext(ctxOrBackground(dbc)).Transaction(func(tx *gorm.DB) error {
			return insert(dbctx.Context{Ctx: dbc.Ctx, Tx: tx})
		})
	} else {
		err = insert(dbc)
	}

	if dberr.IsUniqueViolation(err) {
		l.log.Debug("seed ledger row already present", "fingerprint", Short(m.Fingerprint), "path", m.SourcePath)
		return false, nil
	}
	if err != nil {
		return false, NewError(CodeStorage, "seed.ledger", fmt.Sprintf("mark %s", m.SourcePath), err)
	}
	return true, nil
}

func (l *ledger) List(dbc dbctx.Context) ([]*types.SeedApplication, error) {
	rows, err := l.repo.List(dbc)
	if err != nil {
		return nil, NewError(CodeStorage, "seed.ledger", "list", err)
	}
	return rows, nil
}

func ctxOrBackground(dbc dbctx.Context) context.Context {
	if dbc.Ctx == nil {
		return context.Background()
	}
	return dbc.Ctx
}
