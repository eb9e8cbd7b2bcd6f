package services

import (
	"context"

	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
	"github.com/andrKonan/ProjectAutomate-server/internal/seed"
)

// SeedLedgerService exposes the applied seed files read-only.
type SeedLedgerService interface {
	ListApplications(ctx context.Context) ([]*types.SeedApplication, error)
}

type seedLedgerService struct {
	log    *logger.Logger
	ledger seed.Ledger
}

func NewSeedLedgerService(log *logger.Logger, ledger seed.Ledger) SeedLedgerService {
	return &seedLedgerService{log: log.With("service", "SeedLedgerService"), ledger: ledger}
}

func (s *seedLedgerService) ListApplications(ctx context.Context) ([]*types.SeedApplication, error) {
	rows, err := s.ledger.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*types.SeedApplication{}
	}
	return rows, nil
}
