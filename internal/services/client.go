package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/aggregates"
	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos"
	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/apierr"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/ctxutil"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

const clientTokenBytes = 64

var errUnauthorized = apierr.New(http.StatusUnauthorized, "unauthorized", fmt.Errorf("missing or invalid token"))

type ClientService interface {
	// Register creates a client and returns its bearer token. The token is not retrievable later.
	Register(ctx context.Context, name string) (*types.Client, string, error)
	List(ctx context.Context) ([]*types.Client, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Client, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*types.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetContextFromToken(ctx context.Context, token string) (context.Context, error)
}

type clientService struct {
	log     *logger.Logger
	tx      aggregates.TxRunner
	clients repos.ClientRepo
}

func NewClientService(log *logger.Logger, tx aggregates.TxRunner, clients repos.ClientRepo) ClientService {
	return &clientService{
		log:     log.With("service", "ClientService"),
		tx:      tx,
		clients: clients,
	}
}

func newClientToken() (string, error) {
	buf := make([]byte, clientTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (s *clientService) Register(ctx context.Context, name string) (*types.Client, string, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, "", err
	}
	token, err := newClientToken()
	if err != nil {
		return nil, "", err
	}
	var out *types.Client
	err = s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		existing, err := s.clients.GetByName(dbc, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return apierr.Conflict("client name already exists")
		}
		rows, err := s.clients.Create(dbc, []*types.Client{{Name: name, Token: token}})
		if err != nil {
			return err
		}
		out = rows[0]
		return nil
	})
	if err != nil {
		return nil, "", mapWriteErr(err, "client")
	}
	s.log.Info("client registered", "client_id", out.ID, "name", out.Name)
	return out, token, nil
}

func (s *clientService) List(ctx context.Context) ([]*types.Client, error) {
	return s.clients.List(dbctx.Context{Ctx: ctx})
}

func (s *clientService) Get(ctx context.Context, id uuid.UUID) (*types.Client, error) {
	c, err := s.clients.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apierr.NotFound("client")
	}
	return c, nil
}

// requireOwner allows a client to change only itself.
func requireOwner(ctx context.Context, id uuid.UUID) error {
	cd := ctxutil.GetClientData(ctx)
	if cd == nil || cd.ClientID == uuid.Nil {
		return errUnauthorized
	}
	if cd.ClientID != id {
		return apierr.Forbidden("clients may only modify themselves")
	}
	return nil
}

func (s *clientService) Rename(ctx context.Context, id uuid.UUID, name string) (*types.Client, error) {
	if err := requireOwner(ctx, id); err != nil {
		return nil, err
	}
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	err = s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		cur, err := s.clients.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return apierr.NotFound("client")
		}
		holder, err := s.clients.GetByName(dbc, name)
		if err != nil {
			return err
		}
		if holder != nil {
			if err := checkRename("client", holder.ID, id); err != nil {
				return err
			}
		}
		return s.clients.UpdateFields(dbc, id, map[string]interface{}{"name": name})
	})
	if err != nil {
		return nil, mapWriteErr(err, "client")
	}
	return s.Get(ctx, id)
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := requireOwner(ctx, id); err != nil {
		return err
	}
	err := s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		cur, err := s.clients.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return apierr.NotFound("client")
		}
		return s.clients.DeleteByIDs(dbc, []uuid.UUID{id})
	})
	if err != nil {
		return mapWriteErr(err, "client")
	}
	s.log.Info("client deleted", "client_id", id)
	return nil
}

func (s *clientService) SetContextFromToken(ctx context.Context, token string) (context.Context, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return ctx, errUnauthorized
	}
	c, err := s.clients.GetByToken(dbctx.Context{Ctx: ctx}, token)
	if err != nil {
		return ctx, fmt.Errorf("lookup client: %w", err)
	}
	if c == nil {
		return ctx, errUnauthorized
	}
	return ctxutil.WithClientData(ctx, &ctxutil.ClientData{ClientID: c.ID, Name: c.Name}), nil
}
