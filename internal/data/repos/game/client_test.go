package game

import (
	"context"
	"testing"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos/testutil"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
)

func TestClientRepo_GetByToken(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	repo := NewClientRepo(db, testutil.Logger(t))
	c := testutil.SeedClient(t, ctx, tx, "alpha")

	got, err := repo.GetByToken(dbc, c.Token)
	if err != nil || got == nil || got.ID != c.ID {
		t.Fatalf("GetByToken: err=%v got=%+v", err, got)
	}

	none, err := repo.GetByToken(dbc, "nope")
	if err != nil || none != nil {
		t.Fatalf("GetByToken (missing): err=%v got=%+v", err, none)
	}

	empty, err := repo.GetByToken(dbc, "")
	if err != nil || empty != nil {
		t.Fatalf("GetByToken (empty): err=%v got=%+v", err, empty)
	}
}
