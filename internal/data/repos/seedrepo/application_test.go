package seedrepo

import (
	"context"
	"testing"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/dberr"
	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos/testutil"
	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
)

func TestApplicationRepo(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx}

	repo := NewApplicationRepo(db, testutil.Logger(t))

	exists, err := repo.ExistsByFingerprint(dbc, "abc")
	if err != nil || exists {
		t.Fatalf("ExistsByFingerprint (empty ledger): err=%v exists=%v", err, exists)
	}

	row, err := repo.Create(dbc, &types.SeedApplication{Fingerprint: "abc", SourcePath: "items.yaml", Kind: "item"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if row.AppliedAt.IsZero() {
		t.Fatalf("Create: applied_at not set")
	}

	_, err = repo.Create(dbc, &types.SeedApplication{Fingerprint: "abc", SourcePath: "items.yaml", Kind: "item"})
	if !dberr.IsUniqueViolation(err) {
		t.Fatalf("Create duplicate: expected unique violation, got %v", err)
	}

	got, err := repo.GetByFingerprint(dbc, "abc")
	if err != nil || got == nil || got.SourcePath != "items.yaml" {
		t.Fatalf("GetByFingerprint: err=%v got=%+v", err, got)
	}

	n, err := repo.CountByFingerprint(dbc, "abc")
	if err != nil || n != 1 {
		t.Fatalf("CountByFingerprint: err=%v n=%d", err, n)
	}

	list, err := repo.List(dbc)
	if err != nil || len(list) != 1 {
		t.Fatalf("List: err=%v len=%d", err, len(list))
	}
}
