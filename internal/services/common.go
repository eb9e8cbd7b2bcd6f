package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/dberr"
	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/apierr"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
)

// AmountInput is one child line (bot cost, building cost, recipe ingredient).
type AmountInput struct {
	ItemTypeID uuid.UUID `json:"item_type_id" binding:"required"`
	Amount     int       `json:"amount" binding:"gte=1"`
}

// mapWriteErr turns a storage error into an API error. Unique violations
// become 409 so a lost race on a name reads the same as the pre-check.
func mapWriteErr(err error, what string) error {
	if err == nil {
		return nil
	}
	var ae *apierr.Error
	if errors.As(err, &ae) {
		return err
	}
	if dberr.IsUniqueViolation(err) {
		return apierr.Conflict(fmt.Sprintf("%s name already exists", what))
	}
	return fmt.Errorf("%s: %w", what, err)
}

func cleanName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", apierr.BadRequest("name is required")
	}
	return name, nil
}

func nonNegative(field string, v int) error {
	if v < 0 {
		return apierr.BadRequest(fmt.Sprintf("%s must not be negative", field))
	}
	return nil
}

func requireItemType(dbc dbctx.Context, items repos.ItemTypeRepo, id uuid.UUID, field string) error {
	if id == uuid.Nil {
		return apierr.BadRequest(fmt.Sprintf("%s is required", field))
	}
	it, err := items.GetByID(dbc, id)
	if err != nil {
		return err
	}
	if it == nil {
		return apierr.BadRequest(fmt.Sprintf("%s %s does not exist", field, id))
	}
	return nil
}

func checkLines(dbc dbctx.Context, items repos.ItemTypeRepo, lines []AmountInput) error {
	for i, l := range lines {
		if l.Amount < 1 {
			return apierr.BadRequest(fmt.Sprintf("line %d: amount must be at least 1", i))
		}
		if err := requireItemType(dbc, items, l.ItemTypeID, fmt.Sprintf("line %d item_type_id", i)); err != nil {
			return err
		}
	}
	return nil
}

// checkRename rejects a new name held by a different row.
func checkRename(what string, holder, self uuid.UUID) error {
	if holder != self {
		return apierr.Conflict(fmt.Sprintf("%s name already exists", what))
	}
	return nil
}

func ensureUnused(what string, n int64) error {
	if n > 0 {
		return apierr.Conflict(fmt.Sprintf("%s is still referenced by %d rows", what, n))
	}
	return nil
}
