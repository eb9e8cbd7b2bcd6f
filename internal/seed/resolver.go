package seed

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
)

// Lookup is the read-only natural key index the resolver depends on.
type Lookup interface {
	LookupID(dbc dbctx.Context, kind Kind, name string) (uuid.UUID, bool, error)
}

// Resolver replaces names inside records with stored ids. It never creates.
type Resolver struct {
	lookup Lookup
}

func NewResolver(lookup Lookup) *Resolver {
	return &Resolver{lookup: lookup}
}

func (r *Resolver) Resolve(dbc dbctx.Context, kind Kind, name string) (uuid.UUID, error) {
	return r.resolve(dbc, kind, name, nil)
}

// ResolveOptional maps an empty name to a nil id. A non-empty name that does
// not resolve is still an error.
func (r *Resolver) ResolveOptional(dbc dbctx.Context, kind Kind, name string) (*uuid.UUID, error) {
	return r.resolveOptional(dbc, kind, name, nil)
}

func (r *Resolver) resolve(dbc dbctx.Context, kind Kind, name string, from Record) (uuid.UUID, error) {
	id, found, err := r.lookup.LookupID(dbc, kind, name)
	if err != nil {
		return uuid.Nil, NewError(CodeStorage, "seed.resolve", fmt.Sprintf("lookup %s %q: %v", kind, name, err), err)
	}
	if !found {
		return uuid.Nil, referenceNotFound(kind, name, from)
	}
	return id, nil
}

func (r *Resolver) resolveOptional(dbc dbctx.Context, kind Kind, name string, from Record) (*uuid.UUID, error) {
	if name == "" {
		return nil, nil
	}
	id, err := r.resolve(dbc, kind, name, from)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (r *Resolver) resolveLines(dbc dbctx.Context, lines []AmountLine, from Record) ([]ResolvedLine, error) {
	out := make([]ResolvedLine, 0, len(lines))
	for _, line := range lines {
		id, err := r.resolve(dbc, KindItem, line.ItemType, from)
		if err != nil {
			return nil, err
		}
		out = append(out, ResolvedLine{ItemTypeID: id, Amount: line.Amount})
	}
	return out, nil
}

// ResolveRecord converts rec into its resolved variant, including child lines.
func (r *Resolver) ResolveRecord(dbc dbctx.Context, rec Record) (Resolved, error) {
	switch v := rec.(type) {
	case ItemRecord:
		return ResolvedItem{Name: v.Name, Durability: v.Durability}, nil

	case StructureRecord:
		itemID, err := r.resolve(dbc, KindItem, v.ItemType, v)
		if err != nil {
			return nil, err
		}
		engageID, err := r.resolveOptional(dbc, KindItem, v.ItemToEngage, v)
		if err != nil {
			return nil, err
		}
		return ResolvedStructure{
			Name:           v.Name,
			Health:         deref(v.Health),
			ItemTypeID:     itemID,
			MaxItems:       deref(v.MaxItems),
			ItemToEngageID: engageID,
		}, nil

	case BotRecord:
		lines, err := r.resolveLines(dbc, v.Recipes, v)
		if err != nil {
			return nil, err
		}
		return ResolvedBot{
			Name:     v.Name,
			Health:   deref(v.Health),
			Strength: deref(v.Strength),
			Speed:    deref(v.Speed),
			Vision:   deref(v.Vision),
			Recipes:  lines,
		}, nil

	case BuildingRecord:
		lines, err := r.resolveLines(dbc, v.Recipes, v)
		if err != nil {
			return nil, err
		}
		return ResolvedBuilding{Name: v.Name, Health: deref(v.Health), Recipes: lines}, nil

	case RecipeRecord:
		buildingID, err := r.resolve(dbc, KindBuilding, v.BuildingType, v)
		if err != nil {
			return nil, err
		}
		outputID, err := r.resolve(dbc, KindItem, v.OutputItemType, v)
		if err != nil {
			return nil, err
		}
		lines, err := r.resolveLines(dbc, v.Ingredients, v)
		if err != nil {
			return nil, err
		}
		return ResolvedRecipe{
			Name:             v.Name,
			BuildingTypeID:   buildingID,
			OutputItemTypeID: outputID,
			OutputAmount:     v.OutputAmount,
			Ingredients:      lines,
		}, nil

	default:
		return nil, parseError("seed.resolve", fmt.Sprintf("unsupported record %T", rec), nil)
	}
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
