package seed

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrKonan/ProjectAutomate-server/internal/data/aggregates"
	"github.com/andrKonan/ProjectAutomate-server/internal/data/repos"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/dbctx"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

// Store is the persistence context shared by the ledger, resolver and
// upserter. It is built once per process and passed in explicitly.
type Store struct {
	DB *gorm.DB
	Tx aggregates.TxRunner

	ItemTypes         repos.ItemTypeRepo
	StructureTypes    repos.StructureTypeRepo
	BotTypes          repos.BotTypeRepo
	BotRecipes        repos.BotRecipeRepo
	BuildingTypes     repos.BuildingTypeRepo
	BuildingRecipes   repos.BuildingRecipeRepo
	Recipes           repos.RecipeRepo
	RecipeIngredients repos.RecipeIngredientRepo
	Applications      repos.SeedApplicationRepo
}

func NewStore(db *gorm.DB, baseLog *logger.Logger) *Store {
	return &Store{
		DB:                db,
		Tx:                aggregates.NewGormTxRunner(db),
		ItemTypes:         repos.NewItemTypeRepo(db, baseLog),
		StructureTypes:    repos.NewStructureTypeRepo(db, baseLog),
		BotTypes:          repos.NewBotTypeRepo(db, baseLog),
		BotRecipes:        repos.NewBotRecipeRepo(db, baseLog),
		BuildingTypes:     repos.NewBuildingTypeRepo(db, baseLog),
		BuildingRecipes:   repos.NewBuildingRecipeRepo(db, baseLog),
		Recipes:           repos.NewRecipeRepo(db, baseLog),
		RecipeIngredients: repos.NewRecipeIngredientRepo(db, baseLog),
		Applications:      repos.NewSeedApplicationRepo(db, baseLog),
	}
}

// LookupID finds the id of the entity of kind named name. It only reads.
func (s *Store) LookupID(dbc dbctx.Context, kind Kind, name string) (uuid.UUID, bool, error) {
	var (
		id  uuid.UUID
		err error
	)
	switch kind {
	case KindItem:
		row, e := s.ItemTypes.GetByName(dbc, name)
		if row != nil {
			id = row.ID
		}
		err = e
	case KindStructure:
		row, e := s.StructureTypes.GetByName(dbc, name)
		if row != nil {
			id = row.ID
		}
		err = e
	case KindBot:
		row, e := s.BotTypes.GetByName(dbc, name)
		if row != nil {
			id = row.ID
		}
		err = e
	case KindBuilding:
		row, e := s.BuildingTypes.GetByName(dbc, name)
		if row != nil {
			id = row.ID
		}
		err = e
	case KindRecipe:
		row, e := s.Recipes.GetByName(dbc, name)
		if row != nil {
			id = row.ID
		}
		err = e
	default:
		return uuid.Nil, false, fmt.Errorf("lookup: unknown kind %q", kind)
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return id, id != uuid.Nil, nil
}
