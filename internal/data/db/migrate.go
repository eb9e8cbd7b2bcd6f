package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/andrKonan/ProjectAutomate-server/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(types.AllModels()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return EnsureSeedIndexes(db)
}

// EnsureSeedIndexes re-asserts the unique indexes the seed pipeline depends on.
// AutoMigrate creates them from struct tags; this covers tables created by
// older builds before the tags existed.
func EnsureSeedIndexes(db *gorm.DB) error {
	stmts := []struct {
		name string
		sql  string
	}{
		{"idx_item_type_name", `CREATE UNIQUE INDEX IF NOT EXISTS idx_item_type_name ON item_type (name);`},
		{"idx_structure_type_name", `CREATE UNIQUE INDEX IF NOT EXISTS idx_structure_type_name ON structure_type (name);`},
		{"idx_bot_type_name", `CREATE UNIQUE INDEX IF NOT EXISTS idx_bot_type_name ON bot_type (name);`},
		{"idx_building_type_name", `CREATE UNIQUE INDEX IF NOT EXISTS idx_building_type_name ON building_type (name);`},
		{"idx_recipe_name", `CREATE UNIQUE INDEX IF NOT EXISTS idx_recipe_name ON recipe (name);`},
		{"idx_seed_application_fingerprint", `CREATE UNIQUE INDEX IF NOT EXISTS idx_seed_application_fingerprint ON seed_application (fingerprint);`},
	}
	for _, st := range stmts {
		if err := db.Exec(st.sql).Error; err != nil {
			return fmt.Errorf("create %s: %w", st.name, err)
		}
	}
	return nil
}
