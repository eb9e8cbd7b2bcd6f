package game

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ref is a column in another table that points at a type row.
type ref struct {
	table  string
	column string
}

var itemTypeRefs = []ref{
	{"structure_type", "item_type_id"},
	{"structure_type", "item_to_engage_id"},
	{"bot_recipe", "item_type_id"},
	{"building_recipe", "item_type_id"},
	{"recipe", "output_item_type_id"},
	{"recipe_ingredient", "item_type_id"},
	{"bot_inventory_slot", "item_type_id"},
}

var structureTypeRefs = []ref{
	{"structure", "type_id"},
}

var botTypeRefs = []ref{
	{"bot", "type_id"},
}

var buildingTypeRefs = []ref{
	{"recipe", "building_type_id"},
	{"building", "type_id"},
}

func countRefs(conn *gorm.DB, refs []ref, id uuid.UUID) (int64, error) {
	if id == uuid.Nil {
		return 0, nil
	}
	var total int64
	for _, rf := range refs {
		var n int64
		if err := conn.Table(rf.table).Where(rf.column+" = ?", id).Count(&n).Error; err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
