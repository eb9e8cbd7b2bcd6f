package seedmeta

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Application records one successfully applied seed file version.
// The unique fingerprint index is what makes application at-most-once
// across concurrent server instances.
type Application struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Fingerprint string         `gorm:"column:fingerprint;not null;uniqueIndex" json:"fingerprint"`
	SourcePath  string         `gorm:"column:source_path;not null" json:"source_path"`
	Kind        string         `gorm:"column:kind;not null;index" json:"kind"`
	Summary     datatypes.JSON `gorm:"column:summary" json:"summary,omitempty"`
	AppliedAt   time.Time      `gorm:"column:applied_at;not null;index" json:"applied_at"`
}

func (Application) TableName() string { return "seed_application" }
