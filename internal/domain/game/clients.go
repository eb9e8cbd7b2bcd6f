package game

import (
	"time"

	"github.com/google/uuid"
)

// Client is an API consumer (a player program). Token is its bearer credential.
type Client struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Token string    `gorm:"column:token;not null;uniqueIndex" json:"-"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Client) TableName() string { return "client" }
