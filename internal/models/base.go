package models

import (
	"time"

	"reconstruction/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables
type Base struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// All lists every model, in dependency order, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&CostCategory{},
		&CostArticle{},
		&CostTransaction{},
		&Reminder{},
	}
}
