package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Dish struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SubmenuID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title       string          `gorm:"size:255;not null;unique"`
	Description string          `gorm:"size:1000;not null"`
	Price       decimal.Decimal `gorm:"type:numeric;not null"` // tam hassasiyetle saklanır
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (d *Dish) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
