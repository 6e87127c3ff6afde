package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Submenu struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"size:255;not null;unique"`
	Description string    `gorm:"size:1000;not null"`
	DishesCount int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Dishes []Dish `gorm:"constraint:OnDelete:CASCADE"`
}

func (s *Submenu) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
