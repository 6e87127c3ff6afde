package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Menu struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string    `gorm:"size:255;not null;unique"`
	Description   string    `gorm:"size:1000;not null"`
	SubmenusCount int       `gorm:"not null;default:0"`
	DishesCount   int       `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Submenus []Submenu `gorm:"constraint:OnDelete:CASCADE"`
}

func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
