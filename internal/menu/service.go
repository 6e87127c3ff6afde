package menu

import (
	"errors"
	"strings"

	"menu-backend/internal/apperr"
	"menu-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// UpdateInput, kısmi güncelleme için alanları taşır. nil olan alanlar
// ve boş string'ler yok sayılır.
type UpdateInput struct {
	Title       *string
	Description *string
}

func (s *Service) Create(title, description string) (*models.Menu, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.BadRequest("title must not be empty")
	}

	m := models.Menu{Title: title, Description: description}
	if err := s.db.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.BadRequest("the menu is already registered")
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) GetAll() ([]models.Menu, error) {
	var menus []models.Menu
	if err := s.db.Order("created_at asc").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (s *Service) GetByID(id uuid.UUID) (*models.Menu, error) {
	var m models.Menu
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu not found")
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Update(id uuid.UUID, in UpdateInput) (*models.Menu, error) {
	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Title != nil {
		if t := strings.TrimSpace(*in.Title); t != "" {
			updates["title"] = t
		}
	}
	if in.Description != nil && *in.Description != "" {
		updates["description"] = *in.Description
	}
	if len(updates) == 0 {
		return nil, apperr.BadRequest("none of the fields (title, description) are provided for update")
	}

	if err := s.db.Model(m).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.BadRequest("the menu is already registered")
		}
		return nil, err
	}
	return s.GetByID(id)
}

// Delete, menüyü alt menüleri ve yemekleriyle birlikte tek transaction
// içinde siler.
func (s *Service) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	submenuIDs := tx.Model(&models.Submenu{}).Select("id").Where("menu_id = ?", id)
	if err := tx.Where("submenu_id IN (?)", submenuIDs).Delete(&models.Dish{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("menu_id = ?", id).Delete(&models.Submenu{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.Menu{}, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
