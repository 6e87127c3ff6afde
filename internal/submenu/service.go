package submenu

import (
	"errors"
	"strings"

	"menu-backend/internal/apperr"
	"menu-backend/internal/menu"
	"menu-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Service struct {
	db    *gorm.DB
	menus *menu.Service
}

func NewService(db *gorm.DB, menus *menu.Service) *Service {
	return &Service{db: db, menus: menus}
}

type UpdateInput struct {
	Title       *string
	Description *string
}

// Create, alt menüyü ekler ve üst menünün submenus_count sayacını aynı
// transaction içinde artırır. Üst menü satırı sayaç güncellenene kadar
// kilitli tutulur.
func (s *Service) Create(menuID uuid.UUID, title, description string) (*models.Submenu, error) {
	if _, err := s.menus.GetByID(menuID); err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.BadRequest("title must not be empty")
	}

	sub := models.Submenu{MenuID: menuID, Title: title, Description: description}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var parent models.Menu
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&parent, "id = ?", menuID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu not found")
		}
		return nil, err
	}

	if err := tx.Create(&sub).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.BadRequest("the submenu is already registered")
		}
		return nil, err
	}

	if err := tx.Model(&models.Menu{}).Where("id = ?", menuID).
		UpdateColumn("submenus_count", gorm.Expr("submenus_count + ?", 1)).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByID, alt menünün varlığını ve verilen menüye ait olup olmadığını
// kontrol eder. İki durum da 404 döner ama detail mesajları farklıdır.
func (s *Service) GetByID(menuID, submenuID uuid.UUID) (*models.Submenu, error) {
	var sub models.Submenu
	if err := s.db.First(&sub, "id = ?", submenuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("submenu not found")
		}
		return nil, err
	}
	if sub.MenuID != menuID {
		return nil, apperr.NotFoundf("submenu %s does not belong to menu %s", submenuID, menuID)
	}
	return &sub, nil
}

func (s *Service) List(menuID uuid.UUID) ([]models.Submenu, error) {
	if _, err := s.menus.GetByID(menuID); err != nil {
		return nil, err
	}

	var subs []models.Submenu
	if err := s.db.Where("menu_id = ?", menuID).Order("created_at asc").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *Service) Update(menuID, submenuID uuid.UUID, in UpdateInput) (*models.Submenu, error) {
	sub, err := s.GetByID(menuID, submenuID)
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

	if err := s.db.Model(sub).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.BadRequest("the submenu is already registered")
		}
		return nil, err
	}
	return s.GetByID(menuID, submenuID)
}

// Delete, alt menüyü ve yemeklerini siler; üst menünün submenus_count
// sayacını 1, dishes_count sayacını ise alt menünün silinmeden önceki
// dishes_count değeri kadar düşürür. Hepsi tek transaction içinde.
func (s *Service) Delete(menuID, submenuID uuid.UUID) error {
	if _, err := s.GetByID(menuID, submenuID); err != nil {
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var parent models.Menu
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&parent, "id = ?", menuID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("menu not found")
		}
		return err
	}

	// Sayaç, kilit altında okunan güncel satırdan alınır
	var sub models.Submenu
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&sub, "id = ?", submenuID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("submenu not found")
		}
		return err
	}

	if err := tx.Where("submenu_id = ?", submenuID).Delete(&models.Dish{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.Submenu{}, "id = ?", submenuID).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Model(&models.Menu{}).Where("id = ?", menuID).UpdateColumns(map[string]any{
		"submenus_count": gorm.Expr("submenus_count - ?", 1),
		"dishes_count":   gorm.Expr("dishes_count - ?", sub.DishesCount),
	}).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
