package dish

import (
	"errors"
	"strings"

	"menu-backend/internal/apperr"
	"menu-backend/internal/menu"
	"menu-backend/internal/models"
	"menu-backend/internal/submenu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Service struct {
	db       *gorm.DB
	menus    *menu.Service
	submenus *submenu.Service
}

func NewService(db *gorm.DB, menus *menu.Service, submenus *submenu.Service) *Service {
	return &Service{db: db, menus: menus, submenus: submenus}
}

type UpdateInput struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
}

// Create, yemeği ekler ve hem alt menünün hem de üst menünün dishes_count
// sayacını aynı transaction içinde artırır. Deadlock olmaması için kilit
// sırası her yerde menü -> alt menü.
func (s *Service) Create(menuID, submenuID uuid.UUID, title, description string, price decimal.Decimal) (*models.Dish, error) {
	if _, err := s.menus.GetByID(menuID); err != nil {
		return nil, err
	}
	if _, err := s.submenus.GetByID(menuID, submenuID); err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.BadRequest("title must not be empty")
	}
	if price.IsNegative() {
		return nil, apperr.BadRequest("price must not be negative")
	}

	d := models.Dish{SubmenuID: submenuID, Title: title, Description: description, Price: price}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if err := lockParents(tx, menuID, submenuID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Create(&d).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.BadRequest("the dish is already registered")
		}
		return nil, err
	}

	if err := bumpDishCounts(tx, menuID, submenuID, 1); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByID, yemeğin varlığını ve verilen alt menüye ait olup olmadığını
// kontrol eder. İki durum da 404 döner ama detail mesajları farklıdır.
func (s *Service) GetByID(submenuID, dishID uuid.UUID) (*models.Dish, error) {
	var d models.Dish
	if err := s.db.First(&d, "id = ?", dishID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("dish not found")
		}
		return nil, err
	}
	if d.SubmenuID != submenuID {
		return nil, apperr.NotFoundf("dish %s does not belong to submenu %s", dishID, submenuID)
	}
	return &d, nil
}

// List, alt menü hiç yoksa 404 yerine boş liste döner. Tekil GET'ten
// farklı davranan, özellikle korunan bir sözleşme ayrıntısı.
func (s *Service) List(submenuID uuid.UUID) ([]models.Dish, error) {
	var sub models.Submenu
	if err := s.db.First(&sub, "id = ?", submenuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Dish{}, nil
		}
		return nil, err
	}

	var dishes []models.Dish
	if err := s.db.Where("submenu_id = ?", submenuID).Order("created_at asc").Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (s *Service) Update(submenuID, dishID uuid.UUID, in UpdateInput) (*models.Dish, error) {
	d, err := s.GetByID(submenuID, dishID)
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
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, apperr.BadRequest("price must not be negative")
		}
		updates["price"] = *in.Price
	}
	if len(updates) == 0 {
		return nil, apperr.BadRequest("none of the fields (title, description, price) are provided for update")
	}

	if err := s.db.Model(d).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.BadRequest("the dish is already registered")
		}
		return nil, err
	}
	return s.GetByID(submenuID, dishID)
}

// Delete, yemeği siler ve iki dishes_count sayacını aynı transaction
// içinde 1 düşürür.
func (s *Service) Delete(menuID, submenuID, dishID uuid.UUID) error {
	if _, err := s.submenus.GetByID(menuID, submenuID); err != nil {
		return err
	}
	if _, err := s.GetByID(submenuID, dishID); err != nil {
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := lockParents(tx, menuID, submenuID); err != nil {
		tx.Rollback()
		return err
	}

	res := tx.Delete(&models.Dish{}, "id = ?", dishID)
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Eşzamanlı ikinci silme kaybeder, sayaçlara dokunulmaz
		tx.Rollback()
		return apperr.NotFound("dish not found")
	}

	if err := bumpDishCounts(tx, menuID, submenuID, -1); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func lockParents(tx *gorm.DB, menuID, submenuID uuid.UUID) error {
	var m models.Menu
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, "id = ?", menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("menu not found")
		}
		return err
	}
	var sub models.Submenu
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&sub, "id = ?", submenuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("submenu not found")
		}
		return err
	}
	return nil
}

func bumpDishCounts(tx *gorm.DB, menuID, submenuID uuid.UUID, delta int) error {
	if err := tx.Model(&models.Submenu{}).Where("id = ?", submenuID).
		UpdateColumn("dishes_count", gorm.Expr("dishes_count + ?", delta)).Error; err != nil {
		return err
	}
	return tx.Model(&models.Menu{}).Where("id = ?", menuID).
		UpdateColumn("dishes_count", gorm.Expr("dishes_count + ?", delta)).Error
}
