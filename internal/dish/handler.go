package dish

import (
	"menu-backend/internal/apperr"
	"menu-backend/internal/models"
	"menu-backend/internal/submenu"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DishResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"` // iki ondalık basamağa yuvarlanmış string
}

type CreateDishRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type UpdateDishRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

type DeleteDishResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

func toResponse(d *models.Dish) DishResponse {
	return DishResponse{
		ID:          d.ID.String(),
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price.StringFixed(2),
	}
}

func parseID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("invalid id")
	}
	return id, nil
}

func parsePathIDs(c *fiber.Ctx) (menuID, submenuID uuid.UUID, err error) {
	if menuID, err = parseID(c, "menu_id"); err != nil {
		return
	}
	submenuID, err = parseID(c, "submenu_id")
	return
}

// POST /api/v1/menus/:menu_id/submenus/:submenu_id/dishes
func CreateDishHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuID, submenuID, err := parsePathIDs(c)
		if err != nil {
			return err
		}

		var body CreateDishRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.BadRequest("invalid request body")
		}

		d, err := svc.Create(menuID, submenuID, body.Title, body.Description, body.Price)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(d))
	}
}

// GET /api/v1/menus/:menu_id/submenus/:submenu_id/dishes
//
// Alt menü mevcut değilse bilerek boş liste döner, 404 değil.
func ListDishesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, submenuID, err := parsePathIDs(c)
		if err != nil {
			return err
		}

		dishes, err := svc.List(submenuID)
		if err != nil {
			return err
		}

		res := make([]DishResponse, 0, len(dishes))
		for i := range dishes {
			res = append(res, toResponse(&dishes[i]))
		}
		return c.JSON(res)
	}
}

// GET /api/v1/menus/:menu_id/submenus/:submenu_id/dishes/:dish_id
//
// Önce menü/alt menü zinciri doğrulanır; yanlış zincir, yemek seviyesine
// inmeden alt menü 404'ü üretir.
func GetDishHandler(svc *Service, submenus *submenu.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuID, submenuID, err := parsePathIDs(c)
		if err != nil {
			return err
		}
		dishID, err := parseID(c, "dish_id")
		if err != nil {
			return err
		}

		if _, err := submenus.GetByID(menuID, submenuID); err != nil {
			return err
		}

		d, err := svc.GetByID(submenuID, dishID)
		if err != nil {
			return err
		}
		return c.JSON(toResponse(d))
	}
}

// PATCH /api/v1/menus/:menu_id/submenus/:submenu_id/dishes/:dish_id
func UpdateDishHandler(svc *Service, submenus *submenu.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuID, submenuID, err := parsePathIDs(c)
		if err != nil {
			return err
		}
		dishID, err := parseID(c, "dish_id")
		if err != nil {
			return err
		}

		if _, err := submenus.GetByID(menuID, submenuID); err != nil {
			return err
		}

		var body UpdateDishRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.BadRequest("invalid request body")
		}

		d, err := svc.Update(submenuID, dishID, UpdateInput{
			Title:       body.Title,
			Description: body.Description,
			Price:       body.Price,
		})
		if err != nil {
			return err
		}
		return c.JSON(toResponse(d))
	}
}

// DELETE /api/v1/menus/:menu_id/submenus/:submenu_id/dishes/:dish_id
func DeleteDishHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuID, submenuID, err := parsePathIDs(c)
		if err != nil {
			return err
		}
		dishID, err := parseID(c, "dish_id")
		if err != nil {
			return err
		}

		if err := svc.Delete(menuID, submenuID, dishID); err != nil {
			return err
		}
		return c.JSON(DeleteDishResponse{Status: true, Message: "The dish has been deleted"})
	}
}
