package menu

import (
	"menu-backend/internal/apperr"
	"menu-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MenuResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	SubmenusCount int    `json:"submenus_count"`
	DishesCount   int    `json:"dishes_count"`
}

type CreateMenuRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateMenuRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type DeleteMenuResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

func toResponse(m *models.Menu) MenuResponse {
	return MenuResponse{
		ID:            m.ID.String(),
		Title:         m.Title,
		Description:   m.Description,
		SubmenusCount: m.SubmenusCount,
		DishesCount:   m.DishesCount,
	}
}

func parseID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("invalid id")
	}
	return id, nil
}

// POST /api/v1/menus
func CreateMenuHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMenuRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.BadRequest("invalid request body")
		}

		m, err := svc.Create(body.Title, body.Description)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(m))
	}
}

// GET /api/v1/menus
func ListMenusHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menus, err := svc.GetAll()
		if err != nil {
			return err
		}

		res := make([]MenuResponse, 0, len(menus))
		for i := range menus {
			res = append(res, toResponse(&menus[i]))
		}
		return c.JSON(res)
	}
}

// GET /api/v1/menus/:menu_id
func GetMenuHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "menu_id")
		if err != nil {
			return err
		}

		m, err := svc.GetByID(id)
		if err != nil {
			return err
		}
		return c.JSON(toResponse(m))
	}
}

// PATCH /api/v1/menus/:menu_id
func UpdateMenuHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "menu_id")
		if err != nil {
			return err
		}

		var body UpdateMenuRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.BadRequest("invalid request body")
		}

		m, err := svc.Update(id, UpdateInput{Title: body.Title, Description: body.Description})
		if err != nil {
			return err
		}
		return c.JSON(toResponse(m))
	}
}

// DELETE /api/v1/menus/:menu_id
func DeleteMenuHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "menu_id")
		if err != nil {
			return err
		}

		if err := svc.Delete(id); err != nil {
			return err
		}
		return c.JSON(DeleteMenuResponse{Status: true, Message: "The menu has been deleted"})
	}
}
