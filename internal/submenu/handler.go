package submenu

import (
	"menu-backend/internal/apperr"
	"menu-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SubmenuResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DishesCount int    `json:"dishes_count"`
}

type CreateSubmenuRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateSubmenuRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type DeleteSubmenuResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

func toResponse(s *models.Submenu) SubmenuResponse {
	return SubmenuResponse{
		ID:          s.ID.String(),
		Title:       s.Title,
		Description: s.Description,
		DishesCount: s.DishesCount,
	}
}

func parseID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("invalid id")
	}
	return id, nil
}

// POST /api/v1/menus/:menu_id/submenus
func CreateSubmenuHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuID, err := parseID(c, "menu_id")
		if err != nil {
			return err
		}

		var body CreateSubmenuRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.BadRequest("invalid request body")
		}

		sub, err := svc.Create(menuID, body.Title, body.Description)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(sub))
	}
}

// GET /api/v1/menus/:menu_id/submenus
func ListSubmenusHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuID, err := parseID(c, "menu_id")
		if err != nil {
			return err
		}

		subs, err := svc.List(menuID)
		if err != nil {
			return err
		}

		res := make([]SubmenuResponse, 0, len(subs))
		for i := range subs {
			res = append(res, toResponse(&subs[i]))
		}
		return c.JSON(res)
	}
}

// GET /api/v1/menus/:menu_id/submenus/:submenu_id
func GetSubmenuHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuID, err := parseID(c, "menu_id")
		if err != nil {
			return err
		}
		submenuID, err := parseID(c, "submenu_id")
		if err != nil {
			return err
		}

		sub, err := svc.GetByID(menuID, submenuID)
		if err != nil {
			return err
		}
		return c.JSON(toResponse(sub))
	}
}

// PATCH /api/v1/menus/:menu_id/submenus/:submenu_id
func UpdateSubmenuHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuID, err := parseID(c, "menu_id")
		if err != nil {
			return err
		}
		submenuID, err := parseID(c, "submenu_id")
		if err != nil {
			return err
		}

		var body UpdateSubmenuRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.BadRequest("invalid request body")
		}

		sub, err := svc.Update(menuID, submenuID, UpdateInput{Title: body.Title, Description: body.Description})
		if err != nil {
			return err
		}
		return c.JSON(toResponse(sub))
	}
}

// DELETE /api/v1/menus/:menu_id/submenus/:submenu_id
func DeleteSubmenuHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuID, err := parseID(c, "menu_id")
		if err != nil {
			return err
		}
		submenuID, err := parseID(c, "submenu_id")
		if err != nil {
			return err
		}

		if err := svc.Delete(menuID, submenuID); err != nil {
			return err
		}
		return c.JSON(DeleteSubmenuResponse{Status: true, Message: "The submenu has been deleted"})
	}
}
