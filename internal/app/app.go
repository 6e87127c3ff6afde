package app

import (
	"errors"
	"log"
	"strings"

	"menu-backend/internal/apperr"
	"menu-backend/internal/config"
	"menu-backend/internal/dish"
	"menu-backend/internal/menu"
	"menu-backend/internal/submenu"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// New, servisleri kurup route'ları bağlar ve Fiber uygulamasını döner.
func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))

	menus := menu.NewService(db)
	submenus := submenu.NewService(db, menus)
	dishes := dish.NewService(db, menus, submenus)

	api := app.Group("/api/v1")

	// Menü
	api.Post("/menus", menu.CreateMenuHandler(menus))
	api.Get("/menus", menu.ListMenusHandler(menus))
	api.Get("/menus/:menu_id", menu.GetMenuHandler(menus))
	api.Patch("/menus/:menu_id", menu.UpdateMenuHandler(menus))
	api.Delete("/menus/:menu_id", menu.DeleteMenuHandler(menus))

	// Alt menü
	api.Post("/menus/:menu_id/submenus", submenu.CreateSubmenuHandler(submenus))
	api.Get("/menus/:menu_id/submenus", submenu.ListSubmenusHandler(submenus))
	api.Get("/menus/:menu_id/submenus/:submenu_id", submenu.GetSubmenuHandler(submenus))
	api.Patch("/menus/:menu_id/submenus/:submenu_id", submenu.UpdateSubmenuHandler(submenus))
	api.Delete("/menus/:menu_id/submenus/:submenu_id", submenu.DeleteSubmenuHandler(submenus))

	// Yemek
	api.Post("/menus/:menu_id/submenus/:submenu_id/dishes", dish.CreateDishHandler(dishes))
	api.Get("/menus/:menu_id/submenus/:submenu_id/dishes", dish.ListDishesHandler(dishes))
	api.Get("/menus/:menu_id/submenus/:submenu_id/dishes/:dish_id", dish.GetDishHandler(dishes, submenus))
	api.Patch("/menus/:menu_id/submenus/:submenu_id/dishes/:dish_id", dish.UpdateDishHandler(dishes, submenus))
	api.Delete("/menus/:menu_id/submenus/:submenu_id/dishes/:dish_id", dish.DeleteDishHandler(dishes))

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return c.Status(ae.Status).JSON(fiber.Map{"detail": ae.Detail})
	}
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{"detail": e.Message})
	}
	log.Println("Beklenmeyen hata:", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"detail": "internal server error",
	})
}
