package home

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/flash"
)

func SetupHomeRoutes(app *fiber.App) {
	app.Get("/", ShowHomePage)
}

func ShowHomePage(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title": "Home",
		"Flash": flash.Pop(c),
	})
}
