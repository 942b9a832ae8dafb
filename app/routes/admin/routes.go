package admin

import (
	"database/sql"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/database"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/flash"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/routes/auth"
)

type Handlers struct {
	DB *sql.DB
}

func SetupAdminRoutes(app *fiber.App, db *sql.DB) {
	h := &Handlers{DB: db}

	group := app.Group("/admin", auth.RequireLogin(), auth.RequireAdmin())
	group.Get("/", h.ShowDashboard)
	group.Get("/users", h.ListUsers)
	group.Get("/toggle_admin/:id", h.ToggleAdmin)
}

func (h *Handlers) ShowDashboard(c *fiber.Ctx) error {
	return c.Render("admin/dashboard", fiber.Map{
		"Title": "Admin Dashboard",
		"Flash": flash.Pop(c),
	})
}

func (h *Handlers) ListUsers(c *fiber.Ctx) error {
	users, err := database.GetAllUsers(h.DB)
	if err != nil {
		return err
	}
	return c.Render("admin/users", fiber.Map{
		"Title": "Manage Users",
		"Flash": flash.Pop(c),
		"Users": users,
	})
}

func (h *Handlers) ToggleAdmin(c *fiber.Ctx) error {
	userID := c.Params("id")

	user, err := database.GetUserByID(h.DB, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Redirect("/admin/users")
		}
		return err
	}

	isAdmin, err := database.ToggleAdmin(h.DB, userID)
	if err != nil {
		return err
	}

	status := "revoked"
	if isAdmin {
		status = "granted"
	}
	flash.Set(c, fmt.Sprintf("Admin status for %s has been %s.", user.Username, status))
	return c.Redirect("/admin/users")
}
