package notifications

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/database"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/flash"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/routes/auth"
)

type Handlers struct {
	DB *sql.DB
}

func SetupNotificationsRoutes(app *fiber.App, db *sql.DB) {
	h := &Handlers{DB: db}

	app.Get("/notifications", auth.RequireLogin(), h.ListNotifications)
	app.Get("/mark_notification_read/:id", auth.RequireLogin(), h.MarkRead)
}

func (h *Handlers) ListNotifications(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	list, err := database.GetUserNotifications(h.DB, user.ID)
	if err != nil {
		return err
	}
	return c.Render("notifications", fiber.Map{
		"Title":         "Notifications",
		"Flash":         flash.Pop(c),
		"Notifications": list,
	})
}

// MarkRead is idempotent: marking an already-read notification succeeds and
// changes nothing.
func (h *Handlers) MarkRead(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	if err := database.MarkNotificationRead(h.DB, user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.Redirect("/notifications")
}
