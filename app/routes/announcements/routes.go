package announcements

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/database"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/flash"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/models"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/routes/auth"
)

type Handlers struct {
	DB *sql.DB
}

func SetupAnnouncementsRoutes(app *fiber.App, db *sql.DB) {
	h := &Handlers{DB: db}

	app.Get("/announcements", h.ListAnnouncements)
	app.Get("/announcement/:id", h.ShowAnnouncement)
	app.Get("/create_announcement", auth.RequireLogin(), auth.RequireAdmin(), h.ShowCreatePage)
	app.Post("/create_announcement", auth.RequireLogin(), auth.RequireAdmin(), h.CreateAnnouncement)
}

func (h *Handlers) ListAnnouncements(c *fiber.Ctx) error {
	announcements, err := database.GetAnnouncements(h.DB)
	if err != nil {
		return err
	}
	return c.Render("announcements", fiber.Map{
		"Title":         "Announcements",
		"Flash":         flash.Pop(c),
		"Announcements": announcements,
	})
}

func (h *Handlers) ShowAnnouncement(c *fiber.Ctx) error {
	announcement, err := database.GetAnnouncementByID(h.DB, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			flash.Set(c, "Announcement not found")
			return c.Redirect("/announcements")
		}
		return err
	}
	return c.Render("announcement_detail", fiber.Map{
		"Title":        announcement.Title,
		"Flash":        flash.Pop(c),
		"Announcement": announcement,
	})
}

func (h *Handlers) ShowCreatePage(c *fiber.Ctx) error {
	return c.Render("create_announcement", fiber.Map{
		"Title": "New Announcement",
		"Flash": flash.Pop(c),
	})
}

func (h *Handlers) CreateAnnouncement(c *fiber.Ctx) error {
	title := c.FormValue("title")
	content := c.FormValue("content")
	if title == "" || content == "" {
		flash.Set(c, "Title and content are required")
		return c.Redirect("/create_announcement")
	}

	announcement := &models.Announcement{
		Title:   title,
		Content: content,
		Author:  auth.CurrentUser(c).Username,
	}
	if err := database.CreateAnnouncement(h.DB, announcement); err != nil {
		return err
	}

	flash.Set(c, "Announcement created successfully")
	return c.Redirect("/announcements")
}
