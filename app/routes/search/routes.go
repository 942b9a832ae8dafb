package search

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/database"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/flash"
)

type Handlers struct {
	DB *sql.DB
}

func SetupSearchRoutes(app *fiber.App, db *sql.DB) {
	h := &Handlers{DB: db}

	app.Get("/search", h.Search)
}

// Search matches users on username, email and department, and
// announcements on title and content. Empty queries go back home.
func (h *Handlers) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Redirect("/")
	}

	users, err := database.SearchUsers(h.DB, query)
	if err != nil {
		return err
	}
	announcements, err := database.SearchAnnouncements(h.DB, query)
	if err != nil {
		return err
	}

	return c.Render("search_results", fiber.Map{
		"Title":         "Search Results",
		"Flash":         flash.Pop(c),
		"Query":         query,
		"Users":         users,
		"Announcements": announcements,
	})
}
