package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/config"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/database"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/routes/admin"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/routes/announcements"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/routes/auth"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/routes/events"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/routes/home"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/routes/messages"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/routes/notifications"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/routes/resources"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/routes/search"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/services"
)

// errorHandler renders HTTP errors with the application's error templates.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	switch code {
	case fiber.StatusNotFound:
		return c.Status(code).Render("404", fiber.Map{
			"Title": "Page Not Found - Campus Connect",
		})
	case fiber.StatusInternalServerError:
		log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(code).Render("500", fiber.Map{
			"Title":        "Server Error - Campus Connect",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Campus Connect",
			"ErrorCode":    code,
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	cfg := config.Load()
	secret := []byte(cfg.SessionSecret)

	db, err := cfg.OpenDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()
	log.Println("Database connected successfully")

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	services.StartScheduler(db)

	engine := html.New("./app/templates", ".html")

	fiberApp := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      errorHandler,
	})

	fiberApp.Use(logger.New())
	fiberApp.Use(cors.New())
	fiberApp.Use(auth.LoadUser(secret, db))

	fiberApp.Static("/static", "./static")

	home.SetupHomeRoutes(fiberApp)
	auth.SetupAuthRoutes(fiberApp, db, secret)
	announcements.SetupAnnouncementsRoutes(fiberApp, db)
	events.SetupEventsRoutes(fiberApp, db)
	messages.SetupMessagesRoutes(fiberApp, db)
	notifications.SetupNotificationsRoutes(fiberApp, db)
	resources.SetupResourcesRoutes(fiberApp, db, cfg.UploadDir)
	search.SetupSearchRoutes(fiberApp, db)
	admin.SetupAdminRoutes(fiberApp, db)

	// Catch-all for 404s, must be registered last.
	fiberApp.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	log.Println("Server starting on", cfg.Addr)
	log.Fatal(fiberApp.Listen(cfg.Addr))
}
