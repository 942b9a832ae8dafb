package auth

import (
	"database/sql"
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/database"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/flash"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/models"
)

// LoadUser resolves the session cookie on every request. When the token is
// valid it stores the current user and the unread notification count in
// locals; with PassLocalsToViews enabled both are visible to every template.
// It never rejects a request — that is RequireLogin's job.
func LoadUser(secret []byte, db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("UnreadNotificationsCount", 0)

		tokenString := c.Cookies(SessionCookie)
		if tokenString == "" {
			return c.Next()
		}

		claims, err := ValidateToken(secret, tokenString)
		if err != nil {
			return c.Next()
		}

		user := &models.User{
			ID:       claims.UserID,
			Username: claims.Username,
			IsAdmin:  claims.IsAdmin,
		}
		c.Locals("user", user)
		c.Locals("CurrentUser", user)

		count, err := database.GetUnreadCount(db, user.ID)
		if err != nil {
			log.Printf("Failed to count unread notifications for %s: %v", user.Username, err)
		} else {
			c.Locals("UnreadNotificationsCount", count)
		}

		return c.Next()
	}
}

// RequireLogin redirects unauthenticated requests to the login page,
// remembering the originally requested path so login can return there.
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Redirect("/login?next=" + url.QueryEscape(c.OriginalURL()))
		}
		return c.Next()
	}
}

// RequireAdmin rejects non-admin users with a flash message and a redirect
// home. It must run after RequireLogin.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			flash.Set(c, "You do not have permission to access this page.")
			return c.Redirect("/")
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by LoadUser, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals("user").(*models.User); ok {
		return user
	}
	return nil
}
