// Package flash implements one-shot messages carried in a cookie: a message
// set during one request is shown on the next rendered page and then gone.
package flash

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

const cookieName = "flash"

// Set stores a message to be displayed on the next rendered page.
func Set(c *fiber.Ctx, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// Pop returns the pending message, if any, and clears it.
func Pop(c *fiber.Ctx) string {
	raw := c.Cookies(cookieName)
	if raw == "" {
		return ""
	}

	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}
