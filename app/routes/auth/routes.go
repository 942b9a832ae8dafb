package auth

import (
	"database/sql"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/database"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/flash"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/models"
)

type Handlers struct {
	DB     *sql.DB
	Secret []byte
}

func SetupAuthRoutes(app *fiber.App, db *sql.DB, secret []byte) {
	h := &Handlers{DB: db, Secret: secret}

	app.Get("/register", h.ShowRegisterPage)
	app.Post("/register", h.Register)
	app.Get("/login", h.ShowLoginPage)
	app.Post("/login", h.Login)
	app.Get("/logout", h.Logout)
	app.Get("/profile", RequireLogin(), h.ShowProfilePage)
}

func (h *Handlers) ShowRegisterPage(c *fiber.Ctx) error {
	if CurrentUser(c) != nil {
		return c.Redirect("/")
	}
	return c.Render("register", fiber.Map{
		"Title": "Register",
		"Flash": flash.Pop(c),
	})
}

func (h *Handlers) Register(c *fiber.Ctx) error {
	if CurrentUser(c) != nil {
		return c.Redirect("/")
	}

	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")
	regNumber := c.FormValue("reg_number")
	department := c.FormValue("department")
	year := c.FormValue("year")

	if username == "" || email == "" || password == "" {
		flash.Set(c, "Username, email and password are required")
		return c.Redirect("/register")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		RegNumber:    regNumber,
		Department:   department,
		Year:         year,
	}
	if err := database.CreateUser(h.DB, user); err != nil {
		if err == database.ErrDuplicateEmail {
			flash.Set(c, "Email already registered")
			return c.Redirect("/register")
		}
		return err
	}

	flash.Set(c, "Congratulations, you are now a registered user!")
	return c.Redirect("/login")
}

func (h *Handlers) ShowLoginPage(c *fiber.Ctx) error {
	if CurrentUser(c) != nil {
		return c.Redirect("/")
	}
	return c.Render("login", fiber.Map{
		"Title": "Sign In",
		"Flash": flash.Pop(c),
		"Next":  c.Query("next"),
	})
}

func (h *Handlers) Login(c *fiber.Ctx) error {
	if CurrentUser(c) != nil {
		return c.Redirect("/")
	}

	email := c.FormValue("email")
	password := c.FormValue("password")
	next := c.FormValue("next", c.Query("next"))

	user, err := database.GetUserByEmail(h.DB, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return h.rejectLogin(c, next)
		}
		return err
	}
	if !CheckPasswordHash(password, user.PasswordHash) {
		return h.rejectLogin(c, next)
	}

	token, err := GenerateToken(h.Secret, user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  sessionExpiry(),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect(SafeNextTarget(next))
}

func (h *Handlers) rejectLogin(c *fiber.Ctx, next string) error {
	flash.Set(c, "Invalid email or password")
	target := "/login"
	if next != "" {
		target += "?next=" + url.QueryEscape(next)
	}
	return c.Redirect(target)
}

func (h *Handlers) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  expiredCookieTime(),
		HTTPOnly: true,
	})
	return c.Redirect("/")
}

func (h *Handlers) ShowProfilePage(c *fiber.Ctx) error {
	current := CurrentUser(c)

	user, err := database.GetUserByID(h.DB, current.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return h.Logout(c)
		}
		return err
	}

	return c.Render("profile", fiber.Map{
		"Title": "Profile",
		"Flash": flash.Pop(c),
		"User":  user,
	})
}
