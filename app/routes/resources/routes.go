package resources

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/database"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/flash"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/models"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/routes/auth"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type Handlers struct {
	DB        *sql.DB
	UploadDir string
}

func SetupResourcesRoutes(app *fiber.App, db *sql.DB, uploadDir string) {
	h := &Handlers{DB: db, UploadDir: uploadDir}

	app.Get("/resources", h.ListResources)
	app.Get("/resource/:id", h.ShowResource)
	app.Get("/upload_resource", auth.RequireLogin(), h.ShowUploadPage)
	app.Post("/upload_resource", auth.RequireLogin(), h.UploadResource)
	app.Get("/download_resource/:id", auth.RequireLogin(), h.DownloadResource)
}

// allowedFile reports whether the filename carries one of the permitted
// extensions.
func allowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// sanitizeFilename strips any directory components and characters that are
// unsafe in a stored display name.
func sanitizeFilename(filename string) string {
	// Windows-style separators are normalized so a client-supplied path
	// can never escape into a directory component.
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

func (h *Handlers) ListResources(c *fiber.Ctx) error {
	list, err := database.GetResources(h.DB)
	if err != nil {
		return err
	}
	return c.Render("resources", fiber.Map{
		"Title":     "Resources",
		"Flash":     flash.Pop(c),
		"Resources": list,
	})
}

func (h *Handlers) ShowResource(c *fiber.Ctx) error {
	resource, err := database.GetResourceByID(h.DB, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			flash.Set(c, "Resource not found")
			return c.Redirect("/resources")
		}
		return err
	}
	return c.Render("resource_detail", fiber.Map{
		"Title":    resource.Title,
		"Flash":    flash.Pop(c),
		"Resource": resource,
	})
}

func (h *Handlers) ShowUploadPage(c *fiber.Ctx) error {
	return c.Render("upload_resource", fiber.Map{
		"Title": "Upload Resource",
		"Flash": flash.Pop(c),
	})
}

func (h *Handlers) UploadResource(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		flash.Set(c, "No file part")
		return c.Redirect("/upload_resource")
	}
	if file.Filename == "" {
		flash.Set(c, "No selected file")
		return c.Redirect("/upload_resource")
	}
	if !allowedFile(file.Filename) {
		flash.Set(c, "File type not allowed")
		return c.Redirect("/upload_resource")
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return err
	}

	// Stored under a random name so uploads never collide; the sanitized
	// original name is kept for downloads.
	fileName := sanitizeFilename(file.Filename)
	storedName := uuid.New().String() + strings.ToLower(filepath.Ext(fileName))
	filePath := filepath.Join(h.UploadDir, storedName)
	if err := c.SaveFile(file, filePath); err != nil {
		return err
	}

	resource := &models.Resource{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		FilePath:    filePath,
		FileName:    fileName,
		UploadedBy:  auth.CurrentUser(c).Username,
	}
	if resource.Title == "" {
		resource.Title = fileName
	}
	if err := database.CreateResource(h.DB, resource); err != nil {
		return err
	}

	flash.Set(c, "Resource uploaded successfully")
	return c.Redirect("/resources")
}

func (h *Handlers) DownloadResource(c *fiber.Ctx) error {
	resource, err := database.GetResourceByID(h.DB, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			flash.Set(c, "Resource not found")
			return c.Redirect("/resources")
		}
		return err
	}
	return sendStoredFile(c, resource.FilePath, resource.FileName)
}

// sendStoredFile serves the stored file under its original name. A record
// whose file has gone missing on disk is reported as a server error.
func sendStoredFile(c *fiber.Ctx, path, name string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("stored resource file %s: %w", path, err)
	}
	return c.Download(path, name)
}
