package resources

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestAllowedFile(t *testing.T) {
	allowed := []string{
		"notes.pdf", "paper.doc", "report.docx", "readme.txt",
		"diagram.png", "photo.jpg", "photo.jpeg", "anim.gif",
		"SHOUTING.PDF", "Mixed.JpEg",
	}
	for _, name := range allowed {
		if !allowedFile(name) {
			t.Fatalf("expected %q to be allowed", name)
		}
	}

	blocked := []string{
		"script.sh", "binary.exe", "archive.zip", "page.html",
		"noextension", "trailingdot.", "double.tar.gz",
	}
	for _, name := range blocked {
		if allowedFile(name) {
			t.Fatalf("expected %q to be blocked", name)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"notes.pdf", "notes.pdf"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\windows\\evil.txt", "evil.txt"},
		{"my report (final).pdf", "my_report__final_.pdf"},
		{"semester 2.txt", "semester_2.txt"},
	}

	for _, tc := range cases {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Fatalf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSendStoredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stored.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	app := fiber.New()
	app.Get("/file", func(c *fiber.Ctx) error {
		return sendStoredFile(c, path, "notes.pdf")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/file", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if disp := resp.Header.Get("Content-Disposition"); disp == "" {
		t.Fatalf("expected a Content-Disposition header")
	}
}

func TestSendStoredFileMissing(t *testing.T) {
	app := fiber.New()
	app.Get("/file", func(c *fiber.Ctx) error {
		return sendStoredFile(c, filepath.Join(t.TempDir(), "gone.pdf"), "notes.pdf")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/file", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	// A resource row whose file was removed from disk is a server error,
	// not a 404.
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 for a missing stored file, got %d", resp.StatusCode)
	}
}
