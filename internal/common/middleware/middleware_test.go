package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestCORSPreflight(t *testing.T) {
	app := fiber.New()
	app.Use(CORS(nil))
	app.Post("/evaluate", func(c fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/evaluate", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow origin %q", got)
	}
}

func TestCORSRestrictedOrigins(t *testing.T) {
	app := fiber.New()
	app.Use(CORS([]string{"https://editor.example.com"}))
	app.Post("/evaluate", func(c fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	for origin, want := range map[string]string{
		"https://editor.example.com": "https://editor.example.com",
		"http://localhost:5173":      "",
	} {
		req := httptest.NewRequest(http.MethodOptions, "/evaluate", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if got := resp.Header.Get("Access-Control-Allow-Origin"); got != want {
			t.Errorf("%s: allow origin %q, want %q", origin, got, want)
		}
	}
}

func TestLoggerSkipsProbes(t *testing.T) {
	var out bytes.Buffer
	app := fiber.New()
	app.Use(Logger(&out))
	app.Get("/health/live", func(c fiber.Ctx) error { return c.SendString("alive") })
	app.Get("/functions", func(c fiber.Ctx) error { return c.SendString("[]") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status %d", resp.StatusCode)
	}
	if out.Len() != 0 {
		t.Errorf("probe logged: %q", out.String())
	}

	if _, err := app.Test(httptest.NewRequest(http.MethodGet, "/functions", nil)); err != nil {
		t.Fatal(err)
	}
	if line := out.String(); !strings.Contains(line, "200 - ") || !strings.Contains(line, "GET /functions") {
		t.Errorf("got %q", line)
	}
}
