package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// Routes mounts every endpoint of the service on app.
func Routes(app *fiber.App, eval *EvalHandler, programs *ProgramsHandler, specPath string) {
	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", LivenessProbe)
	app.Get("/health/ready", programs.ReadinessProbe)

	// ============================================================
	// Interpreter Routes
	// ============================================================

	app.Post("/evaluate", eval.Evaluate)
	app.Post("/move", eval.Move)
	app.Post("/render/svg", eval.RenderSVG)
	app.Post("/render/html", eval.RenderHTML)
	app.Post("/render/png", eval.RenderPNG)
	app.Post("/render/video", eval.RenderVideo)

	app.Get("/functions", Functions)
	app.Get("/modifiers", Modifiers)
	app.Get("/templates", Templates)
	app.Post("/geogen", ConvertGeoGen)

	// ============================================================
	// Program Store Routes
	// ============================================================

	app.Get("/programs", programs.List)
	app.Post("/programs", programs.Create)
	app.Get("/programs/:id", programs.Get)
	app.Put("/programs/:id", programs.Update)
	app.Delete("/programs/:id", programs.Delete)

	// ============================================================
	// Docs Routes
	// ============================================================

	app.Get("/docs", SwaggerUI)
	app.Get("/docs/openapi.yaml", SwaggerSpec(specPath))
}
