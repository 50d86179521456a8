package handlers

import (
	"github.com/gofiber/fiber/v3"

	"geometry/internal/geometry/models"
	"geometry/internal/geometry/program"
	"geometry/internal/geometry/registry"
)

// ============================================================
// Catalog Handlers
// ============================================================

// Functions lists the built-in functions with their signatures.
func Functions(c fiber.Ctx) error {
	all := registry.Builtins().All()
	out := make([]models.FunctionInfo, len(all))
	for i, f := range all {
		out[i] = models.FunctionInfo{Name: f.Name, Category: f.Category, Signature: f.Signature()}
	}
	return c.JSON(out)
}

// Modifiers lists the style keywords besides colors and scale.
func Modifiers(c fiber.Ctx) error {
	return c.JSON(program.Modifiers())
}

func Templates(c fiber.Ctx) error {
	return c.JSON(program.Templates())
}
