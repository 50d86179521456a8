package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"geometry/internal/geometry/drawable"
	"geometry/internal/geometry/fault"
	"geometry/internal/geometry/models"
	"geometry/internal/geometry/program"
)

// ============================================================
// Helpers
// ============================================================

func decode(c fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return errors.New("empty body")
	}
	if err := json.Unmarshal(c.Body(), v); err != nil {
		return errors.New("invalid json")
	}
	return nil
}

func fail(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func lineError(err error) models.LineError {
	return models.LineError{Line: fault.LineOf(err), Code: fault.GetCode(err), Message: err.Error()}
}

// drawables keeps the successfully evaluated statements of a frame.
func drawables(items []program.Item) []*drawable.Drawable {
	ds := make([]*drawable.Drawable, 0, len(items))
	for _, it := range items {
		if it.Drawable != nil {
			ds = append(ds, it.Drawable)
		}
	}
	return ds
}

func failures(items []program.Item) int {
	n := 0
	for _, it := range items {
		if it.Err != nil {
			n++
		}
	}
	return n
}
