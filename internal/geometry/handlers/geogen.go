package handlers

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"geometry/internal/geometry/geogen"
	"geometry/internal/geometry/models"
)

// ConvertGeoGen translates GeoGen output into programs, one per theorem.
func ConvertGeoGen(c fiber.Ctx) error {
	log.Printf("[GEOGEN] Received request, %d bytes", len(c.Body()))

	var req models.GeoGenRequest
	if err := decode(c, &req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	name := req.Name
	if name == "" {
		name = "theorem"
	}
	theorems, err := geogen.Convert(req.Text, name)
	if err != nil {
		log.Printf("[GEOGEN] Conversion error: %v", err)
		return fail(c, http.StatusBadRequest, err.Error())
	}
	log.Printf("[GEOGEN] Converted %d theorems", len(theorems))
	return c.JSON(theorems)
}
