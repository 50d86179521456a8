package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"

	"geometry/internal/geometry/models"
	"geometry/internal/geometry/repository"
)

// ============================================================
// Programs Handler
// ============================================================

type ProgramsHandler struct {
	repo *repository.Repository
}

func NewProgramsHandler(repo *repository.Repository) *ProgramsHandler {
	return &ProgramsHandler{repo: repo}
}

func decodeProgram(c fiber.Ctx) (models.ProgramRequest, error) {
	var req models.ProgramRequest
	if err := decode(c, &req); err != nil {
		return req, err
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return req, errors.New("name required")
	}
	return req, nil
}

func (h *ProgramsHandler) Create(c fiber.Ctx) error {
	req, err := decodeProgram(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	p, err := h.repo.Create(c.Context(), req.Name, req.Source, req.Global)
	if err != nil {
		log.Printf("[PROGRAMS] Create error: %v", err)
		return fail(c, http.StatusInternalServerError, "failed to save program")
	}
	log.Printf("[PROGRAMS] Created %s (%s)", p.ID, p.Name)
	return c.Status(http.StatusCreated).JSON(p)
}

func (h *ProgramsHandler) List(c fiber.Ctx) error {
	programs, err := h.repo.List(c.Context())
	if err != nil {
		log.Printf("[PROGRAMS] List error: %v", err)
		return fail(c, http.StatusInternalServerError, "failed to list programs")
	}
	return c.JSON(programs)
}

func (h *ProgramsHandler) Get(c fiber.Ctx) error {
	p, err := h.repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(p)
}

func (h *ProgramsHandler) Update(c fiber.Ctx) error {
	req, err := decodeProgram(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	p, err := h.repo.Update(c.Context(), c.Params("id"), req.Name, req.Source, req.Global)
	if err != nil {
		return h.storeError(c, err)
	}
	log.Printf("[PROGRAMS] Updated %s", p.ID)
	return c.JSON(p)
}

func (h *ProgramsHandler) Delete(c fiber.Ctx) error {
	if err := h.repo.Delete(c.Context(), c.Params("id")); err != nil {
		return h.storeError(c, err)
	}
	log.Printf("[PROGRAMS] Deleted %s", c.Params("id"))
	return c.SendStatus(http.StatusNoContent)
}

func (h *ProgramsHandler) storeError(c fiber.Ctx, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fail(c, http.StatusNotFound, "program not found")
	}
	log.Printf("[PROGRAMS] Store error: %v", err)
	return fail(c, http.StatusInternalServerError, "program store failed")
}
