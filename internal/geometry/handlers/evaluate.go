package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gogpu/gg/text"

	"geometry/internal/geometry/algebra"
	"geometry/internal/geometry/models"
	"geometry/internal/geometry/program"
	"geometry/internal/geometry/render"
)

// maxSide bounds the requested image size in pixels.
const maxSide = 4096

// Limits are the rendering defaults and bounds of the service.
type Limits struct {
	Width     float64
	Height    float64
	MaxFrames int
}

// ============================================================
// Evaluation Handler
// ============================================================

type EvalHandler struct {
	font   *text.FontSource
	limits Limits
}

// NewEvalHandler creates the handler. font may be nil, then PNG images are
// drawn without labels.
func NewEvalHandler(font *text.FontSource, limits Limits) *EvalHandler {
	return &EvalHandler{font: font, limits: limits}
}

func (h *EvalHandler) viewport(v *models.View) (render.Viewport, error) {
	vp := render.NewViewport(h.limits.Width, h.limits.Height)
	if v != nil {
		if v.Width > 0 {
			vp.Width = v.Width
		}
		if v.Height > 0 {
			vp.Height = v.Height
		}
		if v.Zoom > 0 {
			vp.Zoom = v.Zoom
		}
		vp.Rotation = v.Rotation
		vp.Pan = v.Pan
	}
	if vp.Width > maxSide || vp.Height > maxSide {
		return vp, fmt.Errorf("image larger than %dx%d", maxSide, maxSide)
	}
	if vp.Width <= 0 || vp.Height <= 0 {
		return vp, fmt.Errorf("empty image %vx%v", vp.Width, vp.Height)
	}
	return vp, nil
}

// Evaluate runs one frame and returns its draw plan with the per-line
// outcome.
func (h *EvalHandler) Evaluate(c fiber.Ctx) error {
	log.Printf("[EVAL] Received request, %d bytes", len(c.Body()))

	var req models.EvaluateRequest
	if err := decode(c, &req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	vp, err := h.viewport(req.View)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	prog := program.Parse(req.Source, req.Global)
	items := prog.Frame(req.Time)

	resp := models.EvaluateResponse{
		Time:      req.Time,
		Animated:  prog.Animated(),
		Plan:      render.Record(vp, drawables(items)),
		Lines:     make([]models.LineResult, 0, len(items)),
		Errors:    []models.LineError{},
		Functions: []string{},
	}
	for _, err := range prog.Errors() {
		resp.Errors = append(resp.Errors, lineError(err))
	}
	for _, it := range items {
		line := models.LineResult{Line: it.Line, Movable: it.Movable}
		if it.Err != nil {
			e := lineError(it.Err)
			line.Error = &e
			resp.Errors = append(resp.Errors, e)
		} else {
			line.Kind = it.Drawable.Value.Kind().String()
			line.Label = it.Drawable.Style.Label
		}
		resp.Lines = append(resp.Lines, line)
	}
	for _, f := range prog.Functions() {
		resp.Functions = append(resp.Functions, f.Signature())
	}

	log.Printf("[EVAL] Frame %d: %d lines, %d errors", req.Time, len(resp.Lines), len(resp.Errors))
	return c.JSON(resp)
}

// Move rewrites the source after a movable point is dragged.
func (h *EvalHandler) Move(c fiber.Ctx) error {
	log.Printf("[MOVE] Received request")

	var req models.MoveRequest
	if err := decode(c, &req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	items := program.Parse(req.Source, req.Global).Frame(req.Time)
	var (
		m  program.Movable
		ok bool
	)
	switch {
	case req.Line > 0:
		m, ok = program.Find(items, req.Line)
	case req.At != nil:
		m, ok = program.Pick(items, *req.At)
	default:
		return fail(c, http.StatusBadRequest, "line or at required")
	}
	if !ok {
		return fail(c, http.StatusNotFound, "no movable point there")
	}

	source, err := program.Move(req.Source, m, algebra.C(req.To.X, -req.To.Y))
	if err != nil {
		log.Printf("[MOVE] Rewrite error: %v", err)
		return fail(c, http.StatusBadRequest, err.Error())
	}
	log.Printf("[MOVE] Line %d moved to %v", m.Line, req.To)
	return c.JSON(models.MoveResponse{Source: source, Line: m.Line})
}
