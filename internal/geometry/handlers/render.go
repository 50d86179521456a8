package handlers

import (
	"bytes"
	"log"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"geometry/internal/geometry/drawable"
	"geometry/internal/geometry/models"
	"geometry/internal/geometry/program"
	"geometry/internal/geometry/render"
)

// errorsHeader carries the number of failed lines of a rendered frame.
const errorsHeader = "X-Geometry-Errors"

// ============================================================
// Render Handlers
// ============================================================

// frame decodes the request and evaluates it. Errors are request errors.
func (h *EvalHandler) frame(c fiber.Ctx) (render.Viewport, []*drawable.Drawable, error) {
	var req models.EvaluateRequest
	if err := decode(c, &req); err != nil {
		return render.Viewport{}, nil, err
	}
	vp, err := h.viewport(req.View)
	if err != nil {
		return render.Viewport{}, nil, err
	}
	items := program.Parse(req.Source, req.Global).Frame(req.Time)
	c.Set(errorsHeader, strconv.Itoa(failures(items)))
	return vp, drawables(items), nil
}

func (h *EvalHandler) RenderSVG(c fiber.Ctx) error {
	log.Printf("[RENDER] SVG request")
	vp, ds, err := h.frame(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(render.SVGDocument(vp, ds))
}

func (h *EvalHandler) RenderHTML(c fiber.Ctx) error {
	log.Printf("[RENDER] HTML request")
	vp, ds, err := h.frame(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(render.HTMLDocument(vp, ds))
}

func (h *EvalHandler) RenderPNG(c fiber.Ctx) error {
	log.Printf("[RENDER] PNG request")
	vp, ds, err := h.frame(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	var buf bytes.Buffer
	if err := render.WritePNG(&buf, vp, h.font, ds); err != nil {
		log.Printf("[RENDER] PNG error: %v", err)
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	c.Set("Content-Type", "image/png")
	return c.Send(buf.Bytes())
}

// RenderVideo renders consecutive frames starting at the request time. A
// request without a frame count gets MaxFrames frames for an animated
// program and a single frame otherwise.
func (h *EvalHandler) RenderVideo(c fiber.Ctx) error {
	log.Printf("[RENDER] Video request")

	var req models.VideoRequest
	if err := decode(c, &req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	vp, err := h.viewport(req.View)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	if req.Frames < 0 || req.Frames > h.limits.MaxFrames {
		return fail(c, http.StatusBadRequest, "frames must be between 0 and "+strconv.Itoa(h.limits.MaxFrames))
	}
	if req.Rate < 0 {
		return fail(c, http.StatusBadRequest, "rate must be positive")
	}
	rate := req.Rate
	if rate == 0 {
		rate = render.DefaultRate
	}

	prog := program.Parse(req.Source, req.Global)
	n := req.Frames
	if n == 0 {
		n = 1
		if prog.Animated() {
			n = h.limits.MaxFrames
		}
	}
	frames := make([][]*drawable.Drawable, n)
	for i := range frames {
		frames[i] = drawables(prog.Frame(req.Time + i))
	}
	log.Printf("[RENDER] Video of %d frames at %vms", n, rate)

	switch req.Format {
	case "", "svg":
		c.Set("Content-Type", "image/svg+xml")
		return c.SendString(render.SVGVideo(vp, frames, rate))
	case "html":
		c.Set("Content-Type", "text/html; charset=utf-8")
		return c.SendString(render.HTMLVideo(vp, frames, rate))
	}
	return fail(c, http.StatusBadRequest, "unknown format "+strconv.Quote(req.Format))
}
