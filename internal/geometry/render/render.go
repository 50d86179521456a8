package render

import (
	"io"

	"github.com/gogpu/gg/text"

	"geometry/internal/geometry/drawable"
)

// SVGDocument draws a frame as an SVG document.
func SVGDocument(vp Viewport, ds []*drawable.Drawable) string {
	r := NewSVG(vp)
	drawable.DrawAll(r, ds)
	return r.String()
}

// HTMLDocument draws a frame as an HTML page with a canvas.
func HTMLDocument(vp Viewport, ds []*drawable.Drawable) string {
	r := NewHTML(vp)
	drawable.DrawAll(r, ds)
	return r.String()
}

// WritePNG rasterizes a frame to w. font may be nil.
func WritePNG(w io.Writer, vp Viewport, font *text.FontSource, ds []*drawable.Drawable) error {
	r, err := NewPNG(vp, font)
	if err != nil {
		return err
	}
	defer r.Close()
	drawable.DrawAll(r, ds)
	return r.Encode(w)
}

// Record draws a frame into a plan.
func Record(vp Viewport, ds []*drawable.Drawable) *Plan {
	p := NewPlan(vp.Bounds())
	drawable.DrawAll(p, ds)
	return p
}
