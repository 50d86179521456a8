package render

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"geometry/internal/geometry/drawable"
)

// ============================================================
// PNG
// ============================================================

// PNG rasterizes a frame with gg. Coordinates are mapped to pixels through
// the viewport; labels are drawn only when a font is given.
type PNG struct {
	vp   Viewport
	dc   *gg.Context
	face text.Face
	sub  text.Face
	err  error
}

// LoadFont reads a TrueType font for PNG labels.
func LoadFont(path string) (*text.FontSource, error) {
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	return src, nil
}

// NewPNG prepares a white canvas. font may be nil.
func NewPNG(vp Viewport, font *text.FontSource) (*PNG, error) {
	if !vp.valid() {
		return nil, fmt.Errorf("invalid viewport %vx%v zoom %v", vp.Width, vp.Height, vp.Zoom)
	}
	dc := gg.NewContext(int(math.Ceil(vp.Width)), int(math.Ceil(vp.Height)))
	dc.ClearWithColor(gg.White)
	r := &PNG{vp: vp, dc: dc}
	if font != nil {
		r.face = font.Face(fontSize * vp.Unit())
		r.sub = font.Face(subFontSize * vp.Unit())
	}
	return r, nil
}

func (r *PNG) Bounds() drawable.Rect {
	return r.vp.Bounds()
}

func (r *PNG) screen(o drawable.Offset) drawable.Offset {
	return r.vp.ToScreen(o)
}

func (r *PNG) Point(at drawable.Offset, c drawable.Color) {
	p := r.screen(at)
	r.dc.DrawCircle(p.X, p.Y, pointRadius*r.vp.Unit())
	r.dc.SetRGB(c.Floats())
	r.check(r.dc.Fill())
}

func (r *PNG) Circle(center drawable.Offset, radius float64, s drawable.Style) {
	c := r.screen(center)
	r.styled(s, func() {
		r.dc.DrawCircle(c.X, c.Y, radius*r.vp.Unit())
	})
}

func (r *PNG) Line(from, to drawable.Offset, s drawable.Style) {
	a, b := r.screen(from), r.screen(to)
	s.Fill = false
	r.styled(s, func() {
		r.dc.MoveTo(a.X, a.Y)
		r.dc.LineTo(b.X, b.Y)
	})
}

func (r *PNG) Polygon(points []drawable.Offset, s drawable.Style) {
	if len(points) == 0 {
		return
	}
	r.styled(s, func() {
		for i, p := range points {
			q := r.screen(p)
			if i == 0 {
				r.dc.MoveTo(q.X, q.Y)
			} else {
				r.dc.LineTo(q.X, q.Y)
			}
		}
		r.dc.ClosePath()
	})
}

func (r *PNG) Text(at drawable.Offset, spans []string, c drawable.Color) {
	if r.face == nil {
		return
	}
	p := r.screen(at)
	unit := r.vp.Unit()
	x, y := p.X+labelShift*unit, p.Y+labelShift*unit
	r.dc.SetRGB(c.Floats())
	for i, span := range spans {
		if span == "" {
			continue
		}
		face, dy := r.face, 0.0
		if i%2 == 1 {
			face, dy = r.sub, labelShift*unit
		}
		r.dc.SetFont(face)
		r.dc.DrawString(span, x, y+dy)
		w, _ := r.dc.MeasureString(span)
		x += w
	}
}

func (r *PNG) Angle(center drawable.Offset, from, to float64, s drawable.Style) {
	c := r.screen(center)
	radius := sectorRadius(s) * r.vp.Unit()
	a1, a2 := -r.vp.angle(from), -r.vp.angle(to)
	lo, hi := math.Min(a1, a2), math.Max(a1, a2)
	r.styled(s, func() {
		sin, cos := math.Sincos(lo)
		r.dc.MoveTo(c.X, c.Y)
		r.dc.LineTo(c.X+radius*cos, c.Y+radius*sin)
		r.dc.DrawArc(c.X, c.Y, radius, lo, hi)
		r.dc.ClosePath()
	})
}

// styled fills and strokes the path built by path, as the style asks.
func (r *PNG) styled(s drawable.Style, path func()) {
	if !s.Visible() {
		return
	}
	rd, gr, bl := s.Color.Floats()
	if s.Fill {
		path()
		r.dc.SetRGBA(rd, gr, bl, fillOpacity)
		r.check(r.dc.Fill())
	}
	if s.Border != drawable.BorderNo {
		path()
		r.dc.SetRGB(rd, gr, bl)
		r.dc.SetLineWidth(lineWidth * r.vp.Unit())
		if dashes := s.Border.Dashes(); dashes != nil {
			scaled := make([]float64, len(dashes))
			for i, d := range dashes {
				scaled[i] = d * r.vp.Unit()
			}
			r.dc.SetDash(scaled...)
		} else {
			r.dc.ClearDash()
		}
		r.check(r.dc.Stroke())
	}
}

func (r *PNG) check(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

// Encode writes the image. It reports the first drawing failure instead.
func (r *PNG) Encode(w io.Writer) error {
	if r.err != nil {
		return fmt.Errorf("draw: %w", r.err)
	}
	return r.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (r *PNG) Close() error {
	return r.dc.Close()
}
