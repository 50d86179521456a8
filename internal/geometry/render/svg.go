package render

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"geometry/internal/geometry/drawable"
)

// Sizes in logical units.
const (
	lineWidth   = 0.8
	pointRadius = 1.8
	fontSize    = 8
	subFontSize = 6
	labelShift  = 3
	fillOpacity = 0.3
)

// ============================================================
// SVG
// ============================================================

// SVG collects the elements of one frame. Elements are written in logical
// coordinates inside a group carrying the viewport transform.
type SVG struct {
	vp       Viewport
	elements []string
}

func NewSVG(vp Viewport) *SVG {
	return &SVG{vp: vp}
}

func (r *SVG) Bounds() drawable.Rect {
	return r.vp.Bounds()
}

func (r *SVG) Point(at drawable.Offset, c drawable.Color) {
	r.elements = append(r.elements, fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="%s" />`,
		formatFloat(at.X), formatFloat(at.Y), formatFloat(pointRadius), c.SVG()))
}

func (r *SVG) Circle(center drawable.Offset, radius float64, s drawable.Style) {
	if !s.Visible() {
		return
	}
	r.elements = append(r.elements, fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s"%s />`,
		formatFloat(center.X), formatFloat(center.Y), formatFloat(radius), styleAttrs(s)))
}

func (r *SVG) Line(from, to drawable.Offset, s drawable.Style) {
	if s.Border == drawable.BorderNo {
		return
	}
	r.elements = append(r.elements, fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s"%s />`,
		formatFloat(from.X), formatFloat(from.Y), formatFloat(to.X), formatFloat(to.Y), strokeAttrs(s)))
}

func (r *SVG) Polygon(points []drawable.Offset, s drawable.Style) {
	if !s.Visible() || len(points) == 0 {
		return
	}
	coords := make([]string, len(points))
	for i, p := range points {
		coords[i] = formatFloat(p.X) + "," + formatFloat(p.Y)
	}
	r.elements = append(r.elements, fmt.Sprintf(`<polygon points="%s"%s />`,
		strings.Join(coords, " "), styleAttrs(s)))
}

func (r *SVG) Text(at drawable.Offset, spans []string, c drawable.Color) {
	var b strings.Builder
	fmt.Fprintf(&b, `<text x="%s" y="%s" fill="%s">`,
		formatFloat(at.X+labelShift), formatFloat(at.Y+labelShift), c.SVG())
	for i, span := range spans {
		if span == "" {
			continue
		}
		if i%2 == 1 {
			fmt.Fprintf(&b, `<tspan baseline-shift="sub" font-size="%d">%s</tspan>`, subFontSize, html.EscapeString(span))
			continue
		}
		b.WriteString(html.EscapeString(span))
	}
	b.WriteString(`</text>`)
	r.elements = append(r.elements, b.String())
}

func (r *SVG) Angle(center drawable.Offset, from, to float64, s drawable.Style) {
	if !s.Visible() {
		return
	}
	radius := sectorRadius(s)
	start := center.Add(direction(from).Scale(radius))
	end := center.Add(direction(to).Scale(radius))
	large, sweep := 0, 0
	if math.Abs(to-from) > math.Pi {
		large = 1
	}
	if from > to {
		sweep = 1
	}
	r.elements = append(r.elements, fmt.Sprintf(`<path d="M %s L %s A %s %s 0 %d %d %s Z"%s />`,
		formatPoint(center), formatPoint(start), formatFloat(radius), formatFloat(radius),
		large, sweep, formatPoint(end), styleAttrs(s)))
}

// group opens the element carrying the viewport transform.
func (r *SVG) group() string {
	k := r.vp.minDim() / drawable.Extent
	return fmt.Sprintf(`<g transform="scale(%s) rotate(%s) translate(%s %s)" stroke-width="%s" font-size="%d" font-family="roboto">`,
		formatFloat(r.vp.Unit()), formatFloat(r.vp.Rotation),
		formatFloat(r.vp.Pan.X/k), formatFloat(r.vp.Pan.Y/k),
		formatFloat(lineWidth), fontSize)
}

func (r *SVG) header() string {
	w, h := r.vp.Width, r.vp.Height
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`,
		formatFloat(w), formatFloat(h), formatFloat(-w/2), formatFloat(-h/2), formatFloat(w), formatFloat(h))
}

// String returns the complete document.
func (r *SVG) String() string {
	var builder strings.Builder
	builder.WriteString(r.header())
	builder.WriteString("\n")
	builder.WriteString(r.group())
	builder.WriteString("\n")
	for _, elem := range r.elements {
		builder.WriteString("  ")
		builder.WriteString(elem)
		builder.WriteString("\n")
	}
	builder.WriteString("</g>\n</svg>")
	return builder.String()
}

// ============================================================
// Style helpers
// ============================================================

func styleAttrs(s drawable.Style) string {
	var b strings.Builder
	if s.Fill {
		fmt.Fprintf(&b, ` fill="%s" fill-opacity="%s"`, s.Color.SVG(), formatFloat(fillOpacity))
	} else {
		b.WriteString(` fill="transparent"`)
	}
	b.WriteString(strokeAttrs(s))
	return b.String()
}

func strokeAttrs(s drawable.Style) string {
	if s.Border == drawable.BorderNo {
		return ` stroke="none"`
	}
	attrs := fmt.Sprintf(` stroke="%s"`, s.Color.SVG())
	if dashes := s.Border.Dashes(); dashes != nil {
		attrs += fmt.Sprintf(` stroke-dasharray="%s"`, formatFloats(dashes, " "))
	}
	return attrs
}

// sectorRadius is the radius of an angle mark in logical units.
func sectorRadius(s drawable.Style) float64 {
	return drawable.AngleRadius * s.Scale
}

// direction is the unit offset of a counterclockwise angle in drawing
// orientation.
func direction(a float64) drawable.Offset {
	sin, cos := math.Sincos(a)
	return drawable.Offset{X: cos, Y: 0 - sin}
}

// ============================================================
// Formatting helpers
// ============================================================

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

func formatPoint(p drawable.Offset) string {
	return formatFloat(p.X) + " " + formatFloat(p.Y)
}

func formatFloats(vals []float64, sep string) string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = formatFloat(v)
	}
	return strings.Join(out, sep)
}
