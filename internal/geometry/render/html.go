package render

import (
	"fmt"
	"strconv"
	"strings"

	"geometry/internal/geometry/drawable"
)

// ============================================================
// HTML canvas
// ============================================================

// HTML writes canvas 2D calls for one frame. The context transform is set
// once in the document, so statements use logical coordinates.
type HTML struct {
	vp     Viewport
	script strings.Builder
}

func NewHTML(vp Viewport) *HTML {
	return &HTML{vp: vp}
}

func (r *HTML) Bounds() drawable.Rect {
	return r.vp.Bounds()
}

func (r *HTML) Point(at drawable.Offset, c drawable.Color) {
	fmt.Fprintf(&r.script, "ctx.beginPath();ctx.arc(%s,%s,%s,0,2*Math.PI);ctx.fillStyle=%q;ctx.fill();\n",
		formatFloat(at.X), formatFloat(at.Y), formatFloat(pointRadius), c.SVG())
}

func (r *HTML) Circle(center drawable.Offset, radius float64, s drawable.Style) {
	r.styled(s, fmt.Sprintf("ctx.arc(%s,%s,%s,0,2*Math.PI);",
		formatFloat(center.X), formatFloat(center.Y), formatFloat(radius)))
}

func (r *HTML) Line(from, to drawable.Offset, s drawable.Style) {
	s.Fill = false
	r.styled(s, fmt.Sprintf("ctx.moveTo(%s,%s);ctx.lineTo(%s,%s);",
		formatFloat(from.X), formatFloat(from.Y), formatFloat(to.X), formatFloat(to.Y)))
}

func (r *HTML) Polygon(points []drawable.Offset, s drawable.Style) {
	if len(points) == 0 {
		return
	}
	var path strings.Builder
	fmt.Fprintf(&path, "ctx.moveTo(%s,%s);", formatFloat(points[0].X), formatFloat(points[0].Y))
	for _, p := range points[1:] {
		fmt.Fprintf(&path, "ctx.lineTo(%s,%s);", formatFloat(p.X), formatFloat(p.Y))
	}
	path.WriteString("ctx.closePath();")
	r.styled(s, path.String())
}

func (r *HTML) Text(at drawable.Offset, spans []string, c drawable.Color) {
	fmt.Fprintf(&r.script, "ctx.fillStyle=%q;var x=%s;\n", c.SVG(), formatFloat(at.X+labelShift))
	for i, span := range spans {
		if span == "" {
			continue
		}
		size, y := fontSize, at.Y+labelShift
		if i%2 == 1 {
			size, y = subFontSize, at.Y+2*labelShift
		}
		text := strconv.Quote(span)
		fmt.Fprintf(&r.script, "ctx.font=\"%dpx roboto\";ctx.fillText(%s,x,%s);x+=ctx.measureText(%s).width;\n",
			size, text, formatFloat(y), text)
	}
}

func (r *HTML) Angle(center drawable.Offset, from, to float64, s drawable.Style) {
	r.styled(s, fmt.Sprintf("ctx.moveTo(%s,%s);ctx.arc(%s,%s,%s,%s,%s,%t);ctx.closePath();",
		formatFloat(center.X), formatFloat(center.Y),
		formatFloat(center.X), formatFloat(center.Y), formatFloat(sectorRadius(s)),
		formatFloat(-from), formatFloat(-to), from < to))
}

func (r *HTML) styled(s drawable.Style, path string) {
	if !s.Visible() {
		return
	}
	r.script.WriteString("ctx.beginPath();")
	r.script.WriteString(path)
	if s.Fill {
		fmt.Fprintf(&r.script, "ctx.fillStyle=%q;ctx.fill();", s.Color.RGBA(fillOpacity))
	}
	if s.Border != drawable.BorderNo {
		fmt.Fprintf(&r.script, "ctx.setLineDash([%s]);ctx.strokeStyle=%q;ctx.stroke();",
			formatFloats(s.Border.Dashes(), ","), s.Color.SVG())
	}
	r.script.WriteString("\n")
}

// setup is the script preamble: canvas lookup and the viewport transform.
func (r *HTML) setup() string {
	k := r.vp.minDim() / drawable.Extent
	return fmt.Sprintf(`var ctx=document.getElementById("geometry").getContext("2d");
ctx.translate(%s,%s);ctx.scale(%s,%s);ctx.rotate(%s);ctx.translate(%s,%s);ctx.scale(%s,%s);
ctx.lineWidth=%s;
`,
		formatFloat(r.vp.Width/2), formatFloat(r.vp.Height/2),
		formatFloat(r.vp.Zoom), formatFloat(r.vp.Zoom),
		formatFloat(r.vp.Rotation*pi180),
		formatFloat(r.vp.Pan.X), formatFloat(r.vp.Pan.Y),
		formatFloat(k), formatFloat(k),
		formatFloat(lineWidth))
}

func (r *HTML) document(script string) string {
	var builder strings.Builder
	builder.WriteString("<!DOCTYPE html>\n<html>\n<body style=\"margin:0\">\n")
	fmt.Fprintf(&builder, "<canvas id=\"geometry\" width=\"%s\" height=\"%s\"></canvas>\n",
		formatFloat(r.vp.Width), formatFloat(r.vp.Height))
	builder.WriteString("<script>\n")
	builder.WriteString(r.setup())
	builder.WriteString(script)
	builder.WriteString("</script>\n</body>\n</html>")
	return builder.String()
}

// String returns the complete page.
func (r *HTML) String() string {
	return r.document(r.script.String())
}
