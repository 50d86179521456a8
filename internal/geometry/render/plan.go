package render

import (
	"geometry/internal/geometry/drawable"
)

// Op is one recorded drawing primitive.
type Op struct {
	Kind   string            `json:"kind"`
	Points []drawable.Offset `json:"points"`
	Radius float64           `json:"radius,omitempty"`
	From   float64           `json:"from,omitempty"`
	To     float64           `json:"to,omitempty"`
	Spans  []string          `json:"spans,omitempty"`
	Color  drawable.Color    `json:"color"`
	Style  *drawable.Style   `json:"style,omitempty"`
}

// Plan records primitives in logical coordinates, for clients that draw
// frames themselves.
type Plan struct {
	View drawable.Rect `json:"bounds"`
	Ops  []Op          `json:"ops"`
}

func NewPlan(bounds drawable.Rect) *Plan {
	return &Plan{View: bounds, Ops: []Op{}}
}

func (p *Plan) Bounds() drawable.Rect {
	return p.View
}

func (p *Plan) Point(at drawable.Offset, c drawable.Color) {
	p.Ops = append(p.Ops, Op{Kind: "point", Points: []drawable.Offset{at}, Color: c})
}

func (p *Plan) Circle(center drawable.Offset, radius float64, s drawable.Style) {
	p.Ops = append(p.Ops, Op{Kind: "circle", Points: []drawable.Offset{center}, Radius: radius, Color: s.Color, Style: &s})
}

func (p *Plan) Line(from, to drawable.Offset, s drawable.Style) {
	p.Ops = append(p.Ops, Op{Kind: "line", Points: []drawable.Offset{from, to}, Color: s.Color, Style: &s})
}

func (p *Plan) Polygon(points []drawable.Offset, s drawable.Style) {
	p.Ops = append(p.Ops, Op{Kind: "polygon", Points: points, Color: s.Color, Style: &s})
}

func (p *Plan) Text(at drawable.Offset, spans []string, c drawable.Color) {
	p.Ops = append(p.Ops, Op{Kind: "text", Points: []drawable.Offset{at}, Spans: spans, Color: c})
}

func (p *Plan) Angle(center drawable.Offset, from, to float64, s drawable.Style) {
	p.Ops = append(p.Ops, Op{
		Kind:   "angle",
		Points: []drawable.Offset{center},
		Radius: sectorRadius(s),
		From:   from,
		To:     to,
		Color:  s.Color,
		Style:  &s,
	})
}
