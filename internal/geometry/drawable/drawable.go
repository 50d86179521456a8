// Package drawable projects evaluated values onto an abstract drawing
// surface. Coordinates are logical: the shorter side of the view spans 200
// units and y grows downwards.
package drawable

import (
	"math"
	"sort"

	"geometry/internal/geometry/algebra"
)

// Extent is the logical length of the shorter side of every view.
const Extent = 200

// AngleRadius is the radius of an angle mark at scale 1.
const AngleRadius = 10

const (
	// epsilon is the tolerance for clipping and incidence, in logical units.
	epsilon    = 0.001
	tickLength = 3
)

type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// OffsetOf converts a point to drawing orientation.
func OffsetOf(z algebra.Complex) Offset {
	x, y := z.Offset()
	return Offset{x, y}
}

func (o Offset) Add(p Offset) Offset    { return Offset{o.X + p.X, o.Y + p.Y} }
func (o Offset) Sub(p Offset) Offset    { return Offset{o.X - p.X, o.Y - p.Y} }
func (o Offset) Scale(k float64) Offset { return Offset{o.X * k, o.Y * k} }

func (o Offset) DistanceSqr(p Offset) float64 {
	d := o.Sub(p)
	return d.X*d.X + d.Y*d.Y
}

// Rotate turns o by the given degrees.
func (o Offset) Rotate(degrees float64) Offset {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Offset{o.X*cos - o.Y*sin, o.X*sin + o.Y*cos}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

func (r Rect) Contains(o Offset, eps float64) bool {
	return o.X >= r.Left-eps && o.X <= r.Right+eps && o.Y >= r.Top-eps && o.Y <= r.Bottom+eps
}

// Drawer is the primitive set a renderer implements. Angles are in radians
// measured counterclockwise in the value's orientation; Angle draws a sector
// of radius AngleRadius·s.Scale.
type Drawer interface {
	Bounds() Rect
	Point(at Offset, c Color)
	Circle(center Offset, radius float64, s Style)
	Line(from, to Offset, s Style)
	Polygon(points []Offset, s Style)
	Text(at Offset, spans []string, c Color)
	Angle(center Offset, from, to float64, s Style)
}

// Drawable is an evaluated value with its style.
type Drawable struct {
	Value algebra.Geometric
	Style Style
}

// From wraps g with the default style.
func From(g algebra.Geometric) *Drawable {
	return &Drawable{Value: g, Style: DefaultStyle()}
}

// Point returns the value when it is a point.
func (d *Drawable) Point() (algebra.Complex, bool) {
	p, ok := d.Value.(algebra.Complex)
	return p, ok
}

// Draw emits the primitives of d. visible lists the shown points of the
// frame; bounded lines are clipped to them.
func (d *Drawable) Draw(dr Drawer, visible []algebra.Complex) {
	s := d.Style
	switch v := d.Value.(type) {
	case algebra.Complex:
		if s.Border == BorderNo || s.Border == BorderDot {
			return
		}
		at := OffsetOf(v)
		dr.Point(at, s.Color)
		if s.Label != nil {
			dr.Text(at, s.Label, s.Color)
		}
	case algebra.Line:
		if from, to, ok := lineExtent(v, s, dr.Bounds(), visible); ok {
			dr.Line(from, to, s)
		}
	case algebra.Circle:
		dr.Circle(OffsetOf(v.Center), v.Radius(), s)
	case algebra.Segment:
		from, to := OffsetOf(v.From), OffsetOf(v.To)
		dr.Line(from, to, s)
		segmentMarks(dr, from, to, s)
	case algebra.Triangle:
		dr.Polygon(offsets(v.Vertices()), s)
	case algebra.Polygon:
		dr.Polygon(offsets(v.Points), s)
	case algebra.Angle:
		drawAngle(dr, v, s)
	}
}

// DrawAll draws a frame. Shown points are collected first and drawn last,
// above every other object.
func DrawAll(dr Drawer, ds []*Drawable) {
	var visible []algebra.Complex
	var points []*Drawable
	for _, d := range ds {
		if p, ok := d.Point(); ok {
			if d.Style.Border != BorderNo {
				visible = append(visible, p)
			}
			points = append(points, d)
		}
	}
	for _, d := range ds {
		if _, ok := d.Point(); !ok {
			d.Draw(dr, visible)
		}
	}
	for _, d := range points {
		d.Draw(dr, visible)
	}
}

func offsets(points []algebra.Complex) []Offset {
	out := make([]Offset, len(points))
	for i, p := range points {
		out[i] = OffsetOf(p)
	}
	return out
}

// lineExtent finds the drawn part of l: between the outermost visible points
// on it when bounded, otherwise between the borders of the view.
func lineExtent(l algebra.Line, s Style, bounds Rect, visible []algebra.Complex) (Offset, Offset, bool) {
	if s.Bounded {
		if from, to, ok := boundedExtent(l, visible); ok {
			return from, to, true
		}
	}
	borders := []algebra.Line{
		{Coef: algebra.One, Free: -bounds.Left * 2},
		{Coef: algebra.I, Free: bounds.Top * 2},
		{Coef: algebra.One, Free: -bounds.Right * 2},
		{Coef: algebra.I, Free: bounds.Bottom * 2},
	}
	var hits []Offset
	for _, b := range borders {
		z := algebra.Intersect(l, b)
		if !z.IsFinite() {
			continue
		}
		o := OffsetOf(z)
		if !bounds.Contains(o, epsilon) {
			continue
		}
		if len(hits) > 0 && hits[0].DistanceSqr(o) < epsilon*epsilon {
			continue
		}
		hits = append(hits, o)
	}
	if len(hits) < 2 {
		return Offset{}, Offset{}, false
	}
	return hits[0], hits[1], true
}

func boundedExtent(l algebra.Line, visible []algebra.Complex) (Offset, Offset, bool) {
	n := l.Coef.Abs()
	if n == 0 {
		return Offset{}, Offset{}, false
	}
	dir := l.Coef.Mul(algebra.I).DivReal(n)
	type hit struct {
		t float64
		p algebra.Complex
	}
	var hits []hit
	for _, p := range visible {
		dist := math.Abs(l.Coef.Conj().Mul(p).Re*2+l.Free) / (2 * n)
		if dist < epsilon*10 {
			hits = append(hits, hit{p.Conj().Mul(dir).Re, p})
		}
	}
	if len(hits) < 2 {
		return Offset{}, Offset{}, false
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].t < hits[j].t })
	return OffsetOf(hits[0].p), OffsetOf(hits[len(hits)-1].p), true
}

// segmentMarks draws the equality marks across the middle of a segment.
func segmentMarks(dr Drawer, from, to Offset, s Style) {
	if s.Group == EqualNone {
		return
	}
	d := to.Sub(from)
	length := math.Hypot(d.X, d.Y)
	if length == 0 {
		return
	}
	along := d.Scale(1 / length)
	across := Offset{-along.Y, along.X}.Scale(tickLength * s.Scale)
	mid := from.Add(to).Scale(0.5)
	mark := Style{Color: s.Color, Border: BorderLine, Scale: s.Scale}
	switch s.Group {
	case Equal1, Equal2, Equal3:
		n := int(s.Group-Equal1) + 1
		for i := range n {
			shift := along.Scale((float64(i) - float64(n-1)/2) * 1.5 * s.Scale)
			c := mid.Add(shift)
			dr.Line(c.Sub(across), c.Add(across), mark)
		}
	case EqualV:
		tip := mid.Add(along.Scale(tickLength * s.Scale / 2))
		back := mid.Sub(along.Scale(tickLength * s.Scale / 2))
		dr.Line(back.Sub(across), tip, mark)
		dr.Line(tip, back.Add(across), mark)
	case EqualO:
		dr.Circle(mid, tickLength*s.Scale/2, mark)
	}
}

// drawAngle marks right angles with a square and others with an arc. Equal
// groups add concentric arcs.
func drawAngle(dr Drawer, a algebra.Angle, s Style) {
	center := OffsetOf(a.Center)
	r := AngleRadius * s.Scale
	if math.Abs(math.Abs(a.To-a.From)-math.Pi/2) < epsilon {
		f := OffsetOf(algebra.Imag(a.From).Exp().Scale(r))
		t := OffsetOf(algebra.Imag(a.To).Exp().Scale(r))
		dr.Polygon([]Offset{center, center.Add(f), center.Add(f).Add(t), center.Add(t)}, s)
	} else {
		dr.Angle(center, a.From, a.To, s)
	}
	extra := 0
	switch s.Group {
	case Equal1, Equal2, Equal3:
		extra = int(s.Group-Equal1) + 1
	}
	arc := s
	arc.Fill = false
	for i := 1; i < extra; i++ {
		arc.Scale = s.Scale * (1 + 0.2*float64(i))
		dr.Angle(center, a.From, a.To, arc)
	}
}
