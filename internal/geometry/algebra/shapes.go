package algebra

import "math"

// Symmetry reflects z in l.
func (z Complex) Symmetry(l Line) Complex {
	return z.Conj().Mul(l.Coef).Add(Real(l.Free)).Div(l.Coef.Conj()).Neg()
}

// Homothety maps z to (z - a)·k + a.
func (z Complex) Homothety(a, k Complex) Complex {
	return z.Sub(a).Mul(k).Add(a)
}

// Inversion maps z to r² / conj(z - o) + o.
func (z Complex) Inversion(c Circle) Complex {
	return Real(c.RadiusSqr).Div(z.Sub(c.Center).Conj()).Add(c.Center)
}

// Line is the locus of z with conj(Coef)·z + Coef·conj(z) + Free = 0.
type Line struct {
	Coef Complex
	Free float64
}

// Symmetry reflects l in m.
func (l Line) Symmetry(m Line) Line {
	return Line{
		Coef: l.Coef.Conj().Mul(m.Coef).Div(m.Coef.Conj()),
		Free: Real(m.Free).Mul(l.Coef).Div(m.Coef).Re*2 - l.Free,
	}
}

// Translation only moves Free; the direction is unchanged.
func (l Line) Translation(a Complex) Line {
	return Line{Coef: l.Coef, Free: l.Free - l.Coef.Mul(a.Conj()).Re*2}
}

func (l Line) Homothety(a, k Complex) Line {
	return Line{
		Coef: l.Coef.Div(k.Conj()),
		Free: a.Mul(l.Coef.Conj()).Mul(One.Sub(k.Inv())).Re*2 + l.Free,
	}
}

// Inversion returns the circle through the center of c, or l itself when l
// already passes through that center.
func (l Line) Inversion(c Circle) Geometric {
	x := c.Center.Mul(l.Coef.Conj()).Re*2 + l.Free
	if x == 0 {
		return l
	}
	k := l.Coef.Scale(c.RadiusSqr / x)
	return Circle{Center: c.Center.Sub(k), RadiusSqr: k.Norm()}
}

// Circle stores the squared radius.
type Circle struct {
	Center    Complex
	RadiusSqr float64
}

// Radius returns the radius, treating a negative square as zero.
func (c Circle) Radius() float64 {
	return math.Sqrt(math.Max(c.RadiusSqr, 0))
}

func (c Circle) Symmetry(l Line) Circle {
	return Circle{Center: c.Center.Symmetry(l), RadiusSqr: c.RadiusSqr}
}

// Inversion returns a circle, or a line when c passes through the center of
// inversion.
func (c Circle) Inversion(inv Circle) Geometric {
	x := inv.Center.Sub(c.Center).Norm() - c.RadiusSqr
	if x == 0 {
		return Line{
			Coef: inv.Center.Sub(c.Center),
			Free: inv.RadiusSqr + inv.Center.Mul(c.Center.Conj()).Re*2 - inv.Center.Norm()*2,
		}
	}
	k := inv.Center.Sub(c.Center).Scale(inv.RadiusSqr / x)
	return Circle{
		Center:    inv.Center.Sub(k),
		RadiusSqr: k.Norm() - inv.RadiusSqr*inv.RadiusSqr/x,
	}
}

// Segment is the bounded piece of line between From and To.
type Segment struct {
	From Complex
	To   Complex
}

func (s Segment) Symmetry(l Line) Segment {
	return Segment{From: s.From.Symmetry(l), To: s.To.Symmetry(l)}
}

// Line returns the supporting line.
func (s Segment) Line() Line {
	return LineThrough(s.From, s.To)
}

// Polygonal is implemented by Triangle and Polygon.
type Polygonal interface {
	Geometric
	Vertices() []Complex
}

type Triangle struct {
	A, B, C Complex
}

func (t Triangle) Vertices() []Complex {
	return []Complex{t.A, t.B, t.C}
}

func (t Triangle) Map(f func(Complex) Complex) Triangle {
	return Triangle{A: f(t.A), B: f(t.B), C: f(t.C)}
}

// Polygon has at least three vertices in drawing order.
type Polygon struct {
	Points []Complex
}

func (p Polygon) Vertices() []Complex {
	return p.Points
}

func (p Polygon) Map(f func(Complex) Complex) Polygon {
	points := make([]Complex, len(p.Points))
	for i, z := range p.Points {
		points[i] = f(z)
	}
	return Polygon{Points: points}
}

// Angle spans From..To radians around Center, with
// From - 2π < To < From + 2π.
type Angle struct {
	Center Complex
	From   float64
	To     float64
}

// AngleAt returns the angle a-b-c with vertex b.
func AngleAt(a, b, c Complex) Angle {
	return Angle{Center: b, From: a.Sub(b).Arg(), To: c.Sub(b).Arg()}
}

func (a Angle) Symmetry(l Line) Angle {
	base := l.Coef.Arg()*2 - math.Pi
	return Angle{Center: a.Center.Symmetry(l), From: base - a.From, To: base - a.To}
}

func (a Angle) Homothety(o, k Complex) Angle {
	turn := k.Arg()
	return Angle{Center: a.Center.Homothety(o, k), From: a.From + turn, To: a.To + turn}
}

// Normal brings To within π of From.
func (a Angle) Normal() Angle {
	switch {
	case a.From < a.To-math.Pi:
		return Angle{Center: a.Center, From: a.From, To: a.To - 2*math.Pi}
	case a.From > a.To+math.Pi:
		return Angle{Center: a.Center, From: a.From, To: a.To + 2*math.Pi}
	}
	return a
}

// Clockwise makes To <= From.
func (a Angle) Clockwise() Angle {
	if a.To <= a.From {
		return a
	}
	return Angle{Center: a.Center, From: a.From, To: a.To - 2*math.Pi}
}

// Counterclockwise makes To >= From.
func (a Angle) Counterclockwise() Angle {
	if a.To >= a.From {
		return a
	}
	return Angle{Center: a.Center, From: a.From, To: a.To + 2*math.Pi}
}
