// Package algebra implements the plane geometry engine: complex points, the
// closed set of shape kinds, their transformations and the closed-form
// constructions built on them.
package algebra

import (
	"math"

	"geometry/internal/geometry/fault"
)

// Kind tags a Geometric value.
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindCircle
	KindSegment
	KindTriangle
	KindPolygon
	KindAngle
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLine:
		return "Line"
	case KindCircle:
		return "Circle"
	case KindSegment:
		return "Segment"
	case KindTriangle:
		return "Triangle"
	case KindPolygon:
		return "Polygon"
	case KindAngle:
		return "Angle"
	}
	return "Unknown"
}

// Geometric is one of Complex, Line, Circle, Segment, Triangle, Polygon or
// Angle. The set is closed: the unexported method keeps other packages from
// adding kinds, and every operation below switches over all of them.
type Geometric interface {
	Kind() Kind
	geometric()
}

func (Complex) Kind() Kind  { return KindPoint }
func (Line) Kind() Kind     { return KindLine }
func (Circle) Kind() Kind   { return KindCircle }
func (Segment) Kind() Kind  { return KindSegment }
func (Triangle) Kind() Kind { return KindTriangle }
func (Polygon) Kind() Kind  { return KindPolygon }
func (Angle) Kind() Kind    { return KindAngle }

func (Complex) geometric()  {}
func (Line) geometric()     {}
func (Circle) geometric()   {}
func (Segment) geometric()  {}
func (Triangle) geometric() {}
func (Polygon) geometric()  {}
func (Angle) geometric()    {}

// Symmetry reflects g in l.
func Symmetry(g Geometric, l Line) (Geometric, error) {
	switch v := g.(type) {
	case Complex:
		return v.Symmetry(l), nil
	case Line:
		return v.Symmetry(l), nil
	case Circle:
		return v.Symmetry(l), nil
	case Segment:
		return v.Symmetry(l), nil
	case Triangle:
		return v.Map(func(z Complex) Complex { return z.Symmetry(l) }), nil
	case Polygon:
		return v.Map(func(z Complex) Complex { return z.Symmetry(l) }), nil
	case Angle:
		return v.Symmetry(l), nil
	}
	return nil, unknownKind(g)
}

// Translation shifts g by a.
func Translation(g Geometric, a Complex) (Geometric, error) {
	switch v := g.(type) {
	case Complex:
		return v.Add(a), nil
	case Line:
		return v.Translation(a), nil
	case Circle:
		return Circle{Center: v.Center.Add(a), RadiusSqr: v.RadiusSqr}, nil
	case Segment:
		return Segment{From: v.From.Add(a), To: v.To.Add(a)}, nil
	case Triangle:
		return v.Map(func(z Complex) Complex { return z.Add(a) }), nil
	case Polygon:
		return v.Map(func(z Complex) Complex { return z.Add(a) }), nil
	case Angle:
		return Angle{Center: v.Center.Add(a), From: v.From, To: v.To}, nil
	}
	return nil, unknownKind(g)
}

// Homothety scales and rotates g about a by the complex factor k.
func Homothety(g Geometric, a, k Complex) (Geometric, error) {
	switch v := g.(type) {
	case Complex:
		return v.Homothety(a, k), nil
	case Line:
		return v.Homothety(a, k), nil
	case Circle:
		return Circle{Center: v.Center.Homothety(a, k), RadiusSqr: v.RadiusSqr * k.Norm()}, nil
	case Segment:
		return Segment{From: v.From.Homothety(a, k), To: v.To.Homothety(a, k)}, nil
	case Triangle:
		return v.Map(func(z Complex) Complex { return z.Homothety(a, k) }), nil
	case Polygon:
		return v.Map(func(z Complex) Complex { return z.Homothety(a, k) }), nil
	case Angle:
		return v.Homothety(a, k), nil
	}
	return nil, unknownKind(g)
}

// Inversion inverts g in c. Lines and circles may swap kind; a segment is
// inverted as its supporting line.
func Inversion(g Geometric, c Circle) (Geometric, error) {
	switch v := g.(type) {
	case Complex:
		return v.Inversion(c), nil
	case Line:
		return v.Inversion(c), nil
	case Circle:
		return v.Inversion(c), nil
	case Segment:
		return LineThrough(v.From, v.To).Inversion(c), nil
	case Triangle:
		return v.Map(func(z Complex) Complex { return z.Inversion(c) }), nil
	case Polygon:
		return v.Map(func(z Complex) Complex { return z.Inversion(c) }), nil
	case Angle:
		return nil, fault.Algebra("inversion of angle")
	}
	return nil, unknownKind(g)
}

// Choose samples a point of g's locus at parameter t. The parameter is
// periodic with period 1: circles are walked counterclockwise from angle 0,
// segments from From to To, polygons along their perimeter.
func Choose(g Geometric, t float64) (Complex, error) {
	f := t - math.Floor(t)
	switch v := g.(type) {
	case Circle:
		return v.Center.Add(Imag(2 * math.Pi * f).Exp().Scale(math.Sqrt(v.RadiusSqr))), nil
	case Segment:
		return Divide(Real(f), v), nil
	case Triangle:
		return perimeterPoint(v.Vertices(), f), nil
	case Polygon:
		return perimeterPoint(v.Points, f), nil
	case Complex:
		return Zero, fault.Algebra("choose from point")
	case Line:
		return Zero, fault.Algebra("choose from line")
	case Angle:
		return Zero, fault.Algebra("choose from angle")
	}
	return Zero, unknownKind(g)
}

// Check rejects values with non-finite coordinates or a negative squared radius.
func Check(g Geometric) error {
	ok := true
	switch v := g.(type) {
	case Complex:
		ok = v.IsFinite()
	case Line:
		ok = v.Coef.IsFinite() && finite(v.Free)
	case Circle:
		if v.Center.IsFinite() && finite(v.RadiusSqr) && v.RadiusSqr < 0 {
			return fault.Algebra("negative squared radius %g", v.RadiusSqr)
		}
		ok = v.Center.IsFinite() && finite(v.RadiusSqr)
	case Segment:
		ok = v.From.IsFinite() && v.To.IsFinite()
	case Triangle:
		ok = v.A.IsFinite() && v.B.IsFinite() && v.C.IsFinite()
	case Polygon:
		for _, p := range v.Points {
			ok = ok && p.IsFinite()
		}
	case Angle:
		ok = v.Center.IsFinite() && finite(v.From) && finite(v.To)
	default:
		return unknownKind(g)
	}
	if !ok {
		return fault.Algebra("infinite value")
	}
	return nil
}

// Equal reports exact equality of two values of the same kind.
func Equal(a, b Geometric) bool {
	switch v := a.(type) {
	case Polygon:
		w, ok := b.(Polygon)
		if !ok || len(v.Points) != len(w.Points) {
			return false
		}
		for i := range v.Points {
			if v.Points[i] != w.Points[i] {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	}
	if _, ok := b.(Polygon); ok {
		return false
	}
	return a == b
}

func unknownKind(g Geometric) error {
	return fault.Binding("unsupported value %T", g)
}

func perimeterPoint(points []Complex, f float64) Complex {
	n := len(points)
	total := 0.0
	for i := range points {
		total += points[(i+1)%n].Sub(points[i]).Abs()
	}
	if total == 0 {
		return points[0]
	}
	left := f * total
	for i := range points {
		a, b := points[i], points[(i+1)%n]
		side := b.Sub(a).Abs()
		if left <= side && side > 0 {
			return Divide(Real(left/side), Segment{From: a, To: b})
		}
		left -= side
	}
	return points[0]
}
