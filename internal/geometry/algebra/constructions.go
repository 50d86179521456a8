package algebra

import "math"

// LineThrough returns the line through a and b. The result is degenerate
// when a == b.
func LineThrough(a, b Complex) Line {
	return Line{Coef: a.Sub(b).Mul(I), Free: a.Conj().Mul(b).Mul(I).Re * 2}
}

// Intersect returns the common point of two lines. Parallel lines give a
// zero divisor and a non-finite result.
func Intersect(l1, l2 Line) Complex {
	num := l1.Coef.Scale(l2.Free).Sub(l2.Coef.Scale(l1.Free))
	den := l1.Coef.Conj().Mul(l2.Coef).Sub(l1.Coef.Mul(l2.Coef.Conj()))
	return num.Div(den)
}

// CIntersect intersects a line with a circle.
func CIntersect(o RootOption, l Line, c Circle) Complex {
	return Root(o,
		l.Coef.Conj(),
		Real(l.Free).Add(c.Center.Conj().Mul(l.Coef)).Sub(c.Center.Mul(l.Coef.Conj())),
		l.Coef.Scale(c.RadiusSqr).Sub(c.Center.Scale(l.Free)).Sub(l.Coef.Scale(c.Center.Norm())),
	)
}

// CCIntersect intersects two circles.
func CCIntersect(o RootOption, c1, c2 Circle) Complex {
	d := c2.Center.Sub(c1.Center).Conj()
	return Root(o,
		d,
		Real(c2.RadiusSqr-c1.RadiusSqr).Sub(c2.Center.Add(c1.Center).Mul(d)),
		c1.Center.Mul(c2.Center).Mul(d).Sub(c1.Center.Scale(c2.RadiusSqr)).Add(c2.Center.Scale(c1.RadiusSqr)),
	)
}

func Midpoint(s Segment) Complex {
	return s.From.Add(s.To).DivReal(2)
}

// Divide returns From·(1-alpha) + To·alpha.
func Divide(alpha Complex, s Segment) Complex {
	return s.From.Mul(One.Sub(alpha)).Add(s.To.Mul(alpha))
}

// Midline is the perpendicular bisector of s.
func Midline(s Segment) Line {
	return Line{Coef: s.From.Sub(s.To), Free: s.To.Norm() - s.From.Norm()}
}

// Parallel returns the line through a parallel to l.
func Parallel(a Complex, l Line) Line {
	return Line{Coef: l.Coef, Free: -a.Conj().Mul(l.Coef).Re * 2}
}

// Perpendicular returns the line through a perpendicular to l.
func Perpendicular(a Complex, l Line) Line {
	coef := l.Coef.Mul(I)
	return Line{Coef: coef, Free: -a.Conj().Mul(coef).Re * 2}
}

// Polar returns the polar line of a with respect to c.
func Polar(a Complex, c Circle) Line {
	d := a.Sub(c.Center)
	return Line{Coef: d, Free: -2*c.Center.Mul(d.Conj()).Re - 2*c.RadiusSqr}
}

// Pole returns the pole of l with respect to c.
func Pole(l Line, c Circle) Complex {
	return l.Coef.Neg().Scale(c.RadiusSqr).DivReal(l.Free/2 + c.Center.Mul(l.Coef.Conj()).Re).Add(c.Center)
}

// Project returns the foot of the perpendicular from a to l.
func Project(a Complex, l Line) Complex {
	return a.Sub(a.Conj().Mul(l.Coef).Add(Real(l.Free)).Div(l.Coef.Conj())).DivReal(2)
}

// CProject returns the point of c closest to a.
func CProject(a Complex, c Circle) Complex {
	d := a.Sub(c.Center)
	return d.Scale(math.Sqrt(c.RadiusSqr / d.Norm())).Add(c.Center)
}

// Bisector is the internal bisector of a.
func Bisector(a Angle) Line {
	dir := Imag((a.To + a.From + math.Pi) / 2).Exp()
	return Line{Coef: dir, Free: -a.Center.Mul(dir.Conj()).Re * 2}
}

// Exbisector is the external bisector of a.
func Exbisector(a Angle) Line {
	dir := Imag((a.To + a.From) / 2).Exp()
	return Line{Coef: dir, Free: -a.Center.Mul(dir.Conj()).Re * 2}
}

// Centroid averages the vertices.
func Centroid(p Polygonal) Complex {
	points := p.Vertices()
	sum := Zero
	for _, z := range points {
		sum = sum.Add(z)
	}
	return sum.DivReal(float64(len(points)))
}

func Circumcenter(t Triangle) Complex {
	num := t.B.Sub(t.C).Scale(t.A.Norm()).
		Add(t.C.Sub(t.A).Scale(t.B.Norm())).
		Add(t.A.Sub(t.B).Scale(t.C.Norm()))
	den := t.B.Sub(t.C).Mul(t.A.Conj()).
		Add(t.C.Sub(t.A).Mul(t.B.Conj())).
		Add(t.A.Sub(t.B).Mul(t.C.Conj()))
	return num.Div(den)
}

// Orthocenter uses the Euler relation H = A + B + C - 2·O.
func Orthocenter(t Triangle) Complex {
	return t.A.Add(t.B).Add(t.C).Sub(Circumcenter(t).Scale(2))
}

// Incenter weights each vertex by the opposite side length.
func Incenter(t Triangle) Complex {
	la := t.B.Sub(t.C).Abs()
	lb := t.C.Sub(t.A).Abs()
	lc := t.A.Sub(t.B).Abs()
	return t.A.Scale(la).Add(t.B.Scale(lb)).Add(t.C.Scale(lc)).DivReal(la + lb + lc)
}

// Excenter returns the center of the excircle opposite b.
func Excenter(a, b, c Complex) Complex {
	la := b.Sub(c).Abs()
	lb := c.Sub(a).Abs()
	lc := a.Sub(b).Abs()
	return a.Scale(la).Sub(b.Scale(lb)).Add(c.Scale(lc)).DivReal(la - lb + lc)
}

// CircleThrough returns the circle around center through p.
func CircleThrough(center, p Complex) Circle {
	return Circle{Center: center, RadiusSqr: p.Sub(center).Norm()}
}

func Incircle(t Triangle) Circle {
	o := Incenter(t)
	return CircleThrough(o, Project(o, LineThrough(t.A, t.C)))
}

// Excircle is tangent to the side ac and opposite b.
func Excircle(a, b, c Complex) Circle {
	o := Excenter(a, b, c)
	return CircleThrough(o, Project(o, LineThrough(a, c)))
}

func Circumcircle(t Triangle) Circle {
	return CircleThrough(Circumcenter(t), t.A)
}

func EulerLine(t Triangle) Line {
	return LineThrough(Centroid(t), Circumcenter(t))
}

func DiameterCircle(s Segment) Circle {
	return CircleThrough(Midpoint(s), s.From)
}

// Midtriangle joins the side midpoints.
func Midtriangle(t Triangle) Triangle {
	return Triangle{
		A: t.A.Add(t.B).DivReal(2),
		B: t.B.Add(t.C).DivReal(2),
		C: t.C.Add(t.A).DivReal(2),
	}
}

// EulerCenter is the nine-point center.
func EulerCenter(t Triangle) Complex {
	return Circumcenter(Midtriangle(t))
}

// EulerCircle is the nine-point circle.
func EulerCircle(t Triangle) Circle {
	return Circumcircle(Midtriangle(t))
}

// Gergonne joins each vertex to the incircle touch point of the opposite side.
func Gergonne(t Triangle) Complex {
	pa, pb, pc := tangentLengths(t)
	return Intersect(
		LineThrough(t.A, Divide(Real(pb/(pb+pc)), Segment{From: t.B, To: t.C})),
		LineThrough(t.B, Divide(Real(pa/(pa+pc)), Segment{From: t.A, To: t.C})),
	)
}

// Nagel joins each vertex to the excircle touch point of the opposite side.
func Nagel(t Triangle) Complex {
	pa, pb, pc := tangentLengths(t)
	return Intersect(
		LineThrough(t.A, Divide(Real(pb/(pb+pc)), Segment{From: t.C, To: t.B})),
		LineThrough(t.B, Divide(Real(pa/(pa+pc)), Segment{From: t.C, To: t.A})),
	)
}

// tangentLengths returns twice the tangent lengths s-a, s-b, s-c.
func tangentLengths(t Triangle) (pa, pb, pc float64) {
	la := t.B.Sub(t.C).Abs()
	lb := t.C.Sub(t.A).Abs()
	lc := t.A.Sub(t.B).Abs()
	return lb + lc - la, lc + la - lb, la + lb - lc
}

// Isogonal returns the isogonal conjugate of p.
func Isogonal(p Complex, t Triangle) Complex {
	return Circumcenter(Triangle{
		A: p.Symmetry(LineThrough(t.A, t.B)),
		B: p.Symmetry(LineThrough(t.B, t.C)),
		C: p.Symmetry(LineThrough(t.C, t.A)),
	})
}

// Normalize returns a/|a|, or zero for zero.
func Normalize(a Complex) Complex {
	if a == Zero {
		return Zero
	}
	return a.DivReal(a.Abs())
}

// TangentPoint returns a touch point of a tangent from a to c.
func TangentPoint(o RootOption, a Complex, c Circle) Complex {
	d := a.Sub(c.Center).Conj()
	return Root(o,
		d,
		Real(-c.RadiusSqr*2).Sub(c.Center.Mul(d).Scale(2)),
		a.Add(c.Center).Scale(c.RadiusSqr).Add(c.Center.Mul(c.Center).Mul(d)),
	)
}

// Tangent returns the tangent line from a to c.
func Tangent(o RootOption, a Complex, c Circle) Line {
	d := TangentPoint(o, a, c).Sub(c.Center)
	return Line{Coef: d, Free: -d.Mul(c.Center.Conj()).Re*2 - c.RadiusSqr*2}
}
