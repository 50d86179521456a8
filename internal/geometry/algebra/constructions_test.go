package algebra

import (
	"math"
	"testing"
)

var samplePoints = []Complex{
	C(0, 0), C(60, 0), C(30, 40), C(-12.5, 7), C(3, -81), C(0.25, 0.5),
}

func TestLineThroughContainsEndpoints(t *testing.T) {
	for _, p := range samplePoints {
		for _, q := range samplePoints {
			if p == q {
				continue
			}
			l := LineThrough(p, q)
			for _, z := range []Complex{p, q, Divide(Real(2.5), Segment{From: p, To: q})} {
				if v := onLine(l, z); math.Abs(v) > 1e-6*(1+z.Norm()) {
					t.Errorf("line(%v, %v) misses %v: residual %g", p, q, z, v)
				}
			}
		}
	}
}

func TestPerpendicularBisectorMeetsMidpoint(t *testing.T) {
	for _, p := range samplePoints {
		for _, q := range samplePoints {
			if p == q {
				continue
			}
			s := Segment{From: p, To: q}
			l := LineThrough(p, q)
			got := Intersect(l, Perpendicular(Midpoint(s), l))
			diff(t, Midpoint(s), got, approx(1e-9))

			got = Intersect(l, Midline(s))
			diff(t, Midpoint(s), got, approx(1e-9))
		}
	}
}

func TestIntersectParallelIsNotFinite(t *testing.T) {
	l := LineThrough(C(0, 0), C(1, 1))
	m := Parallel(C(5, 0), l)
	if err := Check(Intersect(l, m)); err == nil {
		t.Fatal("parallel lines produced a finite intersection")
	}
}

func TestDoubleInversionOfLine(t *testing.T) {
	circles := []Circle{
		{Center: Zero, RadiusSqr: 1},
		{Center: Zero, RadiusSqr: 49},
		{Center: Zero, RadiusSqr: 2.5},
	}
	lines := []Line{
		LineThrough(C(1, 1), C(5, -3)),
		LineThrough(C(-7, 0), C(-7, 9)),
		LineThrough(C(0.5, 0), C(0.5, 1)),
	}
	for _, c := range circles {
		for _, l := range lines {
			once := l.Inversion(c)
			twice, err := Inversion(once, c)
			if err != nil {
				t.Fatal(err)
			}
			back, ok := twice.(Line)
			if !ok {
				t.Fatalf("inverting %v twice gave %T", l, twice)
			}
			// Same locus: both equations agree up to a real factor.
			for _, z := range []Complex{Project(C(0, 0), l), Project(C(10, 10), l)} {
				if v := onLine(back, z); math.Abs(v) > 1e-6*(1+back.Coef.Abs()*z.Abs()) {
					t.Errorf("point %v of %v not on %v (residual %g)", z, l, back, v)
				}
			}
		}
	}
}

func TestInversionThroughCenterKeepsLine(t *testing.T) {
	c := Circle{Center: C(2, 3), RadiusSqr: 4}
	l := LineThrough(C(2, 3), C(7, -1))
	// The residual at the center is computed, not constructed as zero.
	l.Free = -l.Coef.Conj().Mul(c.Center).Re * 2
	got := l.Inversion(c)
	diff(t, Geometric(l), got)
}

func TestCircleThroughCenterInvertsToLine(t *testing.T) {
	got := Circle{Center: C(1, 0), RadiusSqr: 1}.Inversion(Circle{Center: Zero, RadiusSqr: 1})
	l, ok := got.(Line)
	if !ok {
		t.Fatalf("got %T, want Line", got)
	}
	if v := onLine(l, C(0.5, 17)); math.Abs(v) > 1e-12 {
		t.Errorf("Re z = 1/2 expected, residual %g", v)
	}
}

func TestCircleInversion(t *testing.T) {
	got := Circle{Center: C(2, 0), RadiusSqr: 1}.Inversion(Circle{Center: Zero, RadiusSqr: 1})
	diff(t, Geometric(Circle{Center: C(2.0/3, 0), RadiusSqr: 1.0 / 9}), got, approx(1e-12))
}

func TestCircumcenterEquidistant(t *testing.T) {
	triangles := []Triangle{
		{A: C(0, 0), B: C(60, 0), C: C(30, 40)},
		{A: C(20, 60), B: C(60, -40), C: C(-60, -40)},
		{A: C(-3, 1), B: C(7.5, 2), C: C(0, -9)},
	}
	for _, tr := range triangles {
		o := Circumcenter(tr)
		ra := tr.A.Sub(o).Norm()
		for _, v := range []Complex{tr.B, tr.C} {
			if r := v.Sub(o).Norm(); math.Abs(r-ra) > 1e-9*ra {
				t.Errorf("%v: |%v - o|² = %g, want %g", tr, v, r, ra)
			}
		}
	}
	diff(t, C(30, 20), Circumcenter(Triangle{A: C(0, 0), B: C(60, 0), C: C(0, 40)}), approx(1e-9))
}

func TestTriangleCenters(t *testing.T) {
	tr := Triangle{A: C(0, 0), B: C(4, 0), C: C(0, 3)}

	// Right angle at A: orthocenter is A, circumcenter the hypotenuse midpoint.
	diff(t, C(0, 0), Orthocenter(tr), approx(1e-12))
	diff(t, C(2, 1.5), Circumcenter(tr), approx(1e-12))
	// 3-4-5 triangle has inradius 1.
	diff(t, C(1, 1), Incenter(tr), approx(1e-12))
	diff(t, Circle{Center: C(1, 1), RadiusSqr: 1}, Incircle(tr), approx(1e-12))
	diff(t, C(1, 0.75), EulerCenter(tr), approx(1e-12))

	equilateral := Triangle{A: C(0, 0), B: C(2, 0), C: C(1, math.Sqrt(3))}
	g := Centroid(equilateral)
	for name, p := range map[string]Complex{
		"gergonne":    Gergonne(equilateral),
		"nagel":       Nagel(equilateral),
		"incenter":    Incenter(equilateral),
		"orthocenter": Orthocenter(equilateral),
		"isogonal":    Isogonal(g, equilateral),
	} {
		if d := p.Sub(g).Abs(); d > 1e-9 {
			t.Errorf("%s of equilateral triangle is %v, want centroid %v", name, p, g)
		}
	}
}

func TestGergonneAndNagelCevians(t *testing.T) {
	tr := Triangle{A: C(0, 0), B: C(7, 1), C: C(2, 5)}
	gergonne, nagel := Gergonne(tr), Nagel(tr)
	in := Incenter(tr)
	for _, side := range []struct{ vertex, p, q Complex }{
		{tr.A, tr.B, tr.C},
		{tr.B, tr.C, tr.A},
		{tr.C, tr.A, tr.B},
	} {
		touch := Project(in, LineThrough(side.p, side.q))
		if d := onLine(LineThrough(side.vertex, touch), gergonne); math.Abs(d) > 1e-9 {
			t.Errorf("gergonne off the cevian from %v: %g", side.vertex, d)
		}
		ex := Excircle(side.p, side.vertex, side.q)
		touch = Project(ex.Center, LineThrough(side.p, side.q))
		if d := onLine(LineThrough(side.vertex, touch), nagel); math.Abs(d) > 1e-9 {
			t.Errorf("nagel off the cevian from %v: %g", side.vertex, d)
		}
	}
}

func TestExcircleTouchesAllSides(t *testing.T) {
	a, b, c := C(0, 0), C(5, 1), C(2, 4)
	ex := Excircle(a, b, c)
	r := math.Sqrt(ex.RadiusSqr)
	for _, l := range []Line{LineThrough(a, b), LineThrough(b, c), LineThrough(c, a)} {
		d := Project(ex.Center, l).Sub(ex.Center).Abs()
		if math.Abs(d-r) > 1e-9 {
			t.Errorf("distance to side %g, radius %g", d, r)
		}
	}
	// Opposite b: b and the excenter lie on different sides of ac.
	ac := LineThrough(a, c)
	if onLine(ac, b)*onLine(ac, ex.Center) > 0 {
		t.Error("excenter on the same side of ac as b")
	}
}

func TestRootVieta(t *testing.T) {
	coefficients := [][3]Complex{
		{C(1, 0), C(0, 0), C(-1, 0)},
		{C(2, 1), C(-3, 0.5), C(7, -2)},
		{C(0, 1), C(1, 1), C(0, 0)},
		{C(-0.5, 0), C(4, 4), C(1, -9)},
	}
	for _, k := range coefficients {
		a, b, c := k[0], k[1], k[2]
		r1 := Root(Root1, a, b, c)
		r2 := Root(Root2, a, b, c)
		diff(t, b.Div(a).Neg(), r1.Add(r2), approx(1e-9))
		diff(t, c.Div(a), r1.Mul(r2), approx(1e-9))
		for _, r := range []Complex{r1, r2} {
			v := a.Mul(r).Mul(r).Add(b.Mul(r)).Add(c)
			if v.Abs() > 1e-9*(1+a.Abs()+b.Abs()+c.Abs()) {
				t.Errorf("%v is not a root of %v: value %v", r, k, v)
			}
		}
		diff(t, r2, Root(RootNot(r1), a, b, c), approx(1e-9))
		diff(t, r1, Root(RootNot(r2), a, b, c), approx(1e-9))
	}
}

func TestIntersectionsOfCircles(t *testing.T) {
	unit := Circle{Center: Zero, RadiusSqr: 1}
	axis := LineThrough(Zero, One)
	r1 := CIntersect(Root1, axis, unit)
	r2 := CIntersect(Root2, axis, unit)
	diff(t, 1.0, math.Abs(r1.Re), approx(1e-12))
	diff(t, Zero, r1.Add(r2), approx(1e-12))
	diff(t, C(-1, 0), CIntersect(RootNot(One), axis, unit), approx(1e-12))

	other := Circle{Center: One, RadiusSqr: 1}
	p := CCIntersect(Root1, unit, other)
	q := CCIntersect(Root2, unit, other)
	diff(t, 0.5, p.Re, approx(1e-12))
	diff(t, 0.5, q.Re, approx(1e-12))
	diff(t, 0.0, p.Im+q.Im, approx(1e-12))
}

func TestTangent(t *testing.T) {
	c := Circle{Center: C(1, 2), RadiusSqr: 4}
	a := C(7, -1)
	for _, o := range []RootOption{Root1, Root2} {
		p := TangentPoint(o, a, c)
		diff(t, c.RadiusSqr, p.Sub(c.Center).Norm(), approx(1e-9))
		l := Tangent(o, a, c)
		if v := onLine(l, a); math.Abs(v) > 1e-9 {
			t.Errorf("tangent %v misses %v (residual %g)", l, a, v)
		}
		diff(t, p, Project(c.Center, l), approx(1e-9))
	}
}

func TestPolarPole(t *testing.T) {
	c := Circle{Center: C(1, 1), RadiusSqr: 9}
	a := C(5, -2)
	diff(t, a, Pole(Polar(a, c), c), approx(1e-9))
}

func TestBisectors(t *testing.T) {
	a := AngleAt(C(1, 0), Zero, C(0, 1))
	if v := onLine(Bisector(a), C(1, 1)); math.Abs(v) > 1e-12 {
		t.Errorf("bisector misses 1+i: %g", v)
	}
	if v := onLine(Exbisector(a), C(1, -1)); math.Abs(v) > 1e-12 {
		t.Errorf("exbisector misses 1-i: %g", v)
	}
}

func TestProjections(t *testing.T) {
	diff(t, C(3, 0), Project(C(3, 5), LineThrough(Zero, One)), approx(1e-12))
	diff(t, C(0, 2), CProject(C(0, 7), Circle{Center: Zero, RadiusSqr: 4}), approx(1e-12))
	diff(t, Zero, Normalize(Zero))
	diff(t, C(0.6, 0.8), Normalize(C(3, 4)), approx(1e-12))
}
