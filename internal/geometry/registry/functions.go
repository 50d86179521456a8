package registry

import (
	"math"

	"geometry/internal/geometry/algebra"
	"geometry/internal/geometry/fault"
	"geometry/internal/geometry/reactive"
)

// Frames sampled by line_trace and circle_trace.
var (
	lineTraceFrames   = []int{3658, 9137}
	circleTraceFrames = []int{2709, 5073, 6349}
)

// assertTolerance is the relative squared distance accepted by assert.
const assertTolerance = 1e-4

func catalogue() []Function {
	return concat(
		category("Objects",
			one(self("point", pPoint)),
			one(self("line", pLine)),
			one(self("segment", pSegment)),
			one(self("circle", pCircle)),
			one(self("triangle", pTriangle)),
			one(self("polygon", pPolygon)),
			one(fn1("angle", pAngle, total1(algebra.Angle.Normal))),
			one(fn1("clockwise", pAngle, total1(algebra.Angle.Clockwise))),
			one(fn1("counterclockwise", pAngle, total1(algebra.Angle.Counterclockwise))),
		),
		category("Intersections",
			one(fn2("intersect", pLine, pLine, total2(algebra.Intersect))),
			trinomial("cintersect", pLine, pCircle, algebra.CIntersect),
			trinomial("ccintersect", pCircle, pCircle, algebra.CCIntersect),
		),
		category("Points and lines",
			one(fn1("midpoint", pSegment, total1(algebra.Midpoint))),
			one(fn2("divide", pPoint, pSegment, total2(algebra.Divide))),
			one(fn1("midline", pSegment, total1(algebra.Midline))),
			one(fn2("parallel", pPoint, pLine, total2(algebra.Parallel))),
			one(fn2("perpendicular", pPoint, pLine, total2(algebra.Perpendicular))),
			one(fn2("polar", pPoint, pCircle, total2(algebra.Polar))),
			one(fn2("pole", pLine, pCircle, total2(algebra.Pole))),
			one(fn2("project", pPoint, pLine, total2(algebra.Project))),
			one(fn2("cproject", pPoint, pCircle, total2(algebra.CProject))),
			one(fn1("bisector", pAngle, total1(algebra.Bisector))),
			one(fn1("exbisector", pAngle, total1(algebra.Exbisector))),
		),
		category("Triangle",
			one(fn1("centroid", pPolygon, total1(algebra.Centroid))),
			one(fn1("circumcenter", pTriangle, total1(algebra.Circumcenter))),
			one(fn1("orthocenter", pTriangle, total1(algebra.Orthocenter))),
			one(fn1("incenter", pTriangle, total1(algebra.Incenter))),
			one(fn1("incircle", pTriangle, total1(algebra.Incircle))),
			one(fn3("excenter", pPoint, pPoint, pPoint, total3(algebra.Excenter))),
			one(fn3("excircle", pPoint, pPoint, pPoint, total3(algebra.Excircle))),
			one(fn1("euler_line", pTriangle, total1(algebra.EulerLine))),
			one(fn1("diameter_circle", pSegment, total1(algebra.DiameterCircle))),
			one(fn1("midtriangle", pTriangle, total1(algebra.Midtriangle))),
			one(fn1("euler_center", pTriangle, total1(algebra.EulerCenter))),
			one(fn1("euler_circle", pTriangle, total1(algebra.EulerCircle))),
			one(fn1("gergonne", pTriangle, total1(algebra.Gergonne))),
			one(fn1("nagel", pTriangle, total1(algebra.Nagel))),
			one(fn2("isogonal", pPoint, pTriangle, total2(algebra.Isogonal))),
			one(fn1("circumcircle", pTriangle, total1(algebra.Circumcircle))),
		),
		category("Algebra",
			one(fn1("re", pPoint, total1(func(z algebra.Complex) algebra.Complex { return algebra.Real(z.Re) }))),
			one(fn1("im", pPoint, total1(func(z algebra.Complex) algebra.Complex { return algebra.Real(z.Im) }))),
			one(fn1("sqr", pPoint, total1(func(z algebra.Complex) algebra.Complex { return z.Mul(z) }))),
			one(fn1("sqrt", pPoint, total1(algebra.Complex.Sqrt))),
			one(fn1("exp", pPoint, total1(algebra.Complex.Exp))),
			one(fn1("ln", pPoint, total1(algebra.Complex.Ln))),
			one(fn1("abs", pPoint, total1(func(z algebra.Complex) algebra.Complex { return algebra.Real(z.Abs()) }))),
			one(fn1("length", pSegment, total1(func(s algebra.Segment) algebra.Complex { return algebra.Real(s.To.Sub(s.From).Abs()) }))),
			one(fn1("normalize", pPoint, total1(algebra.Normalize))),
			one(fn1("dir", pSegment, total1(func(s algebra.Segment) algebra.Complex { return algebra.Normalize(s.To.Sub(s.From)) }))),
			one(fn1("radius", pCircle, total1(func(c algebra.Circle) algebra.Complex { return algebra.Real(math.Sqrt(c.RadiusSqr)) }))),
			one(fn1("center", pCircle, total1(func(c algebra.Circle) algebra.Complex { return c.Center }))),
		),
		category("Tangents",
			trinomial("tangentPoint", pPoint, pCircle, algebra.TangentPoint),
			trinomial("tangent", pPoint, pCircle, algebra.Tangent),
		),
		category("Transformations",
			one(fn2("symmetry", pGeometric, pLine, algebra.Symmetry)),
			one(fn2("translation", pGeometric, pPoint, algebra.Translation)),
			one(fn3("homothety", pGeometric, pPoint, pPoint, algebra.Homothety)),
			one(fn2("inversion", pGeometric, pCircle, algebra.Inversion)),
		),
		category("Animation",
			one(timeFunction()),
			one(fn2("choose", pGeometric, pPoint, func(g algebra.Geometric, t algebra.Complex) (algebra.Geometric, error) {
				p, err := algebra.Choose(g, t.Abs())
				if err != nil {
					return nil, err
				}
				return p, nil
			})),
			one(trace("line_trace", lineTraceFrames, func(p []algebra.Complex) algebra.Geometric {
				return algebra.LineThrough(p[0], p[1])
			})),
			one(trace("circle_trace", circleTraceFrames, func(p []algebra.Complex) algebra.Geometric {
				return algebra.Circumcircle(algebra.Triangle{A: p[0], B: p[1], C: p[2]})
			})),
		),
		category("Checks",
			one(fn2("assert", pPoint, pPoint, func(x, y algebra.Complex) (algebra.Geometric, error) {
				if !(x.Sub(y).Norm() < x.Norm()*assertTolerance) {
					return nil, fault.Assertion("%v != %v", x, y)
				}
				return x, nil
			})),
		),
	)
}

func concat(groups ...[]Function) []Function {
	var out []Function
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// timeFunction reads the animation clock.
func timeFunction() Function {
	return Function{
		Name: "time",
		Build: func(raw []Cell) (Cell, error) {
			if len(raw) != 0 {
				return nil, fault.Binding("time: %d unexpected arguments", len(raw))
			}
			return reactive.Map(reactive.Time(), func(t int) (algebra.Geometric, error) {
				return algebra.Real(float64(t)), nil
			}), nil
		},
	}
}

// trace samples a moving point at fixed frames and builds a still object
// through the samples.
func trace(name string, frames []int, through func([]algebra.Complex) algebra.Geometric) Function {
	params := []Type{TypePoint}
	return Function{
		Name:   name,
		Params: params,
		Build: func(raw []Cell) (Cell, error) {
			if len(raw) != 1 {
				return nil, fault.Binding("%s: expected 1 argument, got %d", name, len(raw))
			}
			return reactive.Sample(raw[0], frames, func(values []algebra.Geometric) (algebra.Geometric, error) {
				points := make([]algebra.Complex, len(values))
				for i, v := range values {
					p, ok := v.(algebra.Complex)
					if !ok {
						return nil, named(name, expected(TypePoint, v))
					}
					points[i] = p
				}
				g := through(points)
				if err := algebra.Check(g); err != nil {
					return nil, named(name, err)
				}
				return g, nil
			}), nil
		},
	}
}
