package geogen

import (
	"fmt"
	"strings"

	"geometry/internal/geometry/fault"
)

// ============================================================
// Initial configurations
// ============================================================

func (w *writer) initial(line string) error {
	colon := strings.Index(line, ":")
	if colon < 0 {
		return fault.Parse("expected initial object")
	}
	kind := strings.TrimSpace(line[:colon])
	n := splitArgs(line[colon+1:])
	all := strings.Join(n, ", ")
	want, ok := initialArity[kind]
	if !ok {
		return fault.Parse("unexpected initial object %s", kind)
	}
	if len(n) != want {
		return fault.Parse("%s: expected %d points, got %d", kind, want, len(n))
	}
	w.comment(line)

	switch kind {
	case "LineSegment":
		w.text(
			n[0]+" = #(-60)",
			n[1]+" = #(60)",
			"[orange] segment("+all+")",
		)
	case "Triangle":
		w.triangles[call("triangle", n...)] = "t"
		w.text(
			n[0]+" = #(20+60i)",
			n[1]+" = #(60-40i)",
			n[2]+" = #(-60-40i)",
			"[orange] [fill] t = triangle("+all+")",
		)
	case "RightTriangle":
		w.triangles[call("triangle", n...)] = "t"
		w.text(
			n[1]+" = #(-60-20i)",
			n[2]+" = #(60-20i)",
			fmt.Sprintf("%s = cproject(#(-20), circle(midpoint(%s, %s), %s))", n[0], n[1], n[2], n[1]),
			"[orange] [fill] t = triangle("+all+")",
		)
	case "Quadrilateral":
		w.text(
			n[0]+" = #(20+60i)",
			n[1]+" = #(60-40i)",
			n[2]+" = #(-60-40i)",
			n[3]+" = #(-30+40i)",
			"[orange] [fill] polygon("+all+")",
		)
	case "CyclicQuadrilateral":
		w.circles[call("circumcircle", n[0], n[1], n[2])] = "c"
		w.text(
			n[0]+" = #(20+60i)",
			n[1]+" = #(60-40i)",
			n[2]+" = #(-60-40i)",
			call("c = circumcircle", n[0], n[1], n[2]),
			n[3]+" = cproject(#(-45+45i), c)",
			"[orange] [fill] polygon("+all+")",
		)
	case "LineAndPoint":
		w.text(
			n[0]+" = #(20+60i)",
			n[1]+" = #(60-40i)",
			n[2]+" = #(-60-40i)",
			call("[orange] segment", n[0], n[1]),
		)
	case "LineAndTwoPoints":
		w.text(
			n[0]+" = #(20+60i)",
			n[1]+" = #(60-40i)",
			n[2]+" = #(-60-40i)",
			n[3]+" = #(-30+40i)",
			call("[orange] segment", n[0], n[1]),
		)
	}
	w.text()
	return nil
}

var initialArity = map[string]int{
	"LineSegment":         2,
	"Triangle":            3,
	"RightTriangle":       3,
	"Quadrilateral":       4,
	"CyclicQuadrilateral": 4,
	"LineAndPoint":        3,
	"LineAndTwoPoints":    4,
}

// ============================================================
// Constructions
// ============================================================

// construction describes how one GeoGen operation is written. emit returns
// the defining statement, or "" when it wrote the statements itself.
type construction struct {
	arity int
	emit  func(w *writer, name string, a []string) string
}

func (w *writer) construction(line string) error {
	eq := strings.Index(line, "=")
	open := strings.Index(line, "(")
	if eq < 0 || open < eq || !strings.HasSuffix(line, ")") {
		return fault.Parse("expected definition")
	}
	name := strings.TrimSpace(line[:eq])
	op := strings.TrimSpace(line[eq+1 : open])
	args := splitArgs(line[open+1 : len(line)-1])

	c, ok := constructions[op]
	if !ok {
		return fault.Parse("unexpected construction %s", op)
	}
	if len(args) != c.arity {
		return fault.Parse("%s: expected %d arguments, got %d", op, c.arity, len(args))
	}
	w.comment(line)
	if stmt := c.emit(w, name, args); stmt != "" {
		w.text(stmt)
	}
	w.text()
	return nil
}

// define builds the common "name = f(args)" form.
func define(f string) func(w *writer, name string, a []string) string {
	return func(w *writer, name string, a []string) string {
		return name + " = " + call(f, a...)
	}
}

var constructions = map[string]construction{
	"Centroid": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("centroid", w.triangle(a[0], a[1], a[2]))
	}},
	"CircleWithCenterThroughPoint": {2, define("circle")},
	"CircleWithDiameter":           {2, define("diameter_circle")},
	"Circumcenter": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("center", w.circumcircle(a...))
	}},
	"Circumcircle": {3, define("circumcircle")},
	"Excenter": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("center", w.circle(call("excircle", a[2], a[0], a[1])))
	}},
	"Excircle": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("excircle", a[2], a[0], a[1])
	}},
	"ExternalAngleBisector": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("exbisector", a[2], a[0], a[1])
	}},
	"Incenter": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("center", w.circle(call("incircle", w.triangle(a[0], a[1], a[2]))))
	}},
	"Incircle": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("incircle", w.triangle(a[0], a[1], a[2]))
	}},
	"InternalAngleBisector": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("bisector", a[2], a[0], a[1])
	}},
	"IntersectionOfLines": {2, define("intersect")},
	"IntersectionOfLineAndLineFromPoints": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("intersect", a[0], w.line(a[1], a[2]))
	}},
	"IntersectionOfLinesFromPoints": {4, func(w *writer, name string, a []string) string {
		return name + " = " + call("intersect", w.line(a[0], a[1]), w.line(a[2], a[3]))
	}},
	"IsoscelesTrapezoidPoint": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("symmetry", a[0], call("midline", a[1], a[2]))
	}},
	"LineFromPoints": {2, func(w *writer, name string, a []string) string {
		return "[bounded] " + name + " = " + call("line", a...)
	}},
	"LineThroughCircumcenter": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("line", a[0], w.point(call("circumcenter", a...), "[gray]"))
	}},
	"Median": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("line", a[0], call("midpoint", a[1], a[2]))
	}},
	"Midline": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("line", call("midpoint", a[0], a[1]), call("midpoint", a[0], a[2]))
	}},
	"Midpoint": {2, func(w *writer, name string, a []string) string {
		w.text(call("[gray] segment", a...))
		return name + " = " + call("midpoint", a...)
	}},
	"MidpointOfArc": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("cintersect", a[0], call("exbisector", a[2], a[0], a[1]), w.circumcircle(a...))
	}},
	"MidpointOfOppositeArc": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("cintersect", a[0], call("bisector", a[2], a[0], a[1]), w.circumcircle(a...))
	}},
	"NinePointCircle": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("euler_circle", w.triangle(a[0], a[1], a[2]))
	}},
	"OppositePointOnCircumcircle": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("center", w.circumcircle(a...)) + " * 2 - " + a[0]
	}},
	"Orthocenter": {3, func(w *writer, name string, a []string) string {
		w.text(name + " = " + call("orthocenter", w.triangle(a[0], a[1], a[2])))
		altitude := func(x, y, z string) {
			foot := w.point(call("intersect", x, name, y, z), "[dot]")
			w.text(
				call("[bounded] [gray] line", x, foot),
				call("[bounded] [gray] line", y, z),
				call("[gray] [fill] angle", x, foot, y),
			)
		}
		altitude(a[0], a[1], a[2])
		altitude(a[1], a[2], a[0])
		altitude(a[2], a[0], a[1])
		return ""
	}},
	"ParallelLine": {2, define("parallel")},
	"ParallelLineToLineFromPoints": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("parallel", a[0], w.line(a[1], a[2]))
	}},
	"ParallelogramPoint": {3, func(w *writer, name string, a []string) string {
		w.text(fmt.Sprintf("%s = %s + %s - %s", name, a[1], a[2], a[0]))
		w.text(call("[violet] [fill] polygon", a[1], a[0], a[2], name))
		return ""
	}},
	"PerpendicularBisector": {2, define("midline")},
	"PerpendicularLine":     {2, define("perpendicular")},
	"PerpendicularLineToLineFromPoints": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("perpendicular", a[0], w.line(a[1], a[2]))
	}},
	"PerpendicularLineAtPointOfLine": {2, func(w *writer, name string, a []string) string {
		return name + " = " + call("perpendicular", a[0], a[0], a[1])
	}},
	"PerpendicularProjection": {2, define("project")},
	"PerpendicularProjectionOnLineFromPoints": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("project", a[0], w.line(a[1], a[2]))
	}},
	"PointReflection": {2, func(w *writer, name string, a []string) string {
		return fmt.Sprintf("%s = %s * 2 - %s", name, a[1], a[0])
	}},
	"ReflectionInLine": {2, define("symmetry")},
	"ReflectionInLineFromPoints": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("symmetry", a[0], w.line(a[1], a[2]))
	}},
	"SecondIntersectionOfCircleAndLineFromPoints": {4, func(w *writer, name string, a []string) string {
		return name + " = " + call("cintersect", a[0], w.line(a[0], a[1]), w.circumcircle(a[0], a[2], a[3]))
	}},
	"SecondIntersectionOfTwoCircumcircles": {5, func(w *writer, name string, a []string) string {
		return name + " = " + call("ccintersect", a[0], w.circumcircle(a[0], a[1], a[2]), w.circumcircle(a[0], a[3], a[4]))
	}},
	"TangentLine": {3, func(w *writer, name string, a []string) string {
		return name + " = " + call("tangent1", a[0], w.circumcircle(a...))
	}},
}

// ============================================================
// Goals
// ============================================================

func (w *writer) goal(line string) error {
	colon := strings.Index(line, ":")
	dash := strings.Index(line, "-")
	if colon < 0 || dash < colon {
		return fault.Parse("expected goal")
	}
	kind := strings.TrimSpace(line[:colon])
	a := splitArgs(line[colon+1 : dash])
	want, ok := goalArity[kind]
	if !ok {
		return fault.Parse("unexpected goal %s", kind)
	}
	if len(a) != want {
		return fault.Parse("%s: expected %d points, got %d", kind, want, len(a))
	}
	w.comment(line)

	switch kind {
	case "ConcyclicPoints":
		w.text(call("[red] [dash] circumcircle", a[0], a[1], a[2]))
	case "CollinearPoints":
		w.text(call("[red] [dash] line", a[0], a[1]))
	case "ConcurrentLines":
		w.text(
			call("[red] l = line", a[0], a[1]),
			call("[red] m = line", a[2], a[3]),
			call("[red] n = line", a[4], a[5]),
			"[red] intersect(l, m)",
		)
	case "EqualLineSegments":
		w.text(
			call("[red] [equal1] segment", a[0], a[1]),
			call("[red] [equal1] segment", a[2], a[3]),
		)
	case "LineTangentToCircle":
		w.text(
			call("[red] c = circumcircle", a[0], a[1], a[2]),
			call("[red] l = line", a[3], a[4]),
			"[red] cintersect1(l, c)",
		)
	case "TangentCircles":
		w.text(
			call("[red] c1 = circumcircle", a[0], a[1], a[2]),
			call("[red] c2 = circumcircle", a[3], a[4], a[5]),
			"[red] ccintersect1(c1, c2)",
		)
	case "ParallelLines":
		w.text(
			call("[red] segment", a[0], a[1]),
			call("[red] segment", a[2], a[3]),
		)
	case "PerpendicularLines":
		w.text(
			call("[red] l = line", a[0], a[1]),
			call("[red] m = line", a[2], a[3]),
			"[hide] p = intersect(l, m)",
			fmt.Sprintf("[red] [fill] [dot] angle(p+dir(%s, %s), p, p+dir(%s, %s))", a[0], a[1], a[2], a[3]),
		)
	}
	return nil
}

var goalArity = map[string]int{
	"ConcyclicPoints":     4,
	"CollinearPoints":     3,
	"ConcurrentLines":     6,
	"EqualLineSegments":   4,
	"LineTangentToCircle": 5,
	"TangentCircles":      6,
	"ParallelLines":       4,
	"PerpendicularLines":  4,
}
