package registry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"geometry/internal/geometry/algebra"
	"geometry/internal/geometry/fault"
	"geometry/internal/geometry/reactive"
)

func consts(values ...algebra.Geometric) []Cell {
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = reactive.Const(v)
	}
	return cells
}

func call(t *testing.T, name string, args []Cell, time int) (algebra.Geometric, error) {
	t.Helper()
	f, ok := Builtins().Lookup(name)
	if !ok {
		t.Fatalf("no function %q", name)
	}
	cell, err := f.Build(args)
	if err != nil {
		return nil, err
	}
	return cell.Eval(reactive.Input{Time: time})
}

func mustCall(t *testing.T, name string, args ...algebra.Geometric) algebra.Geometric {
	t.Helper()
	v, err := call(t, name, consts(args...), 0)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return v
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestCoercions(t *testing.T) {
	a, b, c := algebra.C(0, 0), algebra.C(60, 0), algebra.C(30, 40)
	seg := algebra.Segment{From: a, To: b}

	tests := []struct {
		name string
		fn   string
		args []algebra.Geometric
		want algebra.Geometric
	}{
		{"line from points", "line", []algebra.Geometric{a, b}, algebra.LineThrough(a, b)},
		{"line from segment", "line", []algebra.Geometric{seg}, algebra.LineThrough(a, b)},
		{"segment from points", "segment", []algebra.Geometric{a, b}, seg},
		{"triangle from points", "triangle", []algebra.Geometric{a, b, c}, algebra.Triangle{A: a, B: b, C: c}},
		{"circle from center and point", "circle", []algebra.Geometric{a, c}, algebra.Circle{Center: a, RadiusSqr: 2500}},
		{"polygon from points", "polygon", []algebra.Geometric{a, b, c, algebra.C(0, 40)},
			algebra.Polygon{Points: []algebra.Complex{a, b, c, algebra.C(0, 40)}}},
		{"polygon keeps triangle", "polygon", []algebra.Geometric{algebra.Triangle{A: a, B: b, C: c}}, algebra.Triangle{A: a, B: b, C: c}},
		{"angle from points", "angle", []algebra.Geometric{b, a, algebra.C(0, 40)}, algebra.Angle{Center: a, From: 0, To: math.Pi / 2}},
		{"midpoint of points", "midpoint", []algebra.Geometric{a, b}, algebra.C(30, 0)},
		{"centroid of points", "centroid", []algebra.Geometric{a, b, c}, algebra.C(30, 40.0/3)},
		{"circumcircle", "circumcircle", []algebra.Geometric{a, b, algebra.C(0, 40)}, algebra.Circle{Center: algebra.C(30, 20), RadiusSqr: 1300}},
		{"length", "length", []algebra.Geometric{a, b}, algebra.Real(60)},
		{"center", "center", []algebra.Geometric{a, c}, a},
		{"radius", "radius", []algebra.Geometric{a, c}, algebra.Real(50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustCall(t, tt.fn, tt.args...)
			if d := cmp.Diff(tt.want, got, approx); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestArgumentErrors(t *testing.T) {
	a, b := algebra.C(0, 0), algebra.C(1, 0)
	tests := []struct {
		name string
		fn   string
		args []algebra.Geometric
	}{
		{"trailing value", "midpoint", []algebra.Geometric{a, b, a}},
		{"stream exhausted", "line", []algebra.Geometric{a}},
		{"wrong kind", "circumcenter", []algebra.Geometric{algebra.Circle{Center: a, RadiusSqr: 1}}},
		{"too few vertices", "polygon", []algebra.Geometric{a, b}},
		{"point expected", "re", []algebra.Geometric{algebra.LineThrough(a, b)}},
		{"segment after line", "intersect", []algebra.Geometric{algebra.LineThrough(a, b), a}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := call(t, tt.fn, consts(tt.args...), 0)
			if !fault.IsCode(err, fault.CodeBinding) {
				t.Errorf("got %v, want binding error", err)
			}
		})
	}
}

func TestArityCheckedAtBuild(t *testing.T) {
	f, _ := Builtins().Lookup("midpoint")
	if _, err := f.Build(consts(algebra.Zero, algebra.One, algebra.I)); !fault.IsCode(err, fault.CodeBinding) {
		t.Errorf("midpoint with 3 arguments: got %v", err)
	}
	f, _ = Builtins().Lookup("homothety")
	if _, err := f.Build(consts(algebra.Zero, algebra.One)); !fault.IsCode(err, fault.CodeBinding) {
		t.Errorf("homothety with 2 arguments: got %v", err)
	}
	f, _ = Builtins().Lookup("polygon")
	if _, err := f.Build(consts(algebra.Zero, algebra.One, algebra.I, algebra.C(1, 1), algebra.C(2, 2))); err != nil {
		t.Errorf("polygon is unbounded: %v", err)
	}
}

func TestTrinomialVariants(t *testing.T) {
	for _, base := range []string{"cintersect", "ccintersect", "tangentPoint", "tangent"} {
		for _, name := range []string{base, base + "1", base + "2"} {
			if _, ok := Builtins().Lookup(name); !ok {
				t.Errorf("missing %s", name)
			}
		}
	}
	f, _ := Builtins().Lookup("cintersect")
	if diff := cmp.Diff("cintersect(Point, Line, Circle)", f.Signature()); diff != "" {
		t.Error(diff)
	}

	unit := algebra.Circle{Center: algebra.Zero, RadiusSqr: 1}
	axis := algebra.LineThrough(algebra.Zero, algebra.One)
	r1 := mustCall(t, "cintersect1", axis, unit).(algebra.Complex)
	r2 := mustCall(t, "cintersect2", axis, unit).(algebra.Complex)
	other := mustCall(t, "cintersect", r1, axis, unit)
	if d := cmp.Diff(algebra.Geometric(r2), other, approx); d != "" {
		t.Error(d)
	}
}

func TestIntersectParallelFails(t *testing.T) {
	l := algebra.LineThrough(algebra.Zero, algebra.One)
	m := algebra.LineThrough(algebra.I, algebra.C(1, 1))
	if _, err := call(t, "intersect", consts(l, m), 0); !fault.IsCode(err, fault.CodeAlgebra) {
		t.Errorf("got %v, want algebra error", err)
	}
}

func TestAssert(t *testing.T) {
	if _, err := call(t, "assert", consts(algebra.C(30, 20), algebra.C(30.0001, 20)), 0); err != nil {
		t.Errorf("close points: %v", err)
	}
	_, err := call(t, "assert", consts(algebra.C(30, 20), algebra.C(31, 20)), 0)
	if !fault.IsCode(err, fault.CodeAssertion) {
		t.Errorf("distant points: got %v", err)
	}
}

func TestTimeAndChoose(t *testing.T) {
	f, _ := Builtins().Lookup("time")
	clock, err := f.Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	if reactive.IsStatic(clock) {
		t.Fatal("time() is static")
	}
	if _, err := f.Build(consts(algebra.One)); err == nil {
		t.Error("time accepted an argument")
	}

	choose, _ := Builtins().Lookup("choose")
	circle := reactive.Const[algebra.Geometric](algebra.Circle{Center: algebra.Zero, RadiusSqr: 4})
	param := reactive.Map(clock, func(g algebra.Geometric) (algebra.Geometric, error) {
		return g.(algebra.Complex).DivReal(4), nil
	})
	cell, err := choose.Build([]Cell{circle, param})
	if err != nil {
		t.Fatal(err)
	}
	got, err := cell.Eval(reactive.Input{Time: 1})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(algebra.Geometric(algebra.C(0, 2)), got, approx); d != "" {
		t.Error(d)
	}
	if _, err := call(t, "choose", consts(algebra.One, algebra.Zero), 0); !fault.IsCode(err, fault.CodeAlgebra) {
		t.Errorf("choose from a point: got %v", err)
	}
}

func TestLineTrace(t *testing.T) {
	f, _ := Builtins().Lookup("time")
	clock, _ := f.Build(nil)
	// Moves along Im z = 1.
	moving := reactive.Map(clock, func(g algebra.Geometric) (algebra.Geometric, error) {
		return g.(algebra.Complex).Add(algebra.I), nil
	})
	trace, _ := Builtins().Lookup("line_trace")
	cell, err := trace.Build([]Cell{moving})
	if err != nil {
		t.Fatal(err)
	}
	if !reactive.IsStatic(cell) {
		t.Fatal("line_trace is not static")
	}
	v, err := cell.Eval(reactive.Input{})
	if err != nil {
		t.Fatal(err)
	}
	l := v.(algebra.Line)
	if r := l.Coef.Conj().Mul(algebra.C(-5, 1)).Re*2 + l.Free; math.Abs(r) > 1e-6 {
		t.Errorf("trace misses the path: residual %g", r)
	}
}

func TestCatalogue(t *testing.T) {
	r := Builtins()
	for _, name := range []string{
		"point", "line", "segment", "circle", "triangle", "polygon", "angle",
		"clockwise", "counterclockwise", "intersect", "midpoint", "divide",
		"midline", "parallel", "perpendicular", "polar", "pole", "project",
		"cproject", "bisector", "exbisector", "centroid", "circumcenter",
		"orthocenter", "incenter", "incircle", "excenter", "excircle",
		"euler_line", "diameter_circle", "midtriangle", "euler_center",
		"euler_circle", "gergonne", "nagel", "isogonal", "circumcircle", "re",
		"im", "sqr", "sqrt", "exp", "ln", "abs", "length", "normalize", "dir",
		"radius", "center", "symmetry", "translation", "homothety",
		"inversion", "time", "choose", "line_trace", "circle_trace", "assert",
	} {
		if _, ok := r.Lookup(name); !ok {
			t.Errorf("missing %s", name)
		}
	}
	for _, f := range r.All() {
		if f.Category == "" {
			t.Errorf("%s has no category", f.Name)
		}
	}
	if d := cmp.Diff("homothety(Object, Point, Point)", mustLookup(t, "homothety").Signature()); d != "" {
		t.Error(d)
	}
}

func mustLookup(t *testing.T, name string) Function {
	t.Helper()
	f, ok := Builtins().Lookup(name)
	if !ok {
		t.Fatalf("no function %q", name)
	}
	return f
}

func TestCoerceForUserFunctions(t *testing.T) {
	a, b, c := algebra.C(0, 0), algebra.C(4, 0), algebra.C(0, 3)
	cell, err := Coerce("f", []Type{TypeLine, TypePoint}, consts(a, b, c))
	if err != nil {
		t.Fatal(err)
	}
	got, err := cell.Eval(reactive.Input{})
	if err != nil {
		t.Fatal(err)
	}
	want := []algebra.Geometric{algebra.LineThrough(a, b), c}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
	if _, err := Coerce("f", []Type{TypeLine}, consts(a, b, c)); err == nil {
		t.Error("Coerce accepted three values for one line")
	}
}

func TestParseType(t *testing.T) {
	for _, name := range []string{"Point", "Line", "Segment", "Triangle", "Polygon", "Circle", "Angle", "Object"} {
		typ, ok := ParseType(name)
		if !ok || typ.String() != name {
			t.Errorf("ParseType(%q) = %v, %v", name, typ, ok)
		}
	}
	if _, ok := ParseType("Vector"); ok {
		t.Error("unknown type accepted")
	}
}
