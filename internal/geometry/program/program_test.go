package program

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"geometry/internal/geometry/algebra"
	"geometry/internal/geometry/drawable"
	"geometry/internal/geometry/fault"
	"geometry/internal/geometry/reactive"
	"geometry/internal/geometry/registry"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// values evaluates source at time and fails on any error.
func values(t *testing.T, source string, time int) []algebra.Geometric {
	t.Helper()
	prog := Parse(source, "")
	var out []algebra.Geometric
	for _, it := range prog.Frame(time) {
		if it.Err != nil {
			t.Fatalf("line %d: %v", it.Line, it.Err)
		}
		out = append(out, it.Drawable.Value)
	}
	return out
}

func last(t *testing.T, source string) algebra.Geometric {
	t.Helper()
	vs := values(t, source, 0)
	if len(vs) == 0 {
		t.Fatal("no items")
	}
	return vs[len(vs)-1]
}

func TestSegmentProgram(t *testing.T) {
	items := Parse("A = 0\nB = 60\n[orange] segment(A,B)", "").Frame(0)
	if len(items) != 3 {
		t.Fatalf("got %d items", len(items))
	}
	seg := items[2]
	if seg.Err != nil {
		t.Fatal(seg.Err)
	}
	want := algebra.Segment{From: algebra.C(0, 0), To: algebra.C(60, 0)}
	if d := cmp.Diff(algebra.Geometric(want), seg.Drawable.Value); d != "" {
		t.Error(d)
	}
	if seg.Drawable.Style.Color != drawable.Orange {
		t.Errorf("color = %v", seg.Drawable.Style.Color)
	}
	if seg.Drawable.Style.Label != nil {
		t.Errorf("unnamed line has label %v", seg.Drawable.Style.Label)
	}
	if d := cmp.Diff([]string{"A"}, items[0].Drawable.Style.Label); d != "" {
		t.Error(d)
	}
}

func TestCircumcircleAssertion(t *testing.T) {
	src := "A = 0\nB = 60\nC = 40i\nc = circumcircle(A,B,C)\nassert(center(c), 30+20i)"
	values(t, src, 0)

	items := Parse(src+"\nassert(center(c), 31+20i)", "").Frame(0)
	if err := items[len(items)-1].Err; !fault.IsCode(err, fault.CodeAssertion) {
		t.Errorf("got %v, want assertion failure", err)
	}
}

func TestErrorsStayOnTheirLine(t *testing.T) {
	items := Parse("A = 0\nB = X + 1\nC = A + 2", "").Frame(0)
	if len(items) != 3 {
		t.Fatalf("got %d items", len(items))
	}
	if items[0].Err != nil || items[2].Err != nil {
		t.Fatalf("independent lines failed: %v, %v", items[0].Err, items[2].Err)
	}
	if !fault.IsCode(items[1].Err, fault.CodeBinding) || fault.LineOf(items[1].Err) != 2 {
		t.Errorf("line 2: got %v", items[1].Err)
	}
	if d := cmp.Diff(algebra.Geometric(algebra.C(2, 0)), items[2].Drawable.Value); d != "" {
		t.Error(d)
	}

	// A line that fails to evaluate still binds its name.
	items = Parse("l = intersect(line(0, 1), line(i, 1+i))\nP = l\nQ = 5", "").Frame(0)
	for i, code := range []fault.Code{fault.CodeAlgebra, fault.CodeAlgebra} {
		if !fault.IsCode(items[i].Err, code) {
			t.Errorf("line %d: got %v", i+1, items[i].Err)
		}
	}
	if items[2].Err != nil {
		t.Error(items[2].Err)
	}
}

func TestAnimation(t *testing.T) {
	evals := 0
	probe := registry.Function{
		Name:   "probe",
		Params: []registry.Type{registry.TypeGeometric},
		Build: func(raw []registry.Cell) (registry.Cell, error) {
			return reactive.Map(raw[0], func(g algebra.Geometric) (algebra.Geometric, error) {
				evals++
				return g, nil
			}), nil
		},
	}
	reg := registry.New(append(registry.Builtins().All(), probe)...)
	prog := Parse("c = probe(circle(0, 10 + time()*0))\nchoose(c, time()/1000)", "", WithRegistry(reg))
	if !prog.Animated() {
		t.Fatal("program is not animated")
	}

	at := func(time int) algebra.Geometric {
		items := prog.Frame(time)
		if items[1].Err != nil {
			t.Fatal(items[1].Err)
		}
		return items[1].Drawable.Value
	}
	p0 := at(0)
	at(0)
	p500 := at(500)
	at(500)
	p1000 := at(1000)
	if evals != 3 {
		t.Errorf("circle evaluated %d times for 3 distinct frames", evals)
	}
	if algebra.Equal(p0, p500) {
		t.Errorf("frames 0 and 500 give the same point %v", p0)
	}
	if d := cmp.Diff(p0, p1000, approx); d != "" {
		t.Errorf("not periodic: %s", d)
	}
	if d := cmp.Diff(algebra.Geometric(p0.(algebra.Complex).Neg()), p500, approx); d != "" {
		t.Errorf("half period: %s", d)
	}
}

func TestExpressions(t *testing.T) {
	tests := []struct {
		src  string
		want algebra.Complex
	}{
		{"1 + 2*3", algebra.C(7, 0)},
		{"(1+2)*3", algebra.C(9, 0)},
		{"2^2*3", algebra.C(12, 0)},
		{"4^-1", algebra.C(0.25, 0)},
		{"10 - 2 - 3", algebra.C(5, 0)},
		{"12 / 2 / 3", algebra.C(2, 0)},
		{"~(1+2i)", algebra.C(1, -2)},
		{"i*i", algebra.C(-1, 0)},
		{"-i", algebra.C(0, -1)},
		{"2.5i", algebra.C(0, 2.5)},
		{"3 - i", algebra.C(3, -1)},
		{"A = 3+4i\nabs(A)", algebra.C(5, 0)},
		{"s = segment(0, 60)\ns.2", algebra.C(60, 0)},
		{"t = triangle(0, 1, i)\nt.3", algebra.C(0, 1)},
		{"midpoint(segment(0, 4i)) + 1", algebra.C(1, 2)},
		{"A_1 = 5\nA_1 * 2", algebra.C(10, 0)},
		{"x' = 1\nx' + 1", algebra.C(2, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if d := cmp.Diff(algebra.Geometric(tt.want), last(t, tt.src), approx); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestLineErrors(t *testing.T) {
	tests := []struct {
		src  string
		code fault.Code
	}{
		{"1 2", fault.CodeParse},
		{"(1 + 2", fault.CodeParse},
		{"1 +", fault.CodeParse},
		{"2 ^ x", fault.CodeParse},
		{"[purple] 1", fault.CodeParse},
		{"[scale(0)] 1", fault.CodeParse},
		{"[scale(-1)] 1", fault.CodeParse},
		{"[red 1", fault.CodeParse},
		{"O_{ab = 1", fault.CodeParse},
		{"unknown(1)", fault.CodeBinding},
		{"Z", fault.CodeBinding},
		{"midpoint(1, 2, 3)", fault.CodeBinding},
		{"segment(0, 1) + 1", fault.CodeBinding},
		{"A = 1\nA.1", fault.CodeBinding},
		{"t = triangle(0, 1, i)\nt.4", fault.CodeBinding},
		{"1 / 0", fault.CodeAlgebra},
		{"s = #segment(0, 1)", fault.CodeBinding},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			items := Parse(tt.src, "").Frame(0)
			err := items[len(items)-1].Err
			if !fault.IsCode(err, tt.code) {
				t.Errorf("got %v, want %s", err, tt.code)
			}
		})
	}
}

func TestModifiers(t *testing.T) {
	items := Parse("[red, fill] [scale(2)] [dash] [bounded] [equal2] A_1 = 0\n[hide_label] [hide] B = 1", "").Frame(0)
	want := drawable.Style{
		Label:   []string{"A", "1", ""},
		Color:   drawable.Red,
		Border:  drawable.BorderDash,
		Fill:    true,
		Scale:   2,
		Bounded: true,
		Group:   drawable.Equal2,
	}
	if d := cmp.Diff(want, items[0].Drawable.Style); d != "" {
		t.Error(d)
	}
	hidden := items[1].Drawable.Style
	if hidden.Label != nil || hidden.Border != drawable.BorderNo {
		t.Errorf("got %+v", hidden)
	}
}

func TestCommentsAndLineNumbers(t *testing.T) {
	items := Parse("! a comment\n\nA = 1\r\n  ! indented comment\nB = A", "").Frame(0)
	var lines []int
	for _, it := range items {
		lines = append(lines, it.Line)
	}
	if d := cmp.Diff([]int{3, 5}, lines); d != "" {
		t.Error(d)
	}
}

func TestFunctions(t *testing.T) {
	global := strings.Join([]string{
		"! helpers",
		"fun mid(Point a, Point b) = (a + b) / 2",
		"fun len(Segment s) = length(s)",
		"fun midpoint(Point a, Point b) = a",
		"fun answer() = 42",
		"fun drift(Point p) = p + time()",
	}, "\n")
	prog := Parse(strings.Join([]string{
		"mid(0, 4i)",
		"len(0, 3+4i)",
		"midpoint(1, 2)",
		"answer()",
		"drift(1)",
		"fun twice(Point p) = mid(p, p) * 2",
		"twice(3)",
		"len(0)",
		"p",
	}, "\n"), global)

	if errs := prog.Errors(); len(errs) != 0 {
		t.Fatalf("global errors: %v", errs)
	}
	items := prog.Frame(5)
	if len(items) != 8 {
		t.Fatalf("got %d items", len(items))
	}
	want := []algebra.Complex{algebra.C(0, 2), algebra.C(5, 0), algebra.C(1, 0), algebra.C(42, 0), algebra.C(6, 0), algebra.C(6, 0)}
	for i, w := range want {
		if items[i].Err != nil {
			t.Fatalf("line %d: %v", items[i].Line, items[i].Err)
		}
		if d := cmp.Diff(algebra.Geometric(w), items[i].Drawable.Value, approx); d != "" {
			t.Errorf("line %d: %s", items[i].Line, d)
		}
	}
	if !fault.IsCode(items[6].Err, fault.CodeBinding) {
		t.Errorf("len(0): got %v", items[6].Err)
	}
	if !fault.IsCode(items[7].Err, fault.CodeBinding) {
		t.Errorf("parameter visible outside its body: %v", items[7].Err)
	}
	if !prog.Animated() {
		t.Error("drift(1) reads time")
	}

	var sigs []string
	for _, f := range prog.Functions() {
		sigs = append(sigs, f.Signature())
	}
	wantSigs := []string{
		"mid(Point, Point)", "len(Segment)", "midpoint(Point, Point)",
		"answer()", "drift(Point)", "twice(Point)",
	}
	if d := cmp.Diff(wantSigs, sigs); d != "" {
		t.Error(d)
	}
}

func TestFunctionCallsDoNotShareResults(t *testing.T) {
	prog := Parse("A = mid(0, 2)\nB = mid(10, 20)\nC = mid(A, B)", "fun mid(Point a, Point b) = (a + b) / 2")
	var got []algebra.Geometric
	for _, it := range prog.Frame(0) {
		if it.Err != nil {
			t.Fatal(it.Err)
		}
		got = append(got, it.Drawable.Value)
	}
	want := []algebra.Geometric{algebra.C(1, 0), algebra.C(15, 0), algebra.C(8, 0)}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Error(d)
	}
}

func TestGlobalErrors(t *testing.T) {
	prog := Parse("f(1)", "A = 1\nfun f(Vector v) = v\nfun g(Point p) = p p")
	errs := prog.Errors()
	if len(errs) != 3 {
		t.Fatalf("got %v", errs)
	}
	for i, err := range errs {
		if !fault.IsCode(err, fault.CodeParse) || fault.LineOf(err) != i+1 {
			t.Errorf("error %d: %v", i, err)
		}
	}
	if items := prog.Frame(0); !fault.IsCode(items[0].Err, fault.CodeBinding) {
		t.Errorf("call of a rejected function: %v", items[0].Err)
	}
}

func TestConstantFunctionChecksArguments(t *testing.T) {
	prog := Parse(strings.Join([]string{
		"X = intersect(line(0, 1), line(2i, 1+2i))",
		"k(X)",
		"k(circle(0, 1))",
		"k(3)",
	}, "\n"), "fun k(Point p) = 5")

	items := prog.Frame(0)
	if len(items) != 4 {
		t.Fatalf("got %d items", len(items))
	}
	if !fault.IsCode(items[0].Err, fault.CodeAlgebra) {
		t.Errorf("parallel intersection: got %v", items[0].Err)
	}
	if !fault.IsCode(items[1].Err, fault.CodeAlgebra) {
		t.Errorf("failed argument dropped: got %v", items[1].Err)
	}
	if !fault.IsCode(items[2].Err, fault.CodeBinding) {
		t.Errorf("circle passed as a point: got %v", items[2].Err)
	}
	if items[3].Err != nil {
		t.Fatal(items[3].Err)
	}
	if d := cmp.Diff(algebra.Geometric(algebra.C(5, 0)), items[3].Drawable.Value, approx); d != "" {
		t.Error(d)
	}
}
