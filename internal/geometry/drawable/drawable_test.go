package drawable

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"geometry/internal/geometry/algebra"
)

// recorder logs primitive calls as short strings.
type recorder struct {
	bounds Rect
	calls  []string
	lines  [][2]Offset
}

func (r *recorder) Bounds() Rect { return r.bounds }
func (r *recorder) Point(at Offset, c Color) {
	r.calls = append(r.calls, fmt.Sprintf("point %g,%g", at.X, at.Y))
}
func (r *recorder) Circle(center Offset, radius float64, s Style) {
	r.calls = append(r.calls, fmt.Sprintf("circle %g,%g r%g", center.X, center.Y, radius))
}
func (r *recorder) Line(from, to Offset, s Style) {
	r.calls = append(r.calls, "line")
	r.lines = append(r.lines, [2]Offset{from, to})
}
func (r *recorder) Polygon(points []Offset, s Style) {
	r.calls = append(r.calls, fmt.Sprintf("polygon %d", len(points)))
}
func (r *recorder) Text(at Offset, spans []string, c Color) {
	r.calls = append(r.calls, fmt.Sprintf("text %v", spans))
}
func (r *recorder) Angle(center Offset, from, to float64, s Style) {
	r.calls = append(r.calls, "angle")
}

func newRecorder() *recorder {
	return &recorder{bounds: Rect{Left: -100, Top: -100, Right: 100, Bottom: 100}}
}

func TestSpans(t *testing.T) {
	tests := map[string][]string{
		"A":       {"A"},
		"A_1":     {"A", "1", ""},
		"O_{ab}c": {"O", "ab", "c"},
		"A_":      {"A_"},
		"x_1_2":   {"x", "1", "", "2", ""},
	}
	for in, want := range tests {
		got, err := Spans(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("%q: %s", in, d)
		}
	}
	if _, err := Spans("A_{b"); err == nil {
		t.Error("unclosed brace accepted")
	}
}

func TestPointsDrawnLast(t *testing.T) {
	a := From(algebra.C(10, 20))
	a.Style.Label = []string{"A"}
	hidden := From(algebra.C(0, 0))
	hidden.Style.Border = BorderNo
	seg := From(algebra.Segment{From: algebra.C(0, 0), To: algebra.C(60, 0)})
	circle := From(algebra.Circle{Center: algebra.Zero, RadiusSqr: 25})

	r := newRecorder()
	DrawAll(r, []*Drawable{a, seg, hidden, circle})
	want := []string{"line", "circle 0,0 r5", "point 10,-20", "text [A]"}
	if d := cmp.Diff(want, r.calls); d != "" {
		t.Error(d)
	}
}

func TestLineClippedToBounds(t *testing.T) {
	r := newRecorder()
	From(algebra.LineThrough(algebra.C(0, 0), algebra.C(1, 1))).Draw(r, nil)
	if len(r.lines) != 1 {
		t.Fatalf("got %v", r.calls)
	}
	got := r.lines[0]
	ends := []Offset{got[0], got[1]}
	want := []Offset{{-100, 100}, {100, -100}}
	opts := []cmp.Option{
		cmpopts.EquateApprox(0, 1e-9),
		cmpopts.SortSlices(func(a, b Offset) bool { return a.X < b.X }),
	}
	if d := cmp.Diff(want, ends, opts...); d != "" {
		t.Error(d)
	}

	r = newRecorder()
	From(algebra.LineThrough(algebra.C(500, 0), algebra.C(500, 1))).Draw(r, nil)
	if len(r.lines) != 0 {
		t.Errorf("line outside the view was drawn: %v", r.lines)
	}
}

func TestBoundedLine(t *testing.T) {
	l := From(algebra.LineThrough(algebra.C(0, 0), algebra.C(1, 0)))
	l.Style.Bounded = true
	ds := []*Drawable{
		l,
		From(algebra.C(-20, 0)),
		From(algebra.C(35, 0)),
		From(algebra.C(10, 0)),
		From(algebra.C(50, 50)),
	}
	r := newRecorder()
	DrawAll(r, ds)
	if len(r.lines) != 1 {
		t.Fatalf("got %v", r.calls)
	}
	xs := []float64{r.lines[0][0].X, r.lines[0][1].X}
	if math.Min(xs[0], xs[1]) != -20 || math.Max(xs[0], xs[1]) != 35 {
		t.Errorf("bounded line spans %v", xs)
	}
}

func TestHiddenAndDottedPointsSkipped(t *testing.T) {
	for _, b := range []Border{BorderNo, BorderDot} {
		p := From(algebra.C(1, 1))
		p.Style.Border = b
		r := newRecorder()
		p.Draw(r, nil)
		if len(r.calls) != 0 {
			t.Errorf("%v point drew %v", b, r.calls)
		}
	}
}

func TestAngles(t *testing.T) {
	r := newRecorder()
	From(algebra.AngleAt(algebra.One, algebra.Zero, algebra.I)).Draw(r, nil)
	From(algebra.AngleAt(algebra.One, algebra.Zero, algebra.C(-1, 1))).Draw(r, nil)
	if d := cmp.Diff([]string{"polygon 4", "angle"}, r.calls); d != "" {
		t.Error(d)
	}

	marked := From(algebra.AngleAt(algebra.One, algebra.Zero, algebra.C(-1, 1)))
	marked.Style.Group = Equal3
	r = newRecorder()
	marked.Draw(r, nil)
	if d := cmp.Diff([]string{"angle", "angle", "angle"}, r.calls); d != "" {
		t.Error(d)
	}
}

func TestSegmentMarks(t *testing.T) {
	for group, want := range map[EqualityGroup]int{EqualNone: 1, Equal1: 2, Equal2: 3, Equal3: 4, EqualV: 3} {
		s := From(algebra.Segment{From: algebra.Zero, To: algebra.C(10, 0)})
		s.Style.Group = group
		r := newRecorder()
		s.Draw(r, nil)
		if len(r.lines) != want {
			t.Errorf("%v: %d lines, want %d", group, len(r.lines), want)
		}
	}
}

func TestStyleDefaults(t *testing.T) {
	s := DefaultStyle()
	if s.Color != Black || s.Border != BorderLine || s.Scale != 1 || !s.Visible() {
		t.Errorf("unexpected default %+v", s)
	}
	if d := cmp.Diff([]float64{5, 2, 1, 2}, BorderDashDot.Dashes()); d != "" {
		t.Error(d)
	}
	if got := Orange.SVG(); got != "rgb(178, 102, 0)" {
		t.Errorf("orange = %s", got)
	}
}
