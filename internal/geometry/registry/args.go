package registry

import (
	"geometry/internal/geometry/algebra"
	"geometry/internal/geometry/fault"
)

// Type is a declared parameter type. Besides values of its own kind, each
// type can be synthesized from a run of points.
type Type int

const (
	TypeGeometric Type = iota
	TypePoint
	TypeLine
	TypeSegment
	TypeTriangle
	TypePolygon
	TypeCircle
	TypeAngle
)

var typeNames = map[Type]string{
	TypeGeometric: "Object",
	TypePoint:     "Point",
	TypeLine:      "Line",
	TypeSegment:   "Segment",
	TypeTriangle:  "Triangle",
	TypePolygon:   "Polygon",
	TypeCircle:    "Circle",
	TypeAngle:     "Angle",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// ParseType resolves a type name as written in a fun declaration.
func ParseType(name string) (Type, bool) {
	for t, n := range typeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// span returns the least and most raw values a parameter may consume. A
// polygon built from points has no upper bound.
func (t Type) span() (lo, hi int) {
	switch t {
	case TypeLine, TypeSegment, TypeCircle:
		return 1, 2
	case TypeTriangle, TypeAngle:
		return 1, 3
	case TypePolygon:
		return 1, -1
	}
	return 1, 1
}

// CheckArity rejects argument counts no coercion of params can consume.
func CheckArity(name string, params []Type, n int) error {
	lo, hi := 0, 0
	for _, p := range params {
		l, h := p.span()
		lo += l
		if hi >= 0 {
			if h < 0 {
				hi = -1
			} else {
				hi += h
			}
		}
	}
	if n < lo {
		return fault.Binding("%s: expected at least %d arguments, got %d", name, lo, n)
	}
	if hi >= 0 && n > hi {
		return fault.Binding("%s: expected at most %d arguments, got %d", name, hi, n)
	}
	return nil
}

// Args is the ordered stream of raw argument values of one call. Coercions
// consume it strictly left to right.
type Args struct {
	values []algebra.Geometric
	pos    int
}

func NewArgs(values []algebra.Geometric) *Args {
	return &Args{values: values}
}

// Next returns the next raw value.
func (a *Args) Next() (algebra.Geometric, error) {
	if a.pos >= len(a.values) {
		return nil, fault.Binding("missing argument")
	}
	v := a.values[a.pos]
	a.pos++
	return v, nil
}

// Remaining is the number of unconsumed values.
func (a *Args) Remaining() int {
	return len(a.values) - a.pos
}

// Done fails when values are left over.
func (a *Args) Done() error {
	if n := a.Remaining(); n > 0 {
		return fault.Binding("%d unexpected arguments", n)
	}
	return nil
}

func (a *Args) Geometric() (algebra.Geometric, error) {
	return a.Next()
}

func (a *Args) Point() (algebra.Complex, error) {
	v, err := a.Next()
	if err != nil {
		return algebra.Zero, err
	}
	p, ok := v.(algebra.Complex)
	if !ok {
		return algebra.Zero, expected(TypePoint, v)
	}
	return p, nil
}

// Line accepts a line, a segment or two points.
func (a *Args) Line() (algebra.Line, error) {
	v, err := a.Next()
	if err != nil {
		return algebra.Line{}, err
	}
	switch v := v.(type) {
	case algebra.Line:
		return v, nil
	case algebra.Segment:
		return v.Line(), nil
	case algebra.Complex:
		q, err := a.Point()
		if err != nil {
			return algebra.Line{}, err
		}
		return algebra.LineThrough(v, q), nil
	}
	return algebra.Line{}, expected(TypeLine, v)
}

// Segment accepts a segment or two points.
func (a *Args) Segment() (algebra.Segment, error) {
	v, err := a.Next()
	if err != nil {
		return algebra.Segment{}, err
	}
	switch v := v.(type) {
	case algebra.Segment:
		return v, nil
	case algebra.Complex:
		q, err := a.Point()
		if err != nil {
			return algebra.Segment{}, err
		}
		return algebra.Segment{From: v, To: q}, nil
	}
	return algebra.Segment{}, expected(TypeSegment, v)
}

// Triangle accepts a triangle or three points.
func (a *Args) Triangle() (algebra.Triangle, error) {
	v, err := a.Next()
	if err != nil {
		return algebra.Triangle{}, err
	}
	switch v := v.(type) {
	case algebra.Triangle:
		return v, nil
	case algebra.Complex:
		b, err := a.Point()
		if err != nil {
			return algebra.Triangle{}, err
		}
		c, err := a.Point()
		if err != nil {
			return algebra.Triangle{}, err
		}
		return algebra.Triangle{A: v, B: b, C: c}, nil
	}
	return algebra.Triangle{}, expected(TypeTriangle, v)
}

// Polygon accepts a triangle, a polygon, or takes every remaining value as
// a vertex.
func (a *Args) Polygon() (algebra.Polygonal, error) {
	v, err := a.Next()
	if err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case algebra.Triangle:
		return v, nil
	case algebra.Polygon:
		return v, nil
	case algebra.Complex:
		points := []algebra.Complex{v}
		for a.Remaining() > 0 {
			p, err := a.Point()
			if err != nil {
				return nil, err
			}
			points = append(points, p)
		}
		if len(points) < 3 {
			return nil, fault.Binding("polygon needs at least 3 vertices, got %d", len(points))
		}
		return algebra.Polygon{Points: points}, nil
	}
	return nil, expected(TypePolygon, v)
}

// Circle accepts a circle or a center followed by a point on it.
func (a *Args) Circle() (algebra.Circle, error) {
	v, err := a.Next()
	if err != nil {
		return algebra.Circle{}, err
	}
	switch v := v.(type) {
	case algebra.Circle:
		return v, nil
	case algebra.Complex:
		p, err := a.Point()
		if err != nil {
			return algebra.Circle{}, err
		}
		return algebra.CircleThrough(v, p), nil
	}
	return algebra.Circle{}, expected(TypeCircle, v)
}

// Angle accepts an angle or three points a, vertex, c.
func (a *Args) Angle() (algebra.Angle, error) {
	v, err := a.Next()
	if err != nil {
		return algebra.Angle{}, err
	}
	switch v := v.(type) {
	case algebra.Angle:
		return v, nil
	case algebra.Complex:
		vertex, err := a.Point()
		if err != nil {
			return algebra.Angle{}, err
		}
		c, err := a.Point()
		if err != nil {
			return algebra.Angle{}, err
		}
		return algebra.AngleAt(v, vertex, c), nil
	}
	return algebra.Angle{}, expected(TypeAngle, v)
}

// Take coerces the next values to t.
func (a *Args) Take(t Type) (algebra.Geometric, error) {
	switch t {
	case TypePoint:
		return a.Point()
	case TypeLine:
		return a.Line()
	case TypeSegment:
		return a.Segment()
	case TypeTriangle:
		return a.Triangle()
	case TypePolygon:
		return a.Polygon()
	case TypeCircle:
		return a.Circle()
	case TypeAngle:
		return a.Angle()
	}
	return a.Geometric()
}

func expected(t Type, got algebra.Geometric) error {
	return fault.Binding("expected %v, got %v", t, got.Kind())
}
