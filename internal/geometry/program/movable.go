package program

import (
	"geometry/internal/geometry/algebra"
	"geometry/internal/geometry/drawable"
	"geometry/internal/geometry/fault"
)

// PickRadiusSqr is the squared distance, in logical units, within which a
// drag grabs a movable point.
const PickRadiusSqr = 40

// Movable is a point produced by a "#" marked expression. Start and End are
// byte offsets of the marked text in the main source.
type Movable struct {
	Line   int             `json:"line"`
	Start  int             `json:"start"`
	End    int             `json:"end"`
	Source string          `json:"source"`
	Point  algebra.Complex `json:"-"`
}

// Move rewrites the marked text of m to a literal at the new position.
func Move(source string, m Movable, to algebra.Complex) (string, error) {
	if m.Start < 0 || m.End > len(source) || m.Start > m.End || source[m.Start:m.End] != m.Source {
		return "", fault.New(fault.CodeUnknown, "movable %q no longer matches the source", m.Source)
	}
	if !to.IsFinite() {
		return "", fault.Algebra("cannot move to %v", to)
	}
	return source[:m.Start] + "#(" + to.String() + ")" + source[m.End:], nil
}

// Pick returns the movable nearest to at, in drawing coordinates, if one lies
// within the pick radius.
func Pick(items []Item, at drawable.Offset) (Movable, bool) {
	var best *Movable
	bestDist := float64(PickRadiusSqr)
	for _, it := range items {
		if it.Movable == nil {
			continue
		}
		if d := drawable.OffsetOf(it.Movable.Point).DistanceSqr(at); d < bestDist {
			best, bestDist = it.Movable, d
		}
	}
	if best == nil {
		return Movable{}, false
	}
	return *best, true
}

// Find returns the movable of the given line.
func Find(items []Item, line int) (Movable, bool) {
	for _, it := range items {
		if it.Movable != nil && it.Line == line {
			return *it.Movable, true
		}
	}
	return Movable{}, false
}
