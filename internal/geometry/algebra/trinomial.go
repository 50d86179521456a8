package algebra

import "fmt"

// RootOption selects one solution of a·z² + b·z + c = 0.
type RootOption struct {
	kind rootKind
	hint Complex
}

type rootKind int

const (
	root1 rootKind = iota
	root2
	rootNot
)

var (
	// Root1 takes the +√discriminant branch.
	Root1 = RootOption{kind: root1}
	// Root2 takes the -√discriminant branch.
	Root2 = RootOption{kind: root2}
)

// RootNot selects the root other than hint, which the caller already knows
// to be a solution.
func RootNot(hint Complex) RootOption {
	return RootOption{kind: rootNot, hint: hint}
}

// Hint returns the known root of a RootNot option.
func (o RootOption) Hint() (Complex, bool) {
	return o.hint, o.kind == rootNot
}

func (o RootOption) String() string {
	switch o.kind {
	case root1:
		return "Root1"
	case root2:
		return "Root2"
	}
	return fmt.Sprintf("RootNot(%v)", o.hint)
}

// Root solves a·z² + b·z + c = 0 for the selected branch. RootNot uses the
// Vieta sum -b/a - hint and trusts the hint.
func Root(o RootOption, a, b, c Complex) Complex {
	half := b.DivReal(2)
	switch o.kind {
	case root1:
		return half.Mul(half).Sub(a.Mul(c)).Sqrt().Sub(half).Div(a)
	case root2:
		return half.Mul(half).Sub(a.Mul(c)).Sqrt().Neg().Sub(half).Div(a)
	}
	return b.Div(a).Neg().Sub(o.hint)
}
