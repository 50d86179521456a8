// Package reactive holds the evaluation cells of a parsed program.
//
// A cell is either Static, computed once while the program is built, or
// Dynamic, recomputed on demand behind a single-slot memo. Combinators yield a
// Static cell exactly when every operand is Static.
package reactive

import (
	"geometry/internal/geometry/algebra"
	"geometry/internal/geometry/fault"
)

// Input is the invocation key of a cell: the animation frame and, inside a
// user function body, the evaluated actual arguments.
type Input struct {
	Time int
	Args []algebra.Geometric
}

// Deps records which components of an Input a cell reads.
type Deps struct {
	Time bool
	Args bool
}

func (d Deps) Or(o Deps) Deps {
	return Deps{Time: d.Time || o.Time, Args: d.Args || o.Args}
}

// Reactive is implemented by Static and *Dynamic only.
type Reactive[T any] interface {
	Eval(in Input) (T, error)
	Deps() Deps
	reactive()
}

// Static is a cell whose value never changes. A failed construction is kept
// as Err so that the cell still binds and its dependents fail on evaluation.
type Static[T any] struct {
	Value T
	Err   error
}

// Const returns a successful Static cell.
func Const[T any](v T) Static[T] {
	return Static[T]{Value: v}
}

// Failed returns a Static cell that always reports err.
func Failed[T any](err error) Static[T] {
	return Static[T]{Err: err}
}

func (s Static[T]) Eval(Input) (T, error) {
	return s.Value, s.Err
}

func (Static[T]) Deps() Deps { return Deps{} }
func (Static[T]) reactive()  {}

// Dynamic recomputes its value through build whenever the used part of the
// input differs from the previous call.
type Dynamic[T any] struct {
	deps  Deps
	build func(Input) (T, error)
	last  *memo[T]
}

type memo[T any] struct {
	in    Input
	value T
	err   error
}

// NewDynamic returns a cell reading the components named by deps.
func NewDynamic[T any](deps Deps, build func(Input) (T, error)) *Dynamic[T] {
	return &Dynamic[T]{deps: deps, build: build}
}

func (d *Dynamic[T]) Eval(in Input) (T, error) {
	key := d.key(in)
	if d.last != nil && sameInput(d.last.in, key) {
		return d.last.value, d.last.err
	}
	v, err := d.build(in)
	d.last = &memo[T]{in: key, value: v, err: err}
	return v, err
}

func (d *Dynamic[T]) Deps() Deps { return d.deps }
func (*Dynamic[T]) reactive()    {}

// key drops the components the cell does not read, so that equal keys mean
// equal results.
func (d *Dynamic[T]) key(in Input) Input {
	var k Input
	if d.deps.Time {
		k.Time = in.Time
	}
	if d.deps.Args {
		k.Args = in.Args
	}
	return k
}

func sameInput(a, b Input) bool {
	if a.Time != b.Time || len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !algebra.Equal(a.Args[i], b.Args[i]) {
			return false
		}
	}
	return true
}

// IsStatic reports whether r is a Static cell.
func IsStatic[T any](r Reactive[T]) bool {
	_, ok := r.(Static[T])
	return ok
}

// Map applies f to the value of r.
func Map[T, U any](r Reactive[T], f func(T) (U, error)) Reactive[U] {
	if s, ok := r.(Static[T]); ok {
		if s.Err != nil {
			return Failed[U](s.Err)
		}
		v, err := f(s.Value)
		return Static[U]{Value: v, Err: err}
	}
	return NewDynamic(r.Deps(), func(in Input) (U, error) {
		v, err := r.Eval(in)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v)
	})
}

// Map2 applies f to the values of a and b.
func Map2[A, B, U any](a Reactive[A], b Reactive[B], f func(A, B) (U, error)) Reactive[U] {
	sa, okA := a.(Static[A])
	sb, okB := b.(Static[B])
	if okA && okB {
		if sa.Err != nil {
			return Failed[U](sa.Err)
		}
		if sb.Err != nil {
			return Failed[U](sb.Err)
		}
		v, err := f(sa.Value, sb.Value)
		return Static[U]{Value: v, Err: err}
	}
	return NewDynamic(a.Deps().Or(b.Deps()), func(in Input) (U, error) {
		var zero U
		va, err := a.Eval(in)
		if err != nil {
			return zero, err
		}
		vb, err := b.Eval(in)
		if err != nil {
			return zero, err
		}
		return f(va, vb)
	})
}

// Traverse evaluates every cell of rs in order and applies f to the values.
func Traverse[T, U any](rs []Reactive[T], f func([]T) (U, error)) Reactive[U] {
	var deps Deps
	static := true
	for _, r := range rs {
		deps = deps.Or(r.Deps())
		static = static && IsStatic(r)
	}
	eval := func(in Input) (U, error) {
		var zero U
		values := make([]T, len(rs))
		for i, r := range rs {
			v, err := r.Eval(in)
			if err != nil {
				return zero, err
			}
			values[i] = v
		}
		return f(values)
	}
	if static {
		v, err := eval(Input{})
		return Static[U]{Value: v, Err: err}
	}
	return NewDynamic(deps, eval)
}

// Sequence collects the values of rs.
func Sequence[T any](rs []Reactive[T]) Reactive[[]T] {
	return Traverse(rs, func(v []T) ([]T, error) { return v, nil })
}

// Time is the animation clock.
func Time() Reactive[int] {
	return NewDynamic(Deps{Time: true}, func(in Input) (int, error) {
		return in.Time, nil
	})
}

// Arg reads the i-th actual argument of the enclosing user function call.
func Arg(i int, name string) Reactive[algebra.Geometric] {
	return NewDynamic(Deps{Args: true}, func(in Input) (algebra.Geometric, error) {
		if i >= len(in.Args) {
			return nil, fault.Binding("parameter %s is unbound", name)
		}
		return in.Args[i], nil
	})
}

// Sample evaluates r at the fixed frames, passing the actual arguments of
// the current call through. The result depends on time only when r reads
// arguments; otherwise it is computed once.
func Sample[T, U any](r Reactive[T], frames []int, f func([]T) (U, error)) Reactive[U] {
	eval := func(args []algebra.Geometric) (U, error) {
		var zero U
		values := make([]T, len(frames))
		for i, t := range frames {
			v, err := r.Eval(Input{Time: t, Args: args})
			if err != nil {
				return zero, err
			}
			values[i] = v
		}
		return f(values)
	}
	if !r.Deps().Args {
		v, err := eval(nil)
		return Static[U]{Value: v, Err: err}
	}
	return NewDynamic(Deps{Args: true}, func(in Input) (U, error) {
		return eval(in.Args)
	})
}

// Call evaluates actual under the caller's input and then body under an
// input carrying the evaluated arguments. A body that ignores its arguments
// still fails when the arguments do.
func Call[T any](body Reactive[T], actual Reactive[[]algebra.Geometric]) Reactive[T] {
	if !body.Deps().Args {
		return Map2(actual, body, func(_ []algebra.Geometric, v T) (T, error) {
			return v, nil
		})
	}
	deps := actual.Deps()
	if body.Deps().Time {
		deps.Time = true
	}
	if IsStatic(actual) && !deps.Time {
		vals, err := actual.Eval(Input{})
		if err != nil {
			return Failed[T](err)
		}
		v, err := body.Eval(Input{Args: vals})
		return Static[T]{Value: v, Err: err}
	}
	return NewDynamic(deps, func(in Input) (T, error) {
		vals, err := actual.Eval(in)
		if err != nil {
			var zero T
			return zero, err
		}
		return body.Eval(Input{Time: in.Time, Args: vals})
	})
}
