// Package registry is the catalogue of built-in functions. Each entry
// declares typed parameters, coerced from the raw argument stream, and a
// builder over reactive cells.
package registry

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"geometry/internal/geometry/algebra"
	"geometry/internal/geometry/fault"
	"geometry/internal/geometry/reactive"
)

// Cell is a reactive geometric value.
type Cell = reactive.Reactive[algebra.Geometric]

// Function is one callable entry.
type Function struct {
	Name     string
	Category string
	Params   []Type
	Build    func(args []Cell) (Cell, error)
}

// Signature renders the entry as name(Type, Type).
func (f Function) Signature() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	return f.Name + "(" + strings.Join(params, ", ") + ")"
}

// Registry maps names to functions. It is immutable once built.
type Registry struct {
	byName map[string]Function
	order  []Function
}

// New builds a registry. Later entries with a duplicate name are ignored.
func New(fs ...Function) *Registry {
	r := &Registry{byName: make(map[string]Function, len(fs))}
	for _, f := range fs {
		if _, ok := r.byName[f.Name]; ok {
			continue
		}
		r.byName[f.Name] = f
		r.order = append(r.order, f)
	}
	return r
}

func (r *Registry) Lookup(name string) (Function, bool) {
	f, ok := r.byName[name]
	return f, ok
}

// All returns the functions in declaration order.
func (r *Registry) All() []Function {
	return append([]Function(nil), r.order...)
}

// Categories returns the category names in first-seen order.
func (r *Registry) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, f := range r.order {
		if !seen[f.Category] {
			seen[f.Category] = true
			out = append(out, f.Category)
		}
	}
	return out
}

// Names returns the sorted function names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.order))
	for _, f := range r.order {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

var builtins = sync.OnceValue(func() *Registry {
	return New(catalogue()...)
})

// Builtins returns the shared built-in registry.
func Builtins() *Registry {
	return builtins()
}

// Coerce converts a raw argument list to one value per declared parameter.
func Coerce(name string, params []Type, raw []Cell) (reactive.Reactive[[]algebra.Geometric], error) {
	if err := CheckArity(name, params, len(raw)); err != nil {
		return nil, err
	}
	return reactive.Traverse(raw, func(values []algebra.Geometric) ([]algebra.Geometric, error) {
		args := NewArgs(values)
		out := make([]algebra.Geometric, len(params))
		for i, p := range params {
			v, err := args.Take(p)
			if err != nil {
				return nil, named(name, err)
			}
			out[i] = v
		}
		if err := args.Done(); err != nil {
			return nil, named(name, err)
		}
		return out, nil
	}), nil
}

// Param is a typed parameter with its coercion.
type Param[T any] struct {
	Type Type
	take func(*Args) (T, error)
}

var (
	pGeometric = Param[algebra.Geometric]{TypeGeometric, (*Args).Geometric}
	pPoint     = Param[algebra.Complex]{TypePoint, (*Args).Point}
	pLine      = Param[algebra.Line]{TypeLine, (*Args).Line}
	pSegment   = Param[algebra.Segment]{TypeSegment, (*Args).Segment}
	pTriangle  = Param[algebra.Triangle]{TypeTriangle, (*Args).Triangle}
	pPolygon   = Param[algebra.Polygonal]{TypePolygon, (*Args).Polygon}
	pCircle    = Param[algebra.Circle]{TypeCircle, (*Args).Circle}
	pAngle     = Param[algebra.Angle]{TypeAngle, (*Args).Angle}
)

// lift turns a body over the coerced argument stream into a Function. The
// result of every evaluation passes algebra.Check.
func lift(name string, params []Type, body func(*Args) (algebra.Geometric, error)) Function {
	return Function{
		Name:   name,
		Params: params,
		Build: func(raw []Cell) (Cell, error) {
			if err := CheckArity(name, params, len(raw)); err != nil {
				return nil, err
			}
			return reactive.Traverse(raw, func(values []algebra.Geometric) (algebra.Geometric, error) {
				args := NewArgs(values)
				g, err := body(args)
				if err == nil {
					err = args.Done()
				}
				if err == nil {
					err = algebra.Check(g)
				}
				if err != nil {
					return nil, named(name, err)
				}
				return g, nil
			}), nil
		},
	}
}

// named prefixes err with the function name, keeping its code.
func named(name string, err error) error {
	var e *fault.Error
	if errors.As(err, &e) {
		cp := *e
		cp.Message = name + ": " + e.Message
		return &cp
	}
	return err
}

func fn1[A any](name string, a Param[A], f func(A) (algebra.Geometric, error)) Function {
	return lift(name, []Type{a.Type}, func(args *Args) (algebra.Geometric, error) {
		va, err := a.take(args)
		if err != nil {
			return nil, err
		}
		return f(va)
	})
}

func fn2[A, B any](name string, a Param[A], b Param[B], f func(A, B) (algebra.Geometric, error)) Function {
	return lift(name, []Type{a.Type, b.Type}, func(args *Args) (algebra.Geometric, error) {
		va, err := a.take(args)
		if err != nil {
			return nil, err
		}
		vb, err := b.take(args)
		if err != nil {
			return nil, err
		}
		return f(va, vb)
	})
}

func fn3[A, B, C any](name string, a Param[A], b Param[B], c Param[C], f func(A, B, C) (algebra.Geometric, error)) Function {
	return lift(name, []Type{a.Type, b.Type, c.Type}, func(args *Args) (algebra.Geometric, error) {
		va, err := a.take(args)
		if err != nil {
			return nil, err
		}
		vb, err := b.take(args)
		if err != nil {
			return nil, err
		}
		vc, err := c.take(args)
		if err != nil {
			return nil, err
		}
		return f(va, vb, vc)
	})
}

// trinomial declares the three variants of a two-solution construction:
// name takes a known solution first, name1 and name2 pick a branch.
func trinomial[A, B any, R algebra.Geometric](name string, a Param[A], b Param[B], f func(algebra.RootOption, A, B) R) []Function {
	variant := func(suffix string, hinted bool, fixed algebra.RootOption) Function {
		params := []Type{a.Type, b.Type}
		if hinted {
			params = append([]Type{TypePoint}, params...)
		}
		return lift(name+suffix, params, func(args *Args) (algebra.Geometric, error) {
			o := fixed
			if hinted {
				hint, err := args.Point()
				if err != nil {
					return nil, err
				}
				o = algebra.RootNot(hint)
			}
			va, err := a.take(args)
			if err != nil {
				return nil, err
			}
			vb, err := b.take(args)
			if err != nil {
				return nil, err
			}
			return f(o, va, vb), nil
		})
	}
	return []Function{
		variant("", true, algebra.RootOption{}),
		variant("1", false, algebra.Root1),
		variant("2", false, algebra.Root2),
	}
}

// category stamps c on every function.
func category(c string, groups ...[]Function) []Function {
	var out []Function
	for _, g := range groups {
		for _, f := range g {
			f.Category = c
			out = append(out, f)
		}
	}
	return out
}

func one(f Function) []Function {
	return []Function{f}
}

// self declares a function returning its coerced argument.
func self[T algebra.Geometric](name string, p Param[T]) Function {
	return fn1(name, p, func(v T) (algebra.Geometric, error) { return v, nil })
}

func total1[A any, R algebra.Geometric](f func(A) R) func(A) (algebra.Geometric, error) {
	return func(a A) (algebra.Geometric, error) { return f(a), nil }
}

func total2[A, B any, R algebra.Geometric](f func(A, B) R) func(A, B) (algebra.Geometric, error) {
	return func(a A, b B) (algebra.Geometric, error) { return f(a, b), nil }
}

func total3[A, B, C any, R algebra.Geometric](f func(A, B, C) R) func(A, B, C) (algebra.Geometric, error) {
	return func(a A, b B, c C) (algebra.Geometric, error) { return f(a, b, c), nil }
}
