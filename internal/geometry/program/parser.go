package program

import (
	"geometry/internal/geometry/algebra"
	"geometry/internal/geometry/fault"
	"geometry/internal/geometry/reactive"
	"geometry/internal/geometry/registry"
)

// span is a byte range of a line.
type span struct {
	start, end int
}

// scope resolves names and functions while a program is parsed.
type scope struct {
	names    map[string]registry.Cell
	funcs    map[string]registry.Function
	builtins *registry.Registry
}

func (s *scope) function(name string) (registry.Function, bool) {
	if f, ok := s.funcs[name]; ok {
		return f, true
	}
	return s.builtins.Lookup(name)
}

// parser reads one expression. Grammar, loosest first:
//
//	sum  = prod { ("+" | "-") prod }
//	prod = pow { ("*" | "/") pow }
//	pow  = app { "^" real }
//	app  = "~" app | "#" app | primary { "." digits }
//	primary = "(" sum ")" | name | name "(" [ sum { "," sum } ] ")" | number
type parser struct {
	cursor
	scope   *scope
	movable *span
}

func (p *parser) sum() (registry.Cell, error) {
	left, err := p.prod()
	if err != nil {
		return nil, err
	}
	for {
		var op binaryOp
		switch {
		case p.accept("+"):
			op = binaryOp{"+", algebra.Complex.Add}
		case p.accept("-"):
			op = binaryOp{"-", algebra.Complex.Sub}
		default:
			return left, nil
		}
		right, err := p.prod()
		if err != nil {
			return nil, err
		}
		left = op.apply(left, right)
	}
}

func (p *parser) prod() (registry.Cell, error) {
	left, err := p.pow()
	if err != nil {
		return nil, err
	}
	for {
		var op binaryOp
		switch {
		case p.accept("*"):
			op = binaryOp{"*", algebra.Complex.Mul}
		case p.accept("/"):
			op = binaryOp{"/", algebra.Complex.Div}
		default:
			return left, nil
		}
		right, err := p.pow()
		if err != nil {
			return nil, err
		}
		left = op.apply(left, right)
	}
}

func (p *parser) pow() (registry.Cell, error) {
	base, err := p.app()
	if err != nil {
		return nil, err
	}
	for p.accept("^") {
		exp, ok := p.real()
		if !ok {
			return nil, fault.Parse("expected a real exponent at %q", clip(p.rest()))
		}
		base = unary("^", base, func(z algebra.Complex) algebra.Complex { return z.Pow(exp) })
	}
	return base, nil
}

func (p *parser) app() (registry.Cell, error) {
	p.skipSpace()
	start := p.pos
	switch {
	case p.accept("~"):
		inner, err := p.app()
		if err != nil {
			return nil, err
		}
		return unary("~", inner, algebra.Complex.Conj), nil
	case p.accept("#"):
		inner, err := p.app()
		if err != nil {
			return nil, err
		}
		p.movable = &span{start: start, end: p.pos}
		return inner, nil
	}
	cell, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		n, ok := p.index()
		if !ok {
			return cell, nil
		}
		cell = component(cell, n)
	}
}

func (p *parser) primary() (registry.Cell, error) {
	if p.accept("(") {
		inner, err := p.sum()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return inner, nil
	}
	if name, ok := p.word(); ok {
		if p.accept("(") {
			return p.call(name)
		}
		cell, ok := p.scope.names[name]
		if !ok {
			return nil, fault.Binding("name not found: %s", name)
		}
		return cell, nil
	}
	if z, ok := p.complex(); ok {
		return reactive.Const[algebra.Geometric](z), nil
	}
	if p.atEnd() {
		return nil, fault.Parse("unexpected end of line")
	}
	return nil, fault.Parse("unexpected %q", clip(p.rest()))
}

// call parses the argument list after "name(" and builds the call.
func (p *parser) call(name string) (registry.Cell, error) {
	var args []registry.Cell
	if !p.accept(")") {
		for {
			arg, err := p.sum()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.accept(",") {
				break
			}
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
	}
	f, ok := p.scope.function(name)
	if !ok {
		return nil, fault.Binding("unknown function: %s", name)
	}
	return f.Build(args)
}

type binaryOp struct {
	symbol string
	f      func(a, b algebra.Complex) algebra.Complex
}

func (op binaryOp) apply(a, b registry.Cell) registry.Cell {
	return reactive.Map2(a, b, func(x, y algebra.Geometric) (algebra.Geometric, error) {
		zx, err := operand(op.symbol, x)
		if err != nil {
			return nil, err
		}
		zy, err := operand(op.symbol, y)
		if err != nil {
			return nil, err
		}
		z := op.f(zx, zy)
		if err := algebra.Check(z); err != nil {
			return nil, err
		}
		return z, nil
	})
}

func unary(symbol string, a registry.Cell, f func(algebra.Complex) algebra.Complex) registry.Cell {
	return reactive.Map(a, func(x algebra.Geometric) (algebra.Geometric, error) {
		z, err := operand(symbol, x)
		if err != nil {
			return nil, err
		}
		z = f(z)
		if err := algebra.Check(z); err != nil {
			return nil, err
		}
		return z, nil
	})
}

func operand(symbol string, g algebra.Geometric) (algebra.Complex, error) {
	z, ok := g.(algebra.Complex)
	if !ok {
		return algebra.Complex{}, fault.Binding("operator %s: expected Point, got %s", symbol, g.Kind())
	}
	return z, nil
}

// component selects the n-th endpoint of a segment or vertex of a polygon,
// counting from 1.
func component(a registry.Cell, n int) registry.Cell {
	return reactive.Map(a, func(g algebra.Geometric) (algebra.Geometric, error) {
		var points []algebra.Complex
		switch v := g.(type) {
		case algebra.Segment:
			points = []algebra.Complex{v.From, v.To}
		case algebra.Polygonal:
			points = v.Vertices()
		default:
			return nil, fault.Binding(".%d: expected Segment or Polygon, got %s", n, g.Kind())
		}
		if n < 1 || n > len(points) {
			return nil, fault.Binding(".%d: %s has %d points", n, g.Kind(), len(points))
		}
		return points[n-1], nil
	})
}
