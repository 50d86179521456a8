// Package program parses construction programs and evaluates them frame by
// frame.
//
// A program is a main source, one statement per line, and an optional global
// source holding "fun" declarations. Every line is parsed and evaluated on
// its own: a failing line reports its error while the other lines keep
// working.
package program

import (
	"maps"
	"strings"

	"geometry/internal/geometry/algebra"
	"geometry/internal/geometry/drawable"
	"geometry/internal/geometry/fault"
	"geometry/internal/geometry/reactive"
	"geometry/internal/geometry/registry"
)

// UserCategory is the registry category of declared functions.
const UserCategory = "User"

// Item is the result of one statement in one frame. Exactly one of Drawable
// and Err is set.
type Item struct {
	Line     int
	Drawable *drawable.Drawable
	Movable  *Movable
	Err      error
}

// Program is a parsed program. Its cells keep a private memo each, so a
// Program must not be evaluated from several goroutines at once.
type Program struct {
	statements []*statement
	functions  []registry.Function
	errs       []error
}

type statement struct {
	line    int
	offset  int
	text    string
	cell    registry.Cell
	style   drawable.Style
	movable *span
	err     error
}

// Option configures Parse.
type Option func(*scope)

// WithRegistry resolves built-in calls against r instead of the default
// catalogue.
func WithRegistry(r *registry.Registry) Option {
	return func(s *scope) { s.builtins = r }
}

// Parse builds the program. It never fails as a whole: errors are attached
// to their lines.
func Parse(source, global string, opts ...Option) *Program {
	s := &scope{
		names:    map[string]registry.Cell{},
		funcs:    map[string]registry.Function{},
		builtins: registry.Builtins(),
	}
	for _, opt := range opts {
		opt(s)
	}
	prog := &Program{}

	for _, ln := range splitLines(global) {
		if ln.skip() {
			continue
		}
		p := s.parser(ln.text)
		f, ok, err := p.declaration()
		if err == nil && !ok {
			err = fault.Parse("expected a function declaration")
		}
		if err != nil {
			err = fault.AtLine(err, ln.number)
			Logger().Debug("global line rejected", "line", ln.number, "err", err)
			prog.errs = append(prog.errs, err)
			continue
		}
		prog.functions = append(prog.functions, f)
	}

	for _, ln := range splitLines(source) {
		if ln.skip() {
			continue
		}
		p := s.parser(ln.text)
		f, ok, err := p.declaration()
		if ok && err == nil {
			prog.functions = append(prog.functions, f)
			continue
		}
		st := &statement{line: ln.number, offset: ln.offset, text: ln.text}
		if err == nil {
			err = p.statement(st)
		}
		if err != nil {
			st.err = fault.AtLine(err, ln.number)
			Logger().Debug("line rejected", "line", ln.number, "err", st.err)
		}
		prog.statements = append(prog.statements, st)
	}

	Logger().Info("program parsed",
		"statements", len(prog.statements),
		"functions", len(prog.functions),
		"animated", prog.Animated())
	return prog
}

// Frame evaluates every statement at the given time.
func (p *Program) Frame(time int) []Item {
	in := reactive.Input{Time: time}
	items := make([]Item, len(p.statements))
	for i, st := range p.statements {
		items[i] = st.eval(in)
	}
	return items
}

// Animated reports whether any statement depends on time.
func (p *Program) Animated() bool {
	for _, st := range p.statements {
		if st.cell != nil && st.cell.Deps().Time {
			return true
		}
	}
	return false
}

// Functions returns the declared functions in declaration order.
func (p *Program) Functions() []registry.Function {
	return append([]registry.Function(nil), p.functions...)
}

// Errors returns the failures of the global source.
func (p *Program) Errors() []error {
	return append([]error(nil), p.errs...)
}

func (st *statement) eval(in reactive.Input) Item {
	item := Item{Line: st.line}
	if st.err != nil {
		item.Err = st.err
		return item
	}
	v, err := st.cell.Eval(in)
	if err != nil {
		item.Err = fault.AtLine(err, st.line)
		return item
	}
	if st.movable != nil {
		z, ok := v.(algebra.Complex)
		if !ok {
			item.Err = fault.AtLine(fault.Binding("movable value is not a point: %s", v.Kind()), st.line)
			return item
		}
		item.Movable = &Movable{
			Line:   st.line,
			Start:  st.offset + st.movable.start,
			End:    st.offset + st.movable.end,
			Source: st.text[st.movable.start:st.movable.end],
			Point:  z,
		}
	}
	item.Drawable = &drawable.Drawable{Value: v, Style: st.style}
	return item
}

func (s *scope) parser(text string) *parser {
	return &parser{cursor: cursor{text: text}, scope: s}
}

// statement parses "[modifiers] [name =] expression" into st and binds the
// name.
func (p *parser) statement(st *statement) error {
	mods, err := p.modifiers()
	if err != nil {
		return err
	}
	name := p.binding()
	cell, err := p.sum()
	if err != nil {
		return err
	}
	if !p.atEnd() {
		return fault.Parse("line not consumed: %q", clip(p.rest()))
	}

	style := drawable.DefaultStyle()
	if name != "" {
		spans, err := drawable.Spans(name)
		if err != nil {
			return err
		}
		style.Label = spans
		p.scope.names[name] = cell
	}
	for _, m := range mods {
		m(&style)
	}
	st.cell = cell
	st.style = style
	st.movable = p.movable
	return nil
}

// binding consumes "name =" when present.
func (p *parser) binding() string {
	start := p.pos
	if name, ok := p.word(); ok && p.accept("=") {
		return name
	}
	p.pos = start
	return ""
}

// declaration parses "fun name(Type param, ...) = expression". ok is false
// when the line is not a declaration; the cursor is then left untouched.
func (p *parser) declaration() (f registry.Function, ok bool, err error) {
	start := p.pos
	kw, isWord := p.word()
	name, isName := p.word()
	if !isWord || kw != "fun" || !isName || !p.accept("(") {
		p.pos = start
		return registry.Function{}, false, nil
	}

	var params []registry.Type
	inner := &scope{names: maps.Clone(p.scope.names), funcs: p.scope.funcs, builtins: p.scope.builtins}
	if !p.accept(")") {
		seen := map[string]bool{}
		for {
			typeName, ok := p.word()
			if !ok {
				return f, true, fault.Parse("%s: expected parameter type at %q", name, clip(p.rest()))
			}
			typ, ok := registry.ParseType(typeName)
			if !ok {
				return f, true, fault.Parse("%s: unknown type %s", name, typeName)
			}
			param, ok := p.word()
			if !ok {
				return f, true, fault.Parse("%s: expected parameter name at %q", name, clip(p.rest()))
			}
			if seen[param] {
				return f, true, fault.Binding("%s: duplicate parameter %s", name, param)
			}
			seen[param] = true
			inner.names[param] = reactive.Arg(len(params), param)
			params = append(params, typ)
			if !p.accept(",") {
				break
			}
		}
		if err := p.expect(")"); err != nil {
			return f, true, err
		}
	}
	if err := p.expect("="); err != nil {
		return f, true, err
	}

	body := &parser{cursor: p.cursor, scope: inner}
	cell, err := body.sum()
	if err != nil {
		return f, true, err
	}
	if !body.atEnd() {
		return f, true, fault.Parse("line not consumed: %q", clip(body.rest()))
	}
	if body.movable != nil {
		return f, true, fault.Parse("%s: '#' is not allowed in a function body", name)
	}

	f = registry.Function{
		Name:     name,
		Category: UserCategory,
		Params:   params,
		Build: func(raw []registry.Cell) (registry.Cell, error) {
			actual, err := registry.Coerce(name, params, raw)
			if err != nil {
				return nil, err
			}
			return reactive.Call(cell, actual), nil
		},
	}
	p.scope.funcs[name] = f
	Logger().Debug("function declared", "signature", f.Signature())
	return f, true, nil
}

type sourceLine struct {
	number int
	offset int
	text   string
}

func (l sourceLine) skip() bool {
	t := strings.TrimSpace(l.text)
	return t == "" || strings.HasPrefix(t, "!")
}

func splitLines(source string) []sourceLine {
	var out []sourceLine
	offset := 0
	for i, text := range strings.Split(source, "\n") {
		out = append(out, sourceLine{number: i + 1, offset: offset, text: strings.TrimSuffix(text, "\r")})
		offset += len(text) + 1
	}
	return out
}
