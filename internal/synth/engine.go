package synth

import (
	"fmt"

	"go.uber.org/zap"

	"treeparse/internal/analyze"
	"treeparse/internal/diagnostic"
	"treeparse/internal/registry"
)

// Engine synthesizes parser code for the units of one generated file.
// It is not safe for concurrent use.
type Engine struct {
	closure  *analyze.Closure
	registry *registry.Registry
	imports  *ImportSet
	matchers *Matchers
	diags    *diagnostic.Diagnostics
	logger   *zap.SugaredLogger
	rt       string

	// context of diagnostics
	unit  string
	field string
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry resolves custom parsers of closure types.
func WithRegistry(r *registry.Registry) Option {
	return func(e *Engine) { e.registry = r }
}

// WithMatchers shares enum match functions between the files of one run.
func WithMatchers(m *Matchers) Option {
	return func(e *Engine) { e.matchers = m }
}

// WithDiagnostics collects synthesis warnings into d.
func WithDiagnostics(d *diagnostic.Diagnostics) Option {
	return func(e *Engine) { e.diags = d }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates an Engine writing into a file whose imports are
// collected in imports. runtimePath is the import path of package jsontree.
func NewEngine(closure *analyze.Closure, imports *ImportSet, runtimePath string, opts ...Option) *Engine {
	e := &Engine{
		closure: closure,
		imports: imports,
		logger:  zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.matchers == nil {
		e.matchers = NewMatchers()
	}
	if e.diags == nil {
		e.diags = &diagnostic.Diagnostics{}
	}

	e.rt = imports.Add(runtimePath, "jsontree")
	return e
}

// Runtime returns the qualifier of the runtime package in this file.
func (e *Engine) Runtime() string {
	return e.rt
}

// NewBlock creates a Block calling into this file's runtime qualifier.
func (e *Engine) NewBlock(depth int) *Block {
	return NewBlock(e.rt, depth)
}

// Synthesize appends to b the statements reading a value of type t from the
// raw tree expression access, and returns the expression holding the result.
// level numbers the variables so nested containers stay distinct.
func (e *Engine) Synthesize(b *Block, t *analyze.TypeInfo, access string, level int) Fragment {
	switch Classify(t) {
	case ShapeSimple:
		return e.simple(b, t, access, level)
	case ShapeEnum:
		return e.enum(b, t, access, level)
	case ShapeMap, ShapeCollection, ShapeArray:
		return e.container(b, t, access, level)
	case ShapeCustom:
		return e.custom(b, t, access, level)
	default:
		return e.unhandled(b, t, access, level)
	}
}

// container reads a map, slice or array, or a pointer to one. Field values
// are never null by the time they are read; nested values may be, and a null
// nested container reads as nil.
func (e *Engine) container(b *Block, t *analyze.TypeInfo, access string, level int) Fragment {
	target := containerOf(t)
	pointer := target != t

	read := func() Fragment {
		switch Classify(target) {
		case ShapeMap:
			return e.mapping(b, target, access, level)
		case ShapeCollection:
			return e.collection(b, target, access, level)
		default:
			return e.bulk(b, target, access, level)
		}
	}

	n := NamesAt(level)
	if level <= 1 {
		v := read()
		if !pointer {
			return v
		}
		b.Linef("%s := &%s", n.Slot, v.Expr)
		return Fragment{Expr: n.Slot}
	}

	b.Linef("var %s %s", n.Slot, e.typeString(t))
	b.Open("if %s != nil", access)
	v := read()
	if pointer {
		b.Linef("%s = &%s", n.Slot, v.Expr)
	} else {
		b.Linef("%s = %s", n.Slot, v.Expr)
	}
	b.Close()

	return Fragment{Expr: n.Slot}
}

func (e *Engine) typeString(t *analyze.TypeInfo) string {
	return e.imports.TypeString(t)
}

func (e *Engine) runtimeCall(fn string, typeArg *analyze.TypeInfo, access string) string {
	return fmt.Sprintf("%s.%s[%s](%s)", e.rt, fn, e.typeString(typeArg), access)
}

// unhandled declares a zero placeholder so the rest of the file still builds.
func (e *Engine) unhandled(b *Block, t *analyze.TypeInfo, access string, level int) Fragment {
	n := NamesAt(level)
	desc := analyze.Describe(t)

	b.Linef("var %s %s // treeparse: unhandled type %s", n.Value, e.typeString(t), desc)
	b.Linef("_ = %s", access)

	e.diags.AddWarning(diagnostic.CodeUnhandledShape, "no parser shape for "+desc+", left at zero value", e.unit, e.field)
	e.logger.Warnw("unhandled type", "type", desc, "unit", e.unit, "field", e.field)

	return Fragment{Expr: n.Value}
}
