package analyze

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"treeparse/internal/diagnostic"
)

// Overrides reports which unit names have hand-written parsers.
type Overrides interface {
	Has(name string) bool
}

// SkipReason tells why a reachable type gets no generated parser.
type SkipReason string

const (
	SkipCustom   SkipReason = "custom parser"
	SkipNotFound SkipReason = "type not found"
)

// Skipped is a reachable type left out of generation.
type Skipped struct {
	Type   string
	Reason SkipReason
}

// TypeGraph is the working state of one Analyze call.
type TypeGraph struct {
	processed   map[*TypeInfo]struct{}
	generatable []*TypeInfo
	custom      []*TypeInfo
	skipped     []Skipped
	unsupported []*UnsupportedTypeError
	diags       diagnostic.Diagnostics
}

func newTypeGraph() *TypeGraph {
	return &TypeGraph{
		processed: make(map[*TypeInfo]struct{}),
	}
}

// Analyzer computes the closure of types needing generated parsers.
type Analyzer struct {
	loader    *Loader
	overrides Overrides
	logger    *zap.SugaredLogger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithOverrides routes types with hand-written parsers away from generation.
func WithOverrides(o Overrides) Option {
	return func(a *Analyzer) { a.overrides = o }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(a *Analyzer) { a.logger = logger }
}

// NewAnalyzer creates a new Analyzer reading types through loader.
func NewAnalyzer(loader *Loader, opts ...Option) *Analyzer {
	a := &Analyzer{
		loader: loader,
		logger: zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Analyze resolves root ("import/path.Name") and computes its closure.
func (a *Analyzer) Analyze(root string) (*Closure, error) {
	t, err := a.loader.Resolve(root)
	if err != nil {
		return nil, err
	}

	return a.AnalyzeType(t)
}

// AnalyzeType computes the closure of t: every type reachable through fields,
// embedded structs and declared subtypes, in depth-first discovery order.
// Unsupported field types do not stop the walk; they are all returned together
// in an *UnsupportedTypesError alongside the closure.
func (a *Analyzer) AnalyzeType(root *TypeInfo) (*Closure, error) {
	if root == nil {
		return nil, errors.New("nil root type")
	}

	if !root.IsNamed() || (root.Kind != TypeKindStruct && root.Kind != TypeKindInterface) {
		return nil, errors.Newf("root %s is a %s, not a struct or interface", Describe(root), root.Kind)
	}

	g := newTypeGraph()
	if root.Generic {
		g.unsupported = append(g.unsupported, &UnsupportedTypeError{
			Declaring: root.ID.String(),
			Offending: Describe(root),
			Reason:    "generic types are not supported",
		})
	} else {
		a.visit(g, root)
	}

	closure := &Closure{
		Roots:       []*TypeInfo{root},
		Types:       g.generatable,
		Custom:      g.custom,
		Skipped:     g.skipped,
		Diagnostics: a.loader.Diagnostics(),
	}
	closure.Diagnostics.Merge(g.diags)
	closure.Diagnostics.Dedupe()
	closure.names = assignNames(closure.Custom, closure.Types)

	a.logger.Debugw("analyzed type graph",
		"root", root.ID.String(),
		"generatable", len(closure.Types),
		"custom", len(closure.Custom),
		"skipped", len(closure.Skipped))

	if len(g.unsupported) > 0 {
		return closure, &UnsupportedTypesError{Errs: g.unsupported}
	}

	return closure, nil
}

func (a *Analyzer) visit(g *TypeGraph, t *TypeInfo) {
	if t == nil {
		return
	}

	switch Classify(t) {
	case ClassPrimitive, ClassWrapper, ClassUniversal, ClassExcluded:
		return
	}

	if _, ok := g.processed[t]; ok {
		return
	}
	g.processed[t] = struct{}{}

	switch t.Kind {
	case TypeKindPointer, TypeKindSlice, TypeKindArray:
		a.visit(g, t.Elem)

	case TypeKindMap:
		a.visit(g, t.Key)
		a.visit(g, t.Elem)

	case TypeKindStruct:
		// struct{} is the member marker of sets and has nothing to parse.
		if t.IsTextLeaf() || (t.IsInner() && len(t.Fields) == 0) {
			return
		}

		a.register(g, t)
		for i := range t.Fields {
			f := &t.Fields[i]
			if !f.Exported || f.Ignored() {
				continue
			}

			if a.checkField(g, t, f) {
				a.visit(g, f.Type)
			}
		}

	case TypeKindInterface:
		if !t.IsNamed() {
			return
		}

		a.register(g, t)
		if t.Poly == nil {
			return
		}

		for _, sub := range t.Poly.Subtypes {
			switch {
			case sub.Type == nil:
				g.skip(sub.TypeName, SkipNotFound)
				g.diags.AddWarning(diagnostic.CodeTypeNotFound,
					fmt.Sprintf("subtype %s (%s) could not be resolved", sub.TypeName, sub.Name), t.ID.String(), "")
			case !sub.Implements:
				g.unsupported = append(g.unsupported, &UnsupportedTypeError{
					Declaring: t.ID.String(),
					Offending: Describe(sub.Type),
					Reason:    fmt.Sprintf("subtype %s does not implement %s", sub.Name, t.ID.Name),
				})
			case sub.Type.Kind != TypeKindStruct:
				g.unsupported = append(g.unsupported, &UnsupportedTypeError{
					Declaring: t.ID.String(),
					Offending: Describe(sub.Type),
					Reason:    fmt.Sprintf("subtype %s is not a struct", sub.Name),
				})
			default:
				a.visit(g, sub.Type)
			}
		}
	}
}

// register files a struct or interface as generatable, or as custom when a
// hand-written parser exists for its unit name. Custom types are still walked.
func (a *Analyzer) register(g *TypeGraph, t *TypeInfo) {
	name := baseName(t)
	if a.overrides != nil && a.overrides.Has(name) {
		g.custom = append(g.custom, t)
		g.skip(t.ID.String(), SkipCustom)
		g.diags.AddInfo(diagnostic.CodeCustomParser, "parsed by hand-written Parse"+name+"Node", t.ID.String(), "")
		a.logger.Debugw("routing to custom parser", "type", t.ID.String())
		return
	}

	g.generatable = append(g.generatable, t)
}

func (g *TypeGraph) skip(name string, reason SkipReason) {
	g.skipped = append(g.skipped, Skipped{Type: name, Reason: reason})
}

// checkField validates a field type and every type nested in it, down to the
// next named struct or interface. It reports whether the walk should continue
// into the field type.
func (a *Analyzer) checkField(g *TypeGraph, owner *TypeInfo, f *FieldInfo) bool {
	ok := true
	fail := func(t *TypeInfo, reason string) {
		ok = false
		g.unsupported = append(g.unsupported, &UnsupportedTypeError{
			Declaring: ownerName(owner),
			Field:     f.Name,
			Offending: Describe(t),
			Reason:    reason,
		})
	}

	var check func(t *TypeInfo, depth int)
	check = func(t *TypeInfo, depth int) {
		if t == nil || depth > 32 {
			return
		}

		switch t.Kind {
		case TypeKindExternal:
			reason, _ := ExclusionReason(t.ID)
			fail(t, reason)
			return
		case TypeKindTypeParam:
			fail(t, "type parameters are not supported")
			return
		case TypeKindUnknown:
			fail(t, "has no JSON representation")
			return
		case TypeKindInvalid:
			ok = false
			g.skip(ownerName(owner)+"."+f.Name, SkipNotFound)
			g.diags.AddWarning(diagnostic.CodeTypeNotFound, "field type could not be resolved", ownerName(owner), f.Name)
			return
		case TypeKindEnum:
			g.diags.AddInfo(diagnostic.CodeEnumDrop,
				fmt.Sprintf("values not matching a %s constant are dropped", Describe(t)), ownerName(owner), f.Name)
		}

		if t.Generic {
			fail(t, "generic types are not supported")
			return
		}

		if t.IsNamed() && !t.Exported && t.Kind != TypeKindBasic {
			fail(t, "unexported types cannot be referenced from generated code")
			return
		}

		if t.IsNamed() && (t.Kind == TypeKindStruct || t.Kind == TypeKindInterface) {
			return
		}

		switch t.Kind {
		case TypeKindPointer, TypeKindSlice, TypeKindArray:
			check(t.Elem, depth+1)
		case TypeKindMap:
			if !validMapKey(t.Key) {
				fail(t.Key, "map keys must be string-kinded, an enum, or implement encoding.TextUnmarshaler")
			}
			check(t.Key, depth+1)
			check(t.Elem, depth+1)
		}
	}

	check(f.Type, 0)
	return ok
}

func validMapKey(k *TypeInfo) bool {
	switch {
	case k == nil:
		return false
	case k.Kind == TypeKindInterface:
		// Interface keys make the emitter skip the field instead.
		return true
	case k.Kind == TypeKindEnum, k.IsStringKinded():
		return true
	case k.IsNamed() && k.TextUnmarshaler:
		return true
	default:
		return false
	}
}

func ownerName(t *TypeInfo) string {
	if t.IsNamed() {
		return t.ID.String()
	}

	if t.Enclosing != nil {
		return ownerName(t.Enclosing) + "." + t.EnclosingField
	}

	return Describe(t)
}
