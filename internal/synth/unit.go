package synth

import (
	"strconv"
	"strings"

	"treeparse/internal/analyze"
)

// UnitKind selects the function bodies of a unit.
type UnitKind int

const (
	UnitStruct      UnitKind = iota // Node allocates and calls Into
	UnitInterface                   // no declared subtypes, Node yields nil
	UnitPolymorphic                 // Node dispatches on the discriminator
)

// Unit is everything a generated file needs to declare ParseN, ParseNNode
// and ParseNInto for one type.
type Unit struct {
	Name   string   // unit name N
	Type   string   // the type T as written in the file
	Result string   // *T for structs, T for interfaces
	Doc    string   // the type as shown in doc comments
	Kind   UnitKind
	Node   []string // ParseNNode body of polymorphic units
	Into   []string // ParseNInto body of struct units, after the nil check
}

// Unit synthesizes the parser bodies of t, which must be in the closure.
func (e *Engine) Unit(t *analyze.TypeInfo) *Unit {
	e.unit = t.ID.String()
	if !t.IsNamed() {
		e.unit = e.closure.Name(t)
	}
	defer func() { e.unit = "" }()

	u := &Unit{
		Name: e.closure.Name(t),
		Type: e.typeString(t),
		Doc:  analyze.Describe(t),
	}
	if !t.IsNamed() {
		u.Doc = "anonymous " + strings.ReplaceAll(u.Name, "_", ".") + " struct"
	}

	switch {
	case t.Kind == analyze.TypeKindInterface && t.Poly != nil:
		u.Kind = UnitPolymorphic
		u.Result = u.Type
		u.Node = e.dispatch(t)
	case t.Kind == analyze.TypeKindInterface:
		u.Kind = UnitInterface
		u.Result = u.Type
	default:
		u.Kind = UnitStruct
		u.Result = "*" + u.Type
		u.Into = e.structBody(t)
	}

	return u
}

func (e *Engine) structBody(t *analyze.TypeInfo) []string {
	chain := e.NewBlock(1)
	fields := e.NewBlock(1)
	usesObj := false

	for i := range t.Fields {
		f := &t.Fields[i]
		if f.Exported && f.IsInline() && !f.Ignored() {
			e.field = f.Name
			e.embedded(chain, f)
			e.field = ""
			continue
		}

		if e.Field(fields, f) {
			usesObj = true
		}
	}

	b := e.NewBlock(1)
	if usesObj {
		b.Linef("obj, err := %s.Object(node)", e.rt)
		b.Fail("err")
	} else {
		b.Open("if _, err := %s.Object(node); err != nil", e.rt)
		b.Linef("return err")
		b.Close()
	}
	b.Append(chain)
	b.Append(fields)

	return b.Lines()
}

// dispatch renders the Node body of a polymorphic interface: read the
// discriminator, then hand the whole object to the subtype's parser.
func (e *Engine) dispatch(t *analyze.TypeInfo) []string {
	poly := t.Poly

	b := e.NewBlock(1)
	b.Open("if node == nil")
	b.Linef("return nil, nil")
	b.Close()
	b.Linef("kind, err := %s.Discriminator(node, %s)", e.rt, strconv.Quote(poly.Discriminator))
	b.Open("if err != nil")
	b.Linef("return nil, err")
	b.Close()

	var known []string
	b.Linef("switch kind {")
	for _, sub := range poly.Subtypes {
		if sub.Type == nil || !sub.Implements {
			continue
		}

		p, ok := e.parserOf(sub.Type)
		if !ok {
			b.Comment("%s: %s has no parser", sub.Name, sub.TypeName)
			continue
		}

		known = append(known, strconv.Quote(sub.Name))
		b.Linef("case %s:", strconv.Quote(sub.Name))
		b.depth++
		if p.node != "" {
			b.Linef("sub, err := %s(node)", p.node)
			b.Open("if err != nil")
			b.Linef("return nil, err")
			b.Close()
		} else {
			b.Linef("sub := new(%s)", e.typeString(sub.Type))
			b.Open("if err := %s(node, sub); err != nil", p.into)
			b.Linef("return nil, err")
			b.Close()
		}
		if sub.Pointer {
			b.Linef("return sub, nil")
		} else {
			b.Linef("return *sub, nil")
		}
		b.depth--
	}

	b.Linef("default:")
	b.Linef("\treturn nil, &%s.UnknownSubtypeError{", e.rt)
	b.Linef("\t\tBase:  %s,", strconv.Quote(t.ID.Name))
	b.Linef("\t\tField: %s,", strconv.Quote(poly.Discriminator))
	b.Linef("\t\tValue: kind,")
	b.Linef("\t\tKnown: []string{%s},", strings.Join(known, ", "))
	b.Linef("\t}")
	b.Linef("}")

	return b.Lines()
}
