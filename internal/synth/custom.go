package synth

import (
	"treeparse/internal/analyze"
)

// parser is how generated code reaches the Parse functions of one type.
type parser struct {
	name   string // unit name
	into   string // qualified Into function
	node   string // qualified Node function, empty for hand-written parsers
	custom bool
}

// parserOf locates the Parse functions of a struct or interface type.
func (e *Engine) parserOf(t *analyze.TypeInfo) (parser, bool) {
	if e.closure == nil {
		return parser{}, false
	}

	switch {
	case e.closure.IsCustom(t):
		name := e.closure.Name(t)
		p := parser{name: name, into: "Parse" + name + "Into", custom: true}
		if loc, ok := e.registry.Lookup(name); ok {
			p.into = qualify(e.imports.Add(loc.ImportPath, loc.Package), loc.IntoFunc())
		}
		return p, true

	case e.closure.Contains(t):
		name := e.closure.Name(t)
		return parser{name: name, into: "Parse" + name + "Into", node: "Parse" + name + "Node"}, true

	default:
		return parser{}, false
	}
}

// custom reads a struct or interface through its Parse functions: Node for
// pointers and interfaces, Into for struct values.
func (e *Engine) custom(b *Block, t *analyze.TypeInfo, access string, level int) Fragment {
	n := NamesAt(level)

	target, pointer := t, false
	if t.Kind == analyze.TypeKindPointer {
		target, pointer = t.Elem, true
	}

	p, ok := e.parserOf(target)
	if !ok {
		return e.unhandled(b, t, access, level)
	}

	switch {
	case p.node != "" && (pointer || target.Kind == analyze.TypeKindInterface):
		b.Linef("%s, err := %s(%s)", n.Value, p.node, access)
		b.Fail("err")

	case pointer:
		b.Linef("var %s %s", n.Value, e.typeString(t))
		b.Open("if %s != nil", access)
		b.Linef("%s = new(%s)", n.Value, e.typeString(target))
		b.Open("if err := %s(%s, %s); err != nil", p.into, access, n.Value)
		b.Linef("%s", b.Return("err"))
		b.Close()
		b.Close()

	default:
		b.Linef("var %s %s", n.Value, e.typeString(target))
		b.Open("if err := %s(%s, &%s); err != nil", p.into, access, n.Value)
		b.Linef("%s", b.Return("err"))
		b.Close()
	}

	return Fragment{Expr: n.Value}
}
