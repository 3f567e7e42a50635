package synth

import "treeparse/internal/analyze"

func (e *Engine) simple(b *Block, t *analyze.TypeInfo, access string, level int) Fragment {
	n := NamesAt(level)

	if isAny(t) {
		return Fragment{Expr: access}
	}

	if t.Kind == analyze.TypeKindPointer {
		b.Linef("var %s %s", n.Value, e.typeString(t))
		b.Open("if %s != nil", access)
		b.Linef("%s, err := %s", n.Scalar, e.leafRead(t.Elem, access))
		b.Fail("err")
		b.Linef("%s = &%s", n.Value, n.Scalar)
		b.Close()

		return Fragment{Expr: n.Value}
	}

	b.Linef("%s, err := %s", n.Value, e.leafRead(t, access))
	b.Fail("err")

	return Fragment{Expr: n.Value}
}

// leafRead is the runtime call reading one leaf value.
func (e *Engine) leafRead(t *analyze.TypeInfo, access string) string {
	switch {
	case t.IsTextLeaf():
		return e.runtimeCall("Text", t, access)
	case isBytes(t):
		return e.runtimeCall("Bytes", t, access)
	default:
		return e.runtimeCall(t.Basic.Family().Scalar(), t, access)
	}
}
