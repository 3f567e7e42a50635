package synth

import (
	"fmt"

	"treeparse/internal/analyze"
)

// collection reads a JSON array into a slice, an array or a set, element by
// element. Unmatched enum elements are left out of slices and sets and stay
// zero in arrays.
func (e *Engine) collection(b *Block, t *analyze.TypeInfo, access string, level int) Fragment {
	n := NamesAt(level)
	declared := e.typeString(t)
	set := isSet(t)

	b.Linef("%s, err := %s.Array(%s)", n.List, e.rt, access)
	b.Fail("err")

	elemType := t.Elem
	switch {
	case set:
		elemType = t.Key
		b.Linef("%s := make(%s, len(%s))", n.Value, declared, n.List)
	case t.Kind == analyze.TypeKindArray:
		b.Linef("var %s %s", n.Value, declared)
	default:
		b.Linef("%s := make(%s, 0, len(%s))", n.Value, declared, n.List)
	}

	body := b.Child()
	if t.Kind == analyze.TypeKindArray {
		body.Open("if %s >= len(%s)", n.Idx, n.Value)
		body.Linef("break")
		body.Close()
	}

	pop := body.Push(fmt.Sprintf("%s.Index(%s)", e.rt, n.Idx))
	elem := e.Synthesize(body, elemType, n.Item, level+1)
	pop()

	switch {
	case set:
		if elem.Guard != "" {
			body.Skip(elem.Guard)
		}
		body.Linef("%s[%s] = struct{}{}", n.Value, elem.Expr)
	case t.Kind == analyze.TypeKindArray:
		if elem.Guard != "" {
			body.Open("if %s", elem.Guard)
			body.Linef("%s[%s] = %s", n.Value, n.Idx, elem.Expr)
			body.Close()
		} else {
			body.Linef("%s[%s] = %s", n.Value, n.Idx, elem.Expr)
		}
	default:
		if elem.Guard != "" {
			body.Skip(elem.Guard)
		}
		body.Linef("%s = append(%s, %s)", n.Value, n.Value, elem.Expr)
	}

	idx := "_"
	if body.Uses(n.Idx) {
		idx = n.Idx
	}
	b.Open("for %s, %s := range %s", idx, n.Item, n.List)
	b.Append(body)
	b.Close()

	return Fragment{Expr: n.Value}
}

// bulk reads a JSON array of primitives with one runtime call. Wrapper
// elements keep nulls as nil.
func (e *Engine) bulk(b *Block, t *analyze.TypeInfo, access string, level int) Fragment {
	n := NamesAt(level)

	elem, wrapper := t.Elem, false
	if elem.Kind == analyze.TypeKindPointer {
		elem, wrapper = elem.Elem, true
	}
	read := e.runtimeCall(elem.Basic.Family().Bulk(wrapper), elem, access)

	switch {
	case t.Kind == analyze.TypeKindArray:
		b.Linef("%s, err := %s", n.Bulk, read)
		b.Fail("err")
		b.Linef("var %s %s", n.Value, e.typeString(t))
		b.Linef("copy(%s[:], %s)", n.Value, n.Bulk)
	case t.IsNamed():
		b.Linef("%s, err := %s", n.Bulk, read)
		b.Fail("err")
		b.Linef("%s := %s(%s)", n.Value, e.typeString(t), n.Bulk)
	default:
		b.Linef("%s, err := %s", n.Value, read)
		b.Fail("err")
	}

	return Fragment{Expr: n.Value}
}
