package synth

import (
	"fmt"

	"treeparse/internal/analyze"
	"treeparse/internal/diagnostic"
)

// mapping reads a JSON object into a map. Keys are converted in tiers: enum
// keys are matched against their constants, text keys go through
// UnmarshalText, and string-kinded keys are converted directly. Keys that do
// not convert drop their entry.
func (e *Engine) mapping(b *Block, t *analyze.TypeInfo, access string, level int) Fragment {
	n := NamesAt(level)

	b.Linef("%s, err := %s.Object(%s)", n.Obj, e.rt, access)
	b.Fail("err")
	b.Linef("%s := make(%s, len(%s))", n.Value, e.typeString(t), n.Obj)

	b.Open("for %s := range %s", n.Key, n.Obj)
	key := e.mapKey(b, t.Key, n)

	pop := b.Push(n.Key)
	elem := e.Synthesize(b, t.Elem, fmt.Sprintf("%s[%s]", n.Obj, n.Key), level+1)
	pop()

	if elem.Guard != "" {
		b.Skip(elem.Guard)
	}
	b.Linef("%s[%s] = %s", n.Value, key, elem.Expr)
	b.Close()

	return Fragment{Expr: n.Value}
}

func (e *Engine) mapKey(b *Block, k *analyze.TypeInfo, n Names) string {
	switch {
	case k.Kind == analyze.TypeKindEnum:
		b.Linef("%s, %s := %s(%s)", n.TypedKey, n.Matched, e.matchers.Func(k), n.Key)
		b.Skip(n.Matched)
		return n.TypedKey

	case k.IsTextLeaf():
		b.Linef("%s, err := %s", n.TypedKey, e.runtimeCall("Text", k, n.Key))
		b.Open("if err != nil")
		b.Linef("continue")
		b.Close()
		return n.TypedKey

	case k.IsStringKinded() && k.IsNamed():
		return fmt.Sprintf("%s(%s)", e.typeString(k), n.Key)

	case k.IsStringKinded():
		return n.Key

	default:
		desc := analyze.Describe(k)
		e.diags.AddWarning(diagnostic.CodeUnhandledShape, "map key "+desc+" read as a raw string", e.unit, e.field)
		return n.Key
	}
}
