package synth

import (
	"strconv"

	"treeparse/internal/analyze"
	"treeparse/internal/diagnostic"
)

// Field appends to b the block reading field f of the JSON object obj into
// out. It reports whether the block reads obj. Simple fields accept null as
// their zero value; every other field is left untouched by null.
func (e *Engine) Field(b *Block, f *analyze.FieldInfo) bool {
	e.field = f.Name
	defer func() { e.field = "" }()

	switch {
	case !f.Exported, f.IsInline():
		return false
	case f.Ignored():
		b.Comment("%s: ignored", f.Name)
		return false
	}

	if w := wildcard(f.Type); w != nil {
		b.Comment("%s: %s has %s keys or values and is not parsed", f.Name, analyze.Describe(f.Type), analyze.Describe(w))
		e.diags.AddWarning(diagnostic.CodeWildcardMap,
			"map with "+analyze.Describe(w)+" keys or values skipped", e.unit, f.Name)
		return false
	}

	name := strconv.Quote(f.JSONName())
	if Classify(f.Type) == ShapeSimple {
		b.Open("if raw, ok := obj[%s]; ok", name)
	} else {
		b.Open("if raw, ok := obj[%s]; ok && raw != nil", name)
	}

	pop := b.Push(name)
	value := e.Synthesize(b, f.Type, "raw", 1)
	pop()

	if value.Guard != "" {
		b.Open("if %s", value.Guard)
		b.Linef("out.%s = %s", f.Name, value.Expr)
		b.Close()
	} else {
		b.Linef("out.%s = %s", f.Name, value.Expr)
	}

	b.Close()
	return true
}

// embedded appends the call parsing the promoted fields of an inline
// embedded struct from the same object.
func (e *Engine) embedded(b *Block, f *analyze.FieldInfo) {
	target, pointer := f.Type, false
	if target.Kind == analyze.TypeKindPointer {
		target, pointer = target.Elem, true
	}

	p, ok := e.parserOf(target)
	if !ok {
		b.Comment("%s: embedded %s has no parser", f.Name, analyze.Describe(f.Type))
		e.diags.AddWarning(diagnostic.CodeUnhandledShape,
			"embedded "+analyze.Describe(f.Type)+" has no parser", e.unit, f.Name)
		return
	}

	if pointer {
		b.Open("if out.%s == nil", f.Name)
		b.Linef("out.%s = new(%s)", f.Name, e.typeString(target))
		b.Close()
		b.Open("if err := %s(node, out.%s); err != nil", p.into, f.Name)
	} else {
		b.Open("if err := %s(node, &out.%s); err != nil", p.into, f.Name)
	}
	b.Linef("return err")
	b.Close()
}
