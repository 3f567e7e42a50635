package synth

import (
	"strconv"
	"strings"
	"unicode"

	"treeparse/internal/analyze"
)

// Matchers names the functions mapping raw values onto enum constants. One
// set is shared by all files of a run; the functions are emitted once, in a
// file of their own.
type Matchers struct {
	names map[*analyze.TypeInfo]string
	used  map[string]bool
	order []*analyze.TypeInfo
}

// NewMatchers creates an empty set.
func NewMatchers() *Matchers {
	return &Matchers{
		names: make(map[*analyze.TypeInfo]string),
		used:  make(map[string]bool),
	}
}

// Func returns the match function name of enum t, registering it on first use.
func (m *Matchers) Func(t *analyze.TypeInfo) string {
	if name, ok := m.names[t]; ok {
		return name
	}

	name := "match" + t.ID.Name
	if m.used[name] {
		base := "match" + capitalize(t.PkgName) + t.ID.Name
		name = base
		for n := 2; m.used[name]; n++ {
			name = base + strconv.Itoa(n)
		}
	}

	m.used[name] = true
	m.names[t] = name
	m.order = append(m.order, t)
	return name
}

// Types returns the registered enums in first-use order.
func (m *Matchers) Types() []*analyze.TypeInfo {
	return m.order
}

// Len returns the number of registered enums.
func (m *Matchers) Len() int {
	return len(m.order)
}

func (e *Engine) enum(b *Block, t *analyze.TypeInfo, access string, level int) Fragment {
	n := NamesAt(level)

	if t.Kind == analyze.TypeKindPointer {
		b.Linef("%s, %s := %s(%s)", n.Enum, n.Matched, e.matchers.Func(t.Elem), access)
		b.Linef("%s := &%s", n.Value, n.Enum)
		if level > 1 {
			// null elements read as nil
			b.Open("if %s == nil", access)
			b.Linef("%s, %s = nil, true", n.Value, n.Matched)
			b.Close()
		}
		return Fragment{Expr: n.Value, Guard: n.Matched}
	}

	b.Linef("%s, %s := %s(%s)", n.Value, n.Matched, e.matchers.Func(t), access)
	return Fragment{Expr: n.Value, Guard: n.Matched}
}

// Matcher renders the match function of enum t. String enums match their
// values, integer enums their constant names or numbers, and enums
// implementing encoding.TextUnmarshaler go through UnmarshalText.
func (e *Engine) Matcher(t *analyze.TypeInfo) []string {
	name := e.matchers.Func(t)
	pkg := e.imports.Add(t.ID.PkgPath, t.PkgName)

	b := e.NewBlock(0)
	b.Comment("%s maps a raw value onto a %s constant.", name, analyze.Describe(t))
	b.Open("func %s(node any) (value %s, ok bool)", name, e.typeString(t))

	switch {
	case t.TextUnmarshaler:
		b.Linef("text, isText := node.(string)")
		b.Open("if !isText")
		b.Linef("return value, false")
		b.Close()
		b.Open("if err := value.UnmarshalText([]byte(text)); err != nil")
		b.Linef("return value, false")
		b.Close()
		b.Linef("return value, true")

	case t.IsNumeric():
		b.Open("switch text, _ := %s.EnumText(node); text", e.rt)
		for _, v := range t.Enum {
			b.Linef("case %s, %s:", strconv.Quote(v.Wire), strconv.Quote(v.Number))
			b.Linef("\treturn %s, true", qualify(pkg, v.Const))
		}
		b.Close()
		b.Linef("return value, false")

	default:
		b.Open("switch node")
		for _, v := range t.Enum {
			b.Linef("case %s:", strconv.Quote(v.Wire))
			b.Linef("\treturn %s, true", qualify(pkg, v.Const))
		}
		b.Close()
		b.Linef("return value, false")
	}

	b.Close()
	return b.Lines()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, string(r))
}
