package analyze

import (
	"fmt"
	"strings"
	"unicode"

	"treeparse/internal/diagnostic"
)

// Closure is the result of analysis: the types to generate parsers for, in
// deterministic discovery order, and the reachable types left out.
type Closure struct {
	Roots       []*TypeInfo
	Types       []*TypeInfo // generatable, depth-first discovery order
	Custom      []*TypeInfo // reachable types with hand-written parsers
	Skipped     []Skipped
	Diagnostics diagnostic.Diagnostics

	names map[*TypeInfo]string
}

// Name returns the unit name of t: the type name, Enclosing_Field for
// anonymous structs, or a package-qualified name when two packages declare
// the same type name.
func (c *Closure) Name(t *TypeInfo) string {
	if name, ok := c.names[t]; ok {
		return name
	}

	return baseName(t)
}

// Contains reports whether t gets a generated parser.
func (c *Closure) Contains(t *TypeInfo) bool {
	for _, x := range c.Types {
		if x == t {
			return true
		}
	}

	return false
}

// IsCustom reports whether t is parsed by a hand-written parser.
func (c *Closure) IsCustom(t *TypeInfo) bool {
	for _, x := range c.Custom {
		if x == t {
			return true
		}
	}

	return false
}

// Merge combines the closures of several roots. Shared types appear once, in
// the order they were first discovered, and unit names are assigned again
// over the union.
func Merge(closures ...*Closure) *Closure {
	out := &Closure{}
	seenType := make(map[*TypeInfo]struct{})
	seenSkip := make(map[Skipped]struct{})

	addTypes := func(dst *[]*TypeInfo, src []*TypeInfo) {
		for _, t := range src {
			if _, ok := seenType[t]; ok {
				continue
			}
			seenType[t] = struct{}{}
			*dst = append(*dst, t)
		}
	}

	for _, c := range closures {
		if c == nil {
			continue
		}

		out.Roots = append(out.Roots, c.Roots...)
		addTypes(&out.Custom, c.Custom)
		addTypes(&out.Types, c.Types)

		for _, s := range c.Skipped {
			if _, ok := seenSkip[s]; ok {
				continue
			}
			seenSkip[s] = struct{}{}
			out.Skipped = append(out.Skipped, s)
		}

		out.Diagnostics.Merge(c.Diagnostics)
	}

	out.Diagnostics.Dedupe()
	out.names = assignNames(out.Custom, out.Types)
	return out
}

// assignNames gives every type a unique unit name. Custom types go first so
// they keep the simple names their hand-written parsers were found under.
func assignNames(groups ...[]*TypeInfo) map[*TypeInfo]string {
	names := make(map[*TypeInfo]string)
	used := make(map[string]*TypeInfo)

	for _, group := range groups {
		for _, t := range group {
			name := unitName(t, names)
			if other, taken := used[name]; taken && other != t {
				qualified := exportedIdent(t.PkgName) + name
				name = qualified
				for n := 2; used[name] != nil; n++ {
					name = fmt.Sprintf("%s%d", qualified, n)
				}
			}

			used[name] = t
			names[t] = name
		}
	}

	return names
}

func unitName(t *TypeInfo, names map[*TypeInfo]string) string {
	if t.IsInner() && t.Enclosing != nil {
		enclosing, ok := names[t.Enclosing]
		if !ok {
			enclosing = unitName(t.Enclosing, names)
		}
		return enclosing + "_" + t.EnclosingField
	}

	return baseName(t)
}

// baseName is the unit name of t before collision handling.
func baseName(t *TypeInfo) string {
	if t.IsInner() && t.Enclosing != nil {
		return baseName(t.Enclosing) + "_" + t.EnclosingField
	}

	return t.ID.Name
}

func exportedIdent(s string) string {
	if s == "" {
		return "Pkg"
	}

	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return -1
	}, string(r))
}
