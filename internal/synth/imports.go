package synth

import (
	"fmt"
	"go/types"
	"path"
	"sort"

	"treeparse/internal/analyze"
	"treeparse/internal/common"
)

// ImportSpec is one import line of a generated file.
type ImportSpec struct {
	Alias string // empty when the last path element already names the package
	Path  string
}

// reserved are identifiers generated code declares; packages named like
// them are imported under a suffixed alias.
var reserved = []string{"node", "out", "obj", "raw", "ok", "err", "data", "kind", "sub", "value", "text", "isText"}

// ImportSet collects the imports of one generated file and renders types
// qualified by the aliases it assigns.
type ImportSet struct {
	self    string
	aliases map[string]string // import path -> alias
	taken   map[string]bool
}

// NewImportSet creates an ImportSet for a file in the package with import path self.
func NewImportSet(self string) *ImportSet {
	s := &ImportSet{
		self:    self,
		aliases: make(map[string]string),
		taken:   make(map[string]bool),
	}
	for _, name := range reserved {
		s.taken[name] = true
	}

	return s
}

// Add imports importPath and returns the qualifier to use for it, which is
// empty for the file's own package. name is the package clause; when empty
// it is derived from the path.
func (s *ImportSet) Add(importPath, name string) string {
	if importPath == "" || importPath == s.self {
		return ""
	}

	if alias, ok := s.aliases[importPath]; ok {
		return alias
	}

	if name == "" {
		name = common.PkgAlias(importPath)
	}

	alias := name
	for n := 2; s.taken[alias]; n++ {
		alias = fmt.Sprintf("%s%d", name, n)
	}

	s.aliases[importPath] = alias
	s.taken[alias] = true
	return alias
}

// Specs returns the collected imports sorted by path.
func (s *ImportSet) Specs() []ImportSpec {
	specs := make([]ImportSpec, 0, len(s.aliases))
	for p, alias := range s.aliases {
		spec := ImportSpec{Path: p}
		if alias != path.Base(p) {
			spec.Alias = alias
		}
		specs = append(specs, spec)
	}

	sort.Slice(specs, func(i, j int) bool { return specs[i].Path < specs[j].Path })
	return specs
}

// TypeString renders t as Go source, importing every package it mentions.
func (s *ImportSet) TypeString(t *analyze.TypeInfo) string {
	if t == nil || t.GoType == nil {
		return "any"
	}

	return types.TypeString(t.GoType, func(p *types.Package) string {
		return s.Add(p.Path(), p.Name())
	})
}

func qualify(alias, name string) string {
	if alias == "" {
		return name
	}

	return alias + "." + name
}
