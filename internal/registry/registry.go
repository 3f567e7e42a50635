package registry

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// Location is where a custom parser for one unit name is declared.
type Location struct {
	TypeName   string // unit name, e.g. "Address"
	Package    string // package clause of the declaring file
	ImportPath string
	File       string
}

// IntoFunc is the name of the custom field routine.
func (l Location) IntoFunc() string {
	return "Parse" + l.TypeName + "Into"
}

// Registry maps unit names to custom parsers. The zero value is not usable;
// create one with New.
type Registry struct {
	entries map[string]Location
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Location)}
}

// Add records loc. A name may be registered once.
func (r *Registry) Add(loc Location) error {
	if loc.TypeName == "" {
		return errors.New("custom parser without a type name")
	}

	if prev, ok := r.entries[loc.TypeName]; ok {
		return errors.Newf("custom parser for %s declared twice: %s and %s", loc.TypeName, prev.File, loc.File)
	}

	r.entries[loc.TypeName] = loc
	return nil
}

// Lookup returns the custom parser registered for name.
func (r *Registry) Lookup(name string) (Location, bool) {
	if r == nil {
		return Location{}, false
	}

	loc, ok := r.entries[name]
	return loc, ok
}

// Has reports whether name has a custom parser.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the registered unit names, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Len returns the number of registered parsers.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.entries)
}
