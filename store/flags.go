package store

import (
	"encoding/json"
	"sort"
)

// Flags is a set of free-form order flags, written as a sorted JSON array.
type Flags map[string]struct{}

// NewFlags builds a set from names.
func NewFlags(names ...string) Flags {
	f := make(Flags, len(names))
	for _, n := range names {
		f[n] = struct{}{}
	}

	return f
}

func (f Flags) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, len(f))
	for n := range f {
		names = append(names, n)
	}
	sort.Strings(names)

	return json.Marshal(names)
}
