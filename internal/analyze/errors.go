package analyze

import (
	"fmt"
	"strings"
)

// TypeNotFoundError reports a root type that no loaded package declares.
type TypeNotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("type %q not found", e.Name)
}

// UnsupportedTypeError reports a field whose type, or a type nested in it,
// cannot be parsed from a JSON tree.
type UnsupportedTypeError struct {
	Declaring string // declaring type, e.g. "treeparse/warehouse.Shipment"
	Field     string // Go field name, empty for type-level problems
	Offending string // the refused type as written
	Reason    string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: unsupported type %s: %s", e.Declaring, e.Offending, e.Reason)
	}

	return fmt.Sprintf("field %s.%s: unsupported type %s: %s", e.Declaring, e.Field, e.Offending, e.Reason)
}

// UnsupportedTypesError collects every UnsupportedTypeError of one analysis
// so they can all be fixed in a single pass.
type UnsupportedTypesError struct {
	Errs []*UnsupportedTypeError
}

func (e *UnsupportedTypesError) Error() string {
	lines := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		lines[i] = "  " + err.Error()
	}

	return fmt.Sprintf("%d unsupported type(s):\n%s", len(e.Errs), strings.Join(lines, "\n"))
}

func (e *UnsupportedTypesError) Unwrap() []error {
	out := make([]error, len(e.Errs))
	for i, err := range e.Errs {
		out[i] = err
	}

	return out
}
