package jsontree

import (
	"fmt"
	"strconv"
	"strings"
)

// TypeError reports a raw value of the wrong JSON kind.
type TypeError struct {
	Expected string
	Got      string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

// RangeError reports a number that does not fit the target Go type.
type RangeError struct {
	Value  string
	Target string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %s out of range for %s", e.Value, e.Target)
}

// DiscriminatorError reports a polymorphic value whose discriminator field is
// missing or not a string.
type DiscriminatorError struct {
	Field  string
	Reason string
}

func (e *DiscriminatorError) Error() string {
	return fmt.Sprintf("discriminator %q: %s", e.Field, e.Reason)
}

// UnknownSubtypeError reports a discriminator value with no declared subtype.
type UnknownSubtypeError struct {
	Base  string
	Field string
	Value string
	Known []string
}

func (e *UnknownSubtypeError) Error() string {
	return fmt.Sprintf("unknown %s subtype %q in field %q (known: %s)",
		e.Base, e.Value, e.Field, strings.Join(e.Known, ", "))
}

// PathError attaches the location of the failing value to an error.
type PathError struct {
	Path []string
	Err  error
}

func (e *PathError) Error() string {
	return e.Location() + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Location renders the path, e.g. "items[2].price".
func (e *PathError) Location() string {
	var b strings.Builder
	for _, seg := range e.Path {
		if b.Len() > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}

	return b.String()
}

// Wrap prefixes the location of err with segments. Nested wraps merge into a
// single PathError so the outermost caller sees the full path.
func Wrap(err error, segments ...string) error {
	if err == nil {
		return nil
	}

	if len(segments) == 0 {
		return err
	}

	if pe, ok := err.(*PathError); ok {
		path := make([]string, 0, len(segments)+len(pe.Path))
		path = append(path, segments...)
		path = append(path, pe.Path...)
		return &PathError{Path: path, Err: pe.Err}
	}

	return &PathError{Path: append([]string(nil), segments...), Err: err}
}

// Index renders an array position as a path segment.
func Index(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}
