package diagnostic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"treeparse/internal/common"
)

// Diagnostic codes.
const (
	CodeTypeNotFound    = "TYPE_NOT_FOUND"
	CodeUnsupportedType = "UNSUPPORTED_TYPE"
	CodeCustomParser    = "CUSTOM_PARSER"
	CodeEnumDrop        = "ENUM_DROP"
	CodeUnhandledShape  = "UNHANDLED_SHAPE"
	CodeWildcardMap     = "WILDCARD_MAP"
	CodePackageError    = "PACKAGE_ERROR"
)

// Diagnostics holds all diagnostic information from one run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Type is the fully qualified type this relates to (if any).
	Type string
	// Field identifies which field this relates to (if any).
	Field string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typeName, field string) {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, typeName, field))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typeName, field string) {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, typeName, field))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typeName, field string) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, typeName, field))
}

func newDiagnostic(sev DiagnosticSeverity, code, message, typeName, field string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Type:     typeName,
		Field:    field,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Dedupe drops repeated diagnostics, which appear when closures of several
// roots overlap, and orders each severity by type and field.
func (d *Diagnostics) Dedupe() {
	d.Errors = dedupe(d.Errors)
	d.Warnings = dedupe(d.Warnings)
	d.Infos = dedupe(d.Infos)
}

func dedupe(in []Diagnostic) []Diagnostic {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, diag := range in {
		key := diag.Code + "\x00" + diag.Type + "\x00" + diag.Field + "\x00" + diag.Message
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, diag)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Field < out[j].Field
	})

	return out
}

// ByCode returns the diagnostics of every severity carrying code.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var out []Diagnostic
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Code == code {
				out = append(out, diag)
			}
		}
	}

	return out
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.Newf("%d error(s): %s", len(d.Errors), strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Type != "" {
		prefix = append(prefix, "["+d.Type+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
