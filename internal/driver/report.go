package driver

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"treeparse/internal/analyze"
	"treeparse/internal/diagnostic"
)

// Report is the printable summary of an analysis.
type Report struct {
	Roots       []string       `yaml:"roots"`
	Types       []ReportType   `yaml:"types"`
	Custom      []ReportCustom `yaml:"custom,omitempty"`
	Skipped     []ReportSkip   `yaml:"skipped,omitempty"`
	Diagnostics []string       `yaml:"diagnostics,omitempty"`
}

// ReportType is one type that gets a generated parser.
type ReportType struct {
	Unit     string   `yaml:"unit"`
	Type     string   `yaml:"type"`
	Kind     string   `yaml:"kind"`
	Fields   []string `yaml:"fields,omitempty"`
	Subtypes []string `yaml:"subtypes,omitempty"`
}

// ReportCustom is a type parsed by a hand-written parser.
type ReportCustom struct {
	Unit   string `yaml:"unit"`
	Type   string `yaml:"type"`
	Parser string `yaml:"parser,omitempty"`
}

// ReportSkip is a reachable type left out of generation.
type ReportSkip struct {
	Type   string `yaml:"type"`
	Reason string `yaml:"reason"`
}

// NewReport summarizes a.
func NewReport(a *Analysis) *Report {
	c := a.Closure
	r := &Report{}

	for _, root := range c.Roots {
		r.Roots = append(r.Roots, root.ID.String())
	}

	for _, t := range c.Types {
		rt := ReportType{Unit: c.Name(t), Type: analyze.Describe(t), Kind: t.Kind.String()}
		if !t.IsNamed() {
			rt.Type = "struct{...}"
		}
		for _, f := range t.Fields {
			if !f.Exported || f.Ignored() {
				continue
			}
			rt.Fields = append(rt.Fields, f.JSONName()+" "+analyze.Describe(f.Type))
		}
		if t.Poly != nil {
			for _, s := range t.Poly.Subtypes {
				rt.Subtypes = append(rt.Subtypes, s.Name+" "+s.TypeName)
			}
		}
		r.Types = append(r.Types, rt)
	}

	for _, t := range c.Custom {
		rc := ReportCustom{Unit: c.Name(t), Type: analyze.Describe(t)}
		if loc, ok := a.Registry.Lookup(c.Name(t)); ok {
			rc.Parser = loc.ImportPath + "." + loc.IntoFunc()
		}
		r.Custom = append(r.Custom, rc)
	}

	for _, s := range c.Skipped {
		r.Skipped = append(r.Skipped, ReportSkip{Type: s.Type, Reason: string(s.Reason)})
	}

	r.Diagnostics = diagnosticLines(c.Diagnostics)
	return r
}

// WriteText prints r for people.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "roots: %s\n", strings.Join(r.Roots, ", "))
	fmt.Fprintf(&b, "\n%d generated parser(s):\n", len(r.Types))
	for _, t := range r.Types {
		fmt.Fprintf(&b, "  %s (%s %s)\n", t.Unit, t.Kind, t.Type)
		for _, f := range t.Fields {
			fmt.Fprintf(&b, "    %s\n", f)
		}
		for _, s := range t.Subtypes {
			fmt.Fprintf(&b, "    _type %s\n", s)
		}
	}

	if len(r.Custom) > 0 {
		fmt.Fprintf(&b, "\n%d custom parser(s):\n", len(r.Custom))
		for _, c := range r.Custom {
			fmt.Fprintf(&b, "  %s -> %s\n", c.Type, c.Parser)
		}
	}

	if len(r.Skipped) > 0 {
		fmt.Fprintf(&b, "\nskipped:\n")
		for _, s := range r.Skipped {
			fmt.Fprintf(&b, "  %s: %s\n", s.Type, s.Reason)
		}
	}

	if len(r.Diagnostics) > 0 {
		fmt.Fprintf(&b, "\ndiagnostics:\n")
		for _, d := range r.Diagnostics {
			fmt.Fprintf(&b, "  %s\n", d)
		}
	}

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "writing report")
}

// WriteYAML prints r as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "encoding report")
	}

	return errors.Wrap(enc.Close(), "encoding report")
}

func diagnosticLines(d diagnostic.Diagnostics) []string {
	var lines []string
	for _, group := range [][]diagnostic.Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			lines = append(lines, diag.Severity.String()+": "+diag.String())
		}
	}

	return lines
}
