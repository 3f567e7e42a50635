package analyze

import (
	"strings"

	"github.com/cockroachdb/errors"

	"treeparse/internal/common"
)

// DirectivePrefix starts every generator directive. Like //go: directives the
// comment has no space after the slashes, so it stays out of rendered docs.
const DirectivePrefix = "//treeparse:"

// DefaultDiscriminator is the field read when an interface declares subtypes
// without naming the discriminator.
const DefaultDiscriminator = "type"

// Directives are the generator settings declared in a type's doc comment.
type Directives struct {
	Discriminator string
	Subtypes      []SubtypeDirective
}

// SubtypeDirective maps one discriminator value to a concrete type name.
type SubtypeDirective struct {
	Name string
	Type string
}

// ParseDirectives reads //treeparse: lines out of raw comment text.
// Lines that are not directives are ignored. Malformed directives are
// reported together; the well-formed ones are still returned.
//
//	//treeparse:discriminator _type
//	//treeparse:subtype TypeA Card
//	//treeparse:subtype TypeB other/pkg.Transfer
func ParseDirectives(lines []string) (Directives, error) {
	var (
		d    Directives
		errs []string
		seen = make(map[string]struct{})
	)

	for _, line := range lines {
		body, ok := strings.CutPrefix(strings.TrimSpace(line), DirectivePrefix)
		if !ok {
			continue
		}

		verb, rest, _ := strings.Cut(body, " ")
		args := strings.Fields(rest)

		switch verb {
		case "discriminator":
			if !common.IsSingle(args) {
				errs = append(errs, "discriminator takes one field name: "+line)
				continue
			}
			d.Discriminator = args[0]

		case "subtype":
			if len(args) != 2 {
				errs = append(errs, "subtype takes a name and a type: "+line)
				continue
			}
			if _, dup := seen[args[0]]; dup {
				errs = append(errs, "duplicate subtype name "+args[0])
				continue
			}
			seen[args[0]] = struct{}{}
			d.Subtypes = append(d.Subtypes, SubtypeDirective{Name: args[0], Type: args[1]})

		default:
			errs = append(errs, "unknown directive "+verb)
		}
	}

	if !common.IsEmpty(d.Subtypes) && d.Discriminator == "" {
		d.Discriminator = DefaultDiscriminator
	}

	if len(errs) > 0 {
		return d, errors.Newf("invalid directives: %s", strings.Join(errs, "; "))
	}

	return d, nil
}

// SplitTypeName splits "import/path.Name" into its package path and type name.
func SplitTypeName(qualified string) (pkgPath, name string, ok bool) {
	i := strings.LastIndex(qualified, ".")
	if i <= 0 || i < strings.LastIndex(qualified, "/") || i == len(qualified)-1 {
		return "", "", false
	}

	return qualified[:i], qualified[i+1:], true
}
