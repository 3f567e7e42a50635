package gen

import (
	"text/template"

	"treeparse/internal/synth"
)

// unitTemplateData holds all data needed for the unit template.
type unitTemplateData struct {
	Header      string
	PackageName string
	Runtime     string
	Unit        *synth.Unit
	Imports     []synth.ImportSpec
}

// IsStruct, IsInterface and IsPolymorphic let the template branch on the unit kind.
func (d *unitTemplateData) IsStruct() bool      { return d.Unit.Kind == synth.UnitStruct }
func (d *unitTemplateData) IsInterface() bool   { return d.Unit.Kind == synth.UnitInterface }
func (d *unitTemplateData) IsPolymorphic() bool { return d.Unit.Kind == synth.UnitPolymorphic }

// enumsTemplateData holds the match functions of one run.
type enumsTemplateData struct {
	Header      string
	PackageName string
	Imports     []synth.ImportSpec
	Funcs       []string
}

const importsBlock = `{{define "imports"}}{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}{{end}}`

var unitTemplate = template.Must(template.New("unit").Parse(importsBlock + `{{.Header}}

package {{.PackageName}}
{{template "imports" .}}
{{- with .Unit}}
// Parse{{.Name}} reads the {{.Doc}} in a JSON document. Empty input and null read as nil.
func Parse{{.Name}}(data []byte) ({{.Result}}, error) {
	if {{$.Runtime}}.IsNull(data) {
		return nil, nil
	}

	node, err := {{$.Runtime}}.Decode(data)
	if err != nil {
		return nil, err
	}

	return Parse{{.Name}}Node(node)
}

// Parse{{.Name}}Node reads the {{.Doc}} in a raw tree.
{{- if $.IsPolymorphic}}
// The concrete type is selected by the discriminator field.
func Parse{{.Name}}Node(node any) ({{.Result}}, error) {
{{range .Node}}{{.}}
{{end -}}
}
{{- else if $.IsInterface}}
// It has no declared subtypes and always yields nil.
func Parse{{.Name}}Node(node any) ({{.Result}}, error) {
	return nil, nil
}
{{- else}}
func Parse{{.Name}}Node(node any) ({{.Result}}, error) {
	if node == nil {
		return nil, nil
	}

	out := new({{.Type}})
	if err := Parse{{.Name}}Into(node, out); err != nil {
		return nil, err
	}

	return out, nil
}
{{- end}}

// Parse{{.Name}}Into reads the fields present in node into out.
func Parse{{.Name}}Into(node any, out *{{.Type}}) error {
	if node == nil {
		return nil
	}
{{if $.IsStruct}}
{{range .Into}}{{.}}
{{end}}
	return nil
{{- else}}
	value, err := Parse{{.Name}}Node(node)
	if err != nil {
		return err
	}

	*out = value
	return nil
{{- end}}
}
{{- end}}
`))

var enumsTemplate = template.Must(template.New("enums").Parse(importsBlock + `{{.Header}}

package {{.PackageName}}
{{template "imports" .}}
{{range .Funcs}}
{{.}}
{{end}}`))
