package gen

import (
	"text/template"

	"idwire/internal/common"
)

// templateData holds all data needed for the boundary template.
type templateData struct {
	PackageName      string
	Imports          []importSpec
	Rules            []ruleData
	GenerateComments bool
}

// ruleData is one Lift/Lower pair.
type ruleData struct {
	Name       string
	DomainID   string
	DomainType string
	WireType   string
	Fallible   bool
	Doc        []string
	LiftBody   []string
	LowerBody  []string
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// Name is the identifier the package is referred to by.
func (s importSpec) Name() string {
	if s.Alias != "" {
		return s.Alias
	}

	return common.PkgAlias(s.Path)
}

var boundaryTemplate = template.Must(template.New("boundary").Parse(`// Code generated by idwire. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
// BoundaryRule names a domain type and the primitive it crosses the boundary as.
type BoundaryRule struct {
	Name    string
	Domain  string
	Wire    string
	Checked bool
}

// BoundaryRules lists every rule of this file, ordered by name.
var BoundaryRules = []BoundaryRule{
{{range .Rules}}	{Name: "{{.Name}}", Domain: "{{.DomainID}}", Wire: "{{.WireType}}", Checked: {{.Fallible}}},
{{end}}}
{{range .Rules}}
{{if $.GenerateComments}}// Lift{{.Name}} converts the wire form of {{.Name}} into {{.DomainType}}.
{{range .Doc}}// {{.}}
{{end}}{{end}}func Lift{{.Name}}(in {{.WireType}}) (out {{.DomainType}}{{if .Fallible}}, err error{{end}}) {
{{range .LiftBody}}	{{.}}
{{end}}
	return out{{if .Fallible}}, nil{{end}}
}

{{if $.GenerateComments}}// Lower{{.Name}} converts {{.DomainType}} into its wire form.
{{range .Doc}}// {{.}}
{{end}}{{end}}func Lower{{.Name}}(in {{.DomainType}}) (out {{.WireType}}) {
{{range .LowerBody}}	{{.}}
{{end}}
	return out
}
{{end}}`))
