package scaffold

import (
	"bytes"
	"fmt"
	"path"

	scaffoldtmpl "github.com/example/crudgen/internal/templates/scaffold"
)

// FormPartial is the page-independent snippet holding the field inputs.
// Create and edit both include it, so their field order and labels match.
const FormPartial = "_form"

// viewPages maps emitted view files to their templates, in emission order.
var viewPages = []struct {
	file     string
	template string
}{
	{FormPartial, "form"},
	{"index", "index"},
	{"create", "create"},
	{"edit", "edit"},
}

// viewField is one field as seen by the view templates.
type viewField struct {
	Identifier string
	Label      string
	GoName     string
	Input      string
	Value      string // html/template expression filling the input
	Display    string // html/template expression for the list cell
}

type viewData struct {
	Title   string
	Label   string
	BaseURL string
	Fields  []viewField
}

// ViewsDir returns the directory holding a module's templates.
func ViewsDir(opts Options, spec *ModuleSpec) string {
	return path.Join(opts.ViewsDir, opts.AdminPrefix, spec.Naming.CollectionName)
}

// RenderViews renders the list, create and edit templates of a module and
// the form partial they share.
func RenderViews(opts Options, spec *ModuleSpec) ([]GeneratedFile, error) {
	data := newViewData(opts, spec)
	dir := ViewsDir(opts, spec)

	files := make([]GeneratedFile, 0, len(viewPages))
	for _, p := range viewPages {
		content, err := renderView(p.template, data)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s view: %w", p.file, err)
		}
		files = append(files, GeneratedFile{
			Path:      path.Join(dir, p.file+".html"),
			Content:   content,
			Operation: OpCreate,
		})
	}
	return files, nil
}

func newViewData(opts Options, spec *ModuleSpec) viewData {
	base := CollectionURL(opts, spec)
	data := viewData{
		Title:   FieldLabel(spec.Naming.CollectionName),
		Label:   spec.Naming.Label,
		BaseURL: base,
	}
	for _, f := range spec.Fields {
		data.Fields = append(data.Fields, viewField{
			Identifier: f.Identifier,
			Label:      f.Label(),
			GoName:     f.GoName(),
			Input:      f.Type.InputKind(),
			Value:      valueExpr(f),
			Display:    displayExpr(f),
		})
	}
	return data
}

// valueExpr returns the expression that fills a form control. Numeric and
// time values are left blank on the create form (zero ID).
func valueExpr(f FieldSpec) string {
	name := "." + f.GoName()
	switch f.Type {
	case TypeInteger:
		return "{{if .ID}}{{" + name + "}}{{end}}"
	case TypeDate:
		return `{{if .ID}}{{` + name + `.Format "2006-01-02"}}{{end}}`
	case TypeDatetime:
		return `{{if .ID}}{{` + name + `.Format "2006-01-02T15:04"}}{{end}}`
	default:
		return "{{" + name + "}}"
	}
}

// displayExpr returns the expression shown in a list cell.
func displayExpr(f FieldSpec) string {
	name := "." + f.GoName()
	switch f.Type {
	case TypeBoolean:
		return "{{if " + name + "}}Yes{{else}}No{{end}}"
	case TypeDate:
		return `{{` + name + `.Format "2006-01-02"}}`
	case TypeDatetime:
		return `{{` + name + `.Format "2006-01-02 15:04"}}`
	default:
		return "{{" + name + "}}"
	}
}

func renderView(name string, data viewData) (string, error) {
	content, err := scaffoldtmpl.GetViewTemplate(name)
	if err != nil {
		return "", err
	}
	return execute(name, content, data)
}

func execute(name, content string, data any) (string, error) {
	tmpl, err := scaffoldtmpl.Parse(name, content)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
