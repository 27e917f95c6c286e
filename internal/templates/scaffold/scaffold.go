// Package scaffold provides templates for code generation.
//
// Templates use [[ ]] delimiters so that the html/template actions they emit
// ({{ }}) pass through untouched.
package scaffold

import (
	"embed"
	"text/template"
)

//go:embed views/*.tmpl layout/*.tmpl
var scaffoldTemplates embed.FS

// Delimiters used by every scaffold template.
const (
	LeftDelim  = "[["
	RightDelim = "]]"
)

// GetViewTemplate returns the content of a view template ("index", "create",
// "edit" or "form").
func GetViewTemplate(name string) (string, error) {
	content, err := scaffoldTemplates.ReadFile("views/" + name + ".html.tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// GetLayoutTemplate returns the content of a layout template ("admin.html",
// "runtime.go" or "routes.go").
func GetLayoutTemplate(name string) (string, error) {
	content, err := scaffoldTemplates.ReadFile("layout/" + name + ".tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Parse parses content as the named template using the scaffold delimiters.
func Parse(name, content string) (*template.Template, error) {
	return template.New(name).Delims(LeftDelim, RightDelim).Option("missingkey=error").Parse(content)
}
