package scaffold

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Naming holds every naming variant derived from a module name.
type Naming struct {
	TypeName       string // PascalCase: "ProductCategory"
	CollectionName string // plural snake_case: "product_categories"
	HandlerName    string // "ProductCategoryHandler"
	RouteSegment   string // URL segment under the admin prefix
	VariableName   string // camelCase singular: "productCategory"
	FileName       string // snake_case singular: "product_category"
	Label          string // menu label
}

// DeriveNaming turns a raw module name into its naming variants.
// It is a pure function of name.
func DeriveNaming(name string) (Naming, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Naming{}, ErrEmptyName
	}

	typeName := ToPascalCase(name)
	collection := Pluralize(ToSnakeCase(name))

	return Naming{
		TypeName:       typeName,
		CollectionName: collection,
		HandlerName:    typeName + "Handler",
		RouteSegment:   collection,
		VariableName:   ToCamelCase(name),
		FileName:       ToSnakeCase(name),
		Label:          typeName,
	}, nil
}

var titleCaser = cases.Title(language.English)

// FieldLabel returns the display label of a field identifier:
// "due_at" -> "Due At".
func FieldLabel(identifier string) string {
	return titleCaser.String(strings.ReplaceAll(identifier, "_", " "))
}

// ToPascalCase converts a string to PascalCase. Existing upper-case runs are
// preserved, so "HTTPServer" stays as is.
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(withFirst(w, unicode.ToUpper))
	}
	return b.String()
}

// ToCamelCase converts a string to camelCase.
func ToCamelCase(s string) string {
	return withFirst(ToPascalCase(s), unicode.ToLower)
}

// ToSnakeCase converts a string to snake_case.
func ToSnakeCase(s string) string {
	return strings.ToLower(strings.Join(words(s), "_"))
}

func withFirst(w string, fn func(rune) rune) string {
	r, n := utf8.DecodeRuneInString(w)
	if n == 0 {
		return w
	}
	return string(fn(r)) + w[n:]
}

// words breaks a name at separators and at lower-to-upper transitions:
// "blog_post", "blog-post" and "BlogPost" all split into blog and post.
func words(s string) []string {
	var out []string
	var cur []rune
	var prev rune
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && !unicode.IsUpper(prev):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()
	return out
}

// Pluralize returns the plural form of a snake_case word. Only the last
// segment is inflected: "product_category" -> "product_categories".
func Pluralize(s string) string {
	if s == "" {
		return s
	}
	idx := strings.LastIndex(s, "_")
	return s[:idx+1] + inflect.Pluralize(s[idx+1:])
}
