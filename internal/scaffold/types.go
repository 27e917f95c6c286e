// Package scaffold provides code generation for admin CRUD modules.
package scaffold

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned while building a ModuleSpec.
var (
	ErrEmptyName        = errors.New("module name is required")
	ErrInvalidField     = errors.New("invalid field")
	ErrUnknownFieldType = errors.New("unknown field type")
	ErrReservedName     = errors.New("module name is reserved")
)

// FieldType is one of the abstract field-type tokens an operator may choose.
type FieldType string

const (
	TypeText     FieldType = "text"
	TypeLongText FieldType = "longText"
	TypeInteger  FieldType = "integer"
	TypeBoolean  FieldType = "boolean"
	TypeDate     FieldType = "date"
	TypeDatetime FieldType = "datetime"
)

// FieldTypes lists every token in prompt order.
var FieldTypes = []FieldType{TypeText, TypeLongText, TypeInteger, TypeBoolean, TypeDate, TypeDatetime}

// typeInfo holds everything the emitters need to know about a token.
type typeInfo struct {
	column string // SQLite column kind
	goType string // Go type in the generated model
	input  string // HTML input kind in the form partial
}

var typeTable = map[FieldType]typeInfo{
	TypeText:     {column: "VARCHAR(255)", goType: "string", input: "text"},
	TypeLongText: {column: "TEXT", goType: "string", input: "textarea"},
	TypeInteger:  {column: "INTEGER", goType: "int64", input: "number"},
	TypeBoolean:  {column: "BOOLEAN", goType: "bool", input: "select"},
	TypeDate:     {column: "DATE", goType: "time.Time", input: "date"},
	TypeDatetime: {column: "DATETIME", goType: "time.Time", input: "datetime-local"},
}

// ParseFieldType maps user input to a FieldType. Matching is case-insensitive;
// "string" and "int" are accepted as aliases for text and integer.
func ParseFieldType(s string) (FieldType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "string":
		return TypeText, nil
	case "longtext", "long_text":
		return TypeLongText, nil
	case "integer", "int":
		return TypeInteger, nil
	case "boolean", "bool":
		return TypeBoolean, nil
	case "date":
		return TypeDate, nil
	case "datetime":
		return TypeDatetime, nil
	}
	return "", fmt.Errorf("%w %q (valid: text, longText, integer, boolean, date, datetime)", ErrUnknownFieldType, s)
}

// ColumnKind returns the persistence column kind for the token.
func (t FieldType) ColumnKind() string {
	return typeTable[t].column
}

// GoType returns the Go type used for the token in generated models.
func (t FieldType) GoType() string {
	return typeTable[t].goType
}

// InputKind returns the form control used for the token.
func (t FieldType) InputKind() string {
	return typeTable[t].input
}

// FieldSpec is one declared attribute of a module.
type FieldSpec struct {
	Identifier string    // snake_case attribute name: "due_at"
	Type       FieldType // abstract type token
}

// Label returns the human-readable label for the field.
func (f FieldSpec) Label() string {
	return FieldLabel(f.Identifier)
}

// GoName returns the exported Go field name: "due_at" -> "DueAt".
func (f FieldSpec) GoName() string {
	return ToPascalCase(f.Identifier)
}

// ModuleSpec contains all information needed to generate a module.
// It is built once per run by NewModuleSpec and not modified afterwards.
type ModuleSpec struct {
	Name   string
	Fields []FieldSpec
	Naming Naming

	// DefaultedFields is set when the operator supplied no fields and the
	// default "name" field was substituted.
	DefaultedFields bool
}

// Identifiers returns the field identifiers in declaration order.
func (m *ModuleSpec) Identifiers() []string {
	ids := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		ids[i] = f.Identifier
	}
	return ids
}

// Operation is how a GeneratedFile is applied to the workspace.
type Operation string

const (
	OpCreate         Operation = "create"
	OpCreateIfAbsent Operation = "create_if_absent"
	OpInsertBefore   Operation = "insert_before"
)

// GeneratedFile represents a file to be created or modified.
type GeneratedFile struct {
	Path      string    // File path relative to project root
	Content   string    // File content, or the snippet for insert operations
	InsertAt  string    // Marker string for insertion point
	Operation Operation // How the file is applied
}

// Options carries project layout settings the emitters need.
type Options struct {
	ModulePath    string // Go module path of the target project
	AdminPrefix   string // URL prefix, "admin"
	PageSize      int
	MigrationsDir string
	ModelsDir     string
	HandlersDir   string
	ViewsDir      string
	RoutesFile    string
}

// DefaultOptions returns the layout used when no config overrides it.
func DefaultOptions() Options {
	return Options{
		ModulePath:    "example.com/app",
		AdminPrefix:   "admin",
		PageSize:      10,
		MigrationsDir: "db/migrations",
		ModelsDir:     "internal/models",
		HandlersDir:   "internal/handlers/admin",
		ViewsDir:      "views",
		RoutesFile:    "internal/routes/admin.go",
	}
}

func (o Options) modelsImport() string {
	return o.ModulePath + "/" + o.ModelsDir
}

func (o Options) handlersImport() string {
	return o.ModulePath + "/" + o.HandlersDir
}
