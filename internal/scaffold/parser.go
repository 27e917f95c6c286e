package scaffold

import (
	"fmt"
	"regexp"
	"strings"
)

var identifierRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// reservedColumns are emitted for every table and cannot be declared.
var reservedColumns = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// DefaultField is substituted when a module is declared without fields.
var DefaultField = FieldSpec{Identifier: "name", Type: TypeText}

// ParseFields parses the --fields DSL into a slice of FieldSpec.
// Format: "title:text,body:longText,price:integer"
func ParseFields(fieldsStr string) ([]FieldSpec, error) {
	if strings.TrimSpace(fieldsStr) == "" {
		return nil, nil
	}

	var fields []FieldSpec
	for _, part := range strings.Split(fieldsStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		field, err := parseField(part)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	return fields, nil
}

// parseField parses a single "name:type" specification.
func parseField(spec string) (FieldSpec, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return FieldSpec{}, fmt.Errorf("%w %q: expected 'name:type'", ErrInvalidField, spec)
	}

	fieldType, err := ParseFieldType(parts[1])
	if err != nil {
		return FieldSpec{}, fmt.Errorf("invalid field spec %q: %w", spec, err)
	}

	return FieldSpec{
		Identifier: ToSnakeCase(strings.TrimSpace(parts[0])),
		Type:       fieldType,
	}, nil
}

// ValidateIdentifier checks that s can be used as an attribute name.
func ValidateIdentifier(s string) error {
	if !identifierRe.MatchString(s) {
		return fmt.Errorf("%w %q: must be lowercase alphanumeric with underscores", ErrInvalidField, s)
	}
	if reservedColumns[s] {
		return fmt.Errorf("%w %q: column is generated automatically", ErrInvalidField, s)
	}
	return nil
}

// NewModuleSpec builds a ModuleSpec from operator input. An empty field list
// is replaced by DefaultField.
func NewModuleSpec(name string, fields []FieldSpec) (*ModuleSpec, error) {
	naming, err := DeriveNaming(name)
	if err != nil {
		return nil, err
	}
	if naming.CollectionName == MenuTable || naming.FileName == menuModelFile || naming.TypeName == menuModelType {
		return nil, fmt.Errorf("%w %q: %s backs the navigation menu", ErrReservedName, name, MenuTable)
	}

	spec := &ModuleSpec{
		Name:   naming.TypeName,
		Naming: naming,
	}

	if len(fields) == 0 {
		spec.Fields = []FieldSpec{DefaultField}
		spec.DefaultedFields = true
		return spec, nil
	}

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if err := ValidateIdentifier(f.Identifier); err != nil {
			return nil, err
		}
		if _, ok := typeTable[f.Type]; !ok {
			return nil, fmt.Errorf("field %q: %w %q", f.Identifier, ErrUnknownFieldType, f.Type)
		}
		if seen[f.Identifier] {
			return nil, fmt.Errorf("%w %q: declared twice", ErrInvalidField, f.Identifier)
		}
		seen[f.Identifier] = true
		spec.Fields = append(spec.Fields, f)
	}

	return spec, nil
}

// BuildModuleSpec builds a ModuleSpec from a name and the --fields DSL.
func BuildModuleSpec(name, fieldsStr string) (*ModuleSpec, error) {
	fields, err := ParseFields(fieldsStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fields: %w", err)
	}
	return NewModuleSpec(name, fields)
}
