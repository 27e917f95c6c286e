package scaffold

import (
	"bytes"
	"fmt"
	"path"

	"github.com/dave/jennifer/jen"
)

// headerComment marks scaffolded Go files. They are meant to be edited.
const headerComment = "Scaffolded by crudgen."

// Names of the menu model emitted by the bootstrap step.
const (
	menuModelType = "AdminMenu"
	menuModelFile = "admin_menu"
)

// structField is one attribute of an emitted model struct.
type structField struct {
	goName string
	column string
	goType string
}

// EmitModel renders the model definition for a module: a struct with one
// attribute per field, the table name and the fillable attribute list.
func EmitModel(opts Options, spec *ModuleSpec) (GeneratedFile, error) {
	fields := make([]structField, len(spec.Fields))
	for i, f := range spec.Fields {
		fields[i] = structField{goName: f.GoName(), column: f.Identifier, goType: f.Type.GoType()}
	}

	return emitModel(opts, spec.Naming.FileName, spec.Naming.TypeName, spec.Naming.CollectionName, fields)
}

// EmitMenuModel renders the model definition for the menu table.
func EmitMenuModel(opts Options) (GeneratedFile, error) {
	fields := []structField{
		{goName: "Slug", column: "slug", goType: "string"},
		{goName: "Label", column: "label", goType: "string"},
		{goName: "OrderNo", column: "order_no", goType: "int64"},
		{goName: "IsActive", column: "is_active", goType: "bool"},
	}
	return emitModel(opts, menuModelFile, menuModelType, MenuTable, fields)
}

func emitModel(opts Options, fileName, typeName, table string, fields []structField) (GeneratedFile, error) {
	f := newFile(path.Base(opts.ModelsDir))

	f.Commentf("%sTable is the table backing %s.", typeName, typeName)
	f.Const().Id(typeName + "Table").Op("=").Lit(table)
	f.Line()

	f.Commentf("%sFillable lists the attributes that may be set from a request.", typeName)
	f.Var().Id(typeName + "Fillable").Op("=").Index().String().ValuesFunc(func(g *jen.Group) {
		for _, sf := range fields {
			g.Lit(sf.column)
		}
	})
	f.Line()

	members := []jen.Code{
		jen.Id("ID").Int64().Tag(map[string]string{"db": "id"}),
	}
	for _, sf := range fields {
		members = append(members, jen.Id(sf.goName).Add(goTypeCode(sf.goType)).Tag(map[string]string{
			"db":   sf.column,
			"form": sf.column,
		}))
	}
	members = append(members,
		jen.Id("CreatedAt").Qual("time", "Time").Tag(map[string]string{"db": "created_at"}),
		jen.Id("UpdatedAt").Qual("time", "Time").Tag(map[string]string{"db": "updated_at"}),
	)

	f.Commentf("%s is a row of the %s table.", typeName, table)
	f.Type().Id(typeName).Struct(members...)

	content, err := renderFile(f)
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("failed to render model %s: %w", typeName, err)
	}

	return GeneratedFile{
		Path:      path.Join(opts.ModelsDir, fileName+".go"),
		Content:   content,
		Operation: OpCreate,
	}, nil
}

// goTypeCode returns the Jennifer code for a mapped Go type.
func goTypeCode(goType string) jen.Code {
	switch goType {
	case "int64":
		return jen.Int64()
	case "bool":
		return jen.Bool()
	case "time.Time":
		return jen.Qual("time", "Time")
	default:
		return jen.String()
	}
}

// newFile creates a new Jennifer file with the header comment.
func newFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment(headerComment)
	return f
}

func renderFile(f *jen.File) (string, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
