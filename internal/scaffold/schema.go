package scaffold

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// MenuTable is the collection that tracks navigation entries.
const MenuTable = "admin_menus"

// Column describes one column of a schema descriptor.
type Column struct {
	Name       string
	Kind       string
	PrimaryKey bool
	Unique     bool
	Nullable   bool
	Default    string // SQL literal, empty for none
}

// SchemaDescriptor is a declarative description of a table, applied once.
type SchemaDescriptor struct {
	Table   string
	Columns []Column
}

// ColumnNames returns the column names in order.
func (d *SchemaDescriptor) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// SQL renders the descriptor as a SQLite CREATE TABLE statement.
func (d *SchemaDescriptor) SQL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", QuoteIdent(d.Table))
	for i, c := range d.Columns {
		b.WriteString("\t")
		b.WriteString(c.definition())
		if i < len(d.Columns)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(");\n")
	return b.String()
}

func (c Column) definition() string {
	parts := []string{QuoteIdent(c.Name), c.Kind}
	if c.PrimaryKey {
		parts = append(parts, "PRIMARY KEY AUTOINCREMENT")
	} else if !c.Nullable {
		parts = append(parts, "NOT NULL")
	}
	if c.Unique {
		parts = append(parts, "UNIQUE")
	}
	if c.Default != "" {
		parts = append(parts, "DEFAULT "+c.Default)
	}
	return strings.Join(parts, " ")
}

// QuoteIdent quotes a table or column name for SQLite, so identifiers that
// are also keywords ("order", "group") stay usable.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func idColumn() Column {
	return Column{Name: "id", Kind: "INTEGER", PrimaryKey: true}
}

func timestampColumns() []Column {
	return []Column{
		{Name: "created_at", Kind: "DATETIME", Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Kind: "DATETIME", Default: "CURRENT_TIMESTAMP"},
	}
}

// MenuTableDescriptor returns the bootstrap descriptor for the menu table.
func MenuTableDescriptor() *SchemaDescriptor {
	cols := []Column{
		idColumn(),
		{Name: "slug", Kind: "VARCHAR(255)", Unique: true},
		{Name: "label", Kind: "VARCHAR(255)"},
		{Name: "order_no", Kind: "INTEGER", Default: "0"},
		{Name: "is_active", Kind: "BOOLEAN", Default: "1"},
	}
	return &SchemaDescriptor{
		Table:   MenuTable,
		Columns: append(cols, timestampColumns()...),
	}
}

// SynthesizeSchema returns the descriptor for a module's table: an identity
// column, one column per field and the timestamps.
func SynthesizeSchema(spec *ModuleSpec) *SchemaDescriptor {
	cols := []Column{idColumn()}
	for _, f := range spec.Fields {
		cols = append(cols, Column{Name: f.Identifier, Kind: f.Type.ColumnKind()})
	}
	return &SchemaDescriptor{
		Table:   spec.Naming.CollectionName,
		Columns: append(cols, timestampColumns()...),
	}
}

// MigrationPattern matches migration files creating table.
func MigrationPattern(opts Options, table string) string {
	return path.Join(opts.MigrationsDir, fmt.Sprintf("*_create_%s_table.sql", table))
}

// MigrationFile renders a descriptor as a timestamped migration file.
func MigrationFile(opts Options, desc *SchemaDescriptor, now time.Time) GeneratedFile {
	name := fmt.Sprintf("%s_create_%s_table.sql", now.UTC().Format("20060102150405"), desc.Table)
	content := fmt.Sprintf("-- Scaffolded by crudgen.\n\n%s\n-- down\nDROP TABLE IF EXISTS %s;\n", desc.SQL(), QuoteIdent(desc.Table))
	return GeneratedFile{
		Path:      path.Join(opts.MigrationsDir, name),
		Content:   content,
		Operation: OpCreate,
	}
}
