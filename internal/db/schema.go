package db

import "github.com/example/crudgen/internal/scaffold"

// GetSchemaSQL returns the schema crudgen itself owns: the menu table created
// by the bootstrap step. Tests load it instead of hardcoding DDL so they run
// against what a real bootstrap applies.
func GetSchemaSQL() string {
	return scaffold.MenuTableDescriptor().SQL()
}
