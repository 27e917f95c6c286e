package module

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSchemaMismatch is returned when a forced run would regenerate code for
// columns the existing table does not have, or drop columns it has.
var ErrSchemaMismatch = errors.New("table schema differs from module fields")

// SchemaDrift compares the columns of an existing table with the columns a
// module declares. Order is ignored.
func SchemaDrift(existing, declared []string) (missing, extra []string) {
	have := make(map[string]bool, len(existing))
	for _, c := range existing {
		have[c] = true
	}
	want := make(map[string]bool, len(declared))
	for _, c := range declared {
		want[c] = true
		if !have[c] {
			missing = append(missing, c)
		}
	}
	for _, c := range existing {
		if !want[c] {
			extra = append(extra, c)
		}
	}
	return missing, extra
}

// CheckSchema returns ErrSchemaMismatch when the existing table of a module
// does not hold exactly the declared columns.
func CheckSchema(table string, existing, declared []string) error {
	missing, extra := SchemaDrift(existing, declared)
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}

	var details []string
	if len(missing) > 0 {
		details = append(details, "missing "+strings.Join(missing, ", "))
	}
	if len(extra) > 0 {
		details = append(details, "not declared "+strings.Join(extra, ", "))
	}
	return fmt.Errorf("%w: table %s (%s). Add a migration for the change or keep the existing fields",
		ErrSchemaMismatch, table, strings.Join(details, "; "))
}
