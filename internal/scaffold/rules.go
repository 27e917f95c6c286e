package scaffold

import (
	"net/url"
	"strings"
)

// RequiredRule is the validation applied by generated store and update
// actions: every declared field must be present and non-blank. There are no
// per-type checks, so boolean and date fields are required like any other.
type RequiredRule struct {
	Fields []string
}

// NewRequiredRule returns the rule for a module.
func NewRequiredRule(spec *ModuleSpec) RequiredRule {
	return RequiredRule{Fields: spec.Identifiers()}
}

// Missing returns the fields absent or blank in values, in declaration order.
func (r RequiredRule) Missing(values url.Values) []string {
	var missing []string
	for _, f := range r.Fields {
		if strings.TrimSpace(values.Get(f)) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}
