package module

import (
	"errors"
	"strings"
	"testing"
)

func TestSchemaDrift(t *testing.T) {
	tests := []struct {
		name        string
		existing    []string
		declared    []string
		wantMissing string
		wantExtra   string
	}{
		{
			name:     "same columns",
			existing: []string{"id", "title", "created_at", "updated_at"},
			declared: []string{"id", "title", "created_at", "updated_at"},
		},
		{
			name:     "order is ignored",
			existing: []string{"id", "price", "title"},
			declared: []string{"id", "title", "price"},
		},
		{
			name:        "added field",
			existing:    []string{"id", "title"},
			declared:    []string{"id", "title", "price"},
			wantMissing: "price",
		},
		{
			name:      "removed field",
			existing:  []string{"id", "title", "price"},
			declared:  []string{"id", "title"},
			wantExtra: "price",
		},
		{
			name:        "renamed field",
			existing:    []string{"id", "name"},
			declared:    []string{"id", "title"},
			wantMissing: "title",
			wantExtra:   "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing, extra := SchemaDrift(tt.existing, tt.declared)
			if got := strings.Join(missing, ","); got != tt.wantMissing {
				t.Errorf("missing = %q, want %q", got, tt.wantMissing)
			}
			if got := strings.Join(extra, ","); got != tt.wantExtra {
				t.Errorf("extra = %q, want %q", got, tt.wantExtra)
			}
		})
	}
}

func TestCheckSchema(t *testing.T) {
	if err := CheckSchema("products", []string{"id", "title"}, []string{"title", "id"}); err != nil {
		t.Errorf("CheckSchema() error = %v, want nil", err)
	}

	err := CheckSchema("products", []string{"id", "title"}, []string{"id", "title", "price"})
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("CheckSchema() error = %v, want ErrSchemaMismatch", err)
	}
	if !strings.Contains(err.Error(), "table products (missing price)") {
		t.Errorf("CheckSchema() error = %q, want it to name the missing column", err.Error())
	}
}
