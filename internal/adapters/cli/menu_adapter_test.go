package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/crudgen/internal/ports/primary"
)

// mockMenuService implements primary.MenuService for testing
type mockMenuService struct {
	entries     []*primary.MenuEntry
	err         error
	lastFilters primary.MenuFilters
}

func (m *mockMenuService) ListMenu(ctx context.Context, filters primary.MenuFilters) ([]*primary.MenuEntry, error) {
	m.lastFilters = filters
	return m.entries, m.err
}

func TestMenuAdapter_List(t *testing.T) {
	mock := &mockMenuService{entries: []*primary.MenuEntry{
		{Slug: "products", Label: "Product", OrderNo: 1, IsActive: true},
		{Slug: "orders", Label: "Order", OrderNo: 2, IsActive: false},
	}}
	var buf bytes.Buffer
	adapter := NewMenuAdapter(mock, &buf)

	entries, err := adapter.List(context.Background(), true)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
	if !mock.lastFilters.ActiveOnly {
		t.Error("expected ActiveOnly filter to be passed")
	}

	out := buf.String()
	if !strings.Contains(out, "ORDER") || !strings.Contains(out, "products") || !strings.Contains(out, "Order") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestMenuAdapter_ListEmpty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewMenuAdapter(&mockMenuService{}, &buf)

	if _, err := adapter.List(context.Background(), false); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No menu entries found.") {
		t.Errorf("expected empty message, got:\n%s", buf.String())
	}
}

func TestMenuAdapter_ListError(t *testing.T) {
	adapter := NewMenuAdapter(&mockMenuService{err: errors.New("db error")}, &bytes.Buffer{})

	if _, err := adapter.List(context.Background(), false); err == nil {
		t.Error("expected error, got nil")
	}
}
