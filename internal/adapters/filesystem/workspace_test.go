package filesystem_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/crudgen/internal/adapters/filesystem"
)

func newAdapter(t *testing.T) (*filesystem.WorkspaceAdapter, string) {
	t.Helper()
	tmpDir := t.TempDir()
	adapter, err := filesystem.NewWorkspaceAdapter(tmpDir)
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}
	return adapter, tmpDir
}

func TestWorkspaceAdapter_WriteAndExists(t *testing.T) {
	adapter, tmpDir := newAdapter(t)
	ctx := context.Background()

	exists, err := adapter.Exists(ctx, "internal/models/product.go")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected file to not exist")
	}

	if err := adapter.Write(ctx, "internal/models/product.go", "package models\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	exists, err = adapter.Exists(ctx, "internal/models/product.go")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected file to exist")
	}

	content, err := os.ReadFile(filepath.Join(tmpDir, "internal", "models", "product.go"))
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if string(content) != "package models\n" {
		t.Errorf("unexpected content: %q", content)
	}

	// Overwrite replaces content
	if err := adapter.Write(ctx, "internal/models/product.go", "package models // v2\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	content, _ = os.ReadFile(filepath.Join(tmpDir, "internal", "models", "product.go"))
	if !strings.Contains(string(content), "v2") {
		t.Errorf("expected overwritten content, got %q", content)
	}
}

func TestWorkspaceAdapter_InsertBefore(t *testing.T) {
	adapter, _ := newAdapter(t)
	ctx := context.Background()

	routes := "package routes\n\nfunc RegisterAdmin() {\n\t// crudgen:routes\n}\n"
	if err := adapter.Write(ctx, "routes.go", routes); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if err := adapter.InsertBefore(ctx, "routes.go", "// crudgen:routes", "first()"); err != nil {
		t.Fatalf("InsertBefore failed: %v", err)
	}
	if err := adapter.InsertBefore(ctx, "routes.go", "// crudgen:routes", "second()\n"); err != nil {
		t.Fatalf("InsertBefore failed: %v", err)
	}

	ok, err := adapter.Contains(ctx, "routes.go", "\tfirst()\n\tsecond()\n\t// crudgen:routes\n")
	if err != nil {
		t.Fatalf("Contains failed: %v", err)
	}
	if !ok {
		t.Error("expected snippets inserted in order with the marker's indentation")
	}
}

func TestWorkspaceAdapter_InsertBeforeMissingMarker(t *testing.T) {
	adapter, _ := newAdapter(t)
	ctx := context.Background()

	if err := adapter.Write(ctx, "routes.go", "package routes\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	err := adapter.InsertBefore(ctx, "routes.go", "// crudgen:routes", "first()")
	if err == nil || !strings.Contains(err.Error(), "marker") {
		t.Errorf("expected marker error, got %v", err)
	}

	if err := adapter.InsertBefore(ctx, "missing.go", "// crudgen:routes", "first()"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWorkspaceAdapter_ContainsMissingFile(t *testing.T) {
	adapter, _ := newAdapter(t)

	ok, err := adapter.Contains(context.Background(), "missing.go", "anything")
	if err != nil {
		t.Fatalf("Contains failed: %v", err)
	}
	if ok {
		t.Error("expected missing file to contain nothing")
	}
}

func TestWorkspaceAdapter_Glob(t *testing.T) {
	adapter, _ := newAdapter(t)
	ctx := context.Background()

	for _, p := range []string{
		"db/migrations/20260101000000_create_products_table.sql",
		"db/migrations/20260101000001_create_orders_table.sql",
	} {
		if err := adapter.Write(ctx, p, "--"); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	matches, err := adapter.Glob(ctx, "db/migrations/*_create_products_table.sql")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 1 || matches[0] != "db/migrations/20260101000000_create_products_table.sql" {
		t.Errorf("unexpected matches: %v", matches)
	}
}

func TestNewWorkspaceAdapter_InvalidRoot(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := filesystem.NewWorkspaceAdapter(file); err == nil {
		t.Error("expected error for file root")
	}
	if _, err := filesystem.NewWorkspaceAdapter(filepath.Join(tmpDir, "missing")); err == nil {
		t.Error("expected error for missing root")
	}
}
