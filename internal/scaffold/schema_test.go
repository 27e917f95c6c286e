package scaffold

import (
	"strings"
	"testing"
	"time"
)

func TestSynthesizeSchema(t *testing.T) {
	spec, err := BuildModuleSpec("Product", "title:text,price:integer")
	if err != nil {
		t.Fatalf("BuildModuleSpec() error = %v", err)
	}

	desc := SynthesizeSchema(spec)
	if desc.Table != "products" {
		t.Errorf("Table = %q, want %q", desc.Table, "products")
	}

	want := []string{"id", "title", "price", "created_at", "updated_at"}
	got := desc.ColumnNames()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("ColumnNames() = %v, want %v", got, want)
	}

	sql := desc.SQL()
	wantSQL := `CREATE TABLE "products" (` + "\n" +
		"\t" + `"id" INTEGER PRIMARY KEY AUTOINCREMENT,` + "\n" +
		"\t" + `"title" VARCHAR(255) NOT NULL,` + "\n" +
		"\t" + `"price" INTEGER NOT NULL,` + "\n" +
		"\t" + `"created_at" DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,` + "\n" +
		"\t" + `"updated_at" DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP` + "\n" +
		");\n"
	if sql != wantSQL {
		t.Errorf("SQL() =\n%s\nwant\n%s", sql, wantSQL)
	}
}

func TestSynthesizeSchemaColumnKinds(t *testing.T) {
	spec, err := BuildModuleSpec("Event", "body:longText,public:boolean,day:date,starts_at:datetime")
	if err != nil {
		t.Fatalf("BuildModuleSpec() error = %v", err)
	}

	sql := SynthesizeSchema(spec).SQL()
	for _, want := range []string{
		`"body" TEXT NOT NULL`,
		`"public" BOOLEAN NOT NULL`,
		`"day" DATE NOT NULL`,
		`"starts_at" DATETIME NOT NULL`,
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("SQL() missing %q:\n%s", want, sql)
		}
	}
}

func TestMenuTableDescriptor(t *testing.T) {
	desc := MenuTableDescriptor()
	if desc.Table != MenuTable {
		t.Errorf("Table = %q, want %q", desc.Table, MenuTable)
	}

	sql := desc.SQL()
	for _, want := range []string{
		`"slug" VARCHAR(255) NOT NULL UNIQUE`,
		`"label" VARCHAR(255) NOT NULL`,
		`"order_no" INTEGER NOT NULL DEFAULT 0`,
		`"is_active" BOOLEAN NOT NULL DEFAULT 1`,
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("SQL() missing %q:\n%s", want, sql)
		}
	}
}

func TestMigrationFile(t *testing.T) {
	spec, _ := BuildModuleSpec("Product", "title:text")
	desc := SynthesizeSchema(spec)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	file := MigrationFile(DefaultOptions(), desc, now)

	if file.Path != "db/migrations/20260102030405_create_products_table.sql" {
		t.Errorf("Path = %q", file.Path)
	}
	if file.Operation != OpCreate {
		t.Errorf("Operation = %q, want %q", file.Operation, OpCreate)
	}
	if !strings.Contains(file.Content, desc.SQL()) {
		t.Error("Content does not contain the CREATE TABLE statement")
	}
	if !strings.Contains(file.Content, `DROP TABLE IF EXISTS "products";`) {
		t.Error("Content does not contain the down statement")
	}

	pattern := MigrationPattern(DefaultOptions(), "products")
	if pattern != "db/migrations/*_create_products_table.sql" {
		t.Errorf("MigrationPattern() = %q", pattern)
	}
}
