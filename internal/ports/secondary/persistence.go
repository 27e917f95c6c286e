// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// SchemaRepository defines the secondary port for schema management in the
// target database.
type SchemaRepository interface {
	// HasTable reports whether a table exists.
	HasTable(ctx context.Context, table string) (bool, error)

	// Columns returns the column names of a table in declaration order.
	Columns(ctx context.Context, table string) ([]string, error)

	// Apply executes the DDL of a table in one transaction.
	Apply(ctx context.Context, table, ddl string) error
}

// MenuRepository defines the secondary port for navigation menu persistence.
type MenuRepository interface {
	// InsertIfAbsent adds an entry for slug unless one exists. The returned
	// bool is true when a row was inserted. The order number is computed in
	// the same transaction as the insert.
	InsertIfAbsent(ctx context.Context, slug, label string) (*MenuEntryRecord, bool, error)

	// GetBySlug retrieves an entry by slug.
	GetBySlug(ctx context.Context, slug string) (*MenuEntryRecord, error)

	// List retrieves entries ordered by order number.
	List(ctx context.Context, activeOnly bool) ([]*MenuEntryRecord, error)
}

// MenuEntryRecord represents a menu entry as stored in persistence.
type MenuEntryRecord struct {
	ID        int64
	Slug      string
	Label     string
	OrderNo   int
	IsActive  bool
	CreatedAt string
	UpdatedAt string
}
