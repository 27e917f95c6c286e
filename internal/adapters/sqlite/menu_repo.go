package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/crudgen/internal/ports/secondary"
	"github.com/example/crudgen/internal/scaffold"
)

const menuColumns = "id, slug, label, order_no, is_active, created_at, updated_at"

// MenuRepository implements secondary.MenuRepository with SQLite.
type MenuRepository struct {
	db *sql.DB
}

// NewMenuRepository creates a new SQLite menu repository.
func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenuEntry(row rowScanner) (*secondary.MenuEntryRecord, error) {
	var (
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.MenuEntryRecord{}
	err := row.Scan(&record.ID, &record.Slug, &record.Label, &record.OrderNo, &record.IsActive, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// InsertIfAbsent adds a menu entry for slug unless one exists. The slug
// lookup, the order number and the insert run in one transaction so two
// concurrent runs cannot hand out the same order number.
func (r *MenuRepository) InsertIfAbsent(ctx context.Context, slug, label string) (*secondary.MenuEntryRecord, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := scanMenuEntry(tx.QueryRowContext(ctx,
		"SELECT "+menuColumns+" FROM "+scaffold.MenuTable+" WHERE slug = ?",
		slug,
	))
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to get menu entry: %w", err)
	}

	var maxOrder int
	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(order_no), 0) FROM "+scaffold.MenuTable,
	).Scan(&maxOrder)
	if err != nil {
		return nil, false, fmt.Errorf("failed to compute menu order: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		"INSERT INTO "+scaffold.MenuTable+" (slug, label, order_no, is_active) VALUES (?, ?, ?, 1)",
		slug, label, maxOrder+1,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert menu entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, false, fmt.Errorf("failed to get menu entry id: %w", err)
	}

	record, err := scanMenuEntry(tx.QueryRowContext(ctx,
		"SELECT "+menuColumns+" FROM "+scaffold.MenuTable+" WHERE id = ?",
		id,
	))
	if err != nil {
		return nil, false, fmt.Errorf("failed to read menu entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit menu entry: %w", err)
	}
	return record, true, nil
}

// GetBySlug retrieves a menu entry by slug.
func (r *MenuRepository) GetBySlug(ctx context.Context, slug string) (*secondary.MenuEntryRecord, error) {
	record, err := scanMenuEntry(r.db.QueryRowContext(ctx,
		"SELECT "+menuColumns+" FROM "+scaffold.MenuTable+" WHERE slug = ?",
		slug,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("menu entry %s not found", slug)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu entry: %w", err)
	}
	return record, nil
}

// List retrieves menu entries ordered by order number.
func (r *MenuRepository) List(ctx context.Context, activeOnly bool) ([]*secondary.MenuEntryRecord, error) {
	query := "SELECT " + menuColumns + " FROM " + scaffold.MenuTable
	if activeOnly {
		query += " WHERE is_active = 1"
	}
	query += " ORDER BY order_no, id"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu entries: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.MenuEntryRecord
	for rows.Next() {
		record, err := scanMenuEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu entry: %w", err)
		}
		entries = append(entries, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu entries: %w", err)
	}

	return entries, nil
}

// Ensure MenuRepository implements the interface
var _ secondary.MenuRepository = (*MenuRepository)(nil)
