package primary

import "context"

// MenuService defines the primary port for navigation menu queries.
type MenuService interface {
	// ListMenu lists menu entries ordered by order number.
	ListMenu(ctx context.Context, filters MenuFilters) ([]*MenuEntry, error)
}

// MenuFilters contains filter options for listing menu entries.
type MenuFilters struct {
	ActiveOnly bool
}

// MenuEntry represents a navigation menu entry.
type MenuEntry struct {
	ID        int64
	Slug      string
	Label     string
	OrderNo   int
	IsActive  bool
	CreatedAt string
}
