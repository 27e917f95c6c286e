package app

import (
	"context"
	"fmt"

	"github.com/example/crudgen/internal/ports/primary"
	"github.com/example/crudgen/internal/ports/secondary"
	"github.com/example/crudgen/internal/scaffold"
)

// MenuServiceImpl implements the MenuService interface.
type MenuServiceImpl struct {
	schemaRepo secondary.SchemaRepository
	menuRepo   secondary.MenuRepository
}

// NewMenuService creates a new MenuService with injected dependencies.
func NewMenuService(schemaRepo secondary.SchemaRepository, menuRepo secondary.MenuRepository) *MenuServiceImpl {
	return &MenuServiceImpl{
		schemaRepo: schemaRepo,
		menuRepo:   menuRepo,
	}
}

// ListMenu lists menu entries. A project without a menu table has none.
func (s *MenuServiceImpl) ListMenu(ctx context.Context, filters primary.MenuFilters) ([]*primary.MenuEntry, error) {
	exists, err := s.schemaRepo.HasTable(ctx, scaffold.MenuTable)
	if err != nil {
		return nil, fmt.Errorf("failed to check menu table: %w", err)
	}
	if !exists {
		return nil, nil
	}

	records, err := s.menuRepo.List(ctx, filters.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}

	entries := make([]*primary.MenuEntry, len(records))
	for i, r := range records {
		entries[i] = recordToMenuEntry(r)
	}
	return entries, nil
}

// Ensure MenuServiceImpl implements the interface
var _ primary.MenuService = (*MenuServiceImpl)(nil)
