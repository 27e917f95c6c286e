package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/crudgen/internal/ports/primary"
)

// MenuAdapter is a thin adapter that translates CLI operations to MenuService calls.
type MenuAdapter struct {
	service primary.MenuService
	out     io.Writer
}

// NewMenuAdapter creates a new MenuAdapter with the given service.
func NewMenuAdapter(service primary.MenuService, out io.Writer) *MenuAdapter {
	return &MenuAdapter{
		service: service,
		out:     out,
	}
}

// List lists the navigation menu.
func (a *MenuAdapter) List(ctx context.Context, activeOnly bool) ([]*primary.MenuEntry, error) {
	entries, err := a.service.ListMenu(ctx, primary.MenuFilters{ActiveOnly: activeOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No menu entries found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Generate your first module:")
		fmt.Fprintln(a.out, "  crudgen make Product --fields title:text,price:integer")
		return entries, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ORDER\tSLUG\tLABEL\tACTIVE")
	fmt.Fprintln(w, "-----\t----\t-----\t------")

	for _, e := range entries {
		active := "yes"
		if !e.IsActive {
			active = "no"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.OrderNo, e.Slug, e.Label, active)
	}

	w.Flush()
	return entries, nil
}
