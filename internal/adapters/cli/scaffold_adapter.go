// Package cli contains the adapters that translate CLI operations to
// primary port calls and print their results.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/crudgen/internal/ports/primary"
	"github.com/example/crudgen/internal/scaffold"
)

// ScaffoldAdapter is a thin adapter that translates CLI operations to ScaffoldService calls.
// It depends only on the ScaffoldService interface, enabling easy testing with mocks.
type ScaffoldAdapter struct {
	service primary.ScaffoldService
	out     io.Writer
}

// NewScaffoldAdapter creates a new ScaffoldAdapter with the given service.
func NewScaffoldAdapter(service primary.ScaffoldService, out io.Writer) *ScaffoldAdapter {
	return &ScaffoldAdapter{
		service: service,
		out:     out,
	}
}

// Make generates a module and prints a summary of what changed.
func (a *ScaffoldAdapter) Make(ctx context.Context, req primary.GenerateModuleRequest) (*primary.GenerateModuleResponse, error) {
	var (
		resp *primary.GenerateModuleResponse
		err  error
	)
	if req.DryRun {
		resp, err = a.service.PlanModule(ctx, req)
	} else {
		resp, err = a.service.GenerateModule(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	a.printSummary(resp)
	return resp, nil
}

// Plan previews a module without side effects.
func (a *ScaffoldAdapter) Plan(ctx context.Context, req primary.GenerateModuleRequest) (*primary.GenerateModuleResponse, error) {
	req.DryRun = true
	return a.Make(ctx, req)
}

func (a *ScaffoldAdapter) printSummary(resp *primary.GenerateModuleResponse) {
	fmt.Fprintf(a.out, "Module %s (table %s) with fields: %s\n", resp.Module, resp.Table, formatFields(resp.Fields))
	if resp.DryRun {
		fmt.Fprintln(a.out, "(dry-run mode - no files written, database untouched)")
	}
	fmt.Fprintln(a.out)

	for _, table := range resp.AppliedTables {
		fmt.Fprintf(a.out, "%s Table %s\n", actionIcon(primary.FileCreated), table)
	}
	for _, f := range resp.Files {
		fmt.Fprintf(a.out, "%s %s %s\n", actionIcon(f.Action), actionLabel(f.Action), f.Path)
	}

	if resp.Menu != nil {
		if resp.MenuInserted {
			fmt.Fprintf(a.out, "%s Menu entry %s (order %d)\n", actionIcon(primary.FileCreated), resp.Menu.Slug, resp.Menu.OrderNo)
		} else {
			fmt.Fprintf(a.out, "%s Menu entry %s exists\n", actionIcon(primary.FileSkipped), resp.Menu.Slug)
		}
	}

	if len(resp.NextSteps) > 0 {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Next steps:")
		for i, step := range resp.NextSteps {
			fmt.Fprintf(a.out, "  %d. %s\n", i+1, step)
		}
	}
}

func formatFields(fields []scaffold.FieldSpec) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s(%s)", f.Identifier, f.Type)
	}
	return strings.Join(parts, ", ")
}

func actionIcon(action primary.FileAction) string {
	if action == primary.FileSkipped {
		return color.New(color.FgYellow).Sprint("-")
	}
	return color.New(color.FgGreen).Sprint("✓")
}

func actionLabel(action primary.FileAction) string {
	switch action {
	case primary.FileCreated:
		return "Created "
	case primary.FileOverwritten:
		return color.New(color.FgYellow).Sprint("Replaced")
	case primary.FileModified:
		return "Modified"
	default:
		return "Exists  "
	}
}
