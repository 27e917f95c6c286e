package app

import (
	"context"
	"fmt"

	"github.com/example/crudgen/internal/core/module"
	"github.com/example/crudgen/internal/output"
	"github.com/example/crudgen/internal/ports/primary"
	"github.com/example/crudgen/internal/ports/secondary"
	"github.com/example/crudgen/internal/scaffold"
)

// ScaffoldServiceImpl implements the ScaffoldService interface.
type ScaffoldServiceImpl struct {
	gen        *scaffold.Generator
	schemaRepo secondary.SchemaRepository
	menuRepo   secondary.MenuRepository
	workspace  secondary.Workspace
}

// NewScaffoldService creates a new ScaffoldService with injected dependencies.
func NewScaffoldService(
	gen *scaffold.Generator,
	schemaRepo secondary.SchemaRepository,
	menuRepo secondary.MenuRepository,
	workspace secondary.Workspace,
) *ScaffoldServiceImpl {
	return &ScaffoldServiceImpl{
		gen:        gen,
		schemaRepo: schemaRepo,
		menuRepo:   menuRepo,
		workspace:  workspace,
	}
}

// PlanModule reports what GenerateModule would do without side effects.
func (s *ScaffoldServiceImpl) PlanModule(ctx context.Context, req primary.GenerateModuleRequest) (*primary.GenerateModuleResponse, error) {
	req.DryRun = true
	return s.GenerateModule(ctx, req)
}

// GenerateModule generates a module: schema, migration, model, menu entry,
// handler, views, layout and route. A failing step stops the run; files
// already written stay in place.
func (s *ScaffoldServiceImpl) GenerateModule(ctx context.Context, req primary.GenerateModuleRequest) (*primary.GenerateModuleResponse, error) {
	spec, err := scaffold.NewModuleSpec(req.Name, req.Fields)
	if err != nil {
		return nil, err
	}

	log := output.ModuleLogger(spec.Name)
	if spec.DefaultedFields {
		log.Warn("No fields given, using default field", "field", fmt.Sprintf("%s:%s", scaffold.DefaultField.Identifier, scaffold.DefaultField.Type))
	}

	guardCtx, err := s.inspect(ctx, spec)
	if err != nil {
		return nil, err
	}
	guardCtx.Force = req.Force

	guard := module.CanGenerate(guardCtx)
	if err := guard.Error(); err != nil {
		return nil, err
	}
	if len(guard.Conflicts) > 0 {
		log.Warn("Regenerating existing module", "conflicts", len(guard.Conflicts))
	}

	if guardCtx.TableExists {
		// The table is never re-applied, so regenerated code must match it.
		columns, err := s.schemaRepo.Columns(ctx, guardCtx.Table)
		if err != nil {
			return nil, fmt.Errorf("failed to read columns of %s: %w", guardCtx.Table, err)
		}
		if err := module.CheckSchema(guardCtx.Table, columns, scaffold.SynthesizeSchema(spec).ColumnNames()); err != nil {
			return nil, err
		}
	}

	menuExists, err := s.schemaRepo.HasTable(ctx, scaffold.MenuTable)
	if err != nil {
		return nil, fmt.Errorf("failed to check menu table: %w", err)
	}

	plan := module.PlanGeneration(module.PlanInput{
		MenuTableExists: menuExists,
		Guard:           guardCtx,
		DryRun:          req.DryRun,
	})

	resp := &primary.GenerateModuleResponse{
		Module:          spec.Name,
		Table:           spec.Naming.CollectionName,
		Fields:          spec.Fields,
		DefaultedFields: spec.DefaultedFields,
		Conflicts:       guard.Conflicts,
		DryRun:          req.DryRun,
	}

	if plan.Bootstrap {
		if err := s.bootstrap(ctx, plan, resp); err != nil {
			return nil, err
		}
	}

	artifacts, err := s.gen.GenerateModule(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to generate module: %w", err)
	}

	if plan.WriteMigration {
		if err := s.apply(ctx, plan, resp, artifacts.Migration); err != nil {
			return nil, err
		}
	}
	if err := s.apply(ctx, plan, resp, artifacts.Model); err != nil {
		return nil, err
	}

	if plan.ApplySchema {
		if err := s.applySchema(ctx, plan, resp, artifacts.Schema); err != nil {
			return nil, err
		}
	} else {
		log.Debug("Table exists, schema not re-applied", "table", artifacts.Schema.Table)
	}

	if !plan.DryRun {
		entry, inserted, err := s.menuRepo.InsertIfAbsent(ctx, spec.Naming.RouteSegment, spec.Naming.Label)
		if err != nil {
			return nil, fmt.Errorf("failed to register menu entry: %w", err)
		}
		resp.Menu = recordToMenuEntry(entry)
		resp.MenuInserted = inserted
		if inserted {
			log.Info("Menu entry added", "slug", entry.Slug, "order", entry.OrderNo)
		}
	}

	if err := s.apply(ctx, plan, resp, artifacts.Handler); err != nil {
		return nil, err
	}
	for _, v := range artifacts.Views {
		if err := s.apply(ctx, plan, resp, v); err != nil {
			return nil, err
		}
	}

	layout, err := s.gen.Layout()
	if err != nil {
		return nil, fmt.Errorf("failed to generate layout: %w", err)
	}
	for _, f := range layout {
		if err := s.apply(ctx, plan, resp, f); err != nil {
			return nil, err
		}
	}

	if plan.InsertRoute {
		if err := s.apply(ctx, plan, resp, artifacts.Route); err != nil {
			return nil, err
		}
		resp.RouteAdded = true
	} else {
		log.Debug("Route already registered", "file", artifacts.Route.Path)
	}

	resp.NextSteps = s.gen.NextSteps(spec)
	return resp, nil
}

// inspect gathers the pre-existing artifacts of a module for the guard.
func (s *ScaffoldServiceImpl) inspect(ctx context.Context, spec *scaffold.ModuleSpec) (module.GuardContext, error) {
	opts := s.gen.Options()
	table := spec.Naming.CollectionName
	guardCtx := module.GuardContext{Module: spec.Name, Table: table}

	var err error
	if guardCtx.TableExists, err = s.schemaRepo.HasTable(ctx, table); err != nil {
		return guardCtx, fmt.Errorf("failed to check table %s: %w", table, err)
	}
	if guardCtx.MigrationExists, err = s.migrationExists(ctx, table); err != nil {
		return guardCtx, err
	}
	if guardCtx.HandlerExists, err = s.workspace.Exists(ctx, scaffold.HandlerPath(opts, spec)); err != nil {
		return guardCtx, fmt.Errorf("failed to check handler: %w", err)
	}
	if guardCtx.RouteRegistered, err = s.workspace.Contains(ctx, opts.RoutesFile, scaffold.RouteDeclaration(opts, spec)); err != nil {
		return guardCtx, fmt.Errorf("failed to check routes: %w", err)
	}
	return guardCtx, nil
}

func (s *ScaffoldServiceImpl) migrationExists(ctx context.Context, table string) (bool, error) {
	matches, err := s.workspace.Glob(ctx, scaffold.MigrationPattern(s.gen.Options(), table))
	if err != nil {
		return false, fmt.Errorf("failed to check migrations for %s: %w", table, err)
	}
	return len(matches) > 0, nil
}

// bootstrap creates the menu table with its migration and model.
func (s *ScaffoldServiceImpl) bootstrap(ctx context.Context, plan module.Plan, resp *primary.GenerateModuleResponse) error {
	output.Info("Bootstrapping menu table", "table", scaffold.MenuTable)

	boot, err := s.gen.Bootstrap()
	if err != nil {
		return fmt.Errorf("failed to generate menu bootstrap: %w", err)
	}

	exists, err := s.migrationExists(ctx, scaffold.MenuTable)
	if err != nil {
		return err
	}
	if !exists {
		if err := s.apply(ctx, plan, resp, boot.Migration); err != nil {
			return err
		}
	}
	if err := s.apply(ctx, plan, resp, boot.Model); err != nil {
		return err
	}
	return s.applySchema(ctx, plan, resp, boot.Schema)
}

func (s *ScaffoldServiceImpl) applySchema(ctx context.Context, plan module.Plan, resp *primary.GenerateModuleResponse, desc *scaffold.SchemaDescriptor) error {
	if !plan.DryRun {
		output.Info("Applying schema", "table", desc.Table)
		if err := s.schemaRepo.Apply(ctx, desc.Table, desc.SQL()); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	resp.AppliedTables = append(resp.AppliedTables, desc.Table)
	return nil
}

// apply writes one generated file according to its operation and records
// what happened. On dry runs it only records.
func (s *ScaffoldServiceImpl) apply(ctx context.Context, plan module.Plan, resp *primary.GenerateModuleResponse, f scaffold.GeneratedFile) error {
	action, err := s.actionFor(ctx, f)
	if err != nil {
		return err
	}
	resp.Files = append(resp.Files, primary.FileChange{Path: f.Path, Action: action})

	if plan.DryRun || action == primary.FileSkipped {
		return nil
	}

	output.Debug("Writing file", "path", f.Path, "action", action)
	if f.Operation == scaffold.OpInsertBefore {
		err = s.workspace.InsertBefore(ctx, f.Path, f.InsertAt, f.Content)
	} else {
		err = s.workspace.Write(ctx, f.Path, f.Content)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	return nil
}

func (s *ScaffoldServiceImpl) actionFor(ctx context.Context, f scaffold.GeneratedFile) (primary.FileAction, error) {
	if f.Operation == scaffold.OpInsertBefore {
		return primary.FileModified, nil
	}

	exists, err := s.workspace.Exists(ctx, f.Path)
	if err != nil {
		return "", fmt.Errorf("failed to check %s: %w", f.Path, err)
	}
	switch {
	case !exists:
		return primary.FileCreated, nil
	case f.Operation == scaffold.OpCreateIfAbsent:
		return primary.FileSkipped, nil
	default:
		return primary.FileOverwritten, nil
	}
}

func recordToMenuEntry(r *secondary.MenuEntryRecord) *primary.MenuEntry {
	return &primary.MenuEntry{
		ID:        r.ID,
		Slug:      r.Slug,
		Label:     r.Label,
		OrderNo:   r.OrderNo,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
	}
}

// Ensure ScaffoldServiceImpl implements the interface
var _ primary.ScaffoldService = (*ScaffoldServiceImpl)(nil)
