// Package primary defines the primary ports (driving adapters) for the application.
package primary

import (
	"context"

	"github.com/example/crudgen/internal/scaffold"
)

// ScaffoldService defines the primary port for module generation.
type ScaffoldService interface {
	// GenerateModule generates a module and registers it in the project.
	GenerateModule(ctx context.Context, req GenerateModuleRequest) (*GenerateModuleResponse, error)

	// PlanModule reports what GenerateModule would do without writing
	// files or touching the database.
	PlanModule(ctx context.Context, req GenerateModuleRequest) (*GenerateModuleResponse, error)
}

// GenerateModuleRequest contains parameters for generating a module.
type GenerateModuleRequest struct {
	Name   string
	Fields []scaffold.FieldSpec // Empty means the default field
	Force  bool                 // Regenerate over existing artifacts
	DryRun bool
}

// FileAction describes what a run did to a file.
type FileAction string

const (
	FileCreated     FileAction = "created"
	FileOverwritten FileAction = "overwritten"
	FileSkipped     FileAction = "skipped"
	FileModified    FileAction = "modified"
)

// FileChange records one file touched (or planned) by a run.
type FileChange struct {
	Path   string
	Action FileAction
}

// GenerateModuleResponse contains the result of module generation.
type GenerateModuleResponse struct {
	Module          string
	Table           string
	Fields          []scaffold.FieldSpec
	DefaultedFields bool
	Conflicts       []string // Pre-existing artifacts a forced run regenerated
	Files           []FileChange
	AppliedTables   []string
	Menu            *MenuEntry // Nil on dry runs
	MenuInserted    bool
	RouteAdded      bool
	DryRun          bool
	NextSteps       []string
}
