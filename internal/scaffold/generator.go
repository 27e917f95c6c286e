package scaffold

import (
	"fmt"
	"time"
)

// Generator renders every artifact of a module from a ModuleSpec.
type Generator struct {
	opts Options
	now  func() time.Time
}

// NewGenerator creates a new Generator for a project layout.
func NewGenerator(opts Options) *Generator {
	return &Generator{
		opts: opts,
		now:  time.Now,
	}
}

// Options returns the project layout the generator renders for.
func (g *Generator) Options() Options {
	return g.opts
}

// ModuleArtifacts holds everything rendered for one module.
type ModuleArtifacts struct {
	Schema    *SchemaDescriptor
	Migration GeneratedFile
	Model     GeneratedFile
	Handler   GeneratedFile
	Views     []GeneratedFile
	Route     GeneratedFile
}

// Files returns the artifacts written as whole files, in write order.
func (a *ModuleArtifacts) Files() []GeneratedFile {
	files := []GeneratedFile{a.Migration, a.Model, a.Handler}
	return append(files, a.Views...)
}

// BootstrapArtifacts holds what the menu table needs before the first module.
type BootstrapArtifacts struct {
	Schema    *SchemaDescriptor
	Migration GeneratedFile
	Model     GeneratedFile
}

// Bootstrap renders the menu table migration and model.
func (g *Generator) Bootstrap() (*BootstrapArtifacts, error) {
	desc := MenuTableDescriptor()
	model, err := EmitMenuModel(g.opts)
	if err != nil {
		return nil, err
	}
	return &BootstrapArtifacts{
		Schema:    desc,
		Migration: MigrationFile(g.opts, desc, g.now()),
		Model:     model,
	}, nil
}

// GenerateModule renders the schema, migration, model, handler, views and
// route declaration of a module.
func (g *Generator) GenerateModule(spec *ModuleSpec) (*ModuleArtifacts, error) {
	desc := SynthesizeSchema(spec)

	model, err := EmitModel(g.opts, spec)
	if err != nil {
		return nil, err
	}

	handler, err := EmitHandler(g.opts, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to render handler: %w", err)
	}

	views, err := RenderViews(g.opts, spec)
	if err != nil {
		return nil, err
	}

	return &ModuleArtifacts{
		Schema:    desc,
		Migration: MigrationFile(g.opts, desc, g.now()),
		Model:     model,
		Handler:   handler,
		Views:     views,
		Route:     EmitRoute(g.opts, spec),
	}, nil
}

// Layout renders the files shared by every module.
func (g *Generator) Layout() ([]GeneratedFile, error) {
	return LayoutFiles(g.opts)
}

// NextSteps returns the hints shown after a module is generated.
func (g *Generator) NextSteps(spec *ModuleSpec) []string {
	return []string{
		fmt.Sprintf("Call routes.RegisterAdmin(mux, db) from your server if you have not yet (%s)", g.opts.RoutesFile),
		fmt.Sprintf("Visit %s to manage %s", CollectionURL(g.opts, spec), spec.Naming.CollectionName),
		fmt.Sprintf("Review validation in %s", HandlerPath(g.opts, spec)),
	}
}
