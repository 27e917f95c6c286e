// Package wire provides dependency injection for crudgen.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	cliadapter "github.com/example/crudgen/internal/adapters/cli"
	"github.com/example/crudgen/internal/adapters/filesystem"
	"github.com/example/crudgen/internal/adapters/sqlite"
	"github.com/example/crudgen/internal/app"
	"github.com/example/crudgen/internal/config"
	"github.com/example/crudgen/internal/db"
	"github.com/example/crudgen/internal/ports/primary"
	"github.com/example/crudgen/internal/scaffold"
)

var (
	projectRoot     = "."
	readOnly        bool
	database        *sql.DB
	scaffoldService primary.ScaffoldService
	menuService     primary.MenuService
	initErr         error
	once            sync.Once
)

// SetProjectRoot sets the directory services operate on. It must be called
// before the first service is requested.
func SetProjectRoot(root string) {
	if root != "" {
		projectRoot = root
	}
}

// SetReadOnly makes services open the project database read-only, so a
// missing database is not created. It must be called before the first
// service is requested.
func SetReadOnly(ro bool) {
	readOnly = ro
}

// ProjectRoot returns the directory services operate on.
func ProjectRoot() string {
	return projectRoot
}

// ScaffoldService returns the singleton ScaffoldService instance.
func ScaffoldService() (primary.ScaffoldService, error) {
	once.Do(initServices)
	return scaffoldService, initErr
}

// MenuService returns the singleton MenuService instance.
func MenuService() (primary.MenuService, error) {
	once.Do(initServices)
	return menuService, initErr
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	workspace, err := filesystem.NewWorkspaceAdapter(projectRoot)
	if err != nil {
		initErr = err
		return
	}

	cfg, err := config.LoadConfig(workspace.Root())
	if err != nil {
		initErr = err
		return
	}

	open := db.Open
	if readOnly {
		open = db.OpenReadOnly
	}
	database, err = open(cfg.DatabasePath(workspace.Root()))
	if err != nil {
		initErr = fmt.Errorf("failed to initialize database: %w", err)
		return
	}

	// Secondary adapters with the injected DB
	schemaRepo := sqlite.NewSchemaRepository(database)
	menuRepo := sqlite.NewMenuRepository(database)

	gen := scaffold.NewGenerator(cfg.Options())

	scaffoldService = app.NewScaffoldService(gen, schemaRepo, menuRepo, workspace)
	menuService = app.NewMenuService(schemaRepo, menuRepo)
}

// Close releases the database connection if one was opened.
func Close() error {
	if database == nil {
		return nil
	}
	return database.Close()
}

// ScaffoldAdapter returns a new ScaffoldAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ScaffoldAdapter() (*cliadapter.ScaffoldAdapter, error) {
	return ScaffoldAdapterWithOutput(os.Stdout)
}

// ScaffoldAdapterWithOutput returns a new ScaffoldAdapter writing to the given output.
func ScaffoldAdapterWithOutput(out io.Writer) (*cliadapter.ScaffoldAdapter, error) {
	service, err := ScaffoldService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewScaffoldAdapter(service, out), nil
}

// MenuAdapter returns a new MenuAdapter writing to stdout.
func MenuAdapter() (*cliadapter.MenuAdapter, error) {
	return MenuAdapterWithOutput(os.Stdout)
}

// MenuAdapterWithOutput returns a new MenuAdapter writing to the given output.
func MenuAdapterWithOutput(out io.Writer) (*cliadapter.MenuAdapter, error) {
	service, err := MenuService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewMenuAdapter(service, out), nil
}
