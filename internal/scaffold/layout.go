package scaffold

import (
	"fmt"
	"go/format"
	"path"

	scaffoldtmpl "github.com/example/crudgen/internal/templates/scaffold"
)

// layoutData feeds the layout, runtime and routes templates.
type layoutData struct {
	Package         string
	Prefix          string
	PageSize        int
	ViewsDir        string
	MenuTable       string
	Actions         []RouteAction
	HandlersImport  string
	HandlersPackage string
	Marker          string
}

// LayoutPath returns the path of the shared navigation shell.
func LayoutPath(opts Options) string {
	return path.Join(opts.ViewsDir, "layouts", opts.AdminPrefix+".html")
}

// RuntimePath returns the path of the runtime shared by every handler.
func RuntimePath(opts Options) string {
	return path.Join(opts.HandlersDir, opts.handlersPackage()+".go")
}

// LayoutFiles renders the artifacts every module relies on but which exist
// once per project: the navigation shell, the handler runtime and the routes
// file. All are created only when absent.
func LayoutFiles(opts Options) ([]GeneratedFile, error) {
	data := layoutData{
		Prefix:          opts.AdminPrefix,
		PageSize:        opts.PageSize,
		ViewsDir:        opts.ViewsDir,
		MenuTable:       MenuTable,
		Actions:         RouteActions,
		HandlersImport:  opts.handlersImport(),
		HandlersPackage: opts.handlersPackage(),
		Marker:          RoutesMarker,
	}

	shell, err := renderLayout("admin.html", data, false)
	if err != nil {
		return nil, err
	}

	data.Package = opts.handlersPackage()
	runtime, err := renderLayout("runtime.go", data, true)
	if err != nil {
		return nil, err
	}

	data.Package = path.Base(path.Dir(opts.RoutesFile))
	routes, err := renderLayout("routes.go", data, true)
	if err != nil {
		return nil, err
	}

	return []GeneratedFile{
		{Path: LayoutPath(opts), Content: shell, Operation: OpCreateIfAbsent},
		{Path: RuntimePath(opts), Content: runtime, Operation: OpCreateIfAbsent},
		{Path: opts.RoutesFile, Content: routes, Operation: OpCreateIfAbsent},
	}, nil
}

func renderLayout(name string, data layoutData, goSource bool) (string, error) {
	content, err := scaffoldtmpl.GetLayoutTemplate(name)
	if err != nil {
		return "", err
	}

	out, err := execute(name, content, data)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	if !goSource {
		return out, nil
	}

	formatted, err := format.Source([]byte(out))
	if err != nil {
		return "", fmt.Errorf("failed to format %s: %w", name, err)
	}
	return string(formatted), nil
}
