package scaffold

import (
	"path"
	"strings"

	"github.com/dave/jennifer/jen"
)

// RoutesMarker is the line route declarations are inserted before.
const RoutesMarker = "// crudgen:routes"

// RouteAction is one method and path of the resource shape.
type RouteAction struct {
	Method string
	Path   string // relative to the collection URL
	Action string // handler method
}

// RouteActions is the resource shape every module is mounted with. The
// emitted runtime Resource function is rendered from the same table.
var RouteActions = []RouteAction{
	{Method: "GET", Path: "", Action: "Index"},
	{Method: "GET", Path: "/create", Action: "Create"},
	{Method: "POST", Path: "", Action: "Store"},
	{Method: "GET", Path: "/{id}/edit", Action: "Edit"},
	{Method: "POST", Path: "/{id}", Action: "Update"},
	{Method: "POST", Path: "/{id}/delete", Action: "Destroy"},
}

// RouteDeclaration returns the statement that mounts a module:
//
//	admin.Resource(mux, "products", admin.NewProductHandler(db))
func RouteDeclaration(opts Options, spec *ModuleSpec) string {
	pkg := opts.handlersImport()
	stmt := jen.Qual(pkg, "Resource").Call(
		jen.Id("mux"),
		jen.Lit(spec.Naming.RouteSegment),
		jen.Qual(pkg, "New"+spec.Naming.HandlerName).Call(jen.Id("db")),
	)
	return strings.TrimSpace(stmt.GoString())
}

// EmitRoute returns the insertion of a module's route declaration into the
// routes file.
func EmitRoute(opts Options, spec *ModuleSpec) GeneratedFile {
	return GeneratedFile{
		Path:      opts.RoutesFile,
		Content:   RouteDeclaration(opts, spec),
		InsertAt:  RoutesMarker,
		Operation: OpInsertBefore,
	}
}

// handlersPackage is the package name of the emitted handlers.
func (o Options) handlersPackage() string {
	return path.Base(o.HandlersDir)
}
