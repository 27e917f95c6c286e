package scaffold

import (
	"fmt"
	"go/token"
	"path"
	"strings"

	"github.com/dave/jennifer/jen"
)

const (
	httpPkg = "net/http"
	sqlPkg  = "database/sql"
)

// handlerEmitter holds the names shared by every emitted action.
type handlerEmitter struct {
	opts    Options
	spec    *ModuleSpec
	model   string // models import path
	recv    string // receiver type
	varName string
	table   string
	quoted  string // table name as written in queries
	listURL string
}

// HandlerPath returns the path of the handler file for a module.
func HandlerPath(opts Options, spec *ModuleSpec) string {
	return path.Join(opts.HandlersDir, spec.Naming.FileName+"_handler.go")
}

// EmitHandler renders the request handler for a module: Index, Create,
// Store, Edit, Update and Destroy over the module's table.
func EmitHandler(opts Options, spec *ModuleSpec) (GeneratedFile, error) {
	e := &handlerEmitter{
		opts:    opts,
		spec:    spec,
		model:   opts.modelsImport(),
		recv:    spec.Naming.HandlerName,
		varName: localName(spec.Naming.VariableName),
		table:   spec.Naming.CollectionName,
		quoted:  QuoteIdent(spec.Naming.CollectionName),
		listURL: CollectionURL(opts, spec),
	}

	f := newFile(path.Base(opts.HandlersDir))
	e.declare(f)
	e.scan(f)
	e.index(f)
	e.create(f)
	e.store(f)
	e.find(f)
	e.edit(f)
	e.update(f)
	e.destroy(f)
	f.Var().Id("_").Id("Actions").Op("=").Parens(jen.Op("*").Id(e.recv)).Parens(jen.Nil())

	content, err := renderFile(f)
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("failed to render handler %s: %w", e.recv, err)
	}

	return GeneratedFile{
		Path:      HandlerPath(opts, spec),
		Content:   content,
		Operation: OpCreate,
	}, nil
}

// handlerLocals are identifiers the emitted actions already declare.
var handlerLocals = map[string]bool{
	"h": true, "w": true, "r": true, "ctx": true, "id": true, "err": true, "row": true,
	"rows": true, "page": true, "items": true, "values": true, "result": true,
	"n": true, "hasMore": true, "models": true, "http": true, "sql": true,
	"errors": true, "context": true,
}

// localName returns the variable used for a single row in emitted code.
func localName(name string) string {
	if handlerLocals[name] || token.IsKeyword(name) {
		return "record"
	}
	return name
}

// CollectionURL returns the list URL of a module: "/admin/products".
func CollectionURL(opts Options, spec *ModuleSpec) string {
	return "/" + opts.AdminPrefix + "/" + spec.Naming.RouteSegment
}

func (e *handlerEmitter) columns() string {
	cols := append([]string{"id"}, e.spec.Identifiers()...)
	return quoteList(append(cols, "created_at", "updated_at"))
}

func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = QuoteIdent(n)
	}
	return strings.Join(quoted, ", ")
}

// sqlLit emits a query as a raw string literal so quoted identifiers read
// without escapes.
func sqlLit(query string) jen.Code {
	return jen.Id("`" + query + "`")
}

func (e *handlerEmitter) modelType() *jen.Statement {
	return jen.Qual(e.model, e.spec.Naming.TypeName)
}

// method declares an action on the file and returns it for its body.
func (e *handlerEmitter) method(f *jen.File, name string) *jen.Statement {
	return f.Func().Params(jen.Id("h").Op("*").Id(e.recv)).Id(name).Params(
		jen.Id("w").Qual(httpPkg, "ResponseWriter"),
		jen.Id("r").Op("*").Qual(httpPkg, "Request"),
	)
}

func (e *handlerEmitter) render(page string, data jen.Dict) jen.Code {
	return jen.Id("Render").Call(
		jen.Id("w"), jen.Id("r"), jen.Id("h").Dot("db"),
		jen.Lit(e.table), jen.Lit(page),
		jen.Map(jen.String()).Id("any").Values(data),
	)
}

// failOnErr writes a 500 and returns when err is set.
func failOnErr() jen.Code {
	return jen.If(jen.Err().Op("!=").Nil()).Block(
		jen.Qual(httpPkg, "Error").Call(jen.Id("w"), jen.Err().Dot("Error").Call(), jen.Qual(httpPkg, "StatusInternalServerError")),
		jen.Return(),
	)
}

func (e *handlerEmitter) redirectToList() jen.Code {
	return jen.Qual(httpPkg, "Redirect").Call(jen.Id("w"), jen.Id("r"), jen.Lit(e.listURL), jen.Qual(httpPkg, "StatusSeeOther"))
}

// validate emits the Required call listing every declared field.
func (e *handlerEmitter) validate() []jen.Code {
	rule := NewRequiredRule(e.spec)
	args := []jen.Code{jen.Id("r")}
	for _, f := range rule.Fields {
		args = append(args, jen.Lit(f))
	}
	return []jen.Code{
		jen.List(jen.Id("values"), jen.Err()).Op(":=").Id("Required").Call(args...),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Qual(httpPkg, "Error").Call(jen.Id("w"), jen.Err().Dot("Error").Call(), jen.Qual(httpPkg, "StatusUnprocessableEntity")),
			jen.Return(),
		),
	}
}

func (e *handlerEmitter) fieldArgs() []jen.Code {
	var args []jen.Code
	for _, id := range e.spec.Identifiers() {
		args = append(args, jen.Id("values").Index(jen.Lit(id)))
	}
	return args
}

func (e *handlerEmitter) declare(f *jen.File) {
	f.Commentf("%s serves the admin actions for %s.", e.recv, e.table)
	f.Type().Id(e.recv).Struct(jen.Id("db").Op("*").Qual(sqlPkg, "DB"))
	f.Line()

	f.Commentf("New%s creates a %s.", e.recv, e.recv)
	f.Func().Id("New" + e.recv).Params(jen.Id("db").Op("*").Qual(sqlPkg, "DB")).Op("*").Id(e.recv).Block(
		jen.Return(jen.Op("&").Id(e.recv).Values(jen.Dict{jen.Id("db"): jen.Id("db")})),
	)
}

func (e *handlerEmitter) scanName() string {
	return "scan" + e.spec.Naming.TypeName
}

func (e *handlerEmitter) scan(f *jen.File) {
	v := e.varName
	f.Func().Id(e.scanName()).Params(jen.Id("row").Id("Scanner")).Params(jen.Op("*").Add(e.modelType()), jen.Error()).Block(
		jen.Id(v).Op(":=").Op("&").Add(e.modelType()).Values(),
		jen.Err().Op(":=").Id("row").Dot("Scan").CallFunc(func(g *jen.Group) {
			g.Op("&").Id(v).Dot("ID")
			for _, fs := range e.spec.Fields {
				g.Op("&").Id(v).Dot(fs.GoName())
			}
			g.Op("&").Id(v).Dot("CreatedAt")
			g.Op("&").Id(v).Dot("UpdatedAt")
		}),
		jen.Return(jen.Id(v), jen.Err()),
	)
}

func (e *handlerEmitter) index(f *jen.File) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY "created_at" DESC, "id" DESC LIMIT ? OFFSET ?`, e.columns(), e.quoted)

	f.Comment("Index lists one page of rows, most recent first.")
	e.method(f, "Index").Block(
		jen.Id("page").Op(":=").Id("Page").Call(jen.Id("r")),
		jen.List(jen.Id("rows"), jen.Err()).Op(":=").Id("h").Dot("db").Dot("QueryContext").Call(
			jen.Id("r").Dot("Context").Call(),
			sqlLit(query),
			jen.Id("PageSize").Op("+").Lit(1),
			jen.Parens(jen.Id("page").Op("-").Lit(1)).Op("*").Id("PageSize"),
		),
		failOnErr(),
		jen.Defer().Id("rows").Dot("Close").Call(),
		jen.Line(),
		jen.Var().Id("items").Index().Op("*").Add(e.modelType()),
		jen.For(jen.Id("rows").Dot("Next").Call()).Block(
			jen.List(jen.Id(e.varName), jen.Err()).Op(":=").Id(e.scanName()).Call(jen.Id("rows")),
			failOnErr(),
			jen.Id("items").Op("=").Append(jen.Id("items"), jen.Id(e.varName)),
		),
		jen.If(jen.Err().Op(":=").Id("rows").Dot("Err").Call(), jen.Err().Op("!=").Nil()).Block(
			jen.Qual(httpPkg, "Error").Call(jen.Id("w"), jen.Err().Dot("Error").Call(), jen.Qual(httpPkg, "StatusInternalServerError")),
			jen.Return(),
		),
		jen.Line(),
		jen.Id("hasMore").Op(":=").Len(jen.Id("items")).Op(">").Id("PageSize"),
		jen.If(jen.Id("hasMore")).Block(
			jen.Id("items").Op("=").Id("items").Index(jen.Empty(), jen.Id("PageSize")),
		),
		e.render("index", jen.Dict{
			jen.Lit("Items"):    jen.Id("items"),
			jen.Lit("Page"):     jen.Id("page"),
			jen.Lit("PrevPage"): jen.Id("page").Op("-").Lit(1),
			jen.Lit("NextPage"): jen.Id("page").Op("+").Lit(1),
			jen.Lit("HasMore"):  jen.Id("hasMore"),
		}),
	)
}

func (e *handlerEmitter) create(f *jen.File) {
	f.Comment("Create renders the empty form.")
	e.method(f, "Create").Block(
		e.render("create", jen.Dict{
			jen.Lit("Item"): jen.Op("&").Add(e.modelType()).Values(),
		}),
	)
}

func (e *handlerEmitter) store(f *jen.File) {
	ids := e.spec.Identifiers()
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", e.quoted, quoteList(ids), placeholders)

	body := e.validate()
	body = append(body,
		jen.Line(),
		jen.List(jen.Id("_"), jen.Err()).Op("=").Id("h").Dot("db").Dot("ExecContext").Call(
			append([]jen.Code{jen.Id("r").Dot("Context").Call(), sqlLit(query)}, e.fieldArgs()...)...,
		),
		failOnErr(),
		e.redirectToList(),
	)

	f.Comment("Store validates the submitted form and inserts a row.")
	e.method(f, "Store").Block(body...)
}

func (e *handlerEmitter) find(f *jen.File) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE "id" = ?`, e.columns(), e.quoted)

	f.Func().Params(jen.Id("h").Op("*").Id(e.recv)).Id("find").Params(
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("id").String(),
	).Params(jen.Op("*").Add(e.modelType()), jen.Error()).Block(
		jen.Return(jen.Id(e.scanName()).Call(
			jen.Id("h").Dot("db").Dot("QueryRowContext").Call(jen.Id("ctx"), sqlLit(query), jen.Id("id")),
		)),
	)
}

func (e *handlerEmitter) edit(f *jen.File) {
	f.Comment("Edit renders the form bound to an existing row.")
	e.method(f, "Edit").Block(
		jen.List(jen.Id(e.varName), jen.Err()).Op(":=").Id("h").Dot("find").Call(
			jen.Id("r").Dot("Context").Call(),
			jen.Id("r").Dot("PathValue").Call(jen.Lit("id")),
		),
		jen.If(jen.Qual("errors", "Is").Call(jen.Err(), jen.Qual(sqlPkg, "ErrNoRows"))).Block(
			jen.Qual(httpPkg, "NotFound").Call(jen.Id("w"), jen.Id("r")),
			jen.Return(),
		),
		failOnErr(),
		e.render("edit", jen.Dict{
			jen.Lit("Item"): jen.Id(e.varName),
		}),
	)
}

func (e *handlerEmitter) update(f *jen.File) {
	var sets []string
	for _, id := range e.spec.Identifiers() {
		sets = append(sets, QuoteIdent(id)+" = ?")
	}
	sets = append(sets, `"updated_at" = CURRENT_TIMESTAMP`)
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE "id" = ?`, e.quoted, strings.Join(sets, ", "))

	args := append([]jen.Code{jen.Id("r").Dot("Context").Call(), sqlLit(query)}, e.fieldArgs()...)
	args = append(args, jen.Id("r").Dot("PathValue").Call(jen.Lit("id")))

	body := e.validate()
	body = append(body,
		jen.Line(),
		jen.List(jen.Id("result"), jen.Err()).Op(":=").Id("h").Dot("db").Dot("ExecContext").Call(args...),
		failOnErr(),
		jen.If(
			jen.List(jen.Id("n"), jen.Id("_")).Op(":=").Id("result").Dot("RowsAffected").Call(),
			jen.Id("n").Op("==").Lit(0),
		).Block(
			jen.Qual(httpPkg, "NotFound").Call(jen.Id("w"), jen.Id("r")),
			jen.Return(),
		),
		e.redirectToList(),
	)

	f.Comment("Update validates the submitted form and updates the row.")
	e.method(f, "Update").Block(body...)
}

func (e *handlerEmitter) destroy(f *jen.File) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE "id" = ?`, e.quoted)

	f.Comment("Destroy deletes the row and returns to the previous page.")
	e.method(f, "Destroy").Block(
		jen.List(jen.Id("_"), jen.Err()).Op(":=").Id("h").Dot("db").Dot("ExecContext").Call(
			jen.Id("r").Dot("Context").Call(),
			sqlLit(query),
			jen.Id("r").Dot("PathValue").Call(jen.Lit("id")),
		),
		failOnErr(),
		jen.Id("Back").Call(jen.Id("w"), jen.Id("r"), jen.Lit(e.listURL)),
	)
}
