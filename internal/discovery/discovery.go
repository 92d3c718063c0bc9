// Package discovery implements endpoint discovery: it finds Path(...) calls
// reachable from an entry file, extracts route/method/tags and the
// handler's parameters/response, and drives the reference resolver for
// every user type the handler mentions.
//
// A recursive AST walker threads a shared context struct through free
// functions rather than a visitor object.
package discovery

import (
	"fmt"

	"github.com/routemark/routemark/internal/diagnostic"
	"github.com/routemark/routemark/internal/openapi"
	"github.com/routemark/routemark/internal/resolver"
	"github.com/routemark/routemark/internal/symbols"
	"github.com/routemark/routemark/internal/tsast"
	"github.com/routemark/routemark/internal/workqueue"
)

// Context bundles the state threaded through endpoint discovery.
type Context struct {
	Tables   *symbols.Tables
	Doc      *openapi.Document
	Queue    *workqueue.Queue
	Diag     *diagnostic.Collector
	Resolver *resolver.Context
}

// markers are the four phantom generic constructors that make up the
// user-facing parameter DSL.
var markerLocations = map[string]string{
	"QueryParam": "query",
	"RouteParam": "path",
	"Header":     "header",
	"BodyParam":  "body", // special-cased: goes through op.Body(), not op.Param
}

func isMarker(name string) bool {
	_, ok := markerLocations[name]
	return ok
}

// Discover walks every node reachable from file.Root looking for `Path(...)`
// calls. Nodes are visited regardless of nesting depth —
// Path calls may appear as a bare top-level expression statement, as a var
// initializer, or exported directly.
func Discover(ctx *Context, file *tsast.SourceFile) {
	if file.Root == tsast.NilHandle {
		return
	}
	walkForPathCalls(ctx, file, file.Root)
}

func walkForPathCalls(ctx *Context, file *tsast.SourceFile, h tsast.Handle) {
	if h == tsast.NilHandle {
		return
	}
	if file.Kind(h) == tsast.KindCallExpr {
		callee := file.Callee(h)
		if file.Kind(callee) == tsast.KindIdentifier && file.Text(callee) == "Path" {
			processPathCall(ctx, file, h)
		}
	}
	for _, c := range file.Children(h) {
		walkForPathCalls(ctx, file, c)
	}
}

// processPathCall extracts the route, method, tags, parameters, and
// responses from one matched `Path(handler, options)` call.
func processPathCall(ctx *Context, file *tsast.SourceFile, call tsast.Handle) {
	args := file.Args(call)
	if len(args) < 2 {
		ctx.Diag.Warn(diagnostic.CategoryMalformedEndpoint, file.Path, 0,
			"Path(...) call is missing its handler or options argument")
		return
	}
	handler, optsNode := args[0], args[1]

	opts, ok := objectLiteralOf(file, optsNode)
	if !ok {
		ctx.Diag.Warn(diagnostic.CategoryMalformedEndpoint, file.Path, 0,
			"Path(...) options argument is not an object literal; endpoint skipped")
		return
	}

	method, hasMethod := stringLiteral(file, prop(opts, "method"))
	path, hasPath := stringLiteral(file, prop(opts, "path"))
	if !hasMethod || !hasPath {
		ctx.Diag.Warn(diagnostic.CategoryMalformedEndpoint, file.Path, 0,
			fmt.Sprintf("Path(...) call at %s is missing a literal 'method' or 'path'; endpoint skipped", file.Path))
		return
	}

	table := ctx.Tables.For(file.Path)
	table.PushScope()
	defer table.PopScope()

	op := ctx.Doc.Path(path).Operation(method)
	if tags, ok := stringArrayLiteral(file, prop(opts, "tags")); ok {
		op.Tags(tags)
	}

	if file.Kind(handler) == tsast.KindFunctionExpr {
		extractParameters(ctx, file, handler, op)
		extractResponses(ctx, file, handler, op)
	}
}

func objectLiteralOf(file *tsast.SourceFile, h tsast.Handle) (map[string]tsast.Handle, bool) {
	if h == tsast.NilHandle || file.Kind(h) != tsast.KindObjectLiteralExpr {
		return nil, false
	}
	return file.ObjectLiteralProps(h), true
}
