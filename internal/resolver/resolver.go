// Package resolver implements the cross-module reference resolver: given
// the file and local name a type reference was written against, it walks
// the symbol table's alias chain and either hands the terminal declaration
// to a Materializer or defers the work until the declaration's owning file
// has been parsed.
//
// Resolve switches exhaustively on Declaration.Kind rather than dispatching
// through a type hierarchy.
package resolver

import (
	"fmt"

	"github.com/routemark/routemark/internal/diagnostic"
	"github.com/routemark/routemark/internal/openapi"
	"github.com/routemark/routemark/internal/symbols"
	"github.com/routemark/routemark/internal/tsast"
	"github.com/routemark/routemark/internal/workqueue"
)

// Materializer writes a schema fragment for a terminal Type declaration's
// node into the schema registered under
// (schemaName, namespace). Implemented by internal/schema.
//
// Resolver depends only on this interface, not on internal/schema directly,
// so that schema (which must call back into Resolve for nested TypeRefs) can
// import resolver without creating an import cycle.
type Materializer interface {
	Materialize(ctx *Context, file *tsast.SourceFile, node tsast.Handle, schemaName, namespace string)
}

// Context bundles the state threaded through every Resolve call.
type Context struct {
	Tables       *symbols.Tables
	Components   *openapi.Components
	Queue        *workqueue.Queue
	Diag         *diagnostic.Collector
	Materializer Materializer

	materializing map[string]bool
}

// NewContext creates a Context ready for use.
func NewContext(tables *symbols.Tables, components *openapi.Components, queue *workqueue.Queue, diag *diagnostic.Collector, materializer Materializer) *Context {
	return &Context{Tables: tables, Components: components, Queue: queue, Diag: diag, Materializer: materializer}
}

func componentKey(schemaName, namespace string) string { return namespace + "\x00" + schemaName }

// enterMaterializing reports whether the caller may proceed to materialize
// (schemaName, namespace); false means an ancestor call on the same
// recursion stack already owns that target, breaking the cycle a
// self-referential interface would otherwise create.
func (ctx *Context) enterMaterializing(key string) bool {
	if ctx.materializing == nil {
		ctx.materializing = make(map[string]bool)
	}
	if ctx.materializing[key] {
		return false
	}
	ctx.materializing[key] = true
	return true
}

func (ctx *Context) leaveMaterializing(key string) {
	delete(ctx.materializing, key)
}

// Resolve follows a reference from currentFile/localName to a schema.
//
//   - localName is a local Type declaration: materialize it immediately.
//   - localName is an Import/Export: enqueue a PendingSchema obligation for
//     when its source file is parsed.
//   - localName is an Alias that never dissolved to a concrete declaration,
//     or isn't found at all: warn and leave the schema unmaterialized (the
//     referencing $ref still points at schemaName, so the document has a
//     dangling reference rather than a crash).
func Resolve(ctx *Context, currentFile, localName, schemaName, namespace string) {
	table := ctx.Tables.For(currentFile)
	decl, ok := table.ResolveRoot(localName)
	if !ok {
		ctx.Diag.Warn(diagnostic.CategoryMissingDeclaration, currentFile, 0,
			fmt.Sprintf("%q has no declaration in scope; schema %q left unresolved", localName, schemaName))
		return
	}

	switch decl.Kind {
	case symbols.KindType:
		key := componentKey(schemaName, namespace)
		if !ctx.enterMaterializing(key) {
			return
		}
		defer ctx.leaveMaterializing(key)
		ctx.Materializer.Materialize(ctx, decl.File, decl.Node, schemaName, namespace)

	case symbols.KindImport, symbols.KindExport:
		ctx.Queue.AddSchema(workqueue.PendingSchema{
			SourceFile:   decl.SourceFile,
			ExportedName: decl.Name,
			SchemaName:   schemaName,
			Namespace:    namespace,
		})

	case symbols.KindAlias:
		ctx.Diag.Warn(diagnostic.CategoryMissingDeclaration, currentFile, 0,
			fmt.Sprintf("alias %q does not resolve to a declaration; schema %q left unresolved", localName, schemaName))
	}
}

// ResolvePending re-runs Resolve for a PendingSchema obligation once its
// source file has been parsed and registered, looking the exported name up
// as a file-level declaration rather than a locally-scoped one.
func ResolvePending(ctx *Context, p workqueue.PendingSchema) {
	Resolve(ctx, p.SourceFile, p.ExportedName, p.SchemaName, p.Namespace)
}
