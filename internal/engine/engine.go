// Package engine wires the AST view, module cache, symbol table, deferred
// work queue, endpoint discovery, reference resolver, schema materializer,
// and OpenAPI document builder into the single entry point:
// generate(entryFile, parse, resolve) -> OpenApiDocument.
//
// A struct threads shared state through free functions per file, parsing
// the entry file, discovering routes, then draining the deferred queue.
package engine

import (
	"fmt"

	"github.com/routemark/routemark/internal/diagnostic"
	"github.com/routemark/routemark/internal/discovery"
	"github.com/routemark/routemark/internal/openapi"
	"github.com/routemark/routemark/internal/resolver"
	"github.com/routemark/routemark/internal/schema"
	"github.com/routemark/routemark/internal/symbols"
	"github.com/routemark/routemark/internal/tsast"
	"github.com/routemark/routemark/internal/workqueue"
)

// Parser is the external collaborator: a TypeScript parser producing an
// already-parsed AST for an absolute file path. The engine treats parse
// failures as non-fatal: the file is registered as empty and a diagnostic
// recorded.
type Parser func(absolutePath string) (*tsast.SourceFile, error)

// Resolver is the module resolver external collaborator. It is a re-export
// of symbols.Resolver so callers only need to import this package.
type Resolver = symbols.Resolver

// Options configures the document's `info` object; none of it changes the
// resolution/materialization semantics.
type Options struct {
	Title       string
	Description string
	Version     string
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "API"
	}
	if o.Version == "" {
		o.Version = "0.0.0"
	}
	return o
}

// Result is everything a caller needs after a run: the document and every
// diagnostic collected along the way. The engine never throws to the
// caller mid-run for shape-of-input problems — it collects diagnostics and
// produces a best-effort document instead.
type Result struct {
	Document    *openapi.Document
	Diagnostics *diagnostic.Collector
}

type engine struct {
	parse      Parser
	resolve    Resolver
	cache      map[string]*tsast.SourceFile // module cache, parse-at-most-once
	visited    map[string]bool              // files whose declarations have already been registered
	discovered map[string]bool              // files already walked for reachability (import-cycle guard)
	tables     *symbols.Tables
	doc        *openapi.Document
	queue      *workqueue.Queue
	diag       *diagnostic.Collector
	rctx       *resolver.Context
	discCtx    *discovery.Context
	material   *schema.Materializer
}

// Generate is the engine entry point. It walks every source file reachable
// from entryFile, discovering Path(...) endpoints and their
// parameter/response types, then drains the deferred work queue until no
// obligation remains.
func Generate(entryFile string, parse Parser, resolve Resolver, opts Options) *Result {
	opts = opts.withDefaults()
	diag := diagnostic.NewCollector(false, false)
	doc := openapi.NewDocument(opts.Title, opts.Version)
	doc.Info.Description = opts.Description

	e := &engine{
		parse:      parse,
		resolve:    resolve,
		cache:      make(map[string]*tsast.SourceFile),
		visited:    make(map[string]bool),
		discovered: make(map[string]bool),
		tables:     symbols.NewTables(),
		doc:        doc,
		queue:      workqueue.New(),
		diag:       diag,
	}
	e.material = schema.New()
	e.rctx = resolver.NewContext(e.tables, doc.Components, e.queue, diag, e.material)
	e.discCtx = &discovery.Context{Tables: e.tables, Doc: doc, Queue: e.queue, Diag: diag, Resolver: e.rctx}

	e.walkReachable(entryFile)
	e.drainQueue()

	return &Result{Document: doc, Diagnostics: diag}
}

// parseCached parses on miss, memoized for the remainder of the run. A
// ParseError is recorded and the file is treated as empty.
func (e *engine) parseCached(path string) *tsast.SourceFile {
	if f, ok := e.cache[path]; ok {
		return f
	}
	f, err := e.parse(path)
	if err != nil {
		e.diag.Error(diagnostic.CategoryParseError, path, 0, fmt.Sprintf("failed to parse: %v", err))
		f = tsast.NewSourceFile(path)
	}
	e.cache[path] = f
	return f
}

// registerOnce runs the symbol table's declaration-insertion visitor over
// file's top-level statements exactly once per file: each file is parsed
// at most once per run.
func (e *engine) registerOnce(path string) *tsast.SourceFile {
	f := e.parseCached(path)
	if e.visited[path] {
		return f
	}
	e.visited[path] = true
	table := e.tables.For(path)
	symbols.Register(f, table, e.resolve, func(specifier string, err error) {
		e.diag.Warn(diagnostic.CategoryModuleResolution, path, 0,
			fmt.Sprintf("cannot resolve %q: %v", specifier, err))
	})
	return f
}

// walkReachable walks every source file reachable from an entry point: it
// registers declarations and runs endpoint discovery for entryFile, then
// recurses into every file it imports, depth-first, parsing and
// registering each exactly once.
func (e *engine) walkReachable(path string) {
	if e.discovered[path] {
		return
	}
	e.discovered[path] = true

	f := e.registerOnce(path)
	discovery.Discover(e.discCtx, f)

	for _, imp := range importedFiles(f, e.resolve, e.diag) {
		e.walkReachable(imp)
	}
}

// importedFiles resolves every import/re-export specifier in file's
// top-level statements to an absolute path, skipping ones the module
// resolver external collaborator rejects (logged as ModuleResolutionError
// already once during registerOnce's own pass, so this one is silent to
// avoid duplicate diagnostics for the same specifier).
func importedFiles(file *tsast.SourceFile, resolve Resolver, _ *diagnostic.Collector) []string {
	if file.Root == tsast.NilHandle {
		return nil
	}
	var out []string
	for _, stmt := range file.Children(file.Root) {
		var spec string
		switch file.Kind(stmt) {
		case tsast.KindImportDecl:
			spec = file.Source(stmt)
		case tsast.KindExportNamedDecl:
			spec = file.Source(stmt)
		default:
			continue
		}
		if spec == "" {
			continue
		}
		if p, err := resolve(spec, file.Path); err == nil {
			out = append(out, p)
		}
	}
	return out
}

// drainQueue pops the next distinct pending file, parses and registers it,
// then resolves every PendingParams/PendingSchema obligation targeting it
// against its top-level exports.
func (e *engine) drainQueue() {
	for {
		file, ok := e.queue.NextFile()
		if !ok {
			return
		}
		e.registerOnce(file)
		table := e.tables.For(file)

		for _, p := range e.queue.ParamsFor(file) {
			e.resolvePendingParams(table, p)
		}
		for _, p := range e.queue.SchemasFor(file) {
			resolver.ResolvePending(e.rctx, p)
		}
	}
}

// resolvePendingParams resolves a PendingParams obligation's terminal Type
// and runs parameter extraction against it; if it resolves to another
// Import, it re-enqueues PendingParams to that file.
func (e *engine) resolvePendingParams(table *symbols.Table, p workqueue.PendingParams) {
	decl, ok := table.ResolveRoot(p.ExportedName)
	if !ok {
		e.diag.Warn(diagnostic.CategoryMissingDeclaration, p.SourceFile, 0,
			fmt.Sprintf("%q has no declaration in scope; pending parameters dropped", p.ExportedName))
		return
	}
	switch decl.Kind {
	case symbols.KindType:
		op := e.doc.Path(p.Operation.Path).Operation(p.Operation.Method)
		discovery.ExtractFromTypeNode(e.discCtx, decl.File, decl.Node, op)
	case symbols.KindImport, symbols.KindExport:
		e.queue.AddParams(workqueue.PendingParams{
			SourceFile:   decl.SourceFile,
			ExportedName: decl.Name,
			Operation:    p.Operation,
		})
	case symbols.KindAlias:
		e.diag.Warn(diagnostic.CategoryMissingDeclaration, p.SourceFile, 0,
			fmt.Sprintf("alias %q does not resolve to a declaration; pending parameters dropped", p.ExportedName))
	}
}
