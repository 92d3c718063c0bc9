package symbols

import "github.com/routemark/routemark/internal/tsast"

// Resolver maps a textual import specifier to an absolute file path,
// called as an opaque function. importer is the absolute path of the file
// containing the specifier.
type Resolver func(specifier, importer string) (string, error)

// UnresolvedHook is invoked whenever a module specifier cannot be resolved
// so the caller can record a ModuleResolutionError diagnostic. Registration
// never stops on a resolution failure: the failing declaration is simply
// not inserted.
type UnresolvedHook func(specifier string, err error)

// Register runs the single declaration-insertion visitor over file's
// top-level statements, populating table. Every declaration form is
// implemented below; nested scopes pushed around Path handler bodies are
// the endpoint discoverer's responsibility, not this pass's.
func Register(file *tsast.SourceFile, table *Table, resolve Resolver, onUnresolved UnresolvedHook) {
	if file.Root == tsast.NilHandle {
		return
	}
	for _, stmt := range file.Children(file.Root) {
		registerStatement(file, table, stmt, resolve, onUnresolved)
	}
}

func registerStatement(file *tsast.SourceFile, table *Table, h tsast.Handle, resolve Resolver, onUnresolved UnresolvedHook) {
	switch file.Kind(h) {
	case tsast.KindClassDecl:
		if name := file.Text(h); name != "" {
			table.Insert(name, Declaration{Kind: KindType, File: file, Node: h})
		}

	case tsast.KindInterfaceDecl, tsast.KindTypeAliasDecl, tsast.KindEnumDecl:
		table.Insert(file.Text(h), Declaration{Kind: KindType, File: file, Node: h})

	case tsast.KindImportDecl:
		registerImportDecl(file, table, h, resolve, onUnresolved)

	case tsast.KindExportNamedDecl:
		registerExportNamedDecl(file, table, h, resolve, onUnresolved)

	case tsast.KindExportDefaultDecl:
		registerExportDefault(file, table, h)

	case tsast.KindExportDecl:
		registerStatement(file, table, file.Decl(h), resolve, onUnresolved)

	case tsast.KindVarDeclarator:
		registerVarDeclarator(file, table, h)

	case tsast.KindVarStatement:
		for _, d := range file.Children(h) {
			registerStatement(file, table, d, resolve, onUnresolved)
		}
	}
}

// registerImportDecl covers both:
//
//	import D from 'm'          -> insert D -> Import{name:"default", sourceFile:p}
//	import {X as Y} from 'm'   -> insert Y -> Import{name:"X", sourceFile:p}
func registerImportDecl(file *tsast.SourceFile, table *Table, h tsast.Handle, resolve Resolver, onUnresolved UnresolvedHook) {
	spec := file.Source(h)
	p, err := resolve(spec, file.Path)
	if err != nil {
		if onUnresolved != nil {
			onUnresolved(spec, err)
		}
		return
	}
	for _, s := range file.Specifiers(h) {
		table.Insert(file.Local(s), Declaration{Kind: KindImport, Name: file.Imported(s), SourceFile: p})
	}
}

// registerExportNamedDecl covers `export {X as Y} from 'm'`; a local named
// export with no module specifier is a no-op here (the exported name
// already resolves through its own declaration, inserted by whichever rule
// produced it).
func registerExportNamedDecl(file *tsast.SourceFile, table *Table, h tsast.Handle, resolve Resolver, onUnresolved UnresolvedHook) {
	spec := file.Source(h)
	if spec == "" {
		return
	}
	p, err := resolve(spec, file.Path)
	if err != nil {
		if onUnresolved != nil {
			onUnresolved(spec, err)
		}
		return
	}
	for _, s := range file.Specifiers(h) {
		table.Insert(file.Local(s), Declaration{Kind: KindImport, Name: file.Imported(s), SourceFile: p})
	}
}

// registerExportDefault implements every `export default ...` form.
func registerExportDefault(file *tsast.SourceFile, table *Table, h tsast.Handle) {
	value := file.Value(h)
	switch file.Kind(value) {
	case tsast.KindIdentifier:
		// export default <identifier>
		table.Insert("default", Declaration{Kind: KindAlias, From: "default", To: file.Text(value)})

	case tsast.KindClassDecl:
		// export default class C {} / export default class {}
		table.Insert("default", Declaration{Kind: KindType, File: file, Node: value})
		if name := file.Text(value); name != "" {
			table.Insert(name, Declaration{Kind: KindType, File: file, Node: value})
		}

	case tsast.KindNewExpr, tsast.KindCallExpr:
		// export default new F(...) / F(...)
		table.Insert("default", Declaration{Kind: KindAlias, From: "default", To: calleeName(file, value)})

	case tsast.KindAsExpr, tsast.KindTypeAssertion:
		// export default (x as T) / <T>x
		table.Insert("default", Declaration{Kind: KindAlias, From: "default", To: file.Text(file.TypeAnnotation(value))})

	case tsast.KindArrayLiteralExpr, tsast.KindObjectLiteralExpr:
		// export default [ ... ] or { ... } literal
		table.Insert("default", Declaration{Kind: KindType, File: file, Node: value})
	}
}

func calleeName(file *tsast.SourceFile, h tsast.Handle) string {
	switch file.Kind(h) {
	case tsast.KindNewExpr:
		return file.Text(file.Value(h))
	case tsast.KindCallExpr:
		return file.Text(file.Callee(h))
	default:
		return ""
	}
}

// registerVarDeclarator implements:
//
//	const x: T = ...        -> insert x -> Alias{from:"x", to:"T"}
//	const x = initializer   -> recurse into initializer for the first
//	                            identifier/type reference
//
// The initializer's shape takes priority over an explicit annotation when
// the initializer alone already names an identifiable target; the
// annotation is the fallback.
func registerVarDeclarator(file *tsast.SourceFile, table *Table, h tsast.Handle) {
	name := file.Text(h)
	init := file.Initializer(h)

	if target := initializerTarget(file, init); target != "" {
		table.Insert(name, Declaration{Kind: KindAlias, From: name, To: target})
		return
	}

	if ann := file.TypeAnnotation(h); ann != tsast.NilHandle && file.Kind(ann) == tsast.KindTypeRef {
		table.Insert(name, Declaration{Kind: KindAlias, From: name, To: file.Text(ann)})
		return
	}

	if target := firstIdentifierIn(file, init); target != "" {
		table.Insert(name, Declaration{Kind: KindAlias, From: name, To: target})
	}
}

func initializerTarget(file *tsast.SourceFile, h tsast.Handle) string {
	if h == tsast.NilHandle {
		return ""
	}
	switch file.Kind(h) {
	case tsast.KindIdentifier:
		return file.Text(h)
	case tsast.KindNewExpr:
		return file.Text(file.Value(h))
	case tsast.KindAsExpr, tsast.KindTypeAssertion:
		return file.Text(file.TypeAnnotation(h))
	default:
		return ""
	}
}

func firstIdentifierIn(file *tsast.SourceFile, h tsast.Handle) string {
	if h == tsast.NilHandle {
		return ""
	}
	switch file.Kind(h) {
	case tsast.KindIdentifier, tsast.KindTypeRef:
		return file.Text(h)
	}
	for _, c := range file.Children(h) {
		if t := firstIdentifierIn(file, c); t != "" {
			return t
		}
	}
	return ""
}
