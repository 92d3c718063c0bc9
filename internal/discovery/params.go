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

// extractParameters walks every formal parameter's type annotation,
// decoding marker TypeRefs into operation parameters and chasing
// non-marker TypeRefs through the symbol table.
func extractParameters(ctx *Context, file *tsast.SourceFile, handler tsast.Handle, op *openapi.Operation) {
	table := ctx.Tables.For(file.Path)
	for _, param := range file.Params(handler) {
		walkParamType(ctx, file, table, file.TypeAnnotation(param), op, make(map[string]bool))
	}
}

// ExtractFromTypeNode re-runs parameter extraction against a terminal type
// declaration reached via a deferred PendingParams obligation, once its
// declaration has been resolved. node is the declaration itself (an
// interface, type alias, or type literal), not a handler parameter.
func ExtractFromTypeNode(ctx *Context, file *tsast.SourceFile, node tsast.Handle, op *openapi.Operation) {
	table := ctx.Tables.For(file.Path)
	walkParamType(ctx, file, table, node, op, make(map[string]bool))
}

// walkParamType recursively descends a type-annotation tree looking for
// marker TypeRefs (decoded immediately) or other named TypeRefs (expanded
// in-place when they resolve locally, deferred via PendingParams when they
// resolve to another file). visited guards against a self-referential
// params type looping forever.
func walkParamType(ctx *Context, file *tsast.SourceFile, table *symbols.Table, node tsast.Handle, op *openapi.Operation, visited map[string]bool) {
	if node == tsast.NilHandle {
		return
	}
	switch file.Kind(node) {
	case tsast.KindTypeLiteral, tsast.KindInterfaceDecl:
		for _, member := range file.Members(node) {
			if file.Kind(member) != tsast.KindPropertySignature {
				continue
			}
			walkParamType(ctx, file, table, file.TypeAnnotation(member), op, visited)
		}

	case tsast.KindTypeAliasDecl:
		walkParamType(ctx, file, table, file.TypeAnnotation(node), op, visited)

	case tsast.KindTypeRef:
		name := file.Text(node)
		if isMarker(name) {
			decodeMarker(ctx, file, table, node, op)
			return
		}
		key := file.Path + "\x00" + name
		if visited[key] {
			return
		}
		visited[key] = true

		decl, ok := table.ResolveRoot(name)
		if !ok {
			ctx.Diag.Warn(diagnostic.CategoryMissingDeclaration, file.Path, 0,
				fmt.Sprintf("parameter type %q has no declaration in scope", name))
			return
		}
		switch decl.Kind {
		case symbols.KindType:
			walkParamType(ctx, decl.File, ctx.Tables.For(decl.File.Path), decl.Node, op, visited)
		case symbols.KindImport, symbols.KindExport:
			ctx.Queue.AddParams(workqueue.PendingParams{
				SourceFile:   decl.SourceFile,
				ExportedName: decl.Name,
				Operation:    workqueue.OperationRef{Path: op.RoutePath, Method: op.Method},
			})
		case symbols.KindAlias:
			ctx.Diag.Warn(diagnostic.CategoryMissingDeclaration, file.Path, 0,
				fmt.Sprintf("parameter type %q does not resolve to a declaration", name))
		}
	}
}

// nearestPropertyName finds the parameter name: it comes from the enclosing
// property signature or function-parameter identifier, walking up to the
// first property-like ancestor.
func nearestPropertyName(file *tsast.SourceFile, node tsast.Handle) string {
	for h := node; h != tsast.NilHandle; h = file.Parent(h) {
		switch file.Kind(h) {
		case tsast.KindPropertySignature:
			return file.Text(file.Key(h))
		case tsast.KindParameter:
			return file.Text(h)
		}
	}
	return ""
}

// decodeMarker decodes Marker<T, Required, Namespace?, Format?> positionally
// and registers it on op.
func decodeMarker(ctx *Context, file *tsast.SourceFile, table *symbols.Table, marker tsast.Handle, op *openapi.Operation) {
	name := file.Text(marker)
	location := markerLocations[name]
	typeArgs := file.TypeParameters(marker)
	if len(typeArgs) == 0 {
		ctx.Diag.Warn(diagnostic.CategoryMalformedEndpoint, file.Path, 0,
			fmt.Sprintf("%s<...> has no type arguments; parameter skipped", name))
		return
	}

	payload := typeArgs[0]
	required := false
	if len(typeArgs) > 1 && file.IsBooleanLiteralType(typeArgs[1]) {
		required = file.BoolValue(typeArgs[1])
	}
	namespace := ""
	if len(typeArgs) > 2 && file.Kind(typeArgs[2]) == tsast.KindLiteralType && !file.IsBooleanLiteralType(typeArgs[2]) {
		namespace = file.Text(typeArgs[2])
	}
	format := ""
	if len(typeArgs) > 3 && file.Kind(typeArgs[3]) == tsast.KindLiteralType && !file.IsBooleanLiteralType(typeArgs[3]) {
		format = file.Text(typeArgs[3])
	}

	schema := payloadSchema(ctx, file, payload, namespace)

	if location == "body" {
		body := op.Body()
		body.Required(required)
		*body.Schema() = *schema
		if format != "" {
			body.Schema().Format(format)
		}
		return
	}

	paramName := nearestPropertyName(file, marker)
	if paramName == "" {
		ctx.Diag.Warn(diagnostic.CategoryMalformedEndpoint, file.Path, 0,
			fmt.Sprintf("%s<...> has no enclosing property or parameter name", name))
		return
	}
	p := op.Param(paramName, location)
	p.Required(required)
	*p.Schema() = *schema
	if format != "" {
		p.Schema().Format(format)
	}
}

// payloadSchema builds the schema fragment for a marker's payload type
// argument (the marker's first type argument): a primitive for a keyword
// type, a $ref (scheduled via the resolver) for a TypeRef.
func payloadSchema(ctx *Context, file *tsast.SourceFile, payload tsast.Handle, namespace string) *openapi.Schema {
	schema := openapi.NewSchema()
	switch file.Kind(payload) {
	case tsast.KindKeywordType:
		switch file.Text(payload) {
		case "number", "bigint":
			schema.DataType("number")
		case "string", "symbol":
			schema.DataType("string")
		case "boolean":
			schema.DataType("boolean")
		}
	case tsast.KindTypeRef:
		name := file.Text(payload)
		schema.Reference(name, false).Namespace(namespace)
		resolver.Resolve(ctx.Resolver, file.Path, name, name, namespace)
	default:
		ctx.Diag.Warn(diagnostic.CategoryUnsupportedType, file.Path, 0,
			fmt.Sprintf("%s is not supported as a marker payload; emitting an empty schema", file.Kind(payload)))
	}
	return schema
}
