package discovery

import (
	"strconv"

	"github.com/routemark/routemark/internal/openapi"
	"github.com/routemark/routemark/internal/resolver"
	"github.com/routemark/routemark/internal/tsast"
)

// extractResponses searches the handler body for every `Response(...)` call
// and registers a response for each.
//
// The arguments used are always the matched Response(...) call's own
// argument list — never an ancestor call's arguments, even when the handler
// body nests one call inside another.
func extractResponses(ctx *Context, file *tsast.SourceFile, handler tsast.Handle, op *openapi.Operation) {
	body := file.Body(handler)
	if body == tsast.NilHandle {
		return
	}
	findResponseCalls(ctx, file, body, op)
}

func findResponseCalls(ctx *Context, file *tsast.SourceFile, h tsast.Handle, op *openapi.Operation) {
	if h == tsast.NilHandle {
		return
	}
	if file.Kind(h) == tsast.KindCallExpr {
		callee := file.Callee(h)
		if file.Kind(callee) == tsast.KindIdentifier && file.Text(callee) == "Response" {
			registerResponse(ctx, file, h, op)
		}
	}
	for _, c := range file.Children(h) {
		findResponseCalls(ctx, file, c, op)
	}
}

// registerResponse extracts status code, description, namespace, and
// example from the matched Response(...) call expression's own options
// argument.
func registerResponse(ctx *Context, file *tsast.SourceFile, call tsast.Handle, op *openapi.Operation) {
	args := file.Args(call)
	if len(args) < 2 {
		return
	}
	value, optsNode := args[0], args[1]

	opts, ok := objectLiteralOf(file, optsNode)
	if !ok {
		return
	}
	responseOpts := openapi.ResponseOptions{}
	if sc, ok := stringLiteral(file, prop(opts, "statusCode")); ok {
		responseOpts.StatusCode = sc
	} else if nc, ok := numberLiteral(file, prop(opts, "statusCode")); ok {
		responseOpts.StatusCode = strconv.FormatFloat(nc, 'f', -1, 64)
	}
	if desc, ok := stringLiteral(file, prop(opts, "description")); ok {
		responseOpts.Description = desc
	}
	if ns, ok := stringLiteral(file, prop(opts, "namespace")); ok {
		responseOpts.Namespace = ns
	}
	if ex, ok := anyLiteral(file, prop(opts, "example")); ok {
		responseOpts.Example = ex
		responseOpts.HasExample = true
	}

	schema := responseSchema(ctx, file, value, responseOpts.Namespace)
	op.ResponseWithSchema(schema, responseOpts)
}

// responseSchema pattern-matches the response value expression: an
// identifier, a `new X(...)`, an `x as T`, or a `<T>x` assertion each yield
// an identifier looked up via resolveRootName; a primitive keyword type
// (`"x" as string`) materializes inline instead of as a $ref.
func responseSchema(ctx *Context, file *tsast.SourceFile, value tsast.Handle, namespace string) *openapi.Schema {
	name, typeNode := responseTypeNameOrKeyword(file, value)
	if typeNode != tsast.NilHandle {
		return inlinePrimitive(file, typeNode)
	}
	if name == "" {
		return nil
	}

	table := ctx.Tables.For(file.Path)
	canonical := table.ResolveRootName(name)

	schema := openapi.NewSchema()
	schema.Reference(canonical, false).Namespace(namespace)
	resolver.Resolve(ctx.Resolver, file.Path, name, canonical, namespace)
	return schema
}

// responseTypeNameOrKeyword returns either a type-reference identifier name
// to resolve (name != ""), or a keyword-type node to materialize inline
// (typeNode != NilHandle). At most one is set.
func responseTypeNameOrKeyword(file *tsast.SourceFile, value tsast.Handle) (name string, typeNode tsast.Handle) {
	switch file.Kind(value) {
	case tsast.KindIdentifier:
		return file.Text(value), tsast.NilHandle
	case tsast.KindNewExpr:
		return file.Text(file.Value(value)), tsast.NilHandle
	case tsast.KindAsExpr, tsast.KindTypeAssertion:
		ann := file.TypeAnnotation(value)
		if file.Kind(ann) == tsast.KindKeywordType {
			return "", ann
		}
		return file.Text(ann), tsast.NilHandle
	default:
		return "", tsast.NilHandle
	}
}

func inlinePrimitive(file *tsast.SourceFile, keyword tsast.Handle) *openapi.Schema {
	s := openapi.NewSchema()
	switch file.Text(keyword) {
	case "number", "bigint":
		s.DataType("number")
	case "string", "symbol":
		s.DataType("string")
	case "boolean":
		s.DataType("boolean")
	}
	return s
}
