// Package schema implements the schema materializer: it converts a terminal
// type declaration node into an OpenAPI schema fragment, recursing into
// nested TypeRefs via internal/resolver.
//
// Builds an openapi.Schema tree directly rather than through an
// intermediate JSON value.
package schema

import (
	"fmt"

	"github.com/routemark/routemark/internal/diagnostic"
	"github.com/routemark/routemark/internal/openapi"
	"github.com/routemark/routemark/internal/resolver"
	"github.com/routemark/routemark/internal/tsast"
)

// Materializer implements resolver.Materializer. It carries no state of its
// own — all mutable state lives in the resolver.Context passed to it — so the
// zero value is ready to use.
type Materializer struct{}

// New creates a ready-to-use Materializer.
func New() *Materializer { return &Materializer{} }

func targetSchema(components *openapi.Components, schemaName, namespace string) *openapi.Schema {
	if namespace == "" {
		return components.Schema(schemaName)
	}
	ns := components.Schema(namespace)
	ns.DataType("object")
	return ns.Property(schemaName)
}

// Materialize fills in the schema registered under (schemaName, namespace)
// from the shape of the declaration at file:node.
func (m *Materializer) Materialize(ctx *resolver.Context, file *tsast.SourceFile, node tsast.Handle, schemaName, namespace string) {
	target := targetSchema(ctx.Components, schemaName, namespace)
	m.materializeInto(ctx, file, node, target)
}

func (m *Materializer) materializeInto(ctx *resolver.Context, file *tsast.SourceFile, node tsast.Handle, target *openapi.Schema) {
	switch file.Kind(node) {
	case tsast.KindKeywordType:
		materializeKeyword(file, node, target)

	case tsast.KindArrayType:
		target.DataType("array")
		m.materializeInto(ctx, file, file.ElementType(node), target.Items())

	case tsast.KindTypeLiteral, tsast.KindInterfaceDecl:
		m.materializeObjectMembers(ctx, file, file.Members(node), target)

	case tsast.KindClassDecl:
		m.materializeClassMembers(ctx, file, file.Members(node), target)

	case tsast.KindEnumDecl:
		materializeEnum(file, node, target)

	case tsast.KindTypeAliasDecl:
		m.materializeInto(ctx, file, file.TypeAnnotation(node), target)

	case tsast.KindTypeRef:
		m.materializeTypeRef(ctx, file, node, target)

	default:
		ctx.Diag.Warn(diagnostic.CategoryUnsupportedType, file.Path, 0,
			fmt.Sprintf("%s is not supported in schema position; emitting an empty schema", file.Kind(node)))
	}
}

func materializeKeyword(file *tsast.SourceFile, node tsast.Handle, target *openapi.Schema) {
	switch file.Text(node) {
	case "number", "bigint":
		target.DataType("number")
	case "string", "symbol":
		target.DataType("string")
	case "boolean":
		target.DataType("boolean")
	case "any", "unknown":
		// No `type` constrains the value: any JSON value validates.
	case "void", "never":
		target.DataType("null")
	}
}

// materializeTypeRef handles a nested reference to another named type
// appearing inside a property/array/alias position: it schedules the
// referenced declaration under its own name and turns target into a $ref
// pointing at it.
func (m *Materializer) materializeTypeRef(ctx *resolver.Context, file *tsast.SourceFile, node tsast.Handle, target *openapi.Schema) {
	name := file.Text(node)
	target.Reference(name, false)
	resolver.Resolve(ctx, file.Path, name, name, "")
}

func (m *Materializer) materializeObjectMembers(ctx *resolver.Context, file *tsast.SourceFile, members []tsast.Handle, target *openapi.Schema) {
	target.DataType("object")
	for _, member := range members {
		m.materializeMember(ctx, file, member, target)
	}
}

// materializeClassMembers is materializeObjectMembers restricted to property
// fields; class methods (KindMethodMember) are not part of the wire shape.
func (m *Materializer) materializeClassMembers(ctx *resolver.Context, file *tsast.SourceFile, members []tsast.Handle, target *openapi.Schema) {
	target.DataType("object")
	for _, member := range members {
		if file.Kind(member) != tsast.KindPropertyDecl {
			continue
		}
		m.materializeMember(ctx, file, member, target)
	}
}

func (m *Materializer) materializeMember(ctx *resolver.Context, file *tsast.SourceFile, member tsast.Handle, target *openapi.Schema) {
	if file.Kind(member) != tsast.KindPropertySignature && file.Kind(member) != tsast.KindPropertyDecl {
		return
	}
	if file.IsComputedKey(member) {
		return
	}
	key := file.Text(file.Key(member))
	if key == "" {
		return
	}
	prop := target.Property(key)
	m.materializeInto(ctx, file, file.TypeAnnotation(member), prop)
	if !file.IsOptional(member) {
		target.MarkRequired(key)
	}
}

func materializeEnum(file *tsast.SourceFile, node tsast.Handle, target *openapi.Schema) {
	members := file.Members(node)
	values := make([]interface{}, 0, len(members))
	allString := true
	for _, member := range members {
		switch file.Kind(member) {
		case tsast.KindStringLiteral:
			values = append(values, file.Text(member))
		case tsast.KindNumericLiteral:
			allString = false
			values = append(values, file.NumValue(member))
		}
	}
	if allString {
		target.DataType("string")
	} else {
		target.DataType("number")
	}
	target.SetEnum(values)
}
