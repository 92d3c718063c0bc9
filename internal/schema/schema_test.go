package schema

import (
	"testing"

	"github.com/routemark/routemark/internal/diagnostic"
	"github.com/routemark/routemark/internal/openapi"
	"github.com/routemark/routemark/internal/resolver"
	"github.com/routemark/routemark/internal/symbols"
	"github.com/routemark/routemark/internal/tsast"
	"github.com/routemark/routemark/internal/workqueue"
)

func newTestContext() *resolver.Context {
	return resolver.NewContext(symbols.NewTables(), openapi.NewDocument("t", "0").Components, workqueue.New(), diagnostic.NewCollector(false, false), New())
}

func TestMaterialize_InterfaceWithOptionalProperty(t *testing.T) {
	f := tsast.NewSourceFile("a.ts")
	name := f.NewIdentifier("name")
	age := f.NewIdentifier("age")
	iface := f.NewInterfaceDecl("User",
		f.NewPropertySignature(name, f.NewKeywordType("string")),
		f.NewOptionalPropertySignature(age, f.NewKeywordType("number")),
	)
	f.Finalize(iface)

	ctx := newTestContext()
	New().Materialize(ctx, f, iface, "User", "")

	schema := ctx.Components.Schema("User")
	if schema.Type() != "object" {
		t.Fatalf("expected object schema, got %q", schema.Type())
	}
	props := schema.Properties()
	if len(props) != 2 || props[0].Name != "name" || props[1].Name != "age" {
		t.Fatalf("unexpected properties: %+v", props)
	}
	if props[0].Schema.Type() != "string" || props[1].Schema.Type() != "number" {
		t.Fatalf("unexpected property types: %+v %+v", props[0].Schema, props[1].Schema)
	}
	required := schema.RequiredProperties()
	if len(required) != 1 || required[0] != "name" {
		t.Fatalf("expected only 'name' required, got %v", required)
	}
}

func TestMaterialize_ClassSkipsMethods(t *testing.T) {
	f := tsast.NewSourceFile("a.ts")
	id := f.NewIdentifier("id")
	class := f.NewClassDecl("User",
		f.NewPropertyDecl(id, f.NewKeywordType("number")),
		f.NewMethodMember("save"),
	)
	f.Finalize(class)

	ctx := newTestContext()
	New().Materialize(ctx, f, class, "User", "")

	schema := ctx.Components.Schema("User")
	props := schema.Properties()
	if len(props) != 1 || props[0].Name != "id" {
		t.Fatalf("expected only the 'id' field, methods ignored, got %+v", props)
	}
}

func TestMaterialize_ArrayOfKeyword(t *testing.T) {
	f := tsast.NewSourceFile("a.ts")
	arr := f.NewArrayType(f.NewKeywordType("string"))
	f.Finalize(arr)

	ctx := newTestContext()
	New().Materialize(ctx, f, arr, "Tags", "")

	schema := ctx.Components.Schema("Tags")
	if schema.Type() != "array" {
		t.Fatalf("expected array, got %q", schema.Type())
	}
	if schema.ItemsSchema() == nil || schema.ItemsSchema().Type() != "string" {
		t.Fatalf("expected string items, got %+v", schema.ItemsSchema())
	}
}

func TestMaterialize_TypeAliasRecurses(t *testing.T) {
	f := tsast.NewSourceFile("a.ts")
	alias := f.NewTypeAliasDecl("ID", f.NewKeywordType("number"))
	f.Finalize(alias)

	ctx := newTestContext()
	New().Materialize(ctx, f, alias, "ID", "")

	schema := ctx.Components.Schema("ID")
	if schema.Type() != "number" {
		t.Fatalf("expected number, got %q", schema.Type())
	}
}

func TestMaterialize_Enum(t *testing.T) {
	f := tsast.NewSourceFile("a.ts")
	enum := f.NewEnumDecl("Color", f.NewStringLiteral("red"), f.NewStringLiteral("blue"))
	f.Finalize(enum)

	ctx := newTestContext()
	New().Materialize(ctx, f, enum, "Color", "")

	schema := ctx.Components.Schema("Color")
	if schema.Type() != "string" {
		t.Fatalf("expected string enum, got %q", schema.Type())
	}
	values := schema.EnumValues()
	if len(values) != 2 || values[0] != "red" || values[1] != "blue" {
		t.Fatalf("unexpected enum values: %+v", values)
	}
}

func TestMaterialize_NestedTypeRefCreatesSiblingSchema(t *testing.T) {
	f := tsast.NewSourceFile("a.ts")
	addrKey := f.NewIdentifier("address")
	homeIface := f.NewInterfaceDecl("Address", f.NewPropertySignature(f.NewIdentifier("city"), f.NewKeywordType("string")))
	userIface := f.NewInterfaceDecl("User", f.NewPropertySignature(addrKey, f.NewTypeRef("Address")))
	f.Finalize(userIface)

	ctx := newTestContext()
	ctx.Tables.For("a.ts").Insert("Address", symbols.Declaration{Kind: symbols.KindType, File: f, Node: homeIface})

	New().Materialize(ctx, f, userIface, "User", "")

	user := ctx.Components.Schema("User")
	addrProp := user.Properties()[0].Schema
	if addrProp.RefName() != "Address" {
		t.Fatalf("expected $ref to Address, got %+v", addrProp)
	}
	addr := ctx.Components.Schema("Address")
	if addr.Type() != "object" || len(addr.Properties()) != 1 {
		t.Fatalf("expected Address materialized with one property, got %+v", addr)
	}
}

func TestMaterialize_SelfReferentialInterfaceDoesNotRecurseForever(t *testing.T) {
	f := tsast.NewSourceFile("a.ts")
	node := f.NewIdentifier("parent")
	iface := f.NewInterfaceDecl("Tree", f.NewOptionalPropertySignature(node, f.NewTypeRef("Tree")))
	f.Finalize(iface)

	ctx := newTestContext()
	ctx.Tables.For("a.ts").Insert("Tree", symbols.Declaration{Kind: symbols.KindType, File: f, Node: iface})

	New().Materialize(ctx, f, iface, "Tree", "")

	tree := ctx.Components.Schema("Tree")
	parentProp := tree.Properties()[0].Schema
	if parentProp.RefName() != "Tree" {
		t.Fatalf("expected self $ref, got %+v", parentProp)
	}
}

func TestMaterialize_UnsupportedConstructWarnsAndEmitsEmptySchema(t *testing.T) {
	f := tsast.NewSourceFile("a.ts")
	union := f.NewUnionType(f.NewKeywordType("string"), f.NewKeywordType("number"))
	f.Finalize(union)

	ctx := newTestContext()
	New().Materialize(ctx, f, union, "Mixed", "")

	schema := ctx.Components.Schema("Mixed")
	if schema.Type() != "" {
		t.Fatalf("expected empty schema for unsupported construct, got %q", schema.Type())
	}
	if ctx.Diag.WarningCount() != 1 {
		t.Fatalf("expected 1 warning, got %d", ctx.Diag.WarningCount())
	}
}

func TestMaterialize_ComputedKeyPropertyIsSkipped(t *testing.T) {
	f := tsast.NewSourceFile("a.ts")
	computed := f.NewPropertySignature(tsast.NilHandle, f.NewKeywordType("string"))
	plain := f.NewPropertySignature(f.NewIdentifier("id"), f.NewKeywordType("string"))
	iface := f.NewInterfaceDecl("Record", computed, plain)
	f.Finalize(iface)

	ctx := newTestContext()
	New().Materialize(ctx, f, iface, "Record", "")

	schema := ctx.Components.Schema("Record")
	props := schema.Properties()
	if len(props) != 1 || props[0].Name != "id" {
		t.Fatalf("expected only the plain-keyed property, got %+v", props)
	}
}

func TestMaterialize_Namespace(t *testing.T) {
	f := tsast.NewSourceFile("a.ts")
	kw := f.NewKeywordType("string")
	f.Finalize(kw)

	ctx := newTestContext()
	New().Materialize(ctx, f, kw, "Name", "v1")

	ns := ctx.Components.Schema("v1")
	if ns.Type() != "object" {
		t.Fatalf("expected namespace schema to be an object, got %q", ns.Type())
	}
	props := ns.Properties()
	if len(props) != 1 || props[0].Name != "Name" || props[0].Schema.Type() != "string" {
		t.Fatalf("unexpected namespaced property: %+v", props)
	}
}
