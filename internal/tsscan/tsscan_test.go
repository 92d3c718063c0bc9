package tsscan

import (
	"os"
	"testing"

	"github.com/routemark/routemark/internal/tsast"
)

func mustParse(t *testing.T, src string) *tsast.SourceFile {
	t.Helper()
	f, err := Parse("/virtual/entry.ts", src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Root == tsast.NilHandle {
		t.Fatal("Parse returned a file with no root")
	}
	return f
}

func TestParse_ImportAndExportForms(t *testing.T) {
	src := `
import Default from "./a";
import { X as Y, Z } from "./b";
export { Q } from "./c";
`
	f := mustParse(t, src)
	stmts := f.Children(f.Root)
	if len(stmts) != 3 {
		t.Fatalf("expected 3 top-level statements, got %d", len(stmts))
	}

	imp1 := stmts[0]
	if f.Kind(imp1) != tsast.KindImportDecl || f.Source(imp1) != "./a" {
		t.Fatalf("unexpected first import: kind=%v source=%q", f.Kind(imp1), f.Source(imp1))
	}
	specs1 := f.Specifiers(imp1)
	if len(specs1) != 1 || f.Imported(specs1[0]) != "default" || f.Local(specs1[0]) != "Default" {
		t.Fatalf("unexpected default specifier: %+v", specs1)
	}

	imp2 := stmts[1]
	specs2 := f.Specifiers(imp2)
	if len(specs2) != 2 {
		t.Fatalf("expected 2 named specifiers, got %d", len(specs2))
	}
	if f.Imported(specs2[0]) != "X" || f.Local(specs2[0]) != "Y" {
		t.Fatalf("unexpected renamed specifier: imported=%q local=%q", f.Imported(specs2[0]), f.Local(specs2[0]))
	}
	if f.Imported(specs2[1]) != "Z" || f.Local(specs2[1]) != "Z" {
		t.Fatalf("unexpected plain specifier: imported=%q local=%q", f.Imported(specs2[1]), f.Local(specs2[1]))
	}

	reexport := stmts[2]
	if f.Kind(reexport) != tsast.KindExportNamedDecl || f.Source(reexport) != "./c" {
		t.Fatalf("unexpected re-export: kind=%v source=%q", f.Kind(reexport), f.Source(reexport))
	}
}

func TestParse_InterfaceWithOptionalAndArrayMembers(t *testing.T) {
	src := `
interface User {
  id: number;
  name: string;
  tags?: string[];
}
`
	f := mustParse(t, src)
	decl := f.Children(f.Root)[0]
	if f.Kind(decl) != tsast.KindInterfaceDecl || f.Text(decl) != "User" {
		t.Fatalf("expected interface User, got kind=%v text=%q", f.Kind(decl), f.Text(decl))
	}
	members := f.Members(decl)
	if len(members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(members))
	}

	id := members[0]
	if f.Text(f.Key(id)) != "id" || f.IsOptional(id) {
		t.Fatalf("unexpected id member: key=%q optional=%v", f.Text(f.Key(id)), f.IsOptional(id))
	}
	if f.Kind(f.TypeAnnotation(id)) != tsast.KindKeywordType || f.Text(f.TypeAnnotation(id)) != "number" {
		t.Fatalf("unexpected id type: %v %q", f.Kind(f.TypeAnnotation(id)), f.Text(f.TypeAnnotation(id)))
	}

	tags := members[2]
	if f.Text(f.Key(tags)) != "tags" || !f.IsOptional(tags) {
		t.Fatalf("unexpected tags member: key=%q optional=%v", f.Text(f.Key(tags)), f.IsOptional(tags))
	}
	arr := f.TypeAnnotation(tags)
	if f.Kind(arr) != tsast.KindArrayType {
		t.Fatalf("expected array type for tags, got %v", f.Kind(arr))
	}
	if f.Kind(f.ElementType(arr)) != tsast.KindKeywordType || f.Text(f.ElementType(arr)) != "string" {
		t.Fatalf("unexpected tags element type: %v %q", f.Kind(f.ElementType(arr)), f.Text(f.ElementType(arr)))
	}
}

func TestParse_EnumAutoIncrementAndExplicitValues(t *testing.T) {
	src := `
enum Status {
  Active,
  Inactive,
  Deleted = 10,
  Next,
}
`
	f := mustParse(t, src)
	decl := f.Children(f.Root)[0]
	if f.Kind(decl) != tsast.KindEnumDecl {
		t.Fatalf("expected enum decl, got %v", f.Kind(decl))
	}
	members := f.Members(decl)
	if len(members) != 4 {
		t.Fatalf("expected 4 members, got %d", len(members))
	}
	want := []float64{0, 1, 10, 11}
	for i, m := range members {
		if f.Kind(m) != tsast.KindNumericLiteral || f.NumValue(m) != want[i] {
			t.Fatalf("member %d: kind=%v value=%v, want %v", i, f.Kind(m), f.NumValue(m), want[i])
		}
	}
}

func TestParse_PathCallWithMarkersAndResponse(t *testing.T) {
	src := `
export const getUser = Path(
  (req: { id: RouteParam<number, true> }) => {
    return Response(new User(), { statusCode: "200", description: "ok" });
  },
  { method: "get", path: "/users/:id", tags: ["users", "v1"] },
);
`
	f := mustParse(t, src)
	stmts := f.Children(f.Root)
	if len(stmts) != 1 {
		t.Fatalf("expected 1 top-level statement, got %d", len(stmts))
	}

	// export const getUser = Path(...)
	exportDecl := stmts[0]
	if f.Kind(exportDecl) != tsast.KindExportDecl {
		t.Fatalf("expected export decl, got %v", f.Kind(exportDecl))
	}
	varStmt := f.Decl(exportDecl)
	if f.Kind(varStmt) != tsast.KindVarStatement {
		t.Fatalf("expected var statement, got %v", f.Kind(varStmt))
	}
	declarator := f.Children(varStmt)[0]
	call := f.Initializer(declarator)
	if f.Kind(call) != tsast.KindCallExpr {
		t.Fatalf("expected call expr, got %v", f.Kind(call))
	}
	if f.Kind(f.Callee(call)) != tsast.KindIdentifier || f.Text(f.Callee(call)) != "Path" {
		t.Fatalf("expected Path callee, got %v %q", f.Kind(f.Callee(call)), f.Text(f.Callee(call)))
	}

	args := f.Args(call)
	if len(args) != 2 {
		t.Fatalf("expected 2 arguments to Path(...), got %d", len(args))
	}
	handler, opts := args[0], args[1]
	if f.Kind(handler) != tsast.KindFunctionExpr {
		t.Fatalf("expected arrow function handler, got %v", f.Kind(handler))
	}
	if f.Kind(opts) != tsast.KindObjectLiteralExpr {
		t.Fatalf("expected options object literal, got %v", f.Kind(opts))
	}
	props := f.ObjectLiteralProps(opts)
	if f.Text(props["method"]) != "get" || f.Text(props["path"]) != "/users/:id" {
		t.Fatalf("unexpected options: method=%q path=%q", f.Text(props["method"]), f.Text(props["path"]))
	}
	tagsNode, ok := props["tags"]
	if !ok || f.Kind(tagsNode) != tsast.KindArrayLiteralExpr || len(f.Children(tagsNode)) != 2 {
		t.Fatalf("unexpected tags literal: %+v", tagsNode)
	}

	params := f.Params(handler)
	if len(params) != 1 {
		t.Fatalf("expected 1 handler parameter, got %d", len(params))
	}
	paramType := f.TypeAnnotation(params[0])
	if f.Kind(paramType) != tsast.KindTypeLiteral {
		t.Fatalf("expected inline type literal parameter type, got %v", f.Kind(paramType))
	}
	idMember := f.Members(paramType)[0]
	routeParamType := f.TypeAnnotation(idMember)
	if f.Kind(routeParamType) != tsast.KindTypeRef || f.Text(routeParamType) != "RouteParam" {
		t.Fatalf("expected RouteParam type ref, got kind=%v text=%q", f.Kind(routeParamType), f.Text(routeParamType))
	}

	// the handler body is a block containing one return statement whose
	// expression is a Response(...) call.
	body := f.Body(handler)
	if f.Kind(body) != tsast.KindBlock {
		t.Fatalf("expected block body, got %v", f.Kind(body))
	}
}

func TestParse_TypeAliasUnionAndVarDeclaratorAlias(t *testing.T) {
	src := `
type ID = string | number;
const handler = UserController;
`
	f := mustParse(t, src)
	stmts := f.Children(f.Root)
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}

	alias := stmts[0]
	if f.Kind(alias) != tsast.KindTypeAliasDecl || f.Text(alias) != "ID" {
		t.Fatalf("expected type alias ID, got kind=%v text=%q", f.Kind(alias), f.Text(alias))
	}
	union := f.TypeAnnotation(alias)
	if f.Kind(union) != tsast.KindUnionType || len(f.Children(union)) != 2 {
		t.Fatalf("expected 2-member union type, got kind=%v len=%d", f.Kind(union), len(f.Children(union)))
	}

	varStmt := stmts[1]
	declarator := f.Children(varStmt)[0]
	if f.Text(declarator) != "handler" {
		t.Fatalf("expected declarator named handler, got %q", f.Text(declarator))
	}
	init := f.Initializer(declarator)
	if f.Kind(init) != tsast.KindIdentifier || f.Text(init) != "UserController" {
		t.Fatalf("expected identifier initializer, got kind=%v text=%q", f.Kind(init), f.Text(init))
	}
}

func TestCache_ParsesEachPathAtMostOnce(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/a.ts"
	if err := os.WriteFile(path, []byte("export const x = 1;"), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}

	c := NewCache()
	f1, err := c.Scan(path)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	f2, err := c.Scan(path)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if f1 != f2 {
		t.Fatal("expected Cache.Scan to return the identical *SourceFile on repeated calls")
	}
}

func TestCache_FailedParseStaysFailed(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/missing.ts"

	c := NewCache()
	if _, err := c.Scan(path); err == nil {
		t.Fatal("expected an error for a nonexistent file")
	}
	if _, err := c.Scan(path); err == nil {
		t.Fatal("expected the cached error to be returned on a second call")
	}
}
