package resolver

import (
	"testing"

	"github.com/routemark/routemark/internal/diagnostic"
	"github.com/routemark/routemark/internal/openapi"
	"github.com/routemark/routemark/internal/symbols"
	"github.com/routemark/routemark/internal/tsast"
	"github.com/routemark/routemark/internal/workqueue"
)

type recordingMaterializer struct {
	calls []materializeCall
}

type materializeCall struct {
	file       *tsast.SourceFile
	node       tsast.Handle
	schemaName string
	namespace  string
}

func (m *recordingMaterializer) Materialize(ctx *Context, file *tsast.SourceFile, node tsast.Handle, schemaName, namespace string) {
	m.calls = append(m.calls, materializeCall{file, node, schemaName, namespace})
}

func newTestContext(mat Materializer) *Context {
	return NewContext(symbols.NewTables(), openapi.NewDocument("t", "0").Components, workqueue.New(), diagnostic.NewCollector(false, false), mat)
}

func TestResolve_LocalTypeCallsMaterializer(t *testing.T) {
	f := tsast.NewSourceFile("a.ts")
	iface := f.NewInterfaceDecl("User")
	f.Finalize(iface)

	mat := &recordingMaterializer{}
	ctx := newTestContext(mat)
	ctx.Tables.For("a.ts").Insert("User", symbols.Declaration{Kind: symbols.KindType, File: f, Node: iface})

	Resolve(ctx, "a.ts", "User", "User", "")

	if len(mat.calls) != 1 || mat.calls[0].schemaName != "User" {
		t.Fatalf("expected one materialize call for User, got %+v", mat.calls)
	}
}

func TestResolve_ImportEnqueuesPendingSchema(t *testing.T) {
	mat := &recordingMaterializer{}
	ctx := newTestContext(mat)
	ctx.Tables.For("handler.ts").Insert("User", symbols.Declaration{Kind: symbols.KindImport, Name: "User", SourceFile: "models.ts"})

	Resolve(ctx, "handler.ts", "User", "User", "")

	if len(mat.calls) != 0 {
		t.Fatalf("expected no direct materialize call, got %+v", mat.calls)
	}
	file, ok := ctx.Queue.NextFile()
	if !ok || file != "models.ts" {
		t.Fatalf("expected models.ts queued, got %q ok=%v", file, ok)
	}
	pending := ctx.Queue.SchemasFor(file)
	if len(pending) != 1 || pending[0].ExportedName != "User" {
		t.Fatalf("unexpected pending schemas: %+v", pending)
	}
}

func TestResolve_ExportEnqueuesPendingSchema(t *testing.T) {
	mat := &recordingMaterializer{}
	ctx := newTestContext(mat)
	ctx.Tables.For("b.ts").Insert("X", symbols.Declaration{Kind: symbols.KindExport, Name: "X", SourceFile: "c.ts"})

	Resolve(ctx, "b.ts", "X", "X", "")

	file, ok := ctx.Queue.NextFile()
	if !ok || file != "c.ts" {
		t.Fatalf("expected c.ts queued, got %q ok=%v", file, ok)
	}
}

func TestResolve_UndissolvedAliasWarnsWithoutMaterializing(t *testing.T) {
	mat := &recordingMaterializer{}
	ctx := newTestContext(mat)
	ctx.Tables.For("a.ts").Insert("B", symbols.Declaration{Kind: symbols.KindAlias, From: "B", To: "C"})

	Resolve(ctx, "a.ts", "B", "B", "")

	if len(mat.calls) != 0 {
		t.Fatalf("expected no materialize call for undissolved alias, got %+v", mat.calls)
	}
	if ctx.Diag.WarningCount() != 1 {
		t.Fatalf("expected 1 warning, got %d", ctx.Diag.WarningCount())
	}
}

func TestResolve_MissingDeclarationWarns(t *testing.T) {
	mat := &recordingMaterializer{}
	ctx := newTestContext(mat)

	Resolve(ctx, "a.ts", "Ghost", "Ghost", "")

	if ctx.Diag.WarningCount() != 1 {
		t.Fatalf("expected 1 warning, got %d", ctx.Diag.WarningCount())
	}
}

func TestResolve_CycleGuardSkipsReentrantMaterialize(t *testing.T) {
	f := tsast.NewSourceFile("a.ts")
	iface := f.NewInterfaceDecl("Tree")
	f.Finalize(iface)

	var selfCalling *recordingSelfCallMaterializer
	selfCalling = &recordingSelfCallMaterializer{}
	ctx := newTestContext(selfCalling)
	ctx.Tables.For("a.ts").Insert("Tree", symbols.Declaration{Kind: symbols.KindType, File: f, Node: iface})

	Resolve(ctx, "a.ts", "Tree", "Tree", "")

	if selfCalling.entries != 1 {
		t.Fatalf("expected the re-entrant Resolve call to be skipped by the cycle guard, got %d entries", selfCalling.entries)
	}
}

// recordingSelfCallMaterializer simulates a self-referential schema: its
// Materialize implementation calls Resolve again for the same target before
// returning, the way schema.Materializer does for a property typed as its
// own enclosing interface.
type recordingSelfCallMaterializer struct {
	entries int
}

func (m *recordingSelfCallMaterializer) Materialize(ctx *Context, file *tsast.SourceFile, node tsast.Handle, schemaName, namespace string) {
	m.entries++
	Resolve(ctx, file.Path, "Tree", schemaName, namespace)
}
