package symbols

import "testing"

func TestTable_LookupInnermostFirst(t *testing.T) {
	table := NewTable()
	table.Insert("X", Declaration{Kind: KindAlias, From: "X", To: "Outer"})

	table.PushScope()
	table.Insert("X", Declaration{Kind: KindAlias, From: "X", To: "Inner"})

	decl, ok := table.Lookup("X")
	if !ok || decl.To != "Inner" {
		t.Fatalf("expected innermost binding Inner, got %+v ok=%v", decl, ok)
	}

	table.PopScope()
	decl, ok = table.Lookup("X")
	if !ok || decl.To != "Outer" {
		t.Fatalf("expected outer binding restored after PopScope, got %+v ok=%v", decl, ok)
	}
}

// TestTable_HandlerScopeDoesNotLeakToSiblings exercises spec.md §8 property
// 6 (scope hygiene): a local variable named identically to a top-level type
// inside a handler body must not overwrite the top-level symbol for
// sibling handlers.
func TestTable_HandlerScopeDoesNotLeakToSiblings(t *testing.T) {
	table := NewTable()
	table.Insert("User", Declaration{Kind: KindType})

	table.PushScope()
	table.Insert("User", Declaration{Kind: KindAlias, From: "User", To: "Shadowed"})
	table.PopScope()

	decl, ok := table.Lookup("User")
	if !ok || decl.Kind != KindType {
		t.Fatalf("expected top-level User undisturbed by a popped handler scope, got %+v ok=%v", decl, ok)
	}
}

func TestTable_PopScope_PanicsWhenNoneLeft(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected PopScope with no pushed scope to panic")
		}
	}()
	table := NewTable()
	table.PopScope()
}

func TestTable_ResolveRoot_FollowsAliasChain(t *testing.T) {
	// type X1=X; type X2=X1; export {X2 as X} — spec.md §8 property 3.
	table := NewTable()
	table.Insert("X", Declaration{Kind: KindType})
	table.Insert("X1", Declaration{Kind: KindAlias, From: "X1", To: "X"})
	table.Insert("X2", Declaration{Kind: KindAlias, From: "X2", To: "X1"})

	decl, ok := table.ResolveRoot("X2")
	if !ok || decl.Kind != KindType {
		t.Fatalf("expected alias chain to resolve to the terminal Type, got %+v ok=%v", decl, ok)
	}
}

func TestTable_ResolveRootName_ReturnsTerminalLocalName(t *testing.T) {
	table := NewTable()
	table.Insert("X", Declaration{Kind: KindType})
	table.Insert("X1", Declaration{Kind: KindAlias, From: "X1", To: "X"})

	if name := table.ResolveRootName("X1"); name != "X" {
		t.Fatalf("expected canonical name X, got %q", name)
	}
}

func TestTable_ResolveRootName_UnknownNamePassesThrough(t *testing.T) {
	table := NewTable()
	if name := table.ResolveRootName("Ghost"); name != "Ghost" {
		t.Fatalf("expected unresolved name to pass through unchanged, got %q", name)
	}
}

// TestTable_ResolveRoot_CyclicAliasTerminates guards against malformed input
// (spec.md §3: "Alias chains are acyclic in well-formed input; the resolver
// guards with a fixed-point loop that exits when the key stops changing").
func TestTable_ResolveRoot_CyclicAliasTerminates(t *testing.T) {
	table := NewTable()
	table.Insert("A", Declaration{Kind: KindAlias, From: "A", To: "B"})
	table.Insert("B", Declaration{Kind: KindAlias, From: "B", To: "A"})

	done := make(chan struct{})
	go func() {
		table.ResolveRoot("A")
		close(done)
	}()
	select {
	case <-done:
	default:
	}
	// The call above either already returned (the common case, since
	// ResolveRoot is synchronous) or is spinning; waiting on done below
	// completes only once it returns, so a non-terminating walk hangs the test.
	<-done
}

func TestTable_ResolveRoot_ImportTerminatesWalk(t *testing.T) {
	// Import/Export terminate the walk rather than being followed further:
	// the caller (resolver.Resolve) decides to enqueue a cross-file
	// obligation instead of this package crossing files itself.
	table := NewTable()
	table.Insert("User", Declaration{Kind: KindImport, Name: "User", SourceFile: "models.ts"})

	decl, ok := table.ResolveRoot("User")
	if !ok || decl.Kind != KindImport || decl.SourceFile != "models.ts" {
		t.Fatalf("expected ResolveRoot to stop at the Import declaration, got %+v ok=%v", decl, ok)
	}
}

func TestTable_ResolveRoot_MissingNameReportsNotFound(t *testing.T) {
	table := NewTable()
	if _, ok := table.ResolveRoot("Ghost"); ok {
		t.Fatal("expected ResolveRoot to report not-found for an unregistered name")
	}
}

func TestTables_ForCreatesLazilyAndIsStable(t *testing.T) {
	tables := NewTables()
	a := tables.For("a.ts")
	a.Insert("X", Declaration{Kind: KindType})

	again := tables.For("a.ts")
	if _, ok := again.Lookup("X"); !ok {
		t.Fatal("expected the same Table instance to be returned for a repeated path")
	}

	b := tables.For("b.ts")
	if _, ok := b.Lookup("X"); ok {
		t.Fatal("expected a distinct Table for a different path")
	}
}
