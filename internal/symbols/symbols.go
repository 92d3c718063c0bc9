// Package symbols implements the per-file scoped symbol table: a stack of
// name->Declaration maps supporting nested scopes and a registry keyed by
// absolute file path for cross-file lookup.
//
// Declaration is a tagged sum (an interface-free discriminated struct) with
// an exhaustive switch on Kind, rather than a class hierarchy.
package symbols

import "github.com/routemark/routemark/internal/tsast"

// Kind discriminates the four Declaration variants.
type Kind int

const (
	// KindType is a local type declaration: class, interface, type alias,
	// enum, or an object/array literal used as a default-export value.
	KindType Kind = iota
	// KindAlias is a local name that re-points to another local name.
	KindAlias
	// KindImport is a local name whose definition lives in another file.
	KindImport
	// KindExport is a name re-exported from another file.
	KindExport
)

// Declaration is the sum type stored in the symbol table. Only the fields
// relevant to Kind are meaningful; callers switch on Kind first.
type Declaration struct {
	Kind Kind

	// KindType
	File *tsast.SourceFile
	Node tsast.Handle

	// KindAlias
	From string
	To   string

	// KindImport / KindExport: name as exported by SourceFile.
	Name       string
	SourceFile string
}

type scope map[string]Declaration

// Table is the per-file scope stack.
type Table struct {
	scopes []scope
}

// NewTable creates a table with a single top-level scope.
func NewTable() *Table {
	return &Table{scopes: []scope{make(scope)}}
}

// PushScope opens a new nested scope, framed around handler bodies so that
// identifier shadowing inside a handler does not leak to sibling handlers.
func (t *Table) PushScope() {
	t.scopes = append(t.scopes, make(scope))
}

// PopScope closes the innermost scope. Popping the last remaining scope is a
// programmer error and panics, mirroring an unbalanced push/pop in the
// driver — there is always at least the file-level scope.
func (t *Table) PopScope() {
	if len(t.scopes) <= 1 {
		panic("symbols: PopScope called with no pushed scope")
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
}

// Insert writes name -> decl into the innermost (top) scope.
func (t *Table) Insert(name string, decl Declaration) {
	t.scopes[len(t.scopes)-1][name] = decl
}

// Lookup searches innermost-first for name.
func (t *Table) Lookup(name string) (Declaration, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if d, ok := t.scopes[i][name]; ok {
			return d, true
		}
	}
	return Declaration{}, false
}

// resolveChain walks Alias links within this file until a non-alias
// declaration is reached, the name is no longer found, or a fixed point is
// detected (the chain revisits a name — a guard against a cyclic alias
// chain in malformed input). cur is the last local name that was
// successfully looked up.
func (t *Table) resolveChain(name string) (cur string, decl Declaration, found bool) {
	visited := make(map[string]bool)
	cur = name
	last, lastDecl, haveLast := "", Declaration{}, false
	for {
		d, ok := t.Lookup(cur)
		if !ok {
			if haveLast {
				return last, lastDecl, true
			}
			return cur, Declaration{}, false
		}
		if d.Kind != KindAlias {
			return cur, d, true
		}
		if visited[cur] {
			// Cyclic alias chain in malformed input: stop at the fixed point.
			return cur, d, true
		}
		last, lastDecl, haveLast = cur, d, true
		visited[cur] = true
		cur = d.To
	}
}

// ResolveRoot follows Alias chains within this file (fixed point) until the
// target is a non-alias or not present, returning whatever terminal value is
// reached. It does not cross files: Import/Export terminate the walk and
// signal "go elsewhere" to the caller.
func (t *Table) ResolveRoot(name string) (Declaration, bool) {
	_, d, ok := t.resolveChain(name)
	return d, ok
}

// ResolveRootName is ResolveRoot but returns just the final local name,
// used to canonicalize schema names.
func (t *Table) ResolveRootName(name string) string {
	cur, _, ok := t.resolveChain(name)
	if !ok {
		return name
	}
	return cur
}

// Tables is the cross-file registry: one Table per absolute file path,
// created lazily as files are parsed (the module cache populates it during
// traversal).
type Tables struct {
	perFile map[string]*Table
}

// NewTables creates an empty registry.
func NewTables() *Tables {
	return &Tables{perFile: make(map[string]*Table)}
}

// For returns the Table for path, creating an empty one on first access.
func (r *Tables) For(path string) *Table {
	t, ok := r.perFile[path]
	if !ok {
		t = NewTable()
		r.perFile[path] = t
	}
	return t
}
