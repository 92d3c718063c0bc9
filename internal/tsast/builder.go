package tsast

// The New* constructors build nodes bottom-up: children must already be
// allocated before a parent that references them. They are used both by
// internal/tsscan (the concrete default parser) and by tests, which act as
// their own tiny "parser" fixtures for exercising the engine.

func (f *SourceFile) NewIdentifier(name string) Handle {
	return f.alloc(node{kind: KindIdentifier, text: name, parent: NilHandle})
}

func (f *SourceFile) NewKeywordType(name string) Handle {
	return f.alloc(node{kind: KindKeywordType, text: name})
}

func (f *SourceFile) NewStringLiteral(value string) Handle {
	return f.alloc(node{kind: KindStringLiteral, text: value})
}

func (f *SourceFile) NewNumericLiteral(value float64) Handle {
	return f.alloc(node{kind: KindNumericLiteral, numVal: value})
}

func (f *SourceFile) NewBooleanLiteral(value bool) Handle {
	return f.alloc(node{kind: KindBooleanLiteral, boolVal: value})
}

// NewStringLiteralType wraps a string literal used in type position ("x" as
// a type argument, e.g. the Namespace/Format marker slots).
func (f *SourceFile) NewStringLiteralType(value string) Handle {
	return f.alloc(node{kind: KindLiteralType, text: value})
}

func (f *SourceFile) NewBooleanLiteralType(value bool) Handle {
	return f.alloc(node{kind: KindLiteralType, boolVal: value, text: "__bool__"})
}

// IsBooleanLiteralType distinguishes a boolean literal type from a string one.
func (f *SourceFile) IsBooleanLiteralType(h Handle) bool {
	return f.get(h).kind == KindLiteralType && f.get(h).text == "__bool__"
}

func (f *SourceFile) NewArrayType(elem Handle) Handle {
	return f.alloc(node{kind: KindArrayType, elementType: elem, children: []Handle{elem}})
}

func (f *SourceFile) NewTypeRef(name string, typeArgs ...Handle) Handle {
	return f.alloc(node{kind: KindTypeRef, text: name, typeArguments: typeArgs, children: typeArgs})
}

func (f *SourceFile) NewUnionType(members ...Handle) Handle {
	return f.alloc(node{kind: KindUnionType, children: members})
}

func (f *SourceFile) NewIntersectionType(members ...Handle) Handle {
	return f.alloc(node{kind: KindIntersectionType, children: members})
}

// NewOpaqueType covers tuple/function-type/conditional/mapped/infer/operator/
// this/predicate/import-type nodes, none of which the schema materializer
// decomposes further — they fall back to a generic, unstructured schema.
func (f *SourceFile) NewOpaqueType(describe string) Handle {
	return f.alloc(node{kind: KindOpaqueType, text: describe})
}

func (f *SourceFile) NewPropertySignature(key Handle, typeAnnotation Handle) Handle {
	return f.newPropertySignature(key, typeAnnotation, false)
}

func (f *SourceFile) NewOptionalPropertySignature(key Handle, typeAnnotation Handle) Handle {
	return f.newPropertySignature(key, typeAnnotation, true)
}

func (f *SourceFile) newPropertySignature(key, typeAnnotation Handle, optional bool) Handle {
	children := []Handle{typeAnnotation}
	if key != NilHandle {
		children = append(children, key)
	}
	return f.alloc(node{kind: KindPropertySignature, key: key, typeAnnotation: typeAnnotation, optional: optional, children: children})
}

func (f *SourceFile) NewPropertyDecl(key Handle, typeAnnotation Handle) Handle {
	return f.newPropertyDecl(key, typeAnnotation, false)
}

func (f *SourceFile) NewOptionalPropertyDecl(key Handle, typeAnnotation Handle) Handle {
	return f.newPropertyDecl(key, typeAnnotation, true)
}

func (f *SourceFile) newPropertyDecl(key, typeAnnotation Handle, optional bool) Handle {
	children := []Handle{typeAnnotation}
	if key != NilHandle {
		children = append(children, key)
	}
	return f.alloc(node{kind: KindPropertyDecl, key: key, typeAnnotation: typeAnnotation, optional: optional, children: children})
}

func (f *SourceFile) NewMethodMember(name string) Handle {
	return f.alloc(node{kind: KindMethodMember, text: name})
}

func (f *SourceFile) NewTypeLiteral(members ...Handle) Handle {
	return f.alloc(node{kind: KindTypeLiteral, members: members, children: members})
}

func (f *SourceFile) NewInterfaceDecl(name string, members ...Handle) Handle {
	return f.alloc(node{kind: KindInterfaceDecl, text: name, members: members, children: members})
}

func (f *SourceFile) NewClassDecl(name string, members ...Handle) Handle {
	return f.alloc(node{kind: KindClassDecl, text: name, members: members, children: members})
}

func (f *SourceFile) NewEnumDecl(name string, members ...Handle) Handle {
	return f.alloc(node{kind: KindEnumDecl, text: name, members: members, children: members})
}

func (f *SourceFile) NewTypeAliasDecl(name string, aliased Handle) Handle {
	return f.alloc(node{kind: KindTypeAliasDecl, text: name, typeAnnotation: aliased, children: []Handle{aliased}})
}

// NewImportSpecifier builds one specifier of an import (or a re-export's
// specifier list). imported is the name as it exists in the source module;
// local is the bound/rename name ("default" imported name for default
// imports is conventionally "default").
func (f *SourceFile) NewImportSpecifier(imported, local string) Handle {
	return f.alloc(node{kind: KindImportSpecifier, imported: imported, local: local})
}

func (f *SourceFile) NewImportDecl(source string, specifiers ...Handle) Handle {
	return f.alloc(node{kind: KindImportDecl, source: source, specifiers: specifiers, children: specifiers})
}

// NewExportNamedDecl builds `export {X as Y} [from 'm']`; source is "" for a
// plain re-export of a local binding.
func (f *SourceFile) NewExportNamedDecl(source string, specifiers ...Handle) Handle {
	return f.alloc(node{kind: KindExportNamedDecl, source: source, specifiers: specifiers, children: specifiers})
}

// NewExportDefaultDecl wraps `export default <expr-or-decl>`.
func (f *SourceFile) NewExportDefaultDecl(value Handle) Handle {
	return f.alloc(node{kind: KindExportDefaultDecl, value: value, children: []Handle{value}})
}

// NewExportDecl wraps `export <decl>`.
func (f *SourceFile) NewExportDecl(decl Handle) Handle {
	return f.alloc(node{kind: KindExportDecl, decl: decl, children: []Handle{decl}})
}

func (f *SourceFile) NewVarDeclarator(name string, typeAnnotation, initializer Handle) Handle {
	var children []Handle
	if typeAnnotation != NilHandle {
		children = append(children, typeAnnotation)
	}
	if initializer != NilHandle {
		children = append(children, initializer)
	}
	return f.alloc(node{kind: KindVarDeclarator, text: name, typeAnnotation: typeAnnotation, initializer: initializer, children: children})
}

func (f *SourceFile) NewParameter(name string, typeAnnotation Handle) Handle {
	return f.alloc(node{kind: KindParameter, text: name, typeAnnotation: typeAnnotation, children: []Handle{typeAnnotation}})
}

func (f *SourceFile) NewFunctionExpr(body Handle, params ...Handle) Handle {
	children := append(append([]Handle{}, params...), body)
	return f.alloc(node{kind: KindFunctionExpr, params: params, body: body, children: children})
}

func (f *SourceFile) NewCallExpr(callee Handle, args ...Handle) Handle {
	children := append([]Handle{callee}, args...)
	return f.alloc(node{kind: KindCallExpr, callee: callee, args: args, children: children})
}

func (f *SourceFile) NewNewExpr(calleeName string, args ...Handle) Handle {
	ident := f.NewIdentifier(calleeName)
	children := append([]Handle{ident}, args...)
	return f.alloc(node{kind: KindNewExpr, value: ident, args: args, children: children})
}

func (f *SourceFile) NewAsExpr(value, typeAnnotation Handle) Handle {
	return f.alloc(node{kind: KindAsExpr, value: value, typeAnnotation: typeAnnotation, children: []Handle{value, typeAnnotation}})
}

func (f *SourceFile) NewTypeAssertion(typeAnnotation, value Handle) Handle {
	return f.alloc(node{kind: KindTypeAssertion, value: value, typeAnnotation: typeAnnotation, children: []Handle{typeAnnotation, value}})
}

func (f *SourceFile) NewArrayLiteralExpr(elements ...Handle) Handle {
	return f.alloc(node{kind: KindArrayLiteralExpr, children: elements})
}

// NewObjectLiteralExpr builds an object literal from alternating key/value
// properties, used for the Path/Response options-object argument. Keys are
// plain strings (identifier property names); values are arbitrary nodes
// (string/number/boolean literal or array-literal nodes).
func (f *SourceFile) NewObjectLiteralExpr(props map[string]Handle) Handle {
	var children []Handle
	keys := make([]Handle, 0, len(props))
	for k, v := range props {
		keyNode := f.NewIdentifier(k)
		keys = append(keys, keyNode)
		children = append(children, keyNode, v)
	}
	h := f.alloc(node{kind: KindObjectLiteralExpr, children: children})
	// Stash key/value pairs via a parallel members list: members[i*2]=key, members[i*2+1]=value
	f.nodes[h].members = children
	_ = keys
	return h
}

// ObjectLiteralProps returns the key/value pairs of a KindObjectLiteralExpr
// built via NewObjectLiteralExpr, in the node's own iteration order (which is
// not spec-significant: option fields are looked up by key).
func (f *SourceFile) ObjectLiteralProps(h Handle) map[string]Handle {
	m := f.get(h)
	result := make(map[string]Handle, len(m.members)/2)
	for i := 0; i+1 < len(m.members); i += 2 {
		key := m.members[i]
		result[f.Text(key)] = m.members[i+1]
	}
	return result
}

// NewBlock builds a `{ ... }` statement list, the body of a KindFunctionExpr
// whenever the handler is not a concise-body arrow function.
func (f *SourceFile) NewBlock(statements ...Handle) Handle {
	return f.alloc(node{kind: KindBlock, children: statements})
}

// NewExprStatement wraps a bare expression statement (e.g. a top-level
// Path(...) call, or a Response(...) call whose result is discarded).
func (f *SourceFile) NewExprStatement(expr Handle) Handle {
	return f.alloc(node{kind: KindExprStatement, value: expr, children: []Handle{expr}})
}

// NewReturnStatement wraps `return <expr>;`.
func (f *SourceFile) NewReturnStatement(expr Handle) Handle {
	return f.alloc(node{kind: KindReturnStatement, value: expr, children: []Handle{expr}})
}

// NewIfStatement wraps `if (cond) thenBranch [else elseBranch]`; elseBranch
// may be NilHandle.
func (f *SourceFile) NewIfStatement(cond, thenBranch, elseBranch Handle) Handle {
	children := []Handle{cond, thenBranch}
	if elseBranch != NilHandle {
		children = append(children, elseBranch)
	}
	return f.alloc(node{kind: KindIfStatement, callee: cond, body: thenBranch, value: elseBranch, children: children})
}

// Cond returns the condition of a KindIfStatement.
func (f *SourceFile) Cond(h Handle) Handle { return f.get(h).callee }

// Then returns the then-branch of a KindIfStatement (reuses Body).
func (f *SourceFile) Then(h Handle) Handle { return f.Body(h) }

// Else returns the else-branch of a KindIfStatement, or NilHandle.
func (f *SourceFile) Else(h Handle) Handle { return f.get(h).value }

// NewVarStatement wraps one or more sibling KindVarDeclarator nodes produced
// by a single `const a = ..., b = ...;` statement.
func (f *SourceFile) NewVarStatement(declarators ...Handle) Handle {
	return f.alloc(node{kind: KindVarStatement, children: declarators})
}

// NewProgram builds the file's root node from its ordered top-level
// statements (import/export/class/interface/.../var declarations).
func (f *SourceFile) NewProgram(statements ...Handle) Handle {
	return f.alloc(node{kind: KindSourceFile, children: statements})
}

// Finalize records the arena's root node. Parsers call this once construction
// of a file is complete.
func (f *SourceFile) Finalize(root Handle) {
	f.Root = root
}
