// Package tsast provides a uniform traversal and accessor surface over a
// parsed TypeScript source file, independent of any concrete parser.
//
// The real TypeScript parser is an external collaborator: this package only
// defines the shape a parser must produce and the handle-based accessors the
// rest of the engine walks. Nodes live in a per-file arena and are addressed
// by Handle rather than by pointer, so a node can carry enough context to
// re-resolve its parent without the engine holding onto live references into
// the arena's backing storage.
package tsast

// Kind tags the concrete shape of a Node. The engine matches on Kind rather
// than on a class hierarchy of node types.
type Kind int

const (
	KindInvalid Kind = iota

	KindSourceFile

	// Declarations
	KindClassDecl
	KindInterfaceDecl
	KindTypeAliasDecl
	KindEnumDecl

	// Module linkage
	KindImportDecl       // import D from 'm' / import {X as Y} from 'm'
	KindImportSpecifier  // a single named/default specifier inside an ImportDecl
	KindExportNamedDecl  // export {X as Y} [from 'm']
	KindExportDefaultDecl // export default <expr-or-decl>
	KindExportDecl       // export <decl>

	KindVarDeclarator // const x: T = init  /  const x = init

	// Expressions
	KindCallExpr
	KindIdentifier
	KindFunctionExpr // arrow function or function expression
	KindNewExpr
	KindAsExpr        // x as T
	KindTypeAssertion // <T>x
	KindStringLiteral
	KindNumericLiteral
	KindBooleanLiteral
	KindArrayLiteralExpr
	KindObjectLiteralExpr

	// Types
	KindTypeRef        // Foo<A,B> or Foo
	KindArrayType      // T[]
	KindTypeLiteral    // { a: A; b: B }
	KindKeywordType    // number/string/boolean/bigint/symbol/any/unknown/void/never
	KindLiteralType    // "x" / 1 / true as a type
	KindUnionType
	KindIntersectionType
	KindOpaqueType // tuple/function-type/conditional/mapped/infer/operator/this/predicate/import-type

	// Members
	KindPropertySignature // interface/type-literal member
	KindPropertyDecl      // class field
	KindMethodMember      // class/interface method (ignored by the materializer)
	KindParameter         // function formal parameter

	// Statements (only as much shape as handler-body search needs: finding
	// a Response(...) call wherever it is nested).
	KindBlock           // { ... } — ordered statement list
	KindExprStatement   // a bare expression statement
	KindReturnStatement // return <expr>;
	KindIfStatement     // if (cond) thenBranch [else elseBranch]
	KindVarStatement    // wraps one or more KindVarDeclarator siblings
)

func (k Kind) String() string {
	switch k {
	case KindSourceFile:
		return "SourceFile"
	case KindClassDecl:
		return "ClassDecl"
	case KindInterfaceDecl:
		return "InterfaceDecl"
	case KindTypeAliasDecl:
		return "TypeAliasDecl"
	case KindEnumDecl:
		return "EnumDecl"
	case KindImportDecl:
		return "ImportDecl"
	case KindImportSpecifier:
		return "ImportSpecifier"
	case KindExportNamedDecl:
		return "ExportNamedDecl"
	case KindExportDefaultDecl:
		return "ExportDefaultDecl"
	case KindExportDecl:
		return "ExportDecl"
	case KindVarDeclarator:
		return "VarDeclarator"
	case KindCallExpr:
		return "CallExpr"
	case KindIdentifier:
		return "Identifier"
	case KindFunctionExpr:
		return "FunctionExpr"
	case KindNewExpr:
		return "NewExpr"
	case KindAsExpr:
		return "AsExpr"
	case KindTypeAssertion:
		return "TypeAssertion"
	case KindStringLiteral:
		return "StringLiteral"
	case KindNumericLiteral:
		return "NumericLiteral"
	case KindBooleanLiteral:
		return "BooleanLiteral"
	case KindArrayLiteralExpr:
		return "ArrayLiteralExpr"
	case KindObjectLiteralExpr:
		return "ObjectLiteralExpr"
	case KindTypeRef:
		return "TypeRef"
	case KindArrayType:
		return "ArrayType"
	case KindTypeLiteral:
		return "TypeLiteral"
	case KindKeywordType:
		return "KeywordType"
	case KindLiteralType:
		return "LiteralType"
	case KindUnionType:
		return "UnionType"
	case KindIntersectionType:
		return "IntersectionType"
	case KindOpaqueType:
		return "OpaqueType"
	case KindPropertySignature:
		return "PropertySignature"
	case KindPropertyDecl:
		return "PropertyDecl"
	case KindMethodMember:
		return "MethodMember"
	case KindParameter:
		return "Parameter"
	case KindBlock:
		return "Block"
	case KindExprStatement:
		return "ExprStatement"
	case KindReturnStatement:
		return "ReturnStatement"
	case KindIfStatement:
		return "IfStatement"
	case KindVarStatement:
		return "VarStatement"
	default:
		return "Invalid"
	}
}

// Handle addresses a Node within the SourceFile that produced it. NilHandle
// (-1) never points at a real node; the zero Handle is the arena's first node.
type Handle int32

const NilHandle Handle = -1

// node holds every field any Kind might need. Concrete constructors
// (NewClassDecl, NewTypeRef, ...) populate only the fields relevant to their
// Kind; accessors document which Kind they apply to.
type node struct {
	kind   Kind
	parent Handle

	text    string // identifier name, keyword name ("number"/"string"/...), literal text
	boolVal bool   // KindBooleanLiteral / KindLiteralType boolean value
	numVal  float64
	optional bool // KindPropertySignature / KindPropertyDecl: `a?: T`

	children []Handle

	callee         Handle
	args           []Handle
	params         []Handle
	body           Handle
	members        []Handle
	specifiers     []Handle
	typeAnnotation Handle
	elementType    Handle
	typeArguments  []Handle
	decl           Handle
	key            Handle
	initializer    Handle
	value          Handle // KindAsExpr/KindTypeAssertion/KindNewExpr inner expression

	// module linkage
	source   string // textual module specifier, pre-resolution
	local    string // local bound name
	imported string // original/exported name in the source module
}

// SourceFile is the arena owning every Node parsed from one file.
type SourceFile struct {
	Path  string
	Root  Handle
	nodes []node
}

// NewSourceFile creates an empty arena for path; the caller (a parser, or a
// test fixture builder) populates it via the New* constructors and finally
// sets Root.
func NewSourceFile(path string) *SourceFile {
	return &SourceFile{Path: path, Root: NilHandle}
}

func (f *SourceFile) alloc(n node) Handle {
	n.parent = NilHandle
	f.nodes = append(f.nodes, n)
	h := Handle(len(f.nodes) - 1)
	for _, c := range n.children {
		f.setParent(c, h)
	}
	return h
}

func (f *SourceFile) setParent(h, parent Handle) {
	if h == NilHandle {
		return
	}
	f.nodes[h].parent = parent
}

func (f *SourceFile) get(h Handle) node {
	if h == NilHandle {
		return node{kind: KindInvalid, parent: NilHandle, typeAnnotation: NilHandle, elementType: NilHandle, body: NilHandle, callee: NilHandle, decl: NilHandle, key: NilHandle, initializer: NilHandle, value: NilHandle}
	}
	return f.nodes[h]
}

// Kind returns the tagged discriminator for h.
func (f *SourceFile) Kind(h Handle) Kind { return f.get(h).kind }

// Children returns the ordered immediate children of h.
func (f *SourceFile) Children(h Handle) []Handle { return f.get(h).children }

// Parent returns h's parent, or NilHandle for the root.
func (f *SourceFile) Parent(h Handle) Handle { return f.get(h).parent }

// Text returns the identifier name, keyword name, or literal text of h.
func (f *SourceFile) Text(h Handle) string { return f.get(h).text }

// BoolValue returns the literal boolean value of a KindBooleanLiteral or a
// KindLiteralType wrapping a boolean literal.
func (f *SourceFile) BoolValue(h Handle) bool { return f.get(h).boolVal }

// NumValue returns the literal numeric value of a KindNumericLiteral or a
// KindLiteralType wrapping a numeric literal.
func (f *SourceFile) NumValue(h Handle) float64 { return f.get(h).numVal }

// Callee returns the callee of a KindCallExpr.
func (f *SourceFile) Callee(h Handle) Handle { return f.get(h).callee }

// Args returns the argument list of a KindCallExpr or KindNewExpr.
func (f *SourceFile) Args(h Handle) []Handle { return f.get(h).args }

// Params returns the formal parameters of a KindFunctionExpr.
func (f *SourceFile) Params(h Handle) []Handle { return f.get(h).params }

// Body returns the body of a KindFunctionExpr (a block, searched recursively
// by endpoint discovery for Response(...) calls).
func (f *SourceFile) Body(h Handle) Handle { return f.get(h).body }

// Members returns the member list of a KindClassDecl, KindInterfaceDecl,
// KindTypeLiteral, or KindEnumDecl. A class body and an interface body are
// both served by this one accessor.
func (f *SourceFile) Members(h Handle) []Handle { return f.get(h).members }

// ClassBody is Members under the name callers reading a class declaration expect.
func (f *SourceFile) ClassBody(h Handle) []Handle { return f.Members(h) }

// InterfaceBody is Members under the name callers reading an interface declaration expect.
func (f *SourceFile) InterfaceBody(h Handle) []Handle { return f.Members(h) }

// Specifiers returns the import/export specifier list of a KindImportDecl or
// KindExportNamedDecl.
func (f *SourceFile) Specifiers(h Handle) []Handle { return f.get(h).specifiers }

// TypeAnnotation returns the declared type of a KindParameter,
// KindVarDeclarator, KindPropertySignature, or KindPropertyDecl.
func (f *SourceFile) TypeAnnotation(h Handle) Handle { return f.get(h).typeAnnotation }

// ElementType returns the element type of a KindArrayType.
func (f *SourceFile) ElementType(h Handle) Handle { return f.get(h).elementType }

// TypeParameters returns the type argument list of a KindTypeRef (the
// positional marker arguments decoded by endpoint discovery). Type parameter
// lists of declarations are not recorded, so it returns nil for those.
func (f *SourceFile) TypeParameters(h Handle) []Handle { return f.get(h).typeArguments }

// Decl returns the wrapped declaration of a KindExportDecl.
func (f *SourceFile) Decl(h Handle) Handle { return f.get(h).decl }

// Key returns the property key of a KindPropertySignature or
// KindPropertyDecl; nil for computed/bracketed keys (the materializer skips
// those).
func (f *SourceFile) Key(h Handle) Handle { return f.get(h).key }

// Initializer returns the right-hand side of a KindVarDeclarator.
func (f *SourceFile) Initializer(h Handle) Handle { return f.get(h).initializer }

// Value returns the wrapped inner expression of a KindAsExpr,
// KindTypeAssertion, or the callee-name-bearing identifier of a KindNewExpr.
func (f *SourceFile) Value(h Handle) Handle { return f.get(h).value }

// Source returns the raw (pre-resolution) module specifier of a
// KindImportDecl or KindExportNamedDecl.
func (f *SourceFile) Source(h Handle) string { return f.get(h).source }

// Local returns the local bound name of a KindImportSpecifier (the `Y` in
// `import {X as Y}`) or the exported alias name of a re-export specifier.
func (f *SourceFile) Local(h Handle) string { return f.get(h).local }

// Imported returns the name as exported by the source module (the `X` in
// `import {X as Y}`); equal to Local when there is no rename.
func (f *SourceFile) Imported(h Handle) string { return f.get(h).imported }

// IsComputedKey reports whether a property signature/declaration has no
// plain-identifier key (Key returns NilHandle in that case).
func (f *SourceFile) IsComputedKey(h Handle) bool { return f.Key(h) == NilHandle }

// IsOptional reports whether a KindPropertySignature/KindPropertyDecl was
// declared with `?` (`a?: T`).
func (f *SourceFile) IsOptional(h Handle) bool { return f.get(h).optional }
