package tsscan

import (
	"fmt"

	"github.com/routemark/routemark/internal/tsast"
)

// parser walks a flat token slice with an explicit cursor so arrow-function
// vs parenthesized-expression and function-type vs parenthesized-type
// disambiguation can simply save/restore pos rather than needing a
// proper combinator backtracking library.
type parser struct {
	toks []token
	pos  int
	f    *tsast.SourceFile
}

// keywords this grammar treats specially; every other identifier is a plain
// binding name.
var keywordTypeNames = map[string]bool{
	"number": true, "string": true, "boolean": true, "bigint": true,
	"symbol": true, "any": true, "unknown": true, "void": true, "never": true,
}

var modifierKeywords = map[string]bool{
	"public": true, "private": true, "protected": true, "readonly": true,
	"static": true, "abstract": true, "override": true, "declare": true,
}

// Parse lexes and parses src (the contents of the file at path) into a
// tsast.SourceFile. A lex or syntax error is returned rather than panicking;
// the caller (internal/engine's module cache) records it as a ParseError
// diagnostic and proceeds with an empty file.
func Parse(path, src string) (*tsast.SourceFile, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	f := tsast.NewSourceFile(path)
	p := &parser{toks: toks, f: f}

	var stmts []tsast.Handle
	for !p.atEOF() {
		h, ok := p.parseStatement()
		if ok {
			stmts = append(stmts, h)
		}
	}
	f.Finalize(f.NewProgram(stmts...))
	return f, nil
}

func (p *parser) peek() token       { return p.toks[p.pos] }
func (p *parser) peekAt(n int) token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}
func (p *parser) atEOF() bool { return p.peek().kind == tokEOF }

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) isPunct(s string) bool {
	t := p.peek()
	return t.kind == tokPunct && t.text == s
}

func (p *parser) isKeyword(s string) bool {
	t := p.peek()
	return t.kind == tokIdent && t.text == s
}

func (p *parser) eatPunct(s string) bool {
	if p.isPunct(s) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expectPunct(s string) error {
	if !p.eatPunct(s) {
		return fmt.Errorf("line %d: expected %q, got %q", p.peek().pos, s, p.peek().text)
	}
	return nil
}

func (p *parser) eatKeyword(s string) bool {
	if p.isKeyword(s) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expectIdent() (string, error) {
	t := p.peek()
	if t.kind != tokIdent {
		return "", fmt.Errorf("line %d: expected identifier, got %q", t.pos, t.text)
	}
	p.advance()
	return t.text, nil
}

// skipDecorators consumes any number of `@Name` / `@Name(...)` decorators,
// which appear before class/interface members and class declarations in
// ordinary TypeScript source this grammar otherwise ignores.
func (p *parser) skipDecorators() {
	for p.isPunct("@") {
		p.advance()
		p.parseQualifiedIdentText()
		if p.isPunct("(") {
			p.skipBalanced("(", ")")
		}
	}
}

func (p *parser) skipModifiers() {
	for p.peek().kind == tokIdent && modifierKeywords[p.peek().text] {
		p.advance()
	}
}

// skipBalanced consumes tokens from an already-consumed-or-not open
// delimiter through its matching close, tracking nesting. Used for
// generic-parameter lists, heritage clauses, and other syntax this grammar
// parses for effect (skipping) rather than structure.
func (p *parser) skipBalanced(open, close string) {
	if !p.eatPunct(open) {
		return
	}
	depth := 1
	for depth > 0 && !p.atEOF() {
		switch {
		case p.isPunct(open):
			depth++
			p.advance()
		case p.isPunct(close):
			depth--
			p.advance()
		default:
			p.advance()
		}
	}
}

func (p *parser) parseQualifiedIdentText() string {
	name, _ := p.expectIdent()
	for p.isPunct(".") {
		p.advance()
		next, err := p.expectIdent()
		if err != nil {
			break
		}
		name += "." + next
	}
	return name
}

// --- Statements ---

func (p *parser) parseStatement() (tsast.Handle, bool) {
	p.skipDecorators()
	switch {
	case p.isKeyword("import"):
		return p.parseImport()
	case p.isKeyword("export"):
		return p.parseExport()
	case p.isKeyword("class"):
		return p.parseClassDecl()
	case p.isKeyword("interface"):
		return p.parseInterfaceDecl()
	case p.isKeyword("type") && p.peekAt(1).kind == tokIdent:
		return p.parseTypeAliasDecl()
	case p.isKeyword("enum"):
		return p.parseEnumDecl()
	case p.isKeyword("const") || p.isKeyword("let") || p.isKeyword("var"):
		return p.parseVarStatement()
	case p.isKeyword("return"):
		p.advance()
		if p.isPunct(";") {
			p.advance()
			return p.f.NewReturnStatement(tsast.NilHandle), true
		}
		e := p.parseAssignExpr()
		p.eatPunct(";")
		return p.f.NewReturnStatement(e), true
	case p.isKeyword("if"):
		return p.parseIfStatement()
	case p.isPunct("{"):
		return p.parseBlock(), true
	case p.isPunct(";"):
		p.advance()
		return tsast.NilHandle, false
	default:
		e := p.parseAssignExpr()
		p.eatPunct(";")
		return p.f.NewExprStatement(e), true
	}
}

func (p *parser) parseBlock() tsast.Handle {
	p.expectPunct("{")
	var stmts []tsast.Handle
	for !p.isPunct("}") && !p.atEOF() {
		h, ok := p.parseStatement()
		if ok {
			stmts = append(stmts, h)
		}
	}
	p.expectPunct("}")
	return p.f.NewBlock(stmts...)
}

func (p *parser) parseIfStatement() (tsast.Handle, bool) {
	p.advance() // "if"
	p.expectPunct("(")
	cond := p.parseAssignExpr()
	p.expectPunct(")")
	thenBranch, _ := p.parseStatement()
	elseBranch := tsast.NilHandle
	if p.eatKeyword("else") {
		elseBranch, _ = p.parseStatement()
	}
	return p.f.NewIfStatement(cond, thenBranch, elseBranch), true
}

// --- Imports/exports ---

func (p *parser) parseImport() (tsast.Handle, bool) {
	p.advance() // "import"
	if p.peek().kind == tokString {
		// Side-effect import: `import 'module';` — nothing to register.
		p.advance()
		p.eatPunct(";")
		return tsast.NilHandle, false
	}

	var specifiers []tsast.Handle
	if p.isPunct("*") || (p.peek().kind == tokIdent && p.peek().text == "*") {
		// `import * as NS from 'mod'` — not expressible as a named/default
		// specifier; degrade to a single specifier imported under "*".
		p.advance()
		p.eatKeyword("as")
		local, _ := p.expectIdent()
		specifiers = append(specifiers, p.f.NewImportSpecifier("*", local))
	} else if p.peek().kind == tokIdent && !p.isPunct("{") {
		local, _ := p.expectIdent()
		specifiers = append(specifiers, p.f.NewImportSpecifier("default", local))
		if p.eatPunct(",") {
			specifiers = append(specifiers, p.parseNamedSpecifiers()...)
		}
	} else if p.isPunct("{") {
		specifiers = append(specifiers, p.parseNamedSpecifiers()...)
	}

	p.eatKeyword("from")
	source := ""
	if p.peek().kind == tokString {
		source = p.advance().text
	}
	p.eatPunct(";")
	return p.f.NewImportDecl(source, specifiers...), true
}

func (p *parser) parseNamedSpecifiers() []tsast.Handle {
	var specs []tsast.Handle
	p.expectPunct("{")
	for !p.isPunct("}") && !p.atEOF() {
		name, err := p.expectIdent()
		if err != nil {
			p.advance()
			continue
		}
		local := name
		if p.eatKeyword("as") {
			local, _ = p.expectIdent()
		}
		specs = append(specs, p.f.NewImportSpecifier(name, local))
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct("}")
	return specs
}

func (p *parser) parseExport() (tsast.Handle, bool) {
	p.advance() // "export"
	if p.eatKeyword("default") {
		return p.parseExportDefault()
	}
	if p.isPunct("{") {
		specs := p.parseNamedSpecifiers()
		source := ""
		if p.eatKeyword("from") && p.peek().kind == tokString {
			source = p.advance().text
		}
		p.eatPunct(";")
		return p.f.NewExportNamedDecl(source, specs...), true
	}
	decl, ok := p.parseStatement()
	if !ok {
		return tsast.NilHandle, false
	}
	return p.f.NewExportDecl(decl), true
}

func (p *parser) parseExportDefault() (tsast.Handle, bool) {
	if p.isKeyword("class") {
		decl, _ := p.parseClassDecl()
		return p.f.NewExportDefaultDecl(decl), true
	}
	value := p.parseAssignExpr()
	p.eatPunct(";")
	return p.f.NewExportDefaultDecl(value), true
}

// --- Declarations ---

func (p *parser) parseClassDecl() (tsast.Handle, bool) {
	p.advance() // "class"
	name := ""
	if p.peek().kind == tokIdent {
		name, _ = p.expectIdent()
	}
	p.skipGenericsIfPresent()
	if p.eatKeyword("extends") {
		p.parseQualifiedIdentText()
		p.skipGenericsIfPresent()
	}
	if p.eatKeyword("implements") {
		p.parseQualifiedIdentText()
		for p.eatPunct(",") {
			p.parseQualifiedIdentText()
		}
	}
	members := p.parseClassBody()
	return p.f.NewClassDecl(name, members...), true
}

func (p *parser) parseClassBody() []tsast.Handle {
	var members []tsast.Handle
	p.expectPunct("{")
	for !p.isPunct("}") && !p.atEOF() {
		p.skipDecorators()
		p.skipModifiers()
		if p.eatPunct(";") {
			continue
		}
		m, ok := p.parseMember(true)
		if ok {
			members = append(members, m)
		}
	}
	p.expectPunct("}")
	return members
}

func (p *parser) parseInterfaceDecl() (tsast.Handle, bool) {
	p.advance() // "interface"
	name, _ := p.expectIdent()
	p.skipGenericsIfPresent()
	if p.eatKeyword("extends") {
		p.parseQualifiedIdentText()
		for p.eatPunct(",") {
			p.parseQualifiedIdentText()
		}
	}
	var members []tsast.Handle
	p.expectPunct("{")
	for !p.isPunct("}") && !p.atEOF() {
		m, ok := p.parseMember(false)
		if ok {
			members = append(members, m)
		}
	}
	p.expectPunct("}")
	return p.f.NewInterfaceDecl(name, members...), true
}

// parseMember reads one interface/type-literal property signature or class
// field/method. isClass selects PropertyDecl over PropertySignature.
func (p *parser) parseMember(isClass bool) (tsast.Handle, bool) {
	var key tsast.Handle
	computed := false
	switch {
	case p.isPunct("["):
		p.skipBalanced("[", "]")
		computed = true
	case p.peek().kind == tokString:
		key = p.f.NewIdentifier(p.advance().text)
	default:
		name, err := p.expectIdent()
		if err != nil {
			p.advance()
			return tsast.NilHandle, false
		}
		key = p.f.NewIdentifier(name)
	}

	optional := p.eatPunct("?")
	p.skipGenericsIfPresent()

	if p.isPunct("(") {
		// Method member: skip the signature and body entirely.
		p.skipBalanced("(", ")")
		if p.eatPunct(":") {
			p.parseType()
		}
		if p.isPunct("{") {
			p.skipBalanced("{", "}")
		}
		p.eatPunct(";")
		name := ""
		if !computed {
			name = p.f.Text(key)
		}
		return p.f.NewMethodMember(name), true
	}

	var typeAnn tsast.Handle = tsast.NilHandle
	if p.eatPunct(":") {
		typeAnn = p.parseType()
	}
	if p.eatPunct("=") {
		p.parseAssignExpr() // field initializer, not part of the wire shape
	}
	p.eatPunct(";")
	p.eatPunct(",")

	if computed {
		key = tsast.NilHandle
	}
	if isClass {
		if optional {
			return p.f.NewOptionalPropertyDecl(key, typeAnn), true
		}
		return p.f.NewPropertyDecl(key, typeAnn), true
	}
	if optional {
		return p.f.NewOptionalPropertySignature(key, typeAnn), true
	}
	return p.f.NewPropertySignature(key, typeAnn), true
}

func (p *parser) skipGenericsIfPresent() {
	if p.isPunct("<") {
		p.skipBalanced("<", ">")
	}
}

func (p *parser) parseTypeAliasDecl() (tsast.Handle, bool) {
	p.advance() // "type"
	name, _ := p.expectIdent()
	p.skipGenericsIfPresent()
	p.expectPunct("=")
	t := p.parseType()
	p.eatPunct(";")
	return p.f.NewTypeAliasDecl(name, t), true
}

func (p *parser) parseEnumDecl() (tsast.Handle, bool) {
	p.advance() // "enum"
	p.eatKeyword("const")
	name, _ := p.expectIdent()
	p.expectPunct("{")
	var members []tsast.Handle
	next := 0.0
	for !p.isPunct("}") && !p.atEOF() {
		p.expectIdent() // member name; the materializer only needs values
		if p.eatPunct("=") {
			switch p.peek().kind {
			case tokString:
				members = append(members, p.f.NewStringLiteral(p.advance().text))
			case tokNumber:
				v := p.advance().num
				members = append(members, p.f.NewNumericLiteral(v))
				next = v + 1
			default:
				p.parseAssignExpr()
			}
		} else {
			members = append(members, p.f.NewNumericLiteral(next))
			next++
		}
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct("}")
	return p.f.NewEnumDecl(name, members...), true
}

func (p *parser) parseVarStatement() (tsast.Handle, bool) {
	p.advance() // const/let/var
	var declarators []tsast.Handle
	for {
		name, err := p.expectIdent()
		if err != nil {
			break
		}
		var typeAnn tsast.Handle = tsast.NilHandle
		if p.eatPunct(":") {
			typeAnn = p.parseType()
		}
		var init tsast.Handle = tsast.NilHandle
		if p.eatPunct("=") {
			init = p.parseAssignExpr()
		}
		declarators = append(declarators, p.f.NewVarDeclarator(name, typeAnn, init))
		if !p.eatPunct(",") {
			break
		}
	}
	p.eatPunct(";")
	return p.f.NewVarStatement(declarators...), true
}

// --- Types ---

func (p *parser) parseType() tsast.Handle {
	return p.parseUnionType()
}

func (p *parser) parseUnionType() tsast.Handle {
	p.eatPunct("|") // leading `| A | B` is valid TS
	members := []tsast.Handle{p.parseIntersectionType()}
	for p.eatPunct("|") {
		members = append(members, p.parseIntersectionType())
	}
	if len(members) == 1 {
		return members[0]
	}
	return p.f.NewUnionType(members...)
}

func (p *parser) parseIntersectionType() tsast.Handle {
	p.eatPunct("&")
	members := []tsast.Handle{p.parsePostfixType()}
	for p.eatPunct("&") {
		members = append(members, p.parsePostfixType())
	}
	if len(members) == 1 {
		return members[0]
	}
	return p.f.NewIntersectionType(members...)
}

func (p *parser) parsePostfixType() tsast.Handle {
	t := p.parsePrimaryType()
	for p.isPunct("[") && p.peekAt(1).kind == tokPunct && p.peekAt(1).text == "]" {
		p.advance()
		p.advance()
		t = p.f.NewArrayType(t)
	}
	return t
}

func (p *parser) parsePrimaryType() tsast.Handle {
	switch {
	case p.isPunct("("):
		return p.parseParenOrFunctionType()
	case p.isPunct("["):
		p.skipBalanced("[", "]")
		return p.f.NewOpaqueType("tuple")
	case p.isPunct("{"):
		return p.parseTypeLiteral()
	case p.peek().kind == tokString:
		return p.f.NewStringLiteralType(p.advance().text)
	case p.peek().kind == tokNumber:
		p.advance()
		return p.f.NewOpaqueType("numeric-literal-type")
	case p.isKeyword("true"):
		p.advance()
		return p.f.NewBooleanLiteralType(true)
	case p.isKeyword("false"):
		p.advance()
		return p.f.NewBooleanLiteralType(false)
	case p.isKeyword("typeof"):
		p.advance()
		name := p.parseQualifiedIdentText()
		return p.f.NewOpaqueType("typeof " + name)
	case p.isKeyword("keyof"):
		p.advance()
		p.parsePostfixType()
		return p.f.NewOpaqueType("keyof")
	case p.peek().kind == tokIdent && keywordTypeNames[p.peek().text]:
		return p.f.NewKeywordType(p.advance().text)
	case p.peek().kind == tokIdent:
		name := p.parseQualifiedIdentText()
		var args []tsast.Handle
		if p.isPunct("<") {
			args = p.parseTypeArgList()
		}
		return p.f.NewTypeRef(name, args...)
	default:
		p.advance()
		return p.f.NewOpaqueType("unsupported")
	}
}

// parseTypeLiteral reads an inline `{ a: A; b?: B }` object type — the
// common shape of a Path handler's single formal parameter, whose members
// are walked by endpoint discovery the same way an interface's are.
func (p *parser) parseTypeLiteral() tsast.Handle {
	var members []tsast.Handle
	p.expectPunct("{")
	for !p.isPunct("}") && !p.atEOF() {
		m, ok := p.parseMember(false)
		if ok {
			members = append(members, m)
		}
	}
	p.expectPunct("}")
	return p.f.NewTypeLiteral(members...)
}

// parseParenOrFunctionType disambiguates `(x: T) => R` from a parenthesized
// type `(A | B)` by trying the function-type shape first and backtracking.
func (p *parser) parseParenOrFunctionType() tsast.Handle {
	save := p.pos
	if p.tryFunctionType() {
		p.pos = save
		p.skipBalanced("(", ")")
		p.expectPunct("=>")
		p.parseType()
		return p.f.NewOpaqueType("function-type")
	}
	p.pos = save
	p.expectPunct("(")
	t := p.parseType()
	p.expectPunct(")")
	return t
}

func (p *parser) tryFunctionType() bool {
	if !p.eatPunct("(") {
		return false
	}
	depth := 1
	for depth > 0 {
		if p.atEOF() {
			return false
		}
		switch {
		case p.isPunct("("):
			depth++
		case p.isPunct(")"):
			depth--
		}
		p.advance()
	}
	return p.isPunct("=>")
}

func (p *parser) parseTypeArgList() []tsast.Handle {
	p.expectPunct("<")
	var args []tsast.Handle
	for !p.isPunct(">") && !p.atEOF() {
		args = append(args, p.parseType())
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct(">")
	return args
}

// --- Expressions ---

func (p *parser) parseAssignExpr() tsast.Handle {
	return p.parseAsExpr()
}

func (p *parser) parseAsExpr() tsast.Handle {
	e := p.parsePostfix(p.parsePrimaryExpr())
	for p.isKeyword("as") {
		p.advance()
		t := p.parseType()
		e = p.f.NewAsExpr(e, t)
	}
	return e
}

func (p *parser) parsePostfix(e tsast.Handle) tsast.Handle {
	for {
		switch {
		case p.isPunct("("):
			args := p.parseArgList()
			e = p.f.NewCallExpr(e, args...)
		case p.isPunct("."):
			p.advance()
			name, err := p.expectIdent()
			if err != nil {
				return e
			}
			e = p.f.NewIdentifier(p.f.Text(e) + "." + name)
		default:
			return e
		}
	}
}

func (p *parser) parseArgList() []tsast.Handle {
	p.expectPunct("(")
	var args []tsast.Handle
	for !p.isPunct(")") && !p.atEOF() {
		args = append(args, p.parseAssignExpr())
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct(")")
	return args
}

func (p *parser) parsePrimaryExpr() tsast.Handle {
	switch {
	case p.isPunct("<"):
		return p.parseTypeAssertion()
	case p.isKeyword("new"):
		return p.parseNewExpr()
	case p.isKeyword("function"):
		return p.parseFunctionExpr()
	case p.isKeyword("true"):
		p.advance()
		return p.f.NewBooleanLiteral(true)
	case p.isKeyword("false"):
		p.advance()
		return p.f.NewBooleanLiteral(false)
	case p.peek().kind == tokString:
		return p.f.NewStringLiteral(p.advance().text)
	case p.peek().kind == tokNumber:
		return p.f.NewNumericLiteral(p.advance().num)
	case p.isPunct("["):
		return p.parseArrayLiteral()
	case p.isPunct("{"):
		return p.parseObjectLiteral()
	case p.isPunct("("):
		return p.parseParenOrArrow()
	case p.peek().kind == tokIdent:
		return p.parseIdentOrArrow()
	default:
		p.advance()
		return p.f.NewIdentifier("")
	}
}

func (p *parser) parseTypeAssertion() tsast.Handle {
	p.expectPunct("<")
	t := p.parseType()
	p.expectPunct(">")
	value := p.parseAsExpr()
	return p.f.NewTypeAssertion(t, value)
}

func (p *parser) parseNewExpr() tsast.Handle {
	p.advance() // "new"
	name := p.parseQualifiedIdentText()
	p.skipGenericsIfPresent()
	var args []tsast.Handle
	if p.isPunct("(") {
		args = p.parseArgList()
	}
	return p.f.NewNewExpr(name, args...)
}

func (p *parser) parseIdentOrArrow() tsast.Handle {
	name, _ := p.expectIdent()
	if p.isPunct("=>") {
		p.advance()
		param := p.f.NewParameter(name, tsast.NilHandle)
		body := p.parseArrowBody()
		return p.f.NewFunctionExpr(body, param)
	}
	return p.f.NewIdentifier(name)
}

// parseParenOrArrow disambiguates `(params) => body` from a parenthesized
// expression `(expr)` by scanning ahead for a matching `=>`.
func (p *parser) parseParenOrArrow() tsast.Handle {
	save := p.pos
	if p.looksLikeArrowParams() {
		params := p.parseArrowParamList()
		p.expectPunct("=>")
		body := p.parseArrowBody()
		return p.f.NewFunctionExpr(body, params...)
	}
	p.pos = save
	p.expectPunct("(")
	e := p.parseAssignExpr()
	p.expectPunct(")")
	return p.parsePostfix(e)
}

func (p *parser) looksLikeArrowParams() bool {
	save := p.pos
	defer func() { p.pos = save }()
	if !p.eatPunct("(") {
		return false
	}
	depth := 1
	for depth > 0 {
		if p.atEOF() {
			return false
		}
		switch {
		case p.isPunct("("):
			depth++
		case p.isPunct(")"):
			depth--
		}
		p.advance()
	}
	return p.isPunct("=>")
}

func (p *parser) parseArrowParamList() []tsast.Handle {
	p.expectPunct("(")
	var params []tsast.Handle
	for !p.isPunct(")") && !p.atEOF() {
		name, err := p.expectIdent()
		if err != nil {
			p.advance()
			continue
		}
		p.eatPunct("?")
		var typeAnn tsast.Handle = tsast.NilHandle
		if p.eatPunct(":") {
			typeAnn = p.parseType()
		}
		if p.eatPunct("=") {
			p.parseAssignExpr() // default value, not tracked
		}
		params = append(params, p.f.NewParameter(name, typeAnn))
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct(")")
	return params
}

func (p *parser) parseArrowBody() tsast.Handle {
	if p.eatPunct(":") {
		p.parseType() // explicit return type annotation, not tracked
	}
	if p.isPunct("{") {
		return p.parseBlock()
	}
	return p.parseAssignExpr()
}

func (p *parser) parseFunctionExpr() tsast.Handle {
	p.advance() // "function"
	if p.peek().kind == tokIdent {
		p.advance() // optional function name, not tracked
	}
	p.skipGenericsIfPresent()
	params := p.parseArrowParamList()
	if p.eatPunct(":") {
		p.parseType()
	}
	body := p.parseBlock()
	return p.f.NewFunctionExpr(body, params...)
}

func (p *parser) parseArrayLiteral() tsast.Handle {
	p.expectPunct("[")
	var elems []tsast.Handle
	for !p.isPunct("]") && !p.atEOF() {
		elems = append(elems, p.parseAssignExpr())
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct("]")
	return p.f.NewArrayLiteralExpr(elems...)
}

func (p *parser) parseObjectLiteral() tsast.Handle {
	p.expectPunct("{")
	props := make(map[string]tsast.Handle)
	for !p.isPunct("}") && !p.atEOF() {
		p.eatPunct("...") // spread: value unused, literal-only callers ignore it
		var key string
		switch {
		case p.peek().kind == tokString:
			key = p.advance().text
		case p.peek().kind == tokIdent:
			key = p.advance().text
		default:
			p.advance()
			continue
		}
		if p.eatPunct(":") {
			props[key] = p.parseAssignExpr()
		} else {
			// Shorthand `{ a }` === `{ a: a }`.
			props[key] = p.f.NewIdentifier(key)
		}
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct("}")
	return p.f.NewObjectLiteralExpr(props)
}
