package parser

import (
	"github.com/funvibe/church/internal/ast"
	"github.com/funvibe/church/internal/diagnostics"
	"github.com/funvibe/church/internal/token"
)

// Parse turns a token stream into a *ast.Program. tokens should already
// have passed through Form: the recursive-descent grammar below relies on
// every implicit abstraction/let/in body having been made explicit with
// real parentheses, and on NEWLINE surviving only as a top-level
// atom separator.
func Parse(tokens []token.Token) (*ast.Program, error) {
	p := &parser{tokens: tokens}
	return p.parseProgram()
}

type parser struct {
	tokens []token.Token
	pos    int
}

func (p *parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Type: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) peek() token.Token {
	if p.pos+1 >= len(p.tokens) {
		return token.Token{Type: token.EOF}
	}
	return p.tokens[p.pos+1]
}

func (p *parser) advance() token.Token {
	tok := p.cur()
	p.pos++
	return tok
}

func (p *parser) expect(tt token.Type) (token.Token, error) {
	tok := p.cur()
	if tok.Type != tt {
		return tok, diagnostics.ParserError(tok.Span, tok)
	}
	return p.advance(), nil
}

func (p *parser) skipNewlines() {
	for p.cur().Type == token.NEWLINE {
		p.pos++
	}
}

func (p *parser) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	p.skipNewlines()
	for p.cur().Type != token.EOF {
		atom, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		prog.Atoms = append(prog.Atoms, atom)
		p.skipNewlines()
	}
	return prog, nil
}

// parseAtom parses one top-level unit: a `use` directive, a top-level
// definition (IDENT = Expr), or a bare expression to reduce and print.
func (p *parser) parseAtom() (ast.Node, error) {
	switch p.cur().Type {
	case token.USE:
		return p.parseUse()
	case token.IDENT:
		if p.peek().Type == token.ASSIGN {
			return p.parseAssign()
		}
	}
	return p.parseExpr()
}

func (p *parser) parseUse() (ast.Node, error) {
	tok := p.advance() // USE
	path, err := p.expect(token.PATH)
	if err != nil {
		return nil, err
	}
	return &ast.Use{Path: path.Literal, Sp: tok.Span}, nil
}

func (p *parser) parseAssign() (*ast.Assign, error) {
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Name: name.Literal, Value: value, Sp: name.Span}, nil
}

// parseExpr parses a let-expression, an abstraction, or an application —
// whichever the next token commits to.
func (p *parser) parseExpr() (ast.Node, error) {
	switch p.cur().Type {
	case token.LET:
		return p.parseLet()
	case token.LAMBDA:
		return p.parseAbs()
	default:
		return p.parseApp()
	}
}

// parseApp parses one-or-more atoms left-associatively: `M N P` is
// `(M N) P`.
func (p *parser) parseApp() (ast.Node, error) {
	fn, err := p.parseAtom1()
	if err != nil {
		return nil, err
	}
	for p.atAtomStart() {
		arg, err := p.parseAtom1()
		if err != nil {
			return nil, err
		}
		fn = &ast.App{Fn: fn, Arg: arg}
	}
	return fn, nil
}

// atAtomStart reports whether the current token can begin an Atom1, i.e.
// whether an application should keep consuming arguments.
func (p *parser) atAtomStart() bool {
	switch p.cur().Type {
	case token.IDENT, token.LPAREN, token.LAMBDA, token.LET:
		return true
	default:
		return false
	}
}

// parseAtom1 parses a single application argument: a variable, a
// parenthesized expression, a nested abstraction, or a nested let.
func (p *parser) parseAtom1() (ast.Node, error) {
	switch p.cur().Type {
	case token.IDENT:
		tok := p.advance()
		return &ast.Var{Name: tok.Literal, Sp: tok.Span}, nil
	case token.LPAREN:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	case token.LAMBDA:
		return p.parseAbs()
	case token.LET:
		return p.parseLet()
	}
	tok := p.cur()
	return nil, diagnostics.ParserError(tok.Span, tok)
}

// parseAbs parses `λ<param>.<body>` (or the ASCII `\param->body` spelling);
// the former has already wrapped the body in real parentheses, so it
// parses as a single Atom1.
func (p *parser) parseAbs() (ast.Node, error) {
	tok := p.advance() // LAMBDA
	param, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DOT); err != nil {
		return nil, err
	}
	body, err := p.parseAtom1()
	if err != nil {
		return nil, err
	}
	return &ast.Abs{Param: param.Literal, Body: body, Sp: tok.Span}, nil
}

// parseLet parses `let <assign>, ..., <assign> in <body>`. Each assign's
// value is a bare Expr (the former never brackets it); the body, like an
// abstraction's, arrives pre-wrapped in real parentheses.
func (p *parser) parseLet() (ast.Node, error) {
	tok := p.advance() // LET
	var defs []*ast.Assign
	for {
		def, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
		if p.cur().Type != token.COMMA {
			break
		}
		p.advance()
	}
	if _, err := p.expect(token.IN); err != nil {
		return nil, err
	}
	body, err := p.parseAtom1()
	if err != nil {
		return nil, err
	}
	return &ast.Let{Defs: defs, Body: body, Sp: tok.Span}, nil
}
