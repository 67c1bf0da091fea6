package parser

import "github.com/funvibe/church/internal/token"

// scopeKind tags an implicit grouping the former is tracking.
type scopeKind int

const (
	scopeFn  scopeKind = iota // abstraction body, opened by '.'/'->'
	scopeLet                  // let-binding group, opened by 'let' (no paren of its own)
	scopeIn                   // let-body, opened by 'in'
)

// Form rewrites a raw token stream into one where every implicit grouping
// (abstraction bodies, let-binding groups, let bodies) has been made
// explicit with inserted parentheses.
func Form(tokens []token.Token) []token.Token {
	f := &former{tokens: tokens}
	return f.run()
}

type former struct {
	tokens []token.Token
	pos    int
	stack  []scopeKind
	out    []token.Token
}

func (f *former) cur() token.Token {
	if f.pos >= len(f.tokens) {
		return token.Token{Type: token.EOF}
	}
	return f.tokens[f.pos]
}

func (f *former) peekNext() token.Token {
	if f.pos+1 >= len(f.tokens) {
		return token.Token{Type: token.EOF}
	}
	return f.tokens[f.pos+1]
}

func (f *former) emit(t token.Token) { f.out = append(f.out, t) }

func (f *former) openParen(kind scopeKind, like token.Token) {
	f.stack = append(f.stack, kind)
	if kind != scopeLet {
		f.emit(token.Token{Type: token.LPAREN, Lexeme: "(", Span: like.Span})
	}
}

// closeOne pops the innermost scope, emitting a ')' unless it's a Let
// marker (which never opened a paren of its own).
func (f *former) closeOne(like token.Token) {
	n := len(f.stack) - 1
	kind := f.stack[n]
	f.stack = f.stack[:n]
	if kind != scopeLet {
		f.emit(token.Token{Type: token.RPAREN, Lexeme: ")", Span: like.Span})
	}
}

func (f *former) closeAll(like token.Token) {
	for len(f.stack) > 0 {
		f.closeOne(like)
	}
}

// closeUntilLet closes every open scope above (not including) the nearest
// Let marker, leaving that marker in place.
func (f *former) closeUntilLet(like token.Token) {
	for len(f.stack) > 0 && f.stack[len(f.stack)-1] != scopeLet {
		f.closeOne(like)
	}
}

// closeThroughLet closes every open scope up to and including the nearest
// Let marker.
func (f *former) closeThroughLet(like token.Token) {
	f.closeUntilLet(like)
	if len(f.stack) > 0 {
		f.closeOne(like)
	}
}

func (f *former) run() []token.Token {
	for {
		tok := f.cur()
		switch tok.Type {
		case token.EOF:
			f.closeAll(tok)
			f.emit(tok)
			return f.out
		case token.NEWLINE:
			next := f.peekNext()
			if next.Type == token.NEWLINE || next.Type == token.TAB {
				f.pos++
				continue
			}
			// A real statement boundary: close every implicit scope still
			// open from this line, then pass the newline through so the
			// parser can use it to split top-level atoms.
			f.closeAll(tok)
			f.emit(tok)
			f.pos++
		case token.TAB:
			f.pos++
		case token.LET:
			f.emit(tok)
			f.openParen(scopeLet, tok)
			f.pos++
		case token.COMMA:
			f.closeUntilLet(tok)
			f.emit(tok)
			f.pos++
		case token.IN:
			f.closeThroughLet(tok)
			f.emit(tok)
			f.openParen(scopeIn, tok)
			f.pos++
		case token.DOT:
			f.emit(tok)
			f.openParen(scopeFn, tok)
			f.pos++
		default:
			f.emit(tok)
			f.pos++
		}
	}
}
