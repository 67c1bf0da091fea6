package parser

import (
	"testing"

	"github.com/funvibe/church/internal/lexer"
	"github.com/funvibe/church/internal/token"
)

func formedTypes(input string) []token.Type {
	lx := lexer.New(input)
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			break
		}
	}
	formed := Form(toks)
	types := make([]token.Type, len(formed))
	for i, tok := range formed {
		types[i] = tok.Type
	}
	return types
}

func TestFormWrapsAbstractionBody(t *testing.T) {
	// λx.x y  ->  λx.(x y): the body extends maximally rightward.
	got := formedTypes("λx.x y")
	want := []token.Type{
		token.LAMBDA, token.IDENT, token.DOT,
		token.LPAREN, token.IDENT, token.IDENT, token.RPAREN,
		token.EOF,
	}
	assertTypesEqual(t, got, want)
}

func TestFormWrapsLetBody(t *testing.T) {
	got := formedTypes("let x = a in x y")
	want := []token.Type{
		token.LET, token.IDENT, token.ASSIGN, token.IDENT,
		token.IN,
		token.LPAREN, token.IDENT, token.IDENT, token.RPAREN,
		token.EOF,
	}
	assertTypesEqual(t, got, want)
}

func TestFormDoesNotParenthesizeLetItself(t *testing.T) {
	// `let` opens no paren of its own; the only synthetic parens here wrap
	// the `in` body (one pair, regardless of how simple that body is).
	got := formedTypes("let x = a in x")
	var opens int
	for _, ty := range got {
		if ty == token.LPAREN {
			opens++
		}
	}
	if opens != 1 {
		t.Fatalf("got %d synthetic parens, want exactly 1 (around the `in` body): %v", opens, got)
	}
}

func TestFormClosesOnNewline(t *testing.T) {
	got := formedTypes("λx.x\ny")
	want := []token.Type{
		token.LAMBDA, token.IDENT, token.DOT,
		token.LPAREN, token.IDENT, token.RPAREN,
		token.NEWLINE,
		token.IDENT,
		token.EOF,
	}
	assertTypesEqual(t, got, want)
}

func TestFormCollapsesBlankLines(t *testing.T) {
	got := formedTypes("a\n\n\nb")
	want := []token.Type{token.IDENT, token.NEWLINE, token.IDENT, token.EOF}
	assertTypesEqual(t, got, want)
}

func assertTypesEqual(t *testing.T, got, want []token.Type) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s (full: %v)", i, got[i], want[i], got)
		}
	}
}
