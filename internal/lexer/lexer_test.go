package lexer

import (
	"testing"

	"github.com/funvibe/church/internal/token"
)

func allTokens(input string) []token.Token {
	lx := New(input)
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			break
		}
	}
	return out
}

func TestNext(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Type
	}{
		{"lambda dot ident", "λx.x", []token.Type{token.LAMBDA, token.IDENT, token.DOT, token.IDENT, token.EOF}},
		{"ascii spelling", `\x->x`, []token.Type{token.LAMBDA, token.IDENT, token.DOT, token.IDENT, token.EOF}},
		{"parens", "(a b)", []token.Type{token.LPAREN, token.IDENT, token.IDENT, token.RPAREN, token.EOF}},
		{"assign", "id = λx.x", []token.Type{token.IDENT, token.ASSIGN, token.LAMBDA, token.IDENT, token.DOT, token.IDENT, token.EOF}},
		{"let in", "let x = a in x", []token.Type{token.LET, token.IDENT, token.ASSIGN, token.IDENT, token.IN, token.IDENT, token.EOF}},
		{"comma separated let", "let x = a, y = b in x", []token.Type{
			token.LET, token.IDENT, token.ASSIGN, token.IDENT, token.COMMA,
			token.IDENT, token.ASSIGN, token.IDENT, token.IN, token.IDENT, token.EOF,
		}},
		{"use path", `use "lib/core.church"`, []token.Type{token.USE, token.PATH, token.EOF}},
		{"greek identifier", "λα.α", []token.Type{token.LAMBDA, token.IDENT, token.DOT, token.IDENT, token.EOF}},
		{"comment stripped", "a # this is a comment\nb", []token.Type{token.IDENT, token.NEWLINE, token.IDENT, token.EOF}},
		{"illegal char", "a $ b", []token.Type{token.IDENT, token.ILLEGAL}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := allTokens(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("%s: got %d tokens %v, want %d %v", tt.input, len(got), got, len(tt.want), tt.want)
			}
			for i, tok := range got {
				if tok.Type != tt.want[i] {
					t.Errorf("%s: token %d: got %s, want %s", tt.input, i, tok.Type, tt.want[i])
				}
			}
		})
	}
}

func TestIdentLiteralPreservesText(t *testing.T) {
	toks := allTokens("foo")
	if toks[0].Literal != "foo" {
		t.Errorf("got literal %q, want %q", toks[0].Literal, "foo")
	}
}

func TestPathLiteralUnescapes(t *testing.T) {
	toks := allTokens(`"a\"b\\c"`)
	if toks[0].Type != token.PATH {
		t.Fatalf("got %s, want PATH", toks[0].Type)
	}
	if toks[0].Literal != `a"b\c` {
		t.Errorf("got literal %q, want %q", toks[0].Literal, `a"b\c`)
	}
}
