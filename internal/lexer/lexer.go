// Package lexer turns lambda-calculus source text into a stream of tokens.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/funvibe/church/internal/token"
)

// isGreekLetter reports whether r falls in the identifier-extending Greek
// range: α–κ, μ–ω and their upper-case counterparts. Alphabet (in
// internal/config) reuses the lower-case half of this same range for
// printing.
func isGreekLetter(r rune) bool {
	switch {
	case r >= 'α' && r <= 'κ':
		return true
	case r >= 'μ' && r <= 'ω':
		return true
	case r >= 'Α' && r <= 'Κ':
		return true
	case r >= 'Μ' && r <= 'Ω':
		return true
	}
	return false
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) && (r < utf8.RuneSelf || isGreekLetter(r)) ||
		r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Lexer is a single-pass, grapheme-cluster-aware scanner. Columns are
// counted in clusters, not bytes, so multi-byte glyphs like λ and the Greek
// alphabet never desynchronize column numbers from what a terminal shows;
// a span's Start and End remain byte offsets into the input.
type Lexer struct {
	input  string
	pos    int // byte offset of the start of the next cluster
	line   int
	column int
}

// New creates a Lexer over the given source text.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

// fatal builds the token returned the moment an unrecognized character is seen;
// per spec, a lexer error halts tokenization — the caller must stop
// requesting tokens once it sees token.ILLEGAL.
func (l *Lexer) fatal(cluster string, span token.Span) token.Token {
	return token.Token{Type: token.ILLEGAL, Lexeme: cluster, Literal: cluster, Span: span}
}

// peekCluster returns the next grapheme cluster without consuming it, plus
// its byte width. An empty string means end of input.
func (l *Lexer) peekCluster() (string, int) {
	if l.pos >= len(l.input) {
		return "", 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(l.input[l.pos:], -1)
	return cluster, len(cluster)
}

func (l *Lexer) advance(width int) {
	l.pos += width
	l.column++
}

func (l *Lexer) spanAt(startLine, startCol, startPos int) token.Span {
	return token.Span{Start: startPos, End: l.pos, Line: startLine, Column: startCol}
}

// Next scans and returns the next token. Once it returns token.EOF or
// token.ILLEGAL, the caller must not call Next again.
func (l *Lexer) Next() token.Token {
	for {
		cluster, width := l.peekCluster()
		switch cluster {
		case "":
			return token.Token{Type: token.EOF, Span: token.Span{Start: l.pos, End: l.pos, Line: l.line, Column: l.column}}
		case " ", "\f":
			l.advance(width)
			continue
		case "#":
			l.skipComment()
			continue
		case "\n":
			startLine, startCol, startPos := l.line, l.column, l.pos
			l.advance(width)
			tok := token.Token{Type: token.NEWLINE, Lexeme: "\n", Span: l.spanAt(startLine, startCol, startPos)}
			l.line++
			l.column = 1
			return tok
		case "\t":
			startLine, startCol, startPos := l.line, l.column, l.pos
			l.advance(width)
			return token.Token{Type: token.TAB, Lexeme: "\t", Span: l.spanAt(startLine, startCol, startPos)}
		}
		return l.scanOther(cluster, width)
	}
}

func (l *Lexer) skipComment() {
	for {
		cluster, width := l.peekCluster()
		if cluster == "" || cluster == "\n" {
			return
		}
		l.advance(width)
	}
}

func (l *Lexer) scanOther(cluster string, width int) token.Token {
	startLine, startCol, startPos := l.line, l.column, l.pos

	switch cluster {
	case "λ", "\\":
		l.advance(width)
		return token.Token{Type: token.LAMBDA, Lexeme: cluster, Span: l.spanAt(startLine, startCol, startPos)}
	case ".":
		l.advance(width)
		return token.Token{Type: token.DOT, Lexeme: ".", Span: l.spanAt(startLine, startCol, startPos)}
	case "-":
		if peek, pw := l.peekAfter(width); peek == ">" {
			l.advance(width)
			l.advance(pw)
			return token.Token{Type: token.DOT, Lexeme: "->", Span: l.spanAt(startLine, startCol, startPos)}
		}
		l.advance(width)
		return l.fatal(cluster, l.spanAt(startLine, startCol, startPos))
	case "(":
		l.advance(width)
		return token.Token{Type: token.LPAREN, Lexeme: "(", Span: l.spanAt(startLine, startCol, startPos)}
	case ")":
		l.advance(width)
		return token.Token{Type: token.RPAREN, Lexeme: ")", Span: l.spanAt(startLine, startCol, startPos)}
	case "=":
		l.advance(width)
		return token.Token{Type: token.ASSIGN, Lexeme: "=", Span: l.spanAt(startLine, startCol, startPos)}
	case ",":
		l.advance(width)
		return token.Token{Type: token.COMMA, Lexeme: ",", Span: l.spanAt(startLine, startCol, startPos)}
	case `"`:
		return l.scanPath(startLine, startCol, startPos)
	}

	r, _ := utf8.DecodeRuneInString(cluster)
	if isIdentRune(r) {
		return l.scanIdent(startLine, startCol, startPos)
	}

	l.advance(width)
	return l.fatal(cluster, l.spanAt(startLine, startCol, startPos))
}

// peekAfter looks at the cluster following the one width bytes ahead of pos,
// without mutating lexer state.
func (l *Lexer) peekAfter(width int) (string, int) {
	if l.pos+width >= len(l.input) {
		return "", 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(l.input[l.pos+width:], -1)
	return cluster, len(cluster)
}

func (l *Lexer) scanIdent(startLine, startCol, startPos int) token.Token {
	var b strings.Builder
	for {
		cluster, width := l.peekCluster()
		if cluster == "" {
			break
		}
		r, _ := utf8.DecodeRuneInString(cluster)
		if !isIdentRune(r) {
			break
		}
		b.WriteString(cluster)
		l.advance(width)
	}
	lexeme := b.String()
	return token.Token{
		Type:    token.LookupIdent(lexeme),
		Lexeme:  lexeme,
		Literal: lexeme,
		Span:    l.spanAt(startLine, startCol, startPos),
	}
}

// scanPath reads a "double-quoted path literal" honoring \\ and \" escapes.
func (l *Lexer) scanPath(startLine, startCol, startPos int) token.Token {
	l.advance(1) // opening quote
	var b strings.Builder
	for {
		cluster, width := l.peekCluster()
		switch cluster {
		case "":
			return l.fatal("\"", l.spanAt(startLine, startCol, startPos))
		case `"`:
			l.advance(width)
			content := b.String()
			return token.Token{Type: token.PATH, Lexeme: content, Literal: content, Span: l.spanAt(startLine, startCol, startPos)}
		case `\`:
			l.advance(width)
			next, nw := l.peekCluster()
			switch next {
			case `\`, `"`:
				b.WriteString(next)
				l.advance(nw)
			default:
				b.WriteString(`\`)
			}
		default:
			b.WriteString(cluster)
			l.advance(width)
		}
	}
}
