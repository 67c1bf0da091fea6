// Package diagnostics defines the five error kinds the core interpreter can
// raise as a single templated error type, with one Code/Phase/template
// triple per kind.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/church/internal/token"
)

type Phase string

const (
	PhaseLexer    Phase = "lexer"
	PhaseParser   Phase = "parser"
	PhaseCompiler Phase = "compiler"
)

type Code string

const (
	CodeLexerError     Code = "L001" // unrecognized character
	CodeParserError    Code = "P001" // grammar rejected the token stream
	CodeModuleNotFound Code = "M001" // `use` could not read the file
	CodeDefNotFound    Code = "D001" // variable resolves to nothing
	CodeAlreadyDefined Code = "D002" // redefinition of an existing name
)

var templates = map[Code]string{
	CodeLexerError:     "unexpected character %q",
	CodeParserError:    "unexpected token %s",
	CodeModuleNotFound: "module not found: %q (%v)",
	CodeDefNotFound:    "definition not found: %q",
	CodeAlreadyDefined: "already defined: %q",
}

// Error is the single error type surfaced across the lexer, former, parser
// and compiler boundaries. Each of the five kinds is represented by a Code;
// AlreadyDefined additionally carries the previously installed term via the
// Existing field (populated by the compiler, left nil elsewhere).
type Error struct {
	Code    Code
	Phase   Phase
	Span    token.Span
	Args    []interface{}
	Existing interface{} // *term.Term for CodeAlreadyDefined; kept as interface{} to avoid an import cycle
}

func (e *Error) Error() string {
	tmpl, ok := templates[e.Code]
	if !ok {
		return fmt.Sprintf("%s: unknown error", e.Code)
	}
	msg := fmt.Sprintf(tmpl, e.Args...)
	return fmt.Sprintf("%s error at %d:%d: %s", e.Phase, e.Span.Line, e.Span.Column, msg)
}

func LexerError(span token.Span, ch string) *Error {
	return &Error{Code: CodeLexerError, Phase: PhaseLexer, Span: span, Args: []interface{}{ch}}
}

func ParserError(span token.Span, got token.Token) *Error {
	return &Error{Code: CodeParserError, Phase: PhaseParser, Span: span, Args: []interface{}{got}}
}

func ModuleNotFound(span token.Span, path string, cause error) *Error {
	return &Error{Code: CodeModuleNotFound, Phase: PhaseCompiler, Span: span, Args: []interface{}{path, cause}}
}

func DefNotFound(span token.Span, name string) *Error {
	return &Error{Code: CodeDefNotFound, Phase: PhaseCompiler, Span: span, Args: []interface{}{name}}
}

func AlreadyDefined(span token.Span, name string, existing interface{}) *Error {
	return &Error{Code: CodeAlreadyDefined, Phase: PhaseCompiler, Span: span, Args: []interface{}{name}, Existing: existing}
}
