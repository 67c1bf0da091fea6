package compiler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/church/internal/config"
	"github.com/funvibe/church/internal/lexer"
	"github.com/funvibe/church/internal/parser"
	"github.com/funvibe/church/internal/term"
	"github.com/funvibe/church/internal/token"
)

// dumpSource runs src through the full lexer/former/parser/compiler pipeline
// and returns the term of its one bare expression.
func dumpSource(t *testing.T, c *Compiler, src string) *term.Term {
	t.Helper()
	lx := lexer.New(src)
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
		require.NotEqual(t, token.ILLEGAL, tok.Type, "lexer error at %v", tok.Span)
	}
	prog, err := parser.Parse(parser.Form(toks))
	require.NoError(t, err)
	results, err := c.EvalProgram(prog)
	require.NoError(t, err)
	require.Len(t, results, 1)
	return results[0].Term
}

// TestCaptureAvoidingXOR is scenario 3: two Church booleans combined through
// several layers of shadowed "a"/"b" binders must still β-reduce to the XOR
// of the two booleans once every capture is resolved correctly.
func TestCaptureAvoidingXOR(t *testing.T) {
	src := `λa. λb. (λa. λb. a b a) ((λa. λb. a a b) a b) ((λa. a (λa. λb. b) (λa. λb. a)) ((λa. λb. a b a) a b))`
	got := dumpSource(t, New(nil), src)
	reduced, normal := term.Reduce(context.Background(), got, config.NormalOrder, config.DefaultMaxSteps)
	require.True(t, normal)

	want := dumpSource(t, New(nil), `λa. λb. a a b (a b a (λd. λe. e) (λd. λe. d)) (a a b)`)
	require.True(t, term.AlphaEq(reduced, want), "got %s, want something alpha-equivalent to %s", reduced, want)
}

// TestLetInnerShadowingCapturesOuterID is scenario 6: the inner "let id =
// ... in id a" re-translates its rhs while the outer id is still installed,
// so the inner id's "id y" resolves to the outer identity rather than
// failing or resolving to a free variable.
func TestLetInnerShadowingCapturesOuterID(t *testing.T) {
	src := `let id = λx. x in let id = λy. id y in id a`
	got := dumpSource(t, New(nil), src)
	reduced, normal := term.Reduce(context.Background(), got, config.NormalOrder, config.DefaultMaxSteps)
	require.True(t, normal)

	want := dumpSource(t, New(nil), "a")
	require.True(t, term.AlphaEq(reduced, want), "got %s, want a", reduced)
}

// TestRecursiveDefinitionTiesOverY is the compiler's self-reference case
// from Insert: "loop = λx. loop x" names itself in its own rhs, so Insert
// must tie it over the Y-combinator rather than let getVarDef's alphabet
// fallback silently resolve the inner "loop" to an unrelated free
// variable. Without the tie, "loop a" would reach a (wrong) normal form in
// a single β-step; with it, loop actually recurses and never terminates.
func TestRecursiveDefinitionTiesOverY(t *testing.T) {
	src := "loop = λx. loop x\nloop a"
	got := dumpSource(t, New(nil), src)
	_, normal := term.Reduce(context.Background(), got, config.NormalOrder, 50)
	require.False(t, normal, "a genuinely recursive loop must not reach a normal form")
}
