package compiler

import "github.com/funvibe/church/internal/term"

// YCombinator builds λf. (λx. f (x x)) (λx. f (x x)), the fixed-point
// combinator recursive definitions are tied over: the language has no
// letrec, so tieRecursion (run by Insert and by let bindings) rewrites a
// self-referential definition into an application of this combinator.
// It is not installed under any name; cmd/church does not predefine "Y".
func YCombinator() *term.Term {
	f := term.NextFreshID()
	x1 := term.NextFreshID()
	x2 := term.NextFreshID()
	half := func(x int) *term.Term {
		return term.Abs(x, term.App(term.Var(f), term.App(term.Var(x), term.Var(x))))
	}
	return term.Abs(f, term.App(half(x1), half(x2)))
}
