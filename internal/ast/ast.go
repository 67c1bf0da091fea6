// Package ast defines the surface syntax tree produced by the parser:
// named variables, application, abstraction, let-groups, assignments and
// use-directives, all still carrying user identifiers (no integer variable
// ids yet — assigning them is the compiler's job).
package ast

import "github.com/funvibe/church/internal/token"

// Node is any surface AST node.
type Node interface {
	Span() token.Span
	node()
}

// Program is a sequence of top-level atoms: definitions, use directives,
// or bare expressions to be reduced and printed.
type Program struct {
	Atoms []Node
}

func (p *Program) Span() token.Span {
	if len(p.Atoms) == 0 {
		return token.Span{}
	}
	return p.Atoms[0].Span()
}
func (*Program) node() {}

// Var is a bare identifier occurrence.
type Var struct {
	Name string
	Sp   token.Span
}

func (v *Var) Span() token.Span { return v.Sp }
func (*Var) node()               {}

// App is left-associative function application: M N.
type App struct {
	Fn, Arg Node
}

func (a *App) Span() token.Span { return a.Fn.Span() }
func (*App) node()               {}

// Abs is a lambda abstraction λ<Param>. <Body>, body extending maximally
// rightward.
type Abs struct {
	Param string
	Body  Node
	Sp    token.Span
}

func (a *Abs) Span() token.Span { return a.Sp }
func (*Abs) node()               {}

// Assign is a top-level or let-bound definition: Name = Value.
type Assign struct {
	Name  string
	Value Node
	Sp    token.Span
}

func (a *Assign) Span() token.Span { return a.Sp }
func (*Assign) node()               {}

// Let is `let <Assign>, ... in <Body>`.
type Let struct {
	Defs []*Assign
	Body Node
	Sp   token.Span
}

func (l *Let) Span() token.Span { return l.Sp }
func (*Let) node()               {}

// Use is `use "path"`; the referenced file's atoms are spliced into the
// current scope at the point of occurrence.
type Use struct {
	Path string
	Sp   token.Span
}

func (u *Use) Span() token.Span { return u.Sp }
func (*Use) node()               {}
