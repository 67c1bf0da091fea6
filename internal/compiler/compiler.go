// Package compiler translates the surface AST into canonical lambda terms:
// it resolves names against an implicit local scope, a persistent table of
// top-level definitions, or the free-variable alphabet,
// assigns every abstraction a process-wide fresh bound-variable id, and
// keeps an alias table so a reduced term can be pretty-printed back using
// whatever name the user originally defined it under.
package compiler

import (
	"errors"

	"github.com/tidwall/btree"

	"github.com/funvibe/church/internal/ast"
	"github.com/funvibe/church/internal/config"
	"github.com/funvibe/church/internal/diagnostics"
	"github.com/funvibe/church/internal/term"
	"github.com/funvibe/church/internal/token"
)

var errNoLoader = errors.New("compiler: no module loader configured")

// Compiler is a single compilation scope: a set of named top-level
// definitions plus the alias table used to print them back out.
// defs/aliases are ordered (github.com/tidwall/btree) rather than plain Go
// maps purely so a dump of the whole scope iterates deterministically —
// the translation rules below don't depend on that ordering at all.
type Compiler struct {
	defs    btree.Map[string, *term.Term]
	aliases btree.Map[string, string] // canonical de-Bruijn key -> name
	loader  *Loader
}

// New returns a Compiler with no definitions and the given module loader.
// A nil loader means `use` directives always fail with ModuleNotFound.
func New(loader *Loader) *Compiler {
	return &Compiler{loader: loader}
}

// Dump translates a surface node into a canonical term, starting from an
// empty local scope.
func (c *Compiler) Dump(n ast.Node) (*term.Term, error) {
	term.AssertSingleThreaded()
	return c.dumpWith(map[string]int{}, n)
}

// EvalResult is one printable outcome of evaluating a top-level atom: a
// bare expression, compiled down to a term and ready to reduce and print.
// Assign and Use atoms never produce one — they only change the scope.
type EvalResult struct {
	Term *term.Term
}

// EvalProgram evaluates every top-level atom of prog in order: Assign
// installs a definition, Use splices in the atoms of one or more loaded
// files, and anything else is a bare expression returned as an
// EvalResult.
func (c *Compiler) EvalProgram(prog *ast.Program) ([]EvalResult, error) {
	var results []EvalResult
	for _, atom := range prog.Atoms {
		rs, err := c.evalAtom(atom)
		if err != nil {
			return results, err
		}
		results = append(results, rs...)
	}
	return results, nil
}

func (c *Compiler) evalAtom(n ast.Node) ([]EvalResult, error) {
	switch v := n.(type) {
	case *ast.Assign:
		val, err := c.Dump(v.Value)
		if err != nil {
			return nil, err
		}
		if err := c.Insert(v.Name, v.Sp, val); err != nil {
			return nil, err
		}
		return nil, nil
	case *ast.Use:
		return c.evalUse(v)
	default:
		t, err := c.Dump(n)
		if err != nil {
			return nil, err
		}
		return []EvalResult{{Term: t}}, nil
	}
}

func (c *Compiler) evalUse(u *ast.Use) ([]EvalResult, error) {
	if c.loader == nil {
		return nil, diagnostics.ModuleNotFound(u.Sp, u.Path, errNoLoader)
	}
	programs, err := c.loader.Load(u.Path)
	if err != nil {
		return nil, diagnostics.ModuleNotFound(u.Sp, u.Path, err)
	}
	var results []EvalResult
	for _, prog := range programs {
		rs, err := c.EvalProgram(prog)
		if err != nil {
			return results, err
		}
		results = append(results, rs...)
	}
	return results, nil
}

func (c *Compiler) dumpWith(ctx map[string]int, n ast.Node) (*term.Term, error) {
	switch v := n.(type) {
	case *ast.Var:
		return c.getVarDef(ctx, v)
	case *ast.App:
		fn, err := c.dumpWith(ctx, v.Fn)
		if err != nil {
			return nil, err
		}
		arg, err := c.dumpWith(ctx, v.Arg)
		if err != nil {
			return nil, err
		}
		return term.App(fn, arg), nil
	case *ast.Abs:
		alias := term.NextFreshID()
		old, hadOld := ctx[v.Param]
		ctx[v.Param] = alias
		body, err := c.dumpWith(ctx, v.Body)
		if hadOld {
			ctx[v.Param] = old
		} else {
			delete(ctx, v.Param)
		}
		if err != nil {
			return nil, err
		}
		return term.Abs(alias, body), nil
	case *ast.Let:
		return c.dumpLet(ctx, v)
	}
	panic("compiler: dumpWith called on a top-level-only node (Assign/Use)")
}

// dumpLet evaluates each binding in order, installing it into the
// top-level defs/aliases tables so later bindings (and the body) can refer
// to it, then restores whatever those tables held before the let — a
// failed binding must never leave a partial definition installed.
//
// The previous defs entry for a name is read but deliberately NOT removed
// before its rhs is translated: a binding's rhs is translated while the
// outer scope's own entry of the same name is still live in defs, so e.g.
// "let id = λx. x in let id = λy. id y in id a" has the inner rhs's "id"
// resolve straight to the outer identity (captured, not looked up as a
// fresh free variable) before the inner defs.Set below replaces it. Only
// then is the new value (after the same self-reference tie Insert applies
// at the top level, via tieRecursion) installed.
func (c *Compiler) dumpLet(ctx map[string]int, l *ast.Let) (*term.Term, error) {
	type saved struct {
		name     string
		had      bool
		def      *term.Term
		hadAlias bool
		alias    string

		newKey     string
		prevNew    string
		hadPrevNew bool
	}
	var shadow []saved

	unwind := func() {
		for i := len(shadow) - 1; i >= 0; i-- {
			s := shadow[i]
			if s.newKey != "" {
				if s.hadPrevNew {
					c.aliases.Set(s.newKey, s.prevNew)
				} else {
					c.aliases.Delete(s.newKey)
				}
			}
			if s.had {
				if s.hadAlias {
					c.aliases.Set(term.Key(s.def), s.alias)
				}
				c.defs.Set(s.name, s.def)
			} else {
				c.defs.Delete(s.name)
			}
		}
	}

	for _, def := range l.Defs {
		old, had := c.defs.Get(def.Name)
		s := saved{name: def.Name, had: had, def: old}
		if had {
			s.alias, s.hadAlias = c.aliases.Get(term.Key(old))
			c.aliases.Delete(term.Key(old))
		}
		shadow = append(shadow, s)

		value, err := c.Dump(def.Value)
		if err != nil {
			unwind()
			return nil, err
		}
		value = c.tieRecursion(def.Name, value)
		last := &shadow[len(shadow)-1]
		last.newKey = term.Key(value)
		last.prevNew, last.hadPrevNew = c.aliases.Get(last.newKey)
		c.aliases.Set(last.newKey, def.Name)
		c.defs.Set(def.Name, value)
	}

	body, err := c.dumpWith(ctx, l.Body)
	unwind()
	if err != nil {
		return nil, err
	}
	return body, nil
}

// getVarDef resolves a name, in priority order: the local (Abs/let)
// binding it's currently lexically under, a top-level definition, or the
// free-variable alphabet. Failing all three is DefNotFound.
func (c *Compiler) getVarDef(ctx map[string]int, v *ast.Var) (*term.Term, error) {
	if alias, ok := ctx[v.Name]; ok {
		return term.Var(alias), nil
	}
	if def, ok := c.defs.Get(v.Name); ok {
		return def, nil
	}
	if idx, ok := config.ParseIndex(v.Name); ok {
		return term.Var(idx), nil
	}
	return nil, diagnostics.DefNotFound(v.Sp, v.Name)
}

// Insert installs name as a top-level definition. Redefining an existing
// name is rejected rather than shadowed, carrying the previously-installed
// term so the caller can report what it collided with. span is only used
// to locate the AlreadyDefined diagnostic.
//
// Before installing, def is checked for a self-reference: since there is
// no letrec, `Ident = rhs` naming itself inside rhs translates (via the
// free-variable alphabet fallback in getVarDef) to an ordinary free
// variable that would otherwise resolve to nothing connected to Ident at
// all. tieRecursion closes that free occurrence over a fresh parameter and
// applies the Y-combinator, so the definition actually recurses.
func (c *Compiler) Insert(name string, span token.Span, def *term.Term) error {
	term.AssertSingleThreaded()
	if existing, ok := c.defs.Get(name); ok {
		return diagnostics.AlreadyDefined(span, name, existing)
	}
	def = c.tieRecursion(name, def)
	c.aliases.Set(term.Key(def), name)
	c.defs.Set(name, def)
	return nil
}

// tieRecursion rewrites def into Y (λself. def[name := self]) when name
// occurs as a free variable inside def, i.e. when the definition refers to
// itself by name. name's free-variable index is exactly what getVarDef
// would have produced for a textual occurrence of name inside rhs that
// wasn't shadowed by an inner binding of the same surface name, so
// checking for that index in FreeVars(def) is checking for self-reference.
func (c *Compiler) tieRecursion(name string, def *term.Term) *term.Term {
	selfIdx, ok := config.ParseIndex(name)
	if !ok {
		return def
	}
	if _, occurs := term.FreeVars(def)[selfIdx]; !occurs {
		return def
	}
	param := term.NextFreshID()
	closed := term.Abs(param, term.ApplyBy(def, selfIdx, term.Var(param)))
	return term.App(YCombinator(), closed)
}

// PrettyShow renders t using whatever name it was Insert-ed under, if any;
// otherwise it falls back to the raw alphabet encoding of each variable id
// via term.Term.String.
func (c *Compiler) PrettyShow(t *term.Term) string {
	if name, ok := c.aliases.Get(term.Key(t)); ok {
		return name
	}
	switch t.Kind() {
	case term.KindVar:
		return t.String()
	case term.KindApp:
		fn, arg, _ := t.AsApp()
		return c.PrettyShow(fn) + " " + c.prettyShowAtom(arg)
	case term.KindAbs:
		id, body, _ := t.AsAbs()
		return "λ" + config.PrintIndex(id) + "." + c.PrettyShow(body)
	}
	return t.String()
}

func (c *Compiler) prettyShowAtom(t *term.Term) string {
	if t.Kind() == term.KindVar {
		return c.PrettyShow(t)
	}
	return "(" + c.PrettyShow(t) + ")"
}
