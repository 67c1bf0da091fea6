// Package term implements the canonical, integer-id representation of
// lambda terms and the reduction engine that operates on it: α/β/η
// reduction, α-equivalence, de-Bruijn-style canonicalization, free/bound
// variable analysis and the closedness optimization.
//
// Terms are immutable once built. Every transformation in this package is
// a pure function that returns a (possibly-shared) new *Term rather than
// mutating one in place — the persistent-data-structure discipline,
// applied to a tree.
package term

// Kind discriminates the three shapes a Term can take.
type Kind int

const (
	KindVar Kind = iota
	KindApp
	KindAbs
)

// Term is a node in the shared term graph. Fields are unexported so the
// only way to build one is through the smart constructors below, which
// keep the closedness flag (invariant I1: closed ⇔ FV(t) = ∅) correct by
// construction.
type Term struct {
	kind Kind

	id int // KindVar: the variable id. KindAbs: the bound variable id.

	fn, arg *Term // KindApp
	body    *Term // KindAbs

	closed bool
}

func (t *Term) Kind() Kind { return t.kind }

// AsVar reports whether t is a variable occurrence and, if so, its id.
func (t *Term) AsVar() (int, bool) {
	if t.kind == KindVar {
		return t.id, true
	}
	return 0, false
}

// AsApp reports whether t is an application and, if so, its two children.
func (t *Term) AsApp() (fn, arg *Term, ok bool) {
	if t.kind == KindApp {
		return t.fn, t.arg, true
	}
	return nil, nil, false
}

// AsAbs reports whether t is an abstraction and, if so, its bound id and body.
func (t *Term) AsAbs() (id int, body *Term, ok bool) {
	if t.kind == KindAbs {
		return t.id, t.body, true
	}
	return 0, nil, false
}

// Closed reports the cached closedness flag (I1).
func (t *Term) Closed() bool { return t.closed }

// Equal reports whether t and other are the same term up to renaming of
// bound variables. It gives github.com/google/go-cmp a structural
// comparison to use for *Term (whose fields are all unexported) instead of
// either a reflect.DeepEqual that cares about internal bound-variable ids,
// or a cmp.Exporter that would reach into private fields.
func (t *Term) Equal(other *Term) bool {
	return AlphaEq(t, other)
}

// Var builds a variable occurrence. A bare variable is never closed: it is
// its own sole free variable.
func Var(id int) *Term {
	return &Term{kind: KindVar, id: id, closed: false}
}

// App builds an application. Closed iff both children are.
func App(fn, arg *Term) *Term {
	return &Term{kind: KindApp, fn: fn, arg: arg, closed: fn.closed && arg.closed}
}

// Abs builds an abstraction binding id in body. Closed iff FV(body) ⊆ {id}.
func Abs(id int, body *Term) *Term {
	closed := body.closed
	if !closed {
		fv := FreeVars(body)
		if len(fv) == 1 {
			_, only := fv[id]
			closed = only
		}
	}
	return &Term{kind: KindAbs, id: id, body: body, closed: closed}
}

// UpdateClosed recomputes the closedness flag bottom-up and returns an
// equivalent term with the invariant restored. The smart constructors
// above already keep the flag correct at every allocation, so this is
// mainly needed when a Term tree was assembled by hand (e.g. by tests)
// without going through Var/App/Abs.
func UpdateClosed(t *Term) *Term {
	switch t.kind {
	case KindVar:
		return Var(t.id)
	case KindApp:
		return App(UpdateClosed(t.fn), UpdateClosed(t.arg))
	case KindAbs:
		return Abs(t.id, UpdateClosed(t.body))
	}
	panic("term: unreachable kind")
}
