package term

// Key renders the de-Bruijn canonical form of t as a string, suitable as a
// map key for an alias table: two terms produce the same Key iff they are
// α-equivalent.
func Key(t *Term) string {
	return Canonicalize(t).String()
}

// Canonicalize renames every bound variable in t to a de-Bruijn-style
// canonical id: the smallest non-negative integer not already assigned and
// not occupied by one of t's free variables, handed out in pre-order as
// each Abs is encountered. De-Bruijn canonicalization is a fixpoint on
// α-equivalence classes: two terms are α-equivalent iff Canonicalize
// produces structurally identical results, which is what lets the compiler
// use it as an alias-table key.
func Canonicalize(t *Term) *Term {
	frees := FreeVars(t)
	next := 0
	replaces := map[int]int{}
	return canonicalize(t, frees, replaces, &next)
}

func canonicalize(t *Term, frees map[int]struct{}, replaces map[int]int, next *int) *Term {
	switch t.kind {
	case KindVar:
		if nv, ok := replaces[t.id]; ok {
			return Var(nv)
		}
		return Var(t.id) // free: unchanged
	case KindApp:
		return App(
			canonicalize(t.fn, frees, replaces, next),
			canonicalize(t.arg, frees, replaces, next),
		)
	case KindAbs:
		nv := *next
		for {
			if _, occupied := frees[nv]; !occupied {
				break
			}
			nv++
		}
		old, hadOld := replaces[t.id]
		replaces[t.id] = nv
		*next = nv + 1

		body := canonicalize(t.body, frees, replaces, next)

		if hadOld {
			replaces[t.id] = old
		} else {
			delete(replaces, t.id)
		}
		return Abs(nv, body)
	}
	panic("term: unreachable kind")
}
