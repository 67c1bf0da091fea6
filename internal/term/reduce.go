package term

import (
	"context"

	"github.com/funvibe/church/internal/config"
)

// etaStep rewrites Abs(v, App(f, Var(v))) to f when v is not free in f.
// Tried first at every Abs node in both strategies below, per the
// placement decided in DESIGN.md: eta is not a separate pass, it fires at
// the same point in traversal as the rest of a single step.
func etaStep(t *Term) (*Term, bool) {
	if t.kind != KindAbs {
		return t, false
	}
	fn, arg, ok := t.body.AsApp()
	if !ok {
		return t, false
	}
	argID, isVar := arg.AsVar()
	if !isVar || argID != t.id {
		return t, false
	}
	if IsFreeIn(t.id, fn) {
		return t, false
	}
	return fn, true
}

// normalStep performs one leftmost-outermost β (or η) step: the first
// reducible redex in a pre-order walk fires, diving into the function
// position before the argument and before the body of an abstraction.
func normalStep(t *Term) (*Term, bool) {
	switch t.kind {
	case KindVar:
		return t, false
	case KindApp:
		if t.fn.kind == KindAbs {
			return ApplyBy(t.fn.body, t.fn.id, t.arg), true
		}
		if nf, ok := normalStep(t.fn); ok {
			return App(nf, t.arg), true
		}
		if na, ok := normalStep(t.arg); ok {
			return App(t.fn, na), true
		}
		return t, false
	case KindAbs:
		if f, ok := etaStep(t); ok {
			return f, true
		}
		if nb, ok := normalStep(t.body); ok {
			return Abs(t.id, nb), true
		}
		return t, false
	}
	panic("term: unreachable kind")
}

// isValue reports whether t counts as already-reduced under call-by-value:
// a variable or an abstraction, never a pending application.
func isValue(t *Term) bool {
	return t.kind == KindVar || t.kind == KindAbs
}

// cbvStep performs one call-by-value step: an application only fires once
// its argument is a value, and the function and argument positions are
// reduced to values (left to right) before the redex itself is tried.
func cbvStep(t *Term) (*Term, bool) {
	switch t.kind {
	case KindVar:
		return t, false
	case KindApp:
		if t.fn.kind == KindAbs {
			if isValue(t.arg) {
				return ApplyBy(t.fn.body, t.fn.id, t.arg), true
			}
			if na, ok := cbvStep(t.arg); ok {
				return App(t.fn, na), true
			}
			return t, false
		}
		if nf, ok := cbvStep(t.fn); ok {
			return App(nf, t.arg), true
		}
		if na, ok := cbvStep(t.arg); ok {
			return App(t.fn, na), true
		}
		return t, false
	case KindAbs:
		if f, ok := etaStep(t); ok {
			return f, true
		}
		if nb, ok := cbvStep(t.body); ok {
			return Abs(t.id, nb), true
		}
		return t, false
	}
	panic("term: unreachable kind")
}

// Step performs a single reduction step under strat. The second return
// value is false when t is already in normal form.
func Step(t *Term, strat config.Strategy) (*Term, bool) {
	if strat == config.CallByValue {
		return cbvStep(t)
	}
	return normalStep(t)
}

// Reduce repeatedly steps t under strat until it reaches normal form, the
// step budget is exhausted, or ctx is cancelled. The returned bool reports
// whether a normal form was actually reached; on cancellation or step
// exhaustion it is false and the returned term is simply the most recently
// reduced one, not rolled back — a step is never left half-applied.
func Reduce(ctx context.Context, t *Term, strat config.Strategy, maxSteps int) (*Term, bool) {
	AssertSingleThreaded()
	cur := t
	for i := 0; i < maxSteps; i++ {
		select {
		case <-ctx.Done():
			return cur, false
		default:
		}
		next, ok := Step(cur, strat)
		if !ok {
			return cur, true
		}
		cur = next
	}
	return cur, false
}
