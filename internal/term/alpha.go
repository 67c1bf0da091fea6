package term

// AlphaEq reports whether a and b are equal up to renaming of bound
// variables. Free variables are never renamed: two free occurrences are
// the same variable iff they carry the same id.
//
// Both sides are walked in lockstep, each tracking its own id→depth map.
// Free ids are seeded into their side's map as self-identities so that a
// free Var(5) on the left can only match a free Var(5) on the right.
// Every Abs assigns both binders the same negative depth counter, which
// can never collide with a non-negative free id; shadowing falls out for
// free because each Abs recurses with a locally-extended copy of the maps
// rather than mutating the caller's.
func AlphaEq(a, b *Term) bool {
	selfMap := identityMap(FreeVars(a))
	rhsMap := identityMap(FreeVars(b))
	counter := -1
	return alphaEqWith(a, b, selfMap, rhsMap, &counter)
}

func identityMap(ids map[int]struct{}) map[int]int {
	m := make(map[int]int, len(ids))
	for id := range ids {
		m[id] = id
	}
	return m
}

func alphaEqWith(a, b *Term, selfMap, rhsMap map[int]int, counter *int) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindVar:
		sv, sok := selfMap[a.id]
		rv, rok := rhsMap[b.id]
		return sok && rok && sv == rv
	case KindApp:
		return alphaEqWith(a.fn, b.fn, selfMap, rhsMap, counter) &&
			alphaEqWith(a.arg, b.arg, selfMap, rhsMap, counter)
	case KindAbs:
		depth := *counter
		*counter--
		newSelf := cloneIntMap(selfMap)
		newSelf[a.id] = depth
		newRhs := cloneIntMap(rhsMap)
		newRhs[b.id] = depth
		return alphaEqWith(a.body, b.body, newSelf, newRhs, counter)
	}
	return false
}

func cloneIntMap(m map[int]int) map[int]int {
	n := make(map[int]int, len(m)+1)
	for k, v := range m {
		n[k] = v
	}
	return n
}
