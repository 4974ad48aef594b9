package nfa

// Repeat rewrites the sub-graph bounded by from and to so its language
// is matched between minOccurs and maxOccurs times (maxOccurs ==
// Unbounded for infinity). from must be the sub-graph's sole external
// entry and to its sole external exit (invariant 6); Repeat preserves
// that property for the rewritten graph.
func (g *NFA[T, D]) Repeat(from, to State, minOccurs, maxOccurs int) {
	if maxOccurs != Unbounded && minOccurs > maxOccurs {
		return
	}
	switch {
	case maxOccurs == 0:
		// {0,0}: the particle never appears, but zero occurrences of it
		// must still be accepted. from's ordinary transitions all lead
		// into the sub-graph (invariant 6), so they are unlinked and
		// replaced by a single empty transition to to.
		g.rec(from).firstTrans = noIndex
		g.AddEmptyTransition(from, to)
	case minOccurs == 1 && maxOccurs == 1:
		// no-op
	case minOccurs == 0 && maxOccurs == 1:
		g.AddEmptyTransition(from, to)
	case minOccurs == 1 && maxOccurs == Unbounded:
		g.AddEmptyTransition(to, from)
	case minOccurs == 0 && maxOccurs == Unbounded:
		g.AddEmptyTransition(from, to)
		g.AddEmptyTransition(to, from)
	default:
		g.repeatGeneral(from, to, minOccurs, maxOccurs)
	}
}

// repeatGeneral handles every bound not covered by Repeat's fast paths:
// finite max > 1, and unbounded max with min >= 2. It clones the
// from..to sub-graph into a chain of occurrences and funnels every
// occurrence whose index is >= minOccurs into a merge state ahead of
// to. An unbounded max is realized by looping the chain's final
// mandatory occurrence back onto itself, the usual e{m,} = e^(m-1) e+
// decomposition.
func (g *NFA[T, D]) repeatGeneral(from, to State, minOccurs, maxOccurs int) {
	unboundedTail := maxOccurs == Unbounded
	count := maxOccurs
	if unboundedTail {
		count = minOccurs
	}

	var zero D
	newTo := g.AddState(zero)
	g.redirectTo(to, newTo)

	interior := g.computeInterior(from, newTo)

	merge := g.AddState(zero)
	if g.statesAreStateful {
		*g.GetData(merge) = *g.GetData(to)
		*g.GetData(to) = zero
	}
	g.AddEmptyTransition(merge, to)
	if minOccurs == 0 {
		// zero occurrences is itself acceptable: skip the whole chain.
		g.AddEmptyTransition(from, merge)
	}

	entry := make([]State, count+1)
	sink := make([]State, count+1)
	entry[1], sink[1] = from, newTo

	for c := 2; c <= count; c++ {
		entry[c], sink[c] = g.cloneOccurrence(interior, newTo)
	}

	for c := 1; c <= count; c++ {
		if c < count {
			g.AddEmptyTransition(sink[c], entry[c+1])
		}
		if c >= minOccurs {
			g.AddEmptyTransition(sink[c], merge)
		}
	}
	if unboundedTail {
		g.AddEmptyTransition(sink[count], entry[count])
	}
}
