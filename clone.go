package nfa

import "github.com/jacoelho/nfa/internal/state"

// computeInterior returns the set of states forward-reachable from
// from, following both ordinary and on-nested-exit transitions, without
// crossing boundary or Final. from is always the first element. The
// traversal uses an explicit worklist rather than recursion so deep
// sequential content models don't threaten the call stack.
func (g *NFA[T, D]) computeInterior(from, boundary State) []State {
	visited := map[State]bool{from: true}
	order := []State{from}

	var pending state.StateStack[State]
	pending.Push(from)

	for {
		s, ok := pending.Pop()
		if !ok {
			break
		}
		r := g.rec(s)
		visit := func(head int) {
			for ti := head; ti != noIndex; ti = g.trans[ti].next {
				to := g.trans[ti].to
				if to == Final || to == boundary || visited[to] {
					continue
				}
				visited[to] = true
				order = append(order, to)
				pending.Push(to)
			}
		}
		visit(r.firstTrans)
		visit(r.firstOnExit)
	}
	return order
}

// redirectTo rewrites every transition in the graph that currently
// targets oldTo so it targets newTo instead. This is used to splice a
// sub-graph's public sink out of its interior before cloning.
func (g *NFA[T, D]) redirectTo(oldTo, newTo State) {
	for i := range g.trans {
		if g.trans[i].to == oldTo {
			g.trans[i].to = newTo
		}
	}
}

// cloneStateShell allocates a fresh state carrying a copy of s's data
// and the same nested attachment (shared by reference: the clone's
// nested_start points at the same sub-graph, never a fresh copy of it).
func (g *NFA[T, D]) cloneStateShell(s State) State {
	r := g.rec(s)
	clone := g.AddState(r.data)
	if r.hasNested {
		g.SetNested(clone, Nested{start: r.nestedStart})
	}
	return clone
}

// reproduceTransitions copies orig's ordinary and on-nested-exit lists
// onto clone, mapping any target that lies in the interior set through
// cloneMap, redirecting the sub-graph's boundary target (newTo) to
// sink, and leaving every other (external) reference unchanged.
func (g *NFA[T, D]) reproduceTransitions(orig, clone State, cloneMap map[State]State, newTo, sink State) {
	remap := func(to State) State {
		if to == newTo {
			return sink
		}
		if mapped, ok := cloneMap[to]; ok {
			return mapped
		}
		return to
	}

	r := g.rec(orig)
	for ti := r.firstTrans; ti != noIndex; ti = g.trans[ti].next {
		t := g.trans[ti]
		if t.isEmpty {
			g.AddEmptyTransition(clone, remap(t.to))
		} else {
			g.AddTransition(clone, remap(t.to), t.sym)
		}
	}
	for ti := r.firstOnExit; ti != noIndex; ti = g.trans[ti].next {
		t := g.trans[ti]
		if t.isEmpty {
			g.OnEmptyNestedExit(clone, remap(t.to))
		} else {
			g.OnNestedExit(clone, remap(t.to), t.sym)
		}
	}
}

// cloneOccurrence builds one additional copy of the interior states,
// returning the clone's own entry (the clone of interior[0] == from)
// and a fresh sink state collecting every transition that, in the
// original, led to the sub-graph's boundary.
func (g *NFA[T, D]) cloneOccurrence(interior []State, newTo State) (entryClone, sinkClone State) {
	cloneMap := make(map[State]State, len(interior))
	for _, s := range interior {
		cloneMap[s] = g.cloneStateShell(s)
	}

	var zero D
	sinkClone = g.AddState(zero)
	for _, s := range interior {
		g.reproduceTransitions(s, cloneMap[s], cloneMap, newTo, sinkClone)
	}
	return cloneMap[interior[0]], sinkClone
}
