package nfa

import "strings"

// Matcher is a stateful, per-run active-frontier over an NFA. It is
// not safe for concurrent use: a single matcher is driven by one
// caller, one symbol at a time (spec non-goal: concurrent matching
// against a single shared matcher).
type Matcher[T, D any] struct {
	g     *NFA[T, D]
	match func(sym, input T) bool
	image func(sym T) string
	top   *frontier[T, D]
}

// StartMatch creates a matcher positioned at g's Start state.
func StartMatch[T, D any](g *NFA[T, D], match func(sym, input T) bool, image func(sym T) string) *Matcher[T, D] {
	return StartMatchAt(g, Start, match, image)
}

// StartMatchAt creates a matcher positioned at an arbitrary state,
// used to drive a nested sub-automaton independently of its parent.
func StartMatchAt[T, D any](g *NFA[T, D], s State, match func(sym, input T) bool, image func(sym T) string) *Matcher[T, D] {
	m := &Matcher[T, D]{g: g, match: match, image: image}
	m.top = newFrontier[T, D]()
	markActive(g, m.top, s, nil)
	return m
}

// markActive inserts s into level, closing over its ε-transitions and,
// unless presetNested is supplied, activating a fresh nested frontier
// if s carries one. presetNested lets Process carry an already-advanced
// nested frontier forward into the next level without re-deriving it.
func markActive[T, D any](g *NFA[T, D], level *frontier[T, D], s State, presetNested *frontier[T, D]) {
	if level.isActive(s) {
		return
	}
	idx := level.insert(s)
	if s == Final {
		return
	}
	r := g.rec(s)
	for ti := r.firstTrans; ti != noIndex; ti = g.trans[ti].next {
		if g.trans[ti].isEmpty {
			markActive(g, level, g.trans[ti].to, nil)
		}
	}
	switch {
	case presetNested != nil:
		level.entries[idx].nested = presetNested
	case r.hasNested:
		nested := newFrontier[T, D]()
		markActive(g, nested, r.nestedStart, nil)
		level.entries[idx].nested = nested
	}
}

// Process consumes one input symbol, advancing the frontier. It is
// transactional: on failure the matcher is left exactly as it was
// before the call.
func (m *Matcher[T, D]) Process(input T) bool {
	next, ok := stepLevel(m.g, m.match, m.top, input)
	if !ok {
		return false
	}
	m.top = next
	return true
}

// stepLevel advances one frontier level by one symbol, returning the
// new level and whether any state remains active in it. On failure the
// original level is returned unmodified, satisfying process's
// transactional contract without needing an explicit snapshot/restore:
// the new level is built alongside the old one and only swapped in by
// the caller on success.
func stepLevel[T, D any](g *NFA[T, D], match func(T, T) bool, level *frontier[T, D], input T) (*frontier[T, D], bool) {
	next := newFrontier[T, D]()
	for i := level.first; i != noIndex; i = level.entries[i].next {
		e := level.entries[i]
		if e.nested == nil {
			if e.state != Final {
				offerOrdinary(g, match, next, e.state, input)
			}
			continue
		}

		newNested, nestedOK := stepLevel(g, match, e.nested, input)
		reachedFinal := nestedOK && newNested.headIsFinal()
		if nestedOK {
			markActive(g, next, e.state, newNested)
		}
		// The enclosing state's on_nested_exit transitions fire both
		// when the nested frontier just reached Final and when the
		// nested frontier dies outright: either way the nested level
		// is not productively consuming further input on its own, so
		// the enclosing state gets a chance to claim the symbol itself.
		if reachedFinal || !nestedOK {
			offerOnExit(g, match, next, e.state, input)
		}
		if !nestedOK {
			offerOrdinary(g, match, next, e.state, input)
		}
	}
	if next.first == noIndex && len(next.entries) == 0 {
		return level, false
	}
	return next, true
}

func offerOrdinary[T, D any](g *NFA[T, D], match func(T, T) bool, next *frontier[T, D], s State, input T) {
	r := g.rec(s)
	for ti := r.firstTrans; ti != noIndex; ti = g.trans[ti].next {
		t := g.trans[ti]
		if t.isEmpty || next.isActive(t.to) {
			continue
		}
		if match(t.sym, input) {
			markActive(g, next, t.to, nil)
		}
	}
}

func offerOnExit[T, D any](g *NFA[T, D], match func(T, T) bool, next *frontier[T, D], s State, input T) {
	r := g.rec(s)
	for ti := r.firstOnExit; ti != noIndex; ti = g.trans[ti].next {
		t := g.trans[ti]
		if t.isEmpty || next.isActive(t.to) {
			continue
		}
		if match(t.sym, input) {
			markActive(g, next, t.to, nil)
		}
	}
}

// InFinal reports whether the top-level frontier is empty or headed by
// Final: the empty suffix from the current frontier is in the language.
func (m *Matcher[T, D]) InFinal() bool {
	return m.top.first == noIndex || m.top.headIsFinal()
}

// ForEachActiveState iterates the top-level active states in frontier
// order. When ignoreIfNested is set, a state whose nested frontier has
// not reached Final is skipped.
func (m *Matcher[T, D]) ForEachActiveState(ignoreIfNested bool, fn func(State)) {
	for i := m.top.first; i != noIndex; i = m.top.entries[i].next {
		e := m.top.entries[i]
		if ignoreIfNested && e.nested != nil && !e.nested.headIsFinal() {
			continue
		}
		fn(e.state)
	}
}

// Expected returns the '|'-joined images of the symbols on ordinary
// transitions out of the currently active states, a diagnostics aid.
func (m *Matcher[T, D]) Expected() string {
	var out []string
	seen := make(map[string]bool)
	add := func(sym T) {
		img := m.image(sym)
		if seen[img] {
			return
		}
		seen[img] = true
		out = append(out, img)
	}
	var walk func(lvl *frontier[T, D])
	walk = func(lvl *frontier[T, D]) {
		for i := lvl.first; i != noIndex; i = lvl.entries[i].next {
			e := lvl.entries[i]
			if e.nested != nil {
				walk(e.nested)
			}
			if e.state == Final {
				continue
			}
			r := m.g.rec(e.state)
			for ti := r.firstTrans; ti != noIndex; ti = m.g.trans[ti].next {
				if !m.g.trans[ti].isEmpty {
					add(m.g.trans[ti].sym)
				}
			}
		}
	}
	walk(m.top)
	return strings.Join(out, "|")
}
