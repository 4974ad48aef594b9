package nfa

import nfaerr "github.com/jacoelho/nfa/errors"

func mustNotBeFinal(s State, action string) {
	if s == Final {
		panic(nfaerr.New(nfaerr.TransitionFromFinal, "cannot %s the Final state", action))
	}
}

// AddTransition prepends an ordinary transition from -> to on sym to
// from's transition list. It panics with a *nfaerr.ProgrammerError if
// from is Final.
func (g *NFA[T, D]) AddTransition(from, to State, sym T) {
	mustNotBeFinal(from, "add an outbound transition from")
	r := g.rec(from)
	g.trans = append(g.trans, transition[T]{to: to, sym: sym, next: r.firstTrans})
	r.firstTrans = len(g.trans) - 1
}

// AddEmptyTransition prepends an ε-transition from -> to.
func (g *NFA[T, D]) AddEmptyTransition(from, to State) {
	mustNotBeFinal(from, "add an outbound transition from")
	r := g.rec(from)
	g.trans = append(g.trans, transition[T]{to: to, isEmpty: true, next: r.firstTrans})
	r.firstTrans = len(g.trans) - 1
}

// OnNestedExit prepends an on-nested-exit transition from -> to on sym.
// It is offered the input symbol when from's nested frontier reaches
// Final on that symbol or fails to consume it, and is never taken as
// one of from's ordinary transitions.
func (g *NFA[T, D]) OnNestedExit(from, to State, sym T) {
	mustNotBeFinal(from, "add an on-nested-exit transition from")
	r := g.rec(from)
	g.trans = append(g.trans, transition[T]{to: to, sym: sym, next: r.firstOnExit})
	r.firstOnExit = len(g.trans) - 1
}

// OnEmptyNestedExit prepends an ε on-nested-exit transition from -> to.
func (g *NFA[T, D]) OnEmptyNestedExit(from, to State) {
	mustNotBeFinal(from, "add an on-nested-exit transition from")
	r := g.rec(from)
	g.trans = append(g.trans, transition[T]{to: to, isEmpty: true, next: r.firstOnExit})
	r.firstOnExit = len(g.trans) - 1
}
