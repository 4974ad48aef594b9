package nfa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jacoelho/nfa/internal/state"
)

// DumpMode selects the textual representation produced by Dump.
type DumpMode int

const (
	// Compact renders the graph as a single line of "from--sym-->to"
	// edges separated by "; ".
	Compact DumpMode = iota
	// Multiline renders one edge per line, indented by nesting depth.
	Multiline
	// Dot renders a Graphviz "digraph" with nested automata as labelled
	// clusters.
	Dot
	// DotCompact renders the same graph as Dot with no extra whitespace,
	// suitable for diffing or embedding.
	DotCompact
)

func defaultImage(s State) string {
	if s == Final {
		return "Final"
	}
	return fmt.Sprintf("S%d", int(s))
}

// Dump renders the whole graph reachable from Start.
func Dump[T, D any](g *NFA[T, D], image func(T) string, mode DumpMode) string {
	return dumpFrom(g, Start, image, mode)
}

// DumpNested renders the sub-graph reachable from a nested descriptor's
// entry state, for introspecting one attachment in isolation.
func DumpNested[T, D any](g *NFA[T, D], nested Nested, image func(T) string, mode DumpMode) string {
	return dumpFrom(g, nested.start, image, mode)
}

type edge struct {
	from, to State
	sym      string
	isEmpty  bool
	isOnExit bool
}

// walkGraph returns every state reachable from start (start included)
// and the edges between them, not descending into nested sub-graphs
// (those are collected separately so callers can dedup shared ones).
func walkGraph[T, D any](g *NFA[T, D], start State, image func(T) string) ([]State, []edge, map[State]Nested) {
	visited := map[State]bool{start: true}
	order := []State{start}
	nestedOf := map[State]Nested{}
	var edges []edge

	var pending state.StateStack[State]
	pending.Push(start)
	for {
		s, ok := pending.Pop()
		if !ok {
			break
		}
		if s == Final {
			continue
		}
		r := g.rec(s)
		if r.hasNested {
			nestedOf[s] = Nested{start: r.nestedStart}
		}
		collect := func(head int, onExit bool) {
			for ti := head; ti != noIndex; ti = g.trans[ti].next {
				t := g.trans[ti]
				sym := ""
				if !t.isEmpty {
					sym = image(t.sym)
				}
				edges = append(edges, edge{from: s, to: t.to, sym: sym, isEmpty: t.isEmpty, isOnExit: onExit})
				if !visited[t.to] {
					visited[t.to] = true
					order = append(order, t.to)
					pending.Push(t.to)
				}
			}
		}
		collect(r.firstTrans, false)
		collect(r.firstOnExit, true)
	}
	return order, edges, nestedOf
}

func dumpFrom[T, D any](g *NFA[T, D], start State, image func(T) string, mode DumpMode) string {
	_, edges, nestedOf := walkGraph(g, start, image)
	switch mode {
	case Multiline:
		return dumpMultiline(g, start, image, edges, nestedOf, 0, map[State]bool{})
	case Dot, DotCompact:
		return dumpDot(g, start, image, mode == DotCompact)
	default:
		return dumpCompact(edges)
	}
}

func stateLabel(s State) string {
	return defaultImage(s)
}

func edgeLabel(e edge) string {
	switch {
	case e.isOnExit && e.isEmpty:
		return "on-exit(ε)"
	case e.isOnExit:
		return "on-exit(" + e.sym + ")"
	case e.isEmpty:
		return "ε"
	default:
		return e.sym
	}
}

func dumpCompact(edges []edge) string {
	parts := make([]string, 0, len(edges))
	for _, e := range edges {
		parts = append(parts, fmt.Sprintf("%s--%s-->%s", stateLabel(e.from), edgeLabel(e), stateLabel(e.to)))
	}
	return strings.Join(parts, "; ")
}

func dumpMultiline[T, D any](g *NFA[T, D], start State, image func(T) string, edges []edge, nestedOf map[State]Nested, depth int, printedNested map[State]bool) string {
	indent := strings.Repeat("  ", depth)
	var b strings.Builder
	for _, e := range edges {
		fmt.Fprintf(&b, "%s%s--%s-->%s\n", indent, stateLabel(e.from), edgeLabel(e), stateLabel(e.to))
	}
	for _, s := range sortedStates(nestedOf) {
		n := nestedOf[s]
		if printedNested[n.start] {
			continue
		}
		printedNested[n.start] = true
		fmt.Fprintf(&b, "%snested(%s):\n", indent, stateLabel(s))
		_, subEdges, subNested := walkGraph(g, n.start, image)
		b.WriteString(dumpMultiline(g, n.start, image, subEdges, subNested, depth+1, printedNested))
	}
	return strings.TrimRight(b.String(), "\n")
}

func sortedStates(m map[State]Nested) []State {
	out := make([]State, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func dumpDot[T, D any](g *NFA[T, D], start State, image func(T) string, compact bool) string {
	nl, tab := "\n", "  "
	if compact {
		nl, tab = "", ""
	}
	var b strings.Builder
	b.WriteString("digraph nfa {" + nl)
	writeDotCluster(&b, g, start, image, 0, map[State]bool{}, nl, tab)
	b.WriteString("}")
	return b.String()
}

func writeDotCluster[T, D any](b *strings.Builder, g *NFA[T, D], start State, image func(T) string, depth int, printedNested map[State]bool, nl, tab string) {
	_, edges, nestedOf := walkGraph(g, start, image)
	ind := strings.Repeat(tab, depth+1)
	for _, e := range edges {
		style := "solid"
		switch {
		case e.isOnExit:
			style = "dotted"
		case e.isEmpty:
			style = "dashed"
		}
		fmt.Fprintf(b, "%s%q -> %q [label=%q, style=%s];%s", ind, stateLabel(e.from), stateLabel(e.to), edgeLabel(e), style, nl)
	}
	for _, s := range sortedStates(nestedOf) {
		n := nestedOf[s]
		if printedNested[n.start] {
			continue
		}
		printedNested[n.start] = true
		fmt.Fprintf(b, "%ssubgraph cluster_%s {%s", ind, stateLabel(s), nl)
		fmt.Fprintf(b, "%s%slabel=%q;%s", ind, tab, "nested of "+stateLabel(s), nl)
		writeDotCluster(b, g, n.start, image, depth+1, printedNested, nl, tab)
		fmt.Fprintf(b, "%s}%s", ind, nl)
	}
}

// DebugPrint renders a matcher's current frontier (all nesting levels)
// as a compact, human-readable listing of active states.
func DebugPrint[T, D any](m *Matcher[T, D]) string {
	var b strings.Builder
	var walk func(lvl *frontier[T, D], depth int)
	walk = func(lvl *frontier[T, D], depth int) {
		indent := strings.Repeat("  ", depth)
		for i := lvl.first; i != noIndex; i = lvl.entries[i].next {
			e := lvl.entries[i]
			fmt.Fprintf(&b, "%s%s\n", indent, stateLabel(e.state))
			if e.nested != nil {
				walk(e.nested, depth+1)
			}
		}
	}
	walk(m.top, 0)
	return strings.TrimRight(b.String(), "\n")
}
