package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jacoelho/nfa"
	"github.com/jacoelho/nfa/internal/symbols"
)

// Build parses src and constructs the NFA it describes, returning the
// graph and a lookup from the script's state names to their allocated
// handles (including the reserved "Start" and "Final" names).
func Build(src string) (*nfa.NFA[symbols.Symbol, string], map[string]nfa.State, error) {
	prog, err := Parse(src)
	if err != nil {
		return nil, nil, fmt.Errorf("parse script: %w", err)
	}

	g := nfa.New[symbols.Symbol, string](true)
	names := map[string]nfa.State{"Start": nfa.Start, "Final": nfa.Final}

	resolve := func(name string) nfa.State {
		if s, ok := names[name]; ok {
			return s
		}
		s := g.AddState(name)
		names[name] = s
		return s
	}

	for _, stmt := range prog.Statements {
		switch {
		case stmt.State != nil:
			resolve(stmt.State.Name)
		case stmt.Start != nil:
			names[stmt.Start.Name] = nfa.Start
		case stmt.Trans != nil:
			sym, err := unquote(stmt.Trans.Sym)
			if err != nil {
				return nil, nil, err
			}
			g.AddTransition(resolve(stmt.Trans.From), resolve(stmt.Trans.To), symbols.Literal(sym))
		case stmt.Empty != nil:
			g.AddEmptyTransition(resolve(stmt.Empty.From), resolve(stmt.Empty.To))
		case stmt.Nested != nil:
			owner := resolve(stmt.Nested.Owner)
			entry := resolve(stmt.Nested.Entry)
			g.SetNested(owner, g.CreateNested(entry))
		case stmt.OnExit != nil:
			sym, err := unquote(stmt.OnExit.Sym)
			if err != nil {
				return nil, nil, err
			}
			g.OnNestedExit(resolve(stmt.OnExit.From), resolve(stmt.OnExit.To), symbols.Literal(sym))
		case stmt.OnEmptyExit != nil:
			g.OnEmptyNestedExit(resolve(stmt.OnEmptyExit.From), resolve(stmt.OnEmptyExit.To))
		case stmt.Repeat != nil:
			from := resolve(stmt.Repeat.From)
			to := resolve(stmt.Repeat.To)
			max, err := parseBound(stmt.Repeat.Max)
			if err != nil {
				return nil, nil, err
			}
			g.Repeat(from, to, stmt.Repeat.Min, max)
		}
	}
	return g, names, nil
}

func parseBound(s string) (int, error) {
	if s == "unbounded" {
		return nfa.Unbounded, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse repeat bound %q: %w", s, err)
	}
	return n, nil
}

func unquote(s string) (string, error) {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return strconv.Unquote(s)
	}
	return s, nil
}
