// Package nfa implements a hierarchical Nondeterministic Finite Automaton
// engine: a graph store and builder for constructing NFAs whose states may
// carry a nested sub-automaton, and a stateful matcher that consumes one
// symbol at a time against the active-state frontier.
//
// The engine is deliberately generic over the symbol alphabet: callers
// supply a comparison predicate and a diagnostic image function rather than
// the engine assuming any particular symbol representation. This mirrors
// how XML-schema validators treat element and wildcard particles as opaque
// match targets rather than baking string comparison into the core.
//
// A graph (NFA) is built once and then shared read-only by any number of
// independent Matchers; constructing a Matcher snapshots nothing from the
// graph, it only walks it.
package nfa
