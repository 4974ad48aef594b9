// Package script implements a small textual construction language for
// nfa graphs, used by cmd/nfacli to build an automaton without writing
// Go. The grammar is intentionally minimal: one statement per line,
// mirroring the engine's own builder primitives one-for-one.
//
//	state S1
//	start S1
//	trans S1 S2 "a"
//	empty S1 S2
//	nested S1 S2
//	onexit S1 S2 "turn_off"
//	onemptyexit S1 S2
//	repeat S1 S2 2 3
package script

import "github.com/alecthomas/participle/v2"

// Program is the root of a parsed script.
type Program struct {
	Statements []*Statement `parser:"@@*"`
}

// Statement is exactly one of the DSL's declaration forms.
type Statement struct {
	State       *StateDecl       `parser:"(  @@"`
	Start       *StartDecl       `parser:" | @@"`
	Trans       *TransDecl       `parser:" | @@"`
	Empty       *EmptyDecl       `parser:" | @@"`
	Nested      *NestedDecl      `parser:" | @@"`
	OnExit      *OnExitDecl      `parser:" | @@"`
	OnEmptyExit *OnEmptyExitDecl `parser:" | @@"`
	Repeat      *RepeatDecl      `parser:" | @@ )"`
}

// StateDecl declares a state with no transitions yet.
type StateDecl struct {
	Name string `parser:"\"state\" @Ident"`
}

// StartDecl renames the reserved Start state for readability.
type StartDecl struct {
	Name string `parser:"\"start\" @Ident"`
}

// TransDecl adds an ordinary transition.
type TransDecl struct {
	From string `parser:"\"trans\" @Ident"`
	To   string `parser:"@Ident"`
	Sym  string `parser:"@String"`
}

// EmptyDecl adds an ε-transition.
type EmptyDecl struct {
	From string `parser:"\"empty\" @Ident"`
	To   string `parser:"@Ident"`
}

// NestedDecl attaches Entry as Owner's nested sub-automaton.
type NestedDecl struct {
	Owner string `parser:"\"nested\" @Ident"`
	Entry string `parser:"@Ident"`
}

// OnExitDecl adds an on-nested-exit transition.
type OnExitDecl struct {
	From string `parser:"\"onexit\" @Ident"`
	To   string `parser:"@Ident"`
	Sym  string `parser:"@String"`
}

// OnEmptyExitDecl adds an ε on-nested-exit transition.
type OnEmptyExitDecl struct {
	From string `parser:"\"onemptyexit\" @Ident"`
	To   string `parser:"@Ident"`
}

// RepeatDecl applies the repetition transform between From and To.
// Max is either a decimal integer or the literal "unbounded".
type RepeatDecl struct {
	From string `parser:"\"repeat\" @Ident"`
	To   string `parser:"@Ident"`
	Min  int    `parser:"@Int"`
	Max  string `parser:"@(Int|\"unbounded\")"`
}

var parser = participle.MustBuild[Program]()

// Parse parses script source text into an AST.
func Parse(src string) (*Program, error) {
	return parser.ParseString("script", src)
}
