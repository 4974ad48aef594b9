// Package symbols implements a small string-symbol matcher used by the
// scripted construction DSL and the CLI: a transition symbol is either
// a literal string, the wildcard ".", or a bracketed class "[a,b,c]".
package symbols

import "strings"

// Symbol is one transition-carried symbol: a pattern matched against a
// plain-string input symbol at runtime.
type Symbol struct {
	literal string
	class   []string
	kind    kind
}

type kind uint8

const (
	kindLiteral kind = iota
	kindWildcard
	kindClass
)

// Literal builds a Symbol matching exactly s.
func Literal(s string) Symbol {
	return Symbol{kind: kindLiteral, literal: s}
}

// Wildcard builds a Symbol matching any single input symbol.
func Wildcard() Symbol {
	return Symbol{kind: kindWildcard}
}

// Class builds a Symbol matching any one of members.
func Class(members ...string) Symbol {
	return Symbol{kind: kindClass, class: members}
}

// Match reports whether input satisfies sym, independent of which
// Symbol carries the input side: only sym's pattern is consulted.
func Match(sym, input Symbol) bool {
	in := input.literal
	switch sym.kind {
	case kindWildcard:
		return true
	case kindClass:
		for _, m := range sym.class {
			if m == in {
				return true
			}
		}
		return false
	default:
		return sym.literal == in
	}
}

// Image renders sym back to its source-level textual form, for use as
// the engine's diagnostic Image function.
func Image(sym Symbol) string {
	switch sym.kind {
	case kindWildcard:
		return "."
	case kindClass:
		return "[" + strings.Join(sym.class, ",") + "]"
	default:
		return sym.literal
	}
}

// Input builds the Symbol representation of one runtime input value,
// as opposed to a transition pattern.
func Input(s string) Symbol {
	return Symbol{kind: kindLiteral, literal: s}
}
