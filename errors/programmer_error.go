// Package errors defines the programmer-error type raised by the nfa
// engine when a caller violates one of its construction invariants.
package errors

import "fmt"

// Code identifies a class of programmer error.
type Code string

const (
	// TransitionFromFinal is raised when a caller attempts to add an
	// outbound transition (ordinary, empty, or on-nested-exit) from
	// the Final sentinel state, which invariant 1 forbids. It is also
	// raised when GetData or SetNested is called on Final.
	TransitionFromFinal Code = "nfa.transition-from-final"
)

// ProgrammerError reports a violated engine invariant: a bug in the
// caller, never a runtime matching failure. The engine always panics
// with one rather than returning it, so well-behaved callers never pay
// for a check on the hot path; a caller that wants to turn construction
// mistakes into handled errors can recover and type-assert.
type ProgrammerError struct {
	Code    Code
	Message string
}

// Error formats the error as "[code] message".
func (e *ProgrammerError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// New builds a ProgrammerError from a code and a formatted message.
func New(code Code, format string, args ...any) *ProgrammerError {
	return &ProgrammerError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// As reports whether err is a *ProgrammerError, for callers that
// recover from the panic the engine raises on invariant violations.
func As(err any) (*ProgrammerError, bool) {
	pe, ok := err.(*ProgrammerError)
	return pe, ok
}
