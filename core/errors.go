package core

// These errors are user errors, not internal errors.
//
// There are two families: ValidationErrors come from Validate, and
// EvaluationErrors come from Delta and Evaluate.  The families are
// disjoint.

import (
	"fmt"
	"strings"
)

// ValidationError is an error that Validate can return.
type ValidationError interface {
	error
	validationError()
}

// EvaluationError is an error that Delta or Evaluate can return.
type EvaluationError interface {
	error
	evaluationError()
}

// MissingFieldError occurs when a required field of a Description is
// absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return `DFA description missing field "` + e.Field + `"`
}

func (e *MissingFieldError) validationError() {}

// DuplicateSymbolError occurs when the alphabet lists a symbol more
// than once.
type DuplicateSymbolError struct {
	Symbol Symbol
}

func (e *DuplicateSymbolError) Error() string {
	return `symbol "` + string(e.Symbol) + `" appears more than once in the alphabet`
}

func (e *DuplicateSymbolError) validationError() {}

// DuplicateStateError occurs when a state is declared more than once.
type DuplicateStateError struct {
	State State
}

func (e *DuplicateStateError) Error() string {
	return `state "` + string(e.State) + `" is declared more than once`
}

func (e *DuplicateStateError) validationError() {}

// InvalidInitialStateError occurs when the initial state isn't a
// declared state.
type InvalidInitialStateError struct {
	State State
}

func (e *InvalidInitialStateError) Error() string {
	return `initial state "` + string(e.State) + `" is not in the list of states`
}

func (e *InvalidInitialStateError) validationError() {}

// InvalidAcceptingStateError occurs when one or more accepting states
// aren't declared states.  States lists every offender.
type InvalidAcceptingStateError struct {
	States []State
}

func (e *InvalidAcceptingStateError) Error() string {
	return "accepting states " + quoteStates(e.States) + " are not in the set of states"
}

func (e *InvalidAcceptingStateError) validationError() {}

// IncompleteTransitionError occurs when a state's transitions do not
// cover exactly the alphabet.
//
// Missing are symbols of the alphabet without a transition.  Extra
// are transition symbols that aren't in the alphabet.
type IncompleteTransitionError struct {
	State   State
	Missing []Symbol
	Extra   []Symbol
}

func (e *IncompleteTransitionError) Error() string {
	msg := `state "` + string(e.State) + `" does not handle exactly the alphabet`
	if 0 < len(e.Missing) {
		msg += ": missing " + quoteSymbols(e.Missing)
	}
	if 0 < len(e.Extra) {
		msg += ": extra " + quoteSymbols(e.Extra)
	}
	return msg
}

func (e *IncompleteTransitionError) validationError() {}

// UnknownTargetStateError occurs when a transition goes to a state
// that isn't declared.
type UnknownTargetStateError struct {
	State  State
	Symbol Symbol
	Target State
}

func (e *UnknownTargetStateError) Error() string {
	return fmt.Sprintf(`transition from "%s" on "%s" goes to unknown state "%s"`,
		e.State, e.Symbol, e.Target)
}

func (e *UnknownTargetStateError) validationError() {}

// UndefinedTransitionError occurs when there is no transition for the
// given state and symbol.  Given a validated DFA, that only happens
// when the symbol isn't in the alphabet (or the state is bogus).
//
// Position is the offset (in symbols) into the input, or -1 if the
// error came from a direct call to Delta.
type UndefinedTransitionError struct {
	State    State
	Symbol   Symbol
	Position int
}

func (e *UndefinedTransitionError) Error() string {
	return fmt.Sprintf(`either the state does not exist, or the symbol `+
		`is not in the alphabet: state = "%s", symbol = "%s"`, e.State, e.Symbol)
}

func (e *UndefinedTransitionError) evaluationError() {}

func quoteStates(ss []State) string {
	acc := make([]string, len(ss))
	for i, s := range ss {
		acc[i] = `"` + string(s) + `"`
	}
	return "[" + strings.Join(acc, ", ") + "]"
}

func quoteSymbols(as []Symbol) string {
	acc := make([]string, len(as))
	for i, a := range as {
		acc[i] = `"` + string(a) + `"`
	}
	return "[" + strings.Join(acc, ", ") + "]"
}
