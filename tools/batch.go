package tools

import (
	"errors"

	"github.com/Comcast/dfareader/core"
	"github.com/Comcast/dfareader/util"
)

// Result is the outcome of evaluating one input.
//
// If the evaluation failed, Err (and Error and ErrorKind) say why, and
// Accepted and Path are zero.
type Result struct {
	Input     string       `json:"input" yaml:"input"`
	Accepted  bool         `json:"accepted" yaml:"accepted"`
	Path      []core.State `json:"path,omitempty" yaml:"path,omitempty"`
	Error     string       `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind string       `json:"errorKind,omitempty" yaml:"errorKind,omitempty"`

	Err error `json:"-" yaml:"-"`
}

// Failed reports whether the evaluation failed.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// Evaluate evaluates one input and packages the outcome as a Result.
func Evaluate(d *core.DFA, input string) *Result {
	e, err := d.Evaluate(input)
	if err != nil {
		util.Logf("evaluation of %q failed: %v", input, err)
		return &Result{
			Input:     input,
			Error:     err.Error(),
			ErrorKind: ErrorKind(err),
			Err:       err,
		}
	}
	return &Result{
		Input:    input,
		Accepted: e.Accepted,
		Path:     e.Path,
	}
}

// EvaluateAll evaluates each input.  An input that fails doesn't stop
// the others.
func EvaluateAll(d *core.DFA, inputs []string) []*Result {
	acc := make([]*Result, len(inputs))
	for i, input := range inputs {
		acc[i] = Evaluate(d, input)
	}
	return acc
}

// Failures counts the failed Results.
func Failures(rs []*Result) int {
	n := 0
	for _, r := range rs {
		if r.Failed() {
			n++
		}
	}
	return n
}

// ErrorKind names the kind of a core error.  Errors that didn't come
// from package core are "other".
func ErrorKind(err error) string {
	var (
		missing    *core.MissingFieldError
		dupSymbol  *core.DuplicateSymbolError
		dupState   *core.DuplicateStateError
		initial    *core.InvalidInitialStateError
		accepting  *core.InvalidAcceptingStateError
		incomplete *core.IncompleteTransitionError
		unknown    *core.UnknownTargetStateError
		undefined  *core.UndefinedTransitionError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &missing):
		return "MissingField"
	case errors.As(err, &dupSymbol):
		return "DuplicateSymbol"
	case errors.As(err, &dupState):
		return "DuplicateState"
	case errors.As(err, &initial):
		return "InvalidInitialState"
	case errors.As(err, &accepting):
		return "InvalidAcceptingState"
	case errors.As(err, &incomplete):
		return "IncompleteTransition"
	case errors.As(err, &unknown):
		return "UnknownTargetState"
	case errors.As(err, &undefined):
		return "UndefinedTransition"
	default:
		return "other"
	}
}

// IsValidationError reports whether the error (or one that it wraps)
// came from core.Validate.
func IsValidationError(err error) bool {
	var ve core.ValidationError
	return errors.As(err, &ve)
}
