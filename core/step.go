package core

import (
	"fmt"
	"strings"
)

// Evaluation is the result of running a DFA over an input.
//
// Path starts with the initial state and has one more state for each
// consumed symbol, so len(Path) is the number of symbols plus one.
// The last state in the Path decides Accepted.
type Evaluation struct {
	Input    string  `json:"input"`
	Accepted bool    `json:"accepted"`
	Path     []State `json:"path"`
}

// Final returns the last state of the Path.
func (e *Evaluation) Final() State {
	return e.Path[len(e.Path)-1]
}

// String renders the Path like "->q0->q1->q2".
func (e *Evaluation) String() string {
	var b strings.Builder
	for _, s := range e.Path {
		b.WriteString("->" + string(s))
	}
	return b.String()
}

// delta is the transition function on state and symbol numbers.
//
// Validate guarantees that every (state, symbol) pair in range has a
// target, so an out-of-range argument is a bug in this package.
func (d *DFA) delta(i, j int) int {
	if i < 0 || len(d.states) <= i || j < 0 || len(d.sigma) <= j {
		panic(fmt.Sprintf("dfa: delta(%d,%d) out of range (%d states, %d symbols)",
			i, j, len(d.states), len(d.sigma)))
	}
	return d.table[i*len(d.sigma)+j]
}

// Delta returns the state reached from the given state on the given
// symbol.
//
// If the state isn't declared or the symbol isn't in the alphabet,
// returns an UndefinedTransitionError.
func (d *DFA) Delta(s State, a Symbol) (State, error) {
	i, have := d.stateIndex[s]
	if !have {
		return "", &UndefinedTransitionError{State: s, Symbol: a, Position: -1}
	}
	j, have := d.symbolIndex[a]
	if !have {
		return "", &UndefinedTransitionError{State: s, Symbol: a, Position: -1}
	}
	return d.states[d.delta(i, j)], nil
}

// Evaluate runs the DFA over the given input, one rune at a time.
//
// The walk is a plain left fold: no backtracking and no lookahead.  If
// a rune isn't in the alphabet, Evaluate stops and returns an
// UndefinedTransitionError.  In that case there is no Evaluation at
// all since partial membership doesn't mean anything.
func (d *DFA) Evaluate(input string) (*Evaluation, error) {
	var (
		at   = d.initial
		path = make([]State, 1, len(input)+1)
		pos  = 0
	)
	path[0] = d.states[at]

	for _, r := range input {
		a := Symbol(r)
		j, have := d.symbolIndex[a]
		if !have {
			return nil, &UndefinedTransitionError{
				State:    d.states[at],
				Symbol:   a,
				Position: pos,
			}
		}
		at = d.delta(at, j)
		path = append(path, d.states[at])
		pos++
	}

	return &Evaluation{
		Input:    input,
		Accepted: d.accepting[at],
		Path:     path,
	}, nil
}

// EvaluateSymbols is Evaluate for input that has already been split
// into symbols.
func (d *DFA) EvaluateSymbols(input []Symbol) (*Evaluation, error) {
	var (
		at   = d.initial
		path = make([]State, 1, len(input)+1)
		text strings.Builder
	)
	path[0] = d.states[at]

	for pos, a := range input {
		j, have := d.symbolIndex[a]
		if !have {
			return nil, &UndefinedTransitionError{
				State:    d.states[at],
				Symbol:   a,
				Position: pos,
			}
		}
		at = d.delta(at, j)
		path = append(path, d.states[at])
		text.WriteString(string(a))
	}

	return &Evaluation{
		Input:    text.String(),
		Accepted: d.accepting[at],
		Path:     path,
	}, nil
}

// Recognizes is Evaluate without the Path.
func (d *DFA) Recognizes(input string) (bool, error) {
	at := d.initial
	pos := 0
	for _, r := range input {
		j, have := d.symbolIndex[Symbol(r)]
		if !have {
			return false, &UndefinedTransitionError{
				State:    d.states[at],
				Symbol:   Symbol(r),
				Position: pos,
			}
		}
		at = d.delta(at, j)
		pos++
	}
	return d.accepting[at], nil
}
