package core

import (
	"errors"
	"reflect"
	"testing"
)

func stateRef(s State) *State {
	return &s
}

func TestValidateGood(t *testing.T) {
	d, err := SubstringABDFA()
	if err != nil {
		t.Fatal(err)
	}

	if got := d.InitialState(); got != "q0" {
		t.Fatalf("initial %q", got)
	}
	if got := d.States(); !reflect.DeepEqual(got, []State{"q0", "q1", "q2"}) {
		t.Fatalf("states %v", got)
	}
	if got := d.Alphabet(); !reflect.DeepEqual(got, []Symbol{"a", "b"}) {
		t.Fatalf("alphabet %v", got)
	}
	if !d.Accepts("q2") || d.Accepts("q1") || d.Accepts("nope") {
		t.Fatal("accepting set")
	}
	if d.Name() != "substring-ab" {
		t.Fatalf("name %q", d.Name())
	}
}

func TestValidateEmptyAccepting(t *testing.T) {
	desc := SubstringABDescription()
	desc.AcceptingStates = []State{}

	d, err := Validate(desc)
	if err != nil {
		t.Fatal(err)
	}

	for _, input := range []string{"", "a", "ab", "abba"} {
		e, err := d.Evaluate(input)
		if err != nil {
			t.Fatal(err)
		}
		if e.Accepted {
			t.Fatalf("%q accepted by a DFA that accepts nothing", input)
		}
	}
}

func TestValidateDoesNotAlias(t *testing.T) {
	desc := SubstringABDescription()
	d, err := Validate(desc)
	if err != nil {
		t.Fatal(err)
	}

	desc.Sigma[0] = "x"
	desc.AcceptingStates[0] = "q0"
	desc.States.Rows[0].Transitions["a"] = "q2"

	e, err := d.Evaluate("ab")
	if err != nil {
		t.Fatal(err)
	}
	if !e.Accepted || !reflect.DeepEqual(e.Path, []State{"q0", "q1", "q2"}) {
		t.Fatalf("DFA changed with its Description: %v", e)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		description string
		mod         func(*Description) *Description
		expectedErr error
	}{
		{
			description: "nil description",
			mod:         func(*Description) *Description { return nil },
			expectedErr: &MissingFieldError{"Sigma"},
		},
		{
			description: "missing alphabet",
			mod: func(d *Description) *Description {
				d.Sigma = nil
				return d
			},
			expectedErr: &MissingFieldError{"Sigma"},
		},
		{
			description: "missing initial state",
			mod: func(d *Description) *Description {
				d.InitialState = nil
				return d
			},
			expectedErr: &MissingFieldError{"InitialState"},
		},
		{
			description: "missing accepting states",
			mod: func(d *Description) *Description {
				d.AcceptingStates = nil
				return d
			},
			expectedErr: &MissingFieldError{"AcceptingStates"},
		},
		{
			description: "missing states",
			mod: func(d *Description) *Description {
				d.States = nil
				return d
			},
			expectedErr: &MissingFieldError{"States"},
		},
		{
			description: "duplicate symbol",
			mod: func(d *Description) *Description {
				d.Sigma = []Symbol{"a", "b", "a"}
				return d
			},
			expectedErr: &DuplicateSymbolError{"a"},
		},
		{
			description: "duplicate state",
			mod: func(d *Description) *Description {
				d.States.Add("q1", map[Symbol]State{"a": "q0", "b": "q0"})
				return d
			},
			expectedErr: &DuplicateStateError{"q1"},
		},
		{
			description: "bad initial state",
			mod: func(d *Description) *Description {
				d.InitialState = stateRef("q9")
				return d
			},
			expectedErr: &InvalidInitialStateError{"q9"},
		},
		{
			description: "bad accepting states",
			mod: func(d *Description) *Description {
				d.AcceptingStates = []State{"q7", "q2", "q8"}
				return d
			},
			expectedErr: &InvalidAcceptingStateError{[]State{"q7", "q8"}},
		},
		{
			description: "missing transition",
			mod: func(d *Description) *Description {
				delete(d.States.Rows[1].Transitions, "b")
				return d
			},
			expectedErr: &IncompleteTransitionError{
				State:   "q1",
				Missing: []Symbol{"b"},
			},
		},
		{
			description: "extra transition",
			mod: func(d *Description) *Description {
				d.States.Rows[2].Transitions["c"] = "q0"
				return d
			},
			expectedErr: &IncompleteTransitionError{
				State: "q2",
				Extra: []Symbol{"c"},
			},
		},
		{
			description: "missing and extra transitions",
			mod: func(d *Description) *Description {
				d.States.Rows[0].Transitions = map[Symbol]State{"a": "q1", "z": "q0", "y": "q0"}
				return d
			},
			expectedErr: &IncompleteTransitionError{
				State:   "q0",
				Missing: []Symbol{"b"},
				Extra:   []Symbol{"y", "z"},
			},
		},
		{
			description: "nil transitions",
			mod: func(d *Description) *Description {
				d.States.Rows[0].Transitions = nil
				return d
			},
			expectedErr: &IncompleteTransitionError{
				State:   "q0",
				Missing: []Symbol{"a", "b"},
			},
		},
		{
			description: "unknown target",
			mod: func(d *Description) *Description {
				d.States.Rows[1].Transitions["a"] = "q5"
				return d
			},
			expectedErr: &UnknownTargetStateError{
				State:  "q1",
				Symbol: "a",
				Target: "q5",
			},
		},
		{
			description: "incomplete transitions reported before unknown targets",
			mod: func(d *Description) *Description {
				d.States.Rows[0].Transitions["a"] = "q5"
				delete(d.States.Rows[2].Transitions, "a")
				return d
			},
			expectedErr: &IncompleteTransitionError{
				State:   "q2",
				Missing: []Symbol{"a"},
			},
		},
		{
			description: "initial state checked before accepting states",
			mod: func(d *Description) *Description {
				d.InitialState = stateRef("nope")
				d.AcceptingStates = []State{"nope"}
				return d
			},
			expectedErr: &InvalidInitialStateError{"nope"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			d, err := Validate(tc.mod(SubstringABDescription()))
			if err == nil {
				t.Fatalf("expected %v but got a DFA", tc.expectedErr)
			}
			if d != nil {
				t.Fatal("got a DFA and an error")
			}
			if !reflect.DeepEqual(err, tc.expectedErr) {
				t.Fatalf("expected %#v but got %#v", tc.expectedErr, err)
			}
			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("%T isn't a ValidationError", err)
			}
			var ee EvaluationError
			if errors.As(err, &ee) {
				t.Fatalf("%T is an EvaluationError", err)
			}
		})
	}
}

func TestValidateDeterministicErrors(t *testing.T) {
	desc := SubstringABDescription()
	desc.States.Rows[1].Transitions["b"] = "qq"

	_, err1 := Validate(desc)
	_, err2 := Validate(desc)
	if err1 == nil || !reflect.DeepEqual(err1, err2) {
		t.Fatalf("%v != %v", err1, err2)
	}
}
