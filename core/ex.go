package core

// SubstringABDescription makes an example Description that's useful to
// have around: a DFA over {a, b} that accepts strings containing "ab".
func SubstringABDescription() *Description {
	q0 := State("q0")
	return &Description{
		Name:            "substring-ab",
		Doc:             `Accepts strings over *a* and *b* that contain the substring "ab".`,
		Sigma:           []Symbol{"a", "b"},
		InitialState:    &q0,
		AcceptingStates: []State{"q2"},
		States: NewStateTable().
			Add("q0", map[Symbol]State{"a": "q1", "b": "q0"}).
			Add("q1", map[Symbol]State{"a": "q1", "b": "q2"}).
			Add("q2", map[Symbol]State{"a": "q2", "b": "q2"}),
	}
}

// SubstringABDFA validates SubstringABDescription.
func SubstringABDFA() (*DFA, error) {
	return Validate(SubstringABDescription())
}

// ParityDescription makes another example: a DFA over {0, 1} that
// accepts strings with an even number of 1s.
func ParityDescription() *Description {
	even := State("even")
	return &Description{
		Name:            "even-ones",
		Sigma:           []Symbol{"0", "1"},
		InitialState:    &even,
		AcceptingStates: []State{"even"},
		States: NewStateTable().
			Add("even", map[Symbol]State{"0": "even", "1": "odd"}).
			Add("odd", map[Symbol]State{"0": "odd", "1": "even"}),
	}
}
