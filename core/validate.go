package core

// Validate checks that the Description is a well-formed DFA and
// returns that DFA.
//
// The checks happen in this order, and the first failure is returned:
//
//  1. Sigma, InitialState, AcceptingStates, and States are present
//     (MissingFieldError).  Then no symbol or state is declared twice
//     (DuplicateSymbolError, DuplicateStateError).
//  2. The initial state is declared (InvalidInitialStateError).
//  3. Every accepting state is declared (InvalidAcceptingStateError).
//     An empty accepting set is fine: that DFA accepts nothing.
//  4. Every state has transitions for exactly the alphabet
//     (IncompleteTransitionError).
//  5. Every transition target is declared (UnknownTargetStateError).
//
// States are checked in declaration order and symbols in alphabet
// order.  Nothing is normalized: a state or symbol is exactly the
// given token.
//
// The Description is not retained.
func Validate(desc *Description) (*DFA, error) {

	if desc == nil {
		return nil, &MissingFieldError{"Sigma"}
	}

	// Check 1: required fields.
	switch {
	case desc.Sigma == nil:
		return nil, &MissingFieldError{"Sigma"}
	case desc.InitialState == nil:
		return nil, &MissingFieldError{"InitialState"}
	case desc.AcceptingStates == nil:
		return nil, &MissingFieldError{"AcceptingStates"}
	case desc.States == nil:
		return nil, &MissingFieldError{"States"}
	}

	symbolIndex := make(map[Symbol]int, len(desc.Sigma))
	for j, a := range desc.Sigma {
		if _, have := symbolIndex[a]; have {
			return nil, &DuplicateSymbolError{a}
		}
		symbolIndex[a] = j
	}

	rows := desc.States.Rows
	stateIndex := make(map[State]int, len(rows))
	for i, r := range rows {
		if _, have := stateIndex[r.State]; have {
			return nil, &DuplicateStateError{r.State}
		}
		stateIndex[r.State] = i
	}

	// Check 2: initial state.
	initial, have := stateIndex[*desc.InitialState]
	if !have {
		return nil, &InvalidInitialStateError{*desc.InitialState}
	}

	// Check 3: accepting states.
	accepting := make([]bool, len(rows))
	if 0 < len(desc.AcceptingStates) {
		var bad []State
		for _, s := range desc.AcceptingStates {
			i, have := stateIndex[s]
			if !have {
				bad = append(bad, s)
				continue
			}
			accepting[i] = true
		}
		if bad != nil {
			return nil, &InvalidAcceptingStateError{bad}
		}
	}

	// Check 4: each state handles exactly the alphabet.
	for _, r := range rows {
		var missing, extra []Symbol
		for _, a := range desc.Sigma {
			if _, have := r.Transitions[a]; !have {
				missing = append(missing, a)
			}
		}
		for a := range r.Transitions {
			if _, have := symbolIndex[a]; !have {
				extra = append(extra, a)
			}
		}
		if missing != nil || extra != nil {
			sortSymbols(extra)
			return nil, &IncompleteTransitionError{
				State:   r.State,
				Missing: missing,
				Extra:   extra,
			}
		}
	}

	// Check 5: targets are declared.  Fill in the matrix as we go.
	width := len(desc.Sigma)
	table := make([]int, len(rows)*width)
	for i, r := range rows {
		for j, a := range desc.Sigma {
			target := r.Transitions[a]
			k, have := stateIndex[target]
			if !have {
				return nil, &UnknownTargetStateError{
					State:  r.State,
					Symbol: a,
					Target: target,
				}
			}
			table[i*width+j] = k
		}
	}

	states := make([]State, len(rows))
	for i, r := range rows {
		states[i] = r.State
	}

	return &DFA{
		name:           desc.Name,
		doc:            desc.Doc,
		sigma:          append(make([]Symbol, 0, width), desc.Sigma...),
		states:         states,
		symbolIndex:    symbolIndex,
		stateIndex:     stateIndex,
		table:          table,
		initial:        initial,
		accepting:      accepting,
		acceptingOrder: append(make([]State, 0, len(desc.AcceptingStates)), desc.AcceptingStates...),
	}, nil
}
