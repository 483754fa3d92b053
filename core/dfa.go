/* Copyright 2026 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package core

import (
	"strings"
)

// DFA is a validated deterministic finite automaton.
//
// A DFA is immutable, so it can be shared by any number of goroutines
// without locking.  The only way to get one is Validate.
//
// States and symbols are numbered in declaration order.  The
// transition function is a dense matrix indexed by those numbers:
// table[i*len(sigma)+j] is the number of the state reached from state
// i on symbol j.
type DFA struct {
	name string
	doc  string

	sigma  []Symbol
	states []State

	symbolIndex map[Symbol]int
	stateIndex  map[State]int

	table []int

	initial   int
	accepting []bool

	// acceptingOrder is the accepting states as given.
	acceptingOrder []State
}

// Name returns the optional name from the Description.
func (d *DFA) Name() string {
	return d.name
}

// Doc returns the optional documentation from the Description.
func (d *DFA) Doc() string {
	return d.doc
}

// Alphabet returns a copy of the alphabet in declaration order.
func (d *DFA) Alphabet() []Symbol {
	return append(make([]Symbol, 0, len(d.sigma)), d.sigma...)
}

// States returns a copy of the states in declaration order.
func (d *DFA) States() []State {
	return append(make([]State, 0, len(d.states)), d.states...)
}

// InitialState returns the initial state.
func (d *DFA) InitialState() State {
	return d.states[d.initial]
}

// AcceptingStates returns a copy of the accepting states as they were
// declared.
func (d *DFA) AcceptingStates() []State {
	return append(make([]State, 0, len(d.acceptingOrder)), d.acceptingOrder...)
}

// Accepts reports whether the given state is an accepting state.
func (d *DFA) Accepts(s State) bool {
	i, have := d.stateIndex[s]
	return have && d.accepting[i]
}

// HasState reports whether the given state is declared.
func (d *DFA) HasState(s State) bool {
	_, have := d.stateIndex[s]
	return have
}

// HasSymbol reports whether the given symbol is in the alphabet.
func (d *DFA) HasSymbol(a Symbol) bool {
	_, have := d.symbolIndex[a]
	return have
}

// Transition is one edge of a DFA.
type Transition struct {
	From   State  `json:"from" yaml:"from"`
	Symbol Symbol `json:"symbol" yaml:"symbol"`
	To     State  `json:"to" yaml:"to"`
}

// Transitions returns every edge of the DFA, ordered by source state
// and then by symbol (both in declaration order).
func (d *DFA) Transitions() []Transition {
	acc := make([]Transition, 0, len(d.table))
	for i, s := range d.states {
		for j, a := range d.sigma {
			acc = append(acc, Transition{
				From:   s,
				Symbol: a,
				To:     d.states[d.table[i*len(d.sigma)+j]],
			})
		}
	}
	return acc
}

// Description returns a new Description equivalent to this DFA.
func (d *DFA) Description() *Description {
	q0 := d.InitialState()
	table := NewStateTable()
	for i, s := range d.states {
		ts := make(map[Symbol]State, len(d.sigma))
		for j, a := range d.sigma {
			ts[a] = d.states[d.table[i*len(d.sigma)+j]]
		}
		table.Add(s, ts)
	}
	return &Description{
		Name:            d.name,
		Doc:             d.doc,
		Sigma:           d.Alphabet(),
		InitialState:    &q0,
		AcceptingStates: d.AcceptingStates(),
		States:          table,
	}
}

// String renders a summary of the DFA.
func (d *DFA) String() string {
	var b strings.Builder
	b.WriteString("===== DFA =====\n")
	b.WriteString("  Q             : " + quoteStates(d.states) + "\n")
	b.WriteString("  Sigma         : " + quoteSymbols(d.sigma) + "\n")
	b.WriteString("  Initial State : " + string(d.InitialState()) + "\n")
	b.WriteString("  Accepting     : " + quoteStates(d.acceptingOrder) + "\n")
	b.WriteString("  Transitions   :\n")
	for i, s := range d.states {
		b.WriteString("    " + string(s) + ":")
		for j, a := range d.sigma {
			b.WriteString(" " + string(a) + "->" + string(d.states[d.table[i*len(d.sigma)+j]]))
		}
		b.WriteString("\n")
	}
	return b.String()
}
