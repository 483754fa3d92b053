/* Copyright 2018 Comcast Cable Communications Management, LLC
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

package tools

import (
	"github.com/Comcast/dfareader/core"
)

// Analysis reports some structural facts about a DFA.
//
// State lists are in declaration order.
type Analysis struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	StateCount  int    `json:"stateCount" yaml:"stateCount"`
	SymbolCount int    `json:"symbolCount" yaml:"symbolCount"`

	// Transitions is StateCount * SymbolCount, since a DFA's
	// transition function is total.
	Transitions int `json:"transitions" yaml:"transitions"`

	// SelfLoops counts transitions from a state to itself.
	SelfLoops int `json:"selfLoops" yaml:"selfLoops"`

	// Unreachable states can't be reached from the initial state.
	Unreachable []core.State `json:"unreachable,omitempty" yaml:"unreachable,omitempty"`

	// Dead states can't reach an accepting state.
	Dead []core.State `json:"dead,omitempty" yaml:"dead,omitempty"`

	// Sinks are states whose transitions all go back to the state.
	Sinks []core.State `json:"sinks,omitempty" yaml:"sinks,omitempty"`

	// EmptyLanguage is true when no reachable state is accepting.
	EmptyLanguage bool `json:"emptyLanguage" yaml:"emptyLanguage"`

	// AcceptsEmptyString is true when the initial state is
	// accepting.
	AcceptsEmptyString bool `json:"acceptsEmptyString" yaml:"acceptsEmptyString"`
}

// Analyze computes an Analysis.
func Analyze(d *core.DFA) *Analysis {
	var (
		states = d.States()
		sigma  = d.Alphabet()
		edges  = d.Transitions()

		forward  = make(map[core.State][]core.State, len(states))
		backward = make(map[core.State][]core.State, len(states))
		loops    = make(map[core.State]int, len(states))
	)

	a := &Analysis{
		Name:               d.Name(),
		StateCount:         len(states),
		SymbolCount:        len(sigma),
		Transitions:        len(edges),
		AcceptsEmptyString: d.Accepts(d.InitialState()),
	}

	for _, e := range edges {
		forward[e.From] = append(forward[e.From], e.To)
		backward[e.To] = append(backward[e.To], e.From)
		if e.From == e.To {
			a.SelfLoops++
			loops[e.From]++
		}
	}

	reachable := closure([]core.State{d.InitialState()}, forward)
	live := closure(d.AcceptingStates(), backward)

	a.EmptyLanguage = true
	for _, s := range states {
		if !reachable[s] {
			a.Unreachable = append(a.Unreachable, s)
		}
		if !live[s] {
			a.Dead = append(a.Dead, s)
		}
		if 0 < len(sigma) && loops[s] == len(sigma) {
			a.Sinks = append(a.Sinks, s)
		}
		if reachable[s] && d.Accepts(s) {
			a.EmptyLanguage = false
		}
	}

	return a
}

// closure returns the states reachable from the given states by
// following the given edges.
func closure(from []core.State, edges map[core.State][]core.State) map[core.State]bool {
	seen := make(map[core.State]bool, len(edges))
	queue := make([]core.State, 0, len(edges))
	for _, s := range from {
		if !seen[s] {
			seen[s] = true
			queue = append(queue, s)
		}
	}
	for 0 < len(queue) {
		s := queue[0]
		queue = queue[1:]
		for _, t := range edges[s] {
			if !seen[t] {
				seen[t] = true
				queue = append(queue, t)
			}
		}
	}
	return seen
}
