/* Copyright 2018-2019 Comcast Cable Communications Management, LLC
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

// Package core provides deterministic finite automata: a model, a
// validator, and an evaluator.
//
// The primary type is DFA, and the primary method is Evaluate.  A DFA
// is made from a Description, which is the raw form that comes from a
// JSON or YAML document.  Validate checks that a Description really
// is a DFA: the initial and accepting states are declared, every
// state has a transition for every symbol in the alphabet (and no
// others), and every transition goes to a declared state.
//
// A validated DFA is immutable.  Its transition function is a dense
// table, so Delta is total on the declared states and alphabet.  The
// only way to get an error at evaluation time is to give a symbol that
// isn't in the alphabet.  Then Evaluate returns an
// UndefinedTransitionError and no Evaluation.
//
// Errors are typed.  Validate returns ValidationErrors, and Delta and
// Evaluate return EvaluationErrors.  Use errors.As to get the details.
//
// To use this package, ParseDescription (or build a Description
// directly). Then Validate it.  Then Evaluate as many strings as you
// like, from as many goroutines as you like.
package core
