// Package dfareader loads, validates, and runs deterministic finite
// automata.
//
// The core code is in package 'core', some tooling (graphs, HTML,
// reports, expectation suites) is in 'tools', and the command-line
// programs are in `cmd`.
package dfareader
