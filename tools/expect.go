package tools

import (
	"fmt"
	"io/ioutil"
	"reflect"

	"github.com/Comcast/dfareader/core"
	"github.com/Comcast/dfareader/util"

	"github.com/cockroachdb/errors"
	"github.com/jsccast/yaml"
)

// Case is an input and what should happen when a DFA evaluates it.
type Case struct {
	// Doc is an opaque documentation string.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`

	Input string `json:"input" yaml:"input"`

	// Accepted, if given, is the expected membership verdict.
	Accepted *bool `json:"accepted,omitempty" yaml:"accepted,omitempty"`

	// Path, if given, is the expected sequence of states.
	Path []core.State `json:"path,omitempty" yaml:"path,omitempty"`

	// Error, if given, is the expected ErrorKind.  When Error is
	// given, Accepted and Path are ignored.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Suite is a set of Cases for one DFA.
type Suite struct {
	// Doc is an opaque documentation string.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`

	// DFA is the filename of the DFA's Description.  A relative
	// name is resolved by the caller.
	DFA string `json:"dfa,omitempty" yaml:"dfa,omitempty"`

	Cases []Case `json:"cases" yaml:"cases"`

	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// Failure is a Case that didn't go as expected.
type Failure struct {
	Case   int     `json:"case" yaml:"case"`
	Input  string  `json:"input" yaml:"input"`
	Reason string  `json:"reason" yaml:"reason"`
	Result *Result `json:"result,omitempty" yaml:"result,omitempty"`
}

func (f *Failure) Error() string {
	return fmt.Sprintf("case %d (%q): %s", f.Case, f.Input, f.Reason)
}

// ReadSuite parses a Suite in YAML or JSON.
func ReadSuite(filename string) (*Suite, error) {
	bs, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading suite %s", filename)
	}
	var s Suite
	if err = yaml.Unmarshal(bs, &s); err != nil {
		return nil, errors.Wrapf(err, "parsing suite %s", filename)
	}
	return &s, nil
}

// Check runs every Case against the DFA and returns the Failures.
//
// No Failures means the DFA behaved as expected.
func (s *Suite) Check(d *core.DFA) []*Failure {
	var fs []*Failure
	for i, c := range s.Cases {
		r := Evaluate(d, c.Input)
		if s.Verbose {
			util.Logf("case %d %q accepted=%v path=%v err=%s", i, c.Input, r.Accepted, r.Path, r.Error)
		}
		if reason := c.check(r); reason != "" {
			fs = append(fs, &Failure{
				Case:   i,
				Input:  c.Input,
				Reason: reason,
				Result: r,
			})
		}
	}
	return fs
}

func (c *Case) check(r *Result) string {
	if c.Error != "" {
		if r.ErrorKind != c.Error {
			if r.Failed() {
				return fmt.Sprintf("wanted error %s but got %s", c.Error, r.ErrorKind)
			}
			return fmt.Sprintf("wanted error %s but got none", c.Error)
		}
		return ""
	}
	if r.Failed() {
		return fmt.Sprintf("unexpected error: %s", r.Error)
	}
	if c.Accepted != nil && *c.Accepted != r.Accepted {
		return fmt.Sprintf("wanted accepted=%v", *c.Accepted)
	}
	if c.Path != nil && !reflect.DeepEqual(c.Path, r.Path) {
		return fmt.Sprintf("wanted path %v but got %v", c.Path, r.Path)
	}
	return ""
}
