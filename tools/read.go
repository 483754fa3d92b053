package tools

import (
	"github.com/Comcast/dfareader/core"
	"github.com/Comcast/dfareader/util"

	"github.com/cockroachdb/errors"
)

// ReadDescription reads a Description (YAML or JSON) from a file,
// with inlining (see ReadFileWithInlines).
func ReadDescription(filename string) (*core.Description, error) {
	src, err := ReadFileWithInlines(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}
	desc, err := core.ParseDescription(src)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", filename)
	}
	util.Logf("read %s: %d states", filename, desc.States.Len())
	return desc, nil
}

// LoadDFA reads and validates a DFA.
//
// A validation error is returned as is (not wrapped) so that callers
// can switch on its type.
func LoadDFA(filename string) (*core.DFA, error) {
	desc, err := ReadDescription(filename)
	if err != nil {
		return nil, err
	}
	return core.Validate(desc)
}
