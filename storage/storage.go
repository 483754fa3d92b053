// Package storage is the persistence interface for a library of DFA
// descriptions.
package storage

import (
	"context"

	"github.com/Comcast/dfareader/core"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNotFound is returned (possibly wrapped) by Get and Remove
	// when there is no description with the given name.
	ErrNotFound = errors.New("not found")

	// ErrNoName is returned by Put for a description without a
	// Name.
	ErrNoName = errors.New("description has no name")
)

// Storage persists Descriptions keyed by their names.
type Storage interface {
	// Put validates the Description and then stores it, replacing
	// any Description with the same name.  A validation error is
	// returned unwrapped.
	Put(ctx context.Context, desc *core.Description) error

	Get(ctx context.Context, name string) (*core.Description, error)

	// List returns the stored names in lexical order.
	List(ctx context.Context) ([]string, error)

	Remove(ctx context.Context, name string) error
}

// Check does what Put must do before it stores anything.
func Check(desc *core.Description) error {
	if desc == nil || desc.Name == "" {
		return ErrNoName
	}
	_, err := core.Validate(desc)
	return err
}

// NotFound makes an error that satisfies errors.Is(err, ErrNotFound).
func NotFound(name string) error {
	return errors.Wrapf(ErrNotFound, "DFA %q", name)
}
