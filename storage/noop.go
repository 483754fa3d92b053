package storage

import (
	"context"

	"github.com/Comcast/dfareader/core"
)

// NoopStorage checks what it's given and then forgets it.
type NoopStorage struct {
}

func (s *NoopStorage) Put(ctx context.Context, desc *core.Description) error {
	return Check(desc)
}

func (s *NoopStorage) Get(ctx context.Context, name string) (*core.Description, error) {
	return nil, NotFound(name)
}

func (s *NoopStorage) List(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (s *NoopStorage) Remove(ctx context.Context, name string) error {
	return NotFound(name)
}
