package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/Comcast/dfareader/core"
)

// MemStorage keeps Descriptions in memory.
type MemStorage struct {
	sync.RWMutex
	descs map[string]*core.Description
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		descs: make(map[string]*core.Description),
	}
}

func (s *MemStorage) Put(ctx context.Context, desc *core.Description) error {
	if err := Check(desc); err != nil {
		return err
	}
	s.Lock()
	s.descs[desc.Name] = desc.Copy()
	s.Unlock()
	return nil
}

func (s *MemStorage) Get(ctx context.Context, name string) (*core.Description, error) {
	s.RLock()
	desc, have := s.descs[name]
	s.RUnlock()
	if !have {
		return nil, NotFound(name)
	}
	return desc.Copy(), nil
}

func (s *MemStorage) List(ctx context.Context) ([]string, error) {
	s.RLock()
	names := make([]string, 0, len(s.descs))
	for name := range s.descs {
		names = append(names, name)
	}
	s.RUnlock()
	sort.Strings(names)
	return names, nil
}

func (s *MemStorage) Remove(ctx context.Context, name string) error {
	s.Lock()
	defer s.Unlock()
	if _, have := s.descs[name]; !have {
		return NotFound(name)
	}
	delete(s.descs, name)
	return nil
}
