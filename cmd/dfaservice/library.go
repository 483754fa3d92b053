package main

import (
	"context"
	"sync"

	"github.com/Comcast/dfareader/core"
	"github.com/Comcast/dfareader/storage"
	"github.com/Comcast/dfareader/tools"
	"github.com/Comcast/dfareader/util"
)

// Library is a Storage with a cache of validated DFAs.
//
// A DFA is validated once when it's first needed.  A Put or Remove
// drops the cached DFA.
type Library struct {
	sync.RWMutex

	store storage.Storage
	dfas  map[string]*core.DFA
}

func NewLibrary(store storage.Storage) *Library {
	return &Library{
		store: store,
		dfas:  make(map[string]*core.DFA),
	}
}

// DFA returns the named DFA.
func (l *Library) DFA(ctx context.Context, name string) (*core.DFA, error) {
	l.RLock()
	d, have := l.dfas[name]
	l.RUnlock()
	if have {
		return d, nil
	}

	l.Lock()
	defer l.Unlock()

	if d, have = l.dfas[name]; have {
		return d, nil
	}

	desc, err := l.store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if d, err = core.Validate(desc); err != nil {
		return nil, err
	}
	util.Logf("Library cached %s", name)
	l.dfas[name] = d
	return d, nil
}

func (l *Library) Description(ctx context.Context, name string) (*core.Description, error) {
	return l.store.Get(ctx, name)
}

func (l *Library) Put(ctx context.Context, desc *core.Description) error {
	l.Lock()
	defer l.Unlock()
	if err := l.store.Put(ctx, desc); err != nil {
		return err
	}
	delete(l.dfas, desc.Name)
	return nil
}

func (l *Library) Remove(ctx context.Context, name string) error {
	l.Lock()
	defer l.Unlock()
	delete(l.dfas, name)
	return l.store.Remove(ctx, name)
}

func (l *Library) List(ctx context.Context) ([]string, error) {
	return l.store.List(ctx)
}

// Cached reports the number of cached DFAs.
func (l *Library) Cached() int {
	l.RLock()
	defer l.RUnlock()
	return len(l.dfas)
}

// Evaluate runs the named DFA over each input.
func (l *Library) Evaluate(ctx context.Context, name string, inputs []string) ([]*tools.Result, error) {
	d, err := l.DFA(ctx, name)
	if err != nil {
		return nil, err
	}
	return tools.EvaluateAll(d, inputs), nil
}
