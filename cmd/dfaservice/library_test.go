package main

import (
	"context"
	"sync"
	"testing"

	"github.com/Comcast/dfareader/core"
	"github.com/Comcast/dfareader/storage"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrary(t *testing.T) {
	ctx := context.Background()
	lib := NewLibrary(storage.NewMemStorage())

	_, err := lib.DFA(ctx, "substring-ab")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	require.NoError(t, lib.Put(ctx, core.SubstringABDescription()))
	assert.Equal(t, 0, lib.Cached())

	d1, err := lib.DFA(ctx, "substring-ab")
	require.NoError(t, err)
	d2, err := lib.DFA(ctx, "substring-ab")
	require.NoError(t, err)
	assert.Same(t, d1, d2)
	assert.Equal(t, 1, lib.Cached())

	rs, err := lib.Evaluate(ctx, "substring-ab", []string{"ab", "ac"})
	require.NoError(t, err)
	assert.True(t, rs[0].Accepted)
	assert.True(t, rs[1].Failed())

	bad := core.SubstringABDescription()
	bad.Sigma = []core.Symbol{"a"}
	var ite *core.IncompleteTransitionError
	require.True(t, errors.As(lib.Put(ctx, bad), &ite))

	// The failed Put didn't disturb what's there.
	d3, err := lib.DFA(ctx, "substring-ab")
	require.NoError(t, err)
	assert.Same(t, d1, d3)

	require.NoError(t, lib.Remove(ctx, "substring-ab"))
	assert.Equal(t, 0, lib.Cached())
	_, err = lib.Evaluate(ctx, "substring-ab", nil)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestLibraryConcurrent(t *testing.T) {
	ctx := context.Background()
	lib := NewLibrary(storage.NewMemStorage())
	require.NoError(t, lib.Put(ctx, core.ParityDescription()))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if g == 0 && i%10 == 0 {
					if err := lib.Put(ctx, core.ParityDescription()); err != nil {
						t.Error(err)
					}
					continue
				}
				rs, err := lib.Evaluate(ctx, "even-ones", []string{"11"})
				if err != nil {
					t.Error(err)
					return
				}
				if !rs[0].Accepted {
					t.Error("11 not accepted")
				}
			}
		}(g)
	}
	wg.Wait()
}
