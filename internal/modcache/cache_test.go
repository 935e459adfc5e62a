package modcache

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
	"github.com/yuvrajsinghgmx/lfortran/internal/source"
)

type countingLoader struct {
	calls atomic.Int32
	ready chan struct{}
}

func (l *countingLoader) LoadModule(name string) (*asr.Module, error) {
	l.calls.Add(1)
	if l.ready != nil {
		<-l.ready
	}
	return asr.NewModule(source.None, name), nil
}

func TestCache_LoadCachesByName(t *testing.T) {
	c := New()
	loader := &countingLoader{}

	first, err := c.Load("geometry", source.None, loader)
	require.NoError(t, err)

	second, err := c.Load("GEOMETRY", source.None, loader)
	require.NoError(t, err)

	assert.Same(t, first, second, "a second request for the same module must be served from the cache")
	assert.EqualValues(t, 1, loader.calls.Load())
}

func TestCache_ConcurrentLoadsAreSerialized(t *testing.T) {
	c := New()
	loader := &countingLoader{ready: make(chan struct{})}

	const n = 8
	results := make([]*asr.Module, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			mod, err := c.Load("shared", source.None, loader)
			require.NoError(t, err)
			results[i] = mod
		}(i)
	}
	close(loader.ready)
	wg.Wait()

	for i := 1; i < n; i++ {
		assert.Same(t, results[0], results[i])
	}
	assert.EqualValues(t, 1, loader.calls.Load(), "only one concurrent request should actually invoke the loader")
}

type cyclicLoader struct {
	cache *Cache
}

func (l *cyclicLoader) LoadModule(name string) (*asr.Module, error) {
	// A module whose own load reaches back into loading itself.
	return l.cache.Load(name, source.None, l)
}

func TestCache_CyclicImportDetected(t *testing.T) {
	c := New()
	loader := &cyclicLoader{cache: c}

	_, err := c.Load("selfref", source.None, loader)
	require.Error(t, err)

	var abort *diag.Abort
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, diag.CyclicImport, abort.Diagnostic.Code)
}

func TestCache_GetAndReset(t *testing.T) {
	c := New()
	loader := &countingLoader{}

	_, ok := c.Get("geometry")
	assert.False(t, ok, "Get before any Load should miss")

	_, err := c.Load("geometry", source.None, loader)
	require.NoError(t, err)

	mod, ok := c.Get("geometry")
	require.True(t, ok)
	assert.Equal(t, "geometry", mod.Name())

	c.Reset()
	_, ok = c.Get("geometry")
	assert.False(t, ok, "Reset should clear the cache")
}
