// Package modcache implements the module loader & cache collaborator: a
// process-wide, serialized cache of already-resolved modules, keyed by
// canonical module name.
package modcache

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/yuvrajsinghgmx/lfortran/internal/asr"
	"github.com/yuvrajsinghgmx/lfortran/internal/diag"
	"github.com/yuvrajsinghgmx/lfortran/internal/source"
)

// Loader resolves a module by name into its ASR, the one external
// collaborator this package depends on. The Resolver implements this by
// running itself recursively over the named module's syntactic tree.
type Loader interface {
	LoadModule(name string) (*asr.Module, error)
}

type entryState int

const (
	stateLoading entryState = iota
	stateLoaded
)

type entry struct {
	state  entryState
	module *asr.Module
	err    error
}

// Cache serializes concurrent loads of the same module name — a second
// request for the same module while the first is in flight is answered
// from an in-process cache — and detects a load re-entering its own
// still-in-flight name as a cyclic import rather than deadlocking.
type Cache struct {
	group singleflight.Group

	mu      sync.Mutex
	entries map[string]*entry
	loading map[string]bool // names whose load has not yet returned, for cycle detection
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		loading: make(map[string]bool),
	}
}

// Load returns the named module's ASR, loading it via loader on first
// request and serving every subsequent request — concurrent or not — from
// the cache. loc is attributed to the CyclicImport diagnostic if name is
// already in flight on the calling goroutine's own load chain.
func (c *Cache) Load(name string, loc source.Location, loader Loader) (*asr.Module, error) {
	key := asr.CanonicalName(name)

	c.mu.Lock()
	if e, ok := c.entries[key]; ok && e.state == stateLoaded {
		c.mu.Unlock()
		return e.module, e.err
	}
	if c.loading[key] {
		c.mu.Unlock()
		return nil, diag.NewSemanticAbort(diag.New(
			diag.CyclicImport, loc,
			fmt.Sprintf("module %q is imported while it is still being loaded (cyclic use chain)", name),
		))
	}
	c.loading[key] = true
	c.mu.Unlock()

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		mod, loadErr := loader.LoadModule(name)
		c.mu.Lock()
		c.entries[key] = &entry{state: stateLoaded, module: mod, err: loadErr}
		delete(c.loading, key)
		c.mu.Unlock()
		return mod, loadErr
	})

	c.mu.Lock()
	delete(c.loading, key)
	c.mu.Unlock()

	if v == nil {
		return nil, err
	}
	return v.(*asr.Module), err
}

// Get returns a previously-loaded module without triggering a load, for
// tests and diagnostics that need to inspect the cache's current contents.
func (c *Cache) Get(name string) (*asr.Module, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[asr.CanonicalName(name)]
	if !ok || e.state != stateLoaded {
		return nil, false
	}
	return e.module, e.err == nil
}

// Reset clears the cache, for tests that start a fresh compilation.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
	c.loading = make(map[string]bool)
}
