package viewer

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// LoadFunc makes a module available. It may block (fetch, decode, compile).
type LoadFunc func(ctx context.Context) (Module, error)

// Registry is a Loader backed by registered load functions.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]LoadFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{loaders: make(map[string]LoadFunc)}
}

// Register adds a module under name. Registering a name twice is an error.
func (r *Registry) Register(name string, load LoadFunc) error {
	if name == "" {
		return fmt.Errorf("register module: empty name")
	}
	if load == nil {
		return fmt.Errorf("register module %q: nil loader", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.loaders[name]; dup {
		return fmt.Errorf("register module %q: already registered", name)
	}
	r.loaders[name] = load
	return nil
}

// Names returns the registered module names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.loaders))
	for name := range r.loaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load implements Loader.
func (r *Registry) Load(ctx context.Context, name string) (Module, error) {
	r.mu.RLock()
	load, ok := r.loaders[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrModuleNotFound, name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load module %q: %w", name, err)
	}
	if m == nil {
		return nil, fmt.Errorf("load module %q: loader returned no module", name)
	}
	return m, nil
}
