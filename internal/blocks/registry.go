package blocks

import (
	"fmt"
	"sort"
	"sync"

	"github.com/porkengine/gutenberg/internal/log"
)

// Factory creates a new block instance of a registered type.
type Factory func() Block

// Registry maps block type names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a block type. Registering a name twice is an error.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("block type name must not be empty")
	}
	if factory == nil {
		return fmt.Errorf("block type %q: factory must not be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("block type %q already registered", name)
	}
	r.factories[name] = factory
	log.Debug(log.CatBlocks, "registered block type", "name", name)
	return nil
}

// New instantiates a block of the given type.
func (r *Registry) New(name string) (Block, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown block type %q", name)
	}
	return factory(), nil
}

// Types returns the registered type names, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
