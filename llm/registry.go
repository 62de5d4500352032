package llm

import (
	"fmt"
	"sort"
)

// Factory constructs a Provider. Construction is deferred to first use so a
// registry can list providers whose credentials are absent without failing
// up front.
type Factory func() (Provider, error)

// Registry is an explicit mapping from provider name to factory. It is a
// plain value owned by whoever builds it and passed where needed; the SDK
// keeps no global provider table.
//
// Registry is not safe for concurrent mutation; populate it during setup
// and treat it as read-only afterwards.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds or replaces the factory for the given provider name.
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// Get constructs the provider registered under name. Unknown names return
// an error wrapping ErrUnknownProvider that lists the registered names.
func (r *Registry) Get(name string) (Provider, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownProvider, name, r.Names())
	}
	provider, err := factory()
	if err != nil {
		return nil, fmt.Errorf("llm: construct provider %q: %w", name, err)
	}
	return provider, nil
}

// Has reports whether a provider is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered provider names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
