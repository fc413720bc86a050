package plugin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Masterminds/semver/v3"
)

// Registry stores plugins by name. It is populated once during the
// discovery phase and read-only afterwards; the lock exists for callers
// that discover concurrently.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin by its Name(). Duplicate names return an error
// without mutating the registry. A non-empty version must parse as
// semver.
func (r *Registry) Register(p Plugin) error {
	if p == nil {
		return fmt.Errorf("plugin: plugin is required")
	}
	name := p.Name()
	if name == "" {
		return fmt.Errorf("plugin: plugin name is required")
	}
	if version := p.Version(); version != "" {
		if _, err := semver.NewVersion(version); err != nil {
			return fmt.Errorf("plugin: %q version %q: %w", name, version, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[name]; exists {
		return &DuplicateError{Name: name}
	}

	r.plugins[name] = p
	return nil
}

// MustRegister panics on registration failure. Useful for init-time
// wiring of built-ins.
func (r *Registry) MustRegister(p Plugin) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Get retrieves a plugin by name.
func (r *Registry) Get(name string) (Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plugins[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return p, nil
}

// Has reports whether a plugin is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.plugins[name]
	return ok
}

// List returns a sorted list of registered plugin names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered plugins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.plugins)
}
