package datasource

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound is returned when no connection is registered under a name.
var ErrNotFound = errors.New("data connection not found")

// Registry holds named data connections.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]Connection
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[string]Connection),
	}
}

// Register adds a connection. Names are unique.
func (r *Registry) Register(c Connection) error {
	if c.Name == "" {
		return fmt.Errorf("data connection name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.conns[c.Name]; exists {
		return fmt.Errorf("data connection already registered: %s", c.Name)
	}
	r.conns[c.Name] = c
	return nil
}

// Get returns the connection registered under name.
func (r *Registry) Get(name string) (Connection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.conns[name]
	if !ok {
		return Connection{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return c, nil
}

// List returns all registered names (sorted).
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.conns))
	for name := range r.conns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has checks if a connection is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.conns[name]
	return ok
}

// Count returns the number of registered connections.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}

// Unregister removes a connection from the registry.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conns[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(r.conns, name)
	return nil
}
