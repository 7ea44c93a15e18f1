package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/dotctl/pkg/errors"
)

// Registry stores items by name and resolves aliases to names
type Registry[T any] interface {
	// Register adds an item under name
	Register(name string, item T) error

	// Alias makes alias resolve to an already registered name
	Alias(alias, name string) error

	// Get retrieves an item by name or alias
	Get(name string) (T, error)

	// Resolve returns the registered name that name or alias refers to
	Resolve(name string) (string, bool)

	// Remove removes an item and its aliases
	Remove(name string) error

	// List returns all registered names, sorted. Aliases are not included.
	List() []string

	// Aliases returns the aliases of a registered name, sorted
	Aliases(name string) []string

	// Has checks if a name or alias is registered
	Has(name string) bool

	// Count returns the number of registered items
	Count() int
}

type registry[T any] struct {
	mu      sync.RWMutex
	items   map[string]T
	aliases map[string]string
}

// New creates a new Registry instance
func New[T any]() Registry[T] {
	return &registry[T]{
		items:   make(map[string]T),
		aliases: make(map[string]string),
	}
}

func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}
	if target, exists := r.aliases[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "'%s' is already an alias of '%s'", name, target)
	}

	r.items[name] = item
	return nil
}

func (r *registry[T]) Alias(alias, name string) error {
	if alias == "" {
		return errors.New(errors.ErrInvalidInput, "alias cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; !exists {
		return errors.Newf(errors.ErrNotFound, "cannot alias '%s' to unknown item '%s'", alias, name)
	}
	if _, exists := r.items[alias]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "alias '%s' collides with a registered item", alias)
	}
	if target, exists := r.aliases[alias]; exists && target != name {
		return errors.Newf(errors.ErrAlreadyExists, "alias '%s' already refers to '%s'", alias, target)
	}

	r.aliases[alias] = name
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if target, ok := r.aliases[name]; ok {
		name = target
	}
	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}
	return item, nil
}

func (r *registry[T]) Resolve(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if target, ok := r.aliases[name]; ok {
		return target, true
	}
	_, exists := r.items[name]
	return name, exists
}

func (r *registry[T]) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; !exists {
		return errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}
	delete(r.items, name)
	for alias, target := range r.aliases {
		if target == name {
			delete(r.aliases, alias)
		}
	}
	return nil
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *registry[T]) Aliases(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for alias, target := range r.aliases {
		if target == name {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

func (r *registry[T]) Has(name string) bool {
	_, ok := r.Resolve(name)
	return ok
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// MustRegister registers an item and panics if registration fails.
// Use it for built-in items where a failure is a programming error.
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}
