/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/mapperconfig/definition"
	"github.com/suparena/mapperconfig/errors"
)

// Registry is the named store of component definitions populated while
// configuration is loaded.
type Registry interface {
	// Contains reports whether a definition or alias is registered under name.
	Contains(name string) bool
	// Get returns the definition registered under name or alias. A missing
	// name yields a *errors.NoSuchDefinitionError.
	Get(name string) (*definition.Definition, error)
	// Register stores def under name. A taken name yields a *errors.AlreadyRegisteredError.
	Register(name string, def *definition.Definition) error
	// RegisterAlias makes alias resolve to name. name may itself be an alias;
	// an alias that would resolve back to itself is rejected.
	RegisterAlias(name, alias string) error
	// Aliases returns the aliases pointing at name.
	Aliases(name string) []string
	// Names returns definition names in registration order.
	Names() []string
	// Count returns the number of registered definitions.
	Count() int
}

// memoryRegistry is a thread-safe implementation of the Registry interface.
type memoryRegistry struct {
	mu      sync.RWMutex
	defs    map[string]*definition.Definition
	order   []string
	aliases map[string]string
}

// New creates and returns an empty in-memory Registry.
func New() Registry {
	return &memoryRegistry{
		defs:    make(map[string]*definition.Definition),
		aliases: make(map[string]string),
	}
}

// canonical follows aliases, including aliases of aliases, to the name they
// finally stand for.
func (r *memoryRegistry) canonical(name string) string {
	for hops := 0; hops <= len(r.aliases); hops++ {
		target, ok := r.aliases[name]
		if !ok {
			return name
		}
		name = target
	}
	return name
}

// Contains reports whether name is registered.
func (r *memoryRegistry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.defs[r.canonical(name)]
	return exists
}

// Get retrieves the definition registered under name.
func (r *memoryRegistry) Get(name string) (*definition.Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, exists := r.defs[r.canonical(name)]
	if !exists {
		return nil, errors.NewNoSuchDefinitionError(name)
	}
	return def, nil
}

// Register stores the definition under the given name.
func (r *memoryRegistry) Register(name string, def *definition.Definition) error {
	if name == "" {
		return errors.NewConfigError("", "definition name must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[name]; exists {
		return errors.NewAlreadyRegisteredError(name)
	}
	if _, exists := r.aliases[name]; exists {
		return errors.NewAlreadyRegisteredError(name)
	}
	r.defs[name] = def
	r.order = append(r.order, name)
	return nil
}

// RegisterAlias maps alias onto an existing name.
func (r *memoryRegistry) RegisterAlias(name, alias string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if alias == name {
		return nil
	}
	if _, exists := r.defs[alias]; exists {
		return errors.NewAlreadyRegisteredError(alias)
	}
	if target, exists := r.aliases[alias]; exists && target != name {
		return errors.NewAlreadyRegisteredError(alias)
	}
	if r.canonical(name) == alias {
		return errors.NewConfigError(alias, fmt.Sprintf("alias %q for %q would form a cycle", alias, name))
	}
	r.aliases[alias] = name
	return nil
}

// Aliases returns the aliases of name in lexical order.
func (r *memoryRegistry) Aliases(name string) []string {
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

// Names returns all registered names in registration order.
func (r *memoryRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Count returns the number of registered definitions.
func (r *memoryRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}
