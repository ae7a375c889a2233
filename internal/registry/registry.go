// Package registry maps (scenario, backend) pairs to scenario
// implementations. The table is populated explicitly during startup;
// after that it is read-only, so concurrent lookup is safe.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"kernelbench/internal/domain"
	"kernelbench/internal/scenarios"
)

type Key struct {
	Scenario string
	Backend  string
}

func (k Key) String() string { return k.Scenario + "/" + k.Backend }

type Registry struct {
	mu    sync.RWMutex
	table map[Key]scenarios.Func
}

func New() *Registry {
	return &Registry{table: map[Key]scenarios.Func{}}
}

// Register adds one implementation for a pair. Registering the same
// pair twice is a startup programming error.
func (r *Registry) Register(scenario, backend string, fn scenarios.Func) error {
	if fn == nil {
		return fmt.Errorf("registry: nil implementation for %s/%s", scenario, backend)
	}
	key := Key{Scenario: scenario, Backend: backend}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.table[key]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateRegistration, key)
	}
	r.table[key] = fn
	return nil
}

// MustRegister is the startup form: duplicate registration is fatal.
func (r *Registry) MustRegister(scenario, backend string, fn scenarios.Func) {
	if err := r.Register(scenario, backend, fn); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(scenario, backend string) (scenarios.Func, error) {
	key := Key{Scenario: scenario, Backend: backend}
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.table[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotRegistered, key)
	}
	return fn, nil
}

// Keys returns every registered pair, sorted for stable listing.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Key, 0, len(r.table))
	for k := range r.table {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
