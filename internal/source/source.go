// Package source abstracts where guide content comes from. A Source
// resolves a catalog path to text on every call; backends are registered
// by name and selected through configuration.
package source

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Source fetches guide content by reference. Implementations must be safe
// for concurrent use and must not cache across calls.
type Source interface {
	Read(ctx context.Context, ref string) (string, error)
}

var (
	registry = make(map[string]Source)
	mu       sync.RWMutex
)

// Register makes a source available by name, replacing any previous
// registration under that name.
func Register(name string, s Source) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = s
}

// Get returns the source registered under name.
func Get(name string) (Source, error) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("source %q not registered", name)
	}
	return s, nil
}

// List returns the registered source names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
