package device

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// CreateOptions configures a device created through the registry.
type CreateOptions struct {
	Host   Host
	Name   string
	Player PlayerID
}

// Factory creates a device of one registered type.
type Factory func(o *CreateOptions) (Device, error)

var ErrUnknownType = errors.New("unknown device type")

var (
	registry   = make(map[string]Factory)
	registryMu sync.RWMutex
)

// Register registers a device type for creation by name.
// This should be called from device package init() functions.
// The name is case-insensitive and will be lowercased.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[toLower(name)] = f
}

// Lookup retrieves a registered factory by name.
// Returns nil if not found. Name lookup is case-insensitive.
func Lookup(name string) Factory {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[toLower(name)]
}

// Types returns the registered type names, sorted.
func Types() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	types := make([]string, 0, len(registry))
	for name := range registry {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// Create builds a device of the named type.
func Create(name string, o *CreateOptions) (Device, error) {
	f := Lookup(name)
	if f == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	d, err := f(o)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	return d, nil
}

func toLower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
