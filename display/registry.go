// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a surface from options.
// Factories are registered via Register and called by Open.
type Factory func(opts Options) (Surface, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes a surface factory available under name.
// It is typically called from init in backend packages:
//
//	func init() {
//	    display.Register("pdf", func(opts display.Options) (display.Surface, error) {
//	        return pdf.New(opts)
//	    })
//	}
//
// Register panics if factory is nil or if name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("display: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("display: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a surface factory. It is primarily useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Open validates opts and creates a surface by name.
// The error for an unknown name hints at a forgotten import.
func Open(name string, opts Options) (Surface, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("display: unknown surface %q (forgotten import?)", name)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s, err := factory(opts)
	if err != nil {
		return nil, fmt.Errorf("display: open %s: %w", name, err)
	}
	return s, nil
}

// MustOpen is like Open but panics on error.
func MustOpen(name string, opts Options) Surface {
	s, err := Open(name, opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Names returns the registered surface names in alphabetical order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a surface with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
