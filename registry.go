// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetcher

import (
	"sort"

	"github.com/Ahoo-Wang/fetcher-sub001/exchange"
)

// A Registry is an ordered, name-deduplicated collection of
// interceptors for one pipeline phase.
//
// The registry keeps its interceptors sorted by (order, registration
// index) at all times: the sort happens on every mutation, never on
// Run, so executing a phase costs a single slice walk.
//
// A Registry is not internally synchronized. Configure registries
// before sharing the client across goroutines; Run never mutates
// registry state and is safe to call concurrently.
type Registry struct {
	interceptors []Interceptor
}

// Use registers an interceptor and re-sorts the registry. It returns
// false, without mutating the registry, if an interceptor with the
// same name is already registered. It panics on a nil interceptor.
func (r *Registry) Use(i Interceptor) bool {
	if i == nil {
		panic("fetcher: nil interceptor")
	}
	if r.index(i.Name()) >= 0 {
		return false
	}
	r.interceptors = append(r.interceptors, i)
	// Stable sort on a slice appended in registration order keeps
	// equal orders in registration order.
	sort.SliceStable(r.interceptors, func(a, b int) bool {
		return r.interceptors[a].Order() < r.interceptors[b].Order()
	})
	return true
}

// Eject removes the interceptor with the given name. It returns false
// if no such interceptor is registered.
func (r *Registry) Eject(name string) bool {
	i := r.index(name)
	if i < 0 {
		return false
	}
	r.interceptors = append(r.interceptors[:i], r.interceptors[i+1:]...)
	return true
}

// Clear removes every interceptor from the registry.
func (r *Registry) Clear() {
	r.interceptors = nil
}

// Len returns the number of registered interceptors.
func (r *Registry) Len() int {
	return len(r.interceptors)
}

// Names returns the names of the registered interceptors in execution
// order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.interceptors))
	for i, ic := range r.interceptors {
		names[i] = ic.Name()
	}
	return names
}

// Run executes each interceptor in sorted order, strictly
// sequentially, so a later interceptor always observes the
// fully-applied mutations of earlier ones. The first error aborts
// the remaining interceptors in the phase and is returned.
func (r *Registry) Run(e *exchange.Exchange) error {
	for _, i := range r.interceptors {
		if err := i.Intercept(e); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) index(name string) int {
	for i, ic := range r.interceptors {
		if ic.Name() == name {
			return i
		}
	}
	return -1
}
