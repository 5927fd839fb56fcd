// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package urltemplate

import (
	"fmt"

	"github.com/oapi-codegen/runtime"
	cache "github.com/patrickmn/go-cache"
)

// A Strategy resolves named path parameters in a URL template.
//
// Implementations of Strategy must be safe for concurrent use by
// multiple goroutines.
type Strategy interface {
	// ParamNames returns the names of the parameters referenced by
	// the template, in order of appearance.
	ParamNames(template string) []string
	// Resolve substitutes the given parameter values into the
	// template and returns the resolved string. A template parameter
	// with no corresponding value in params causes a
	// *MissingParamError; a token is never left unresolved silently.
	Resolve(template string, params map[string]any) (string, error)
}

// A MissingParamError is returned by Strategy.Resolve when a template
// references a parameter that has no bound value.
type MissingParamError struct {
	// Template is the URL template being resolved.
	Template string
	// Name is the name of the parameter with no bound value.
	Name string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("urltemplate: missing value for parameter %q in template %q", e.Name, e.Template)
}

// styleValue renders a path parameter value the same way a generated
// OpenAPI client would, so slices, times, and UUIDs format
// consistently with the rest of the ecosystem.
func styleValue(name string, value any) (string, error) {
	return runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
}

// nameMemo caches extracted parameter names per template. URL
// templates repeat heavily under generated REST clients, so each
// strategy keeps its extraction results around indefinitely.
type nameMemo struct {
	c *cache.Cache
}

func newNameMemo() *nameMemo {
	return &nameMemo{c: cache.New(cache.NoExpiration, 0)}
}

func (m *nameMemo) names(template string, extract func(string) []string) []string {
	if v, ok := m.c.Get(template); ok {
		return v.([]string)
	}
	names := extract(template)
	m.c.Set(template, names, cache.DefaultExpiration)
	return names
}
