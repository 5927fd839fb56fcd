// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetcher

import (
	"net/url"
	"sort"
	"strings"

	"github.com/oapi-codegen/runtime"

	"github.com/Ahoo-Wang/fetcher-sub001/exchange"
)

// resolveURL returns the built-in URL resolution interceptor. It runs
// earliest in the request phase: it combines the client's base URL
// with the request's URL template, substitutes path parameters using
// the client's template strategy, and appends a query string built
// from the request's query parameters. A template token with no bound
// value fails the exchange with *urltemplate.MissingParamError.
func resolveURL(c *Client) Interceptor {
	return NewInterceptor(NameResolveURL, OrderResolveURL, func(e *exchange.Exchange) error {
		req := e.Request
		resolved, err := c.strategy.Resolve(req.URL, req.PathParams)
		if err != nil {
			return err
		}
		target := joinURL(c.baseURL, resolved)
		query, err := encodeQuery(req.QueryParams)
		if err != nil {
			return err
		}
		if query != "" {
			if strings.Contains(target, "?") {
				target += "&" + query
			} else {
				target += "?" + query
			}
		}
		req.URL = target
		return nil
	})
}

// joinURL combines a base URL with a path. An absolute path (one with
// its own scheme) ignores the base entirely.
func joinURL(base, path string) string {
	if base == "" || isAbsoluteURL(path) {
		return path
	}
	if path == "" {
		return base
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

// encodeQuery builds a query string from a parameter map, rendering
// each value the way generated OpenAPI clients do ("form" style,
// exploded). Keys are emitted in sorted order so resolved URLs are
// deterministic.
func encodeQuery(params map[string]any) (string, error) {
	if len(params) == 0 {
		return "", nil
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := make(url.Values, len(params))
	for _, k := range keys {
		frag, err := runtime.StyleParamWithLocation("form", true, k, runtime.ParamLocationQuery, params[k])
		if err != nil {
			return "", err
		}
		parsed, err := url.ParseQuery(frag)
		if err != nil {
			return "", err
		}
		for pk, pvs := range parsed {
			for _, v := range pvs {
				values.Add(pk, v)
			}
		}
	}
	return values.Encode(), nil
}
