// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package exchange

import (
	"context"
	"net/http"
	"time"
)

// An Option customizes a single Request before it enters the
// pipeline.
type Option func(*Request)

// WithHeader sets a single header on the request, replacing any
// existing values for the key.
func WithHeader(key, value string) Option {
	return func(r *Request) {
		r.Header.Set(key, value)
	}
}

// WithHeaders sets every header in h on the request, replacing
// existing values on key collision.
func WithHeaders(h http.Header) Option {
	return func(r *Request) {
		for k, vs := range h {
			r.Header[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
		}
	}
}

// WithTimeout sets the call-level timeout. A call-level timeout wins
// over the client default.
func WithTimeout(d time.Duration) Option {
	return func(r *Request) {
		r.Timeout = d
	}
}

// WithPathParams merges the given values into the request's path
// parameters.
func WithPathParams(params map[string]any) Option {
	return func(r *Request) {
		if r.PathParams == nil {
			r.PathParams = make(map[string]any, len(params))
		}
		for k, v := range params {
			r.PathParams[k] = v
		}
	}
}

// WithPathParam sets a single path parameter value.
func WithPathParam(name string, value any) Option {
	return WithPathParams(map[string]any{name: value})
}

// WithQuery merges the given values into the request's query
// parameters.
func WithQuery(params map[string]any) Option {
	return func(r *Request) {
		if r.QueryParams == nil {
			r.QueryParams = make(map[string]any, len(params))
		}
		for k, v := range params {
			r.QueryParams[k] = v
		}
	}
}

// WithQueryParam sets a single query parameter value.
func WithQueryParam(name string, value any) Option {
	return WithQuery(map[string]any{name: value})
}

// WithBody sets the request body.
func WithBody(body any) Option {
	return func(r *Request) {
		r.Body = body
	}
}

// WithContext sets the request context, which must be non-nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	return func(r *Request) {
		r.ctx = ctx
	}
}

// WithAttribute seeds an attribute into the Exchange attribute bag
// before the pipeline runs.
func WithAttribute(key string, value any) Option {
	return func(r *Request) {
		if r.attrs == nil {
			r.attrs = make(map[string]any)
		}
		r.attrs[key] = value
	}
}

// WithExtractor selects the result extractor for this call,
// overriding the client default.
func WithExtractor(x Extractor) Option {
	return func(r *Request) {
		r.extractor = x
	}
}
