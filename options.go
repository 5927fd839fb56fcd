// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetcher

import (
	"net/http"
	"time"

	"github.com/Ahoo-Wang/fetcher-sub001/urltemplate"
)

// An Option configures a Client during construction.
type Option func(*Client)

// WithHTTPDoer sets the transport used by the terminal network call.
// If unset, http.DefaultClient is used.
func WithHTTPDoer(d HTTPDoer) Option {
	return func(c *Client) {
		c.doer = d
	}
}

// WithBaseURL sets the base URL that relative URL templates are
// resolved against.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithDefaultHeader adds a default header sent with every call unless
// the call sets the same key itself.
func WithDefaultHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// WithDefaultHeaders adds every header in h as a default header.
func WithDefaultHeaders(h http.Header) Option {
	return func(c *Client) {
		for k, vs := range h {
			c.headers[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
		}
	}
}

// WithTimeout sets the default timeout applied to calls that do not
// set their own. Zero means no default timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithURLTemplateStrategy sets the URL template resolution strategy.
// The default is urltemplate.Brace.
func WithURLTemplateStrategy(s urltemplate.Strategy) Option {
	return func(c *Client) {
		c.strategy = s
	}
}

// WithValidateStatus sets the predicate used by the built-in status
// validation interceptor. The default accepts 2XX status codes.
func WithValidateStatus(fn func(statusCode int) bool) Option {
	return func(c *Client) {
		c.validate = fn
	}
}

// WithRequestInterceptor registers an interceptor in the request
// registry.
func WithRequestInterceptor(i Interceptor) Option {
	return func(c *Client) {
		c.registries[PhaseRequest].Use(i)
	}
}

// WithResponseInterceptor registers an interceptor in the response
// registry.
func WithResponseInterceptor(i Interceptor) Option {
	return func(c *Client) {
		c.registries[PhaseResponse].Use(i)
	}
}

// WithErrorInterceptor registers an interceptor in the error
// registry.
func WithErrorInterceptor(i Interceptor) Option {
	return func(c *Client) {
		c.registries[PhaseError].Use(i)
	}
}
