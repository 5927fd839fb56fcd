// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package exchange

import (
	"net/http"

	"github.com/google/uuid"
)

// A Client issues exchanges. It is implemented by fetcher.Client and
// exists here so error-phase interceptors can re-invoke the owning
// client (for example to implement a retry policy outside the core)
// without importing the root package.
type Client interface {
	// Do drives a request through the pipeline and returns the
	// completed Exchange.
	Do(req *Request) (*Exchange, error)
}

// An Exchange is the per-call record that flows through the
// interceptor chain.
//
// Interceptors mutate the Exchange in place: request-phase
// interceptors shape the Request, the terminal interceptor populates
// Response and Body, and error-phase interceptors may clear Err to
// recover a failed call. The pipeline itself never interprets the
// attribute bag; it exists purely for interceptor-to-interceptor
// communication.
type Exchange struct {
	// ID correlates everything that happens during this call. It is
	// a UUID assigned at construction.
	ID string

	// Request is the request descriptor being executed. It is never
	// nil and is mutable until the terminal network call consumes it.
	Request *Request

	// Response is the HTTP response from the terminal network call.
	// It is nil until that call succeeds. Later stages may read it
	// but should not replace it except to recover from an error.
	Response *http.Response

	// Body is the fully-buffered response body. The terminal
	// interceptor buffers the body and closes the original stream,
	// so Body is always safe to read after a successful exchange.
	Body []byte

	// Err is the error recorded by the pipeline when a stage fails.
	// A non-nil Err means the pipeline is in recovery mode; an
	// error-phase interceptor that sets Err to nil signals the
	// failure was handled and the call should succeed.
	Err error

	client    Client
	attrs     map[string]any
	extractor Extractor
}

// New creates the Exchange for one logical call. The attribute bag is
// seeded from any WithAttribute options applied to the request.
func New(c Client, req *Request) *Exchange {
	e := &Exchange{
		ID:        uuid.NewString(),
		Request:   req,
		client:    c,
		attrs:     make(map[string]any, len(req.attrs)),
		extractor: req.extractor,
	}
	for k, v := range req.attrs {
		e.attrs[k] = v
	}
	return e
}

// Client returns the client that owns this exchange. The exchange
// borrows the reference; it never outlives the client.
func (e *Exchange) Client() Client {
	return e.client
}

// StatusCode returns the status code of the response, or 0 if there
// is no response.
func (e *Exchange) StatusCode() int {
	if e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}

// Header returns the response headers, or a nil header if there is no
// response. A nil return value is safe for read-only use since
// http.Header is a map type.
func (e *Exchange) Header() http.Header {
	if e.Response == nil {
		var nilHeader http.Header
		return nilHeader
	}
	return e.Response.Header
}

// Settled reports whether the exchange has either a response or an
// error, i.e. whether the terminal stage of its pipeline run has been
// reached.
func (e *Exchange) Settled() bool {
	return e.Response != nil || e.Err != nil
}

// Set stores an attribute value under key.
func (e *Exchange) Set(key string, value any) {
	e.attrs[key] = value
}

// Value returns the attribute stored under key.
func (e *Exchange) Value(key string) (any, bool) {
	v, ok := e.attrs[key]
	return v, ok
}

// Delete removes the attribute stored under key.
func (e *Exchange) Delete(key string) {
	delete(e.attrs, key)
}

// SetExtractor replaces the result extractor for this exchange.
func (e *Exchange) SetExtractor(x Extractor) {
	e.extractor = x
}

// Result applies the exchange's result extractor and returns the
// caller-visible value. Calling Result before the exchange has
// settled is a programming error and returns ErrNotExchanged.
func (e *Exchange) Result() (any, error) {
	if !e.Settled() {
		return nil, ErrNotExchanged
	}
	x := e.extractor
	if x == nil {
		x = ExtractExchange
	}
	return x(e)
}
