// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetcher

import (
	"net/http"
	"net/url"
	"time"

	"github.com/Ahoo-Wang/fetcher-sub001/exchange"
	"github.com/Ahoo-Wang/fetcher-sub001/urltemplate"
)

// An HTTPDoer implements a Do method in the same manner as the Go
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	Do(r *http.Request) (*http.Response, error)
}

// A Client drives HTTP exchanges through an interceptor pipeline.
//
// A Client owns three interceptor registries, one per pipeline phase.
// Each call creates one Exchange, runs the request registry in
// ascending interceptor order (the terminal network call is, by
// convention, the highest-ordered request interceptor), then the
// response registry. Any error moves the exchange into the error
// registry, whose interceptors may clear the error to recover the
// call; an unrecovered error is returned wrapped in *PipelineError.
//
// The Client's configuration snapshot (base URL, default headers,
// default timeout, template strategy, transport) is fixed at
// construction. The registries remain mutable containers, but the
// Client's reference to them never changes; configure them before
// sharing the Client across goroutines. A configured Client is safe
// for concurrent use: pipeline execution mutates only the per-call
// Exchange.
type Client struct {
	doer       HTTPDoer
	baseURL    string
	headers    http.Header
	timeout    time.Duration
	strategy   urltemplate.Strategy
	validate   func(statusCode int) bool
	registries [numPhases]*Registry
}

// New constructs a Client from the given options. A Client built with
// no options is valid: it uses http.DefaultClient as the transport,
// brace-style URL templates, no base URL, no default headers, no
// default timeout, and accepts 2XX status codes.
//
// The four built-in interceptors are installed before the options
// run: URL resolution, body normalization and the terminal network
// call in the request registry, and status validation in the response
// registry. Use Registry(phase).Eject to disable a built-in.
func New(opts ...Option) *Client {
	c := &Client{
		headers:  make(http.Header),
		strategy: urltemplate.Brace,
		validate: func(statusCode int) bool {
			return statusCode >= 200 && statusCode < 300
		},
	}
	for p := range c.registries {
		c.registries[p] = &Registry{}
	}
	c.registries[PhaseRequest].Use(resolveURL(c))
	c.registries[PhaseRequest].Use(normalizeBody())
	c.registries[PhaseRequest].Use(exchangeCall(c))
	c.registries[PhaseResponse].Use(validateStatus(c))
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the interceptor registry for the given phase. The
// returned registry is the client's own: interceptors registered on
// it take effect on subsequent calls.
func (c *Client) Registry(p Phase) *Registry {
	return c.registries[p]
}

// BaseURL returns the configured base URL, which may be empty.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do drives one exchange through the pipeline and returns it.
//
// Do merges the client's default headers underneath the request
// headers (request values win on key collision), resolves the
// effective timeout (call value, else client default, else none), and
// creates the Exchange before any interceptor runs; this assembly
// step performs no I/O.
//
// The returned Exchange is never nil when err is nil. On failure the
// returned error is a *PipelineError carrying the same Exchange, and
// the Exchange's Err field references the originating cause. The
// default result extractor for Do returns the whole Exchange.
func (c *Client) Do(req *exchange.Request) (*exchange.Exchange, error) {
	return c.do(req, exchange.ExtractExchange)
}

func (c *Client) do(req *exchange.Request, defaultExtractor exchange.Extractor) (*exchange.Exchange, error) {
	if req == nil {
		panic("fetcher: nil request")
	}
	req.Header = MergeHeaders(c.headers, req.Header)
	req.Timeout = ResolveTimeout(req.Timeout, c.timeout)
	if req.Extractor() == nil {
		req.Apply(exchange.WithExtractor(defaultExtractor))
	}
	e := exchange.New(c, req)
	if err := c.run(e); err != nil {
		return e, err
	}
	return e, nil
}

// run is the pipeline orchestrator. Internally the outcome is the
// tagged pair (exchange, exchange.Err); it becomes a returned error
// only here, at the public boundary.
func (c *Client) run(e *exchange.Exchange) error {
	phase := PhaseRequest
	err := c.registries[PhaseRequest].Run(e)
	if err == nil {
		phase = PhaseResponse
		err = c.registries[PhaseResponse].Run(e)
	}
	if err == nil {
		return nil
	}
	e.Err = err
	if err := c.registries[PhaseError].Run(e); err != nil {
		e.Err = err
	}
	if e.Err == nil {
		// Recovered: an error interceptor cleared the error.
		return nil
	}
	return &PipelineError{Phase: phase, Exchange: e, Cause: e.Err}
}

func (c *Client) httpDoer() HTTPDoer {
	if c.doer == nil {
		return http.DefaultClient
	}
	return c.doer
}

// Get issues a GET to the specified URL template through the
// pipeline. The default result extractor for the convenience verbs
// returns the transport response.
func (c *Client) Get(url string, opts ...exchange.Option) (*exchange.Exchange, error) {
	return c.call(http.MethodGet, url, nil, opts)
}

// Head issues a HEAD to the specified URL template through the
// pipeline.
func (c *Client) Head(url string, opts ...exchange.Option) (*exchange.Exchange, error) {
	return c.call(http.MethodHead, url, nil, opts)
}

// Post issues a POST to the specified URL template through the
// pipeline.
//
// The body may be nil, a string, []byte, io.Reader, io.ReadCloser, or
// url.Values, all of which are sent as-is; any other value is
// JSON-serialized by the body normalization interceptor.
func (c *Client) Post(url string, body any, opts ...exchange.Option) (*exchange.Exchange, error) {
	return c.call(http.MethodPost, url, body, opts)
}

// PostForm issues a POST to the specified URL template with data's
// keys and values URL-encoded as the request body and the content
// type set to application/x-www-form-urlencoded.
func (c *Client) PostForm(u string, data url.Values, opts ...exchange.Option) (*exchange.Exchange, error) {
	return c.call(http.MethodPost, u, data, opts)
}

// Put issues a PUT to the specified URL template through the
// pipeline.
func (c *Client) Put(url string, body any, opts ...exchange.Option) (*exchange.Exchange, error) {
	return c.call(http.MethodPut, url, body, opts)
}

// Patch issues a PATCH to the specified URL template through the
// pipeline.
func (c *Client) Patch(url string, body any, opts ...exchange.Option) (*exchange.Exchange, error) {
	return c.call(http.MethodPatch, url, body, opts)
}

// Delete issues a DELETE to the specified URL template through the
// pipeline.
func (c *Client) Delete(url string, opts ...exchange.Option) (*exchange.Exchange, error) {
	return c.call(http.MethodDelete, url, nil, opts)
}

// Options issues an OPTIONS to the specified URL template through the
// pipeline.
func (c *Client) Options(url string, opts ...exchange.Option) (*exchange.Exchange, error) {
	return c.call(http.MethodOptions, url, nil, opts)
}

// Trace issues a TRACE to the specified URL template through the
// pipeline.
func (c *Client) Trace(url string, opts ...exchange.Option) (*exchange.Exchange, error) {
	return c.call(http.MethodTrace, url, nil, opts)
}

func (c *Client) call(method, url string, body any, opts []exchange.Option) (*exchange.Exchange, error) {
	req, err := exchange.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.Apply(opts...)
	return c.do(req, exchange.ExtractResponse)
}

// MergeHeaders merges call-level headers over default headers. The
// merge is right-biased: on key collision the call values win. Both
// inputs are left unmodified.
func MergeHeaders(def, call http.Header) http.Header {
	merged := make(http.Header, len(def)+len(call))
	for k, vs := range def {
		merged[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
	}
	for k, vs := range call {
		merged[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
	}
	return merged
}

// ResolveTimeout returns the effective timeout for a call: the
// call-level value if set, else the client default, else zero
// meaning no timeout.
func ResolveTimeout(call, def time.Duration) time.Duration {
	if call > 0 {
		return call
	}
	if def > 0 {
		return def
	}
	return 0
}
