// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package exchange

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/http/httpguts"
)

const nilCtxMsg = "exchange: nil context"

// A Request describes one logical HTTP call to be driven through the
// exchange pipeline by a client.
//
// The URL field holds a template, not necessarily a final URL: the
// URL resolution interceptor combines it with the client's base URL,
// substitutes PathParams into template tokens, and appends a query
// string built from QueryParams. After resolution URL holds the final
// absolute URL.
//
// Like the net/http Request, a Request carries a context which
// controls cancellation of the call. Use WithContext to change it.
type Request struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.).
	// An empty string means GET.
	Method string

	// URL is the URL template for the call. It may be a path resolved
	// against the client's base URL, or an absolute URL used as-is.
	URL string

	// PathParams supplies values for the template tokens in URL.
	PathParams map[string]any

	// QueryParams supplies key/value pairs for the query string
	// appended to the resolved URL.
	QueryParams map[string]any

	// Header contains the request header fields to be sent. The
	// client merges its default headers underneath these before the
	// pipeline runs; values set here win on key collision.
	Header http.Header

	// Body is the caller-supplied request body. It may be nil,
	// string, []byte, io.Reader, io.ReadCloser, url.Values, or any
	// JSON-serializable value. The body normalization interceptor
	// converts it to RawBody before the terminal network call.
	Body any

	// RawBody is the wire form of Body. It is populated by the body
	// normalization interceptor and consumed by the terminal network
	// call.
	RawBody []byte

	// Timeout is the timeout for the call. Zero means no call-level
	// timeout was requested; the client default, if any, applies.
	Timeout time.Duration

	// ctx controls cancellation of the call. It should only be
	// modified by copying the whole Request using WithContext.
	ctx context.Context

	// attrs seeds the Exchange attribute bag.
	attrs map[string]any

	// extractor converts the completed Exchange into the
	// caller-visible value.
	extractor Extractor
}

// NewRequest returns a new Request given a method, URL template, and
// optional body.
//
// The body parameter may be nil for an empty body, or any of the
// types understood by the body normalization interceptor: string,
// []byte, io.Reader, io.ReadCloser, url.Values, or a value to be
// JSON-serialized.
func NewRequest(method, url string, body any) (*Request, error) {
	return NewRequestWithContext(context.Background(), method, url, body)
}

// NewRequestWithContext returns a new Request whose context is ctx,
// which may not be nil.
func NewRequestWithContext(ctx context.Context, method, url string, body any) (*Request, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if method == "" {
		method = http.MethodGet
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("exchange: invalid method %q", method)
	}
	return &Request{
		ctx:    ctx,
		Method: method,
		URL:    url,
		Header: make(http.Header),
		Body:   body,
	}, nil
}

// Context returns the request's context. The context controls
// cancellation of the call. To change the context, use WithContext.
//
// The returned context is always non-nil; it defaults to the
// background context.
func (r *Request) Context() context.Context {
	if r.ctx != nil {
		return r.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of r with its context changed to
// ctx, which must be non-nil.
func (r *Request) WithContext(ctx context.Context) *Request {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	r2 := new(Request)
	*r2 = *r
	r2.ctx = ctx
	return r2
}

// Apply applies the given options to the request in order.
func (r *Request) Apply(opts ...Option) *Request {
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Extractor returns the result extractor selected for this call, or
// nil if none was selected and the client default applies.
func (r *Request) Extractor() Extractor {
	return r.extractor
}

// AddCookie adds a cookie to the request. Per RFC 6265 section 5.4,
// AddCookie does not attach more than one Cookie header field: all
// cookies, if any, are written into the same line, separated by
// semicolons.
func (r *Request) AddCookie(c *http.Cookie) {
	c2 := &http.Cookie{Name: c.Name, Value: c.Value}
	s := c2.String()
	if h := r.Header.Get("Cookie"); h != "" {
		r.Header.Set("Cookie", h+"; "+s)
	} else {
		r.Header.Set("Cookie", s)
	}
}

// SetBasicAuth sets the request's Authorization header to use HTTP
// Basic Authentication with the provided username and password.
//
// With HTTP Basic Authentication the provided username and password
// are not encrypted.
func (r *Request) SetBasicAuth(username, password string) {
	r.Header.Set("Authorization", "Basic "+basicAuth(username, password))
}

// ToHTTPRequest converts the request into an *http.Request bound to
// ctx, which may not be nil. It expects URL to contain the final,
// already-resolved URL and RawBody to contain the wire-form body.
func (r *Request) ToHTTPRequest(ctx context.Context) (*http.Request, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	hr, err := http.NewRequestWithContext(ctx, r.Method, r.URL, nil)
	if err != nil {
		return nil, err
	}
	hr.Header = r.Header
	if len(r.RawBody) > 0 {
		body := r.RawBody
		hr.Body = io.NopCloser(bytes.NewReader(body))
		hr.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		hr.ContentLength = int64(len(body))
	}
	return hr, nil
}

// basicAuth follows RFC 2617: userid and password, separated by a
// single colon, base64 encoded. It is not meant to be urlencoded.
func basicAuth(username, password string) string {
	auth := username + ":" + password
	return base64.StdEncoding.EncodeToString([]byte(auth))
}

// validMethod reports whether method is a valid HTTP method token
// per RFC 7230 section 3.2.6. Method tokens share the token grammar
// with header field names, so httpguts does the classification.
func validMethod(method string) bool {
	return httpguts.ValidHeaderFieldName(method)
}
