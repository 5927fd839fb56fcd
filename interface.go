// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetcher

import (
	"net/http"
	"net/url"

	"github.com/Ahoo-Wang/fetcher-sub001/exchange"
)

// Doer is the interface that wraps the basic Do method.
//
// Do drives one request through an exchange pipeline and returns the
// completed Exchange (and error, if any). Client implements Doer, and
// any other Doer implementation must behave substantially the same as
// Client.Do. Doer is the same interface the exchange package exposes
// as exchange.Client, so error interceptors holding an Exchange can
// re-invoke its owning client through it.
type Doer = exchange.Client

// Verbs is the interface that groups the convenience verb methods
// implemented by Client.
type Verbs interface {
	Get(url string, opts ...exchange.Option) (*exchange.Exchange, error)
	Head(url string, opts ...exchange.Option) (*exchange.Exchange, error)
	Post(url string, body any, opts ...exchange.Option) (*exchange.Exchange, error)
	PostForm(url string, data url.Values, opts ...exchange.Option) (*exchange.Exchange, error)
	Put(url string, body any, opts ...exchange.Option) (*exchange.Exchange, error)
	Patch(url string, body any, opts ...exchange.Option) (*exchange.Exchange, error)
	Delete(url string, opts ...exchange.Option) (*exchange.Exchange, error)
	Options(url string, opts ...exchange.Option) (*exchange.Exchange, error)
	Trace(url string, opts ...exchange.Option) (*exchange.Exchange, error)
}

// Executor is the interface that groups Do and the convenience verbs.
// Client implements Executor, and any Doer can be converted into an
// Executor via Inflate.
type Executor interface {
	Doer
	Verbs
}

// Get uses the specified Doer to issue a GET to the specified URL
// template, using the same pipeline as d.Do.
func Get(d Doer, url string, opts ...exchange.Option) (*exchange.Exchange, error) {
	return call(d, http.MethodGet, url, nil, opts)
}

// Head uses the specified Doer to issue a HEAD to the specified URL
// template, using the same pipeline as d.Do.
func Head(d Doer, url string, opts ...exchange.Option) (*exchange.Exchange, error) {
	return call(d, http.MethodHead, url, nil, opts)
}

// Post uses the specified Doer to issue a POST to the specified URL
// template, using the same pipeline as d.Do.
//
// The body may be any of the kinds understood by the body
// normalization interceptor; see Client.Post.
func Post(d Doer, url string, body any, opts ...exchange.Option) (*exchange.Exchange, error) {
	return call(d, http.MethodPost, url, body, opts)
}

// PostForm uses the specified Doer to issue a POST to the specified
// URL template with data's keys and values URL-encoded as the request
// body and the content type set to
// application/x-www-form-urlencoded.
func PostForm(d Doer, u string, data url.Values, opts ...exchange.Option) (*exchange.Exchange, error) {
	return call(d, http.MethodPost, u, data, opts)
}

// Put uses the specified Doer to issue a PUT to the specified URL
// template, using the same pipeline as d.Do.
func Put(d Doer, url string, body any, opts ...exchange.Option) (*exchange.Exchange, error) {
	return call(d, http.MethodPut, url, body, opts)
}

// Patch uses the specified Doer to issue a PATCH to the specified URL
// template, using the same pipeline as d.Do.
func Patch(d Doer, url string, body any, opts ...exchange.Option) (*exchange.Exchange, error) {
	return call(d, http.MethodPatch, url, body, opts)
}

// Delete uses the specified Doer to issue a DELETE to the specified
// URL template, using the same pipeline as d.Do.
func Delete(d Doer, url string, opts ...exchange.Option) (*exchange.Exchange, error) {
	return call(d, http.MethodDelete, url, nil, opts)
}

func call(d Doer, method, url string, body any, opts []exchange.Option) (*exchange.Exchange, error) {
	req, err := exchange.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.Apply(opts...)
	return d.Do(req)
}

// Inflate converts any non-nil Doer into an Executor. This may be
// helpful for interop across library boundaries, i.e. if code that
// only has access to a Doer needs to call a function that requires an
// Executor.
func Inflate(d Doer) Executor {
	if d == nil {
		panic("fetcher: nil doer")
	}
	if e, ok := d.(Executor); ok {
		return e
	}
	return inflated{d}
}

type inflated struct {
	doer Doer
}

func (i inflated) Do(req *exchange.Request) (*exchange.Exchange, error) {
	return i.doer.Do(req)
}

func (i inflated) Get(url string, opts ...exchange.Option) (*exchange.Exchange, error) {
	return Get(i.doer, url, opts...)
}

func (i inflated) Head(url string, opts ...exchange.Option) (*exchange.Exchange, error) {
	return Head(i.doer, url, opts...)
}

func (i inflated) Post(url string, body any, opts ...exchange.Option) (*exchange.Exchange, error) {
	return Post(i.doer, url, body, opts...)
}

func (i inflated) PostForm(u string, data url.Values, opts ...exchange.Option) (*exchange.Exchange, error) {
	return PostForm(i.doer, u, data, opts...)
}

func (i inflated) Put(url string, body any, opts ...exchange.Option) (*exchange.Exchange, error) {
	return Put(i.doer, url, body, opts...)
}

func (i inflated) Patch(url string, body any, opts ...exchange.Option) (*exchange.Exchange, error) {
	return Patch(i.doer, url, body, opts...)
}

func (i inflated) Delete(url string, opts ...exchange.Option) (*exchange.Exchange, error) {
	return Delete(i.doer, url, opts...)
}

func (i inflated) Options(url string, opts ...exchange.Option) (*exchange.Exchange, error) {
	return call(i.doer, http.MethodOptions, url, nil, opts)
}

func (i inflated) Trace(url string, opts ...exchange.Option) (*exchange.Exchange, error) {
	return call(i.doer, http.MethodTrace, url, nil, opts)
}
