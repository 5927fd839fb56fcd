// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetcher

import (
	"math"

	"github.com/Ahoo-Wang/fetcher-sub001/exchange"
)

// An Interceptor is a named, ordered unit of work in the exchange
// pipeline. Interceptors mutate the Exchange in place; returning a
// non-nil error aborts the current phase and moves the pipeline into
// error recovery.
//
// Implementations must be safe for concurrent use by multiple
// goroutines: the same Interceptor instance runs for every exchange
// issued through a client, and only the per-call Exchange may be
// mutated.
type Interceptor interface {
	// Name identifies the interceptor within its registry. Two
	// interceptors with the same name cannot coexist in one registry.
	Name() string
	// Order determines execution order within a registry. Lower
	// orders run first; equal orders run in registration order.
	Order() int
	// Intercept performs the unit of work on the exchange.
	Intercept(e *exchange.Exchange) error
}

// Interceptor order bounds and the orders of the built-in
// interceptors. The terminal network call runs at OrderExchangeCall
// by convention, not by contract: an interceptor ordered after it
// still runs in the request phase and observes the populated
// response, which is how response-side logging or tracing can hook
// the request phase if needed.
const (
	// OrderFirst is the lowest usable order.
	OrderFirst = math.MinInt32
	// OrderLast is the highest usable order.
	OrderLast = math.MaxInt32
	// OrderResolveURL is the order of the built-in URL resolution
	// interceptor.
	OrderResolveURL = -2000
	// OrderNormalizeBody is the order of the built-in body
	// normalization interceptor.
	OrderNormalizeBody = -1000
	// OrderExchangeCall is the order of the built-in terminal network
	// call. It leaves room above so stages can still be ordered after
	// the call.
	OrderExchangeCall = OrderLast - 1000
	// OrderValidateStatus is the order of the built-in status
	// validation interceptor in the response phase.
	OrderValidateStatus = 0
)

// Names of the built-in interceptors, usable with Registry.Eject to
// disable a built-in on a given client.
const (
	NameResolveURL     = "resolveURL"
	NameNormalizeBody  = "normalizeBody"
	NameExchangeCall   = "exchange"
	NameValidateStatus = "validateStatus"
)

// NewInterceptor adapts an ordinary function into an Interceptor with
// the given name and order. It panics if name is empty or fn is nil.
func NewInterceptor(name string, order int, fn func(e *exchange.Exchange) error) Interceptor {
	if name == "" {
		panic("fetcher: empty interceptor name")
	}
	if fn == nil {
		panic("fetcher: nil interceptor func")
	}
	return &funcInterceptor{name: name, order: order, fn: fn}
}

type funcInterceptor struct {
	name  string
	order int
	fn    func(e *exchange.Exchange) error
}

func (i *funcInterceptor) Name() string {
	return i.name
}

func (i *funcInterceptor) Order() int {
	return i.order
}

func (i *funcInterceptor) Intercept(e *exchange.Exchange) error {
	return i.fn(e)
}
