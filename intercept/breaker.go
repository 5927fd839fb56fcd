// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package intercept

import (
	"errors"
	"fmt"

	"github.com/sony/gobreaker"

	fetcher "github.com/Ahoo-Wang/fetcher-sub001"
	"github.com/Ahoo-Wang/fetcher-sub001/exchange"
)

// ErrBreakerOpen is the error recorded on an exchange rejected
// because its circuit breaker is open.
var ErrBreakerOpen = errors.New("intercept: circuit breaker open")

// A Breaker wires a gobreaker circuit breaker into the exchange
// pipeline. The request interceptor rejects exchanges while the
// circuit is open, before any network work happens; the response and
// error interceptors record outcomes so the breaker state tracks the
// remote service's health.
//
// A Breaker never retries: it only refuses or admits exchanges.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// NewBreaker creates a Breaker around cb, which must be non-nil.
func NewBreaker(cb *gobreaker.CircuitBreaker) *Breaker {
	if cb == nil {
		panic("intercept: nil circuit breaker")
	}
	return &Breaker{cb: cb}
}

// Register installs the breaker's interceptors on the client.
func (b *Breaker) Register(c *fetcher.Client) {
	c.Registry(fetcher.PhaseRequest).Use(b.Request())
	c.Registry(fetcher.PhaseResponse).Use(b.Response())
	c.Registry(fetcher.PhaseError).Use(b.Error())
}

// Request returns the request-phase interceptor. It runs before the
// built-in URL resolution so an open circuit costs nothing.
func (b *Breaker) Request() fetcher.Interceptor {
	return fetcher.NewInterceptor("breaker", fetcher.OrderFirst, func(e *exchange.Exchange) error {
		if b.cb.State() == gobreaker.StateOpen {
			return ErrBreakerOpen
		}
		return nil
	})
}

// Response returns the response-phase interceptor, which records the
// exchange as a success.
func (b *Breaker) Response() fetcher.Interceptor {
	return fetcher.NewInterceptor("breaker", fetcher.OrderLast, func(e *exchange.Exchange) error {
		_, _ = b.cb.Execute(func() (any, error) {
			return nil, nil
		})
		return nil
	})
}

// Error returns the error-phase interceptor, which records the
// exchange as a failure. It leaves the exchange error untouched: a
// breaker observes failures, it does not recover them.
func (b *Breaker) Error() fetcher.Interceptor {
	return fetcher.NewInterceptor("breaker", fetcher.OrderLast, func(e *exchange.Exchange) error {
		if errors.Is(e.Err, ErrBreakerOpen) {
			// A rejection must not count as another failure.
			return nil
		}
		_, _ = b.cb.Execute(func() (any, error) {
			return nil, fmt.Errorf("exchange failed: %w", e.Err)
		})
		return nil
	})
}
