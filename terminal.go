// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetcher

import (
	"bytes"
	"context"
	"io"

	"github.com/Ahoo-Wang/fetcher-sub001/exchange"
)

// exchangeCall returns the built-in terminal network call. It is
// registered at OrderExchangeCall so that, by convention, it runs
// last in the request phase; interceptors ordered after it observe
// the populated response.
//
// If an effective timeout is configured and the request context does
// not already carry a deadline of its own, the call installs a
// context deadline for the duration of the transport call. A caller
// context that already has a deadline is left alone so there is never
// a second, conflicting cancellation source. The deferred cancel
// releases the deadline timer on the success and timeout paths alike.
func exchangeCall(c *Client) Interceptor {
	return NewInterceptor(NameExchangeCall, OrderExchangeCall, func(e *exchange.Exchange) error {
		req := e.Request
		ctx := req.Context()
		installed := false
		if d := req.Timeout; d > 0 {
			if _, ok := ctx.Deadline(); !ok {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, d)
				defer cancel()
				installed = true
			}
		}
		hr, err := req.ToHTTPRequest(ctx)
		if err != nil {
			return err
		}
		resp, err := c.httpDoer().Do(hr)
		if err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				timeout := req.Timeout
				if !installed {
					timeout = 0
				}
				return &TimeoutError{Request: req, Duration: timeout, Cause: err}
			}
			return urlErrorWrap(req, err)
		}
		e.Response = resp
		return readBody(e)
	})
}

// readBody buffers the whole response body into the exchange and
// replaces the response body with a re-readable view of the buffer,
// so later stages and custom extractors can still consume it.
func readBody(e *exchange.Exchange) error {
	defer func() {
		_ = e.Response.Body.Close()
	}()
	b, err := io.ReadAll(e.Response.Body)
	if err != nil {
		return urlErrorWrap(e.Request, err)
	}
	e.Body = b
	e.Response.Body = io.NopCloser(bytes.NewReader(b))
	return nil
}
