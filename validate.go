// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetcher

import (
	"github.com/Ahoo-Wang/fetcher-sub001/exchange"
)

// validateStatus returns the built-in status validation interceptor.
// It runs in the response phase and fails the exchange with a
// *StatusError when the response status code does not satisfy the
// client's predicate. An exchange with no response (for example one
// recovered with a synthetic result) is left alone.
func validateStatus(c *Client) Interceptor {
	return NewInterceptor(NameValidateStatus, OrderValidateStatus, func(e *exchange.Exchange) error {
		if e.Response == nil {
			return nil
		}
		if c.validate(e.Response.StatusCode) {
			return nil
		}
		return &StatusError{Exchange: e}
	})
}
