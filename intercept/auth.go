// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package intercept

import (
	fetcher "github.com/Ahoo-Wang/fetcher-sub001"
	"github.com/Ahoo-Wang/fetcher-sub001/exchange"
)

// BearerAuth returns a request interceptor that sets the
// Authorization header to a bearer token on every exchange. A header
// already set on the call is left untouched.
func BearerAuth(token string) fetcher.Interceptor {
	return fetcher.NewInterceptor("bearerAuth", fetcher.OrderFirst, func(e *exchange.Exchange) error {
		if e.Request.Header.Get("Authorization") == "" {
			e.Request.Header.Set("Authorization", "Bearer "+token)
		}
		return nil
	})
}
