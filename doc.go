// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package fetcher provides an HTTP client built around an extensible
exchange pipeline: ordered, named interceptors that shape the request,
validate the response, and recover from errors, wrapped around a
pluggable transport.

Create a Client to begin making requests.

	client := fetcher.New(
		fetcher.WithBaseURL("https://api.example.com"),
		fetcher.WithDefaultHeader("Accept", "application/json"),
		fetcher.WithTimeout(5*time.Second),
	)
	e, err := client.Get("/users/{id}",
		exchange.WithPathParam("id", 42),
		exchange.WithQueryParam("active", true),
	)
	...
	user, err := exchange.JSON[User](e)

Each call creates one Exchange which flows through three interceptor
registries. The request registry runs first, in ascending interceptor
order; it contains the built-in URL resolution, body normalization,
and terminal network call interceptors. The response registry runs
next and contains the built-in status validation interceptor. If any
interceptor fails, the error registry runs instead: its interceptors
may inspect the exchange and clear its error to recover the call, or
leave the error set, in which case the call fails with a
*PipelineError carrying the full exchange.

Custom interceptors plug into any registry:

	client.Registry(fetcher.PhaseRequest).Use(
		fetcher.NewInterceptor("sign", 0, func(e *exchange.Exchange) error {
			e.Request.Header.Set("X-Signature", sign(e.Request))
			return nil
		}))

The pipeline deliberately contains no retry loop. A retry policy, if
desired, belongs in an error interceptor that re-invokes the owning
client via the exchange's Client method.

Optional interceptors for logging, authentication, circuit breaking,
and tracing live in the intercept subpackage; URL template styles
live in the urltemplate subpackage.
*/
package fetcher
