// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package exchange contains the per-call state of the HTTP pipeline:
the Request descriptor the caller assembles, and the Exchange record
that flows through the interceptor chain.

A Request describes one logical HTTP call: method, URL template,
path and query parameters, headers, body, and timeout. It is mutable
until the terminal interceptor consumes it.

An Exchange is created by the client for exactly one call. It carries
the Request, the eventual *http.Response with its fully-buffered body,
the current error (if any), and a string-keyed attribute bag that
interceptors use to communicate with one another. An Exchange is owned
by the goroutine driving the call and is never shared across calls.
*/
package exchange
