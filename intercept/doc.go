// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package intercept provides optional interceptors for the exchange
pipeline: structured logging, bearer authentication, circuit
breaking, and tracing.

None of these are registered by default. Each exposes a Register
function (or a constructor returning phase-specific interceptors)
that installs it on a fetcher.Client:

	client := fetcher.New(fetcher.WithBaseURL(base))
	intercept.Logging(client, slog.Default())
	client.Registry(fetcher.PhaseRequest).Use(
		intercept.BearerAuth(token))
*/
package intercept
