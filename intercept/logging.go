// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package intercept

import (
	"log/slog"
	"time"

	fetcher "github.com/Ahoo-Wang/fetcher-sub001"
	"github.com/Ahoo-Wang/fetcher-sub001/exchange"
)

const startAttr = "intercept.logging.start"

// Logging registers request, response, and error logging interceptors
// on the client. Lines are keyed by the exchange ID so the request,
// its response, and any error correlate.
//
// The request interceptor runs at order 0, after URL resolution, so
// the logged URL is the final resolved one. The error interceptor
// never recovers the exchange; it observes and leaves the error set.
func Logging(c *fetcher.Client, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	c.Registry(fetcher.PhaseRequest).Use(logRequest(logger))
	c.Registry(fetcher.PhaseResponse).Use(logResponse(logger))
	c.Registry(fetcher.PhaseError).Use(logError(logger))
}

func logRequest(logger *slog.Logger) fetcher.Interceptor {
	return fetcher.NewInterceptor("logRequest", 0, func(e *exchange.Exchange) error {
		e.Set(startAttr, time.Now())
		logger.Info("exchange started",
			slog.String("id", e.ID),
			slog.String("method", e.Request.Method),
			slog.String("url", e.Request.URL),
		)
		return nil
	})
}

func logResponse(logger *slog.Logger) fetcher.Interceptor {
	return fetcher.NewInterceptor("logResponse", fetcher.OrderLast, func(e *exchange.Exchange) error {
		logger.Info("exchange completed",
			slog.String("id", e.ID),
			slog.Int("status", e.StatusCode()),
			slog.Duration("duration", sinceStart(e)),
		)
		return nil
	})
}

func logError(logger *slog.Logger) fetcher.Interceptor {
	return fetcher.NewInterceptor("logError", fetcher.OrderFirst, func(e *exchange.Exchange) error {
		logger.Error("exchange failed",
			slog.String("id", e.ID),
			slog.String("method", e.Request.Method),
			slog.String("url", e.Request.URL),
			slog.Duration("duration", sinceStart(e)),
			slog.Any("error", e.Err),
		)
		return nil
	})
}

func sinceStart(e *exchange.Exchange) time.Duration {
	if v, ok := e.Value(startAttr); ok {
		if start, ok := v.(time.Time); ok {
			return time.Since(start)
		}
	}
	return 0
}
