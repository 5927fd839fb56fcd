// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package intercept

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	fetcher "github.com/Ahoo-Wang/fetcher-sub001"
	"github.com/Ahoo-Wang/fetcher-sub001/exchange"
)

const spanAttr = "intercept.tracing.span"

// A Tracing wires an OpenTelemetry span around each exchange. The
// request interceptor starts a span and rebinds the request context
// to it; the response and error interceptors end it with the
// exchange's outcome. The span handle travels through the exchange
// attribute bag.
type Tracing struct {
	tracer trace.Tracer
}

// NewTracing creates a Tracing using the given tracer provider. A nil
// provider falls back to the global one.
func NewTracing(tp trace.TracerProvider) *Tracing {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Tracing{
		tracer: tp.Tracer("github.com/Ahoo-Wang/fetcher-sub001/intercept"),
	}
}

// Register installs the tracing interceptors on the client.
func (t *Tracing) Register(c *fetcher.Client) {
	c.Registry(fetcher.PhaseRequest).Use(t.Request())
	c.Registry(fetcher.PhaseResponse).Use(t.Response())
	c.Registry(fetcher.PhaseError).Use(t.Error())
}

// Request returns the request-phase interceptor. It runs after URL
// resolution so the span records the final URL.
func (t *Tracing) Request() fetcher.Interceptor {
	return fetcher.NewInterceptor("traceStart", 0, func(e *exchange.Exchange) error {
		req := e.Request
		ctx, span := t.tracer.Start(req.Context(), req.Method,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("http.request.method", req.Method),
				attribute.String("url.full", req.URL),
				attribute.String("exchange.id", e.ID),
			),
		)
		e.Request = req.WithContext(ctx)
		e.Set(spanAttr, span)
		return nil
	})
}

// Response returns the response-phase interceptor, which ends the
// span with the response status.
func (t *Tracing) Response() fetcher.Interceptor {
	return fetcher.NewInterceptor("traceEnd", fetcher.OrderLast, func(e *exchange.Exchange) error {
		span, ok := spanOf(e)
		if !ok {
			return nil
		}
		span.SetAttributes(attribute.Int("http.response.status_code", e.StatusCode()))
		span.SetStatus(codes.Ok, "")
		span.End()
		e.Delete(spanAttr)
		return nil
	})
}

// Error returns the error-phase interceptor, which records the
// exchange error on the span and ends it. The exchange error is left
// untouched.
func (t *Tracing) Error() fetcher.Interceptor {
	return fetcher.NewInterceptor("traceEnd", fetcher.OrderLast, func(e *exchange.Exchange) error {
		span, ok := spanOf(e)
		if !ok {
			return nil
		}
		if e.Err != nil {
			span.RecordError(e.Err)
			span.SetStatus(codes.Error, e.Err.Error())
		}
		span.End()
		e.Delete(spanAttr)
		return nil
	})
}

func spanOf(e *exchange.Exchange) (trace.Span, bool) {
	v, ok := e.Value(spanAttr)
	if !ok {
		return nil, false
	}
	span, ok := v.(trace.Span)
	return span, ok
}
