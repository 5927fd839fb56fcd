// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetcher

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Ahoo-Wang/fetcher-sub001/exchange"
)

// A TimeoutError is returned by the terminal network call when the
// configured timeout expires before the transport settles.
type TimeoutError struct {
	// Request is the request whose exchange timed out.
	Request *exchange.Request
	// Duration is the timeout that was configured for the call. It is
	// zero when the deadline came from the caller's own context.
	Duration time.Duration
	// Cause is the underlying transport error, if any.
	Cause error
}

func (e *TimeoutError) Error() string {
	if e.Duration > 0 {
		return fmt.Sprintf("fetcher: %s %s timed out after %v", e.Request.Method, e.Request.URL, e.Duration)
	}
	return fmt.Sprintf("fetcher: %s %s timed out", e.Request.Method, e.Request.URL)
}

// Timeout reports true, marking the error as a timeout in the manner
// of net.Error.
func (e *TimeoutError) Timeout() bool {
	return true
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// A StatusError is returned by the status validation interceptor when
// the response status code fails the configured predicate. It carries
// the full exchange for diagnostics.
type StatusError struct {
	Exchange *exchange.Exchange
}

func (e *StatusError) Error() string {
	req := e.Exchange.Request
	return fmt.Sprintf("fetcher: %s %s returned unexpected status %d", req.Method, req.URL, e.Exchange.StatusCode())
}

// A PipelineError is the wrapper returned when an error survives the
// error phase unrecovered. It carries the full exchange, including
// the request, the response if one was received, and the originating
// error.
type PipelineError struct {
	// Phase is the phase in which the originating error was raised.
	Phase Phase
	// Exchange is the exchange that failed.
	Exchange *exchange.Exchange
	// Cause is the unrecovered error.
	Cause error
}

func (e *PipelineError) Error() string {
	req := e.Exchange.Request
	return fmt.Sprintf("fetcher: %s phase failed for %s %s: %v", strings.ToLower(e.Phase.Name()), req.Method, req.URL, e.Cause)
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// IsTimeout reports whether err, or any error it wraps, marks itself
// as a timeout via a Timeout() bool method. It covers both
// *TimeoutError and the *url.Error values produced by the standard
// transport.
func IsTimeout(err error) bool {
	var ht hasTimeout
	return errors.As(err, &ht) && ht.Timeout()
}

type hasTimeout interface {
	Timeout() bool
}

// urlErrorWrap wraps a transport error in *url.Error the way the
// standard HTTP client reports its failures, unless it already is
// one.
func urlErrorWrap(req *exchange.Request, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}
	return &url.Error{
		Op:  urlErrorOp(req.Method),
		URL: req.URL,
		Err: err,
	}
}

// urlErrorOp matches the Op strings used by net/http.
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
