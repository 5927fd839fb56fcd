// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package exchange

import (
	"encoding/json"
	"errors"
)

// ErrNotExchanged is returned when a result is requested from an
// exchange that has neither a response nor an error, i.e. before its
// pipeline run reached the terminal stage.
var ErrNotExchanged = errors.New("exchange: no response or error available yet")

// An Extractor converts a completed Exchange into the caller-visible
// value of the call. Extractors are selected per call with
// WithExtractor; the client supplies a default when none is selected.
type Extractor func(e *Exchange) (any, error)

// ExtractExchange returns the exchange itself. It is the default for
// low-level calls.
func ExtractExchange(e *Exchange) (any, error) {
	return e, nil
}

// ExtractResponse returns the *http.Response. It is the default for
// the convenience verbs.
func ExtractResponse(e *Exchange) (any, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	return e.Response, nil
}

// ExtractBytes returns the buffered response body.
func ExtractBytes(e *Exchange) (any, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	return e.Body, nil
}

// ExtractText returns the buffered response body as a string.
func ExtractText(e *Exchange) (any, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	return string(e.Body), nil
}

// ExtractJSON unmarshals the buffered response body into a generic
// value (map, slice, string, number, bool, or nil).
func ExtractJSON(e *Exchange) (any, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	var v any
	if err := json.Unmarshal(e.Body, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Text returns the buffered response body as a string. It returns
// ErrNotExchanged before the exchange settles, and the exchange error
// if one is set.
func (e *Exchange) Text() (string, error) {
	b, err := e.Bytes()
	return string(b), err
}

// Bytes returns the buffered response body. It returns
// ErrNotExchanged before the exchange settles, and the exchange error
// if one is set.
func (e *Exchange) Bytes() ([]byte, error) {
	if !e.Settled() {
		return nil, ErrNotExchanged
	}
	if e.Err != nil {
		return nil, e.Err
	}
	return e.Body, nil
}

// JSON unmarshals the buffered response body of a completed exchange
// into a value of type T.
func JSON[T any](e *Exchange) (T, error) {
	var v T
	b, err := e.Bytes()
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, err
	}
	return v, nil
}
