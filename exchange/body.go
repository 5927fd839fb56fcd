// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package exchange

import (
	"encoding/json"
	"io"
)

// RawBody converts a raw body kind to its wire form.
//
// The conversion logic is:
//
// • If body is nil, a nil byte slice is returned with ok true.
//
// • If body is a []byte or json.RawMessage, the bytes themselves are
// returned with ok true.
//
// • If body is a string, the built-in conversion to a byte slice is
// returned with ok true.
//
// • If body is an io.Reader or io.ReadCloser, the result of reading
// the whole contents (and closing, if it implements Closer) is
// returned with ok true. A read or close error is returned as err.
//
// • Any other type is not a raw body kind: ok is false, and the
// caller (normally the body normalization interceptor) is expected
// to serialize it instead.
func RawBody(body any) (b []byte, ok bool, err error) {
	switch x := body.(type) {
	case nil:
		return nil, true, nil
	case string:
		return []byte(x), true, nil
	case []byte:
		return x, true, nil
	case json.RawMessage:
		return x, true, nil
	case io.ReadCloser:
		b, err = io.ReadAll(x)
		if err2 := x.Close(); err == nil {
			err = err2
		}
		if err != nil {
			return nil, true, err
		}
		return b, true, nil
	case io.Reader:
		b, err = io.ReadAll(x)
		if err != nil {
			return nil, true, err
		}
		return b, true, nil
	default:
		return nil, false, nil
	}
}
