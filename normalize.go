// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetcher

import (
	"encoding/json"
	"net/url"

	"github.com/Ahoo-Wang/fetcher-sub001/exchange"
)

const (
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json"
	contentTypeForm   = "application/x-www-form-urlencoded"
)

// normalizeBody returns the built-in body normalization interceptor.
// It converts the request's Body into its wire form (RawBody):
//
// • nil, string, []byte, json.RawMessage, io.Reader, and
// io.ReadCloser bodies pass through byte-for-byte with no
// content-type change;
//
// • url.Values bodies are form-encoded and the content type is set
// to application/x-www-form-urlencoded unless already set;
//
// • any other value is serialized to JSON and the content type is
// set to application/json unless already set.
func normalizeBody() Interceptor {
	return NewInterceptor(NameNormalizeBody, OrderNormalizeBody, func(e *exchange.Exchange) error {
		req := e.Request
		if req.RawBody != nil || req.Body == nil {
			return nil
		}
		if form, ok := req.Body.(url.Values); ok {
			req.RawBody = []byte(form.Encode())
			setDefaultContentType(req, contentTypeForm)
			return nil
		}
		raw, ok, err := exchange.RawBody(req.Body)
		if err != nil {
			return err
		}
		if ok {
			req.RawBody = raw
			return nil
		}
		b, err := json.Marshal(req.Body)
		if err != nil {
			return err
		}
		req.RawBody = b
		setDefaultContentType(req, contentTypeJSON)
		return nil
	})
}

func setDefaultContentType(req *exchange.Request, value string) {
	if req.Header.Get(contentTypeHeader) == "" {
		req.Header.Set(contentTypeHeader, value)
	}
}
