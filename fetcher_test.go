// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetcher

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahoo-Wang/fetcher-sub001/exchange"
)

// doerFunc adapts a function to HTTPDoer, in the manner of
// http.HandlerFunc.
type doerFunc func(r *http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) {
	return f(r)
}

func okDoer(status int, body string) doerFunc {
	return func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Status:     http.StatusText(status),
			Header:     make(http.Header),
			Body:       io.NopCloser(strings.NewReader(body)),
			Request:    r,
		}, nil
	}
}

func TestMergeHeaders(t *testing.T) {
	t.Run("right-biased on collision", func(t *testing.T) {
		def := http.Header{"A": {"1"}}
		call := http.Header{"A": {"2"}, "B": {"3"}}
		merged := MergeHeaders(def, call)
		assert.Equal(t, http.Header{"A": {"2"}, "B": {"3"}}, merged)
	})
	t.Run("inputs not modified", func(t *testing.T) {
		def := http.Header{"A": {"1"}}
		call := http.Header{"A": {"2"}}
		merged := MergeHeaders(def, call)
		merged.Set("A", "changed")
		merged.Set("C", "new")
		assert.Equal(t, http.Header{"A": {"1"}}, def)
		assert.Equal(t, http.Header{"A": {"2"}}, call)
	})
	t.Run("canonicalizes keys", func(t *testing.T) {
		merged := MergeHeaders(http.Header{"x-trace": {"a"}}, http.Header{"content-type": {"b"}})
		assert.Equal(t, "a", merged.Get("X-Trace"))
		assert.Equal(t, "b", merged.Get("Content-Type"))
	})
	t.Run("empty inputs", func(t *testing.T) {
		assert.Empty(t, MergeHeaders(nil, nil))
	})
}

func TestResolveTimeout(t *testing.T) {
	testCases := []struct {
		name     string
		call     time.Duration
		def      time.Duration
		expected time.Duration
	}{
		{"call wins over default", 3 * time.Second, 5 * time.Second, 3 * time.Second},
		{"default applies when call unset", 0, 5 * time.Second, 5 * time.Second},
		{"both unset means none", 0, 0, 0},
		{"call alone", 250 * time.Millisecond, 0, 250 * time.Millisecond},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, ResolveTimeout(testCase.call, testCase.def))
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	c := New()
	assert.Empty(t, c.BaseURL())
	assert.Equal(t, []string{NameResolveURL, NameNormalizeBody, NameExchangeCall},
		c.Registry(PhaseRequest).Names())
	assert.Equal(t, []string{NameValidateStatus}, c.Registry(PhaseResponse).Names())
	assert.Zero(t, c.Registry(PhaseError).Len())
	assert.True(t, c.validate(200))
	assert.True(t, c.validate(204))
	assert.False(t, c.validate(199))
	assert.False(t, c.validate(300))
}

func TestNew_InterceptorOptions(t *testing.T) {
	var trace []string
	c := New(
		WithRequestInterceptor(markerInterceptor("custom", OrderExchangeCall+1, &trace)),
		WithResponseInterceptor(markerInterceptor("afterValidate", 10, &trace)),
		WithErrorInterceptor(markerInterceptor("onError", 0, &trace)),
	)
	assert.Contains(t, c.Registry(PhaseRequest).Names(), "custom")
	assert.Equal(t, []string{NameValidateStatus, "afterValidate"}, c.Registry(PhaseResponse).Names())
	assert.Equal(t, []string{"onError"}, c.Registry(PhaseError).Names())
}

func TestClient_Do(t *testing.T) {
	c := New(
		WithHTTPDoer(okDoer(200, `{"name":"ok"}`)),
		WithDefaultHeader("X-Default", "yes"),
	)
	req, err := exchange.NewRequest("GET", "http://test.local/a", nil)
	require.NoError(t, err)
	e, err := c.Do(req)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, 200, e.StatusCode())
	assert.Equal(t, []byte(`{"name":"ok"}`), e.Body)
	assert.True(t, e.Settled())
	assert.Equal(t, "yes", e.Request.Header.Get("X-Default"))
	assert.Same(t, c, e.Client())

	t.Run("default extractor returns the exchange", func(t *testing.T) {
		v, err := e.Result()
		require.NoError(t, err)
		assert.Same(t, e, v)
	})

	t.Run("nil request panics", func(t *testing.T) {
		assert.Panics(t, func() { _, _ = c.Do(nil) })
	})
}

func TestClient_Do_HeaderPrecedence(t *testing.T) {
	var seen http.Header
	c := New(
		WithHTTPDoer(doerFunc(func(r *http.Request) (*http.Response, error) {
			seen = r.Header
			return okDoer(200, "")(r)
		})),
		WithDefaultHeader("X-Default", "default"),
		WithDefaultHeader("X-Shared", "default"),
	)
	_, err := c.Get("http://test.local/a",
		exchange.WithHeader("X-Shared", "call"),
		exchange.WithHeader("X-Call", "call"),
	)
	require.NoError(t, err)
	assert.Equal(t, "default", seen.Get("X-Default"))
	assert.Equal(t, "call", seen.Get("X-Shared"))
	assert.Equal(t, "call", seen.Get("X-Call"))
}

func TestClient_Verbs(t *testing.T) {
	testCases := []struct {
		method string
		call   func(c *Client) (*exchange.Exchange, error)
	}{
		{http.MethodGet, func(c *Client) (*exchange.Exchange, error) { return c.Get("http://t.local/x") }},
		{http.MethodHead, func(c *Client) (*exchange.Exchange, error) { return c.Head("http://t.local/x") }},
		{http.MethodPost, func(c *Client) (*exchange.Exchange, error) { return c.Post("http://t.local/x", "b") }},
		{http.MethodPut, func(c *Client) (*exchange.Exchange, error) { return c.Put("http://t.local/x", "b") }},
		{http.MethodPatch, func(c *Client) (*exchange.Exchange, error) { return c.Patch("http://t.local/x", "b") }},
		{http.MethodDelete, func(c *Client) (*exchange.Exchange, error) { return c.Delete("http://t.local/x") }},
		{http.MethodOptions, func(c *Client) (*exchange.Exchange, error) { return c.Options("http://t.local/x") }},
		{http.MethodTrace, func(c *Client) (*exchange.Exchange, error) { return c.Trace("http://t.local/x") }},
	}
	for _, testCase := range testCases {
		t.Run(testCase.method, func(t *testing.T) {
			var method string
			c := New(WithHTTPDoer(doerFunc(func(r *http.Request) (*http.Response, error) {
				method = r.Method
				return okDoer(200, "")(r)
			})))
			e, err := testCase.call(c)
			require.NoError(t, err)
			assert.Equal(t, testCase.method, method)

			// Verbs default to extracting the transport response.
			v, err := e.Result()
			require.NoError(t, err)
			assert.Same(t, e.Response, v)
		})
	}
}

func TestClient_PostForm(t *testing.T) {
	var body []byte
	var contentType string
	c := New(WithHTTPDoer(doerFunc(func(r *http.Request) (*http.Response, error) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		body = b
		contentType = r.Header.Get("Content-Type")
		return okDoer(200, "")(r)
	})))
	_, err := c.PostForm("http://t.local/x", map[string][]string{"a": {"1"}, "b": {"2"}})
	require.NoError(t, err)
	assert.Equal(t, "a=1&b=2", string(body))
	assert.Equal(t, "application/x-www-form-urlencoded", contentType)
}

func TestClient_CallExtractor(t *testing.T) {
	c := New(WithHTTPDoer(okDoer(200, "hello")))
	e, err := c.Get("http://t.local/x", exchange.WithExtractor(exchange.ExtractText))
	require.NoError(t, err)
	v, err := e.Result()
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestClient_Run_Recovery(t *testing.T) {
	t.Run("error interceptor recovers the exchange", func(t *testing.T) {
		c := New(
			WithHTTPDoer(okDoer(500, "upstream broke")),
			WithErrorInterceptor(NewInterceptor("recover", 0, func(e *exchange.Exchange) error {
				var statusErr *StatusError
				if errors.As(e.Err, &statusErr) {
					e.Err = nil
				}
				return nil
			})),
		)
		e, err := c.Get("http://t.local/x")
		require.NoError(t, err)
		assert.NoError(t, e.Err)
		assert.Equal(t, 500, e.StatusCode())
	})

	t.Run("unrecovered error wraps the cause", func(t *testing.T) {
		var observed error
		c := New(
			WithHTTPDoer(okDoer(500, "")),
			WithErrorInterceptor(NewInterceptor("observe", 0, func(e *exchange.Exchange) error {
				observed = e.Err
				return nil
			})),
		)
		e, err := c.Get("http://t.local/x")
		require.Error(t, err)
		require.NotNil(t, e)

		var pipelineErr *PipelineError
		require.ErrorAs(t, err, &pipelineErr)
		assert.Equal(t, PhaseResponse, pipelineErr.Phase)
		assert.Same(t, e, pipelineErr.Exchange)

		var statusErr *StatusError
		assert.ErrorAs(t, err, &statusErr)
		assert.ErrorIs(t, err, observed)
		assert.Same(t, e.Err, pipelineErr.Cause)
	})

	t.Run("error interceptor failure replaces the cause", func(t *testing.T) {
		replacement := errors.New("replacement")
		c := New(
			WithHTTPDoer(okDoer(500, "")),
			WithErrorInterceptor(NewInterceptor("fail", 0, func(e *exchange.Exchange) error {
				return replacement
			})),
		)
		_, err := c.Get("http://t.local/x")
		require.Error(t, err)
		assert.ErrorIs(t, err, replacement)
		var statusErr *StatusError
		assert.False(t, errors.As(err, &statusErr))
	})

	t.Run("request phase failure tags the phase", func(t *testing.T) {
		boom := errors.New("boom")
		c := New(
			WithHTTPDoer(okDoer(200, "")),
			WithRequestInterceptor(NewInterceptor("fail", 0, func(e *exchange.Exchange) error {
				return boom
			})),
		)
		_, err := c.Get("http://t.local/x")
		var pipelineErr *PipelineError
		require.ErrorAs(t, err, &pipelineErr)
		assert.Equal(t, PhaseRequest, pipelineErr.Phase)
		assert.ErrorIs(t, err, boom)
	})
}

func TestClient_ValidateStatus(t *testing.T) {
	t.Run("custom predicate", func(t *testing.T) {
		c := New(
			WithHTTPDoer(okDoer(404, "")),
			WithValidateStatus(func(statusCode int) bool { return statusCode == 404 }),
		)
		_, err := c.Get("http://t.local/x")
		assert.NoError(t, err)
	})
	t.Run("ejecting the built-in disables validation", func(t *testing.T) {
		c := New(WithHTTPDoer(okDoer(500, "")))
		require.True(t, c.Registry(PhaseResponse).Eject(NameValidateStatus))
		_, err := c.Get("http://t.local/x")
		assert.NoError(t, err)
	})
}

func TestClient_ObserverAfterExchangeCall(t *testing.T) {
	// An interceptor ordered after the terminal call sees the
	// populated response inside the request phase.
	var status int
	c := New(
		WithHTTPDoer(okDoer(201, "made")),
		WithRequestInterceptor(NewInterceptor("observe", OrderExchangeCall+1, func(e *exchange.Exchange) error {
			status = e.StatusCode()
			return nil
		})),
	)
	_, err := c.Get("http://t.local/x")
	require.NoError(t, err)
	assert.Equal(t, 201, status)
}
