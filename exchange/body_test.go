// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package exchange

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawBody(t *testing.T) {
	t.Run("raw kinds", func(t *testing.T) {
		b, ok, err := RawBody(nil)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Nil(t, b)

		b, ok, err = RawBody("foo")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("foo"), b)

		src := []byte("bar")
		b, ok, err = RawBody(src)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, src, b)

		b, ok, err = RawBody(json.RawMessage(`{"a":1}`))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte(`{"a":1}`), b)

		b, ok, err = RawBody(strings.NewReader("baz"))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("baz"), b)

		b, ok, err = RawBody(io.NopCloser(bytes.NewReader(src)))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("bar"), b)
	})
	t.Run("structured kinds are not raw", func(t *testing.T) {
		_, ok, err := RawBody(map[string]any{"a": 1})
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = RawBody(struct{ A int }{A: 1})
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = RawBody(42)
		require.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("reader error", func(t *testing.T) {
		_, ok, err := RawBody(errReader{})
		assert.True(t, ok)
		assert.Error(t, err)
	})
	t.Run("close error", func(t *testing.T) {
		_, ok, err := RawBody(errCloser{Reader: strings.NewReader("x")})
		assert.True(t, ok)
		assert.Error(t, err)
	})
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("read error")
}

type errCloser struct {
	io.Reader
}

func (errCloser) Close() error {
	return errors.New("close error")
}
