// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package intercept

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fetcher "github.com/Ahoo-Wang/fetcher-sub001"
)

func TestTracing(t *testing.T) {
	tracing := NewTracing(nil)

	t.Run("success clears the span handle", func(t *testing.T) {
		client := fetcher.New(fetcher.WithHTTPDoer(statusDoer(200)))
		tracing.Register(client)

		e, err := client.Get("http://t.local/x")
		require.NoError(t, err)
		_, ok := e.Value(spanAttr)
		assert.False(t, ok)
	})

	t.Run("failure clears the span handle", func(t *testing.T) {
		client := fetcher.New(fetcher.WithHTTPDoer(statusDoer(500)))
		tracing.Register(client)

		e, err := client.Get("http://t.local/x")
		require.Error(t, err)
		require.NotNil(t, e)
		_, ok := e.Value(spanAttr)
		assert.False(t, ok)
	})
}
