// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package intercept

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touchyBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "test",
		Timeout: time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 1
		},
	})
}

func TestNewBreaker(t *testing.T) {
	assert.Panics(t, func() { NewBreaker(nil) })
	assert.NotNil(t, NewBreaker(touchyBreaker()))
}

func TestBreaker_AdmitsWhileClosed(t *testing.T) {
	b := NewBreaker(touchyBreaker())
	e := newExchange(t)
	assert.NoError(t, b.Request().Intercept(e))
	assert.NoError(t, b.Response().Intercept(e))
	assert.NoError(t, b.Request().Intercept(e))
}

func TestBreaker_OpensAfterFailure(t *testing.T) {
	b := NewBreaker(touchyBreaker())

	failed := newExchange(t)
	failed.Err = errors.New("connection refused")
	require.NoError(t, b.Error().Intercept(failed))
	// Observing the failure must not recover the exchange.
	assert.Error(t, failed.Err)

	next := newExchange(t)
	assert.ErrorIs(t, b.Request().Intercept(next), ErrBreakerOpen)
}

func TestBreaker_RejectionNotCounted(t *testing.T) {
	cb := touchyBreaker()
	b := NewBreaker(cb)

	rejected := newExchange(t)
	rejected.Err = ErrBreakerOpen
	require.NoError(t, b.Error().Intercept(rejected))
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestBreaker_SuccessResetsFailures(t *testing.T) {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "test",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 2
		},
	})
	b := NewBreaker(cb)

	failed := newExchange(t)
	failed.Err = errors.New("flaky")
	require.NoError(t, b.Error().Intercept(failed))
	require.NoError(t, b.Response().Intercept(newExchange(t)))
	require.NoError(t, b.Error().Intercept(failed))

	// One success between two failures keeps the circuit closed.
	assert.Equal(t, gobreaker.StateClosed, cb.State())
	assert.NoError(t, b.Request().Intercept(newExchange(t)))
}
