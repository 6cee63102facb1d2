package breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bookshare/bookshare-service/pkg/breaker"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_Call(t *testing.T) {
	ok := func() error { return nil }
	fail := func() error { return errors.New("service error") }

	cb := breaker.New(10, 50*time.Millisecond, 0.5, 2)

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Call(ok))
	}

	// trip it: half the tail fails
	for i := 0; i < 5; i++ {
		require.Error(t, cb.Call(fail))
	}
	require.ErrorIs(t, cb.Call(ok), breaker.ErrOpen)

	// after the timeout the breaker half-opens and probes pass through
	time.Sleep(60 * time.Millisecond)
	require.NoError(t, cb.Call(ok))
	require.NoError(t, cb.Call(ok))
	require.NoError(t, cb.Call(ok))

	// fully closed again
	require.NoError(t, cb.Call(ok))
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	ok := func() error { return nil }
	fail := func() error { return errors.New("service error") }

	cb := breaker.New(4, 50*time.Millisecond, 0.5, 2)

	require.Error(t, cb.Call(fail))
	require.Error(t, cb.Call(fail))
	require.ErrorIs(t, cb.Call(ok), breaker.ErrOpen)

	time.Sleep(60 * time.Millisecond)
	require.Error(t, cb.Call(fail))
	require.ErrorIs(t, cb.Call(ok), breaker.ErrOpen)
}

func TestCircuitBreaker_Reset(t *testing.T) {
	fail := func() error { return errors.New("service error") }

	cb := breaker.New(4, time.Hour, 0.5, 2)
	require.Error(t, cb.Call(fail))
	require.Error(t, cb.Call(fail))
	require.ErrorIs(t, cb.Call(fail), breaker.ErrOpen)

	cb.Reset()
	require.NoError(t, cb.Call(func() error { return nil }))
}
