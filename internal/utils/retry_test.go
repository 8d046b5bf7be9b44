package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry(t *testing.T) {
	t.Parallel()

	t.Run("first try succeeds", func(t *testing.T) {
		calls := 0
		err := Retry(3, time.Millisecond, func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		err := Retry(3, time.Millisecond, func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns the last error after exhausting attempts", func(t *testing.T) {
		calls := 0
		wantErr := errors.New("still failing")
		err := Retry(3, time.Millisecond, func() error {
			calls++
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("non-positive attempts still runs once", func(t *testing.T) {
		calls := 0
		_ = Retry(0, time.Millisecond, func() error {
			calls++
			return errors.New("x")
		})
		assert.Equal(t, 1, calls)
	})
}
