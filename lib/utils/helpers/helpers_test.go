package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseProviderTime(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		got, ok := ParseProviderTime("2025-05-21T10:30:00Z")
		require.True(t, ok)
		require.Equal(t, time.Date(2025, 5, 21, 10, 30, 0, 0, time.UTC), got)
	})

	t.Run("offset without colon", func(t *testing.T) {
		got, ok := ParseProviderTime("2025-05-21T10:30:00-0300")
		require.True(t, ok)
		require.Equal(t, 21, got.Day())
	})

	t.Run("date only", func(t *testing.T) {
		got, ok := ParseProviderTime("2025-05-21")
		require.True(t, ok)
		require.Equal(t, time.Date(2025, 5, 21, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := ParseProviderTime("")
		require.False(t, ok)
	})

	t.Run("garbage", func(t *testing.T) {
		_, ok := ParseProviderTime("two days ago")
		require.False(t, ok)
	})
}

func TestIsContextDone(t *testing.T) {
	require.False(t, IsContextDone(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.True(t, IsContextDone(ctx))

	require.True(t, IsContextDone(nil))
}
