package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	ctx := context.Background()

	t.Run("uncontended lock runs the code", func(t *testing.T) {
		ran := false
		ok, err := WithDelay(ctx, "key-a", 0, func() error {
			ran = true
			return nil
		})
		require.NoError(t, err)
		require.True(t, ok)
		require.True(t, ran)
	})

	t.Run("held lock with zero wait is skipped", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = WithDelay(ctx, "key-b", 0, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started

		ran := false
		ok, err := WithDelay(ctx, "key-b", 0, func() error {
			ran = true
			return nil
		})
		require.NoError(t, err)
		require.False(t, ok)
		require.False(t, ran)

		close(release)
		<-done
	})

	t.Run("zero wait returns without any retry sleep", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = WithDelay(ctx, "key-f", 0, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started

		begin := time.Now()
		ok, err := WithDelay(ctx, "key-f", 0, func() error { return nil })
		require.NoError(t, err)
		require.False(t, ok)
		require.Less(t, time.Since(begin), 40*time.Millisecond)

		close(release)
		<-done
	})

	t.Run("lock is released after the code returns", func(t *testing.T) {
		_, err := WithDelay(ctx, "key-c", 0, func() error { return nil })
		require.NoError(t, err)

		ok, err := WithDelay(ctx, "key-c", 0, func() error { return nil })
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("waiting caller gets the lock once freed", func(t *testing.T) {
		started := make(chan struct{})
		go func() {
			_, _ = WithDelay(ctx, "key-d", 0, func() error {
				close(started)
				time.Sleep(100 * time.Millisecond)
				return nil
			})
		}()
		<-started

		ok, err := WithDelay(ctx, "key-d", time.Second, func() error { return nil })
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("error from the code is passed through", func(t *testing.T) {
		wantErr := context.DeadlineExceeded
		ok, err := WithDelay(ctx, "key-e", 0, func() error { return wantErr })
		require.True(t, ok)
		require.ErrorIs(t, err, wantErr)
	})
}
