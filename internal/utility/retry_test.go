// Package utility - Test helper retry với backoff tuyến tính.
package utility

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond}, func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "thành công ngay thì không retry")
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond}, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("tạm thời")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_ExhaustsAttempts_ReturnsLastError(t *testing.T) {
	lastErr := errors.New("lỗi lần cuối")
	calls := 0
	err := Retry(context.Background(), RetryConfig{MaxAttempts: 4, BaseDelay: time.Millisecond}, func(ctx context.Context) error {
		calls++
		if calls == 4 {
			return lastErr
		}
		return errors.New("lỗi trước đó")
	})
	assert.Equal(t, 4, calls, "phải thử đúng MaxAttempts lần")
	assert.Equal(t, lastErr, err, "trả về lỗi của lần thử cuối")
}

func TestRetry_ZeroAttemptsNormalizedToOne(t *testing.T) {
	calls := 0
	Retry(context.Background(), RetryConfig{MaxAttempts: 0}, func(ctx context.Context) error {
		calls++
		return errors.New("fail")
	})
	assert.Equal(t, 1, calls)
}

func TestRetry_ParentContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Retry(ctx, RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond}, func(ctx context.Context) error {
		calls++
		return errors.New("fail")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls, "context đã hủy thì không thử lần nào")
}

func TestRetry_CancelDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	done := make(chan error, 1)
	go func() {
		done <- Retry(ctx, RetryConfig{MaxAttempts: 5, BaseDelay: time.Hour}, func(ctx context.Context) error {
			calls++
			return errors.New("fail")
		})
	}()

	// Chờ lần thử đầu tiên rồi hủy trong lúc đang backoff
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls, "hủy trong backoff thì dừng ngay, không thử tiếp")
	case <-time.After(5 * time.Second):
		t.Fatal("Retry không dừng sau khi context bị hủy")
	}
}

func TestRetry_AttemptTimeoutPropagated(t *testing.T) {
	var sawDeadline bool
	err := Retry(context.Background(), RetryConfig{MaxAttempts: 1, AttemptTimeout: 10 * time.Millisecond}, func(ctx context.Context) error {
		_, sawDeadline = ctx.Deadline()
		<-ctx.Done()
		return ctx.Err()
	})
	assert.True(t, sawDeadline, "mỗi lần thử phải nhận context con có deadline")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
