package utility

import (
	"context"
	"time"

	"adcraft/internal/logger"
)

// RetryConfig cấu hình cho việc retry một thao tác có timeout.
// Backoff tuyến tính: lần thử thứ n chờ n * BaseDelay trước khi thử lại.
type RetryConfig struct {
	MaxAttempts    int           // Tổng số lần thử (>= 1)
	BaseDelay      time.Duration // Delay cơ sở giữa các lần thử (tăng tuyến tính)
	AttemptTimeout time.Duration // Timeout cho mỗi lần thử (0 = không giới hạn)
}

// DefaultRetryConfig trả về cấu hình retry mặc định cho các provider call
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		BaseDelay:      2 * time.Second,
		AttemptTimeout: 30 * time.Second,
	}
}

// Retry thực hiện fn với retry theo cấu hình. Mỗi lần thử nhận một context con
// có timeout riêng. Dừng ngay khi fn thành công hoặc context cha bị hủy.
// Trả về lỗi của lần thử cuối cùng nếu tất cả đều thất bại.
func Retry(ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) error) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		// Kiểm tra context cha trước mỗi lần thử
		if err := ctx.Err(); err != nil {
			return err
		}

		attemptCtx := ctx
		var cancel context.CancelFunc
		if cfg.AttemptTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, cfg.AttemptTimeout)
		}

		lastErr = fn(attemptCtx)
		if cancel != nil {
			cancel()
		}

		if lastErr == nil {
			return nil
		}

		if attempt < cfg.MaxAttempts {
			delay := time.Duration(attempt) * cfg.BaseDelay
			logger.GetAppLogger().WithField("attempt", attempt).
				WithField("delay", delay.String()).
				WithField("error", lastErr.Error()).
				Warn("Thao tác thất bại, chờ retry")

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return lastErr
}
