package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"adcraft/internal/common"
	"adcraft/internal/utility"

	"github.com/sirupsen/logrus"
)

// PollinationsImageProvider tải ảnh từ Pollinations: GET theo prompt đã
// URL-encode, kèm width/height. Mỗi lần gọi có timeout riêng, retry với
// backoff tuyến tính qua utility.Retry.
type PollinationsImageProvider struct {
	baseURL    string
	httpClient *http.Client
	retryCfg   utility.RetryConfig
}

// NewPollinationsImageProvider tạo mới provider với timeout mỗi lần gọi (giây)
// và số lần retry khi thất bại.
func NewPollinationsImageProvider(baseURL string, fetchTimeoutSec, retries int) *PollinationsImageProvider {
	if fetchTimeoutSec <= 0 {
		fetchTimeoutSec = 30
	}
	return &PollinationsImageProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		retryCfg: utility.RetryConfig{
			MaxAttempts:    retries + 1,
			BaseDelay:      2 * time.Second,
			AttemptTimeout: time.Duration(fetchTimeoutSec) * time.Second,
		},
	}
}

// Fetch tải ảnh theo prompt. Non-2xx là lỗi mang status code;
// hết retry vì timeout map về ErrProviderTimeout, còn lại ErrProviderResponse.
func (p *PollinationsImageProvider) Fetch(ctx context.Context, prompt string, width, height int) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/prompt/%s?width=%d&height=%d",
		p.baseURL, url.PathEscape(prompt), width, height)

	var data []byte
	err := utility.Retry(ctx, p.retryCfg, func(attemptCtx context.Context) error {
		req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}

		resp, err := p.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("image provider trả về status %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if len(body) == 0 {
			return errors.New("image provider trả về body rỗng")
		}

		data = body
		return nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"endpoint": p.baseURL,
			"width":    width,
			"height":   height,
			"error":    err,
		}).Error("Tải ảnh từ image provider thất bại")
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, common.ErrProviderTimeout
		}
		return nil, common.ErrProviderResponse
	}

	return data, nil
}

// Probe gửi HEAD request kiểm tra provider còn sống (dùng cho status endpoint).
func (p *PollinationsImageProvider) Probe(ctx context.Context, timeout time.Duration) (time.Duration, error) {
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	req, err := http.NewRequestWithContext(probeCtx, http.MethodHead, p.baseURL, nil)
	if err != nil {
		return 0, err
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return time.Since(start), err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return time.Since(start), fmt.Errorf("image provider trả về status %d", resp.StatusCode)
	}
	return time.Since(start), nil
}
