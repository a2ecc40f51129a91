// Package provider - Test tải ảnh qua HTTP với retry và probe.
package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"adcraft/internal/common"
	"adcraft/internal/utility"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testImageProvider tạo provider trỏ vào server test với retry nhanh
func testImageProvider(baseURL string, attempts int) *PollinationsImageProvider {
	return &PollinationsImageProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		retryCfg: utility.RetryConfig{
			MaxAttempts:    attempts,
			BaseDelay:      time.Millisecond,
			AttemptTimeout: 2 * time.Second,
		},
	}
}

func TestFetch_Success(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.RawQuery
		w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	p := testImageProvider(server.URL, 1)
	data, err := p.Fetch(context.Background(), "espresso on a table", 512, 768)
	require.NoError(t, err)

	assert.Equal(t, []byte("jpeg-bytes"), data)
	assert.Equal(t, "/prompt/espresso%20on%20a%20table", gotPath, "prompt phải được URL-encode trong path")
	assert.Equal(t, "width=512&height=768", gotQuery)
}

func TestFetch_RetriesThenSucceeds(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	p := testImageProvider(server.URL, 3)
	data, err := p.Fetch(context.Background(), "prompt", 512, 512)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "hai lần lỗi rồi thành công ở lần thứ ba")
}

func TestFetch_ExhaustedRetries_ProviderResponseError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p := testImageProvider(server.URL, 3)
	_, err := p.Fetch(context.Background(), "prompt", 512, 512)
	assert.ErrorIs(t, err, common.ErrProviderResponse)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "phải thử đủ số lần trước khi bỏ cuộc")
}

func TestFetch_EmptyBodyIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := testImageProvider(server.URL, 1)
	_, err := p.Fetch(context.Background(), "prompt", 512, 512)
	assert.ErrorIs(t, err, common.ErrProviderResponse)
}

func TestFetch_AttemptTimeout_ProviderTimeoutError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	p := &PollinationsImageProvider{
		baseURL:    server.URL,
		httpClient: &http.Client{},
		retryCfg: utility.RetryConfig{
			MaxAttempts:    1,
			BaseDelay:      time.Millisecond,
			AttemptTimeout: 50 * time.Millisecond,
		},
	}
	_, err := p.Fetch(context.Background(), "prompt", 512, 512)
	assert.ErrorIs(t, err, common.ErrProviderTimeout)
}

func TestProbe_ReportsLatency(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := testImageProvider(server.URL, 1)
	latency, err := p.Probe(context.Background(), 5*time.Second)
	require.NoError(t, err)
	assert.Greater(t, latency, time.Duration(0))
}

func TestProbe_ServerErrorReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p := testImageProvider(server.URL, 1)
	_, err := p.Probe(context.Background(), 5*time.Second)
	assert.Error(t, err)
}
