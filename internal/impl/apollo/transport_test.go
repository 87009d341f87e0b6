package apollo

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type captureTransport struct {
	req *http.Request
}

func (t *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.req = req
	return &http.Response{StatusCode: http.StatusOK, Request: req}, nil
}

func TestIsBulkPath(t *testing.T) {
	assert.True(t, isBulkPath("/api/v1/accounts/bulk_update"))
	assert.True(t, isBulkPath("/api/v1/contacts/bulk_create"))
	assert.True(t, isBulkPath("/api/v1/people/bulk_match"))
	assert.False(t, isBulkPath("/api/v1/accounts/search"))
	assert.False(t, isBulkPath("/api/v1/people/match"))
}

func TestHeaderTransport_StampsRequest(t *testing.T) {
	capture := &captureTransport{}
	transport := newHeaderTransport(capture, "secret_key", zap.NewNop())

	req, err := http.NewRequest(http.MethodGet, "https://api.apollo.io/api/v1/labels", nil)
	assert.NoError(t, err)

	_, err = transport.RoundTrip(req)
	assert.NoError(t, err)

	assert.Equal(t, "secret_key", capture.req.Header.Get("x-api-key"))
	assert.Equal(t, "application/json", capture.req.Header.Get("accept"))
	assert.Equal(t, "no-cache", capture.req.Header.Get("Cache-Control"))
	assert.NotEmpty(t, capture.req.Header.Get("X-Request-Id"))
}

func TestHeaderTransport_FreshRequestIDPerCall(t *testing.T) {
	capture := &captureTransport{}
	transport := newHeaderTransport(capture, "secret_key", zap.NewNop())

	ids := make(map[string]bool)
	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest(http.MethodGet, "https://api.apollo.io/api/v1/labels", nil)
		_, err := transport.RoundTrip(req)
		assert.NoError(t, err)
		ids[capture.req.Header.Get("X-Request-Id")] = true
	}
	assert.Len(t, ids, 3)
}

func TestRateLimitTransport_SelectsBulkBucket(t *testing.T) {
	capture := &captureTransport{}
	// Bulk budget of 1/min: the first bulk call drains the bucket, the
	// second must block and gets cut off by the context deadline.
	transport := newRateLimitTransport(capture, 100, 1)

	bulkURL := &url.URL{Scheme: "https", Host: "api.apollo.io", Path: "/api/v1/accounts/bulk_update"}

	req := (&http.Request{Method: http.MethodPost, URL: bulkURL}).WithContext(context.Background())
	_, err := transport.RoundTrip(req)
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	req = (&http.Request{Method: http.MethodPost, URL: bulkURL}).WithContext(ctx)
	_, err = transport.RoundTrip(req)
	assert.Error(t, err)

	// The standard bucket is untouched by the drained bulk bucket.
	stdURL := &url.URL{Scheme: "https", Host: "api.apollo.io", Path: "/api/v1/accounts/search"}
	req = (&http.Request{Method: http.MethodGet, URL: stdURL}).WithContext(context.Background())
	_, err = transport.RoundTrip(req)
	assert.NoError(t, err)
}

func TestRateLimitTransport_CancelledContextNeverBlocks(t *testing.T) {
	capture := &captureTransport{}
	transport := newRateLimitTransport(capture, 1, 1)

	u := &url.URL{Scheme: "https", Host: "api.apollo.io", Path: "/api/v1/accounts/search"}
	req := (&http.Request{Method: http.MethodGet, URL: u}).WithContext(context.Background())
	_, err := transport.RoundTrip(req)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req = (&http.Request{Method: http.MethodGet, URL: u}).WithContext(ctx)

	start := time.Now()
	_, err = transport.RoundTrip(req)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}
