package apollo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"apollomcp/internal/domain/errors"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the Apollo.io REST API root.
	DefaultBaseURL = "https://api.apollo.io/api/v1"

	defaultTimeout = 60 * time.Second

	// maxPerPage is Apollo's ceiling for search page sizes.
	maxPerPage = 100

	// maxBulkRecords is Apollo's ceiling for bulk create/update calls.
	maxBulkRecords = 100
)

// Client talks to the Apollo.io REST API. All calls are synchronous and
// carry no retry logic; callers wanting retries wrap the client. Rate
// limiting is applied as a transport decorator, see transport.go.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

type clientSettings struct {
	baseURL        string
	timeout        time.Duration
	transport      http.RoundTripper
	rateLimiting   bool
	standardPerMin int
	bulkPerMin     int
}

// Option adjusts client construction.
type Option func(*clientSettings)

// WithBaseURL points the client at a different API root, typically a
// test server.
func WithBaseURL(baseURL string) Option {
	return func(s *clientSettings) {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *clientSettings) {
		s.timeout = timeout
	}
}

// WithTransport replaces the underlying round tripper. The api-key and
// rate-limit decorators still wrap it.
func WithTransport(rt http.RoundTripper) Option {
	return func(s *clientSettings) {
		s.transport = rt
	}
}

// WithRateLimits overrides the per-minute request budgets for standard
// and bulk endpoints.
func WithRateLimits(standardPerMinute, bulkPerMinute int) Option {
	return func(s *clientSettings) {
		s.standardPerMin = standardPerMinute
		s.bulkPerMin = bulkPerMinute
	}
}

// WithoutRateLimiting disables client-side rate limiting entirely.
func WithoutRateLimiting() Option {
	return func(s *clientSettings) {
		s.rateLimiting = false
	}
}

// NewClient creates an Apollo API client. The api key is required; every
// other knob has a default.
func NewClient(apiKey string, logger *zap.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("apiKey cannot be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	settings := &clientSettings{
		baseURL:        DefaultBaseURL,
		timeout:        defaultTimeout,
		transport:      http.DefaultTransport,
		rateLimiting:   true,
		standardPerMin: defaultStandardPerMinute,
		bulkPerMin:     defaultBulkPerMinute,
	}
	for _, opt := range opts {
		opt(settings)
	}

	rt := settings.transport
	if settings.rateLimiting {
		rt = newRateLimitTransport(rt, settings.standardPerMin, settings.bulkPerMin)
	}
	rt = newHeaderTransport(rt, apiKey, logger)

	return &Client{
		baseURL: settings.baseURL,
		httpClient: &http.Client{
			Timeout:   settings.timeout,
			Transport: rt,
		},
		logger: logger,
	}, nil
}

// do executes one API call: marshals body (if any), sends the request,
// maps non-2xx statuses onto the domain error types, and decodes the
// response into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.InternalErrorf("failed to marshal request body for %s %s: %v", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return errors.InternalErrorf("failed to build request for %s %s: %v", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.InternalErrorf("apollo request failed: %s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.InternalErrorf("failed to read apollo response for %s %s: %v", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Apollo API returned an error status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return statusError(method, path, resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.InternalErrorf("malformed apollo response for %s %s: %v", method, path, err)
		}
	}
	return nil
}

// statusError maps an HTTP error status onto the domain error taxonomy.
// 401/403 must surface as Unauthorized, never as NotFound: several
// endpoints need a master API key and callers have to be able to tell
// "no privilege" apart from "no such record".
func statusError(method, path string, status int, body []byte) error {
	detail := strings.TrimSpace(string(body))
	if len(detail) > 512 {
		detail = detail[:512]
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.UnauthorizedErrorf("apollo rejected %s %s with status %d (a master API key may be required): %s", method, path, status, detail)
	case http.StatusNotFound:
		return errors.NotFoundErrorf("apollo resource not found: %s %s", method, path)
	case http.StatusUnprocessableEntity:
		return errors.ValidationErrorf("apollo rejected the request: %s %s: %s", method, path, detail)
	default:
		return errors.InternalErrorf("apollo request failed: %s %s: status %d: %s", method, path, status, detail)
	}
}

// capPerPage clamps a requested page size to Apollo's documented ceiling
// and applies the default when unset.
func capPerPage(perPage int) int {
	if perPage <= 0 {
		return 25
	}
	if perPage > maxPerPage {
		return maxPerPage
	}
	return perPage
}
