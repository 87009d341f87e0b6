package apollo

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client-side request budgets, per minute. Bulk endpoints are throttled
// harder than standard ones, mirroring Apollo's own tiering.
const (
	defaultStandardPerMinute = 200
	defaultBulkPerMinute     = 20
)

// headerTransport stamps every outbound request with the api key, the
// standard Apollo headers, and a fresh request ID for log correlation.
type headerTransport struct {
	apiKey string
	logger *zap.Logger
	next   http.RoundTripper
}

func newHeaderTransport(next http.RoundTripper, apiKey string, logger *zap.Logger) *headerTransport {
	return &headerTransport{
		apiKey: apiKey,
		logger: logger,
		next:   next,
	}
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	requestID := uuid.NewString()

	req.Header.Set("x-api-key", t.apiKey)
	req.Header.Set("accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("X-Request-Id", requestID)

	t.logger.Debug("Apollo API request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.String("request_id", requestID))

	return t.next.RoundTrip(req)
}

// rateLimitTransport throttles outbound calls with two token buckets:
// one for standard endpoints, a stricter one for bulk endpoints. Waits
// honor the request context, so a cancelled call never blocks on the
// limiter.
type rateLimitTransport struct {
	standard *rate.Limiter
	bulk     *rate.Limiter
	next     http.RoundTripper
}

func newRateLimitTransport(next http.RoundTripper, standardPerMinute, bulkPerMinute int) *rateLimitTransport {
	return &rateLimitTransport{
		standard: rate.NewLimiter(rate.Limit(float64(standardPerMinute)/60.0), standardPerMinute),
		bulk:     rate.NewLimiter(rate.Limit(float64(bulkPerMinute)/60.0), bulkPerMinute),
		next:     next,
	}
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	limiter := t.standard
	if isBulkPath(req.URL.Path) {
		limiter = t.bulk
	}
	if err := limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.next.RoundTrip(req)
}

// isBulkPath reports whether the endpoint is one of Apollo's bulk
// operations (bulk_create, bulk_update, bulk_match).
func isBulkPath(path string) bool {
	return strings.Contains(path, "bulk")
}
