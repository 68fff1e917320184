package limiter

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// limitedTransport wraps http.RoundTripper and allows round trips with maximum rate limit.
type limitedTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

// NewTransport creates rate limited transport.
// maxRate - maximum number of requests per second. If next is nil, http.DefaultTransport is used.
func NewTransport(next http.RoundTripper, maxRate float64) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return &limitedTransport{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(maxRate), 1),
	}
}

// RoundTrip executes http request. If limit is exceeded, blocks until call rate is within limit.
func (t *limitedTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(r.Context()); err != nil {
		return nil, fmt.Errorf("waiting for transport limiter: %w", err)
	}

	return t.next.RoundTrip(r)
}
