package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/hamed0406/endpointmonitor/internal/domain"
)

// DefaultTimeout bounds every probe unless overridden.
const DefaultTimeout = 500 * time.Millisecond

type HTTPChecker struct {
	Client *http.Client
}

func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPChecker{
		Client: &http.Client{Timeout: timeout},
	}
}

// Check issues exactly one request: the endpoint's method, its headers, and
// its body JSON-serialized when present. UP iff the final status code is in
// [200, 300); anything else, including every transport error, is DOWN.
// Redirects are followed, so classification applies to the final response.
func (h *HTTPChecker) Check(ctx context.Context, ep domain.Endpoint) Outcome {
	start := time.Now()

	method := ep.Method
	if method == "" {
		method = http.MethodGet
	}

	var payload io.Reader
	if ep.Body != nil {
		b, err := json.Marshal(ep.Body)
		if err != nil {
			return Outcome{Status: domain.StatusDown, Reason: "body: " + err.Error()}
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, ep.URL, payload)
	if err != nil {
		return Outcome{Status: domain.StatusDown, Reason: err.Error()}
	}
	for k, v := range ep.Headers {
		req.Header.Set(k, v)
	}
	if payload != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.Client.Do(req)
	latency := time.Since(start).Seconds() * 1000 // ms
	if err != nil {
		return Outcome{Status: domain.StatusDown, LatencyMS: latency, Reason: err.Error()}
	}
	defer resp.Body.Close()

	st := domain.StatusDown
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		st = domain.StatusUp
	}
	return Outcome{
		Status:     st,
		StatusCode: resp.StatusCode,
		LatencyMS:  latency,
		Reason:     resp.Status,
	}
}
