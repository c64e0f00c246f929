package probe

import (
	"context"

	"github.com/hamed0406/endpointmonitor/internal/domain"
)

// Outcome is the result of a single probe.
//
// StatusCode is the HTTP status when a response was received; 0 for
// transport-level failures (timeout, refused connection, DNS error).
type Outcome struct {
	Status     domain.Status
	StatusCode int
	LatencyMS  float64
	Reason     string
}

// Checker performs one health probe against an endpoint. Implementations
// never return an error: every failure mode collapses into a DOWN outcome.
type Checker interface {
	Check(ctx context.Context, ep domain.Endpoint) Outcome
}
