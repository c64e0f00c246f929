package scheduler

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/endpointmonitor/internal/domain"
	"github.com/hamed0406/endpointmonitor/internal/metrics"
	"github.com/hamed0406/endpointmonitor/internal/probe"
	"github.com/hamed0406/endpointmonitor/internal/report"
	"github.com/hamed0406/endpointmonitor/internal/stats"
)

// Monitor drives the probe-aggregate-report cycle: one sequential sweep over
// the configured endpoints in file order, a report, then a fixed pause.
type Monitor struct {
	Logger    *zap.Logger
	Endpoints []domain.Endpoint
	Checker   probe.Checker
	Stats     *stats.Aggregator
	Reporter  *report.Reporter
	Interval  time.Duration
	Timeout   time.Duration

	// After is the pause between sweeps; tests swap it out to drive many
	// cycles without wall-clock delay.
	After func(time.Duration) <-chan time.Time
}

func NewMonitor(
	logger *zap.Logger,
	endpoints []domain.Endpoint,
	checker probe.Checker,
	agg *stats.Aggregator,
	rep *report.Reporter,
	interval time.Duration,
	timeout time.Duration,
) *Monitor {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	if timeout <= 0 {
		timeout = probe.DefaultTimeout
	}
	return &Monitor{
		Logger:    logger,
		Endpoints: endpoints,
		Checker:   checker,
		Stats:     agg,
		Reporter:  rep,
		Interval:  interval,
		Timeout:   timeout,
		After:     time.After,
	}
}

// Run performs an immediate sweep, then one per interval. The pause starts
// after the sweep finishes, so cycle length is sweep duration plus interval.
// Stops when ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	for {
		m.runOnce(ctx)
		select {
		case <-ctx.Done():
			m.Logger.Info("monitor_stopped")
			return
		case <-m.After(m.Interval):
		}
	}
}

func (m *Monitor) runOnce(ctx context.Context) {
	start := time.Now()
	probed := 0

	for _, ep := range m.Endpoints {
		if ctx.Err() != nil {
			return
		}

		// Records without a usable URL were already reported by schema
		// validation; they cannot produce a domain key, so skip them.
		key, err := domain.Registrable(ep.URL)
		if err != nil {
			m.Logger.Warn("endpoint_skipped",
				zap.String("name", ep.Name),
				zap.String("url", ep.URL),
				zap.Error(err),
			)
			continue
		}

		cctx, cancel := context.WithTimeout(ctx, m.Timeout)
		out := m.Checker.Check(cctx, ep)
		cancel()

		m.Stats.Record(key, out.Status)
		metrics.RecordProbe(key, string(out.Status), out.LatencyMS)
		probed++

		fields := []zap.Field{
			zap.String("name", ep.Name),
			zap.String("url", ep.URL),
			zap.String("domain", key),
			zap.String("status", string(out.Status)),
			zap.Int("http_status", out.StatusCode),
			zap.Float64("latency_ms", out.LatencyMS),
			zap.String("reason", out.Reason),
		}
		if out.Status == domain.StatusDown && out.StatusCode == 0 {
			// Transport-level failure: annotate with the DNS state of the
			// host so the log says whether the name even resolves. Warn so
			// it clears the Info-level file sink.
			fields = append(fields, zap.String("dns", probe.ClassifyDNS(ctx, hostOf(ep.URL))))
			m.Logger.Warn("endpoint_unreachable", fields...)
		} else {
			m.Logger.Debug("endpoint_checked", fields...)
		}
	}

	if ctx.Err() != nil {
		return
	}
	m.Reporter.Report(m.Stats.Snapshot())
	m.Logger.Info("sweep_complete",
		zap.Int("probed", probed),
		zap.Int("configured", len(m.Endpoints)),
		zap.Duration("took", time.Since(start)),
	)
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return u.Hostname()
}
