package report

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/hamed0406/endpointmonitor/internal/metrics"
	"github.com/hamed0406/endpointmonitor/internal/stats"
)

// Reporter prints one availability block per sweep to Out and mirrors the
// figures to the log sink and the metrics gauges.
type Reporter struct {
	Out    io.Writer
	Logger *zap.Logger
}

func NewReporter(out io.Writer, logger *zap.Logger) *Reporter {
	return &Reporter{Out: out, Logger: logger}
}

func (r *Reporter) Report(snap []stats.DomainAvailability) {
	for _, row := range snap {
		fmt.Fprintf(r.Out, "%s has %d%% availability percentage\n", row.Domain, row.Percent)
		metrics.SetAvailability(row.Domain, row.Percent)
		if r.Logger != nil {
			r.Logger.Info("availability",
				zap.String("domain", row.Domain),
				zap.Int("percent", row.Percent),
				zap.Int("up", row.Up),
				zap.Int("total", row.Total),
			)
		}
	}
	fmt.Fprintln(r.Out, "---")
}
