package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ProbesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "endpoint_probes_total",
			Help: "Probes performed, labeled by registrable domain and UP/DOWN status",
		},
		[]string{"domain", "status"},
	)
	ProbeLatencyMS = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "endpoint_probe_latency_ms",
			Help:    "Probe latency in milliseconds",
			Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500},
		},
		[]string{"domain"},
	)
	DomainAvailabilityPercent = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "domain_availability_percent",
			Help: "Cumulative availability percentage per registrable domain",
		},
		[]string{"domain"},
	)
)

func MustRegister() {
	prometheus.MustRegister(ProbesTotal, ProbeLatencyMS, DomainAvailabilityPercent)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func RecordProbe(domain, status string, latencyMS float64) {
	ProbesTotal.WithLabelValues(domain, status).Inc()
	ProbeLatencyMS.WithLabelValues(domain).Observe(latencyMS)
}

func SetAvailability(domain string, percent int) {
	DomainAvailabilityPercent.WithLabelValues(domain).Set(float64(percent))
}
