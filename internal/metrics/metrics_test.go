package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gatherHistogram(t *testing.T, domain string) *dto.Histogram {
	t.Helper()
	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(ProbeLatencyMS); err != nil {
		t.Fatal(err)
	}
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "domain" && l.GetValue() == domain {
					return m.GetHistogram()
				}
			}
		}
	}
	t.Fatalf("no histogram for domain %q", domain)
	return nil
}

func TestRecordProbe_KeepsSubMillisecondLatency(t *testing.T) {
	RecordProbe("sub-ms.example", "UP", 0.4)

	h := gatherHistogram(t, "sub-ms.example")
	if got := h.GetSampleCount(); got != 1 {
		t.Fatalf("want 1 observation, got %d", got)
	}
	// 0.4 ms must survive as-is, not truncate to 0.
	if got := h.GetSampleSum(); got != 0.4 {
		t.Fatalf("want sample sum 0.4, got %v", got)
	}
}

func TestRecordProbe_CountsByDomainAndStatus(t *testing.T) {
	RecordProbe("counts.example", "UP", 1.5)
	RecordProbe("counts.example", "UP", 2.5)
	RecordProbe("counts.example", "DOWN", 3.5)

	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(ProbesTotal); err != nil {
		t.Fatal(err)
	}
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			var dom, st string
			for _, l := range m.GetLabel() {
				switch l.GetName() {
				case "domain":
					dom = l.GetValue()
				case "status":
					st = l.GetValue()
				}
			}
			if dom == "counts.example" {
				got[st] = m.GetCounter().GetValue()
			}
		}
	}
	if got["UP"] != 2 || got["DOWN"] != 1 {
		t.Fatalf("unexpected counts: %+v", got)
	}
}
