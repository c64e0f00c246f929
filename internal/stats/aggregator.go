package stats

import (
	"math"
	"sync"

	"github.com/hamed0406/endpointmonitor/internal/domain"
)

// DomainAvailability is one row of a snapshot.
type DomainAvailability struct {
	Domain  string `json:"domain"`
	Up      int    `json:"up"`
	Total   int    `json:"total"`
	Percent int    `json:"percent"`
}

// Aggregator keeps cumulative per-domain up/total counters for the life of
// the process. Counters are never reset and never persisted. The mutex is
// there because the status API snapshots concurrently with the sweep loop.
type Aggregator struct {
	mu    sync.RWMutex
	order []string
	stats map[string]*counters
}

type counters struct {
	up    int
	total int
}

func New() *Aggregator {
	return &Aggregator{stats: make(map[string]*counters)}
}

// Record counts one probe for key. Each (endpoint, cycle) pair lands here
// exactly once.
func (a *Aggregator) Record(key string, st domain.Status) {
	a.mu.Lock()
	defer a.mu.Unlock()
	c := a.stats[key]
	if c == nil {
		c = &counters{}
		a.stats[key] = c
		a.order = append(a.order, key)
	}
	c.total++
	if st == domain.StatusUp {
		c.up++
	}
}

// Snapshot returns every domain seen so far, in first-seen order, with its
// cumulative availability percentage. Percentages round half away from
// zero, so 12.5% reports as 13%. A domain only appears once it has at
// least one recorded probe, so total is never zero here.
func (a *Aggregator) Snapshot() []DomainAvailability {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]DomainAvailability, 0, len(a.order))
	for _, key := range a.order {
		c := a.stats[key]
		out = append(out, DomainAvailability{
			Domain:  key,
			Up:      c.up,
			Total:   c.total,
			Percent: int(math.Round(100 * float64(c.up) / float64(c.total))),
		})
	}
	return out
}
