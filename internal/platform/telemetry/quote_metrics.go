package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics exposes Prometheus counters for quote traffic on /-/metrics.
// A nil *QuoteMetrics is valid and records nothing.
type QuoteMetrics struct {
	served *prometheus.CounterVec
	misses *prometheus.CounterVec
	added  prometheus.Counter
	seeded prometheus.Counter
}

// NewQuoteMetrics creates the quote counters and registers them with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewQuoteMetrics(reg prometheus.Registerer) (*QuoteMetrics, error) {
	m := &QuoteMetrics{
		served: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quotes",
			Name:      "served_total",
			Help:      "Quotes returned to clients, by lookup kind.",
		}, []string{"lookup"}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quotes",
			Name:      "not_found_total",
			Help:      "Lookups that matched no quote, by lookup kind.",
		}, []string{"lookup"}),
		added: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quotes",
			Name:      "added_total",
			Help:      "Quotes added through the API.",
		}),
		seeded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quotes",
			Name:      "seeded_total",
			Help:      "Quotes inserted by the first-run seed step.",
		}),
	}

	for _, c := range []prometheus.Collector{m.served, m.misses, m.added, m.seeded} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Lookup kinds used as the "lookup" label.
const (
	LookupRandom    = "random"
	LookupByFeeling = "by_feeling"
)

// QuoteServed counts a successful lookup.
func (m *QuoteMetrics) QuoteServed(lookup string) {
	if m == nil {
		return
	}

	m.served.WithLabelValues(lookup).Inc()
}

// QuoteNotFound counts a lookup that matched nothing.
func (m *QuoteMetrics) QuoteNotFound(lookup string) {
	if m == nil {
		return
	}

	m.misses.WithLabelValues(lookup).Inc()
}

// QuoteAdded counts one API insert.
func (m *QuoteMetrics) QuoteAdded() {
	if m == nil {
		return
	}

	m.added.Inc()
}

// QuotesSeeded counts n seeded rows.
func (m *QuoteMetrics) QuotesSeeded(n int) {
	if m == nil {
		return
	}

	m.seeded.Add(float64(n))
}
