package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewQuoteMetrics(reg)
	require.NoError(t, err)

	m.QuoteServed(LookupRandom)
	m.QuoteServed(LookupRandom)
	m.QuoteServed(LookupByFeeling)
	m.QuoteNotFound(LookupByFeeling)
	m.QuoteAdded()
	m.QuotesSeeded(50)

	assert.InDelta(t, 2, testutil.ToFloat64(m.served.WithLabelValues(LookupRandom)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.served.WithLabelValues(LookupByFeeling)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.misses.WithLabelValues(LookupByFeeling)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.added), 0)
	assert.InDelta(t, 50, testutil.ToFloat64(m.seeded), 0)
}

func TestNewQuoteMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewQuoteMetrics(reg)
	require.NoError(t, err)

	_, err = NewQuoteMetrics(reg)
	require.Error(t, err)
}

func TestQuoteMetrics_NilIsNoop(t *testing.T) {
	var m *QuoteMetrics

	assert.NotPanics(t, func() {
		m.QuoteServed(LookupRandom)
		m.QuoteNotFound(LookupRandom)
		m.QuoteAdded()
		m.QuotesSeeded(3)
	})
}
