package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveFetch(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveFetch(OutcomeSuccess, 120*time.Millisecond)
	m.ObserveFetch(OutcomeError, time.Second)
	m.ObserveFetch(OutcomeError, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.FetchTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.FetchTotal.WithLabelValues(OutcomeError)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.FetchDuration))
}

func TestMetrics_SetViewAndCache(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.SetView(100, 17)
	m.CacheLookup(true)
	m.CacheLookup(false)
	m.CacheLookup(false)

	assert.Equal(t, 100.0, testutil.ToFloat64(m.BatchRecords))
	assert.Equal(t, 17.0, testutil.ToFloat64(m.AggregateCountries))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DetailCacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DetailCacheLookups.WithLabelValues("miss")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveFetch(OutcomeSuccess, time.Millisecond)
		m.SetView(1, 1)
		m.CacheLookup(true)
	})
}
