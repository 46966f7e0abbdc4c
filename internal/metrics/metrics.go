package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess   = "success"
	OutcomeError     = "error"
	OutcomeDiscarded = "discarded"
)

// Metrics holds Prometheus collectors for the country view.
type Metrics struct {
	FetchTotal         *prometheus.CounterVec
	FetchDuration      prometheus.Histogram
	BatchRecords       prometheus.Gauge
	AggregateCountries prometheus.Gauge
	DetailCacheLookups *prometheus.CounterVec
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FetchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "countries_fetch_total",
			Help: "Upstream user fetches, labeled by outcome",
		}, []string{"outcome"}),
		FetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "countries_fetch_duration_seconds",
			Help:    "Latency of the upstream user fetch",
			Buckets: prometheus.DefBuckets,
		}),
		BatchRecords: factory.NewGauge(prometheus.GaugeOpts{
			Name: "countries_batch_records",
			Help: "Number of records in the current batch",
		}),
		AggregateCountries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "countries_aggregate_countries",
			Help: "Number of countries in the current aggregate list",
		}),
		DetailCacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "countries_detail_cache_lookups_total",
			Help: "Detail list cache lookups, labeled by result",
		}, []string{"result"}),
	}
}

// ObserveFetch records one finished fetch.
func (m *Metrics) ObserveFetch(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.FetchTotal.WithLabelValues(outcome).Inc()
	m.FetchDuration.Observe(elapsed.Seconds())
}

// SetView publishes the size of the current batch and aggregate list.
func (m *Metrics) SetView(records, countries int) {
	if m == nil {
		return
	}
	m.BatchRecords.Set(float64(records))
	m.AggregateCountries.Set(float64(countries))
}

// CacheLookup counts a detail cache hit or miss.
func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.DetailCacheLookups.WithLabelValues(result).Inc()
}
