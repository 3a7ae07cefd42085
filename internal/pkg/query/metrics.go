package query

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	fetchStarted   = "started"
	fetchSucceeded = "succeeded"
	fetchFailed    = "failed"
	fetchDiscarded = "discarded"

	mutationSucceeded = "succeeded"
	mutationFailed    = "failed"
)

type metrics struct {
	fetches       *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	mutations     *prometheus.CounterVec
}

// newMetrics registers the collectors, a nil registerer creates unregistered collectors.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		fetches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crm_query_fetch_total",
			Help: "Query fetches by key and result: started, succeeded, failed or discarded as superseded.",
		}, []string{"key", "result"}),
		fetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "crm_query_fetch_duration_seconds",
			Help:    "Duration of query fetches.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"key"}),
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crm_query_mutation_total",
			Help: "Mutations by name and result.",
		}, []string{"mutation", "result"}),
	}
}

func (m *metrics) fetch(key Key, result string) {
	m.fetches.WithLabelValues(key.String(), result).Inc()
}

func (m *metrics) observeFetch(key Key, d time.Duration) {
	m.fetchDuration.WithLabelValues(key.String()).Observe(d.Seconds())
}

func (m *metrics) mutation(name string, result string) {
	m.mutations.WithLabelValues(name, result).Inc()
}
