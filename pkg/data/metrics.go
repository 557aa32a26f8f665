package data

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks query execution for observability.
// A nil *Metrics is valid and records nothing, so metrics stay optional.
type Metrics struct {
	queriesTotal  *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
}

// NewMetrics creates query metrics and registers them on reg.
// A nil registerer leaves the collectors unregistered (useful in tests).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		queriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "datalink_queries_total",
				Help: "Total number of queries executed, by query type and outcome.",
			},
			[]string{"query_type", "status"},
		),
		queryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "datalink_query_duration_seconds",
				Help:    "Query execution duration in seconds, by query type.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"query_type"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.queriesTotal, m.queryDuration)
	}

	return m
}

// RecordQuery records one query execution.
func (m *Metrics) RecordQuery(queryType QueryType, success bool, duration time.Duration) {
	if m == nil {
		return
	}

	status := "error"
	if success {
		status = "success"
	}

	m.queriesTotal.WithLabelValues(string(queryType), status).Inc()
	m.queryDuration.WithLabelValues(string(queryType)).Observe(duration.Seconds())
}
