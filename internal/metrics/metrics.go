// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PersistWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "directory_persist_writes_total",
		Help: "Writes of catalog collections to the key-value store",
	}, []string{"key", "result"})

	PersistDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "directory_persist_write_duration_seconds",
		Help:    "Duration of key-value store writes",
		Buckets: prometheus.DefBuckets,
	}, []string{"key"})

	PersistPending = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "directory_persist_pending_keys",
		Help: "Keys waiting to be written",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "directory_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "directory_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Result labels for PersistWrites.
const (
	ResultOK    = "ok"
	ResultError = "error"
)
