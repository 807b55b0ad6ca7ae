package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	// Assistant metrics
	RepliesServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_replies_served_total",
			Help: "Total chat replies served by the proxy",
		},
		[]string{"source"}, // "remote" or "apology"
	)

	ProviderErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_provider_errors_total",
			Help: "Total failed completion provider calls",
		},
	)

	ProviderLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "portfolio_provider_latency_seconds",
			Help:    "Completion provider call latency",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	// Transcript archive metrics
	ArchiveWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_archive_write_failures_total",
			Help: "Total best-effort transcript writes that failed",
		},
	)
)
