package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	CMSQueriesTotal     *prometheus.CounterVec
	CMSQueryDuration    *prometheus.HistogramVec
)

func Init() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	CMSQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_queries_total",
			Help: "Total number of queries issued against the CMS.",
		},
		[]string{"operation", "outcome"}, // outcome: success, failure
	)

	CMSQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cms_query_duration_seconds",
			Help:    "Duration of CMS queries.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)
}
