// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookstore_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookstore_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "route"},
	)

	// CatalogLoads counts collection loads per data source by outcome: ok or error.
	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookstore_catalog_loads_total",
			Help: "Total number of catalog loads by source and result",
		},
		[]string{"source", "result"},
	)

	// CatalogLookups counts detail lookups by outcome: found, not_found or error.
	CatalogLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookstore_catalog_lookups_total",
			Help: "Total number of book lookups by result",
		},
		[]string{"result"},
	)
)

// Result labels shared by the catalog counters.
const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultFound    = "found"
	ResultNotFound = "not_found"
)
