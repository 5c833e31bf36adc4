// Package metrics exposes Prometheus collectors for meta description
// generation and the HTTP API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "metadesc"

// Metrics holds the application collectors. It satisfies the recorder
// interface of the generation pipeline.
type Metrics struct {
	GenerationTotal     *prometheus.CounterVec
	GenerationDuration  prometheus.Histogram
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer
// to expose them through promhttp.Handler.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		GenerationTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generation_total",
				Help:      "Total number of meta description generations by outcome",
			},
			[]string{"outcome"},
		),
		GenerationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generation_duration_seconds",
				Help:      "Meta description generation duration in seconds",
				Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
		),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"method", "route"},
		),
	}
}

// ObserveGeneration records one generation and how long it took.
func (m *Metrics) ObserveGeneration(outcome string, d time.Duration) {
	m.GenerationTotal.WithLabelValues(outcome).Inc()
	m.GenerationDuration.Observe(d.Seconds())
}

// ObserveHTTPRequest records one served HTTP request. route should be the
// route pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
