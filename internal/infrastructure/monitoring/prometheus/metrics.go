// Package prometheus exposes the engine's operational metrics on a private
// registry.  Components receive a *Metrics via constructor injection; tests
// use NewMetrics with a throwaway registry so parallel test packages never
// collide on global registration.
package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cinestyle"

// DefaultDurationBuckets cover the expected sub-millisecond-to-seconds range
// of in-process matching and projection work.
var DefaultDurationBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5}

// Metrics holds every metric the engine emits.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP layer
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Matching
	MatchRequestsTotal *prometheus.CounterVec
	MatchDuration      prometheus.Histogram
	MatchCacheHits     prometheus.Counter
	MatchCacheMisses   prometheus.Counter

	// Blending / classification
	BlendRequestsTotal prometheus.Counter

	// Constellation viewport
	ActiveSessions prometheus.Gauge
	GesturesTotal  *prometheus.CounterVec
}

// NewMetrics registers all engine metrics on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	m := &Metrics{registry: reg}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method, path, and status code.",
	}, []string{"method", "path", "status"})

	m.HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration.",
		Buckets:   DefaultDurationBuckets,
	}, []string{"method", "path"})

	m.MatchRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "match_requests_total",
		Help:      "Ranking requests by strategy (plain or genre_aware).",
	}, []string{"strategy"})

	m.MatchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "match_duration_seconds",
		Help:      "Time spent scoring the catalog for one ranking request.",
		Buckets:   DefaultDurationBuckets,
	})

	m.MatchCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "match_cache_hits_total",
		Help:      "Ranking responses served from cache.",
	})

	m.MatchCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "match_cache_misses_total",
		Help:      "Ranking requests that missed the cache.",
	})

	m.BlendRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blend_requests_total",
		Help:      "Blend selection requests.",
	})

	m.ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "constellation_active_sessions",
		Help:      "Live constellation viewport sessions.",
	})

	m.GesturesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "constellation_gestures_total",
		Help:      "Viewport gesture events by kind.",
	}, []string{"kind"})

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.MatchRequestsTotal,
		m.MatchDuration,
		m.MatchCacheHits,
		m.MatchCacheMisses,
		m.BlendRequestsTotal,
		m.ActiveSessions,
		m.GesturesTotal,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
