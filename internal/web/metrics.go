package web

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the Prometheus collectors reported by the preview server.
type Metrics struct {
	requests       *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	cacheLookups   *prometheus.CounterVec
}

// MustNewMetrics creates the collectors and registers them with reg.
// Registration errors panic, as with promauto.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "readmegen",
			Subsystem: "web",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		},
		[]string{"route", "code"},
	)
	renderDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "readmegen",
			Subsystem: "web",
			Name:      "render_duration_seconds",
			Help:      "Time spent producing a rendered document, cache hits included.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"route"},
	)
	cacheLookups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "readmegen",
			Subsystem: "web",
			Name:      "render_cache_lookups_total",
			Help:      "Render cache lookups by result.",
		},
		[]string{"result"},
	)

	reg.MustRegister(requests, renderDuration, cacheLookups)
	return &Metrics{
		requests:       requests,
		renderDuration: renderDuration,
		cacheLookups:   cacheLookups,
	}
}

func (m *Metrics) observeRequest(route, code string) {
	m.requests.WithLabelValues(route, code).Inc()
}

func (m *Metrics) observeRender(route string, seconds float64) {
	m.renderDuration.WithLabelValues(route).Observe(seconds)
}

func (m *Metrics) observeCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
