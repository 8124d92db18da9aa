// Package metrics provides Prometheus instrumentation for the WorkWell API.
//
// All Record* methods are safe to call on a nil *Manager, so components can
// take an optional manager without branching at every call site.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cache lookup outcomes
const (
	CacheHit    = "hit"
	CacheMiss   = "miss"
	CacheError  = "error"
	CacheBypass = "bypass"
)

// Manager owns every collector the service exports.
type Manager struct {
	namespace string
	registry  *prometheus.Registry
	buckets   []float64

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	cacheRequests *prometheus.CounterVec

	checkinsCreated prometheus.Counter
	wellbeingScore  prometheus.Histogram
	riskPredictions *prometheus.CounterVec
	alertsCreated   *prometheus.CounterVec
}

// NewManager creates a Manager registered on its own registry unless
// WithRegistry supplies one.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "workwell",
		buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route template and status code",
	}, []string{"method", "route", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route template",
		Buckets:   m.buckets,
	}, []string{"method", "route"})

	m.cacheRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "cache_requests_total",
		Help:      "Result cache lookups by outcome",
	}, []string{"result"})

	m.checkinsCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "checkins_created_total",
		Help:      "Daily check-ins accepted",
	})

	m.wellbeingScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "wellbeing_score",
		Help:      "Wellbeing score assigned to new check-ins",
		Buckets:   prometheus.LinearBuckets(0, 10, 11),
	})

	m.riskPredictions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "risk_predictions_total",
		Help:      "Burnout risk predictions by resulting level",
	}, []string{"level"})

	m.alertsCreated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "alerts_created_total",
		Help:      "Burnout alerts recorded by level",
	}, []string{"level"})
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordHTTPRequest counts one finished request.
func (m *Manager) RecordHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordCache counts a cache lookup with one of the Cache* outcomes.
func (m *Manager) RecordCache(result string) {
	if m == nil {
		return
	}
	m.cacheRequests.WithLabelValues(result).Inc()
}

// RecordCheckinCreated counts a new check-in and its score.
func (m *Manager) RecordCheckinCreated(score float64) {
	if m == nil {
		return
	}
	m.checkinsCreated.Inc()
	m.wellbeingScore.Observe(score)
}

// RecordPrediction counts a prediction at the given level.
func (m *Manager) RecordPrediction(level string) {
	if m == nil {
		return
	}
	m.riskPredictions.WithLabelValues(level).Inc()
}

// RecordAlert counts an alert at the given level.
func (m *Manager) RecordAlert(level string) {
	if m == nil {
		return
	}
	m.alertsCreated.WithLabelValues(level).Inc()
}
