// Package observability exposes the service's Prometheus metrics.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/ariane-backend/internal/domain"
)

const namespace = "ariane"

// Metrics holds every collector of the service on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	eventsCreated      prometheus.Counter
	connectionsCreated *prometheus.CounterVec
	rejectedLinks      prometheus.Counter
	flaggedEvents      prometheus.Histogram

	importedEvents prometheus.Counter
	skippedImports *prometheus.CounterVec
}

// NewMetrics registers all collectors, plus the Go runtime and process
// collectors, on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		// Labels: method, route (mux pattern), status
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "route", "status"}),

		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),

		eventsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "timeline",
			Name:      "events_created_total",
			Help:      "Total events created",
		}),

		// Labels: type (LINEAR, TIMETRAVEL)
		connectionsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "timeline",
			Name:      "connections_created_total",
			Help:      "Total connections created by type",
		}, []string{"type"}),

		rejectedLinks: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "timeline",
			Name:      "connections_rejected_total",
			Help:      "Connections refused by the temporal validator",
		}),

		flaggedEvents: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "timeline",
			Name:      "inconsistent_events",
			Help:      "Number of inconsistent events found per analysis",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		}),

		importedEvents: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "import",
			Name:      "events_total",
			Help:      "Events created by guest imports",
		}),

		// Labels: reason
		skippedImports: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "import",
			Name:      "skipped_connections_total",
			Help:      "Guest connections skipped during import by reason",
		}, []string{"reason"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTP records one finished request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// EventCreated counts one stored event.
func (m *Metrics) EventCreated() {
	if m == nil {
		return
	}
	m.eventsCreated.Inc()
}

// ConnectionCreated counts one stored connection of type ct.
func (m *Metrics) ConnectionCreated(ct domain.ConnectionType) {
	if m == nil {
		return
	}
	m.connectionsCreated.WithLabelValues(ct.String()).Inc()
}

// ConnectionRejected counts one connection refused by the validator.
func (m *Metrics) ConnectionRejected() {
	if m == nil {
		return
	}
	m.rejectedLinks.Inc()
}

// AnalysisCompleted records the size of one consistency report.
func (m *Metrics) AnalysisCompleted(flagged int) {
	if m == nil {
		return
	}
	m.flaggedEvents.Observe(float64(flagged))
}

// ImportCompleted records the outcome of one guest import.
func (m *Metrics) ImportCompleted(events int, skipped map[string]int) {
	if m == nil {
		return
	}
	m.importedEvents.Add(float64(events))
	for reason, n := range skipped {
		m.skippedImports.WithLabelValues(reason).Add(float64(n))
	}
}
