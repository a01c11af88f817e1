package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the quotation service.
type Metrics struct {
	// Registry owns these metrics and backs the /metrics endpoint.
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	quotesSubmitted *prometheus.CounterVec
	quoteTotals     prometheus.Histogram
	intakeTurns     *prometheus.CounterVec
	externalErrors  *prometheus.CounterVec
}

// NewMetrics creates a dedicated registry so it can be built more than once in
// tests without duplicate collector panics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fukuro_http_request_duration_seconds",
				Help:    "Duration of HTTP requests by route and status.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		quotesSubmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fukuro_quotes_submitted_total",
				Help: "Total quotes submitted by intake channel.",
			},
			[]string{"source"},
		),
		quoteTotals: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fukuro_quote_total_mxn",
				Help:    "Distribution of submitted quote totals in MXN.",
				Buckets: []float64{1000, 2500, 5000, 10000, 25000, 50000, 100000},
			},
		),
		intakeTurns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fukuro_intake_turns_total",
				Help: "Total chat intake turns by outcome.",
			},
			[]string{"outcome"},
		),
		externalErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fukuro_external_errors_total",
				Help: "Total errors from external services.",
			},
			[]string{"service"},
		),
	}
}

// RecordRequest observes one HTTP request.
func (m *Metrics) RecordRequest(method, route, status string, d time.Duration) {
	m.requestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}

// QuoteSubmitted counts a persisted quote and observes its total.
func (m *Metrics) QuoteSubmitted(source string, total float64) {
	m.quotesSubmitted.WithLabelValues(source).Inc()
	m.quoteTotals.Observe(total)
}

// IntakeTurn counts a processed chat turn ("collecting", "priced", "failed").
func (m *Metrics) IntakeTurn(outcome string) {
	m.intakeTurns.WithLabelValues(outcome).Inc()
}

// IncrExternalError increments the external error counter.
func (m *Metrics) IncrExternalError(service string) {
	m.externalErrors.WithLabelValues(service).Inc()
}
