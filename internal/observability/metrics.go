// Package observability defines the Prometheus metrics exported by the converter.
package observability

import (
	"errors"

	"github.com/phrazzld/unit-converter/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "unit_converter"

// Conversion outcomes used as the "outcome" label.
const (
	OutcomeSuccess         = "success"
	OutcomeInvalidValue    = "invalid_value"
	OutcomeInvalidUnit     = "invalid_unit"
	OutcomeUnitMismatch    = "unit_mismatch"
	OutcomeInvalidCategory = "invalid_category"
	OutcomeError           = "error"
)

// Metrics holds the Prometheus collectors for the converter.
type Metrics struct {
	Conversions         *prometheus.CounterVec   // labels: category, outcome
	HTTPRequestDuration *prometheus.HistogramVec // labels: route, method, status
	RateLimited         prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		Conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Conversion attempts by category and outcome.",
		}, []string{"category", "outcome"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route pattern, method and status code.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "method", "status"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_requests_total",
			Help:      "Requests rejected by the per-client rate limiter.",
		}),
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.Conversions, m.HTTPRequestDuration, m.RateLimited)
	return m
}

// NewMetricsForTesting creates Metrics registered with a fresh registry to
// avoid "already registered" panics when called from multiple tests.
func NewMetricsForTesting() (*Metrics, *prometheus.Registry) {
	m := newMetrics()
	reg := prometheus.NewRegistry()
	reg.MustRegister(m.Conversions, m.HTTPRequestDuration, m.RateLimited)
	return m, reg
}

// RecordConversion counts one conversion attempt.
func (m *Metrics) RecordConversion(category string, err error) {
	if category == "" {
		category = "unknown"
	}
	m.Conversions.WithLabelValues(category, Outcome(err)).Inc()
}

// Outcome maps a conversion error to its metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrInvalidValue):
		return OutcomeInvalidValue
	case errors.Is(err, domain.ErrUnitMismatch):
		return OutcomeUnitMismatch
	case errors.Is(err, domain.ErrInvalidUnit):
		return OutcomeInvalidUnit
	case errors.Is(err, domain.ErrInvalidCategory):
		return OutcomeInvalidCategory
	default:
		return OutcomeError
	}
}
