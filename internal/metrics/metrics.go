package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors exported on /metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestsDuration *prometheus.HistogramVec
	LoginAttempts    *prometheus.CounterVec
	Registrations    *prometheus.CounterVec
	TokenRejections  *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "staffdir",
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "staffdir",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				// bcrypt at cost 10 dominates login and registration
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route", "status"},
		),
		LoginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "staffdir",
				Subsystem: "auth",
				Name:      "login_attempts_total",
				Help:      "Login attempts by result.",
			},
			[]string{"result"}, // success|invalid_credentials|error
		),
		Registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "staffdir",
				Subsystem: "auth",
				Name:      "registrations_total",
				Help:      "Account registrations by result.",
			},
			[]string{"result"}, // created|duplicate|invalid|error
		),
		TokenRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "staffdir",
				Subsystem: "auth",
				Name:      "token_rejections_total",
				Help:      "Requests rejected by the bearer token check.",
			},
			[]string{"reason"}, // missing|invalid|expired
		),
	}
	reg.MustRegister(m.RequestsTotal, m.RequestsDuration, m.LoginAttempts, m.Registrations, m.TokenRejections)

	return m
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestsDuration.WithLabelValues(method, route, status).Observe(seconds)
}

// ObserveLogin records a login outcome.
func (m *Metrics) ObserveLogin(result string) {
	if m == nil {
		return
	}
	m.LoginAttempts.WithLabelValues(result).Inc()
}

// ObserveRegistration records a registration outcome.
func (m *Metrics) ObserveRegistration(result string) {
	if m == nil {
		return
	}
	m.Registrations.WithLabelValues(result).Inc()
}

// ObserveTokenRejection records why a bearer token was refused. The HTTP response
// does not expose the reason.
func (m *Metrics) ObserveTokenRejection(reason string) {
	if m == nil {
		return
	}
	m.TokenRejections.WithLabelValues(reason).Inc()
}
