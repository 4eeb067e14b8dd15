// Package metrics holds the Prometheus counters for authentication outcomes.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	LoginsTotal         *prometheus.CounterVec
	SessionsTotal       *prometheus.CounterVec
	PasswordResetsTotal *prometheus.CounterVec
	SchemeDecisions     *prometheus.CounterVec
}

// New creates the counters on a private registry along with the standard Go
// and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: reg,
		LoginsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doorman_logins_total",
				Help: "Total number of password checks by outcome",
			},
			[]string{"outcome"},
		),
		SessionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doorman_sessions_total",
				Help: "Total number of session lifecycle events",
			},
			[]string{"event"},
		),
		PasswordResetsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doorman_password_resets_total",
				Help: "Total number of password reset events",
			},
			[]string{"event"},
		),
		SchemeDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doorman_scheme_decisions_total",
				Help: "Total number of request authentication decisions by scheme and outcome",
			},
			[]string{"scheme", "outcome"},
		),
	}

	reg.MustRegister(m.LoginsTotal)
	reg.MustRegister(m.SessionsTotal)
	reg.MustRegister(m.PasswordResetsTotal)
	reg.MustRegister(m.SchemeDecisions)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Login records the result of a password check ("success", "failure").
func (m *Metrics) Login(outcome string) {
	if m == nil {
		return
	}
	m.LoginsTotal.WithLabelValues(outcome).Inc()
}

// Session records "created", "resolved", "missed" or "destroyed".
func (m *Metrics) Session(event string) {
	if m == nil {
		return
	}
	m.SessionsTotal.WithLabelValues(event).Inc()
}

// PasswordReset records "issued", "completed" or "rejected".
func (m *Metrics) PasswordReset(event string) {
	if m == nil {
		return
	}
	m.PasswordResetsTotal.WithLabelValues(event).Inc()
}

// SchemeDecision records how a scheme handled a request: "skipped",
// "missing", "rejected", "accepted" or "error".
func (m *Metrics) SchemeDecision(scheme, outcome string) {
	if m == nil {
		return
	}
	m.SchemeDecisions.WithLabelValues(scheme, outcome).Inc()
}
