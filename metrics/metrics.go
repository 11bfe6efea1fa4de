// Package metrics provides Prometheus metrics for the website.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes
const (
	OutcomeSent        = "sent"
	OutcomeInvalid     = "invalid"
	OutcomeHoneypot    = "honeypot"
	OutcomeCaptcha     = "captcha_failed"
	OutcomeRateLimited = "rate_limited"
	OutcomeRelayFailed = "relay_failed"
)

// Manager owns the site's registry and collectors. A nil *Manager is valid
// and records nothing, so components can be built without metrics in tests.
type Manager struct {
	registry *prometheus.Registry

	contactSubmissions *prometheus.CounterVec
	fieldErrors        *prometheus.CounterVec
	rateLimitDecisions *prometheus.CounterVec
	relayLatency       *prometheus.HistogramVec
	pageViews          *prometheus.CounterVec
}

// New creates a Manager with its own registry under the given namespace
func New(namespace string) *Manager {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Manager{
		registry: reg,
		contactSubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact form submissions by outcome.",
		}, []string{"outcome"}),
		fieldErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "field_errors_total",
			Help:      "Field validation failures by field.",
		}, []string{"field"}),
		rateLimitDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rate_limit",
			Name:      "decisions_total",
			Help:      "Rate limiter decisions (allowed, denied, fail_open).",
		}, []string{"decision"}),
		relayLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "relay_duration_seconds",
			Help:      "Time spent handing a submission to the email relay.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"relay"}),
		pageViews: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Rendered pages by page name.",
		}, []string{"page"}),
	}
}

// Handler exposes the registry in the Prometheus text format
func (m *Manager) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer returns the underlying registry
func (m *Manager) Gatherer() prometheus.Gatherer {
	return m.registry
}

func (m *Manager) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.contactSubmissions.WithLabelValues(outcome).Inc()
}

func (m *Manager) ObserveFieldError(field string) {
	if m == nil {
		return
	}
	m.fieldErrors.WithLabelValues(field).Inc()
}

func (m *Manager) ObserveRateLimit(decision string) {
	if m == nil {
		return
	}
	m.rateLimitDecisions.WithLabelValues(decision).Inc()
}

func (m *Manager) ObserveRelay(relay string, d time.Duration) {
	if m == nil {
		return
	}
	m.relayLatency.WithLabelValues(relay).Observe(d.Seconds())
}

func (m *Manager) ObservePageView(page string) {
	if m == nil {
		return
	}
	m.pageViews.WithLabelValues(page).Inc()
}
