package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "patient_assistant"

// Metrics owns a dedicated registry, not the global default registerer.
//
// All Record methods are safe on a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	interactions     *prometheus.CounterVec
	actions          *prometheus.CounterVec
	symptomsPerTurn  prometheus.Histogram
	rateLimited      prometheus.Counter
	persistFailures  prometheus.Counter
	sessionsResolved *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		interactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interactions_total",
			Help:      "Assistant turns processed, by detected intent.",
		}, []string{"intent"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Follow-up actions suggested to the caller.",
		}, []string{"action"}),
		symptomsPerTurn: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "accumulated_symptoms",
			Help:      "Accumulated symptom count after each turn.",
			Buckets:   []float64{0, 1, 2, 3, 4, 6, 10},
		}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-user rate limiter.",
		}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_failures_total",
			Help:      "Interactions that could not be written to storage.",
		}),
		sessionsResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_state_total",
			Help:      "Where prior conversation state came from on each turn.",
		}, []string{"source"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.interactions,
		m.actions,
		m.symptomsPerTurn,
		m.rateLimited,
		m.persistFailures,
		m.sessionsResolved,
	)
	return m
}

// RecordTurn records one processed assistant turn.
func (m *Metrics) RecordTurn(intent string, scheduleAppointment, connectToProvider bool, symptomCount int) {
	if m == nil {
		return
	}
	m.interactions.WithLabelValues(intent).Inc()
	if scheduleAppointment {
		m.actions.WithLabelValues("schedule_appointment").Inc()
	}
	if connectToProvider {
		m.actions.WithLabelValues("connect_to_provider").Inc()
	}
	m.symptomsPerTurn.Observe(float64(symptomCount))
}

// RecordSessionSource records where prior symptoms were resolved from:
// "request", "store" or "new".
func (m *Metrics) RecordSessionSource(source string) {
	if m == nil {
		return
	}
	m.sessionsResolved.WithLabelValues(source).Inc()
}

func (m *Metrics) RecordRateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

func (m *Metrics) RecordPersistFailure() {
	if m == nil {
		return
	}
	m.persistFailures.Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
