package metrics

import "github.com/prometheus/client_golang/prometheus"

// OrderMetrics expone contadores del flujo de pedidos. Todos los métodos
// toleran receptor nil (métricas deshabilitadas).
type OrderMetrics struct {
	selections       *prometheus.CounterVec
	fieldFailures    *prometheus.CounterVec
	submissions      *prometheus.CounterVec
	handoffs         prometheus.Counter
	cacheAppendFails prometheus.Counter
}

// Resultados de un submit.
const (
	OutcomeInvalid     = "invalid"
	OutcomeNoSelection = "no_selection"
	OutcomeAssembled   = "assembled"
)

func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	m := &OrderMetrics{
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petshop",
			Subsystem: "orders",
			Name:      "selections_total",
			Help:      "Service selections by service id",
		}, []string{"service_id"}),
		fieldFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petshop",
			Subsystem: "orders",
			Name:      "field_validation_failures_total",
			Help:      "Field validation failures by field",
		}, []string{"field"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petshop",
			Subsystem: "orders",
			Name:      "submissions_total",
			Help:      "Order form submissions by outcome",
		}, []string{"outcome"}),
		handoffs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "petshop",
			Subsystem: "orders",
			Name:      "handoffs_total",
			Help:      "Orders handed off to the messaging service",
		}),
		cacheAppendFails: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "petshop",
			Subsystem: "orders",
			Name:      "cache_append_failures_total",
			Help:      "Failed appends to the local order cache",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.selections, m.fieldFailures, m.submissions, m.handoffs, m.cacheAppendFails)
	return m
}

func (m *OrderMetrics) ObserveSelection(serviceID string) {
	if m == nil {
		return
	}
	m.selections.WithLabelValues(serviceID).Inc()
}

func (m *OrderMetrics) ObserveFieldFailure(field string) {
	if m == nil {
		return
	}
	m.fieldFailures.WithLabelValues(field).Inc()
}

func (m *OrderMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *OrderMetrics) ObserveHandoff() {
	if m == nil {
		return
	}
	m.handoffs.Inc()
}

func (m *OrderMetrics) ObserveCacheAppendFailure() {
	if m == nil {
		return
	}
	m.cacheAppendFails.Inc()
}
