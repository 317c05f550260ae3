package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOrderMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewOrderMetrics(reg)

	m.ObserveSelection("bath")
	m.ObserveSelection("bath")
	m.ObserveFieldFailure("phone")
	m.ObserveSubmission(OutcomeNoSelection)
	m.ObserveHandoff()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.selections.WithLabelValues("bath")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fieldFailures.WithLabelValues("phone")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissions.WithLabelValues(OutcomeNoSelection)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.handoffs))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.cacheAppendFails))
}

func TestOrderMetrics_NilSafe(t *testing.T) {
	var m *OrderMetrics
	m.ObserveSelection("bath")
	m.ObserveFieldFailure("email")
	m.ObserveSubmission(OutcomeInvalid)
	m.ObserveHandoff()
	m.ObserveCacheAppendFailure()
}
