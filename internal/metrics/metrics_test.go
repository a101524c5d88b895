package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Turns.WithLabelValues("greeting").Inc()
	m.Hints.WithLabelValues(HintDenied).Inc()
	m.TokensAwarded.Add(2)
	m.GenerationFailures.WithLabelValues(ReasonTimeout).Inc()
	m.GenerationDuration.Observe(0.1)

	count, err := testutil.GatherAndCount(reg)
	assert.NoError(t, err)
	assert.Equal(t, 5, count)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TokensAwarded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Turns.WithLabelValues("greeting")))
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
