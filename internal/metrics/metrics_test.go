package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveGeneration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveGeneration("success", 1500*time.Millisecond)
	m.ObserveGeneration("success", time.Second)
	m.ObserveGeneration("provider", 200*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.GenerationTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationTotal.WithLabelValues("provider")))

	expected := `
# HELP metadesc_generation_total Total number of meta description generations by outcome
# TYPE metadesc_generation_total counter
metadesc_generation_total{outcome="provider"} 1
metadesc_generation_total{outcome="success"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "metadesc_generation_total"))

	count, err := testutil.GatherAndCount(reg, "metadesc_generation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestObserveHTTPRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveHTTPRequest("GET", "/api/meta-description/generate", 200, 30*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/meta-description/generate", 422, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues("GET", "/api/meta-description/generate", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues("GET", "/api/meta-description/generate", "422")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequestDuration))
}

func TestNew_RegistersOncePerRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
	assert.NotPanics(t, func() { New(prometheus.NewRegistry()) })
}
