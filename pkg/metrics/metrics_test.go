package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveExternal(t *testing.T) {
	m := New("test-service")

	m.ObserveExternal("geocoder", "success", 150*time.Millisecond)
	m.ObserveExternal("geocoder", "success", 50*time.Millisecond)
	m.ObserveExternal("payment_gateway", "error", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ExternalRequestsTotal.WithLabelValues("geocoder", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExternalRequestsTotal.WithLabelValues("payment_gateway", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.ExternalRequestDuration))
}

func TestObserveExternal_NilCollectorIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveExternal("geocoder", "success", time.Millisecond)
	})
}
