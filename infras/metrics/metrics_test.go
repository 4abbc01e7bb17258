package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"rideflow/infras/metrics"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()

	m.BookingsCreated.WithLabelValues("sedan").Inc()
	m.BookingsCreated.WithLabelValues("sedan").Inc()
	m.FareEstimates.WithLabelValues("mini").Inc()

	assert.InDelta(t, 2, testutil.ToFloat64(m.BookingsCreated.WithLabelValues("sedan")), 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `rideflow_bookings_created_total{vehicle_type="sedan"} 2`)
	assert.Contains(t, string(body), `rideflow_fare_estimates_total{vehicle_type="mini"} 1`)
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New()
		metrics.New()
	})
}
