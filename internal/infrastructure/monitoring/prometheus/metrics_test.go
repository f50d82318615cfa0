package prometheus

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_RegistersWithoutCollision(t *testing.T) {
	// Two instances must not panic: each owns its registry.
	a := NewMetrics()
	b := NewMetrics()
	assert.NotNil(t, a.Registry())
	assert.NotNil(t, b.Registry())
}

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.MatchRequestsTotal.WithLabelValues("genre_aware").Inc()
	m.MatchRequestsTotal.WithLabelValues("genre_aware").Inc()
	m.MatchCacheHits.Inc()
	m.GesturesTotal.WithLabelValues("wheel").Inc()
	m.ActiveSessions.Set(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.MatchRequestsTotal.WithLabelValues("genre_aware")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MatchCacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GesturesTotal.WithLabelValues("wheel")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ActiveSessions))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.BlendRequestsTotal.Inc()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "cinestyle_blend_requests_total 1")
}
