package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewMetricsWith(reg, reg)
}

func TestRecordEvaluation(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordEvaluation("number", "deg")
	m.RecordEvaluation("number", "rad")
	m.RecordEvaluation("undefined", "deg")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("number", "deg")))
	assert.Equal(t, map[string]int64{"number": 2, "undefined": 1}, m.Summary().Evaluations)
}

func TestRecordSample(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordSample("deg", 2*time.Millisecond, 3)
	m.RecordSample("deg", time.Millisecond, 1)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.SampleGaps.WithLabelValues("deg")))
}

func TestSummary(t *testing.T) {
	m := newTestMetrics(t)
	assert.Zero(t, m.Summary().ErrorRate)

	m.RecordHTTPRequest("POST", "/calculate", "200", 10*time.Millisecond, 10, 20)
	m.RecordHTTPRequest("POST", "/calculate", "422", 30*time.Millisecond, 10, 20)

	s := m.Summary()
	assert.Equal(t, int64(2), s.TotalRequests)
	assert.InDelta(t, 20.0, s.AverageLatencyMs, 1e-9)
	assert.Equal(t, 0.5, s.ErrorRate)
}

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newTestMetrics(t)

	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/items/:id", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	for _, path := range []string{"/items/1", "/items/2", "/missing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/items/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestGathererExposesUptime(t *testing.T) {
	m := newTestMetrics(t)

	families, err := m.Gatherer().Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["calculator_uptime_seconds"])
}

func TestTimer(t *testing.T) {
	m := newTestMetrics(t)

	NewTimer(m, "math", "math.evaluate").Stop("success")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ServiceCalls.WithLabelValues("math", "math.evaluate", "success")))
}
