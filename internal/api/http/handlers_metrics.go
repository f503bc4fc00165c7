package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/SciCalc/backend/internal/infrastructure/monitoring"
)

// HandlerMetrics wraps handlers with metrics tracking. A nil HandlerMetrics
// records nothing.
type HandlerMetrics struct {
	metrics *monitoring.Metrics
}

// NewHandlerMetrics creates a metrics wrapper
func NewHandlerMetrics(metrics *monitoring.Metrics) *HandlerMetrics {
	return &HandlerMetrics{metrics: metrics}
}

func (hm *HandlerMetrics) enabled() bool {
	return hm != nil && hm.metrics != nil
}

// TrackServiceOperation times a registry tool call; call the result with its status
func (hm *HandlerMetrics) TrackServiceOperation(toolID string) func(status string) {
	if !hm.enabled() {
		return func(string) {}
	}
	return monitoring.NewTimer(hm.metrics, "service_registry", toolID).Stop
}

// RecordServiceError counts a failed registry call
func (hm *HandlerMetrics) RecordServiceError(toolID, errorType string) {
	if hm.enabled() {
		hm.metrics.RecordServiceError("service_registry", toolID, errorType)
	}
}

// RecordEvaluation counts an evaluation outcome
func (hm *HandlerMetrics) RecordEvaluation(kind, unit string) {
	if hm.enabled() {
		hm.metrics.RecordEvaluation(kind, unit)
	}
}

// RecordSample records a sampling pass
func (hm *HandlerMetrics) RecordSample(unit string, duration time.Duration, gaps int) {
	if hm.enabled() {
		hm.metrics.RecordSample(unit, duration, gaps)
	}
}

// IncHistoryAppends counts a recorded calculation
func (hm *HandlerMetrics) IncHistoryAppends() {
	if hm.enabled() {
		hm.metrics.IncHistoryAppends()
	}
}

// RecordThemeChange counts a theme switch
func (hm *HandlerMetrics) RecordThemeChange(mode string) {
	if hm.enabled() {
		hm.metrics.RecordThemeChange(mode)
	}
}

// MetricsSummary returns request and evaluation totals as JSON
func (h *Handlers) MetricsSummary(c *gin.Context) {
	if !h.metrics.enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "metrics disabled"})
		return
	}
	c.JSON(http.StatusOK, h.metrics.metrics.Summary())
}
