package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Service metrics
	ServiceCalls    *prometheus.CounterVec
	ServiceDuration *prometheus.HistogramVec
	ServiceErrors   *prometheus.CounterVec

	// Calculator metrics
	Evaluations    *prometheus.CounterVec
	SampleDuration *prometheus.HistogramVec
	SampleGaps     *prometheus.CounterVec
	HistoryAppends prometheus.Counter
	ThemeChanges   *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.GaugeFunc
	startTime time.Time

	gatherer prometheus.Gatherer

	// Snapshot for JSON API - track current values
	snapshot Snapshot
	mu       sync.RWMutex
}

// Snapshot holds current metric values for the JSON summary
type Snapshot struct {
	TotalRequests int64
	TotalErrors   int64
	TotalDuration float64 // sum of all request durations
	Evaluations   map[string]int64
}

// NewMetrics registers the collectors with the default Prometheus registry
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// NewMetricsWith registers the collectors with reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not collide.
func NewMetricsWith(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{
		startTime: time.Now(),
		gatherer:  gatherer,
		snapshot:  Snapshot{Evaluations: map[string]int64{}},

		// HTTP metrics
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calculator_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calculator_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "path"},
		),
		RequestSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calculator_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{64, 256, 1024, 4096, 16384, 65536},
			},
			[]string{"method", "path"},
		),
		ResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calculator_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),

		// Service metrics
		ServiceCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calculator_service_calls_total",
				Help: "Total number of service tool calls",
			},
			[]string{"service", "method", "status"},
		),
		ServiceDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calculator_service_duration_seconds",
				Help:    "Service tool call duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"service", "method"},
		),
		ServiceErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calculator_service_errors_total",
				Help: "Total number of service errors",
			},
			[]string{"service", "method", "error_type"},
		),

		// Calculator metrics
		Evaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calculator_evaluations_total",
				Help: "Single evaluations by outcome kind",
			},
			[]string{"kind", "unit"},
		),
		SampleDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calculator_sample_duration_seconds",
				Help:    "Time to sample an expression across its plot range",
				Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
			},
			[]string{"unit"},
		),
		SampleGaps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calculator_sample_gaps_total",
				Help: "Sample points that could not be evaluated",
			},
			[]string{"unit"},
		),
		HistoryAppends: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "calculator_history_appends_total",
				Help: "Calculations recorded in history",
			},
		),
		ThemeChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calculator_theme_changes_total",
				Help: "Theme changes by resulting mode",
			},
			[]string{"mode"},
		),
	}

	m.Uptime = factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "calculator_uptime_seconds",
			Help: "Backend uptime in seconds",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	return m
}

// Gatherer returns the registry the metrics are exposed from
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.gatherer
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))

	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.TotalDuration += duration.Seconds()
	if status != "" && (status[0] == '4' || status[0] == '5') {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// RecordServiceCall records a service call
func (m *Metrics) RecordServiceCall(service, method, status string, duration time.Duration) {
	m.ServiceCalls.WithLabelValues(service, method, status).Inc()
	m.ServiceDuration.WithLabelValues(service, method).Observe(duration.Seconds())
}

// RecordServiceError records a service error
func (m *Metrics) RecordServiceError(service, method, errorType string) {
	m.ServiceErrors.WithLabelValues(service, method, errorType).Inc()
}

// RecordEvaluation counts one single-value evaluation
func (m *Metrics) RecordEvaluation(kind, unit string) {
	m.Evaluations.WithLabelValues(kind, unit).Inc()

	m.mu.Lock()
	m.snapshot.Evaluations[kind]++
	m.mu.Unlock()
}

// RecordSample records one sampling pass
func (m *Metrics) RecordSample(unit string, duration time.Duration, gaps int) {
	m.SampleDuration.WithLabelValues(unit).Observe(duration.Seconds())
	m.SampleGaps.WithLabelValues(unit).Add(float64(gaps))
}

// IncHistoryAppends counts a recorded calculation
func (m *Metrics) IncHistoryAppends() {
	m.HistoryAppends.Inc()
}

// RecordThemeChange counts a switch to mode
func (m *Metrics) RecordThemeChange(mode string) {
	m.ThemeChanges.WithLabelValues(mode).Inc()
}

// Summary is the JSON view of the snapshot
type Summary struct {
	TotalRequests    int64            `json:"total_requests"`
	AverageLatencyMs float64          `json:"average_latency_ms"`
	ErrorRate        float64          `json:"error_rate"`
	Evaluations      map[string]int64 `json:"evaluations"`
	UptimeSeconds    float64          `json:"uptime_seconds"`
}

// Summary returns request totals and evaluation counts since startup
func (m *Metrics) Summary() Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Summary{
		TotalRequests: m.snapshot.TotalRequests,
		Evaluations:   make(map[string]int64, len(m.snapshot.Evaluations)),
		UptimeSeconds: time.Since(m.startTime).Seconds(),
	}
	for k, v := range m.snapshot.Evaluations {
		s.Evaluations[k] = v
	}
	if m.snapshot.TotalRequests > 0 {
		n := float64(m.snapshot.TotalRequests)
		s.AverageLatencyMs = m.snapshot.TotalDuration / n * 1000
		s.ErrorRate = float64(m.snapshot.TotalErrors) / n
	}
	return s
}
