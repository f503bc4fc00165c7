package server

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/GriffinCanCode/SciCalc/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/SciCalc/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/SciCalc/backend/internal/infrastructure/monitoring"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "calc.db")
	cfg.Server.Port = "0"
	if mutate != nil {
		mutate(cfg)
	}

	reg := prometheus.NewRegistry()
	srv, err := newServer(cfg, monitoring.NewMetricsWith(reg, reg), logging.Wrap(zaptest.NewLogger(t)))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, srv.Close()) })
	return srv
}

func TestServerRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(`{"expression":"sin(90)"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"result":1`)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "calculator_evaluations_total")
}

func TestServerBodyLimit(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) { cfg.Server.MaxBodyBytes = 16 })

	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(`{"expression":"1+1+1+1+1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestServerRejectsBadUnit(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "calc.db")
	cfg.Calculator.DefaultUnit = "grad"

	reg := prometheus.NewRegistry()
	_, err := newServer(cfg, monitoring.NewMetricsWith(reg, reg), logging.Wrap(zaptest.NewLogger(t)))
	assert.Error(t, err)
}
