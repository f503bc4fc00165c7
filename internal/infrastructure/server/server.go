package server

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/SciCalc/backend/internal/api/http"
	"github.com/GriffinCanCode/SciCalc/backend/internal/api/middleware"
	"github.com/GriffinCanCode/SciCalc/backend/internal/api/ws"
	"github.com/GriffinCanCode/SciCalc/backend/internal/domain/history"
	"github.com/GriffinCanCode/SciCalc/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/SciCalc/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/SciCalc/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/SciCalc/backend/internal/infrastructure/storage"
	"github.com/GriffinCanCode/SciCalc/backend/internal/infrastructure/tracing"
	mathProvider "github.com/GriffinCanCode/SciCalc/backend/internal/providers/math"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/expr"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/theme"
	"github.com/GriffinCanCode/SciCalc/backend/internal/service"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	http     *nethttp.Server
	registry *service.Registry
	db       *storage.DB
	tracer   *tracing.Tracer
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	return newServer(cfg, monitoring.NewMetrics(), logging.NewFromSettings(cfg.Logging.Level, cfg.Logging.Development))
}

func newServer(cfg *config.Config, metrics *monitoring.Metrics, logger *logging.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	unit, err := expr.ParseUnit(cfg.Calculator.DefaultUnit)
	if err != nil {
		return nil, fmt.Errorf("invalid default unit: %w", err)
	}

	logger.Info("Initializing calculator server",
		zap.String("port", cfg.Server.Port),
		zap.String("db", cfg.Storage.Path),
		zap.String("default_unit", string(unit)),
	)

	tracer := tracing.New("calculator", logger.Logger)

	db, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		tracer.Close()
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	logger.Info("Storage opened", zap.String("path", db.Path()))

	calc := mathProvider.NewProvider(mathProvider.Options{
		Unit:          unit,
		Precision:     cfg.Calculator.DefaultPrecision,
		MaxPrecision:  cfg.Calculator.MaxPrecision,
		MaxExpression: cfg.Calculator.MaxExpression,
	}, logger.Logger)
	themes := theme.NewProvider(context.Background(), db, logger.Logger)

	registry := service.NewRegistry()
	for _, p := range []service.Provider{calc, themes} {
		if err := registry.Register(p); err != nil {
			db.Close()
			tracer.Close()
			return nil, fmt.Errorf("failed to register %s provider: %w", p.Definition().ID, err)
		}
	}
	logger.Info("Service providers registered", zap.Int("count", len(registry.List(nil))))

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(rl))
	}
	router.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	handlers := http.NewHandlers(http.Dependencies{
		Calculator:   calc,
		History:      history.NewStore(db.SQL()),
		Theme:        themes,
		Registry:     registry,
		DB:           db,
		Metrics:      http.NewHandlerMetrics(metrics),
		Tracer:       tracer,
		Logger:       logger.Logger,
		HistoryLimit: cfg.Calculator.HistoryLimit,
	})
	handlers.Register(router)

	wsHandler := ws.NewHandler(calc, themes, logger.Logger)
	router.GET("/stream", wsHandler.HandleConnection)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Gatherer(), promhttp.HandlerOpts{})))

	logger.Info("Server initialized successfully")

	return &Server{
		router: router,
		http: &nethttp.Server{
			Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		registry: registry,
		db:       db,
		tracer:   tracer,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() nethttp.Handler {
	return s.router
}

// Run starts the HTTP server and blocks until it stops. A shutdown is not an error.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Close gracefully shuts down the server, then releases storage and tracing
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error("Failed to shut down HTTP server", zap.Error(err))
		errs = append(errs, fmt.Errorf("failed to shut down http server: %w", err))
	}
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close storage", zap.Error(err))
		errs = append(errs, fmt.Errorf("failed to close storage: %w", err))
	} else {
		s.logger.Info("Closed storage")
	}
	s.tracer.Close()

	// Sync logger before exit
	_ = s.logger.Sync()

	return errors.Join(errs...)
}
