package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/SciCalc/backend/internal/domain/history"
	"github.com/GriffinCanCode/SciCalc/backend/internal/infrastructure/storage"
	"github.com/GriffinCanCode/SciCalc/backend/internal/infrastructure/tracing"
	mathProvider "github.com/GriffinCanCode/SciCalc/backend/internal/providers/math"
	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/theme"
	"github.com/GriffinCanCode/SciCalc/backend/internal/service"
	"github.com/GriffinCanCode/SciCalc/backend/internal/shared/types"
	"github.com/GriffinCanCode/SciCalc/backend/internal/shared/utils"
)

// Version is reported by the root endpoint
const Version = "1.0.0"

// Dependencies are the collaborators the handlers need
type Dependencies struct {
	Calculator   *mathProvider.Provider
	History      *history.Store
	Theme        *theme.Provider
	Registry     *service.Registry
	DB           *storage.DB
	Metrics      *HandlerMetrics
	Tracer       *tracing.Tracer
	Logger       *zap.Logger
	HistoryLimit int
}

// Handlers contains all HTTP handlers
type Handlers struct {
	calc         *mathProvider.Provider
	history      *history.Store
	theme        *theme.Provider
	registry     *service.Registry
	db           *storage.DB
	metrics      *HandlerMetrics
	tracer       *tracing.Tracer
	logger       *zap.Logger
	historyLimit int
}

// NewHandlers creates a new handler set
func NewHandlers(deps Dependencies) *Handlers {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := deps.HistoryLimit
	if limit <= 0 {
		limit = 100
	}
	return &Handlers{
		calc:         deps.Calculator,
		history:      deps.History,
		theme:        deps.Theme,
		registry:     deps.Registry,
		db:           deps.DB,
		metrics:      deps.Metrics,
		tracer:       deps.Tracer,
		logger:       logger.Named("http"),
		historyLimit: limit,
	}
}

// Register mounts every route on router
func (h *Handlers) Register(router gin.IRouter) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/metrics/summary", h.MetricsSummary)

	// Calculator
	router.POST("/calculate", h.Calculate)
	router.POST("/plot", h.Plot)
	router.POST("/rewrite", h.Rewrite)

	// History
	router.GET("/history", h.ListHistory)
	router.DELETE("/history", h.ClearHistory)
	router.GET("/history/export", h.ExportHistory)

	// Theme
	router.GET("/theme", h.GetTheme)
	router.PUT("/theme", h.SetTheme)
	router.POST("/theme/toggle", h.ToggleTheme)

	// Services
	router.GET("/services", h.ListServices)
	router.POST("/services/execute", h.ExecuteService)

	// UI logs
	router.POST("/logs", h.StreamLogs)
}

// Root handles the liveness check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Scientific Calculator",
		"version": Version,
	})
}

// Health reports database reachability and component stats
func (h *Handlers) Health(c *gin.Context) {
	status := http.StatusOK
	db := gin.H{"connected": false}
	if h.db != nil {
		if err := h.db.Ping(c.Request.Context()); err != nil {
			h.logger.Error("database ping failed", zap.Error(err))
			db["error"] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			db["connected"] = true
			db["path"] = h.db.Path()
		}
	}

	body := gin.H{
		"status":           "healthy",
		"database":         db,
		"service_registry": h.registry.Stats(),
		"theme":            string(h.theme.Current()),
	}
	if status != http.StatusOK {
		body["status"] = "degraded"
	} else if n, err := h.history.Count(c.Request.Context()); err == nil {
		body["history_entries"] = n
	}
	c.JSON(status, body)
}

// ListServices lists available services, ranked by relevance when q is given
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")
	if err := utils.ValidateCategory(categoryStr, false); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if q := c.Query("q"); q != "" {
		limit := 5
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
				return
			}
			limit = n
		}
		c.JSON(http.StatusOK, gin.H{"services": h.registry.Discover(q, limit)})
		return
	}

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateToolID(req.ToolID, "tool_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID := string(tracing.GetTraceID(c.Request.Context()))
	clientIP := c.ClientIP()
	appCtx := &types.Context{RequestID: &requestID, ClientIP: &clientIP}

	done := h.metrics.TrackServiceOperation(req.ToolID)
	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		done("error")
		h.metrics.RecordServiceError(req.ToolID, "execute")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if result.Success {
		done("success")
	} else {
		done("failure")
	}

	c.JSON(http.StatusOK, result)
}
