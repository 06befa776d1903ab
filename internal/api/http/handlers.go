package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/MathSearch/backend/internal/domain/examples"
	"github.com/GriffinCanCode/MathSearch/backend/internal/engine/solver"
	"github.com/GriffinCanCode/MathSearch/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/MathSearch/backend/internal/infrastructure/monitoring"
	mathProvider "github.com/GriffinCanCode/MathSearch/backend/internal/providers/math"
	"github.com/GriffinCanCode/MathSearch/backend/internal/service"
	"github.com/GriffinCanCode/MathSearch/backend/internal/shared/types"
	"github.com/GriffinCanCode/MathSearch/backend/internal/shared/utils"
)

// Version is reported by the root endpoint.
const Version = "1.0.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	registry    *service.Registry
	math        *mathProvider.Provider
	catalog     *examples.Catalog
	metrics     *HandlerMetrics
	snapshot    *monitoring.Metrics
	logger      *logging.Logger
	sanitizer   *Sanitizer
	maxQueryLen int
}

// NewHandlers creates a new handler set
func NewHandlers(
	registry *service.Registry,
	mathSvc *mathProvider.Provider,
	catalog *examples.Catalog,
	metrics *monitoring.Metrics,
	logger *logging.Logger,
	maxQueryLen int,
) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		registry:    registry,
		math:        mathSvc,
		catalog:     catalog,
		metrics:     NewHandlerMetrics(metrics),
		snapshot:    metrics,
		logger:      logger.Named("http"),
		sanitizer:   NewSanitizer(),
		maxQueryLen: maxQueryLen,
	}
}

// Root reports service identity
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "MathSearch",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	resp := gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	}
	if h.catalog != nil {
		resp["examples"] = h.catalog.Len()
	}
	c.JSON(http.StatusOK, resp)
}

// Evaluate computes an arithmetic expression
func (h *Handlers) Evaluate(c *gin.Context) {
	var req types.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateExpression(req.Expression, h.maxQueryLen); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.math.Evaluate(c.Request.Context(), map[string]interface{}{"expression": req.Expression}, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !result.Success {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": *result.Error,
			"kind":  result.Data["kind"],
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"expression": h.sanitizer.Clean(req.Expression),
		"display":    result.Data["display"],
		"value":      result.Data["result"],
	})
}

// Solve answers a free-form math question
func (h *Handlers) Solve(c *gin.Context) {
	var req types.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateQuery(req.Query, h.maxQueryLen); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, ok := h.math.SolveQuery(req.Query)
	if !ok {
		query := h.sanitizer.Clean(req.Query)
		c.JSON(http.StatusOK, gin.H{
			"matched": false,
			"query":   query,
			"speech":  solver.FallbackSpeech(query),
		})
		return
	}

	out := *res
	out.Expression = h.sanitizer.Clean(out.Expression)
	c.JSON(http.StatusOK, gin.H{
		"matched": true,
		"result":  out,
	})
}

// ListExamples returns the example query catalog
func (h *Handlers) ListExamples(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "example catalog not loaded"})
		return
	}

	category := c.Query("category")
	if err := utils.ValidateCategory(category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"examples":   h.catalog.ByCategory(category),
		"categories": h.catalog.Categories(),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")
	if err := utils.ValidateCategory(categoryStr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

// DiscoverServices discovers relevant services for a request
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateMessage(req.Message); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 || limit > 20 {
		limit = 5
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    h.sanitizer.Clean(req.Message),
		"services": h.registry.Discover(req.Message, limit),
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
	if err := utils.ValidateParams(req.Params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appCtx := &types.Context{SessionID: req.SessionID}
	if traceID := c.Writer.Header().Get("X-Trace-ID"); traceID != "" {
		appCtx.TraceID = &traceID
	}

	done := h.metrics.TrackToolCall(req.ToolID)
	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		done("error")
		h.logger.Warn("tool execution failed", zap.String("tool_id", req.ToolID), zap.Error(err))
		status := http.StatusNotFound
		if errors.Is(err, service.ErrInvalidToolID) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	if result.Success {
		done("success")
	} else {
		done("failure")
	}

	c.JSON(http.StatusOK, result)
}

// MetricsSnapshot returns current counters as JSON
func (h *Handlers) MetricsSnapshot(c *gin.Context) {
	if h.snapshot == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "metrics disabled"})
		return
	}
	c.JSON(http.StatusOK, h.snapshot.Snapshot())
}
