package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/primecore/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/primecore/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/primecore/internal/service"
	"github.com/GriffinCanCode/primecore/internal/shared/id"
	"github.com/GriffinCanCode/primecore/internal/shared/types"
	"github.com/GriffinCanCode/primecore/internal/shared/utils"
)

// Version is reported by the root and health endpoints
const Version = "0.3.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	tracer   *tracing.Tracer
	logger   *zap.Logger
	started  time.Time
}

// NewHandlers creates a new handler set
func NewHandlers(
	registry *service.Registry,
	metrics *monitoring.Metrics,
	tracer *tracing.Tracer,
	logger *zap.Logger,
) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		registry: registry,
		metrics:  metrics,
		tracer:   tracer,
		logger:   logger,
		started:  time.Now(),
	}
}

// Root handles the liveness check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "primecore",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"version":          Version,
		"uptime_seconds":   time.Since(h.started).Seconds(),
		"service_registry": h.registry.Stats(),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	if categoryStr != "" {
		if err := utils.ValidateCategory(categoryStr, false); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
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

// DiscoverServices ranks services against a free-text request
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

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Message,
		"services": h.registry.Discover(req.Message, 5),
	})
}

// ExecuteService executes a service tool. Tool failures are reported in the
// result body with status 200; only malformed requests get a 4xx.
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
	if req.ClientID != nil {
		if err := utils.ValidateID(*req.ClientID, "client_id", false); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := h.execute(c.Request.Context(), req.ToolID, req.Params, req.ClientID)
	if result == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// execute runs one tool inside a child span. A non-nil error always comes
// with a nil or failed result.
func (h *Handlers) execute(ctx context.Context, toolID string, params map[string]interface{}, clientID *string) (*types.Result, error) {
	span, ctx := h.tracer.StartSpan(ctx, "tool "+toolID)
	defer func() {
		span.Finish()
		h.tracer.Submit(span)
	}()

	requestID := id.NewRequestID().String()
	span.SetTag("tool.id", toolID)
	span.SetTag("request.id", requestID)

	result, err := h.registry.Execute(ctx, toolID, params, &types.Context{
		RequestID: &requestID,
		ClientID:  clientID,
	})
	if err != nil {
		span.SetError(err)
		h.logger.Debug("tool dispatch failed",
			zap.String("tool_id", toolID),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
	if result != nil && !result.Success {
		span.SetTag("error.kind", result.ErrorKind)
	}
	return result, err
}
