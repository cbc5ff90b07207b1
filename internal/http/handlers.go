package http

import (
	"net/http"
	"strings"

	"github.com/codeforge-ide/codeforge/backend/internal/fs"
	"github.com/codeforge-ide/codeforge/backend/internal/monitoring"
	"github.com/codeforge-ide/codeforge/backend/internal/service"
	"github.com/codeforge-ide/codeforge/backend/internal/types"
	"github.com/codeforge-ide/codeforge/backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// Version is reported by the root and health endpoints.
const Version = "0.3.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	fsvc     *fs.Service
	metrics  *monitoring.Metrics
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, fsvc *fs.Service, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		registry: registry,
		fsvc:     fsvc,
		metrics:  metrics,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "CodeForge Backend",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
		"filesystem": gin.H{
			"watched_paths": len(h.fsvc.WatchedPaths()),
		},
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	// Validate category if provided
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

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Validate tool ID
	if err := utils.ValidateToolID(req.ToolID, "tool_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Validate app ID if provided
	if req.AppID != nil {
		if err := utils.ValidateID(*req.AppID, "app_id", false); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	var ctx *types.Context
	if req.AppID != nil {
		ctx = &types.Context{AppID: req.AppID}
	}

	serviceID := strings.SplitN(req.ToolID, ".", 2)[0]
	timer := monitoring.NewTimer(h.metrics, serviceID, req.ToolID)

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, ctx)
	if err != nil {
		timer.Stop("error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := "success"
	if !result.Success {
		status = "failure"
		code := "UNKNOWN_ERROR"
		if result.ErrorCode != nil {
			code = *result.ErrorCode
		}
		h.metrics.RecordServiceError(serviceID, req.ToolID, code)
	}
	timer.Stop(status)

	c.JSON(http.StatusOK, result)
}
