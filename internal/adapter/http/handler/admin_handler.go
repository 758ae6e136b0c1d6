package handler

import (
	"net/http"

	"creator-settlement/internal/adapter/http/dto"
	"creator-settlement/internal/core/domain"
	"creator-settlement/internal/core/ports"
	"creator-settlement/pkg/apperror"
	"creator-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles operator-only endpoints.
type AdminHandler struct {
	reconcilerSvc ports.ReconcilerService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(reconcilerSvc ports.ReconcilerService) *AdminHandler {
	return &AdminHandler{reconcilerSvc: reconcilerSvc}
}

// Reconcile handles POST /api/v1/admin/reconcile. An empty body runs a full
// sweep; source_type plus source_id narrow the run to one campaign or boost.
func (h *AdminHandler) Reconcile(c *gin.Context) {
	var req dto.ReconcileRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}

	var filter ports.ReconcileFilter
	if req.SourceType != nil {
		st := domain.SourceType(*req.SourceType)
		filter.SourceType = &st
	}
	if req.SourceID != nil {
		id, err := uuid.Parse(*req.SourceID)
		if err != nil {
			response.Error(c, apperror.Validation("source_id must be a UUID"))
			return
		}
		filter.SourceID = &id
	}

	report, err := h.reconcilerSvc.Run(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, report)
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
