package handler

import (
	"strconv"
	"time"

	"creator-settlement/internal/adapter/http/dto"
	"creator-settlement/internal/adapter/http/middleware"
	"creator-settlement/internal/core/domain"
	"creator-settlement/internal/core/ports"
	"creator-settlement/pkg/apperror"
	"creator-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EarningsHandler serves a user's accrual history out of the payment ledger.
type EarningsHandler struct {
	reconcilerSvc ports.ReconcilerService
}

// NewEarningsHandler creates a new EarningsHandler.
func NewEarningsHandler(reconcilerSvc ports.ReconcilerService) *EarningsHandler {
	return &EarningsHandler{reconcilerSvc: reconcilerSvc}
}

// ListEarnings handles GET /api/v1/earnings.
func (h *EarningsHandler) ListEarnings(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := h.reconcilerSvc.ListEarnings(c.Request.Context(), userID.(uuid.UUID), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.LedgerEntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, toLedgerEntryResponse(&entries[i]))
	}
	response.OK(c, items)
}

func toLedgerEntryResponse(e *domain.LedgerEntry) dto.LedgerEntryResponse {
	return dto.LedgerEntryResponse{
		ID:                 e.ID.String(),
		SourceType:         string(e.SourceType),
		SourceID:           e.SourceID.String(),
		SubmissionID:       e.SubmissionID.String(),
		PaymentType:        string(e.PaymentType),
		ViewsSnapshot:      e.ViewsSnapshot,
		Rate:               e.Rate,
		MilestoneThreshold: e.MilestoneThreshold,
		AccruedAmount:      e.AccruedAmount,
		PaidAmount:         e.PaidAmount,
		Status:             string(e.Status),
		LastCalculatedAt:   e.LastCalculatedAt.UTC().Format(time.RFC3339),
	}
}
