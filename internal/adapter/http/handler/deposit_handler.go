package handler

import (
	"creator-settlement/internal/adapter/http/dto"
	"creator-settlement/internal/adapter/http/middleware"
	"creator-settlement/internal/core/domain"
	"creator-settlement/internal/core/ports"
	"creator-settlement/pkg/apperror"
	"creator-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DepositHandler handles deposit-address endpoints.
type DepositHandler struct {
	depositSvc ports.DepositAddressService
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(depositSvc ports.DepositAddressService) *DepositHandler {
	return &DepositHandler{depositSvc: depositSvc}
}

// CreateDepositAddress handles POST /api/v1/deposit-addresses.
// Without brand_id the address belongs to the authenticated user. With
// brand_id the caller must hold the brand or admin role.
func (h *DepositHandler) CreateDepositAddress(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	role := c.GetString(middleware.CtxRole)

	var req dto.DepositAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	network, err := domain.ParseNetwork(req.Network)
	if err != nil {
		response.Error(c, apperror.ErrUnsupportedNetwork(req.Network))
		return
	}

	var owner domain.OwnerRef
	if req.BrandID != nil {
		if role != "brand" && role != "admin" {
			response.Error(c, apperror.ErrForbidden())
			return
		}
		brandID, err := uuid.Parse(*req.BrandID)
		if err != nil {
			response.Error(c, apperror.ErrInvalidOwner("brand_id must be a UUID"))
			return
		}
		owner = domain.OwnerRef{BrandID: &brandID}
	} else {
		uid := userID.(uuid.UUID)
		owner = domain.OwnerRef{UserID: &uid}
	}

	result, err := h.depositSvc.GetOrCreate(c.Request.Context(), ports.DepositAddressRequest{
		Owner:   owner,
		Network: network,
		Label:   req.Label,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	body := dto.DepositAddressResponse{
		Address:         result.Address,
		Network:         string(result.Network),
		DerivationIndex: result.DerivationIndex,
		AlreadyExists:   result.AlreadyExists,
	}
	if result.AlreadyExists {
		response.OK(c, body)
		return
	}
	response.Created(c, body)
}
