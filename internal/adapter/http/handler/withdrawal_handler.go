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

// WithdrawalHandler handles payout request and wallet endpoints.
type WithdrawalHandler struct {
	withdrawalSvc ports.WithdrawalService
}

// NewWithdrawalHandler creates a new WithdrawalHandler.
func NewWithdrawalHandler(withdrawalSvc ports.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalSvc: withdrawalSvc}
}

// RequestWithdrawal handles POST /api/v1/withdrawals.
func (h *WithdrawalHandler) RequestWithdrawal(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	role := c.GetString(middleware.CtxRole)

	var req dto.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	method, err := domain.ParsePayoutMethod(req.PayoutMethod)
	if err != nil {
		response.Error(c, apperror.ErrUnsupportedPayoutMethod(req.PayoutMethod))
		return
	}

	details, err := toPayoutDetails(method, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.withdrawalSvc.RequestWithdrawal(c.Request.Context(), ports.WithdrawalParams{
		UserID:        userID.(uuid.UUID),
		Role:          role,
		Amount:        req.Amount,
		PayoutMethod:  method,
		PayoutDetails: details,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toWithdrawalResponse(result.Request, result.BalanceAfter))
}

// ListWithdrawals handles GET /api/v1/withdrawals.
func (h *WithdrawalHandler) ListWithdrawals(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	requests, err := h.withdrawalSvc.ListRequests(c.Request.Context(), userID.(uuid.UUID), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.WithdrawalResponse, 0, len(requests))
	for i := range requests {
		items = append(items, toWithdrawalResponse(&requests[i], 0))
	}
	response.OK(c, items)
}

// GetWallet handles GET /api/v1/wallet.
func (h *WithdrawalHandler) GetWallet(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	balance, err := h.withdrawalSvc.GetBalance(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WalletResponse{AvailableBalance: balance})
}

// toPayoutDetails maps the request body onto the domain variant and runs
// network-specific address validation for crypto payouts.
func toPayoutDetails(method domain.PayoutMethod, req dto.WithdrawalRequest) (domain.PayoutDetails, error) {
	var details domain.PayoutDetails
	switch method {
	case domain.MethodCrypto:
		if req.Crypto == nil {
			return details, apperror.ErrInvalidPayoutDetails("crypto payout details required")
		}
		network, err := domain.ParseNetwork(req.Crypto.Network)
		if err != nil {
			return details, apperror.ErrUnsupportedNetwork(req.Crypto.Network)
		}
		if err := dto.ValidateCryptoAddress(network, req.Crypto.WalletAddress); err != nil {
			return details, apperror.ErrInvalidPayoutDetails(err.Error())
		}
		details.Crypto = &domain.CryptoPayoutDetails{
			WalletAddress: req.Crypto.WalletAddress,
			Network:       network,
		}
	case domain.MethodBankTransfer:
		if req.Bank == nil {
			return details, apperror.ErrInvalidPayoutDetails("bank payout details required")
		}
		details.Bank = &domain.BankPayoutDetails{
			AccountName:   req.Bank.AccountName,
			AccountNumber: req.Bank.AccountNumber,
			RoutingNumber: req.Bank.RoutingNumber,
		}
	case domain.MethodPayPal:
		if req.PayPal == nil {
			return details, apperror.ErrInvalidPayoutDetails("paypal payout details required")
		}
		details.PayPal = &domain.PayPalPayoutDetails{Email: req.PayPal.Email}
	}
	return details, nil
}

func toWithdrawalResponse(req *domain.WithdrawalRequest, balanceAfter int64) dto.WithdrawalResponse {
	resp := dto.WithdrawalResponse{
		ID:                req.ID.String(),
		Amount:            req.Amount,
		PayoutMethod:      string(req.PayoutMethod),
		Status:            string(req.Status),
		WithholdingRate:   req.WithholdingRate,
		WithholdingAmount: req.WithholdingAmount,
		NetAmount:         req.NetAmount,
		BalanceAfter:      balanceAfter,
		CreatedAt:         req.CreatedAt.UTC().Format(time.RFC3339),
	}
	if req.ProcessedAt != nil {
		s := req.ProcessedAt.UTC().Format(time.RFC3339)
		resp.ProcessedAt = &s
	}
	return resp
}
