package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses. Details carries
// machine-readable context (available balance, required form type, pending
// request id) so the caller can render an actionable message.
type AppError struct {
	Code       string                 `json:"error_code"`
	Message    string                 `json:"message"`
	HTTPStatus int                    `json:"-"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Err        error                  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail attaches a machine-readable detail field.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL): rejected before any state mutation ----

func ErrInvalidAmount() *AppError {
	return New("VAL_001", "Invalid amount", http.StatusBadRequest)
}

func ErrUnsupportedNetwork(network string) *AppError {
	return New("VAL_002", fmt.Sprintf("Unsupported network: %s", network), http.StatusBadRequest)
}

func ErrInvalidOwner(reason string) *AppError {
	return New("VAL_003", reason, http.StatusBadRequest)
}

func ErrInvalidPayoutDetails(reason string) *AppError {
	return New("VAL_004", reason, http.StatusBadRequest)
}

func ErrUnsupportedPayoutMethod(method string) *AppError {
	return New("VAL_005", fmt.Sprintf("Unsupported payout method: %s", method), http.StatusBadRequest)
}

// Validation returns a generic VAL_001-style validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Payout Policy (POL): structured rejections the user can act on ----

func ErrInsufficientBalance(requested, available int64) *AppError {
	return New("POL_001", "Insufficient withdrawable balance", http.StatusBadRequest).
		WithDetail("requested_amount", requested).
		WithDetail("available_balance", available)
}

func ErrBelowMinimum(method string, minimum int64) *AppError {
	return New("POL_002", "Amount below payout method minimum", http.StatusBadRequest).
		WithDetail("payout_method", method).
		WithDetail("minimum_amount", minimum)
}

func ErrMethodDisabled(method string) *AppError {
	return New("POL_003", fmt.Sprintf("Payout method %s is disabled", method), http.StatusBadRequest)
}

func ErrTaxFormRequired(formType, reason string) *AppError {
	e := New("POL_004", "Tax form required before payout", http.StatusBadRequest).
		WithDetail("reason", reason)
	if formType != "" {
		e.WithDetail("form_type", formType)
	}
	return e
}

func ErrPendingRequestExists(requestID string) *AppError {
	return New("POL_005", "A payout request is already pending", http.StatusConflict).
		WithDetail("pending_request_id", requestID)
}

// ---- Authentication / Authorization (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_002", "Not authorized for this owner", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrNotFound(entity string) *AppError {
	return New("SYS_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
