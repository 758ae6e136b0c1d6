package ports

import (
	"context"
	"time"

	"creator-settlement/internal/core/domain"

	"github.com/google/uuid"
)

// KeyDeriver derives a public deposit address for a chain family and index.
// Pure and deterministic; implemented by the keychain.
type KeyDeriver interface {
	Address(family domain.ChainFamily, index uint32) (string, error)
}

// AddressCache is the Redis fast path for idempotent address lookups.
type AddressCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil on miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// TokenService validates JWTs issued by the platform's identity service.
type TokenService interface {
	Generate(userID uuid.UUID, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Role   string
}

// SignatureService signs outbound notification payloads with HMAC-SHA256.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// --- Service Ports (Business Logic) ---

// DepositAddressRequest holds validated input for address allocation.
type DepositAddressRequest struct {
	Owner   domain.OwnerRef
	Network domain.Network
	Label   *string
}

// DepositAddressResult is the allocation outcome. AlreadyExists reports
// whether an active address for (owner, network) predated this call.
type DepositAddressResult struct {
	Address         string         `json:"address"`
	Network         domain.Network `json:"network"`
	DerivationIndex uint32         `json:"derivation_index"`
	AlreadyExists   bool           `json:"already_exists"`
}

// DepositAddressService allocates deterministic deposit addresses.
type DepositAddressService interface {
	GetOrCreate(ctx context.Context, req DepositAddressRequest) (*DepositAddressResult, error)
}

// ReconcileFilter optionally narrows a reconciliation run to one source.
type ReconcileFilter struct {
	SourceType *domain.SourceType
	SourceID   *uuid.UUID
}

// ReconcileReport is returned for observability after a run. SourcesFailed
// counts campaigns and boosts whose accrual errored; the sweep continues past
// them and retries on the next run.
type ReconcileReport struct {
	CampaignsProcessed int   `json:"campaigns_processed"`
	BoostsProcessed    int   `json:"boosts_processed"`
	EntriesCreated     int   `json:"entries_created"`
	EntriesUpdated     int   `json:"entries_updated"`
	SourcesFailed      int   `json:"sources_failed"`
	AmountCredited     int64 `json:"amount_credited"`
}

// ReconcilerService computes incremental earnings and credits balances.
type ReconcilerService interface {
	Run(ctx context.Context, filter ReconcileFilter) (*ReconcileReport, error)
	BackfillLegacy(ctx context.Context) (*ReconcileReport, error)
	ListEarnings(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error)
}

// TaxService decides tax-form gating and withholding rates.
type TaxService interface {
	CheckRequirement(ctx context.Context, userID uuid.UUID, payoutAmount int64) (*domain.TaxRequirement, error)
	// UsableForm returns the verified, unexpired form for the user, or nil.
	UsableForm(ctx context.Context, userID uuid.UUID) (*domain.TaxForm, error)
	WithholdingRate(ctx context.Context, form *domain.TaxForm) int
}

// WithdrawalParams holds validated input for the withdrawal state machine.
type WithdrawalParams struct {
	UserID        uuid.UUID
	Role          string
	Amount        int64
	PayoutMethod  domain.PayoutMethod
	PayoutDetails domain.PayoutDetails
}

// WithdrawalResult is the outcome of a successful withdrawal request.
type WithdrawalResult struct {
	Request      *domain.WithdrawalRequest
	BalanceAfter int64
}

// WithdrawalService is the single atomic entry point that validates, debits,
// and records a withdrawal request.
type WithdrawalService interface {
	RequestWithdrawal(ctx context.Context, params WithdrawalParams) (*WithdrawalResult, error)
	ListRequests(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WithdrawalRequest, error)
	GetBalance(ctx context.Context, userID uuid.UUID) (int64, error)
}

// NotificationService reports settlement events outward on a best-effort,
// non-blocking basis. Failures are logged and swallowed; they never roll
// back a settlement operation.
type NotificationService interface {
	WithdrawalRequested(ctx context.Context, req *domain.WithdrawalRequest)
	BalanceCredited(ctx context.Context, userID uuid.UUID, amount int64, submissionID uuid.UUID)
}
