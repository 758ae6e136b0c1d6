package ports

import (
	"context"
	"errors"

	"creator-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrDuplicateKey is returned by repositories when an insert hits a unique
// constraint. Services treat it as "a concurrent call already did this" and
// resolve idempotently instead of failing.
var ErrDuplicateKey = errors.New("duplicate key")

// DerivationCounterRepository allocates derivation indices. AllocateNext is a
// single atomic increment against the shared counter row: no caller may ever
// compute max-existing-index+1 by scanning address rows.
type DerivationCounterRepository interface {
	AllocateNext(ctx context.Context, tx pgx.Tx, family domain.ChainFamily) (uint32, error)
}

// DepositAddressRepository defines persistence for allocated deposit addresses.
// Methods accepting pgx.Tx run inside transaction blocks for pessimistic
// locking. AcquireAllocationLock takes a transaction-scoped advisory lock on
// (owner, family): a first-time owner has no row FOR UPDATE can lock, so two
// sibling-network allocations would otherwise race past each other and split
// the family index.
type DepositAddressRepository interface {
	GetActiveByOwnerAndNetwork(ctx context.Context, owner domain.OwnerRef, network domain.Network) (*domain.DepositAddress, error)
	AcquireAllocationLock(ctx context.Context, tx pgx.Tx, owner domain.OwnerRef, family domain.ChainFamily) error
	GetActiveByOwnerAndFamilyForUpdate(ctx context.Context, tx pgx.Tx, owner domain.OwnerRef, family domain.ChainFamily) (*domain.DepositAddress, error)
	Create(ctx context.Context, tx pgx.Tx, addr *domain.DepositAddress) error
}

// LedgerRepository defines persistence for the payment ledger. The natural
// key (submission, payment type, milestone threshold) is unique; Upsert
// reports whether a new row was created.
type LedgerRepository interface {
	GetForUpdate(ctx context.Context, tx pgx.Tx, submissionID uuid.UUID, pt domain.PaymentType, threshold int64) (*domain.LedgerEntry, error)
	Upsert(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) (created bool, err error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error)
}

// WalletRepository defines persistence for user balances. Credit is a single
// atomic upsert-increment; Debit guards against going negative at the store
// level even though the service checks first under a row lock.
type WalletRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.Wallet, error)
	Credit(ctx context.Context, tx pgx.Tx, userID uuid.UUID, amount int64) (*domain.Wallet, error)
	Debit(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, amount int64) error
}

// WalletTransactionRepository persists balance-movement audit records.
type WalletTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, t *domain.WalletTransaction) error
}

// WithdrawalRepository defines persistence for payout requests.
type WithdrawalRepository interface {
	Create(ctx context.Context, tx pgx.Tx, req *domain.WithdrawalRequest) error
	GetActiveByUserID(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.WithdrawalRequest, error)
	SumPaidByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WithdrawalRequest, error)
}

// TaxFormRepository reads filed tax forms. The settlement core never writes them.
type TaxFormRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TaxForm, error)
	GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*domain.TaxForm, error)
}

// ProfileRepository reads the profile fields the settlement core consults.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

// CampaignPolicy is the payment configuration of an active campaign.
// Rates are cents; CPMRate is cents per 1000 views.
type CampaignPolicy struct {
	ID            uuid.UUID
	BrandID       uuid.UUID
	CPMRate       int64
	FlatRate      int64
	WalletRouting bool // off = reporting-only accrual, no balance credit
}

// ViewBonusPolicy is one bonus tier on a boost.
type ViewBonusPolicy struct {
	Threshold int64
	Kind      domain.PaymentType // milestone or view_bonus
	Bonus     int64              // fixed amount for milestone
	CPMRate   int64              // cents per 1000 views for view_bonus
	MinViews  int64
}

// BoostPolicy is the payment configuration of an active boost.
type BoostPolicy struct {
	ID            uuid.UUID
	BrandID       uuid.UUID
	Bonuses       []ViewBonusPolicy
	WalletRouting bool
}

// PaymentPolicySource supplies payment-policy configuration per source.
// Read-only collaborator data consumed by the reconciler.
type PaymentPolicySource interface {
	ListActiveCampaigns(ctx context.Context, campaignID *uuid.UUID) ([]CampaignPolicy, error)
	ListActiveBoosts(ctx context.Context, boostID *uuid.UUID) ([]BoostPolicy, error)
}

// SubmissionMetrics is the current state of one approved content submission.
// Views comes from third-party analytics polling and is treated as an opaque
// integer input.
type SubmissionMetrics struct {
	SubmissionID uuid.UUID
	UserID       uuid.UUID
	Views        int64
	PayoutAmount int64 // agreed flat amount for boost submissions, cents
}

// SubmissionMetricsFeed supplies view counts per submission for a source.
type SubmissionMetricsFeed interface {
	ListApprovedSubmissions(ctx context.Context, sourceType domain.SourceType, sourceID uuid.UUID) ([]SubmissionMetrics, error)
}

// LegacyLedgerSource reads pre-unification payment rows for the one-shot
// backfill job.
type LegacyLedgerSource interface {
	ListLegacyEntries(ctx context.Context) ([]domain.LedgerEntry, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
