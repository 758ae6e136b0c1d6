package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet holds a user's single authoritative withdrawable balance, in cents.
// The balance is only ever mutated by atomic credit/debit operations inside a
// database transaction; it is a cached projection of the payment ledger.
type Wallet struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	AvailableBalance int64     `json:"available_balance"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TransactionDirection is the sign of a balance movement.
type TransactionDirection string

const (
	DirectionCredit TransactionDirection = "credit"
	DirectionDebit  TransactionDirection = "debit"
)

// TransactionKind is the business reason for a balance movement.
type TransactionKind string

const (
	KindAccrual    TransactionKind = "accrual"
	KindWithdrawal TransactionKind = "withdrawal"
)

// WalletTransaction is the audit record written alongside every balance
// credit or debit, in the same database transaction.
type WalletTransaction struct {
	ID          uuid.UUID            `json:"id"`
	WalletID    uuid.UUID            `json:"wallet_id"`
	UserID      uuid.UUID            `json:"user_id"`
	Amount      int64                `json:"amount"`
	Direction   TransactionDirection `json:"direction"`
	Kind        TransactionKind      `json:"kind"`
	ReferenceID uuid.UUID            `json:"reference_id"` // ledger entry or payout request
	CreatedAt   time.Time            `json:"created_at"`
}
