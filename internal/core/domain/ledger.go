package domain

import (
	"time"

	"github.com/google/uuid"
)

// SourceType identifies which product surface an accrual came from.
type SourceType string

const (
	SourceCampaign SourceType = "campaign"
	SourceBoost    SourceType = "boost"
)

// PaymentType identifies how an accrual is computed.
type PaymentType string

const (
	PaymentCPM       PaymentType = "cpm"
	PaymentFlatRate  PaymentType = "flat_rate"
	PaymentMilestone PaymentType = "milestone"
	PaymentViewBonus PaymentType = "view_bonus"
	PaymentTransfer  PaymentType = "transfer"
)

// LedgerStatus is the lifecycle state of a ledger entry.
type LedgerStatus string

const (
	LedgerAccruing LedgerStatus = "accruing"
	LedgerPaid     LedgerStatus = "paid"
)

// LedgerEntry records the accrual for one (submission, payment type,
// milestone threshold) triple. The triple is unique: re-running
// reconciliation updates the row in place, never duplicates it.
// All amounts are cents. Rate is cents per 1000 views for cpm/view_bonus,
// the fixed amount for flat_rate/milestone.
type LedgerEntry struct {
	ID                 uuid.UUID    `json:"id"`
	UserID             uuid.UUID    `json:"user_id"`
	SourceType         SourceType   `json:"source_type"`
	SourceID           uuid.UUID    `json:"source_id"`
	SubmissionID       uuid.UUID    `json:"submission_id"`
	PaymentType        PaymentType  `json:"payment_type"`
	ViewsSnapshot      int64        `json:"views_snapshot"`
	Rate               int64        `json:"rate"`
	MilestoneThreshold int64        `json:"milestone_threshold"` // 0 for non-milestone entries
	AccruedAmount      int64        `json:"accrued_amount"`
	PaidAmount         int64        `json:"paid_amount"`
	Status             LedgerStatus `json:"status"`
	LastCalculatedAt   time.Time    `json:"last_calculated_at"`
	PaidAt             *time.Time   `json:"paid_at,omitempty"`
	ClearedAt          *time.Time   `json:"cleared_at,omitempty"`
}
