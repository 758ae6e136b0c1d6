package postgres

import (
	"context"
	"errors"
	"fmt"

	"creator-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.LedgerRepository.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

const ledgerColumns = `id, user_id, source_type, source_id, submission_id, payment_type,
		views_snapshot, rate, milestone_threshold, accrued_amount, paid_amount, status,
		last_calculated_at, paid_at, cleared_at`

// GetForUpdate fetches the ledger entry for a natural key, locked for the
// enclosing transaction. Returns nil, nil when no entry exists yet.
func (r *LedgerRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, submissionID uuid.UUID, pt domain.PaymentType, threshold int64) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM payment_ledger
		WHERE submission_id = $1 AND payment_type = $2 AND milestone_threshold = $3
		FOR UPDATE`

	e := &domain.LedgerEntry{}
	err := tx.QueryRow(ctx, query, submissionID, pt, threshold).Scan(
		&e.ID, &e.UserID, &e.SourceType, &e.SourceID, &e.SubmissionID, &e.PaymentType,
		&e.ViewsSnapshot, &e.Rate, &e.MilestoneThreshold, &e.AccruedAmount, &e.PaidAmount,
		&e.Status, &e.LastCalculatedAt, &e.PaidAt, &e.ClearedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry for update: %w", err)
	}
	return e, nil
}

// Upsert writes a ledger entry keyed by (submission, payment type, milestone
// threshold). A concurrent reconciliation that raced an insert lands on the
// conflict arm and updates the same row: the natural key can never duplicate.
// The xmax trick reports whether the row was newly created.
func (r *LedgerRepo) Upsert(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) (bool, error) {
	query := `INSERT INTO payment_ledger
		(id, user_id, source_type, source_id, submission_id, payment_type,
		 views_snapshot, rate, milestone_threshold, accrued_amount, paid_amount, status, last_calculated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (submission_id, payment_type, milestone_threshold)
		DO UPDATE SET
			views_snapshot = EXCLUDED.views_snapshot,
			rate = EXCLUDED.rate,
			accrued_amount = EXCLUDED.accrued_amount,
			last_calculated_at = EXCLUDED.last_calculated_at
		RETURNING (xmax = 0) AS inserted`

	var created bool
	err := tx.QueryRow(ctx, query,
		e.ID, e.UserID, e.SourceType, e.SourceID, e.SubmissionID, e.PaymentType,
		e.ViewsSnapshot, e.Rate, e.MilestoneThreshold, e.AccruedAmount, e.PaidAmount,
		e.Status, e.LastCalculatedAt,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("upsert ledger entry: %w", err)
	}
	return created, nil
}

// ListByUserID returns a user's most recent ledger entries.
func (r *LedgerRepo) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM payment_ledger
		WHERE user_id = $1 ORDER BY last_calculated_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.SourceType, &e.SourceID, &e.SubmissionID, &e.PaymentType,
			&e.ViewsSnapshot, &e.Rate, &e.MilestoneThreshold, &e.AccruedAmount, &e.PaidAmount,
			&e.Status, &e.LastCalculatedAt, &e.PaidAt, &e.ClearedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
