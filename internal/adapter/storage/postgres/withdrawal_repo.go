package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"creator-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WithdrawalRepo implements ports.WithdrawalRepository.
type WithdrawalRepo struct {
	pool Pool
}

// NewWithdrawalRepo creates a new WithdrawalRepo.
func NewWithdrawalRepo(pool Pool) *WithdrawalRepo {
	return &WithdrawalRepo{pool: pool}
}

const withdrawalColumns = `id, user_id, amount, payout_method, payout_details, status,
		tax_form_id, withholding_rate, withholding_amount, net_amount, created_at, processed_at`

// Create inserts a payout request. Payout details are stored as JSONB so the
// per-method shapes share one column.
func (r *WithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, req *domain.WithdrawalRequest) error {
	details, err := json.Marshal(req.PayoutDetails)
	if err != nil {
		return fmt.Errorf("marshal payout details: %w", err)
	}

	query := `INSERT INTO payout_requests
		(id, user_id, amount, payout_method, payout_details, status,
		 tax_form_id, withholding_rate, withholding_amount, net_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = tx.Exec(ctx, query,
		req.ID, req.UserID, req.Amount, req.PayoutMethod, details, req.Status,
		req.TaxFormID, req.WithholdingRate, req.WithholdingAmount, req.NetAmount, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payout request: %w", err)
	}
	return nil
}

// GetActiveByUserID fetches the user's pending or processing request, if any,
// with a row lock. At most one such request may exist per user.
func (r *WithdrawalRepo) GetActiveByUserID(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM payout_requests
		WHERE user_id = $1 AND status IN ('pending', 'processing')
		ORDER BY created_at LIMIT 1 FOR UPDATE`

	req, err := scanWithdrawal(tx.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, err
	}
	return req, nil
}

// SumPaidByUserID returns the lifetime total of paid-out requests, used for
// the domestic reporting threshold.
func (r *WithdrawalRepo) SumPaidByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payout_requests
		WHERE user_id = $1 AND status = 'paid'`

	var total int64
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum paid withdrawals: %w", err)
	}
	return total, nil
}

// ListByUserID returns a user's most recent payout requests.
func (r *WithdrawalRepo) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM payout_requests
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list payout requests: %w", err)
	}
	defer rows.Close()

	var reqs []domain.WithdrawalRequest
	for rows.Next() {
		req, err := scanWithdrawalRow(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}

func scanWithdrawal(row pgx.Row) (*domain.WithdrawalRequest, error) {
	req, err := scanWithdrawalRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return req, nil
}

func scanWithdrawalRow(row pgx.Row) (*domain.WithdrawalRequest, error) {
	req := &domain.WithdrawalRequest{}
	var details []byte
	err := row.Scan(
		&req.ID, &req.UserID, &req.Amount, &req.PayoutMethod, &details, &req.Status,
		&req.TaxFormID, &req.WithholdingRate, &req.WithholdingAmount, &req.NetAmount,
		&req.CreatedAt, &req.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan payout request: %w", err)
	}
	if err := json.Unmarshal(details, &req.PayoutDetails); err != nil {
		return nil, fmt.Errorf("unmarshal payout details: %w", err)
	}
	return req, nil
}
