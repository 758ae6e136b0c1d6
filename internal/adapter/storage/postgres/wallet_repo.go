package postgres

import (
	"context"
	"errors"
	"fmt"

	"creator-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

const walletColumns = `id, user_id, available_balance, created_at, updated_at`

// GetByUserID fetches a user's wallet. Returns nil, nil when the user has
// never been credited.
func (r *WalletRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`
	return scanWallet(r.pool.QueryRow(ctx, query, userID))
}

// GetByUserIDForUpdate fetches a user's wallet with a row lock, serializing
// concurrent withdrawal attempts on the same balance.
func (r *WalletRepo) GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 FOR UPDATE`
	return scanWallet(tx.QueryRow(ctx, query, userID))
}

// Credit increments a user's balance, creating the wallet on first credit.
// Single upsert statement so concurrent credits serialize on the row lock
// and neither can be lost.
func (r *WalletRepo) Credit(ctx context.Context, tx pgx.Tx, userID uuid.UUID, amount int64) (*domain.Wallet, error) {
	query := `INSERT INTO wallets (id, user_id, available_balance, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (user_id)
		DO UPDATE SET available_balance = wallets.available_balance + $3, updated_at = now()
		RETURNING ` + walletColumns

	return scanWallet(tx.QueryRow(ctx, query, uuid.New(), userID, amount))
}

// Debit subtracts from a wallet balance. The WHERE guard makes a negative
// balance impossible even if a caller skipped the locked read.
func (r *WalletRepo) Debit(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, amount int64) error {
	query := `UPDATE wallets
		SET available_balance = available_balance - $1, updated_at = now()
		WHERE id = $2 AND available_balance >= $1`

	tag, err := tx.Exec(ctx, query, amount, walletID)
	if err != nil {
		return fmt.Errorf("debit wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("debit wallet %s: insufficient balance", walletID)
	}
	return nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(&w.ID, &w.UserID, &w.AvailableBalance, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan wallet: %w", err)
	}
	return w, nil
}
