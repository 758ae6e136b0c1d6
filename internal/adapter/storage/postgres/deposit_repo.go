package postgres

import (
	"context"
	"errors"
	"fmt"

	"creator-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// DepositAddressRepo implements ports.DepositAddressRepository.
type DepositAddressRepo struct {
	pool Pool
}

// NewDepositAddressRepo creates a new DepositAddressRepo.
func NewDepositAddressRepo(pool Pool) *DepositAddressRepo {
	return &DepositAddressRepo{pool: pool}
}

const depositColumns = `id, brand_id, user_id, network, chain_family, address, derivation_index, label, is_active, created_at`

// GetActiveByOwnerAndNetwork fetches the active address for an owner on one
// network (non-locking read, used for the idempotent fast path).
func (r *DepositAddressRepo) GetActiveByOwnerAndNetwork(ctx context.Context, owner domain.OwnerRef, network domain.Network) (*domain.DepositAddress, error) {
	query := `SELECT ` + depositColumns + ` FROM deposit_addresses
		WHERE brand_id IS NOT DISTINCT FROM $1 AND user_id IS NOT DISTINCT FROM $2
		AND network = $3 AND is_active`

	return scanDepositAddress(r.pool.QueryRow(ctx, query, owner.BrandID, owner.UserID, network))
}

// AcquireAllocationLock serialises address allocation per (owner, family)
// with a transaction-scoped advisory lock, released automatically at commit
// or rollback. Row locks cannot cover the first allocation since there is no
// row yet.
func (r *DepositAddressRepo) AcquireAllocationLock(ctx context.Context, tx pgx.Tx, owner domain.OwnerRef, family domain.ChainFamily) error {
	key := owner.Key() + "|" + string(family)
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
		return fmt.Errorf("acquire allocation lock: %w", err)
	}
	return nil
}

// GetActiveByOwnerAndFamilyForUpdate fetches any active address the owner
// holds within a chain family, locked for the enclosing transaction. Used to
// reuse the shared EVM index when the owner asks for a sibling network.
func (r *DepositAddressRepo) GetActiveByOwnerAndFamilyForUpdate(ctx context.Context, tx pgx.Tx, owner domain.OwnerRef, family domain.ChainFamily) (*domain.DepositAddress, error) {
	query := `SELECT ` + depositColumns + ` FROM deposit_addresses
		WHERE brand_id IS NOT DISTINCT FROM $1 AND user_id IS NOT DISTINCT FROM $2
		AND chain_family = $3 AND is_active
		ORDER BY created_at LIMIT 1 FOR UPDATE`

	return scanDepositAddress(tx.QueryRow(ctx, query, owner.BrandID, owner.UserID, family))
}

// Create inserts a new deposit address row within a database transaction.
// A racing duplicate surfaces as ports.ErrDuplicateKey via the partial
// unique index on active (owner, network).
func (r *DepositAddressRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.DepositAddress) error {
	query := `INSERT INTO deposit_addresses
		(id, brand_id, user_id, network, chain_family, address, derivation_index, label, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		a.ID, a.BrandID, a.UserID, a.Network, a.ChainFamily,
		a.Address, a.DerivationIndex, a.Label, a.IsActive, a.CreatedAt,
	)
	if err != nil {
		if mapped := mapDuplicate(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert deposit address: %w", err)
	}
	return nil
}

func scanDepositAddress(row pgx.Row) (*domain.DepositAddress, error) {
	a := &domain.DepositAddress{}
	err := row.Scan(
		&a.ID, &a.BrandID, &a.UserID, &a.Network, &a.ChainFamily,
		&a.Address, &a.DerivationIndex, &a.Label, &a.IsActive, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan deposit address: %w", err)
	}
	return a, nil
}
